package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
	"github.com/rrwood/hive-schedule-mgr/internal/logger"
)

// Ensure CognitoAuthenticator implements the Authenticator interface.
var _ driven.Authenticator = (*CognitoAuthenticator)(nil)

// Cognito JSON API protocol constants.
const (
	amzJSONContentType = "application/x-amz-json-1.1"

	targetInitiateAuth           = "AWSCognitoIdentityProviderService.InitiateAuth"
	targetRespondToAuthChallenge = "AWSCognitoIdentityProviderService.RespondToAuthChallenge"

	flowUserPassword = "USER_PASSWORD_AUTH"
	flowRefreshToken = "REFRESH_TOKEN_AUTH"

	challengeSMSMFA = "SMS_MFA"

	errTypeNotAuthorized = "NotAuthorizedException"
)

// cognitoTimeout bounds every call to the identity provider.
const cognitoTimeout = 30 * time.Second

// CognitoAuthenticator drives the AWS Cognito user-pool flows Hive uses
// for account authentication: USER_PASSWORD_AUTH with an optional SMS_MFA
// challenge for login, and REFRESH_TOKEN_AUTH for renewals. It speaks the
// public Cognito JSON API directly; no AWS credentials are involved.
type CognitoAuthenticator struct {
	endpoint  string
	clientID  string
	deviceKey string
	client    *http.Client
	log       *logger.Logger
}

// NewCognitoAuthenticator creates an authenticator for the configured
// Cognito pool.
func NewCognitoAuthenticator(settings domain.CognitoSettings, log *logger.Logger) *CognitoAuthenticator {
	return &CognitoAuthenticator{
		endpoint:  settings.Endpoint(),
		clientID:  settings.ClientID,
		deviceKey: settings.DeviceKey,
		client:    &http.Client{Timeout: cognitoTimeout},
		log:       log,
	}
}

// Method returns AuthMethodCognito.
func (a *CognitoAuthenticator) Method() domain.AuthMethod {
	return domain.AuthMethodCognito
}

// Login starts USER_PASSWORD_AUTH with the account credentials. Accounts
// with SMS MFA enabled get a challenge back instead of tokens; the flow
// then continues via CompleteMFA with the code from the text message.
func (a *CognitoAuthenticator) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	params := map[string]string{
		"USERNAME": req.Username,
		"PASSWORD": req.Password,
	}
	if a.deviceKey != "" {
		params["DEVICE_KEY"] = a.deviceKey
	}

	resp, err := a.initiateAuth(ctx, flowUserPassword, params)
	if err != nil {
		var provider *cognitoError
		if errors.As(err, &provider) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAuthRequired, provider.Message)
		}
		return nil, fmt.Errorf("cognito login: %w", err)
	}

	if resp.ChallengeName == challengeSMSMFA {
		a.log.Debugf("Login challenged with SMS MFA, code sent to %s", resp.ChallengeParameters["CODE_DELIVERY_DESTINATION"])
		return &domain.LoginResult{
			Challenge: &domain.MFAChallenge{
				Session:     resp.Session,
				Username:    challengeUsername(resp.ChallengeParameters, req.Username),
				Destination: resp.ChallengeParameters["CODE_DELIVERY_DESTINATION"],
			},
		}, nil
	}
	if resp.ChallengeName != "" {
		return nil, fmt.Errorf("%w: unsupported challenge %q", domain.ErrAuthRequired, resp.ChallengeName)
	}

	tokens, err := a.tokenSet(resp.AuthenticationResult)
	if err != nil {
		return nil, err
	}
	if tokens.AccountID == "" {
		tokens.AccountID = req.Username
	}
	return &domain.LoginResult{Tokens: tokens}, nil
}

// CompleteMFA answers the SMS challenge with the code the user received.
func (a *CognitoAuthenticator) CompleteMFA(ctx context.Context, challenge domain.MFAChallenge, code string) (*domain.LoginResult, error) {
	resp, err := a.post(ctx, targetRespondToAuthChallenge, cognitoChallengeRequest{
		ChallengeName: challengeSMSMFA,
		ClientID:      a.clientID,
		Session:       challenge.Session,
		ChallengeResponses: map[string]string{
			"USERNAME":     challenge.Username,
			"SMS_MFA_CODE": code,
		},
	})
	if err != nil {
		var provider *cognitoError
		if errors.As(err, &provider) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAuthRequired, provider.Message)
		}
		return nil, fmt.Errorf("cognito mfa: %w", err)
	}

	tokens, err := a.tokenSet(resp.AuthenticationResult)
	if err != nil {
		return nil, err
	}
	if tokens.AccountID == "" {
		tokens.AccountID = challenge.Username
	}
	return &domain.LoginResult{Tokens: tokens}, nil
}

// Refresh runs REFRESH_TOKEN_AUTH. Cognito rejecting the refresh token
// itself (revoked, or invalidated by a password change) maps to
// ErrReauthRequired; everything else is reported as a transient refresh
// failure and leaves the stored set alone.
func (a *CognitoAuthenticator) Refresh(ctx context.Context, refreshToken string) (*domain.TokenSet, error) {
	params := map[string]string{"REFRESH_TOKEN": refreshToken}
	if a.deviceKey != "" {
		params["DEVICE_KEY"] = a.deviceKey
	}

	resp, err := a.initiateAuth(ctx, flowRefreshToken, params)
	if err != nil {
		var provider *cognitoError
		if errors.As(err, &provider) && provider.errorType() == errTypeNotAuthorized {
			return nil, fmt.Errorf("%w: %s", domain.ErrReauthRequired, provider.Message)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenRefreshFailed, err)
	}

	tokens, err := a.tokenSet(resp.AuthenticationResult)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenRefreshFailed, err)
	}
	return tokens, nil
}

// tokenSet converts an authentication result into a domain token set.
// Fresh tokens are assumed valid for the standard lease; Cognito reports
// an hour, the shorter lease is what the manager tracks.
func (a *CognitoAuthenticator) tokenSet(result *cognitoAuthResult) (*domain.TokenSet, error) {
	if result == nil || result.IDToken == "" {
		return nil, fmt.Errorf("%w: response carried no tokens", domain.ErrAuthRequired)
	}
	return &domain.TokenSet{
		IDToken:      result.IDToken,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresAt:    time.Now().Add(domain.TokenLease),
		AccountID:    accountIDFromToken(result.IDToken),
	}, nil
}

func (a *CognitoAuthenticator) initiateAuth(ctx context.Context, flow string, params map[string]string) (*cognitoAuthResponse, error) {
	return a.post(ctx, targetInitiateAuth, cognitoAuthRequest{
		AuthFlow:       flow,
		ClientID:       a.clientID,
		AuthParameters: params,
	})
}

// post sends one Cognito JSON API call and decodes the response envelope.
// Failures the provider reports come back as *cognitoError.
func (a *CognitoAuthenticator) post(ctx context.Context, target string, payload any) (*cognitoAuthResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", amzJSONContentType)
	req.Header.Set("X-Amz-Target", target)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cognito request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var provider cognitoError
		if err := json.NewDecoder(resp.Body).Decode(&provider); err == nil && provider.Type != "" {
			return nil, &provider
		}
		return nil, fmt.Errorf("cognito request failed with status %d", resp.StatusCode)
	}

	var decoded cognitoAuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &decoded, nil
}

// challengeUsername picks the username to answer a challenge with.
// Cognito wants USER_ID_FOR_SRP when the pool aliases email addresses.
func challengeUsername(params map[string]string, fallback string) string {
	if u := params["USER_ID_FOR_SRP"]; u != "" {
		return u
	}
	return fallback
}

// cognitoAuthRequest is the InitiateAuth call body.
type cognitoAuthRequest struct {
	AuthFlow       string            `json:"AuthFlow"`
	ClientID       string            `json:"ClientId"`
	AuthParameters map[string]string `json:"AuthParameters"`
}

// cognitoChallengeRequest is the RespondToAuthChallenge call body.
type cognitoChallengeRequest struct {
	ChallengeName      string            `json:"ChallengeName"`
	ClientID           string            `json:"ClientId"`
	Session            string            `json:"Session"`
	ChallengeResponses map[string]string `json:"ChallengeResponses"`
}

// cognitoAuthResponse is the shared response envelope of both calls.
// Either AuthenticationResult or a challenge triple is populated.
type cognitoAuthResponse struct {
	AuthenticationResult *cognitoAuthResult `json:"AuthenticationResult,omitempty"`
	ChallengeName        string             `json:"ChallengeName,omitempty"`
	Session              string             `json:"Session,omitempty"`
	ChallengeParameters  map[string]string  `json:"ChallengeParameters,omitempty"`
}

// cognitoAuthResult carries the issued tokens. REFRESH_TOKEN_AUTH
// responses omit RefreshToken.
type cognitoAuthResult struct {
	IDToken      string `json:"IdToken"`
	AccessToken  string `json:"AccessToken"`
	RefreshToken string `json:"RefreshToken"`
	ExpiresIn    int    `json:"ExpiresIn"`
}

// cognitoError is the provider's error envelope.
type cognitoError struct {
	Type    string `json:"__type"`
	Message string `json:"message"`
}

func (e *cognitoError) Error() string {
	return fmt.Sprintf("cognito: %s: %s", e.Type, e.Message)
}

// errorType normalises the __type field, which some responses qualify
// with a namespace prefix ("com.amazonaws...#NotAuthorizedException").
func (e *cognitoError) errorType() string {
	if i := strings.LastIndex(e.Type, "#"); i >= 0 {
		return e.Type[i+1:]
	}
	return e.Type
}
