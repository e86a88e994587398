package domain

import (
	"fmt"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// AuthMethod identifies how the account authenticates against Hive.
type AuthMethod string

// Available authentication methods.
const (
	// AuthMethodCognito logs in directly against the vendor's Cognito pool
	// with username/password (plus optional SMS MFA), and refreshes with
	// the resulting refresh token.
	AuthMethodCognito AuthMethod = "cognito"

	// AuthMethodRefreshOnly reuses a refresh token obtained out of band
	// (for example from another Hive client). It can refresh but never
	// perform an initial login.
	AuthMethodRefreshOnly AuthMethod = "refresh-only"

	// AuthMethodStatic uses a fixed, externally managed id token.
	// No refresh is possible; when the token expires the external manager
	// must supply a new one.
	AuthMethodStatic AuthMethod = "static"
)

// IsValid returns true if the auth method is recognised.
func (m AuthMethod) IsValid() bool {
	switch m {
	case AuthMethodCognito, AuthMethodRefreshOnly, AuthMethodStatic:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m AuthMethod) String() string {
	return string(m)
}

// Description returns a human-readable description of the method.
func (m AuthMethod) Description() string {
	switch m {
	case AuthMethodCognito:
		return "Cognito (username/password login, automatic refresh)"
	case AuthMethodRefreshOnly:
		return "Refresh only (externally obtained refresh token)"
	case AuthMethodStatic:
		return "Static (externally managed id token, no refresh)"
	default:
		return unknownDescription
	}
}

// HeaderMode controls the Authorization header format on vendor API calls.
// Hive revisions disagree on whether the header carries the bare token or a
// "Bearer " prefix, so the format is configuration rather than a constant.
type HeaderMode string

// Available header modes.
const (
	// HeaderModeAuto sends the bare token first and switches to a
	// "Bearer " prefix if the vendor answers 401/403.
	HeaderModeAuto HeaderMode = "auto"

	// HeaderModeRaw always sends the bare token.
	HeaderModeRaw HeaderMode = "raw"

	// HeaderModeBearer always sends "Bearer <token>".
	HeaderModeBearer HeaderMode = "bearer"
)

// IsValid returns true if the header mode is recognised.
func (m HeaderMode) IsValid() bool {
	switch m {
	case HeaderModeAuto, HeaderModeRaw, HeaderModeBearer:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m HeaderMode) String() string {
	return string(m)
}

// VendorSettings holds the Hive API endpoint and request behaviour.
type VendorSettings struct {
	// BaseURL is the beekeeper API root. UK accounts live on
	// beekeeper-uk.hivehome.com; some accounts use beekeeper.hivehome.com.
	BaseURL string `toml:"base_url" comment:"Hive API root (try beekeeper.hivehome.com if UK host rejects your account)"`

	// Origin is sent as the Origin/Referer pair on vendor calls.
	Origin string `toml:"origin" comment:"Web origin sent as Origin/Referer headers"`

	// AuthHeader selects the Authorization header format (auto|raw|bearer).
	AuthHeader HeaderMode `toml:"auth_header" comment:"Authorization format: auto (raw, then Bearer on 401), raw, or bearer"`

	// TimeoutSeconds bounds each vendor HTTP call.
	TimeoutSeconds int `toml:"timeout_seconds" comment:"Per-request timeout in seconds"`
}

// Timeout returns the per-request timeout as a duration.
func (v VendorSettings) Timeout() time.Duration {
	return time.Duration(v.TimeoutSeconds) * time.Second
}

// CognitoSettings identifies the vendor's Cognito user pool.
type CognitoSettings struct {
	// Region is the AWS region hosting the pool.
	Region string `toml:"region" comment:"AWS region of the Hive Cognito pool"`

	// ClientID is the Cognito app client id used for login and refresh.
	ClientID string `toml:"client_id" comment:"Cognito app client id"`

	// DeviceKey is an optional trusted-device key, sent as the DEVICE_KEY
	// auth parameter when present. Obtain it from a client that completed
	// device trust.
	DeviceKey string `toml:"device_key,omitempty" comment:"Optional trusted-device key (DEVICE_KEY auth parameter)"`
}

// Endpoint returns the Cognito IDP endpoint for the configured region.
func (c CognitoSettings) Endpoint() string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/", c.Region)
}

// AuthSettings holds authentication strategy and refresh cadence.
type AuthSettings struct {
	// Method selects the Authenticator variant (cognito|refresh-only|static).
	Method AuthMethod `toml:"method" comment:"Authentication method: cognito, refresh-only, or static"`

	// RefreshIntervalMinutes is the background refresh cadence in serve
	// mode. Accepted range is 30-60 minutes.
	RefreshIntervalMinutes int `toml:"refresh_interval_minutes" comment:"Background token refresh cadence in minutes (30-60)"`
}

// RefreshInterval returns the background refresh cadence as a duration.
func (a AuthSettings) RefreshInterval() time.Duration {
	return time.Duration(a.RefreshIntervalMinutes) * time.Minute
}

// APISettings configures the serve-mode HTTP bridge.
type APISettings struct {
	// Addr is the listen address.
	Addr string `toml:"addr" comment:"HTTP bridge listen address"`

	// Token, when set, is required from callers as 'Authorization: Bearer <token>'.
	Token string `toml:"token,omitempty" comment:"Optional static bearer token required from bridge callers"`
}

// StorageSettings holds filesystem locations. Empty values mean
// "derive from the config directory" at wiring time.
type StorageSettings struct {
	// DataDir holds the SQLite database. Default: <config-dir>/data.
	DataDir string `toml:"data_dir,omitempty" comment:"Database directory (default: <config-dir>/data)"`

	// ProfilesFile is the editable profile file.
	// Default: <config-dir>/profiles.yaml.
	ProfilesFile string `toml:"profiles_file,omitempty" comment:"Profile file path (default: <config-dir>/profiles.yaml)"`
}

// Settings holds all application settings.
type Settings struct {
	// Vendor holds Hive API endpoint settings.
	Vendor VendorSettings `toml:"vendor"`

	// Cognito identifies the vendor's identity pool.
	Cognito CognitoSettings `toml:"cognito"`

	// Auth holds authentication strategy settings.
	Auth AuthSettings `toml:"auth"`

	// API configures the serve-mode HTTP bridge.
	API APISettings `toml:"api"`

	// Storage holds filesystem locations.
	Storage StorageSettings `toml:"storage"`
}

// Default endpoint values. The pool client id and UK API host are the
// publicly known values the Hive web app uses; both are configuration
// because they have changed across vendor revisions.
const (
	DefaultBaseURL         = "https://beekeeper-uk.hivehome.com/1.0"
	DefaultOrigin          = "https://my.hivehome.com"
	DefaultCognitoRegion   = "eu-west-1"
	DefaultCognitoClientID = "3rl4i0ajrmtdm8sbre54p9dvd9"
)

// DefaultSettings returns settings with working defaults for a UK account.
func DefaultSettings() Settings {
	return Settings{
		Vendor: VendorSettings{
			BaseURL:        DefaultBaseURL,
			Origin:         DefaultOrigin,
			AuthHeader:     HeaderModeAuto,
			TimeoutSeconds: 30,
		},
		Cognito: CognitoSettings{
			Region:   DefaultCognitoRegion,
			ClientID: DefaultCognitoClientID,
		},
		Auth: AuthSettings{
			Method:                 AuthMethodCognito,
			RefreshIntervalMinutes: 30,
		},
		API: APISettings{
			Addr: "127.0.0.1:8487",
		},
	}
}

// Validate checks the settings are usable. It reports the first problem
// found, wrapped around ErrConfig.
func (s *Settings) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: settings are nil", ErrConfig)
	}
	if strings.TrimSpace(s.Vendor.BaseURL) == "" {
		return fmt.Errorf("%w: vendor.base_url is empty", ErrConfig)
	}
	if !s.Vendor.AuthHeader.IsValid() {
		return fmt.Errorf("%w: vendor.auth_header %q (want auto, raw or bearer)", ErrConfig, s.Vendor.AuthHeader)
	}
	if s.Vendor.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: vendor.timeout_seconds must be positive", ErrConfig)
	}
	if !s.Auth.Method.IsValid() {
		return fmt.Errorf("%w: auth.method %q (want cognito, refresh-only or static)", ErrConfig, s.Auth.Method)
	}
	if s.Auth.Method == AuthMethodCognito || s.Auth.Method == AuthMethodRefreshOnly {
		if strings.TrimSpace(s.Cognito.Region) == "" {
			return fmt.Errorf("%w: cognito.region is empty", ErrConfig)
		}
		if strings.TrimSpace(s.Cognito.ClientID) == "" {
			return fmt.Errorf("%w: cognito.client_id is empty", ErrConfig)
		}
	}
	if s.Auth.RefreshIntervalMinutes < 30 || s.Auth.RefreshIntervalMinutes > 60 {
		return fmt.Errorf("%w: auth.refresh_interval_minutes %d out of range (30-60)", ErrConfig, s.Auth.RefreshIntervalMinutes)
	}
	return nil
}
