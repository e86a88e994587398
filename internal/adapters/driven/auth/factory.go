package auth

import (
	"fmt"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
	"github.com/rrwood/hive-schedule-mgr/internal/logger"
)

// NewAuthenticator creates the Authenticator variant for the configured
// method. The choice is made once at startup; everything downstream works
// against the interface and never branches on the method again.
func NewAuthenticator(settings *domain.Settings, log *logger.Logger) (driven.Authenticator, error) {
	switch settings.Auth.Method {
	case domain.AuthMethodCognito:
		return NewCognitoAuthenticator(settings.Cognito, log), nil
	case domain.AuthMethodRefreshOnly:
		return NewRefreshOnlyAuthenticator(NewCognitoAuthenticator(settings.Cognito, log)), nil
	case domain.AuthMethodStatic:
		return NewStaticAuthenticator(), nil
	default:
		return nil, fmt.Errorf("%w: unknown auth method %q", domain.ErrConfig, settings.Auth.Method)
	}
}
