package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/futemax/futemax-api/internal/domain/user"
	"github.com/futemax/futemax-api/internal/platform/logging"
	"github.com/futemax/futemax-api/internal/platform/token"
)

const minPasswordLength = 6

type AuthService struct {
	creds  user.CredentialRepository
	tokens *token.Manager
	logger *logging.Logger
}

func NewAuthService(creds user.CredentialRepository, tokens *token.Manager, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthService{
		creds:  creds,
		tokens: tokens,
		logger: logger,
	}
}

type LoginResult struct {
	AccessToken string
	Principal   user.Principal
}

// Login checks the supplied pair against the stored admin credentials
// and issues a signed token. Wrong username and wrong password report
// the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	stored, err := s.creds.Get(ctx)
	if err != nil {
		return LoginResult{}, fmt.Errorf("load credentials: %w", err)
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(stored.Username)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(stored.Password)) == 1
	if !usernameMatch || !passwordMatch {
		s.logger.WarnContext(ctx, "login rejected", "username", username)
		return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	accessToken, err := s.tokens.Issue(username)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue access token: %w", err)
	}

	s.logger.InfoContext(ctx, "login accepted", "username", username)
	return LoginResult{
		AccessToken: accessToken,
		Principal:   user.Principal{Username: username, Admin: true},
	}, nil
}

// VerifyAccessToken validates a bearer token and returns the principal
// it names. The auth middleware calls this on every protected request.
func (s *AuthService) VerifyAccessToken(ctx context.Context, accessToken string) (user.Principal, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AuthService.VerifyAccessToken")
	defer span.End()

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return user.Principal{}, fmt.Errorf("%w: access token is required", ErrUnauthorized)
	}

	claims, err := s.tokens.Verify(accessToken)
	if err != nil {
		if errors.Is(err, token.ErrInvalidToken) {
			return user.Principal{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return user.Principal{}, fmt.Errorf("verify access token: %w", err)
	}

	return user.Principal{Username: claims.Username, Admin: claims.Admin}, nil
}

// UpdateCredentials rotates the admin pair after re-checking the
// current password. Existing tokens stay valid until they expire; only
// future logins use the new credentials.
func (s *AuthService) UpdateCredentials(ctx context.Context, currentPassword, username, password string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.UpdateCredentials")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	stored, err := s.creds.Get(ctx)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(currentPassword), []byte(stored.Password)) != 1 {
		s.logger.WarnContext(ctx, "credentials rotation rejected", "username", username)
		return fmt.Errorf("%w: current password does not match", ErrUnauthorized)
	}

	if err := s.creds.Set(ctx, user.Credentials{Username: username, Password: password}); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}

	s.logger.InfoContext(ctx, "admin credentials rotated", "username", username)
	return nil
}
