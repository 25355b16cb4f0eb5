package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/futemax/futemax-api/internal/domain/user"
	"github.com/futemax/futemax-api/internal/infrastructure/repository/memory"
	"github.com/futemax/futemax-api/internal/platform/logging"
	"github.com/futemax/futemax-api/internal/platform/token"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	tokens, err := token.NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new token manager: %v", err)
	}
	creds := memory.NewCredentialRepository(user.Credentials{Username: "admin", Password: "s3cret"})
	return NewAuthService(creds, tokens, logging.NewNop())
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)

	result, err := svc.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatalf("expected an access token")
	}
	if !result.Principal.Admin || result.Principal.Username != "admin" {
		t.Fatalf("unexpected principal: %+v", result.Principal)
	}

	principal, err := svc.VerifyAccessToken(context.Background(), result.AccessToken)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if principal.Username != "admin" || !principal.Admin {
		t.Fatalf("unexpected verified principal: %+v", principal)
	}
}

func TestLogin_RejectsWrongCredentials(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)

	cases := map[string][2]string{
		"wrong password": {"admin", "wrong"},
		"wrong username": {"root", "s3cret"},
	}
	for name, pair := range cases {
		if _, err := svc.Login(context.Background(), pair[0], pair[1]); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", name, err)
		}
	}

	if _, err := svc.Login(context.Background(), "", "s3cret"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank username: expected ErrInvalidInput, got %v", err)
	}
}

func TestVerifyAccessToken_RejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)

	if _, err := svc.VerifyAccessToken(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("blank token: expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.VerifyAccessToken(context.Background(), "not.a.token"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("garbage token: expected ErrUnauthorized, got %v", err)
	}
}

func TestUpdateCredentials(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)

	if err := svc.UpdateCredentials(context.Background(), "s3cret", "admin", "short"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short password: expected ErrInvalidInput, got %v", err)
	}
	if err := svc.UpdateCredentials(context.Background(), "s3cret", "  ", "longenough"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank username: expected ErrInvalidInput, got %v", err)
	}
	if err := svc.UpdateCredentials(context.Background(), "wrong", "admin", "newpassword"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("wrong current password: expected ErrUnauthorized, got %v", err)
	}

	if err := svc.UpdateCredentials(context.Background(), "s3cret", "admin", "newpassword"); err != nil {
		t.Fatalf("rotate: %v", err)
	}

	if _, err := svc.Login(context.Background(), "admin", "s3cret"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("old password must stop working, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "admin", "newpassword"); err != nil {
		t.Fatalf("new password must work, got %v", err)
	}
}
