package token

import (
	"errors"
	"testing"
	"time"
)

func TestNewManager_RequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewManager("  ", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	mgr, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	signed, err := mgr.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := mgr.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("expected username admin, got %s", claims.Username)
	}
	if !claims.Admin {
		t.Fatalf("expected admin claim to be true")
	}
}

func TestManager_VerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	mgr, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mgr.now = func() time.Time { return issuedAt }
	signed, err := mgr.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	mgr.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := mgr.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestManager_VerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewManager("secret-one", time.Hour)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	verifier, err := NewManager("secret-two", time.Hour)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}

	signed, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestManager_VerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	mgr, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	if _, err := mgr.Verify("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
