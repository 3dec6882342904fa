package service

import (
	"testing"
	"time"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       2,
		Username: "Laura",
		Email:    "laura@example.com",
		Roles:    []domain.Role{{ID: 1, Name: domain.RoleUser}},
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, ok := svc.Verify(token)
	if !ok {
		t.Fatalf("expected token to verify")
	}
	if claims.Subject != "Laura" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != domain.RoleUser {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
	if !claims.ExpiresAt.After(claims.IssuedAt) {
		t.Fatalf("expiry %v not after issue %v", claims.ExpiresAt, claims.IssuedAt)
	}

	subject, err := svc.ExtractSubject(token)
	if err != nil {
		t.Fatalf("ExtractSubject returned error: %v", err)
	}
	if subject != "Laura" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)

	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Same secret, so the signature is valid; only the expiry has passed.
	svc.now = time.Now
	if _, ok := svc.Verify(token); ok {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, ok := verifier.Verify(token); ok {
		t.Fatalf("expected token signed with another secret to fail")
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, ok := svc.Verify(token); ok {
			t.Fatalf("expected %q to fail verification", token)
		}
	}
}
