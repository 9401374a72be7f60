package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/sellywck/API/models"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", DefaultTTL)

	user := &models.User{
		ID:      42,
		UID:     "ext-auth-42",
		Email:   "owner@example.com",
		IsAdmin: true,
	}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.ID != user.ID {
		t.Errorf("claims.ID = %v, want %v", claims.ID, user.ID)
	}
	if claims.UID != user.UID {
		t.Errorf("claims.UID = %v, want %v", claims.UID, user.UID)
	}
	if claims.Email != user.Email {
		t.Errorf("claims.Email = %v, want %v", claims.Email, user.Email)
	}
	if !claims.IsAdmin {
		t.Error("claims.IsAdmin = false, want true")
	}

	wantExp := time.Now().Add(DefaultTTL)
	if got := claims.ExpiresAt.Time; got.Before(wantExp.Add(-time.Minute)) || got.After(wantExp.Add(time.Minute)) {
		t.Errorf("claims.ExpiresAt = %v, want about %v", got, wantExp)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue(&models.User{ID: 1, Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Verify() error = %v, want ErrExpiredToken", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", DefaultTTL)
	verifier := NewTokenService("secret-two", DefaultTTL)

	token, err := issuer.Issue(&models.User{ID: 1, Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret", DefaultTTL)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", raw, err)
		}
	}
}
