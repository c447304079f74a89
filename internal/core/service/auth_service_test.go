package service

import (
	"context"
	"errors"
	"testing"

	"github.com/martijn/inkwell/internal/infrastructure/sqlite"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := sqlite.NewUserDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewAuthService(sqlite.NewUserRepository(db), "test-secret")
}

func TestHashAndVerifyPassword(t *testing.T) {
	svc := newTestAuthService(t)

	hash, err := svc.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("password stored in plaintext")
	}

	if !svc.VerifyPassword("correct horse battery", hash) {
		t.Error("expected matching password to verify")
	}
	if svc.VerifyPassword("wrong password", hash) {
		t.Error("expected mismatched password to fail")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ada", "ada@example.com", "password123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Register(ctx, "Impostor", "ada@example.com", "different456")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Ada", "ada@example.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", "ada@example.com", "password123", nil},
		{"wrong password", "ada@example.com", "nope", ErrInvalidCredentials},
		{"unknown email", "ghost@example.com", "password123", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != registered.ID {
				t.Errorf("expected user %d, got %d", registered.ID, user.ID)
			}
		})
	}
}

func TestSessionRoundTrip(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada", "ada@example.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := svc.IssueSession(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resolved, err := svc.ResolveSession(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.ID != user.ID || resolved.Name != "Ada" {
		t.Errorf("unexpected session user: %+v", resolved)
	}
}

func TestResolveSessionRejectsBadTokens(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada", "ada@example.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Signed with a different secret
	other := NewAuthService(nil, "other-secret")
	forged, err := other.IssueSession(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ResolveSession(ctx, tt.token); !errors.Is(err, ErrInvalidSession) {
				t.Errorf("expected ErrInvalidSession, got %v", err)
			}
		})
	}
}

func TestResolveSessionForDeletedUser(t *testing.T) {
	// A token naming a user id the store has never seen resolves to an
	// anonymous session, not a fault.
	db, err := sqlite.NewUserDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	userRepo := sqlite.NewUserRepository(db)

	svc := NewAuthService(userRepo, "test-secret")

	ghost, err := svc.Register(context.Background(), "Ghost", "ghost@example.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ghost.ID = 999 // token will point at a user that does not exist

	token, err := svc.IssueSession(ghost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ResolveSession(context.Background(), token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
}
