package auth

import (
	"testing"
	"time"

	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testAdmin() models.Admin {
	return models.Admin{
		ID:     primitive.NewObjectID(),
		Email:  "admin@novaa.example",
		Role:   models.AdminRoleAdmin,
		Status: models.StatusActive,
	}
}

func TestManager_IssueAndVerify(t *testing.T) {
	m, err := NewManager(testSecret, "", 7*24*time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	admin := testAdmin()
	token, expires, err := m.Issue(admin)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if until := time.Until(expires); until < 6*24*time.Hour {
		t.Errorf("expiry too near: %v", until)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Subject != admin.ID.Hex() {
		t.Errorf("claims.Subject = %q, want %q", claims.Subject, admin.ID.Hex())
	}
	if claims.Email != admin.Email {
		t.Errorf("claims.Email = %q, want %q", claims.Email, admin.Email)
	}
}

func TestManager_Verify_Expired(t *testing.T) {
	// Issue with a TTL already in the past.
	m, err := NewManager(testSecret, "", time.Nanosecond, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	token, _, err := m.Issue(testAdmin())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := m.Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify(expired) error = %v, want ErrInvalidToken", err)
	}
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	issuer, err := NewManager(testSecret, "", 7*24*time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	verifier, err := NewManager("another-secret-entirely-32-chars!", "", 7*24*time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	token, _, err := issuer.Issue(testAdmin())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify(wrong secret) error = %v, want ErrInvalidToken", err)
	}
}

func TestManager_Verify_Garbage(t *testing.T) {
	m, err := NewManager(testSecret, "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Verify(tok); err != ErrInvalidToken {
			t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", tok, err)
		}
	}
}

func TestNewManager_Config(t *testing.T) {
	if _, err := NewManager("", "", time.Hour, false, zap.NewNop()); err == nil {
		t.Error("NewManager(empty secret) should fail")
	}
	if _, err := NewManager("short", "", time.Hour, true, zap.NewNop()); err == nil {
		t.Error("NewManager(weak secret, secure) should fail")
	}
	m, err := NewManager(testSecret, "", 0, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if m.CookieName() != DefaultCookieName {
		t.Errorf("CookieName() = %q, want %q", m.CookieName(), DefaultCookieName)
	}
}
