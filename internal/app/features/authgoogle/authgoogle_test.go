package authgoogle

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	adminstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/admins"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/oauthstate"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/auth"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"github.com/Nexgeno-Developers/novaa-cms/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *oauthstate.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	oauthStateStore := oauthstate.New(db)
	manager, err := auth.NewManager("test-signing-key-for-testing-1234567890", "", 0, false, logger)
	if err != nil {
		t.Fatalf("failed to create auth manager: %v", err)
	}

	handler := NewHandler(
		adminstore.New(db),
		manager,
		oauthStateStore,
		"test-client-id",
		"test-client-secret",
		"http://localhost:8080",
		"/admin/login",
		"/admin",
		logger,
	)
	return handler, oauthStateStore
}

func TestStartAuth_RedirectsToGoogle(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.startAuth(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTemporaryRedirect)
	}
	location := rec.Header().Get("Location")
	if !strings.Contains(location, "accounts.google.com") {
		t.Errorf("Location = %q, should point at Google", location)
	}
	if !strings.Contains(location, "state=") {
		t.Errorf("Location = %q, should carry a state parameter", location)
	}
}

func TestStartAuth_AlreadyAuthenticated(t *testing.T) {
	h, _ := newTestHandler(t)

	signed, _, err := h.manager.Issue(models.Admin{
		ID:    primitive.NewObjectID(),
		Email: "admin@example.com",
	})
	if err != nil {
		t.Fatalf("failed to issue credential: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.DefaultCookieName, Value: signed})
	rec := httptest.NewRecorder()

	h.startAuth(rec, req)

	// A signed-in visitor goes to the panel, not back through Google.
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if location := rec.Header().Get("Location"); location != "/admin" {
		t.Errorf("Location = %q, want %q", location, "/admin")
	}
}

func TestStartAuth_StoresSingleUseState(t *testing.T) {
	h, oauthStore := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.startAuth(rec, req)

	location := rec.Header().Get("Location")
	u, err := url.Parse(location)
	if err != nil {
		t.Fatalf("failed to parse redirect URL: %v", err)
	}
	state := u.Query().Get("state")
	if state == "" {
		t.Fatal("redirect carries no state")
	}

	if !oauthStore.Verify(ctx, state) {
		t.Error("Verify() = false, want true for a fresh state")
	}
	// Single use: a second verification must fail.
	if oauthStore.Verify(ctx, state) {
		t.Error("Verify() = true on reuse, want false")
	}
}

func TestCallback_RejectsUnknownState(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/callback?state=forged&code=whatever", nil)
	rec := httptest.NewRecorder()

	h.handleCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	location := rec.Header().Get("Location")
	if !strings.Contains(location, "error=invalid_state") {
		t.Errorf("Location = %q, should carry error=invalid_state", location)
	}
	if !strings.HasPrefix(location, "/admin/login") {
		t.Errorf("Location = %q, should return to the login page", location)
	}
}
