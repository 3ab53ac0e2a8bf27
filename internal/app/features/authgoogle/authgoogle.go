// internal/app/features/authgoogle/authgoogle.go
package authgoogle

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	adminstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/admins"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/oauthstate"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Handler provides Google OAuth sign-in for the admin panel. Only
// existing admin accounts may authenticate; OAuth never creates one.
type Handler struct {
	admins          *adminstore.Store
	manager         *auth.Manager
	oauthStateStore *oauthstate.Store
	oauthConfig     *oauth2.Config
	loginURL        string
	panelURL        string
	logger          *zap.Logger
}

// NewHandler creates a new Google OAuth Handler. baseURL is the public
// origin of this service; loginURL and panelURL are the frontend pages
// the flow redirects back to on failure and success.
func NewHandler(
	admins *adminstore.Store,
	manager *auth.Manager,
	oauthStateStore *oauthstate.Store,
	clientID string,
	clientSecret string,
	baseURL string,
	loginURL string,
	panelURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		admins:          admins,
		manager:         manager,
		oauthStateStore: oauthStateStore,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  baseURL + "/api/cms/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		loginURL: loginURL,
		panelURL: panelURL,
		logger:   logger,
	}
}

// Routes returns a chi.Router with Google OAuth routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.startAuth)
	r.Get("/callback", h.handleCallback)
	return r
}

// startAuth initiates the Google OAuth flow. Visitors who already carry
// a valid credential are sent to the panel instead of back through Google.
func (h *Handler) startAuth(w http.ResponseWriter, r *http.Request) {
	if h.manager.IsAuthenticated(r) {
		http.Redirect(w, r, h.panelURL, http.StatusSeeOther)
		return
	}

	state, err := generateState()
	if err != nil {
		h.logger.Error("oauth: failed to generate state", zap.Error(err))
		h.redirectError(w, r, "oauth_error")
		return
	}

	if err := h.oauthStateStore.Create(r.Context(), state); err != nil {
		h.logger.Error("oauth: failed to store state", zap.Error(err))
		h.redirectError(w, r, "oauth_error")
		return
	}

	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// handleCallback processes the Google OAuth callback. On success the
// admin credential cookie is set and the browser returns to the panel.
func (h *Handler) handleCallback(w http.ResponseWriter, r *http.Request) {
	// Verify state (single use)
	state := r.URL.Query().Get("state")
	if !h.oauthStateStore.Verify(r.Context(), state) {
		h.logger.Warn("invalid oauth state")
		h.redirectError(w, r, "invalid_state")
		return
	}

	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		h.logger.Warn("oauth error from google", zap.String("error", errMsg))
		h.redirectError(w, r, errMsg)
		return
	}

	code := r.URL.Query().Get("code")
	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("oauth: code exchange failed", zap.Error(err))
		h.redirectError(w, r, "token_exchange_failed")
		return
	}

	userInfo, err := h.getUserInfo(r.Context(), token)
	if err != nil {
		h.logger.Error("oauth: userinfo fetch failed", zap.Error(err))
		h.redirectError(w, r, "userinfo_failed")
		return
	}

	// Google auth requires an existing admin account.
	admin, err := h.admins.GetByEmail(r.Context(), userInfo.Email)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			h.logger.Warn("oauth: no admin account for email", zap.String("email", userInfo.Email))
			h.redirectError(w, r, "account_not_found")
			return
		}
		h.logger.Error("oauth: admin lookup failed", zap.Error(err))
		h.redirectError(w, r, "database_error")
		return
	}

	if !admin.IsActive() {
		h.logger.Warn("oauth: admin account disabled", zap.String("email", admin.Email))
		h.redirectError(w, r, "account_disabled")
		return
	}

	// Link the Google identity on first OAuth login. Best effort.
	if admin.GoogleSub == "" && userInfo.ID != "" {
		if err := h.admins.LinkGoogle(r.Context(), admin.ID, userInfo.ID); err != nil {
			h.logger.Warn("oauth: failed to link google identity", zap.Error(err))
		}
	}

	signed, expires, err := h.manager.Issue(admin)
	if err != nil {
		h.logger.Error("oauth: token issue failed", zap.Error(err))
		h.redirectError(w, r, "credential_error")
		return
	}
	h.manager.SetCookie(w, signed, expires)

	h.logger.Info("admin logged in via google", zap.String("email", admin.Email))
	http.Redirect(w, r, h.panelURL, http.StatusSeeOther)
}

func (h *Handler) redirectError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, h.loginURL+"?error="+code, http.StatusSeeOther)
}

// GoogleUserInfo represents user info from Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// getUserInfo fetches user info from Google.
func (h *Handler) getUserInfo(ctx context.Context, token *oauth2.Token) (*GoogleUserInfo, error) {
	client := h.oauthConfig.Client(ctx, token)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var userInfo GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, err
	}

	return &userInfo, nil
}

// generateState generates a random state token.
func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
