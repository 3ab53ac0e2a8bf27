// Package authapi provides the admin login, logout, and session endpoints.
//
// Endpoints:
//   - POST /api/cms/auth/login  - email/password login, sets the credential cookie
//   - POST /api/cms/auth/logout - clears the credential cookie
//   - GET  /api/cms/auth/me     - returns the authenticated admin
//
// A successful login issues a signed JWT in an HTTP-only cookie; every
// other admin route is gated on that cookie by auth.RequireAdmin.
package authapi

import (
	"errors"
	"net/http"

	adminstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/admins"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/auth"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/authutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/jsonutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/normalize"
	"go.uber.org/zap"
)

// Handler handles admin authentication requests.
type Handler struct {
	admins  *adminstore.Store
	manager *auth.Manager
	logger  *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(admins *adminstore.Store, manager *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		admins:  admins,
		manager: manager,
		logger:  logger,
	}
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login. Invalid email, unknown account, wrong
// password, and inactive account all produce the same 401 so the endpoint
// does not leak which accounts exist.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	email := normalize.Email(in.Email)
	if email == "" || in.Password == "" {
		jsonutil.BadRequest(w, "email and password are required")
		return
	}

	admin, err := h.admins.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.Unauthorized(w, "invalid credentials")
			return
		}
		h.logger.Error("login: admin lookup failed", zap.Error(err))
		jsonutil.InternalError(w, "login failed")
		return
	}

	if !admin.IsActive() || admin.PasswordHash == "" {
		jsonutil.Unauthorized(w, "invalid credentials")
		return
	}
	if !authutil.CheckPassword(admin.PasswordHash, in.Password) {
		jsonutil.Unauthorized(w, "invalid credentials")
		return
	}

	token, expires, err := h.manager.Issue(admin)
	if err != nil {
		h.logger.Error("login: token issue failed", zap.Error(err))
		jsonutil.InternalError(w, "login failed")
		return
	}
	h.manager.SetCookie(w, token, expires)

	h.logger.Info("admin logged in", zap.String("email", admin.Email))
	jsonutil.OK(w, admin)
}

// Logout handles POST /logout. Always succeeds; the cookie is simply
// cleared whether or not it was valid.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.manager.ClearCookie(w)
	jsonutil.OK(w, map[string]any{"logged_out": true})
}

// Me handles GET /me. RequireAdmin has already resolved the admin.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	admin, ok := auth.CurrentAdmin(r)
	if !ok {
		jsonutil.Unauthorized(w, "unauthorized")
		return
	}
	jsonutil.OK(w, admin)
}
