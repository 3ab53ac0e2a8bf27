package authapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the admin auth endpoints.
//
// When mounted at /api/cms/auth:
//   - POST /api/cms/auth/login
//   - POST /api/cms/auth/logout
//   - GET  /api/cms/auth/me (requires a valid credential)
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Group(func(gr chi.Router) {
		gr.Use(h.manager.RequireAdmin(h.admins))
		gr.Get("/me", h.Me)
	})

	return r
}
