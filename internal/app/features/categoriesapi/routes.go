package categoriesapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes lists active categories.
//
// When mounted at /api/categories:
//   - GET /api/categories
func PublicRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ListPublic)
	return r
}

// AdminRoutes returns the category management API.
//
// When mounted at /api/cms/categories:
//   - GET/POST /api/cms/categories
//   - GET /api/cms/categories/slug-check?slug=
//   - GET/PUT/DELETE /api/cms/categories/{id}
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/slug-check", h.SlugCheck)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}
