package projectsapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes lists active projects and serves detail pages.
//
// When mounted at /api/projects:
//   - GET /api/projects?category={id}
//   - GET /api/projects/{slug}
func PublicRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ListPublic)
	r.Get("/{slug}", h.GetBySlug)
	return r
}

// AdminRoutes returns the project management API.
//
// When mounted at /api/cms/projects:
//   - GET/POST /api/cms/projects
//   - GET /api/cms/projects/slug-check?slug=
//   - GET/PUT/DELETE /api/cms/projects/{id}
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
