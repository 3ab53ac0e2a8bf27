package pagesapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes returns the read-only page API.
//
// When mounted at /api/pages:
//   - GET /api/pages/{slug} - composed page (metadata + renderable sections)
func PublicRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/{slug}", h.GetComposed)
	return r
}

// AdminRoutes returns the page and section management API. The caller
// mounts it behind the admin credential gate.
//
// When mounted at /api/cms/pages:
//   - GET    /api/cms/pages
//   - POST   /api/cms/pages
//   - GET    /api/cms/pages/{slug}
//   - PUT    /api/cms/pages/{slug}
//   - POST   /api/cms/pages/{slug}/sections
//   - POST   /api/cms/pages/{slug}/sections/reorder
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListPages)
	r.Post("/", h.CreatePage)
	r.Get("/{slug}", h.GetPage)
	r.Put("/{slug}", h.UpdatePage)
	r.Post("/{slug}/sections", h.CreateSection)
	r.Post("/{slug}/sections/reorder", h.ReorderSections)

	return r
}

// SectionRoutes returns the id-addressed section endpoints.
//
// When mounted at /api/cms/sections:
//   - PUT    /api/cms/sections/{id}
//   - DELETE /api/cms/sections/{id}
func SectionRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Put("/{id}", h.UpdateSection)
	r.Delete("/{id}", h.DeleteSection)
	return r
}
