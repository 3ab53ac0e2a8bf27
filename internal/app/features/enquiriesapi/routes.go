package enquiriesapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes accepts contact-form submissions.
//
// When mounted at /api/enquiries:
//   - POST /api/enquiries
func PublicRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	return r
}

// AdminRoutes returns the enquiry inbox API.
//
// When mounted at /api/cms/enquiries:
//   - GET /api/cms/enquiries?status=new&page=N&limit=N
//   - GET/DELETE /api/cms/enquiries/{id}
//   - PUT /api/cms/enquiries/{id}/status
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}/status", h.UpdateStatus)
	r.Delete("/{id}", h.Delete)
	return r
}
