package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes returns the read-only content API.
//
// When mounted at /api/content:
//   - GET /api/content/{resource}                    - singleton document
//   - GET /api/content/curated-collection/resolved   - collection with projects expanded
//   - GET /api/content/breadcrumbs/{pageSlug}
//   - GET /api/content/our-story/{pageSlug}
func PublicRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/curated-collection/resolved", h.GetCuratedCollection)
	r.Get("/breadcrumbs/{pageSlug}", h.GetBreadcrumb)
	r.Get("/our-story/{pageSlug}", h.GetOurStory)
	r.Get("/{resource}", h.Get)

	return r
}

// AdminRoutes returns the content editing API. The caller mounts it
// behind the admin credential gate.
//
// When mounted at /api/cms/content:
//   - GET/PUT /api/cms/content/{resource}
//   - GET/PUT /api/cms/content/breadcrumbs/{pageSlug}
//   - GET/PUT /api/cms/content/our-story/{pageSlug}
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/breadcrumbs/{pageSlug}", h.GetBreadcrumb)
	r.Put("/breadcrumbs/{pageSlug}", h.UpdateBreadcrumb)
	r.Get("/our-story/{pageSlug}", h.GetOurStory)
	r.Put("/our-story/{pageSlug}", h.UpdateOurStory)
	r.Get("/{resource}", h.Get)
	r.Put("/{resource}", h.Update)

	return r
}
