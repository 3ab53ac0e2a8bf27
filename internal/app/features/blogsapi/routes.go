package blogsapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes serves the public blog listing and detail endpoints.
//
// When mounted at /api/blogs:
//   - GET /api/blogs?category={id}&page=N&limit=N
//   - GET /api/blogs/categories
//   - GET /api/blogs/{slug}
func PublicRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ListPublic)
	r.Get("/categories", h.ListCategoriesPublic)
	r.Get("/{slug}", h.GetBySlug)
	return r
}

// AdminRoutes returns the blog management API.
//
// When mounted at /api/cms/blogs:
//   - GET/POST /api/cms/blogs
//   - GET /api/cms/blogs/slug-check?slug=
//   - GET/PUT/DELETE /api/cms/blogs/{id}
//   - GET/POST /api/cms/blogs/categories
//   - GET /api/cms/blogs/categories/slug-check?slug=
//   - PUT/DELETE /api/cms/blogs/categories/{id}
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/slug-check", h.SlugCheck)

	r.Route("/categories", func(cr chi.Router) {
		cr.Get("/", h.ListCategories)
		cr.Post("/", h.CreateCategory)
		cr.Get("/slug-check", h.CategorySlugCheck)
		cr.Put("/{id}", h.UpdateCategory)
		cr.Delete("/{id}", h.DeleteCategory)
	})

	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}
