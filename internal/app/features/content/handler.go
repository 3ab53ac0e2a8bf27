// Package content serves the editable site content documents.
//
// Each document is either a singleton (navbar, footer, about, faq, ...)
// or keyed by the owning page slug (breadcrumbs, our-story). The public
// API reads them; the admin API applies partial updates. Reads never 404:
// a missing document yields its defaults.
package content

import (
	"errors"
	"net/http"

	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/content"
	projectstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/projects"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/htmlsanitize"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/jsonutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/slugify"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Handler serves content document reads and updates.
type Handler struct {
	stores   *content.Stores
	projects *projectstore.Store
	logger   *zap.Logger
}

// NewHandler creates a new content handler.
func NewHandler(stores *content.Stores, projects *projectstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		stores:   stores,
		projects: projects,
		logger:   logger,
	}
}

// resource adapts one typed singleton store to the generic route table.
type resource struct {
	get    func(r *http.Request) (any, error)
	update func(r *http.Request, partial bson.M) (any, error)
}

func wrap[T any](s *content.Singleton[T]) resource {
	return resource{
		get: func(r *http.Request) (any, error) {
			return s.Get(r.Context())
		},
		update: func(r *http.Request, partial bson.M) (any, error) {
			return s.Update(r.Context(), partial)
		},
	}
}

// resources maps URL slugs to their singleton stores. Breadcrumbs and
// our-story are slug-keyed and routed separately.
func (h *Handler) resources() map[string]resource {
	return map[string]resource{
		"navbar":             wrap(h.stores.Navbar),
		"footer":             wrap(h.stores.Footer),
		"about":              wrap(h.stores.About),
		"faq":                wrap(h.stores.Faq),
		"contact":            wrap(h.stores.Contact),
		"testimonials":       wrap(h.stores.Testimonials),
		"why-invest":         wrap(h.stores.WhyInvest),
		"novaa-advantage":    wrap(h.stores.NovaaAdvantage),
		"investor-insights":  wrap(h.stores.InvestorInsights),
		"curated-collection": wrap(h.stores.CuratedCollection),
		"properties":         wrap(h.stores.Properties),
	}
}

// Get handles GET /{resource} for singleton documents.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "resource")
	res, ok := h.resources()[name]
	if !ok {
		jsonutil.NotFound(w, "unknown content resource")
		return
	}

	doc, err := res.get(r)
	if err != nil {
		h.logger.Error("content read failed", zap.String("resource", name), zap.Error(err))
		jsonutil.InternalError(w, "failed to load content")
		return
	}
	jsonutil.OK(w, doc)
}

// GetCuratedCollection handles GET /curated-collection/resolved: the
// curated collection document with its project slugs expanded into the
// active project documents, in curated order.
func (h *Handler) GetCuratedCollection(w http.ResponseWriter, r *http.Request) {
	doc, err := h.stores.CuratedCollection.Get(r.Context())
	if err != nil {
		h.logger.Error("content read failed", zap.String("resource", "curated-collection"), zap.Error(err))
		jsonutil.InternalError(w, "failed to load content")
		return
	}

	projects, err := h.projects.ListBySlugs(r.Context(), doc.ProjectSlugs)
	if err != nil {
		h.logger.Error("curated collection project lookup failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to load content")
		return
	}

	jsonutil.OK(w, map[string]any{
		"collection": doc,
		"projects":   projects,
	})
}

// Update handles PUT /{resource} for singleton documents. The body is a
// partial document; absent fields are left untouched.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "resource")
	res, ok := h.resources()[name]
	if !ok {
		jsonutil.NotFound(w, "unknown content resource")
		return
	}

	partial, err := decodePartial(r)
	if err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	doc, err := res.update(r, partial)
	if err != nil {
		h.logger.Error("content update failed", zap.String("resource", name), zap.Error(err))
		jsonutil.InternalError(w, "failed to update content")
		return
	}

	h.logger.Info("content updated", zap.String("resource", name))
	jsonutil.OK(w, doc)
}

// GetBreadcrumb handles GET /breadcrumbs/{pageSlug}.
func (h *Handler) GetBreadcrumb(w http.ResponseWriter, r *http.Request) {
	pageSlug := chi.URLParam(r, "pageSlug")
	if !slugify.IsValid(pageSlug) {
		jsonutil.BadRequest(w, "invalid page slug")
		return
	}

	doc, err := h.stores.Breadcrumb.Get(r.Context(), pageSlug)
	if err != nil {
		h.logger.Error("breadcrumb read failed", zap.String("page_slug", pageSlug), zap.Error(err))
		jsonutil.InternalError(w, "failed to load content")
		return
	}
	jsonutil.OK(w, doc)
}

// UpdateBreadcrumb handles PUT /breadcrumbs/{pageSlug}.
func (h *Handler) UpdateBreadcrumb(w http.ResponseWriter, r *http.Request) {
	pageSlug := chi.URLParam(r, "pageSlug")
	if !slugify.IsValid(pageSlug) {
		jsonutil.BadRequest(w, "invalid page slug")
		return
	}

	partial, err := decodePartial(r)
	if err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	doc, err := h.stores.Breadcrumb.Upsert(r.Context(), pageSlug, partial)
	if err != nil {
		h.logger.Error("breadcrumb update failed", zap.String("page_slug", pageSlug), zap.Error(err))
		jsonutil.InternalError(w, "failed to update content")
		return
	}
	jsonutil.OK(w, doc)
}

// GetOurStory handles GET /our-story/{pageSlug}.
func (h *Handler) GetOurStory(w http.ResponseWriter, r *http.Request) {
	pageSlug := chi.URLParam(r, "pageSlug")
	if !slugify.IsValid(pageSlug) {
		jsonutil.BadRequest(w, "invalid page slug")
		return
	}

	doc, err := h.stores.OurStory.Get(r.Context(), pageSlug)
	if err != nil {
		h.logger.Error("our story read failed", zap.String("page_slug", pageSlug), zap.Error(err))
		jsonutil.InternalError(w, "failed to load content")
		return
	}
	jsonutil.OK(w, doc)
}

// UpdateOurStory handles PUT /our-story/{pageSlug}.
func (h *Handler) UpdateOurStory(w http.ResponseWriter, r *http.Request) {
	pageSlug := chi.URLParam(r, "pageSlug")
	if !slugify.IsValid(pageSlug) {
		jsonutil.BadRequest(w, "invalid page slug")
		return
	}

	partial, err := decodePartial(r)
	if err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	doc, err := h.stores.OurStory.Upsert(r.Context(), pageSlug, partial)
	if err != nil {
		h.logger.Error("our story update failed", zap.String("page_slug", pageSlug), zap.Error(err))
		jsonutil.InternalError(w, "failed to update content")
		return
	}
	jsonutil.OK(w, doc)
}

// htmlFields are document keys whose string values are admin-supplied rich
// text and must be sanitized before storage.
var htmlFields = map[string]bool{
	"content":     true,
	"description": true,
	"body":        true,
}

// decodePartial reads the request body as a partial document, sanitizing
// rich text fields.
func decodePartial(r *http.Request) (bson.M, error) {
	var partial bson.M
	if err := jsonutil.Decode(r, &partial); err != nil {
		return nil, err
	}
	if partial == nil {
		return nil, errors.New("empty payload")
	}
	for k, v := range partial {
		if !htmlFields[k] {
			continue
		}
		if s, ok := v.(string); ok {
			partial[k] = htmlsanitize.Sanitize(s)
		}
	}
	return partial, nil
}
