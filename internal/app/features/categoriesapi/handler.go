// Package categoriesapi manages project categories.
//
// Public side lists active categories; admin side has full CRUD. Slugs
// are derived from the name when not supplied.
package categoriesapi

import (
	"errors"
	"net/http"

	categorystore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/categories"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/inputval"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/jsonutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/normalize"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/slugify"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves category requests.
type Handler struct {
	categories *categorystore.Store
	logger     *zap.Logger
}

// NewHandler creates a new categories handler.
func NewHandler(categories *categorystore.Store, logger *zap.Logger) *Handler {
	return &Handler{categories: categories, logger: logger}
}

// ListPublic handles GET / on the public side: active categories only.
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categories.ListActive(r.Context())
	if err != nil {
		h.logger.Error("category list failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to list categories")
		return
	}
	jsonutil.OK(w, cats)
}

// List handles GET / on the admin side: every category.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categories.List(r.Context())
	if err != nil {
		h.logger.Error("category list failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to list categories")
		return
	}
	jsonutil.OK(w, cats)
}

type categoryInput struct {
	Name     string `json:"name" validate:"required,max=200" label:"Name"`
	Slug     string `json:"slug" validate:"slug,max=120" label:"Slug"`
	IsActive *bool  `json:"is_active"`
	Order    int    `json:"order"`
}

// Create handles POST /.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in categoryInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	in.Name = normalize.Name(in.Name)
	if result := inputval.Validate(&in); result.HasErrors() {
		jsonutil.ValidationError(w, result.Fields())
		return
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	cat := models.Category{
		Name:     in.Name,
		Slug:     in.Slug,
		IsActive: active,
		Order:    in.Order,
	}

	created, err := h.categories.Create(r.Context(), cat)
	if err != nil {
		if errors.Is(err, storeutil.ErrConflict) {
			jsonutil.BadRequest(w, "a category with that slug already exists")
			return
		}
		h.logger.Error("category create failed", zap.String("name", in.Name), zap.Error(err))
		jsonutil.InternalError(w, "failed to create category")
		return
	}

	h.logger.Info("category created", zap.String("slug", created.Slug))
	jsonutil.Created(w, created)
}

// SlugCheck handles GET /slug-check?slug= and reports whether the slug
// is still free.
func (h *Handler) SlugCheck(w http.ResponseWriter, r *http.Request) {
	slug := normalize.QueryParam(r.URL.Query().Get("slug"))
	if !slugify.IsValid(slug) {
		jsonutil.BadRequest(w, "invalid slug")
		return
	}

	_, err := h.categories.GetBySlug(r.Context(), slug)
	switch {
	case err == nil:
		jsonutil.OK(w, map[string]any{"slug": slug, "available": false})
	case errors.Is(err, storeutil.ErrNotFound):
		jsonutil.OK(w, map[string]any{"slug": slug, "available": true})
	default:
		h.logger.Error("category slug check failed", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to check slug")
	}
}

// Get handles GET /{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	cat, err := h.categories.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "category not found")
			return
		}
		h.logger.Error("category read failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to load category")
		return
	}
	jsonutil.OK(w, cat)
}

// Update handles PUT /{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var partial bson.M
	if err := jsonutil.Decode(r, &partial); err != nil || partial == nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	updated, err := h.categories.Update(r.Context(), id, partial)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "category not found")
			return
		}
		if errors.Is(err, storeutil.ErrConflict) {
			jsonutil.BadRequest(w, "a category with that slug already exists")
			return
		}
		h.logger.Error("category update failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update category")
		return
	}
	jsonutil.OK(w, updated)
}

// Delete handles DELETE /{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.categories.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "category not found")
			return
		}
		h.logger.Error("category delete failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to delete category")
		return
	}
	jsonutil.OK(w, map[string]any{"deleted": true})
}

func pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		jsonutil.BadRequest(w, "invalid id")
		return primitive.ObjectID{}, false
	}
	return id, true
}
