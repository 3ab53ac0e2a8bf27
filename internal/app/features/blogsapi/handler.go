// Package blogsapi manages blog posts and their categories.
//
// Public side serves paginated active posts and detail by slug; admin
// side has full CRUD for posts and for blog categories. Post bodies are
// sanitized HTML.
package blogsapi

import (
	"errors"
	"net/http"
	"strconv"

	blogcategorystore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/blogcategories"
	blogstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/blogs"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/htmlsanitize"
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

// Handler serves blog and blog category requests.
type Handler struct {
	blogs      *blogstore.Store
	categories *blogcategorystore.Store
	logger     *zap.Logger
}

// NewHandler creates a new blogs handler.
func NewHandler(blogs *blogstore.Store, categories *blogcategorystore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		blogs:      blogs,
		categories: categories,
		logger:     logger,
	}
}

func listOptionsFromQuery(r *http.Request) (blogstore.ListOptions, error) {
	lo := blogstore.ListOptions{}

	q := r.URL.Query()
	if raw := normalize.QueryParam(q.Get("category")); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return lo, errors.New("invalid category id")
		}
		lo.CategoryID = &id
	}
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			lo.Limit = n
		}
	}
	if raw := q.Get("page"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			lo.Page = n
		}
	}
	return lo, nil
}

// ListPublic handles GET / on the public side: active posts, newest
// first, paginated.
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	lo, err := listOptionsFromQuery(r)
	if err != nil {
		jsonutil.BadRequest(w, err.Error())
		return
	}
	lo.ActiveOnly = true

	res, err := h.blogs.List(r.Context(), lo)
	if err != nil {
		h.logger.Error("blog list failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to list blogs")
		return
	}
	jsonutil.OK(w, res)
}

// GetBySlug handles GET /{slug} on the public side.
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !slugify.IsValid(slug) {
		jsonutil.BadRequest(w, "invalid blog slug")
		return
	}

	b, err := h.blogs.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "blog not found")
			return
		}
		h.logger.Error("blog read failed", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to load blog")
		return
	}
	if !b.IsActive {
		jsonutil.NotFound(w, "blog not found")
		return
	}
	jsonutil.OK(w, b)
}

// List handles GET / on the admin side: every post, drafts included.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	lo, err := listOptionsFromQuery(r)
	if err != nil {
		jsonutil.BadRequest(w, err.Error())
		return
	}

	res, err := h.blogs.List(r.Context(), lo)
	if err != nil {
		h.logger.Error("blog list failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to list blogs")
		return
	}
	jsonutil.OK(w, res)
}

type blogInput struct {
	Title      string `json:"title" validate:"required,max=300" label:"Title"`
	Slug       string `json:"slug" validate:"slug,max=160" label:"Slug"`
	CategoryID string `json:"category_id" label:"Category"`
	Author     string `json:"author" validate:"max=120" label:"Author"`
	Excerpt    string `json:"excerpt" validate:"max=500" label:"Excerpt"`
	Content    string `json:"content" label:"Content"`
	Thumbnail  string `json:"thumbnail" label:"Thumbnail"`
	IsActive   *bool  `json:"is_active"`
	Order      int    `json:"order"`
}

// Create handles POST / on the admin side.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in blogInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if result := inputval.Validate(&in); result.HasErrors() {
		jsonutil.ValidationError(w, result.Fields())
		return
	}

	var categoryID *primitive.ObjectID
	if in.CategoryID != "" {
		id, err := primitive.ObjectIDFromHex(in.CategoryID)
		if err != nil {
			jsonutil.BadRequest(w, "invalid category id")
			return
		}
		categoryID = &id
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	b := models.Blog{
		Title:      in.Title,
		Slug:       in.Slug,
		CategoryID: categoryID,
		Author:     in.Author,
		Excerpt:    in.Excerpt,
		Content:    htmlsanitize.Sanitize(in.Content),
		Thumbnail:  in.Thumbnail,
		IsActive:   active,
		Order:      in.Order,
	}

	created, err := h.blogs.Create(r.Context(), b)
	if err != nil {
		if errors.Is(err, storeutil.ErrConflict) {
			jsonutil.BadRequest(w, "a blog with that slug already exists")
			return
		}
		h.logger.Error("blog create failed", zap.String("title", in.Title), zap.Error(err))
		jsonutil.InternalError(w, "failed to create blog")
		return
	}

	h.logger.Info("blog created", zap.String("slug", created.Slug))
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

	_, err := h.blogs.GetBySlug(r.Context(), slug)
	switch {
	case err == nil:
		jsonutil.OK(w, map[string]any{"slug": slug, "available": false})
	case errors.Is(err, storeutil.ErrNotFound):
		jsonutil.OK(w, map[string]any{"slug": slug, "available": true})
	default:
		h.logger.Error("blog slug check failed", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to check slug")
	}
}

// CategorySlugCheck handles GET /categories/slug-check?slug=.
func (h *Handler) CategorySlugCheck(w http.ResponseWriter, r *http.Request) {
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
		h.logger.Error("blog category slug check failed", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to check slug")
	}
}

// Get handles GET /{id} on the admin side.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b, err := h.blogs.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "blog not found")
			return
		}
		h.logger.Error("blog read failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to load blog")
		return
	}
	jsonutil.OK(w, b)
}

// Update handles PUT /{id} on the admin side.
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
	if content, ok := partial["content"].(string); ok {
		partial["content"] = htmlsanitize.Sanitize(content)
	}
	if raw, ok := partial["category_id"].(string); ok {
		if raw == "" {
			delete(partial, "category_id")
		} else {
			cid, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				jsonutil.BadRequest(w, "invalid category id")
				return
			}
			partial["category_id"] = cid
		}
	}

	updated, err := h.blogs.Update(r.Context(), id, partial)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "blog not found")
			return
		}
		if errors.Is(err, storeutil.ErrConflict) {
			jsonutil.BadRequest(w, "a blog with that slug already exists")
			return
		}
		h.logger.Error("blog update failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update blog")
		return
	}
	jsonutil.OK(w, updated)
}

// Delete handles DELETE /{id} on the admin side.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.blogs.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "blog not found")
			return
		}
		h.logger.Error("blog delete failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to delete blog")
		return
	}
	jsonutil.OK(w, map[string]any{"deleted": true})
}

/* ------------------------------ blog categories --------------------------- */

// ListCategoriesPublic handles GET /categories on the public side.
func (h *Handler) ListCategoriesPublic(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categories.ListActive(r.Context())
	if err != nil {
		h.logger.Error("blog category list failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to list blog categories")
		return
	}
	jsonutil.OK(w, cats)
}

// ListCategories handles GET /categories on the admin side.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categories.List(r.Context())
	if err != nil {
		h.logger.Error("blog category list failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to list blog categories")
		return
	}
	jsonutil.OK(w, cats)
}

type blogCategoryInput struct {
	Name     string `json:"name" validate:"required,max=200" label:"Name"`
	Slug     string `json:"slug" validate:"slug,max=120" label:"Slug"`
	IsActive *bool  `json:"is_active"`
	Order    int    `json:"order"`
}

// CreateCategory handles POST /categories on the admin side.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in blogCategoryInput
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
	created, err := h.categories.Create(r.Context(), models.BlogCategory{
		Name:     in.Name,
		Slug:     in.Slug,
		IsActive: active,
		Order:    in.Order,
	})
	if err != nil {
		if errors.Is(err, storeutil.ErrConflict) {
			jsonutil.BadRequest(w, "a blog category with that slug already exists")
			return
		}
		h.logger.Error("blog category create failed", zap.String("name", in.Name), zap.Error(err))
		jsonutil.InternalError(w, "failed to create blog category")
		return
	}

	jsonutil.Created(w, created)
}

// UpdateCategory handles PUT /categories/{id} on the admin side.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
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
			jsonutil.NotFound(w, "blog category not found")
			return
		}
		if errors.Is(err, storeutil.ErrConflict) {
			jsonutil.BadRequest(w, "a blog category with that slug already exists")
			return
		}
		h.logger.Error("blog category update failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update blog category")
		return
	}
	jsonutil.OK(w, updated)
}

// DeleteCategory handles DELETE /categories/{id} on the admin side.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.categories.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "blog category not found")
			return
		}
		h.logger.Error("blog category delete failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to delete blog category")
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
