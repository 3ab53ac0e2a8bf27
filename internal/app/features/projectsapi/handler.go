// Package projectsapi manages property project listings.
//
// Public side lists active projects (optionally filtered by category) and
// serves project detail by slug; admin side has full CRUD. Responses carry
// the populated category, never a bare id.
package projectsapi

import (
	"errors"
	"net/http"

	projectstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/projects"
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

// Handler serves project requests.
type Handler struct {
	projects *projectstore.Store
	logger   *zap.Logger
}

// NewHandler creates a new projects handler.
func NewHandler(projects *projectstore.Store, logger *zap.Logger) *Handler {
	return &Handler{projects: projects, logger: logger}
}

// ListPublic handles GET / on the public side. The optional "category"
// query parameter filters by category id.
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	lo := projectstore.ListOptions{ActiveOnly: true}

	if raw := normalize.QueryParam(r.URL.Query().Get("category")); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			jsonutil.BadRequest(w, "invalid category id")
			return
		}
		lo.CategoryID = &id
	}

	projects, err := h.projects.List(r.Context(), lo)
	if err != nil {
		h.logger.Error("project list failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to list projects")
		return
	}
	jsonutil.OK(w, projects)
}

// GetBySlug handles GET /{slug} on the public side. Inactive projects are
// indistinguishable from missing ones.
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !slugify.IsValid(slug) {
		jsonutil.BadRequest(w, "invalid project slug")
		return
	}

	p, err := h.projects.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "project not found")
			return
		}
		h.logger.Error("project read failed", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to load project")
		return
	}
	if !p.IsActive {
		jsonutil.NotFound(w, "project not found")
		return
	}
	jsonutil.OK(w, p)
}

// List handles GET / on the admin side: every project.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context(), projectstore.ListOptions{})
	if err != nil {
		h.logger.Error("project list failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to list projects")
		return
	}
	jsonutil.OK(w, projects)
}

type projectInput struct {
	Name        string   `json:"name" validate:"required,max=200" label:"Name"`
	Slug        string   `json:"slug" validate:"slug,max=120" label:"Slug"`
	CategoryID  string   `json:"category_id" label:"Category"`
	Description string   `json:"description" label:"Description"`
	Location    string   `json:"location" validate:"max=200" label:"Location"`
	Price       string   `json:"price" validate:"max=100" label:"Price"`
	Badge       string   `json:"badge" validate:"max=60" label:"Badge"`
	Images      []string `json:"images"`
	Highlights  []string `json:"highlights"`
	IsActive    *bool    `json:"is_active"`
	Order       int      `json:"order"`
}

// Create handles POST / on the admin side.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in projectInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	in.Name = normalize.Name(in.Name)
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
	p := models.Project{
		Name:        in.Name,
		Slug:        in.Slug,
		CategoryID:  categoryID,
		Description: htmlsanitize.Sanitize(in.Description),
		Location:    in.Location,
		Price:       in.Price,
		Badge:       in.Badge,
		Images:      in.Images,
		Highlights:  in.Highlights,
		IsActive:    active,
		Order:       in.Order,
	}

	created, err := h.projects.Create(r.Context(), p)
	if err != nil {
		if errors.Is(err, storeutil.ErrConflict) {
			jsonutil.BadRequest(w, "a project with that slug already exists")
			return
		}
		h.logger.Error("project create failed", zap.String("name", in.Name), zap.Error(err))
		jsonutil.InternalError(w, "failed to create project")
		return
	}

	h.logger.Info("project created", zap.String("slug", created.Slug))
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

	_, err := h.projects.GetBySlug(r.Context(), slug)
	switch {
	case err == nil:
		jsonutil.OK(w, map[string]any{"slug": slug, "available": false})
	case errors.Is(err, storeutil.ErrNotFound):
		jsonutil.OK(w, map[string]any{"slug": slug, "available": true})
	default:
		h.logger.Error("project slug check failed", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to check slug")
	}
}

// Get handles GET /{id} on the admin side.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.projects.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "project not found")
			return
		}
		h.logger.Error("project read failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to load project")
		return
	}
	jsonutil.OK(w, p)
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
	if desc, ok := partial["description"].(string); ok {
		partial["description"] = htmlsanitize.Sanitize(desc)
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

	updated, err := h.projects.Update(r.Context(), id, partial)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "project not found")
			return
		}
		if errors.Is(err, storeutil.ErrConflict) {
			jsonutil.BadRequest(w, "a project with that slug already exists")
			return
		}
		h.logger.Error("project update failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update project")
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

	if err := h.projects.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "project not found")
			return
		}
		h.logger.Error("project delete failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to delete project")
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
