// Package pagesapi serves the composable page model.
//
// The public side composes a page from its metadata plus the ordered,
// visible sections, each with its payload decoded into the typed block
// variant. The admin side manages pages and their sections, including
// drag-and-drop reordering.
package pagesapi

import (
	"errors"
	"net/http"

	pagestore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/pages"
	sectionstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/sections"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/htmlsanitize"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/inputval"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/jsonutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/slugify"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves page and section requests.
type Handler struct {
	pages    *pagestore.Store
	sections *sectionstore.Store
	logger   *zap.Logger
}

// NewHandler creates a new pagesapi handler.
func NewHandler(pages *pagestore.Store, sections *sectionstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		pages:    pages,
		sections: sections,
		logger:   logger,
	}
}

// renderedSection is one block of a composed page: the section envelope
// with its payload decoded into the typed variant.
type renderedSection struct {
	ID       primitive.ObjectID     `json:"id"`
	Slug     string                 `json:"slug"`
	Type     string                 `json:"type"`
	Order    int                    `json:"order"`
	Settings models.SectionSettings `json:"settings"`
	Content  models.SectionContent  `json:"content"`
}

// composedPage is the public page response.
type composedPage struct {
	Page     models.Page       `json:"page"`
	Sections []renderedSection `json:"sections"`
}

// GetComposed handles GET /{slug}: the page with its renderable sections.
// Inactive pages are indistinguishable from missing ones.
func (h *Handler) GetComposed(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !slugify.IsValid(slug) {
		jsonutil.BadRequest(w, "invalid page slug")
		return
	}

	page, err := h.pages.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "page not found")
			return
		}
		h.logger.Error("page read failed", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to load page")
		return
	}
	if page.Status != models.StatusActive {
		jsonutil.NotFound(w, "page not found")
		return
	}

	sections, err := h.sections.ListForPage(r.Context(), slug)
	if err != nil {
		h.logger.Error("section list failed", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to load page")
		return
	}

	rendered := make([]renderedSection, 0, len(sections))
	for _, sec := range sections {
		decoded, err := models.DecodeContent(sec)
		if err != nil {
			// One malformed block must not take the page down.
			h.logger.Warn("section decode failed, skipping",
				zap.String("page_slug", slug),
				zap.String("section_slug", sec.Slug),
				zap.Error(err))
			continue
		}
		rendered = append(rendered, renderedSection{
			ID:       sec.ID,
			Slug:     sec.Slug,
			Type:     sec.RenderType(),
			Order:    sec.Order,
			Settings: sec.Settings,
			Content:  decoded,
		})
	}

	jsonutil.OK(w, composedPage{Page: page, Sections: rendered})
}

/* ------------------------------ admin: pages ------------------------------ */

// ListPages handles GET /: every page including inactive ones.
func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pages.GetAll(r.Context())
	if err != nil {
		h.logger.Error("page list failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to list pages")
		return
	}
	jsonutil.OK(w, pages)
}

type pageInput struct {
	Slug            string `json:"slug" validate:"required,slug,max=120" label:"Slug"`
	Title           string `json:"title" validate:"required,max=200" label:"Title"`
	Status          string `json:"status" validate:"oneof=active inactive" label:"Status"`
	Template        string `json:"template" label:"Template"`
	MetaTitle       string `json:"meta_title" label:"Meta title"`
	MetaDescription string `json:"meta_description" label:"Meta description"`
	MetaKeywords    string `json:"meta_keywords" label:"Meta keywords"`
}

// CreatePage handles POST /.
func (h *Handler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var in pageInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.Status == "" {
		in.Status = models.StatusActive
	}
	if result := inputval.Validate(&in); result.HasErrors() {
		jsonutil.ValidationError(w, result.Fields())
		return
	}

	page := models.Page{
		Slug:            in.Slug,
		Title:           in.Title,
		Status:          in.Status,
		Template:        in.Template,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		MetaKeywords:    in.MetaKeywords,
	}

	created, err := h.pages.Create(r.Context(), page)
	if err != nil {
		if errors.Is(err, storeutil.ErrConflict) {
			jsonutil.BadRequest(w, "a page with that slug already exists")
			return
		}
		h.logger.Error("page create failed", zap.String("slug", in.Slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to create page")
		return
	}

	h.logger.Info("page created", zap.String("slug", created.Slug))
	jsonutil.Created(w, created)
}

// GetPage handles GET /{slug}: the page document plus every section,
// hidden and inactive ones included, for the editor.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, err := h.pages.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "page not found")
			return
		}
		h.logger.Error("page read failed", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to load page")
		return
	}

	sections, err := h.sections.ListAll(r.Context(), slug)
	if err != nil {
		h.logger.Error("section list failed", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to load page")
		return
	}

	jsonutil.OK(w, map[string]any{
		"page":     page,
		"sections": sections,
	})
}

// UpdatePage handles PUT /{slug}. The slug itself is immutable.
func (h *Handler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var partial bson.M
	if err := jsonutil.Decode(r, &partial); err != nil || partial == nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if status, ok := partial["status"].(string); ok {
		if status != models.StatusActive && status != models.StatusInactive {
			jsonutil.BadRequest(w, "status must be active or inactive")
			return
		}
	}

	updated, err := h.pages.Update(r.Context(), slug, partial)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "page not found")
			return
		}
		h.logger.Error("page update failed", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "failed to update page")
		return
	}

	jsonutil.OK(w, updated)
}

/* ----------------------------- admin: sections ---------------------------- */

type sectionInput struct {
	Slug     string                 `json:"slug" validate:"required,slug,max=120" label:"Slug"`
	Type     string                 `json:"type" validate:"max=60" label:"Type"`
	Order    int                    `json:"order"`
	Status   string                 `json:"status" validate:"oneof=active inactive" label:"Status"`
	Settings models.SectionSettings `json:"settings"`
	Content  bson.M                 `json:"content"`
}

// CreateSection handles POST /{slug}/sections.
func (h *Handler) CreateSection(w http.ResponseWriter, r *http.Request) {
	pageSlug := chi.URLParam(r, "slug")

	if _, err := h.pages.GetBySlug(r.Context(), pageSlug); err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "page not found")
			return
		}
		h.logger.Error("page read failed", zap.String("slug", pageSlug), zap.Error(err))
		jsonutil.InternalError(w, "failed to create section")
		return
	}

	var in sectionInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.Status == "" {
		in.Status = models.StatusActive
	}
	if result := inputval.Validate(&in); result.HasErrors() {
		jsonutil.ValidationError(w, result.Fields())
		return
	}

	sec := models.Section{
		PageSlug: pageSlug,
		Slug:     in.Slug,
		Type:     in.Type,
		Order:    in.Order,
		Status:   in.Status,
		Settings: in.Settings,
		Content:  sanitizeContent(in.Content),
	}

	created, err := h.sections.Create(r.Context(), sec)
	if err != nil {
		if errors.Is(err, storeutil.ErrConflict) {
			jsonutil.BadRequest(w, "a section with that slug already exists on this page")
			return
		}
		h.logger.Error("section create failed",
			zap.String("page_slug", pageSlug),
			zap.String("slug", in.Slug),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to create section")
		return
	}

	h.logger.Info("section created",
		zap.String("page_slug", pageSlug),
		zap.String("slug", created.Slug))
	jsonutil.Created(w, created)
}

// UpdateSection handles PUT /sections/{id}.
func (h *Handler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := sectionID(w, r)
	if !ok {
		return
	}

	var partial bson.M
	if err := jsonutil.Decode(r, &partial); err != nil || partial == nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if status, ok := partial["status"].(string); ok {
		if status != models.StatusActive && status != models.StatusInactive {
			jsonutil.BadRequest(w, "status must be active or inactive")
			return
		}
	}
	if content, ok := partial["content"].(map[string]any); ok {
		partial["content"] = sanitizeContent(content)
	}

	updated, err := h.sections.Update(r.Context(), id, partial)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "section not found")
			return
		}
		h.logger.Error("section update failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update section")
		return
	}

	jsonutil.OK(w, updated)
}

// DeleteSection handles DELETE /sections/{id}.
func (h *Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id, ok := sectionID(w, r)
	if !ok {
		return
	}

	if err := h.sections.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "section not found")
			return
		}
		h.logger.Error("section delete failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to delete section")
		return
	}

	jsonutil.OK(w, map[string]any{"deleted": true})
}

type reorderInput struct {
	IDs []string `json:"ids"`
}

// ReorderSections handles POST /{slug}/sections/reorder. The body lists
// section ids in their new display order; order values are reassigned
// from zero.
func (h *Handler) ReorderSections(w http.ResponseWriter, r *http.Request) {
	pageSlug := chi.URLParam(r, "slug")

	var in reorderInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if len(in.IDs) == 0 {
		jsonutil.BadRequest(w, "ids are required")
		return
	}

	ids := make([]primitive.ObjectID, 0, len(in.IDs))
	for _, raw := range in.IDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			jsonutil.BadRequest(w, "invalid section id: "+raw)
			return
		}
		ids = append(ids, id)
	}

	if err := h.sections.Reorder(r.Context(), pageSlug, ids); err != nil {
		h.logger.Error("section reorder failed", zap.String("page_slug", pageSlug), zap.Error(err))
		jsonutil.InternalError(w, "failed to reorder sections")
		return
	}

	sections, err := h.sections.ListAll(r.Context(), pageSlug)
	if err != nil {
		h.logger.Error("section list failed", zap.String("page_slug", pageSlug), zap.Error(err))
		jsonutil.InternalError(w, "failed to reorder sections")
		return
	}

	jsonutil.OK(w, sections)
}

func sectionID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		jsonutil.BadRequest(w, "invalid section id")
		return primitive.ObjectID{}, false
	}
	return id, true
}

// sanitizeContent scrubs the HTML-bearing keys of a section payload.
func sanitizeContent(content map[string]any) bson.M {
	if content == nil {
		return nil
	}
	out := bson.M{}
	for k, v := range content {
		if s, ok := v.(string); ok && (k == "html" || k == "description" || k == "body") {
			out[k] = htmlsanitize.Sanitize(s)
			continue
		}
		out[k] = v
	}
	return out
}
