// Package enquiriesapi handles contact-form submissions.
//
// The public side accepts new enquiries; the admin side lists them,
// moves them through the handling workflow, and deletes them.
package enquiriesapi

import (
	"errors"
	"net/http"
	"strconv"

	enquirystore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/enquiries"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/inputval"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/jsonutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/normalize"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves enquiry requests.
type Handler struct {
	enquiries *enquirystore.Store
	logger    *zap.Logger
}

// NewHandler creates a new enquiries handler.
func NewHandler(enquiries *enquirystore.Store, logger *zap.Logger) *Handler {
	return &Handler{enquiries: enquiries, logger: logger}
}

type enquiryInput struct {
	FullName  string `json:"full_name" validate:"required,max=200" label:"Full name"`
	Email     string `json:"email" validate:"required,email" label:"Email"`
	Phone     string `json:"phone" validate:"max=40" label:"Phone"`
	Message   string `json:"message" validate:"max=5000" label:"Message"`
	ProjectID string `json:"project_id" label:"Project"`
}

// Create handles the public POST /. Returns the stored enquiry including
// its human-quotable reference.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in enquiryInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	in.FullName = normalize.Name(in.FullName)
	in.Email = normalize.Email(in.Email)
	if result := inputval.Validate(&in); result.HasErrors() {
		jsonutil.ValidationError(w, result.Fields())
		return
	}

	var projectID *primitive.ObjectID
	if in.ProjectID != "" {
		id, err := primitive.ObjectIDFromHex(in.ProjectID)
		if err != nil {
			jsonutil.BadRequest(w, "invalid project id")
			return
		}
		projectID = &id
	}

	created, err := h.enquiries.Create(r.Context(), models.Enquiry{
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		ProjectID: projectID,
	})
	if err != nil {
		h.logger.Error("enquiry create failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to submit enquiry")
		return
	}

	h.logger.Info("enquiry received", zap.String("reference", created.Reference))
	jsonutil.Created(w, created)
}

// List handles the admin GET /. Supports status, page, and limit query
// parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	lo := enquirystore.ListOptions{}

	q := r.URL.Query()
	if status := normalize.QueryParam(q.Get("status")); status != "" {
		switch status {
		case models.EnquiryStatusNew, models.EnquiryStatusContacted, models.EnquiryStatusClosed:
			lo.Status = status
		default:
			jsonutil.BadRequest(w, "invalid status filter")
			return
		}
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

	res, err := h.enquiries.List(r.Context(), lo)
	if err != nil {
		h.logger.Error("enquiry list failed", zap.Error(err))
		jsonutil.InternalError(w, "failed to list enquiries")
		return
	}
	jsonutil.OK(w, res)
}

// Get handles the admin GET /{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	e, err := h.enquiries.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "enquiry not found")
			return
		}
		h.logger.Error("enquiry read failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to load enquiry")
		return
	}
	jsonutil.OK(w, e)
}

type statusInput struct {
	Status string `json:"status" validate:"required,oneof=new contacted closed" label:"Status"`
}

// UpdateStatus handles the admin PUT /{id}/status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in statusInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if result := inputval.Validate(&in); result.HasErrors() {
		jsonutil.ValidationError(w, result.Fields())
		return
	}

	updated, err := h.enquiries.UpdateStatus(r.Context(), id, in.Status)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "enquiry not found")
			return
		}
		h.logger.Error("enquiry status update failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to update enquiry")
		return
	}
	jsonutil.OK(w, updated)
}

// Delete handles the admin DELETE /{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.enquiries.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFound(w, "enquiry not found")
			return
		}
		h.logger.Error("enquiry delete failed", zap.String("id", id.Hex()), zap.Error(err))
		jsonutil.InternalError(w, "failed to delete enquiry")
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
