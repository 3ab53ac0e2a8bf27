// Package mediaapi handles admin media uploads for images used in
// content documents, projects, and blog posts. Files go to the
// configured storage backend under a dated, collision-free path; the
// response carries the public URL to store in the document.
package mediaapi

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/jsonutil"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxUploadSize caps a single upload at 16 MB.
const maxUploadSize = 16 << 20

// allowedExtensions lists the image types the panel may upload.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".svg":  true,
}

// Handler serves media upload requests.
type Handler struct {
	store  storage.Store
	logger *zap.Logger
}

// NewHandler creates a new media handler.
func NewHandler(store storage.Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Routes returns the admin media API.
//
// When mounted at /api/cms/media:
//   - POST /api/cms/media - multipart upload, field name "file"
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.Upload)
	return r
}

// uploadResult is the success payload for an upload.
type uploadResult struct {
	URL         string `json:"url"`
	Path        string `json:"path"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Upload handles POST /: stores the uploaded image and returns its URL.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		jsonutil.BadRequest(w, "file too large (max 16MB)")
		return
	}

	uploadedFile, header, err := r.FormFile("file")
	if err != nil {
		jsonutil.BadRequest(w, "a file is required")
		return
	}
	defer uploadedFile.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		jsonutil.BadRequest(w, "unsupported file type")
		return
	}

	// Storage path: media/YYYY/MM/uuid.ext
	now := time.Now().UTC()
	uniqueName := fmt.Sprintf("%s%s", uuid.New().String()[:8], ext)
	storagePath := fmt.Sprintf("media/%04d/%02d/%s", now.Year(), int(now.Month()), uniqueName)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opts := &storage.PutOptions{
		ContentType: contentType,
	}
	if err := h.store.Put(r.Context(), storagePath, uploadedFile, opts); err != nil {
		h.logger.Error("media upload failed",
			zap.String("path", storagePath),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to store file")
		return
	}

	h.logger.Info("media uploaded",
		zap.String("path", storagePath),
		zap.Int64("size", header.Size))

	jsonutil.Created(w, uploadResult{
		URL:         h.store.URL(storagePath),
		Path:        storagePath,
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: contentType,
	})
}
