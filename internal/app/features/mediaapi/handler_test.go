package mediaapi

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

func newUploadRouter(t *testing.T) http.Handler {
	t.Helper()
	store, err := storage.NewLocal(storage.LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "/files",
	})
	if err != nil {
		t.Fatalf("failed to create local storage: %v", err)
	}
	return Routes(NewHandler(store, zap.NewNop()))
}

// multipartUpload builds a multipart body with a single "file" part.
func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestUpload(t *testing.T) {
	router := newUploadRouter(t)

	t.Run("stores an image and returns its URL", func(t *testing.T) {
		content := []byte("\x89PNG\r\n\x1a\nnot-really-a-png")
		body, contentType := multipartUpload(t, "hero.png", content)

		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("Upload status = %d, want %d. Body: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}

		var resp struct {
			Data uploadResult `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !strings.HasPrefix(resp.Data.Path, "media/") {
			t.Errorf("Path = %q, want media/YYYY/MM prefix", resp.Data.Path)
		}
		if !strings.HasSuffix(resp.Data.Path, ".png") {
			t.Errorf("Path = %q, should keep the .png extension", resp.Data.Path)
		}
		if !strings.HasPrefix(resp.Data.URL, "/files/") {
			t.Errorf("URL = %q, want the configured base URL prefix", resp.Data.URL)
		}
		if resp.Data.Name != "hero.png" {
			t.Errorf("Name = %q, want %q", resp.Data.Name, "hero.png")
		}
		if resp.Data.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", resp.Data.Size, len(content))
		}
	})

	t.Run("rejects a disallowed extension", func(t *testing.T) {
		body, contentType := multipartUpload(t, "payload.exe", []byte("MZ"))

		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Upload status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("requires a file part", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		if err := w.Close(); err != nil {
			t.Fatalf("failed to close multipart writer: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Upload status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}
