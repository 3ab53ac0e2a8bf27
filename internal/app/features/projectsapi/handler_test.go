package projectsapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	categorystore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/categories"
	projectstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/projects"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"github.com/Nexgeno-Developers/novaa-cms/internal/testutil"
	"go.uber.org/zap"
)

type projectsFixture struct {
	categories *categorystore.Store
	public     http.Handler
	admin      http.Handler
}

func setupProjects(t *testing.T) projectsFixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := NewHandler(projectstore.New(db), zap.NewNop())
	return projectsFixture{
		categories: categorystore.New(db),
		public:     PublicRoutes(h),
		admin:      AdminRoutes(h),
	}
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeProject(t *testing.T, rec *httptest.ResponseRecorder) models.Project {
	t.Helper()
	var resp struct {
		Data models.Project `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.Data
}

func TestCreateProject(t *testing.T) {
	f := setupProjects(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	cat, err := f.categories.Create(ctx, models.Category{Name: "Villas", IsActive: true})
	if err != nil {
		t.Fatalf("category create: %v", err)
	}

	t.Run("creates with derived slug and populated category", func(t *testing.T) {
		rec := do(t, f.admin, http.MethodPost, "/", map[string]any{
			"name":        "Sunset Villa",
			"category_id": cat.ID.Hex(),
			"location":    "Phuket",
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("Create status = %d, want %d. Body: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		p := decodeProject(t, rec)
		if p.Slug != "sunset-villa" {
			t.Errorf("slug = %q, want %q", p.Slug, "sunset-villa")
		}
		if p.Category == nil || p.Category.Slug != "villas" {
			t.Errorf("category not populated: %+v", p.Category)
		}
	})

	t.Run("description HTML is sanitized", func(t *testing.T) {
		rec := do(t, f.admin, http.MethodPost, "/", map[string]any{
			"name":        "Script Villa",
			"description": `<p>Fine living</p><script>alert(1)</script>`,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("Create status = %d, want %d. Body: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		p := decodeProject(t, rec)
		if strings.Contains(p.Description, "<script") {
			t.Errorf("description kept script tag: %q", p.Description)
		}
		if !strings.Contains(p.Description, "Fine living") {
			t.Errorf("description lost safe markup: %q", p.Description)
		}
	})

	t.Run("bad category id", func(t *testing.T) {
		rec := do(t, f.admin, http.MethodPost, "/", map[string]any{
			"name":        "Broken",
			"category_id": "not-hex",
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestPublicProjects(t *testing.T) {
	f := setupProjects(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	villas, err := f.categories.Create(ctx, models.Category{Name: "Villas", IsActive: true})
	if err != nil {
		t.Fatalf("category create: %v", err)
	}
	condos, err := f.categories.Create(ctx, models.Category{Name: "Condos", IsActive: true})
	if err != nil {
		t.Fatalf("category create: %v", err)
	}

	seed := []map[string]any{
		{"name": "Sunset Villa", "category_id": villas.ID.Hex()},
		{"name": "Marina Condo", "category_id": condos.ID.Hex()},
		{"name": "Ghost Project", "is_active": false},
	}
	for _, p := range seed {
		if rec := do(t, f.admin, http.MethodPost, "/", p); rec.Code != http.StatusCreated {
			t.Fatalf("seed create failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	t.Run("listing excludes inactive", func(t *testing.T) {
		rec := do(t, f.public, http.MethodGet, "/", nil)
		var resp struct {
			Data []models.Project `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Data) != 2 {
			t.Errorf("projects = %d, want 2", len(resp.Data))
		}
	})

	t.Run("category filter", func(t *testing.T) {
		rec := do(t, f.public, http.MethodGet, "/?category="+villas.ID.Hex(), nil)
		var resp struct {
			Data []models.Project `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Data) != 1 || resp.Data[0].Slug != "sunset-villa" {
			t.Errorf("filtered projects = %+v, want just sunset-villa", resp.Data)
		}
	})

	t.Run("detail by slug", func(t *testing.T) {
		rec := do(t, f.public, http.MethodGet, "/sunset-villa", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("GetBySlug status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("inactive detail is a 404", func(t *testing.T) {
		rec := do(t, f.public, http.MethodGet, "/ghost-project", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestUpdateProjectCategory(t *testing.T) {
	f := setupProjects(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	cat, err := f.categories.Create(ctx, models.Category{Name: "Villas", IsActive: true})
	if err != nil {
		t.Fatalf("category create: %v", err)
	}

	created := decodeProject(t, do(t, f.admin, http.MethodPost, "/", map[string]any{"name": "Loose Villa"}))
	id := created.ID.Hex()

	t.Run("assign category", func(t *testing.T) {
		rec := do(t, f.admin, http.MethodPut, "/"+id, map[string]any{"category_id": cat.ID.Hex()})
		if rec.Code != http.StatusOK {
			t.Fatalf("Update status = %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		p := decodeProject(t, rec)
		if p.Category == nil || p.Category.Slug != "villas" {
			t.Errorf("category not populated after update: %+v", p.Category)
		}
	})

	t.Run("clear category with empty string", func(t *testing.T) {
		rec := do(t, f.admin, http.MethodPut, "/"+id, map[string]any{"category_id": ""})
		if rec.Code != http.StatusOK {
			t.Fatalf("Update status = %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		p := decodeProject(t, rec)
		if p.CategoryID != nil {
			t.Errorf("category_id should be cleared, got %v", p.CategoryID)
		}
	})
}
