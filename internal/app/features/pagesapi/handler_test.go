package pagesapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	pagestore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/pages"
	sectionstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/sections"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"github.com/Nexgeno-Developers/novaa-cms/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type pagesFixture struct {
	pages    *pagestore.Store
	sections *sectionstore.Store
	handler  *Handler
}

func setupPages(t *testing.T) pagesFixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	pages := pagestore.New(db)
	sections := sectionstore.New(db)
	return pagesFixture{
		pages:    pages,
		sections: sections,
		handler:  NewHandler(pages, sections, zap.NewNop()),
	}
}

func (f pagesFixture) mustCreatePage(t *testing.T, p models.Page) models.Page {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	created, err := f.pages.Create(ctx, p)
	if err != nil {
		t.Fatalf("pages.Create(%q) error = %v", p.Slug, err)
	}
	return created
}

func (f pagesFixture) mustCreateSection(t *testing.T, s models.Section) models.Section {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	created, err := f.sections.Create(ctx, s)
	if err != nil {
		t.Fatalf("sections.Create(%q/%q) error = %v", s.PageSlug, s.Slug, err)
	}
	return created
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetComposed(t *testing.T) {
	f := setupPages(t)
	public := PublicRoutes(f.handler)

	f.mustCreatePage(t, models.Page{Slug: "home", Title: "Home", Status: models.StatusActive})
	f.mustCreateSection(t, models.Section{
		PageSlug: "home",
		Slug:     "hero",
		Type:     models.SectionTypeHero,
		Order:    0,
		Settings: models.SectionSettings{IsVisible: true},
		Content:  bson.M{"heading": "Welcome"},
	})
	f.mustCreateSection(t, models.Section{
		PageSlug: "home",
		Slug:     "mystery",
		Type:     "mystery-block",
		Order:    1,
		Settings: models.SectionSettings{IsVisible: true},
		Content:  bson.M{"anything": true},
	})
	f.mustCreateSection(t, models.Section{
		PageSlug: "home",
		Slug:     "hidden",
		Type:     models.SectionTypeCTA,
		Order:    2,
		Settings: models.SectionSettings{IsVisible: false},
	})

	t.Run("composes visible sections in order", func(t *testing.T) {
		rec := doJSON(t, public, http.MethodGet, "/home", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("GetComposed status = %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var resp struct {
			Data struct {
				Page struct {
					Slug string `json:"slug"`
				} `json:"page"`
				Sections []struct {
					Slug    string         `json:"slug"`
					Type    string         `json:"type"`
					Content map[string]any `json:"content"`
				} `json:"sections"`
			} `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if resp.Data.Page.Slug != "home" {
			t.Errorf("page slug = %q, want %q", resp.Data.Page.Slug, "home")
		}
		if len(resp.Data.Sections) != 2 {
			t.Fatalf("sections = %d, want 2 (hidden section excluded)", len(resp.Data.Sections))
		}
		if resp.Data.Sections[0].Slug != "hero" || resp.Data.Sections[1].Slug != "mystery" {
			t.Errorf("section order = [%s, %s], want [hero, mystery]",
				resp.Data.Sections[0].Slug, resp.Data.Sections[1].Slug)
		}
		if got := resp.Data.Sections[0].Content["heading"]; got != "Welcome" {
			t.Errorf("hero heading = %v, want %q", got, "Welcome")
		}
		// Unmapped section types still render, carrying the raw payload.
		if got := resp.Data.Sections[1].Type; got != "mystery-block" {
			t.Errorf("unknown section type = %q, want %q", got, "mystery-block")
		}
	})

	t.Run("inactive page is indistinguishable from missing", func(t *testing.T) {
		f.mustCreatePage(t, models.Page{Slug: "draft", Title: "Draft", Status: models.StatusInactive})

		inactive := doJSON(t, public, http.MethodGet, "/draft", nil)
		missing := doJSON(t, public, http.MethodGet, "/no-such-page", nil)

		if inactive.Code != http.StatusNotFound {
			t.Errorf("inactive page status = %d, want %d", inactive.Code, http.StatusNotFound)
		}
		if inactive.Body.String() != missing.Body.String() {
			t.Errorf("inactive and missing responses differ: %q vs %q",
				inactive.Body.String(), missing.Body.String())
		}
	})

	t.Run("invalid slug", func(t *testing.T) {
		rec := doJSON(t, public, http.MethodGet, "/Not-A-Slug", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestCreatePage(t *testing.T) {
	f := setupPages(t)
	admin := AdminRoutes(f.handler)

	t.Run("creates with defaults", func(t *testing.T) {
		rec := doJSON(t, admin, http.MethodPost, "/", map[string]any{
			"slug":  "about-us",
			"title": "About Us",
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("CreatePage status = %d, want %d. Body: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}

		var resp struct {
			Data models.Page `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Data.Status != models.StatusActive {
			t.Errorf("status = %q, want %q", resp.Data.Status, models.StatusActive)
		}
	})

	t.Run("duplicate slug", func(t *testing.T) {
		rec := doJSON(t, admin, http.MethodPost, "/", map[string]any{
			"slug":  "about-us",
			"title": "About Again",
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("duplicate status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("invalid slug fails validation", func(t *testing.T) {
		rec := doJSON(t, admin, http.MethodPost, "/", map[string]any{
			"slug":  "Not A Slug",
			"title": "Bad",
		})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		var resp struct {
			Fields map[string]string `json:"fields"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if _, ok := resp.Fields["slug"]; !ok {
			t.Errorf("expected a field error for slug, got %v", resp.Fields)
		}
	})
}

func TestUpdatePage(t *testing.T) {
	f := setupPages(t)
	admin := AdminRoutes(f.handler)

	f.mustCreatePage(t, models.Page{Slug: "home", Title: "Home", Status: models.StatusActive})

	rec := doJSON(t, admin, http.MethodPut, "/home", map[string]any{"title": "Homepage"})
	if rec.Code != http.StatusOK {
		t.Fatalf("UpdatePage status = %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Data models.Page `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Title != "Homepage" {
		t.Errorf("title = %q, want %q", resp.Data.Title, "Homepage")
	}

	t.Run("rejects bad status", func(t *testing.T) {
		rec := doJSON(t, admin, http.MethodPut, "/home", map[string]any{"status": "archived"})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("missing page", func(t *testing.T) {
		rec := doJSON(t, admin, http.MethodPut, "/nope", map[string]any{"title": "x"})
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestCreateSection(t *testing.T) {
	f := setupPages(t)
	admin := AdminRoutes(f.handler)

	f.mustCreatePage(t, models.Page{Slug: "home", Title: "Home", Status: models.StatusActive})

	t.Run("creates a section", func(t *testing.T) {
		rec := doJSON(t, admin, http.MethodPost, "/home/sections", map[string]any{
			"slug":     "hero",
			"type":     models.SectionTypeHero,
			"settings": map[string]any{"is_visible": true},
			"content":  map[string]any{"heading": "Hi"},
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("CreateSection status = %d, want %d. Body: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
	})

	t.Run("duplicate slug on the same page", func(t *testing.T) {
		rec := doJSON(t, admin, http.MethodPost, "/home/sections", map[string]any{
			"slug": "hero",
			"type": models.SectionTypeHero,
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("duplicate status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("unknown page", func(t *testing.T) {
		rec := doJSON(t, admin, http.MethodPost, "/nope/sections", map[string]any{
			"slug": "hero",
		})
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestReorderSections(t *testing.T) {
	f := setupPages(t)
	admin := AdminRoutes(f.handler)

	f.mustCreatePage(t, models.Page{Slug: "home", Title: "Home", Status: models.StatusActive})
	a := f.mustCreateSection(t, models.Section{PageSlug: "home", Slug: "a", Type: models.SectionTypeHero, Order: 0})
	b := f.mustCreateSection(t, models.Section{PageSlug: "home", Slug: "b", Type: models.SectionTypeCTA, Order: 1})
	c := f.mustCreateSection(t, models.Section{PageSlug: "home", Slug: "c", Type: models.SectionTypeFAQ, Order: 2})

	rec := doJSON(t, admin, http.MethodPost, "/home/sections/reorder", map[string]any{
		"ids": []string{c.ID.Hex(), a.ID.Hex(), b.ID.Hex()},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("ReorderSections status = %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Data []models.Section `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("sections = %d, want 3", len(resp.Data))
	}
	wantOrder := []string{"c", "a", "b"}
	for i, sec := range resp.Data {
		if sec.Slug != wantOrder[i] {
			t.Errorf("position %d = %q, want %q", i, sec.Slug, wantOrder[i])
		}
		if sec.Order != i {
			t.Errorf("section %q order = %d, want %d", sec.Slug, sec.Order, i)
		}
	}
}

func TestUpdateAndDeleteSection(t *testing.T) {
	f := setupPages(t)
	sections := SectionRoutes(f.handler)

	f.mustCreatePage(t, models.Page{Slug: "home", Title: "Home", Status: models.StatusActive})
	sec := f.mustCreateSection(t, models.Section{
		PageSlug: "home",
		Slug:     "hero",
		Type:     models.SectionTypeHero,
		Content:  bson.M{"heading": "Old"},
	})

	t.Run("update content", func(t *testing.T) {
		rec := doJSON(t, sections, http.MethodPut, fmt.Sprintf("/%s", sec.ID.Hex()), map[string]any{
			"content": map[string]any{"heading": "New"},
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("UpdateSection status = %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var resp struct {
			Data models.Section `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if got := resp.Data.Content["heading"]; got != "New" {
			t.Errorf("heading = %v, want %q", got, "New")
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := doJSON(t, sections, http.MethodPut, "/not-a-hex-id", map[string]any{"order": 1})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("delete then delete again", func(t *testing.T) {
		rec := doJSON(t, sections, http.MethodDelete, fmt.Sprintf("/%s", sec.ID.Hex()), nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("DeleteSection status = %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		rec = doJSON(t, sections, http.MethodDelete, fmt.Sprintf("/%s", sec.ID.Hex()), nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("second delete status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}
