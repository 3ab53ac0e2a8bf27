package pagestore

import (
	"errors"
	"testing"

	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"github.com/Nexgeno-Developers/novaa-cms/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	if store == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{
		Slug:      "luxury-villas",
		Title:     "Luxury Villas",
		MetaTitle: "Luxury Villas in Phuket",
	}

	created, err := store.Create(ctx, page)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID.IsZero() {
		t.Error("Create() should assign an ID")
	}
	if created.Status != models.StatusActive {
		t.Errorf("Status = %v, want %v (default)", created.Status, models.StatusActive)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	retrieved, err := store.GetBySlug(ctx, "luxury-villas")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if retrieved.Title != page.Title {
		t.Errorf("Title = %v, want %v", retrieved.Title, page.Title)
	}
}

func TestStore_Create_DuplicateSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Page{Slug: "home", Title: "Home"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := store.Create(ctx, models.Page{Slug: "home", Title: "Home Again"})
	if !errors.Is(err, storeutil.ErrConflict) {
		t.Errorf("Create() duplicate slug error = %v, want ErrConflict", err)
	}
}

func TestStore_GetBySlug_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetBySlug(ctx, "nonexistent")
	if !errors.Is(err, storeutil.ErrNotFound) {
		t.Errorf("GetBySlug() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Page{Slug: "about-us", Title: "About"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := store.Update(ctx, "about-us", bson.M{
		"title":      "About Novaa",
		"meta_title": "About Novaa Real Estate",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "About Novaa" {
		t.Errorf("Title = %v, want 'About Novaa'", updated.Title)
	}
	if updated.MetaTitle != "About Novaa Real Estate" {
		t.Errorf("MetaTitle = %v, want 'About Novaa Real Estate'", updated.MetaTitle)
	}
	if updated.ID != created.ID {
		t.Error("Update() should keep the same document ID")
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set after update")
	}
}

func TestStore_Update_SlugImmutable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Page{Slug: "contact-us", Title: "Contact"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := store.Update(ctx, "contact-us", bson.M{
		"slug":  "renamed",
		"title": "Contact Page",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Slug != "contact-us" {
		t.Errorf("Slug = %v, want 'contact-us' (slug is immutable)", updated.Slug)
	}

	if _, err := store.GetBySlug(ctx, "renamed"); !errors.Is(err, storeutil.ErrNotFound) {
		t.Error("renamed slug should not exist")
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Update(ctx, "missing", bson.M{"title": "Anything"})
	if !errors.Is(err, storeutil.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Upsert_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 2; i++ {
		for _, p := range models.DefaultPages() {
			if err := store.Upsert(ctx, p); err != nil {
				t.Fatalf("Upsert() pass %d error = %v", i, err)
			}
		}
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(all) != len(models.DefaultPages()) {
		t.Errorf("GetAll() count = %d, want %d", len(all), len(models.DefaultPages()))
	}
}

func TestStore_GetAll_SortedBySlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, slug := range []string{"projects", "about-us", "home"} {
		if _, err := store.Create(ctx, models.Page{Slug: slug, Title: slug}); err != nil {
			t.Fatalf("Create(%s) error = %v", slug, err)
		}
	}

	pages, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	want := []string{"about-us", "home", "projects"}
	if len(pages) != len(want) {
		t.Fatalf("GetAll() count = %d, want %d", len(pages), len(want))
	}
	for i, slug := range want {
		if pages[i].Slug != slug {
			t.Errorf("pages[%d].Slug = %v, want %v", i, pages[i].Slug, slug)
		}
	}
}

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	exists, err := store.Exists(ctx, "blogs")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() should return false before page is created")
	}

	if _, err := store.Create(ctx, models.Page{Slug: "blogs", Title: "Blogs"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exists, err = store.Exists(ctx, "blogs")
	if err != nil {
		t.Fatalf("Exists() after create error = %v", err)
	}
	if !exists {
		t.Error("Exists() should return true after page is created")
	}
}
