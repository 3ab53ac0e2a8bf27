package content

import (
	"testing"

	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"github.com/Nexgeno-Developers/novaa-cms/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSingleton_Get_CreatesOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSingleton(db, CollNavbars, models.DefaultNavbar)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// First read of an empty collection materializes the defaults.
	first, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if first.ID.IsZero() {
		t.Error("Get() should return a persisted document with an id")
	}
	if len(first.Items) == 0 {
		t.Error("Get() should return default nav items")
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() after first Get = %d, want 1", count)
	}

	// Second read returns the same document without creating another.
	second, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() second error = %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second Get() id = %s, want %s", second.ID.Hex(), first.ID.Hex())
	}

	count, _ = store.Count(ctx)
	if count != 1 {
		t.Errorf("Count() after second Get = %d, want 1", count)
	}
}

func TestSingleton_Ensure_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSingleton(db, CollFaqs, models.DefaultFaq)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 3; i++ {
		if err := store.Ensure(ctx); err != nil {
			t.Fatalf("Ensure() #%d error = %v", i, err)
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() after repeated Ensure = %d, want 1", count)
	}
}

func TestSingleton_Update_UpsertsOnEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSingleton(db, CollContacts, models.DefaultContact)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Update with nothing stored creates the document.
	created, err := store.Update(ctx, bson.M{"title": "Reach Us", "email": "sales@novaa.example"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if created.Title != "Reach Us" {
		t.Errorf("Update() Title = %q, want %q", created.Title, "Reach Us")
	}

	count, _ := store.Count(ctx)
	if count != 1 {
		t.Errorf("Count() after upsert-on-empty = %d, want 1", count)
	}

	// A second update modifies the same document; the id is stable.
	updated, err := store.Update(ctx, bson.M{"phone": "+66 76 000 000"})
	if err != nil {
		t.Fatalf("Update() second error = %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("Update() id changed: %s -> %s", created.ID.Hex(), updated.ID.Hex())
	}
	if updated.Title != "Reach Us" {
		t.Errorf("Update() lost earlier field, Title = %q", updated.Title)
	}
	if updated.Phone != "+66 76 000 000" {
		t.Errorf("Update() Phone = %q, want %q", updated.Phone, "+66 76 000 000")
	}

	count, _ = store.Count(ctx)
	if count != 1 {
		t.Errorf("Count() after second update = %d, want 1", count)
	}
}

func TestSlugKeyed_Get_DoesNotPersist(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSlugKeyed(db, CollBreadcrumbs, models.DefaultBreadcrumb)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.Get(ctx, "about-us")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.PageSlug != "about-us" {
		t.Errorf("Get() PageSlug = %q, want %q", got.PageSlug, "about-us")
	}
	if len(got.Trail) == 0 {
		t.Error("Get() default should carry a breadcrumb trail")
	}

	count, err := store.CountForSlug(ctx, "about-us")
	if err != nil {
		t.Fatalf("CountForSlug() error = %v", err)
	}
	if count != 0 {
		t.Errorf("CountForSlug() after default Get = %d, want 0", count)
	}
}

func TestSlugKeyed_Upsert_StampsKey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSlugKeyed(db, CollBreadcrumbs, models.DefaultBreadcrumb)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The payload tries to move the document to another slug; the key wins.
	saved, err := store.Upsert(ctx, "projects", bson.M{
		"title":     "Our Projects",
		"page_slug": "somewhere-else",
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if saved.PageSlug != "projects" {
		t.Errorf("Upsert() PageSlug = %q, want %q", saved.PageSlug, "projects")
	}
	if saved.Title != "Our Projects" {
		t.Errorf("Upsert() Title = %q, want %q", saved.Title, "Our Projects")
	}

	// Upsert again under the same slug updates in place.
	again, err := store.Upsert(ctx, "projects", bson.M{"subtitle": "Handpicked developments"})
	if err != nil {
		t.Fatalf("Upsert() second error = %v", err)
	}
	if again.ID != saved.ID {
		t.Errorf("Upsert() id changed: %s -> %s", saved.ID.Hex(), again.ID.Hex())
	}

	count, _ := store.CountForSlug(ctx, "projects")
	if count != 1 {
		t.Errorf("CountForSlug() = %d, want 1", count)
	}
}
