// internal/app/store/pages/pagestore.go
package pagestore

import (
	"context"
	"time"

	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the pages collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new page store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("pages")}
}

// GetBySlug returns a page by its slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Page, error) {
	var page models.Page
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&page)
	if err == mongo.ErrNoDocuments {
		return models.Page{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Page{}, err
	}
	return page, nil
}

// Create inserts a new page. The slug must not collide with an existing
// page; collisions surface as storeutil.ErrConflict whether caught by the
// pre-check or the unique index.
func (s *Store) Create(ctx context.Context, page models.Page) (models.Page, error) {
	exists, err := s.Exists(ctx, page.Slug)
	if err != nil {
		return models.Page{}, err
	}
	if exists {
		return models.Page{}, storeutil.ErrConflict
	}

	page.ID = primitive.NewObjectID()
	page.CreatedAt = time.Now().UTC()
	if page.Status == "" {
		page.Status = models.StatusActive
	}

	if _, err := s.c.InsertOne(ctx, page); err != nil {
		if storeutil.IsDuplicateKeyErr(err) {
			return models.Page{}, storeutil.ErrConflict
		}
		return models.Page{}, err
	}
	return page, nil
}

// Update applies a partial update to a page by slug. The slug itself is
// immutable - sections reference pages by slug, so renames would orphan
// them.
func (s *Store) Update(ctx context.Context, slug string, partial bson.M) (models.Page, error) {
	set := bson.M{}
	for k, v := range partial {
		set[k] = v
	}
	delete(set, "_id")
	delete(set, "slug")
	delete(set, "created_at")
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var page models.Page
	err := s.c.FindOneAndUpdate(ctx, bson.M{"slug": slug}, bson.M{"$set": set}, opts).Decode(&page)
	if err == mongo.ErrNoDocuments {
		return models.Page{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Page{}, err
	}
	return page, nil
}

// Upsert creates or updates a page by slug. Used by seeding.
func (s *Store) Upsert(ctx context.Context, page models.Page) error {
	now := time.Now().UTC()

	filter := bson.M{"slug": page.Slug}
	update := bson.M{
		"$set": bson.M{
			"title":            page.Title,
			"status":           page.Status,
			"template":         page.Template,
			"meta_title":       page.MetaTitle,
			"meta_description": page.MetaDescription,
			"meta_keywords":    page.MetaKeywords,
			"updated_at":       now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"slug":       page.Slug,
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetAll returns all pages sorted by slug.
func (s *Store) GetAll(ctx context.Context) ([]models.Page, error) {
	opts := options.Find().SetSort(bson.D{{Key: "slug", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var pages []models.Page
	if err := cur.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// Exists checks if a page with the given slug exists.
func (s *Store) Exists(ctx context.Context, slug string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
