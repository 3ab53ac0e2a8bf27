// internal/app/store/sections/sectionstore.go
package sectionstore

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

// Store provides access to the sections collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new section store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("sections")}
}

// ListForPage returns the renderable sections of a page: status active,
// visible, sorted ascending by order. Mongo's sort is stable for equal
// keys, so ties preserve storage order.
func (s *Store) ListForPage(ctx context.Context, pageSlug string) ([]models.Section, error) {
	filter := bson.M{
		"page_slug":           pageSlug,
		"status":              models.StatusActive,
		"settings.is_visible": true,
	}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var sections []models.Section
	if err := cur.All(ctx, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// ListAll returns every section of a page regardless of status or
// visibility, for the admin panel. Same ordering as ListForPage.
func (s *Store) ListAll(ctx context.Context, pageSlug string) ([]models.Section, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"page_slug": pageSlug}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var sections []models.Section
	if err := cur.All(ctx, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// GetByID returns a section by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Section, error) {
	var sec models.Section
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sec)
	if err == mongo.ErrNoDocuments {
		return models.Section{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Section{}, err
	}
	return sec, nil
}

// Create inserts a new section. (page_slug, slug) must be unique;
// collisions surface as storeutil.ErrConflict.
func (s *Store) Create(ctx context.Context, sec models.Section) (models.Section, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"page_slug": sec.PageSlug, "slug": sec.Slug})
	if err != nil {
		return models.Section{}, err
	}
	if count > 0 {
		return models.Section{}, storeutil.ErrConflict
	}

	sec.ID = primitive.NewObjectID()
	sec.CreatedAt = time.Now().UTC()
	if sec.Status == "" {
		sec.Status = models.StatusActive
	}
	if sec.Content == nil {
		sec.Content = bson.M{}
	}

	if _, err := s.c.InsertOne(ctx, sec); err != nil {
		if storeutil.IsDuplicateKeyErr(err) {
			return models.Section{}, storeutil.ErrConflict
		}
		return models.Section{}, err
	}
	return sec, nil
}

// Update applies a partial update by id. page_slug and slug are immutable
// through this path; move a block by deleting and recreating it.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, partial bson.M) (models.Section, error) {
	set := bson.M{}
	for k, v := range partial {
		set[k] = v
	}
	delete(set, "_id")
	delete(set, "page_slug")
	delete(set, "slug")
	delete(set, "created_at")
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var sec models.Section
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&sec)
	if err == mongo.ErrNoDocuments {
		return models.Section{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Section{}, err
	}
	return sec, nil
}

// Delete removes a section by id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return storeutil.ErrNotFound
	}
	return nil
}

// Reorder assigns order = index for each id in the given sequence, scoped
// to one page, as a single batched write. Best effort: a partial failure
// can leave mixed order values, which the next reorder repairs. Ids not
// belonging to the page are skipped by the per-item filter.
func (s *Store) Reorder(ctx context.Context, pageSlug string, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}

	now := time.Now().UTC()
	writes := make([]mongo.WriteModel, 0, len(ids))
	for i, id := range ids {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id, "page_slug": pageSlug}).
			SetUpdate(bson.M{"$set": bson.M{"order": i, "updated_at": now}}))
	}

	_, err := s.c.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	return err
}

// Upsert creates or updates a section by its (page_slug, slug) key.
// Used by seeding; existing sections keep their admin-edited content.
func (s *Store) Upsert(ctx context.Context, sec models.Section) error {
	now := time.Now().UTC()

	filter := bson.M{"page_slug": sec.PageSlug, "slug": sec.Slug}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"page_slug":  sec.PageSlug,
			"slug":       sec.Slug,
			"type":       sec.Type,
			"order":      sec.Order,
			"status":     sec.Status,
			"settings":   sec.Settings,
			"content":    sec.Content,
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}
