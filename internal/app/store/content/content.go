// Package content implements the two accessor contracts for CMS content
// documents.
//
// Singleton: a collection intended to hold exactly one live document.
// Get is find-or-create-with-defaults - the caller never observes "no
// content". Update is an upsert against the singleton filter, so at most
// one document ever exists. Ensure is the explicit idempotent
// materialization step; seeding runs it at startup so steady-state reads
// never write.
//
// SlugKeyed: one document per page slug. Get on a missing slug returns a
// non-persisted default (slugs are unbounded, so write-on-read would be
// unbounded growth). Upsert creates on absence and always stamps the
// page_slug key so the payload cannot overwrite it.
//
// Concurrent updates to the same document race non-atomically across
// fields; the last write to commit wins per field group. Accepted for
// low-write admin content.
package content

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// singletonFilter matches the one live document of a singleton collection.
var singletonFilter = bson.M{"singleton": true}

// Singleton provides access to a one-document content collection.
type Singleton[T any] struct {
	c        *mongo.Collection
	defaults func() T
}

// NewSingleton creates a singleton accessor for a collection. defaults
// builds the document persisted on first access.
func NewSingleton[T any](db *mongo.Database, collection string, defaults func() T) *Singleton[T] {
	return &Singleton[T]{c: db.Collection(collection), defaults: defaults}
}

// Get returns the singleton document, materializing it from defaults if
// the collection is empty. After the first call (or a startup Ensure) the
// read path never writes.
func (s *Singleton[T]) Get(ctx context.Context) (T, error) {
	var doc T
	err := s.c.FindOne(ctx, singletonFilter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		if err := s.Ensure(ctx); err != nil {
			return doc, err
		}
		err = s.c.FindOne(ctx, singletonFilter).Decode(&doc)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// Ensure materializes the default document if none exists. Idempotent:
// the upsert only inserts, never modifies an existing document.
func (s *Singleton[T]) Ensure(ctx context.Context) error {
	onInsert, err := toDocument(s.defaults())
	if err != nil {
		return err
	}
	delete(onInsert, "_id")
	onInsert["singleton"] = true
	onInsert["created_at"] = time.Now().UTC()

	opts := options.Update().SetUpsert(true)
	_, err = s.c.UpdateOne(ctx, singletonFilter, bson.M{"$setOnInsert": onInsert}, opts)
	return err
}

// Update applies a partial update via upsert and returns the merged
// document. If no document exists one is created from the partial payload.
// The document id is stable across updates.
func (s *Singleton[T]) Update(ctx context.Context, partial bson.M) (T, error) {
	var doc T

	set := bson.M{}
	for k, v := range partial {
		set[k] = v
	}
	delete(set, "_id")
	delete(set, "created_at")
	set["singleton"] = true
	set["updated_at"] = time.Now().UTC()

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	if err := s.c.FindOneAndUpdate(ctx, singletonFilter, update, opts).Decode(&doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// Count returns the number of documents in the collection. Used by tests
// to verify the at-most-one invariant.
func (s *Singleton[T]) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// SlugKeyed provides access to a per-page-slug content collection.
type SlugKeyed[T any] struct {
	c        *mongo.Collection
	defaults func(pageSlug string) T
}

// NewSlugKeyed creates a slug-keyed accessor for a collection. defaults
// builds the non-persisted document returned when a slug has no record.
func NewSlugKeyed[T any](db *mongo.Database, collection string, defaults func(pageSlug string) T) *SlugKeyed[T] {
	return &SlugKeyed[T]{c: db.Collection(collection), defaults: defaults}
}

// Get returns the document for a page slug. A miss returns the default
// shape without persisting anything.
func (s *SlugKeyed[T]) Get(ctx context.Context, pageSlug string) (T, error) {
	var doc T
	err := s.c.FindOne(ctx, bson.M{"page_slug": pageSlug}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return s.defaults(pageSlug), nil
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// Upsert applies a partial update keyed by page slug, creating the
// document if absent. page_slug is always stamped from the argument so the
// payload cannot move a document to another page.
func (s *SlugKeyed[T]) Upsert(ctx context.Context, pageSlug string, partial bson.M) (T, error) {
	var doc T

	set := bson.M{}
	for k, v := range partial {
		set[k] = v
	}
	delete(set, "_id")
	delete(set, "created_at")
	set["page_slug"] = pageSlug
	set["updated_at"] = time.Now().UTC()

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"created_at": time.Now().UTC(),
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"page_slug": pageSlug}, update, opts).Decode(&doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// CountForSlug returns the number of documents stored for a page slug.
// Used by tests to verify that Get never persists.
func (s *SlugKeyed[T]) CountForSlug(ctx context.Context, pageSlug string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"page_slug": pageSlug})
}

// toDocument converts a struct to a bson map via the driver's codecs so
// the stored shape matches the struct's bson tags.
func toDocument(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
