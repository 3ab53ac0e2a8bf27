// internal/app/store/admins/adminstore.go
package adminstore

import (
	"context"
	"time"

	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/normalize"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the admins collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new admin store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admins")}
}

// GetByID returns an admin account by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Admin, error) {
	var a models.Admin
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return models.Admin{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Admin{}, err
	}
	return a, nil
}

// GetByEmail returns an admin account by normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	var a models.Admin
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return models.Admin{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Admin{}, err
	}
	return a, nil
}

// Create inserts a new admin account. Email collisions surface as
// storeutil.ErrConflict.
func (s *Store) Create(ctx context.Context, a models.Admin) (models.Admin, error) {
	a.Email = normalize.Email(a.Email)
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()
	if a.Role == "" {
		a.Role = models.AdminRoleAdmin
	}
	if a.Status == "" {
		a.Status = models.StatusActive
	}

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if storeutil.IsDuplicateKeyErr(err) {
			return models.Admin{}, storeutil.ErrConflict
		}
		return models.Admin{}, err
	}
	return a, nil
}

// LinkGoogle records the Google subject identifier on an account the
// first time it signs in via OAuth.
func (s *Store) LinkGoogle(ctx context.Context, id primitive.ObjectID, googleSub string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"google_sub": googleSub,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return storeutil.ErrNotFound
	}
	return nil
}

// EnsureAdmin creates the seed admin account if no account with that
// email exists yet. Idempotent; existing accounts keep their password.
func (s *Store) EnsureAdmin(ctx context.Context, email, name, passwordHash string) error {
	email = normalize.Email(email)

	filter := bson.M{"email": email}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":           primitive.NewObjectID(),
			"email":         email,
			"name":          name,
			"password_hash": passwordHash,
			"role":          models.AdminRoleAdmin,
			"status":        models.StatusActive,
			"created_at":    time.Now().UTC(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}
