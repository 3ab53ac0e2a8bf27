// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a property development listed on the site. CategoryID is a
// reference into the categories collection; stores repopulate Category
// before returning a project so API callers never see a bare id.
type Project struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string              `bson:"name" json:"name"`
	Slug        string              `bson:"slug" json:"slug"`
	CategoryID  *primitive.ObjectID `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Location    string              `bson:"location,omitempty" json:"location,omitempty"`
	Price       string              `bson:"price,omitempty" json:"price,omitempty"`
	Badge       string              `bson:"badge,omitempty" json:"badge,omitempty"`
	Images      []string            `bson:"images,omitempty" json:"images,omitempty"`
	Highlights  []string            `bson:"highlights,omitempty" json:"highlights,omitempty"`
	IsActive    bool                `bson:"is_active" json:"is_active"`
	Order       int                 `bson:"order" json:"order"`

	// Category is populated at read time from CategoryID; never stored.
	Category *Category `bson:"-" json:"category,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
