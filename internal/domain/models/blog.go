// internal/domain/models/blog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a published article. Slug is unique; Content is sanitized HTML.
// CategoryID references blog_categories and is repopulated at read time.
type Blog struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string              `bson:"title" json:"title"`
	Slug        string              `bson:"slug" json:"slug"`
	CategoryID  *primitive.ObjectID `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Author      string              `bson:"author,omitempty" json:"author,omitempty"`
	Excerpt     string              `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content     string              `bson:"content,omitempty" json:"content,omitempty"` // sanitized HTML
	Thumbnail   string              `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	IsActive    bool                `bson:"is_active" json:"is_active"`
	Order       int                 `bson:"order" json:"order"`
	PublishedAt *time.Time          `bson:"published_at,omitempty" json:"published_at,omitempty"`

	// Category is populated at read time from CategoryID; never stored.
	Category *BlogCategory `bson:"-" json:"category,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// BlogCategory groups blog posts. Slug is unique within the collection.
type BlogCategory struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Slug     string             `bson:"slug" json:"slug"`
	IsActive bool               `bson:"is_active" json:"is_active"`
	Order    int                `bson:"order" json:"order"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
