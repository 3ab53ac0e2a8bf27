// internal/domain/models/page.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Page is a named, slotted container for sections. Pages are identified by
// slug; the public renderer fetches a page and its visible sections in one
// request. Pages are never hard-deleted in normal flow - status toggles
// visibility instead.
type Page struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug     string             `bson:"slug" json:"slug"`
	Title    string             `bson:"title" json:"title"`
	Status   string             `bson:"status" json:"status"`     // "active" or "inactive"
	Template string             `bson:"template" json:"template"` // layout hint for the renderer

	// SEO fields
	MetaTitle       string `bson:"meta_title,omitempty" json:"meta_title,omitempty"`
	MetaDescription string `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	MetaKeywords    string `bson:"meta_keywords,omitempty" json:"meta_keywords,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Document status values shared by pages, sections, and catalog entities.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Default page slugs seeded at startup.
const (
	PageSlugHome     = "home"
	PageSlugAbout    = "about-us"
	PageSlugContact  = "contact-us"
	PageSlugProjects = "projects"
	PageSlugBlogs    = "blogs"
)

// DefaultPages returns the pages seeded on first boot.
func DefaultPages() []Page {
	return []Page{
		{Slug: PageSlugHome, Title: "Home", Status: StatusActive, Template: "home"},
		{Slug: PageSlugAbout, Title: "About Us", Status: StatusActive, Template: "default"},
		{Slug: PageSlugContact, Title: "Contact Us", Status: StatusActive, Template: "default"},
		{Slug: PageSlugProjects, Title: "Projects", Status: StatusActive, Template: "listing"},
		{Slug: PageSlugBlogs, Title: "Blogs", Status: StatusActive, Template: "listing"},
	}
}
