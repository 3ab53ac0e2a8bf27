// internal/domain/models/footer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Footer is a singleton document: the site-wide footer.
type Footer struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Tagline     string             `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Columns     []FooterColumn     `bson:"columns,omitempty" json:"columns,omitempty"`
	Social      []SocialLink       `bson:"social,omitempty" json:"social,omitempty"`
	Copyright   string             `bson:"copyright,omitempty" json:"copyright,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// FooterColumn is a titled group of footer links.
type FooterColumn struct {
	Title string    `bson:"title" json:"title"`
	Links []NavItem `bson:"links,omitempty" json:"links,omitempty"`
}

// SocialLink is an icon link to a social profile.
type SocialLink struct {
	Platform string `bson:"platform" json:"platform"`
	URL      string `bson:"url" json:"url"`
}

// DefaultFooter returns the footer created on first read of an empty store.
func DefaultFooter() Footer {
	return Footer{
		Tagline:   "Novaa Real Estate",
		Copyright: "© Novaa. All rights reserved.",
		Columns: []FooterColumn{
			{Title: "Company", Links: []NavItem{
				{Label: "About Us", Href: "/about-us", Order: 0},
				{Label: "Contact", Href: "/contact-us", Order: 1},
			}},
			{Title: "Explore", Links: []NavItem{
				{Label: "Projects", Href: "/projects", Order: 0},
				{Label: "Blogs", Href: "/blogs", Order: 1},
			}},
		},
	}
}
