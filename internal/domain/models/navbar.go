// internal/domain/models/navbar.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Navbar is a singleton document: the site-wide navigation bar.
type Navbar struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Logo  NavbarLogo         `bson:"logo" json:"logo"`
	Items []NavItem          `bson:"items" json:"items"`
	CTA   NavCTA             `bson:"cta" json:"cta"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// NavbarLogo is the brand mark shown in the navbar.
type NavbarLogo struct {
	URL string `bson:"url,omitempty" json:"url,omitempty"`
	Alt string `bson:"alt,omitempty" json:"alt,omitempty"`
}

// NavItem is a single navigation link, optionally with children.
type NavItem struct {
	Label    string    `bson:"label" json:"label"`
	Href     string    `bson:"href" json:"href"`
	Order    int       `bson:"order" json:"order"`
	Children []NavItem `bson:"children,omitempty" json:"children,omitempty"`
}

// NavCTA is the highlighted action button at the end of the navbar.
type NavCTA struct {
	Label   string `bson:"label,omitempty" json:"label,omitempty"`
	Href    string `bson:"href,omitempty" json:"href,omitempty"`
	Visible bool   `bson:"visible" json:"visible"`
}

// DefaultNavbar returns the navbar created on first read of an empty store.
func DefaultNavbar() Navbar {
	return Navbar{
		Logo: NavbarLogo{Alt: "Novaa"},
		Items: []NavItem{
			{Label: "Home", Href: "/", Order: 0},
			{Label: "Projects", Href: "/projects", Order: 1},
			{Label: "About Us", Href: "/about-us", Order: 2},
			{Label: "Blogs", Href: "/blogs", Order: 3},
			{Label: "Contact", Href: "/contact-us", Order: 4},
		},
		CTA: NavCTA{Label: "Enquire Now", Href: "/contact-us", Visible: true},
	}
}
