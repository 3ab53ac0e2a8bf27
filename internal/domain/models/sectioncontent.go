// internal/domain/models/sectioncontent.go
package models

import "go.mongodb.org/mongo-driver/bson"

// Known section types. The renderer dispatches on these; content authors
// may stage sections with types not listed here, which decode to
// UnknownContent and are skipped rather than treated as errors.
const (
	SectionTypeHero         = "hero"
	SectionTypeAbout        = "about"
	SectionTypeWhyInvest    = "why-invest"
	SectionTypeTestimonials = "testimonials"
	SectionTypeFAQ          = "faq"
	SectionTypeCTA          = "cta"
	SectionTypeRichText     = "rich-text"
	SectionTypeGallery      = "gallery"
)

// SectionContent is the typed view of a section's schema-less payload.
// Kind returns the section type the variant decodes.
type SectionContent interface {
	Kind() string
}

// HeroContent is the full-bleed banner block.
type HeroContent struct {
	Heading    string `bson:"heading" json:"heading"`
	Subheading string `bson:"subheading,omitempty" json:"subheading,omitempty"`
	Image      string `bson:"image,omitempty" json:"image,omitempty"`
	CTALabel   string `bson:"cta_label,omitempty" json:"cta_label,omitempty"`
	CTALink    string `bson:"cta_link,omitempty" json:"cta_link,omitempty"`
}

func (HeroContent) Kind() string { return SectionTypeHero }

// AboutBlockContent is a title/description/image block.
type AboutBlockContent struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
}

func (AboutBlockContent) Kind() string { return SectionTypeAbout }

// WhyInvestBlockContent lists investment reasons with icons.
type WhyInvestBlockContent struct {
	Title string `bson:"title" json:"title"`
	Items []struct {
		Icon  string `bson:"icon,omitempty" json:"icon,omitempty"`
		Title string `bson:"title" json:"title"`
		Text  string `bson:"text,omitempty" json:"text,omitempty"`
	} `bson:"items,omitempty" json:"items,omitempty"`
}

func (WhyInvestBlockContent) Kind() string { return SectionTypeWhyInvest }

// TestimonialsBlockContent carries quoted testimonials.
type TestimonialsBlockContent struct {
	Title string `bson:"title" json:"title"`
	Items []struct {
		Quote  string `bson:"quote" json:"quote"`
		Author string `bson:"author,omitempty" json:"author,omitempty"`
		Role   string `bson:"role,omitempty" json:"role,omitempty"`
		Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
	} `bson:"items,omitempty" json:"items,omitempty"`
}

func (TestimonialsBlockContent) Kind() string { return SectionTypeTestimonials }

// FAQBlockContent is a question/answer list.
type FAQBlockContent struct {
	Title string `bson:"title" json:"title"`
	Items []struct {
		Question string `bson:"question" json:"question"`
		Answer   string `bson:"answer" json:"answer"`
	} `bson:"items,omitempty" json:"items,omitempty"`
}

func (FAQBlockContent) Kind() string { return SectionTypeFAQ }

// CTAContent is a call-to-action strip.
type CTAContent struct {
	Heading string `bson:"heading" json:"heading"`
	Label   string `bson:"label,omitempty" json:"label,omitempty"`
	Link    string `bson:"link,omitempty" json:"link,omitempty"`
}

func (CTAContent) Kind() string { return SectionTypeCTA }

// RichTextContent is sanitized free-form HTML.
type RichTextContent struct {
	HTML string `bson:"html" json:"html"`
}

func (RichTextContent) Kind() string { return SectionTypeRichText }

// GalleryContent is an ordered image list.
type GalleryContent struct {
	Title  string   `bson:"title,omitempty" json:"title,omitempty"`
	Images []string `bson:"images,omitempty" json:"images,omitempty"`
}

func (GalleryContent) Kind() string { return SectionTypeGallery }

// UnknownContent is the no-op variant for unmapped section types. It keeps
// the raw payload so staged content survives round trips.
type UnknownContent struct {
	Type string `json:"type"`
	Raw  bson.M `json:"raw,omitempty"`
}

func (u UnknownContent) Kind() string { return u.Type }

// DecodeContent maps a section's payload into its typed variant using the
// renderer dispatch key. Unmapped types return UnknownContent, never an
// error: authors can stage sections before a renderer exists for them.
func DecodeContent(sec Section) (SectionContent, error) {
	raw, err := bson.Marshal(sec.Content)
	if err != nil {
		return nil, err
	}

	decode := func(into SectionContent) (SectionContent, error) {
		if err := bson.Unmarshal(raw, into); err != nil {
			return nil, err
		}
		return into, nil
	}

	switch sec.RenderType() {
	case SectionTypeHero:
		return decode(&HeroContent{})
	case SectionTypeAbout:
		return decode(&AboutBlockContent{})
	case SectionTypeWhyInvest:
		return decode(&WhyInvestBlockContent{})
	case SectionTypeTestimonials:
		return decode(&TestimonialsBlockContent{})
	case SectionTypeFAQ:
		return decode(&FAQBlockContent{})
	case SectionTypeCTA:
		return decode(&CTAContent{})
	case SectionTypeRichText:
		return decode(&RichTextContent{})
	case SectionTypeGallery:
		return decode(&GalleryContent{})
	default:
		return UnknownContent{Type: sec.RenderType(), Raw: sec.Content}, nil
	}
}
