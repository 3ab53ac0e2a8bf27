// internal/domain/models/faq.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Faq is a singleton document: the site FAQ list.
type Faq struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title string             `bson:"title" json:"title"`
	Items []FaqItem          `bson:"items,omitempty" json:"items,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// FaqItem is one question/answer pair.
type FaqItem struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
	Order    int    `bson:"order" json:"order"`
}

// DefaultFaq returns the FAQ created on first read of an empty store.
func DefaultFaq() Faq {
	return Faq{
		Title: "Frequently Asked Questions",
		Items: []FaqItem{
			{
				Question: "Can foreigners own property in Thailand?",
				Answer:   "Foreign buyers can own condominium units freehold and hold villas through long-term leasehold structures.",
				Order:    0,
			},
		},
	}
}
