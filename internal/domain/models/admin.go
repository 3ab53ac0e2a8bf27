// internal/domain/models/admin.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is an administrator account for the CMS panel. Email is unique and
// normalized to lowercase. PasswordHash is empty for accounts that sign in
// only through Google; GoogleSub is set once a Google identity is linked.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`
	GoogleSub    string             `bson:"google_sub,omitempty" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Status       string             `bson:"status" json:"status"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Admin roles. "admin" is the only role today; the field exists so the
// credential can carry role claims without a schema change later.
const AdminRoleAdmin = "admin"

// IsActive reports whether the account may authenticate.
func (a Admin) IsActive() bool {
	return a.Status == StatusActive
}
