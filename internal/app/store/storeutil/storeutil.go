// internal/app/store/storeutil/storeutil.go
package storeutil

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors shared by the store packages. Handlers map these to the
// not-found and conflict envelopes; anything else is a store failure.
var (
	ErrNotFound = errors.New("document not found")
	ErrConflict = errors.New("slug already in use")
)

// Paginate normalizes a 1-based page request into a limit/skip window.
func Paginate(limit, page int64) (int64, int64) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return limit, (page - 1) * limit
}

// IsDuplicateKeyErr reports whether err is a unique-index violation.
// The string fallback covers vendors that wrap the error code.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 { // E11000 duplicate key error index
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}
