// internal/app/system/auth/middleware.go
package auth

import (
	"context"
	"net/http"

	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/jsonutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type contextKey string

const adminContextKey contextKey = "admin"

// AdminResolver looks up a live administrator record by id. Implemented by
// the admins store; kept as an interface here so the middleware does not
// depend on a concrete store.
type AdminResolver interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Admin, error)
}

// RequireAdmin returns middleware that gates admin-only routes.
//
// The request must carry a credential cookie that verifies (signature,
// expiry) and resolves to an existing active administrator. All failures
// produce the same 401 envelope - the caller cannot distinguish a missing
// cookie from an invalid one.
func (m *Manager) RequireAdmin(admins AdminResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := m.TokenFromRequest(r)
			if !ok {
				jsonutil.Unauthorized(w, "unauthorized")
				return
			}

			claims, err := m.Verify(token)
			if err != nil {
				jsonutil.Unauthorized(w, "unauthorized")
				return
			}

			id, err := primitive.ObjectIDFromHex(claims.Subject)
			if err != nil {
				jsonutil.Unauthorized(w, "unauthorized")
				return
			}

			admin, err := admins.GetByID(r.Context(), id)
			if err != nil || !admin.IsActive() {
				if err != nil {
					m.logger.Debug("credential resolved to no live admin",
						zap.String("admin_id", claims.Subject))
				}
				jsonutil.Unauthorized(w, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), adminContextKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentAdmin returns the authenticated admin placed in the request
// context by RequireAdmin.
func CurrentAdmin(r *http.Request) (models.Admin, bool) {
	admin, ok := r.Context().Value(adminContextKey).(models.Admin)
	return admin, ok
}

// IsAuthenticated reports whether the request carries a verifiable
// credential, without resolving the admin record. Used by the login
// surface to redirect already-authenticated visitors away.
func (m *Manager) IsAuthenticated(r *http.Request) bool {
	token, ok := m.TokenFromRequest(r)
	if !ok {
		return false
	}
	_, err := m.Verify(token)
	return err == nil
}
