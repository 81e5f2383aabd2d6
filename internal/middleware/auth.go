package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"creatorhub/internal/apperr"
	"creatorhub/internal/auth"
	"creatorhub/internal/db"
	"creatorhub/internal/models"
)

type contextKey string

// UserContextKey is the key for the authenticated user in the request context.
const UserContextKey = contextKey("user")

// UserFrom returns the authenticated user stored in ctx, if any.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	return user, ok
}

// Auth validates the bearer session token, resolves the user and stores it
// in the request context.
func Auth(issuer *auth.TokenIssuer, log *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apperr.Write(w, apperr.Unauthenticated("Authorization header is required"))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				apperr.Write(w, apperr.Unauthenticated("Authorization header format must be 'Bearer <token>'"))
				return
			}

			userID, err := issuer.Verify(parts[1])
			if err != nil {
				apperr.Write(w, err)
				return
			}

			user, err := db.GetUserByID(userID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					apperr.Write(w, apperr.Unauthenticated("User not found"))
					return
				}
				log.Errorf("Failed to load user %d: %v", userID, err)
				apperr.Write(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
