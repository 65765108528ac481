package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/bugtrackr-backend/pkg/ctxutil"
)

// tokenValidator checks an access token and returns the authenticated
// user's id and role.
type tokenValidator interface {
	ValidateAccessToken(token string) (userID, role string, err error)
}

// Auth resolves the bearer token into an actor on the request context.
// Requests without a token pass through anonymously; handlers that need
// an identity reject them downstream. A present but invalid token is
// rejected here.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, role, err := validator.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithActor(r.Context(), ctxutil.Actor{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
