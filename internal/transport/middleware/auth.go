package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avramenko-dev/inventory-backend/internal/auth"
	"github.com/avramenko-dev/inventory-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	VerifyToken(token string) (auth.Identity, error)
}

// Auth returns middleware that requires a valid bearer token.
//
// An absent token fails with 401 before any cryptographic work or store
// interaction; a present-but-invalid token fails with 403. On success the
// verified user id is stored in the request context for the service layer.
func Auth(verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeAuthError(w, http.StatusUnauthorized, "authorization token is required")
				return
			}

			identity, err := verifier.VerifyToken(token)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "token is invalid or has expired")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), identity.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
