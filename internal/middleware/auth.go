package middleware

import (
	"net/http"
	"strings"

	"converse/internal/auth"
	"converse/internal/httputil"
)

// unauthenticatedPaths are reachable without a bearer token.
var unauthenticatedPaths = map[string]bool{
	"/health": true,
}

// Auth verifies the Authorization header on every request and stores the
// verified user ID in the request context. Handlers read the ID via
// httputil.GetUserID and never trust a client-supplied identifier.
func Auth(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if unauthenticatedPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, claims.GetUserID()))
		})
	}
}
