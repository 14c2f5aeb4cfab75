package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/response"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/repository"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/auth"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/logger"
)

type ctxKey string

const CtxClaims ctxKey = "claims"

// RequireAuth extracts the bearer token, verifies it against the signing
// secret and attaches the decoded claims to the request context. A missing
// header, a bad signature and an expired token are all 401: the client's
// fix is the same in each case (get a new token).
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				response.Unauthorized(w, "Unauthorized access, no token provided")
				return
			}
			raw := strings.TrimPrefix(authz, "Bearer ")
			claims, err := auth.Parse(raw, secret)
			if err != nil {
				response.Unauthorized(w, "Unauthorized access, invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), CtxClaims, claims)
			ctx = context.WithValue(ctx, logger.UserEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin reads the store on every call; authorization is re-checked
// per request, never cached. Composed after RequireAuth.
func RequireAdmin(users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := Claims(r)
			if claims == nil {
				response.Unauthorized(w, "Unauthorized access, no token provided")
				return
			}

			user, err := users.FindByEmail(r.Context(), claims.Email)
			if err != nil {
				response.InternalError(w, "Failed to verify admin access")
				return
			}
			if user == nil {
				response.Forbidden(w, "forbidden access")
				return
			}
			if !user.IsAdmin() {
				response.Forbidden(w, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Claims returns the verified claims attached by RequireAuth, or nil.
func Claims(r *http.Request) *auth.Claims {
	v := r.Context().Value(CtxClaims)
	if v == nil {
		return nil
	}
	return v.(*auth.Claims)
}

// RequireSelf reports whether the authenticated subject matches the targeted
// email, writing 403 otherwise. Used where a route parameter or body field
// names a resource owner.
func RequireSelf(w http.ResponseWriter, r *http.Request, email string) bool {
	claims := Claims(r)
	if claims == nil || !strings.EqualFold(claims.Email, email) {
		response.Forbidden(w, "forbidden access")
		return false
	}
	return true
}
