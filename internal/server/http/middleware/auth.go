package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/server/auth"
	"github.com/dmitrijs2005/portfolio/internal/server/http/apierrors"
)

// Authenticator validates a raw bearer token.
type Authenticator interface {
	Authenticate(token string) (*auth.Principal, error)
}

// AuthBearer reads "Authorization: Bearer <token>". A valid token puts the
// principal into the context; an invalid one is remembered so RequireAdmin
// can report why. Requests without a token pass through untouched.
func AuthBearer(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(common.AuthorizationHeader)
			if token, ok := strings.CutPrefix(header, common.BearerPrefix); ok {
				token = strings.TrimSpace(token)
				if token != "" {
					ctx := r.Context()
					p, err := a.Authenticate(token)
					if err != nil {
						ctx = context.WithValue(ctx, authErrKey, err)
					} else {
						ctx = context.WithValue(ctx, principalKey, p)
					}
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PrincipalFrom returns the authenticated caller, or nil.
func PrincipalFrom(ctx context.Context) *auth.Principal {
	p, _ := ctx.Value(principalKey).(*auth.Principal)
	return p
}

// RequireAdmin lets through only callers whose token carries the ADMIN role.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := PrincipalFrom(r.Context())
			if p == nil {
				err, _ := r.Context().Value(authErrKey).(error)
				if err == nil {
					err = common.ErrorUnauthorized
				}
				apierrors.WriteError(w, r, err)
				return
			}
			if !p.Role.IsAdmin() {
				apierrors.WriteError(w, r, common.ErrForbiddenRole)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
