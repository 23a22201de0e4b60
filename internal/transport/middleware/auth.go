package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Identity, error)
}

// Auth resolves the caller from a bearer token or, failing that, from the
// provider session cookie. Requests without credentials pass through
// anonymously. An invalid bearer token is rejected; an invalid cookie is
// ignored so a stale session never breaks public pages.
func Auth(validator tokenValidator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, fromHeader := extractBearerToken(r), true
			if token == "" {
				token, fromHeader = sessionCookie(r, cookieName), false
			}
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ident, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				if fromHeader {
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), ident.UserID)
			ctx = ctxutil.WithEmail(ctx, ident.Email)
			ctx = ctxutil.WithAccessToken(ctx, token)
			noteUser(w, ident.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests. It must run after Auth.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func sessionCookie(r *http.Request, name string) string {
	if name == "" {
		return ""
	}
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
