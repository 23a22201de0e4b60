package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/creatorhub-backend/internal/config"
)

// CORS lets the creator directory frontend call the API from the browser.
// The frontend sends the provider session cookie, so the matching origin
// is echoed back instead of "*" and responses vary by Origin.
//
// AllowedOrigins is a comma-separated list. An entry may be "*", an exact
// origin, or a subdomain pattern such as "https://*.vercel.app" for
// preview deployments.
func CORS(cfg config.CORSConfig) Middleware {
	allowed := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && allowed.match(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type originSet struct {
	any      bool
	exact    map[string]struct{}
	suffixes []originSuffix
}

// originSuffix is a "scheme://*.domain" entry split at the star.
type originSuffix struct {
	scheme string // "https://"
	domain string // ".vercel.app"
}

func parseOrigins(raw string) originSet {
	set := originSet{exact: make(map[string]struct{})}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimRight(strings.TrimSpace(entry), "/")
		switch {
		case entry == "":
		case entry == "*":
			set.any = true
		case strings.Contains(entry, "://*."):
			scheme, domain, _ := strings.Cut(entry, "*")
			set.suffixes = append(set.suffixes, originSuffix{scheme: scheme, domain: domain})
		default:
			set.exact[entry] = struct{}{}
		}
	}
	return set
}

func (s originSet) match(origin string) bool {
	if s.any {
		return true
	}
	if _, ok := s.exact[origin]; ok {
		return true
	}
	for _, sfx := range s.suffixes {
		host, ok := strings.CutPrefix(origin, sfx.scheme)
		if !ok || !strings.HasSuffix(host, sfx.domain) {
			continue
		}
		// One label only: "a.b.vercel.app" does not match "*.vercel.app".
		label := strings.TrimSuffix(host, sfx.domain)
		if label != "" && !strings.ContainsAny(label, "./:@") {
			return true
		}
	}
	return false
}
