package rest

import (
	"net/http"

	"github.com/heartmarshall/creatorhub-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Listing   *ListingHandler
	Dashboard *DashboardHandler
}

// Middlewares holds the cross-cutting layers. AuthLimit may be nil.
type Middlewares struct {
	Global    middleware.Middleware
	Auth      middleware.Middleware
	AuthLimit middleware.Middleware
}

// NewRouter registers all routes on a ServeMux. Global runs for every
// request; Auth (anonymous allowed) runs for /api; dashboard routes also
// require a signed-in caller.
func NewRouter(h Handlers, mw Middlewares) http.Handler {
	api := http.NewServeMux()
	requireAuth := middleware.Middleware(middleware.RequireAuth)

	// Public listings.
	api.HandleFunc("GET /api/home", h.Listing.Home)
	api.HandleFunc("GET /api/creators", h.Listing.ListCreators)
	api.HandleFunc("GET /api/creators/featured", h.Listing.FeaturedCreators)
	api.HandleFunc("GET /api/creators/{id}", h.Listing.GetCreator)
	api.HandleFunc("GET /api/workflows", h.Listing.ListWorkflows)
	api.HandleFunc("GET /api/workflows/featured", h.Listing.FeaturedWorkflows)

	// Auth flows.
	api.Handle("POST /api/auth/signup", middleware.With(h.Auth.SignUp, mw.AuthLimit))
	api.Handle("POST /api/auth/login", middleware.With(h.Auth.Login, mw.AuthLimit))
	api.Handle("POST /api/auth/password/forgot", middleware.With(h.Auth.ForgotPassword, mw.AuthLimit))
	api.Handle("POST /api/auth/password/reset", middleware.With(h.Auth.ResetPassword, mw.AuthLimit, requireAuth))
	api.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	api.Handle("GET /api/auth/session", middleware.With(h.Auth.Session, requireAuth))

	// Dashboard.
	api.Handle("GET /api/me/profile", middleware.With(h.Dashboard.GetProfile, requireAuth))
	api.Handle("PUT /api/me/profile", middleware.With(h.Dashboard.UpdateProfile, requireAuth))
	api.Handle("POST /api/me/avatar", middleware.With(h.Dashboard.UploadAvatar, requireAuth))
	api.Handle("GET /api/me/workflows", middleware.With(h.Dashboard.ListWorkflows, requireAuth))
	api.Handle("POST /api/me/workflows", middleware.With(h.Dashboard.CreateWorkflow, requireAuth))
	api.Handle("GET /api/me/workflows/{id}", middleware.With(h.Dashboard.GetWorkflow, requireAuth))
	api.Handle("PUT /api/me/workflows/{id}", middleware.With(h.Dashboard.UpdateWorkflow, requireAuth))
	api.Handle("DELETE /api/me/workflows/{id}", middleware.With(h.Dashboard.DeleteWorkflow, requireAuth))

	api.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)
	root.Handle("/api/", middleware.Chain(mw.Auth)(api))

	return middleware.Chain(mw.Global)(root)
}
