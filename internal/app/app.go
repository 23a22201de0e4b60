package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/heartmarshall/creatorhub-backend/internal/adapter/cache"
	"github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres/audit"
	profilerepo "github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres/profile"
	workflowrepo "github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres/workflow"
	"github.com/heartmarshall/creatorhub-backend/internal/adapter/provider/identity"
	"github.com/heartmarshall/creatorhub-backend/internal/adapter/storage"
	"github.com/heartmarshall/creatorhub-backend/internal/auth"
	"github.com/heartmarshall/creatorhub-backend/internal/config"
	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	authsvc "github.com/heartmarshall/creatorhub-backend/internal/service/auth"
	"github.com/heartmarshall/creatorhub-backend/internal/service/discovery"
	"github.com/heartmarshall/creatorhub-backend/internal/service/profile"
	"github.com/heartmarshall/creatorhub-backend/internal/service/workflow"
	"github.com/heartmarshall/creatorhub-backend/internal/transport/middleware"
	"github.com/heartmarshall/creatorhub-backend/internal/transport/rest"
)

type snapshotStore interface {
	Load(ctx context.Context, resource domain.ResourceType, dst any) (bool, error)
	Store(ctx context.Context, resource domain.ResourceType, v any) error
	Invalidate(ctx context.Context, resource domain.ResourceType) error
	Ping(ctx context.Context) error
	Close() error
}

type avatarStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	URL(ctx context.Context, key string) (string, error)
}

// Run is the application entry point. It loads configuration, connects
// to PostgreSQL and the optional cache and object storage, and serves
// the HTTP API until ctx is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Infrastructure.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	snapshots, err := newSnapshotStore(ctx, cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer snapshots.Close() //nolint:errcheck

	deps := []rest.Dependency{
		{Name: "database", Pinger: pool, Critical: true},
		{Name: "cache", Pinger: snapshots},
	}

	var avatars avatarStore
	if cfg.Storage.StorageEnabled() {
		s3, err := storage.NewS3(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		avatars = s3
		deps = append(deps, rest.Dependency{Name: "storage", Pinger: s3})
		logger.Info("object storage enabled", slog.String("bucket", cfg.Storage.Bucket))
	} else {
		logger.Warn("object storage not configured, avatar uploads disabled")
	}

	txm := postgres.NewTxManager(pool)
	profiles := profilerepo.New(pool)
	workflows := workflowrepo.New(pool)
	audits := auditrepo.New(pool)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)
	identityClient := identity.NewClient(cfg.Auth, logger)

	// Services.
	discoverySvc := discovery.NewService(logger, profiles, workflows, snapshots, discovery.Options{
		CreatorsPageSize:  cfg.Listing.CreatorsPageSize,
		WorkflowsPageSize: cfg.Listing.WorkflowsPageSize,
		FeaturedCreators:  cfg.Listing.FeaturedCreators,
		FeaturedWorkflows: cfg.Listing.FeaturedWorkflows,
		FetchLimit:        cfg.Listing.FetchLimit,
	})
	profileSvc := profile.NewService(logger, profiles, audits, txm, discoverySvc, avatars, profile.Options{
		AvatarPrefix:   cfg.Storage.AvatarPrefix,
		MaxAvatarBytes: cfg.Storage.MaxAvatarBytes,
	})
	workflowSvc := workflow.NewService(logger, profiles, workflows, audits, txm, discoverySvc)
	authService := authsvc.NewService(logger, identityClient, verifier, authsvc.Options{
		ResetRedirectURL:  cfg.Auth.ResetRedirectURL,
		SignUpRedirectURL: cfg.Auth.SignUpRedirectURL,
		MinPasswordLength: cfg.Auth.MinPasswordLength,
	})

	// Transport.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(Version, deps...),
		Auth:      rest.NewAuthHandler(authService, rest.CookieOptions{Name: cfg.Auth.SessionCookie, Secure: cfg.Auth.CookieSecure}, logger),
		Listing:   rest.NewListingHandler(discoverySvc, logger),
		Dashboard: rest.NewDashboardHandler(profileSvc, workflowSvc, cfg.Storage.MaxAvatarBytes, logger),
	}, rest.Middlewares{
		Global: middleware.Chain(
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
		),
		Auth:      middleware.Auth(authService, cfg.Auth.SessionCookie),
		AuthLimit: limiter.Limit(cfg.RateLimit.AuthPerMinute),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newSnapshotStore connects to Redis when caching is enabled. A failed
// connection is logged and replaced with the no-op store so the API
// still serves straight from the database.
func newSnapshotStore(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (snapshotStore, error) {
	if !cfg.Enabled {
		return cache.Nop{}, nil
	}

	c, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		logger.Warn("snapshot cache unavailable, continuing without it", slog.String("error", err.Error()))
		return cache.Nop{}, nil
	}
	logger.Info("snapshot cache enabled", slog.String("addr", cfg.Addr))
	return c, nil
}
