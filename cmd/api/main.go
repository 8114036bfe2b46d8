// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/primebid/auction-api/internal/admin"
	"github.com/primebid/auction-api/internal/auction"
	"github.com/primebid/auction-api/internal/auth"
	"github.com/primebid/auction-api/internal/commission"
	"github.com/primebid/auction-api/internal/config"
	"github.com/primebid/auction-api/internal/core"
	"github.com/primebid/auction-api/internal/health"
	"github.com/primebid/auction-api/internal/middleware"
	"github.com/primebid/auction-api/internal/proof"
	"github.com/primebid/auction-api/internal/report"
	"github.com/primebid/auction-api/internal/server"
	"github.com/primebid/auction-api/internal/storage"
	"github.com/primebid/auction-api/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := setupJWT(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	store, err := storage.NewCloudinaryStore(cfg.Storage)
	if err != nil {
		return err
	}

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(
		jwtManager,
		userSvc,
		store,
		redis,
		cfg.Storage,
	)
	authHandler := auth.NewHandler(authSvc, cfg.JWT, cfg.Storage)

	proofRepo := proof.NewRepository(db.DB)
	proofSvc := proof.NewService(proofRepo, store, cfg.Storage)
	proofHandler := proof.NewHandler(proofSvc, cfg.Storage)

	auctionRepo := auction.NewRepository(db.DB)
	auctionSvc := auction.NewService(
		db.DB,
		auctionRepo,
		store,
		cfg.Storage,
		cfg.Commission,
	)
	auctionHandler := auction.NewHandler(auctionSvc, cfg.Storage)

	commissionRepo := commission.NewRepository(db.DB)
	reportSvc := report.NewService(commissionRepo, userRepo)
	reportHandler := report.NewHandler(reportSvc)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Repo:       admin.NewRepository(db.DB),
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	healthHandler := health.NewHandler(
		health.Check{Name: "database", Ping: db.Ping},
		health.Check{Name: "redis", Ping: redis.Ping},
	)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(authSvc, cfg.JWT.CookieName)

	router.Route("/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			authHandler.RegisterRoutes(r, authenticator)
			userHandler.RegisterRoutes(r)
		})

		r.Route("/auctionitem", func(r chi.Router) {
			auctionHandler.RegisterRoutes(r, authenticator)
		})

		r.Route("/proof", func(r chi.Router) {
			proofHandler.RegisterRoutes(r, authenticator)
		})

		r.Route("/superadmin", func(r chi.Router) {
			r.Use(authenticator)
			r.Use(middleware.RequireSuperAdmin)
			r.Use(middleware.RoleRateLimiter(
				redis.Client,
				middleware.DefaultRoleLimits,
				middleware.RoleLimit{
					RequestsPerMinute: cfg.RateLimit.Requests,
					BurstSize:         cfg.RateLimit.Burst,
				},
			))

			userHandler.RegisterAdminRoutes(r)
			proofHandler.RegisterAdminRoutes(r)
			auctionHandler.RegisterAdminRoutes(r)
			reportHandler.RegisterAdminRoutes(r)
			adminHandler.RegisterAdminRoutes(r)
		})
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// setupJWT loads the ES256 key pair, generating one on first run outside
// production so a fresh checkout can boot without a key ceremony.
func setupJWT(cfg *config.Config, logger *slog.Logger) (*auth.JWTManager, error) {
	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err == nil {
		return jwtManager, nil
	}

	if cfg.App.Environment == "production" {
		return nil, err
	}

	if _, statErr := os.Stat(cfg.JWT.PrivateKeyPath); !os.IsNotExist(statErr) {
		return nil, err
	}

	logger.Warn("signing keys missing, generating development key pair",
		"private_key_path", cfg.JWT.PrivateKeyPath,
	)

	if genErr := auth.GenerateKeyPair(
		cfg.JWT.PrivateKeyPath,
		cfg.JWT.PublicKeyPath,
	); genErr != nil {
		return nil, genErr
	}

	return auth.NewJWTManager(cfg.JWT)
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
