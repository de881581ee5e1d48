package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/chronos-atelier/chronos-backend/api/routes"
	"github.com/chronos-atelier/chronos-backend/internal/auth"
	"github.com/chronos-atelier/chronos-backend/internal/bootstrap"
	"github.com/chronos-atelier/chronos-backend/internal/cart"
	"github.com/chronos-atelier/chronos-backend/internal/catalog"
	"github.com/chronos-atelier/chronos-backend/internal/inquiries"
	"github.com/chronos-atelier/chronos-backend/internal/orders"
	"github.com/chronos-atelier/chronos-backend/internal/settings"
	"github.com/chronos-atelier/chronos-backend/internal/users"
	"github.com/chronos-atelier/chronos-backend/pkg/auth/session"
	"github.com/chronos-atelier/chronos-backend/pkg/config"
	"github.com/chronos-atelier/chronos-backend/pkg/db"
	"github.com/chronos-atelier/chronos-backend/pkg/logger"
	"github.com/chronos-atelier/chronos-backend/pkg/mailer"
	"github.com/chronos-atelier/chronos-backend/pkg/metrics"
	"github.com/chronos-atelier/chronos-backend/pkg/migrate"
	"github.com/chronos-atelier/chronos-backend/pkg/pagination"
	"github.com/chronos-atelier/chronos-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Repo:        catalog.NewRepository(dbClient.DB()),
		MarkerStore: redisClient,
		MarkerKeyer: redisClient,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewStore(redisClient, redisClient, cfg.Cart.TTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}
	cartService, err := cart.NewService(cart.ServiceParams{
		Store:   cartStore,
		Catalog: catalogService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.ServiceParams{
		Repo:        orders.NewRepository(dbClient.DB()),
		CartManager: cartService,
		Logger:      logg,
		Config:      cfg.Orders,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	settingsService, err := settings.NewService(settings.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	inquiriesParams := inquiries.ServiceParams{
		Repo:   inquiries.NewRepository(dbClient.DB()),
		Logger: logg,
	}
	if cfg.Relay.Enabled() {
		relay, err := mailer.New(cfg.Relay)
		if err != nil {
			logg.Error(context.Background(), "failed to create inquiry relay", err)
			os.Exit(1)
		}
		inquiriesParams.Relay = relay
	}
	inquiriesService, err := inquiries.NewService(inquiriesParams)
	if err != nil {
		logg.Error(context.Background(), "failed to create inquiries service", err)
		os.Exit(1)
	}

	loader, err := bootstrap.NewLoader(logg,
		bootstrap.Step{Name: "catalog", Run: func(ctx context.Context) error {
			_, err := catalogService.List(ctx)
			return err
		}},
		bootstrap.Step{Name: "settings", Run: func(ctx context.Context) error {
			_, err := settingsService.Get(ctx)
			return err
		}},
		bootstrap.Step{Name: "orders", Run: func(ctx context.Context) error {
			_, err := ordersService.ListAll(ctx, pagination.Params{Limit: 1})
			return err
		}},
		bootstrap.Step{Name: "redis", Run: func(ctx context.Context) error {
			return redisClient.Ping(ctx)
		}},
		bootstrap.Step{Name: "inquiries", Run: func(ctx context.Context) error {
			_, err := inquiriesService.List(ctx)
			return err
		}},
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create bootstrap loader", err)
		os.Exit(1)
	}
	if err := loader.Run(context.Background()); err != nil {
		logg.Warn(context.Background(), "bootstrap completed with degraded steps")
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:           cfg,
			Logger:           logg,
			Loader:           loader,
			Redis:            redisClient,
			SessionChecker:   sessionManager,
			HTTPMetrics:      httpMetrics,
			Gatherer:         registry,
			AuthService:      authService,
			CatalogService:   catalogService,
			CartService:      cartService,
			OrdersService:    ordersService,
			SettingsService:  settingsService,
			InquiriesService: inquiriesService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
