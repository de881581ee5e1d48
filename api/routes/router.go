package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chronos-atelier/chronos-backend/api/controllers"
	"github.com/chronos-atelier/chronos-backend/api/middleware"
	"github.com/chronos-atelier/chronos-backend/internal/auth"
	"github.com/chronos-atelier/chronos-backend/internal/bootstrap"
	"github.com/chronos-atelier/chronos-backend/internal/cart"
	"github.com/chronos-atelier/chronos-backend/internal/catalog"
	"github.com/chronos-atelier/chronos-backend/internal/inquiries"
	"github.com/chronos-atelier/chronos-backend/internal/orders"
	"github.com/chronos-atelier/chronos-backend/internal/settings"
	"github.com/chronos-atelier/chronos-backend/pkg/auth/session"
	"github.com/chronos-atelier/chronos-backend/pkg/config"
	"github.com/chronos-atelier/chronos-backend/pkg/enums"
	"github.com/chronos-atelier/chronos-backend/pkg/logger"
	"github.com/chronos-atelier/chronos-backend/pkg/metrics"
	"github.com/chronos-atelier/chronos-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	Loader         *bootstrap.Loader
	Redis          *redis.Client
	SessionChecker session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics
	Gatherer       prometheus.Gatherer

	AuthService      auth.Service
	CatalogService   catalog.Service
	CartService      cart.Service
	OrdersService    orders.Service
	SettingsService  settings.Service
	InquiriesService inquiries.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, deps.HTTPMetrics),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.Loader))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).
			Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).
			Post("/register", controllers.AuthRegister(deps.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, deps.SessionChecker, logg)).
			Post("/logout", controllers.AuthLogout(deps.AuthService, logg))
	})

	// storefront reads need no credentials
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/", controllers.CatalogList(deps.CatalogService, logg))
		r.Get("/{id}", controllers.CatalogGet(deps.CatalogService, logg))
	})
	r.Get("/api/v1/settings", controllers.SettingsGet(deps.SettingsService, logg))
	r.Post("/api/v1/inquiries", controllers.InquiriesSubmit(deps.InquiriesService, logg))

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(middleware.CartToken(logg))
		r.Get("/", controllers.CartGet(deps.CartService, logg))
		r.Post("/", controllers.CartAdd(deps.CartService, logg))
		r.Patch("/{watchID}", controllers.CartUpdateQuantity(deps.CartService, logg))
		r.Delete("/{watchID}", controllers.CartRemove(deps.CartService, logg))
		r.Delete("/", controllers.CartClear(deps.CartService, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))

		r.With(middleware.CartToken(logg)).
			Post("/api/v1/checkout", controllers.OrdersCheckout(deps.OrdersService, logg))

		r.Route("/api/v1/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersListMine(deps.OrdersService, logg))
			r.Post("/{id}/cancel", controllers.OrdersCancel(deps.OrdersService, logg))
		})

		r.Route("/api/v1/account", func(r chi.Router) {
			r.Put("/email", controllers.AccountUpdateEmail(deps.AuthService, logg))
			r.Put("/password", controllers.AccountUpdatePassword(deps.AuthService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))
		r.Use(middleware.RequireRole(enums.UserRoleAdmin.String(), logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Post("/", controllers.CatalogCreate(deps.CatalogService, logg))
			r.Put("/{id}", controllers.CatalogUpdate(deps.CatalogService, logg))
			r.Delete("/{id}", controllers.CatalogDelete(deps.CatalogService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersListAll(deps.OrdersService, logg))
			r.Put("/{id}/status", controllers.OrdersSetStatus(deps.OrdersService, logg))
		})

		r.Put("/settings", controllers.SettingsUpdate(deps.SettingsService, logg))
		r.Get("/inquiries", controllers.InquiriesList(deps.InquiriesService, logg))
	})

	return r
}
