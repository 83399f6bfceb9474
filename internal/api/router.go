package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/techxchange/marketplace-api/docs"
	"github.com/techxchange/marketplace-api/internal/api/handler"
	"github.com/techxchange/marketplace-api/internal/api/middleware"
	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/service"
	"github.com/techxchange/marketplace-api/internal/infrastructure/db/postgres"
	"github.com/techxchange/marketplace-api/internal/infrastructure/db/redis"
	"github.com/techxchange/marketplace-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit queue is constructed in main (its workers are bound to the
// process lifetime) and injected here.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, audit service.AuditQueue, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.TimeoutWithConfig(echomiddleware.TimeoutConfig{
		Timeout: cfg.RequestTimeout,
	}))
	e.Use(echoprometheus.NewMiddleware("techxchange"))

	// --- Dependencies ---
	denylist := redis.NewDenylist(rdb)
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL, denylist)

	userRepo := postgres.NewUserRepository(pool)
	listingRepo := postgres.NewListingRepository(pool)
	expertRepo := postgres.NewExpertRepository(pool)
	requestRepo := postgres.NewServiceRequestRepository(pool)

	authService := service.NewAuthService(userRepo, tokens, audit, log)
	listingService := service.NewListingService(listingRepo, audit, log)
	expertService := service.NewExpertService(expertRepo, audit, log)
	requestService := service.NewServiceRequestService(requestRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	listingHandler := handler.NewListingHandler(listingService)
	expertHandler := handler.NewExpertHandler(expertService)
	requestHandler := handler.NewServiceRequestHandler(requestService)

	authRequired := middleware.Auth(tokens)
	anyRole := middleware.RBAC(domain.RoleInventor, domain.RoleClient, domain.RoleExpert)
	promotable := middleware.RBAC(domain.RoleInventor, domain.RoleClient)

	// --- Auth routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout, authRequired)
	e.GET("/api/me", authHandler.Me, authRequired)

	// --- Marketplace routes ---
	e.GET("/api/listings", listingHandler.List)
	e.POST("/api/listings", listingHandler.Create, authRequired, anyRole)
	e.GET("/api/experts", expertHandler.List)
	e.POST("/api/experts", expertHandler.BecomeExpert, authRequired, promotable)
	e.POST("/api/services", requestHandler.Create) // unauthenticated upstream

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  - is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness - are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
