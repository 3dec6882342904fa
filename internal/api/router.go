package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/dreamroute/travel-catalog/internal/api/handler"
	"github.com/dreamroute/travel-catalog/internal/api/middleware"
	"github.com/dreamroute/travel-catalog/internal/core/service"
	"github.com/dreamroute/travel-catalog/internal/infrastructure/config"
	"github.com/dreamroute/travel-catalog/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("travel"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	destRepo := postgres.NewDestinationRepository(db)

	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, roleRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, roleRepo, hasher, log)
	destService := service.NewDestinationService(destRepo, userRepo, log)
	roleService := service.NewRoleService(roleRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	destHandler := handler.NewDestinationHandler(destService)
	roleHandler := handler.NewRoleHandler(roleService)

	// Identity resolution runs on every request; anonymous requests pass
	// through and the per-group RequireAuth gate decides what that means.
	e.Use(middleware.Authenticate(tokens, userRepo))

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Destination routes (reads public, writes authenticated) ---
	e.GET("/destinations", destHandler.List)
	e.GET("/destinations/:id", destHandler.Get)
	e.GET("/destinations/user/:userId", destHandler.ListByOwner)

	destinations := e.Group("/destinations", middleware.RequireAuth())
	destinations.POST("", destHandler.Create)
	destinations.PUT("/:id", destHandler.Update)
	destinations.DELETE("/:id", destHandler.Delete)

	// --- User routes ---
	users := e.Group("/users", middleware.RequireAuth())
	users.GET("/all", userHandler.List)
	users.GET("/id/:id", userHandler.GetByID)
	users.GET("/username/:username", userHandler.GetByUsername)
	users.POST("/create", userHandler.Create)
	users.PUT("/update/:id", userHandler.Update)
	users.DELETE("/delete/:id", userHandler.Delete)

	// --- Role routes ---
	roles := e.Group("/roles", middleware.RequireAuth())
	roles.GET("", roleHandler.List)
	roles.GET("/:id", roleHandler.Get)
	roles.POST("", roleHandler.Create)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
