package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/hirewire/portal/docs"
	"github.com/hirewire/portal/internal/api/handler"
	"github.com/hirewire/portal/internal/api/middleware"
	"github.com/hirewire/portal/internal/core/ports"
	"github.com/hirewire/portal/internal/core/service"
	mongoinfra "github.com/hirewire/portal/internal/infrastructure/db/mongo"
	healthhandlers "github.com/hirewire/portal/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the session backend does not use Redis.
func NewRouter(db *mongo.Database, rdb *redis.Client, idp ports.IdentityProvider, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	userRepo := mongoinfra.NewUserRepository(db)
	userService := service.NewUserService(userRepo)
	authHandler := handler.NewAuthHandler(userService, idp)
	userHandler := handler.NewUserHandler(userService, idp)

	// --- JSON API ---
	authAPI := e.Group("/api/auth")
	authAPI.POST("/register", authHandler.Register)
	authAPI.POST("/login", authHandler.Login)
	authAPI.POST("/logout", authHandler.Logout)

	userAPI := e.Group("/api/user", middleware.RequireIdentity(idp))
	userAPI.POST("/update-role", userHandler.UpdateRole)
	userAPI.GET("/me", userHandler.Me)

	// --- Pages, gated by the routing policy ---
	pages := e.Group("", middleware.AccessControl(idp, log))
	pages.GET("/", handler.Page("home"))
	pages.GET("/auth/signin", handler.Page("signin"))
	pages.GET("/auth/signup", handler.Page("signup"))
	pages.GET("/setup", handler.Page("role_setup"))
	pages.GET("/dashboard", handler.Page("dashboard"))
	pages.GET("/dashboard/job-seeker", handler.Page("job_seeker_dashboard"))
	pages.GET("/dashboard/job-seeker/applications", handler.Page("job_seeker_applications"))
	pages.GET("/dashboard/employer", handler.Page("employer_dashboard"))
	pages.GET("/dashboard/employer/listings", handler.Page("employer_listings"))

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
