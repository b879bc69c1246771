package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/bazarxpress/account-service/internal/api/handler"
	"github.com/bazarxpress/account-service/internal/api/middleware"
	"github.com/bazarxpress/account-service/internal/core/domain"
	"github.com/bazarxpress/account-service/internal/core/ports"
	opshttp "github.com/bazarxpress/account-service/internal/infrastructure/http"
	"github.com/bazarxpress/account-service/internal/infrastructure/http/handlers"
)

const bodyLimit = "1M"

// Dependencies are the collaborators the HTTP surface is built from.
type Dependencies struct {
	Accounts    ports.AccountService
	Log         zerolog.Logger
	CORSOrigins []string
	Production  bool
	// Checks are the readiness probes keyed by dependency name.
	Checks map[string]handlers.Check
	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(middleware.SecureHeaders(deps.Production))
	e.Use(middleware.CORS(deps.CORSOrigins))
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "accounts",
		Registerer: deps.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Ops routes (no auth required) ---
	opshttp.RegisterOpsRoutes(e, deps.Checks, deps.Gatherer)

	// --- Account routes ---
	authHandler := handler.NewAuthHandler(deps.Accounts)
	userHandler := handler.NewUserHandler(deps.Accounts)
	requireAuth := middleware.Auth(deps.Accounts)

	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.PUT("/profile", authHandler.UpdateProfile, requireAuth)

	users := auth.Group("/users", requireAuth, middleware.RBAC(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.DELETE("/:id", userHandler.Delete)
	users.PATCH("/:id/role", userHandler.ChangeRole)

	return e
}
