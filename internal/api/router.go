package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/linguahub/translation-dashboard/docs"
	"github.com/linguahub/translation-dashboard/internal/api/handler"
	"github.com/linguahub/translation-dashboard/internal/api/middleware"
	"github.com/linguahub/translation-dashboard/internal/core/domain"
	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

// Deps carries everything the router needs. Services are constructed in
// main so the dispatcher's lifecycle stays out of the transport layer.
type Deps struct {
	Projects ports.ProjectService
	Tasks    ports.TaskService
	Identity ports.IdentityService
	Verifier handler.PayloadVerifier

	Mongo *mongo.Database
	Redis *redis.Client

	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	// --- Handlers ---
	projectHandler := handler.NewProjectHandler(deps.Projects)
	taskHandler := handler.NewTaskHandler(deps.Tasks)
	userHandler := handler.NewUserHandler(deps.Identity)
	webhookHandler := handler.NewWebhookHandler(deps.Verifier, deps.Identity, deps.Log)

	// --- Authenticated routes ---
	auth := middleware.Auth(deps.JWTSecret)
	profile := middleware.Profile(deps.Identity)

	projects := e.Group("/projects", auth, profile)
	projects.GET("", projectHandler.List)
	projects.POST("", projectHandler.Create, middleware.RequireRole(domain.RoleClient))
	projects.PATCH("", projectHandler.Update)

	tasks := e.Group("/tasks", auth, profile)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create, middleware.RequireRole(domain.RoleTranslator, domain.RoleEditor))
	tasks.PATCH("/status", taskHandler.UpdateStatus)

	e.GET("/users", userHandler.List, auth, profile)

	// --- Identity lifecycle webhook (signature-verified, no bearer auth) ---
	e.POST("/webhook", webhookHandler.Receive)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
