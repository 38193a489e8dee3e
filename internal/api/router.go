package api

import (
	"github.com/gorilla/securecookie"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/wplex/atlas-admin/docs"
	"github.com/wplex/atlas-admin/internal/api/handler"
	"github.com/wplex/atlas-admin/internal/api/middleware"
	"github.com/wplex/atlas-admin/internal/core/ports"
	"github.com/wplex/atlas-admin/internal/pkg/config"
	"github.com/wplex/atlas-admin/internal/session"
)

// NewRouter builds the Echo instance with all routes registered. rdb may be
// nil when sessions live in memory; it is only used by the readiness probe.
func NewRouter(cfg *config.Config, resources ports.Resources, registry ports.SessionRegistry,
	loader *session.Loader, rdb *redis.Client, log zerolog.Logger) *echo.Echo {

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("atlas"))

	// --- Session cookie codec ---
	hashKey := []byte(cfg.Session.Secret)
	blockKey := hashKey
	if len(blockKey) > 32 {
		blockKey = blockKey[:32]
	}
	cookies := securecookie.New(hashKey, blockKey)
	cookies.SetSerializer(securecookie.JSONEncoder{})

	sessionRequired := middleware.Session(cookies, loader, cfg.Upstream.ProviderSignature)

	// --- Handlers ---
	secureCookies := cfg.Env != "development"
	authHandler := handler.NewAuthHandler(resources, registry, cookies,
		cfg.Upstream.ProviderSignature, cfg.Session.TTL, secureCookies, log)
	userHandler := handler.NewUserHandler(resources)
	roleHandler := handler.NewRoleHandler(resources)
	parameterHandler := handler.NewParameterHandler(resources)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, sessionRequired)

	// --- Management screens ---
	manage := e.Group("/manage", sessionRequired)
	manage.GET("/users", userHandler.List)
	manage.GET("/users/:internal", userHandler.Get)
	manage.POST("/users", userHandler.Create)
	manage.PUT("/users/:internal", userHandler.Update)
	manage.DELETE("/users/:internal", userHandler.Delete)
	manage.PUT("/profile/password", authHandler.ChangePassword)

	manage.GET("/roles", roleHandler.List)
	manage.GET("/roles/:internal", roleHandler.Get)
	manage.POST("/roles", roleHandler.Create)
	manage.PUT("/roles/:internal", roleHandler.Update)
	manage.DELETE("/roles/:internal", roleHandler.Delete)

	// --- Parameters screens ---
	parameters := e.Group("/parameters", sessionRequired)
	parameters.GET("/clients", parameterHandler.ListClients)
	parameters.GET("/clients/:internal", parameterHandler.GetClient)
	parameters.POST("/clients", parameterHandler.CreateClient)
	parameters.PUT("/clients/:internal", parameterHandler.UpdateClient)
	parameters.DELETE("/clients/:internal", parameterHandler.DeleteClient)
	parameters.GET("/institutions", parameterHandler.ListInstitutions)
	parameters.GET("/institutions/:internal", parameterHandler.GetInstitution)
	parameters.POST("/institutions", parameterHandler.CreateInstitution)
	parameters.PUT("/institutions/:internal", parameterHandler.UpdateInstitution)
	parameters.DELETE("/institutions/:internal", parameterHandler.DeleteInstitution)

	// --- Probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Upstream.BaseURL, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
