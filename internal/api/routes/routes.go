package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"independent-director/internal/api/handlers"
	"independent-director/internal/api/middleware"
	"independent-director/internal/assistant"
	"independent-director/internal/config"
	"independent-director/internal/directory"
	"independent-director/internal/gateway"
	"independent-director/internal/payments"
	"independent-director/internal/session"
	"independent-director/internal/viewstate"
)

// Dependencies carries the wired services the routes need
type Dependencies struct {
	Config    *config.Config
	Gateway   *gateway.Client
	Cache     *directory.Cache
	Sessions  *session.Store
	Views     *viewstate.Registry
	Assistant *assistant.Manager
	History   *assistant.HistoryStore
	Payments  *payments.Service
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Selective timeout: 30s for most endpoints, 2 minutes for AI endpoints
	e.Use(middleware.SelectiveTimeoutConfig(deps.Config.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(deps.Cache, deps.Assistant))
		health.GET("/live", handlers.LivenessHandler)
	}

	e.GET("/", handlers.RootHandler)
	e.GET("/status", handlers.StatusHandler(deps.Cache, deps.Assistant))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// Directory
		directors := v1.Group("/directors")
		{
			directors.GET("", handlers.ListDirectorsHandler(deps.Cache))
			directors.POST("", handlers.RegisterDirectorHandler(deps.Gateway, deps.Cache))
			directors.GET("/:id", handlers.GetDirectorHandler(deps.Cache))
			directors.GET("/:id/summary", handlers.DirectorSummaryHandler(deps.Assistant, deps.Cache))
			directors.GET("/:id/similar", handlers.SimilarDirectorsHandler(deps.Assistant, deps.Cache))
		}
		v1.GET("/me/director", handlers.MyProfileHandler(deps.Cache, deps.Sessions))
		v1.DELETE("/me/director", handlers.DeleteDirectorHandler(deps.Gateway, deps.Cache, deps.Sessions))

		// Assistant
		ai := v1.Group("/assistant")
		{
			ai.POST("/search", handlers.AISearchHandler(deps.Assistant, deps.Cache))
			ai.POST("/chat", handlers.ChatHandler(deps.Assistant, deps.Cache, deps.History))
		}

		// Job board
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", handlers.ListJobsHandler(deps.Gateway))
			jobs.POST("", handlers.PostJobHandler(deps.Gateway, deps.Sessions))
			jobs.GET("/:id", handlers.GetJobHandler(deps.Gateway))
			jobs.POST("/apply", handlers.ApplyJobHandler(deps.Payments, deps.Sessions))
		}
		v1.GET("/me/applications", handlers.MyApplicationsHandler(deps.Gateway, deps.Sessions))

		// Certification program
		certifications := v1.Group("/certifications")
		{
			certifications.POST("", handlers.SubmitCertificationHandler(deps.Payments, deps.Sessions))
		}
		v1.GET("/me/certifications", handlers.MyCertificationsHandler(deps.Gateway, deps.Sessions))

		// Payments
		v1.POST("/payments/order", handlers.CreateOrderHandler(deps.Payments, deps.Sessions))

		// Auth and session
		auth := v1.Group("/auth")
		{
			auth.POST("/login", handlers.LoginHandler(deps.Sessions, deps.Views))
			auth.POST("/signup", handlers.SignupHandler(deps.Sessions, deps.Views))
			auth.POST("/logout", handlers.LogoutHandler(deps.Sessions, deps.Views))
			auth.GET("/session", handlers.SessionHandler(deps.Sessions))
		}

		// View state
		ui := v1.Group("/ui")
		{
			ui.GET("/state", handlers.UIStateHandler(deps.Views, deps.Sessions))
			ui.POST("/navigate", handlers.NavigateHandler(deps.Views, deps.Sessions))
			ui.POST("/select/director", handlers.SelectDirectorHandler(deps.Views))
			ui.POST("/select/job", handlers.SelectJobHandler(deps.Views))
			ui.POST("/legal", handlers.OpenLegalHandler(deps.Views))
			ui.POST("/back", handlers.BackHandler(deps.Views))
			ui.POST("/registered", handlers.RegistrationDoneHandler(deps.Views, deps.Cache))
			ui.POST("/reset", handlers.ResetHandler(deps.Views))
		}
	}
}
