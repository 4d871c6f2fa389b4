package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "voterkyc/docs"
	"voterkyc/internal/domain"
	"voterkyc/internal/handler"
	"voterkyc/internal/metrics"
	"voterkyc/internal/middleware"
	"voterkyc/internal/service"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	KYC       *handler.KYCHandler
	Candidate *handler.CandidateHandler
	Vote      *handler.VoteHandler
	User      *handler.UserHandler
	Health    *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware. Metrics
// registered on gatherer are served at /metrics.
func Setup(
	authSvc service.AuthService,
	h Handlers,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Public ballot and KYC preview
	v1.GET("/candidates", h.Candidate.List)
	v1.GET("/candidates/:id", h.Candidate.GetByID)
	v1.POST("/kyc/preview", h.KYC.Preview)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.GET("/me", h.User.Me)
	protected.POST("/kyc/verify", h.KYC.Verify)
	protected.POST("/votes", h.Vote.Cast)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/candidates", h.Candidate.Create)
	admin.PUT("/candidates/:id", h.Candidate.Update)
	admin.DELETE("/candidates/:id", h.Candidate.Delete)
	admin.POST("/candidates/:id/image", h.Candidate.UploadImage)
	admin.GET("/results", h.Vote.Results)
	admin.GET("/results/export", h.Vote.ExportResults)
	admin.GET("/users", h.User.List)
	admin.GET("/users/:username", h.User.GetByUsername)

	return r
}
