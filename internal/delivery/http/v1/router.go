package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"job-portal-backend/config"
	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/auth"
	"job-portal-backend/pkg/metrics"
	"job-portal-backend/pkg/storage"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	JobUC            domain.JobUsecase
	ApplicationUC    domain.ApplicationUsecase
	ProfileUC        domain.ProfileUsecase
	CompanyProfileUC domain.CompanyProfileUsecase
	NotificationUC   domain.NotificationUsecase
	MessageUC        domain.MessageUsecase
	HealthUC         usecase.HealthUsecase
	Tokens           *auth.TokenManager
	Storage          *storage.Local
	Redis            *goredis.Client // optional; rate limits fall back to memory
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	if !deps.Config.TrustProxy {
		_ = r.SetTrustedProxies(nil)
	}
	r.MaxMultipartMemory = 8 << 20

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(!deps.Config.IsProduction()))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.Static(storage.PublicPrefix, deps.Storage.Root())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "Service degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limiter := middleware.NewRateLimiter(middleware.AuthRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	), deps.Redis)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	NewAuthHandler(api, protected, deps.AuthUC, limiter.Middleware())
	NewJobHandler(api, protected, deps.JobUC, deps.ApplicationUC, deps.Storage)
	NewApplicationHandler(protected, deps.ApplicationUC)
	NewUserHandler(protected, deps.ProfileUC, deps.JobUC, deps.ApplicationUC, deps.NotificationUC, deps.Storage)
	NewCompanyProfileHandler(api, protected, deps.CompanyProfileUC, deps.Storage)
	NewNotificationHandler(protected, deps.NotificationUC, deps.MessageUC)

	return r
}
