package v1

import (
	"net/http"

	"cv-platform-backend/config"
	"cv-platform-backend/internal/delivery/http/middleware"
	"cv-platform-backend/internal/delivery/http/response"
	"cv-platform-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	ProfileUC   domain.ProfileUsecase
	ScreeningUC domain.ScreeningUsecase
	AdminUC     domain.AdminUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config))
	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(deps.Config))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, loginLimiter)
		NewStudentHandler(protected, deps.ProfileUC, deps.Config, uploadLimiter)
		NewCompanyHandler(protected, deps.ScreeningUC)
		NewAdminHandler(protected, deps.AdminUC)
	}

	return r
}
