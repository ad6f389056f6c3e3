package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"realty-uae-backend/config"
	"realty-uae-backend/internal/delivery/http/middleware"
	"realty-uae-backend/internal/delivery/http/response"
	"realty-uae-backend/internal/domain"
	"realty-uae-backend/internal/usecase"
)

type RouterDeps struct {
	LeadUC   domain.LeadUsecase
	FormUC   usecase.FormUsecase
	MarketUC domain.MarketUsecase
	HealthUC usecase.HealthUsecase
	Validate *validator.Validate
	Gatherer prometheus.Gatherer
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.BodyLimit(middleware.DefaultMaxBodyBytes))
	r.Use(middleware.ErrorHandler())

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		if deps.HealthUC == nil {
			response.Success(c, http.StatusOK, "System operational", nil)
			return
		}
		status := deps.HealthUC.Check(c.Request.Context())
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Public routes
	NewLeadHandler(v1, deps.LeadUC, deps.FormUC, deps.Validate)
	NewMarketHandler(v1, deps.MarketUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
