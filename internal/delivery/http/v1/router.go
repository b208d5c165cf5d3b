package v1

import (
	"math/rand"
	"net/http"
	"time"

	"talentflow/config"
	"talentflow/internal/delivery/http/middleware"
	"talentflow/internal/delivery/http/response"
	"talentflow/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	JobUC        domain.JobUsecase
	CandidateUC  domain.CandidateUsecase
	AssessmentUC domain.AssessmentUsecase
	AdminUC      domain.AdminUsecase
	SearchUC     domain.SearchUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	if deps.Config.SimulateNetwork {
		api.Use(middleware.NetworkSimulator(middleware.SimulatorConfig{
			LatencyMin:      time.Duration(deps.Config.LatencyMinMs) * time.Millisecond,
			LatencyMax:      time.Duration(deps.Config.LatencyMaxMs) * time.Millisecond,
			WriteErrorRate:  deps.Config.WriteErrorRate,
			ReorderFailRate: deps.Config.ReorderFailRate,
		}, rand.New(rand.NewSource(time.Now().UnixNano()))))
	}

	NewJobHandler(api, deps.JobUC)
	NewCandidateHandler(api, deps.CandidateUC)
	NewAssessmentHandler(api, deps.AssessmentUC)
	NewSearchHandler(api, deps.SearchUC)
	NewAdminHandler(api, deps.AdminUC)

	// Deletes are intentionally unsupported across the whole surface.
	api.DELETE("/*path", func(c *gin.Context) {
		response.Error(c, http.StatusNotImplemented, "Delete not implemented", nil)
	})

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Endpoint not found", nil)
	})

	return r
}
