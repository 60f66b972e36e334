package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/config"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/api/handler"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/api/middleware"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/redis"
)

// fetchRateLimit throttles the routes that call third-party hosts.
const (
	fetchRateLimit  = 30
	fetchRateWindow = time.Minute
)

// Setup builds the Gin engine with all routes.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// static catalogs
		v1.GET("/metrics", h.Catalog.GetMetricCatalog)
		v1.GET("/scholarships", h.Catalog.GetScholarships)

		// school lookups
		schools := v1.Group("/schools")
		{
			schools.GET("", h.School.ListSchools)
			schools.GET("/:name/net-price", h.School.GetNetPrice)
			schools.GET("/:name/financial-aid", h.School.GetFinancialAid)
			schools.GET("/:name/contact", h.School.GetContact)
			schools.GET("/:name/transfer", h.School.GetTransferProfile)

			// enrichment routes hit third-party hosts; keep them throttled
			fetchLimited := schools.Group("")
			fetchLimited.Use(middleware.RateLimit(rdb, fetchRateLimit, fetchRateWindow))
			{
				fetchLimited.GET("/:name/reviews", h.Enrich.GetReviews)
				fetchLimited.GET("/:name/visit-events", h.Enrich.GetVisitEvents)
				fetchLimited.GET("/:name/visit-events/calendar", h.Enrich.GetVisitCalendar)
			}
		}

		// sessions and selections
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", h.Session.CreateSession)
			sessions.GET("/:id/selection", h.Session.GetSelection)
			sessions.POST("/:id/selection", h.Session.AddSchool)
			sessions.DELETE("/:id/selection/:name", h.Session.RemoveSchool)
			sessions.DELETE("/:id/selection", h.Session.ClearSelection)
		}

		// comparison
		compare := v1.Group("/compare")
		{
			compare.POST("", h.Compare.Compare)
			compare.POST("/similar", h.Compare.Similar)
			compare.POST("/export", h.Export.Export)
		}
	}

	return r
}
