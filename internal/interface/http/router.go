package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/travel-planner/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(logger),
		errorHandlingMiddleware(logger),
	)

	limit := rateLimitMiddleware(cfg.HTTP.RateLimit, logger)

	router.StaticFS("/static", staticFiles())
	router.GET("/healthz", handler.Healthz)
	router.GET("/", handler.Landing)

	pages := router.Group("/", limit)
	{
		pages.POST("/planner", handler.SubmitPlan)
		pages.GET("/planner/export.pdf", handler.ExportPDF)
		pages.GET("/planner/share.png", handler.SharePNG)
		pages.GET("/destinations/:code", handler.DestinationDetail)
		pages.POST("/destinations/:code/plan", handler.QuickPlan)
	}

	api := router.Group("/api/v1", limit)
	{
		api.POST("/plans", handler.CreatePlan)
		api.GET("/trending", handler.Trending)
		api.GET("/catalog", handler.Catalog)
		api.GET("/destinations/:code", handler.Destination)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withCORS(router, cfg.HTTP.AllowedOrigins),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
