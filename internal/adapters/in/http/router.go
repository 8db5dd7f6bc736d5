package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/dentist-timeslots-generator/internal/config"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
)

// NewRouter собирает gin-движок с общими middleware и health-check
func NewRouter(cfg *config.Config, logger out.LoggerPort) *gin.Engine {
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(logger.WithModule("HttpServer")),
	)

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": cfg.App.Version,
		})
	})

	return router
}

// NewServer оборачивает роутер в http.Server для graceful shutdown
func NewServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTP.Host + ":" + cfg.HTTP.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
