package app

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Jarvinbai/YouTube-Channel-Scraper-API/internal/features/channel"
	"github.com/Jarvinbai/YouTube-Channel-Scraper-API/internal/features/index"
	"github.com/Jarvinbai/YouTube-Channel-Scraper-API/internal/platform/metrics"
)

// App wires dependencies and exposes the HTTP handler tree.
type App struct {
	engine  *gin.Engine
	metrics *metrics.Registry
}

// New constructs a fully wired application.
func New(client channel.VideoLister, log zerolog.Logger) *App {
	registry := metrics.New()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestLogger(log), gin.Recovery(), cors.Default())

	engine.GET("/metrics", registry.Handler())
	engine.GET("/", registry.Wrap("index"), index.Handler())
	engine.GET("/api/channel/:channel_id/videos", registry.Wrap("channel_videos"), channel.VideosHandler(client))

	return &App{engine: engine, metrics: registry}
}

// Handler returns the root http.Handler.
func (a *App) Handler() http.Handler {
	return a.engine
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
