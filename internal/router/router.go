// internal/router/router.go
package router

import (
	"reddit-radar/internal/collector"
	"reddit-radar/internal/config"
	"reddit-radar/internal/export"
	"reddit-radar/internal/handler/http"

	"github.com/labstack/echo/v4"
)

func NewRouter(e *echo.Echo, svc collector.CollectorService, writer *export.Writer, cfg *config.Config) {
	col := http.NewCollectHandler(svc, writer, cfg)
	sts := http.NewStatsHandler(svc)

	e.GET("/collect", col.CollectSubreddit)
	e.GET("/collect/multi", col.CollectMultipleSubreddits)
	e.GET("/stats", sts.GetStats)
}
