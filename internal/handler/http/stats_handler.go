// internal/handler/http/stats_handler.go
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"reddit-radar/internal/collector"
)

type StatsHandler struct {
	svc collector.CollectorService
}

func NewStatsHandler(svc collector.CollectorService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// GetStats godoc
// @Summary Get collection statistics
// @Description Returns request counters and the success rate for the current run
// @Tags stats
// @Produce json
// @Success 200 {object} models.RunStats
// @Router /stats [get]
func (h *StatsHandler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}
