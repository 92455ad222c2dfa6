package handlers

import (
	"net/http"

	"core/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	queryService *services.QueryService
}

func NewStatsHandler(queryService *services.QueryService) *StatsHandler {
	return &StatsHandler{
		queryService: queryService,
	}
}

// GetStats retrieves global statistics
// @Summary Get global statistics
// @Description Totals for players, games and results, plus 7-day activity windows.
// @Tags stats
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 503 {object} map[string]string
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.queryService.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
