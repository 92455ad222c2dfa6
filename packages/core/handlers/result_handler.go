package handlers

import (
	"net/http"
	"strconv"
	"time"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	resultService *services.ResultService
	queryService  *services.QueryService
}

func NewResultHandler(resultService *services.ResultService, queryService *services.QueryService) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
		queryService:  queryService,
	}
}

// RecordResult commits a new match outcome
// @Summary Record a result
// @Description Commit one match outcome atomically. Entries carry ranks for ordinal games or scores for numeric games. Supply request_key to make retries idempotent; supply compensates_id to correct an earlier result without mutating it.
// @Tags results
// @Accept json
// @Produce json
// @Param result body models.RecordResultRequest true "Result data"
// @Success 201 {object} models.Result
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /results [post]
func (h *ResultHandler) RecordResult(c *gin.Context) {
	var req models.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.resultService.RecordResult(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetResult retrieves a single result
// @Summary Get a result
// @Tags results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} models.Result
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /results/{id} [get]
func (h *ResultHandler) GetResult(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	result, err := h.queryService.GetResult(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListResults retrieves results with filters and pagination
// @Summary List results
// @Description List results with optional game, player and date-range filters, most recent first.
// @Tags results
// @Produce json
// @Param page query int false "Page number (default: 1)" default(1)
// @Param per_page query int false "Items per page (default: 10, max: 100)" default(10)
// @Param game_id query int false "Filter by game ID"
// @Param player_id query int false "Filter by player ID"
// @Param date_from query string false "Filter from date (YYYY-MM-DD format)"
// @Param date_to query string false "Filter up to date, exclusive (YYYY-MM-DD format)"
// @Success 200 {object} models.PaginatedResultsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /results [get]
func (h *ResultHandler) ListResults(c *gin.Context) {
	page, perPage, ok := parsePagination(c)
	if !ok {
		return
	}

	filters := services.ResultFilters{
		Page:    page,
		PerPage: perPage,
	}

	if gameIDStr := c.Query("game_id"); gameIDStr != "" {
		gameID, err := strconv.ParseUint(gameIDStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game_id parameter"})
			return
		}
		gameIDUint := uint(gameID)
		filters.GameID = &gameIDUint
	}

	if playerIDStr := c.Query("player_id"); playerIDStr != "" {
		playerID, err := strconv.ParseUint(playerIDStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player_id parameter"})
			return
		}
		playerIDUint := uint(playerID)
		filters.PlayerID = &playerIDUint
	}

	if dateFromStr := c.Query("date_from"); dateFromStr != "" {
		dateFrom, err := time.Parse("2006-01-02", dateFromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_from format. Use YYYY-MM-DD"})
			return
		}
		filters.DateFrom = &dateFrom
	}

	if dateToStr := c.Query("date_to"); dateToStr != "" {
		dateTo, err := time.Parse("2006-01-02", dateToStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_to format. Use YYYY-MM-DD"})
			return
		}
		filters.DateTo = &dateTo
	}

	result, err := h.queryService.ListResults(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
