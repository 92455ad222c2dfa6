package handlers

import (
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
	queryService  *services.QueryService
}

func NewPlayerHandler(playerService *services.PlayerService, queryService *services.QueryService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		queryService:  queryService,
	}
}

// CreatePlayer registers a new player
// @Summary Register a player
// @Description Register a new player. Names are unique case-insensitively after trimming whitespace.
// @Tags players
// @Accept json
// @Produce json
// @Param player body models.CreatePlayerRequest true "Player data"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	player, err := h.playerService.CreatePlayer(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetPlayer retrieves a player by id
// @Summary Get a player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	player, err := h.playerService.GetPlayerByID(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// DeactivatePlayer marks a player inactive
// @Summary Deactivate a player
// @Description Mark a player inactive. The player keeps appearing in recorded results and standings.
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{id}/deactivate [patch]
func (h *PlayerHandler) DeactivatePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	player, err := h.playerService.DeactivatePlayer(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetAllPlayers retrieves players with pagination
// @Summary List players
// @Tags players
// @Produce json
// @Param page query int false "Page number (default: 1)" default(1)
// @Param per_page query int false "Items per page (default: 10, max: 100)" default(10)
// @Param order_by query string false "Order by field" Enums(created_at,name)
// @Param direction query string false "Sort direction" Enums(ASC,DESC)
// @Success 200 {object} models.PaginatedPlayersResponse
// @Failure 400 {object} map[string]string
// @Router /players [get]
func (h *PlayerHandler) GetAllPlayers(c *gin.Context) {
	page, perPage, ok := parsePagination(c)
	if !ok {
		return
	}

	orderBy := c.DefaultQuery("order_by", "created_at")
	direction := c.DefaultQuery("direction", "DESC")

	result, err := h.playerService.GetAllPlayers(c.Request.Context(), orderBy, direction, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPlayerResults retrieves a player's result history
// @Summary Get a player's result history
// @Description List the results a player took part in, most recent first, optionally scoped to one game.
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Param game_id query int false "Filter by game ID"
// @Param page query int false "Page number (default: 1)" default(1)
// @Param per_page query int false "Items per page (default: 10, max: 100)" default(10)
// @Success 200 {object} models.PaginatedResultsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{id}/results [get]
func (h *PlayerHandler) GetPlayerResults(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	page, perPage, ok := parsePagination(c)
	if !ok {
		return
	}

	var gameID *uint
	if gameIDStr := c.Query("game_id"); gameIDStr != "" {
		parsed, err := strconv.ParseUint(gameIDStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game_id parameter"})
			return
		}
		gameIDUint := uint(parsed)
		gameID = &gameIDUint
	}

	history, err := h.queryService.GetPlayerHistory(c.Request.Context(), uint(id), gameID, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// parsePagination reads page/per_page, writing a 400 itself when they are
// malformed. Callers bail out when ok is false.
func parsePagination(c *gin.Context) (page int, perPage int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return 0, 0, false
	}

	perPage, err = strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil || perPage < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid per_page parameter"})
		return 0, 0, false
	}
	if perPage > 100 {
		perPage = 100
	}

	return page, perPage, true
}
