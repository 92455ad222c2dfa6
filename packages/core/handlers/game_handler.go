package handlers

import (
	"net/http"
	"strconv"
	"time"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService  *services.GameService
	queryService *services.QueryService
}

func NewGameHandler(gameService *services.GameService, queryService *services.QueryService) *GameHandler {
	return &GameHandler{
		gameService:  gameService,
		queryService: queryService,
	}
}

// CreateGame registers a new game
// @Summary Create a game
// @Description Create a game with a scoring type of "ordinal" (ranked finishes) or "numeric" (raw scores). Min players of 1 allows solo results.
// @Tags games
// @Accept json
// @Produce json
// @Param game body models.CreateGameRequest true "Game data"
// @Success 201 {object} models.Game
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	game, err := h.gameService.CreateGame(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// GetGame retrieves a game by id
// @Summary Get a game
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} models.Game
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	game, err := h.gameService.GetGameByID(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// UpdateGame edits a game's non-semantic metadata
// @Summary Update game metadata
// @Description Edit max players or description. Scoring type and min players are immutable.
// @Tags games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param game body models.UpdateGameRequest true "Metadata updates"
// @Success 200 {object} models.Game
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/{id} [patch]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var req models.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	game, err := h.gameService.UpdateGameMetadata(c.Request.Context(), uint(id), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// GetAllGames retrieves games with pagination
// @Summary List games
// @Tags games
// @Produce json
// @Param page query int false "Page number (default: 1)" default(1)
// @Param per_page query int false "Items per page (default: 10, max: 100)" default(10)
// @Success 200 {object} models.PaginatedGamesResponse
// @Failure 400 {object} map[string]string
// @Router /games [get]
func (h *GameHandler) GetAllGames(c *gin.Context) {
	page, perPage, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := h.gameService.GetAllGames(c.Request.Context(), page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStandings retrieves the leaderboard for a game
// @Summary Get game standings
// @Description Current standings for a game, points descending. Pass as_of (RFC 3339) for a point-in-time view.
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Param as_of query string false "Compute standings as of this instant (RFC 3339)"
// @Success 200 {object} models.StandingsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/{id}/standings [get]
func (h *GameHandler) GetStandings(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var asOf *time.Time
	if asOfStr := c.Query("as_of"); asOfStr != "" {
		parsed, err := time.Parse(time.RFC3339, asOfStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid as_of format. Use RFC 3339"})
			return
		}
		asOf = &parsed
	}

	standings, err := h.queryService.GetStandings(c.Request.Context(), uint(id), asOf)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, standings)
}
