package core

import (
	"core/handlers"
	"core/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	PlayerHandler    *handlers.PlayerHandler
	PlayerService    *services.PlayerService
	GameHandler      *handlers.GameHandler
	GameService      *services.GameService
	ResultHandler    *handlers.ResultHandler
	ResultService    *services.ResultService
	StandingsService *services.StandingsService
	StatsHandler     *handlers.StatsHandler
	QueryService     *services.QueryService
	db               *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	playerService := services.NewPlayerService(db)
	gameService := services.NewGameService(db)

	standingsService := services.NewStandingsService(db)
	resultService := services.NewResultService(db, standingsService)

	queryService := services.NewQueryService(db, playerService, gameService, standingsService, resultService)

	playerHandler := handlers.NewPlayerHandler(playerService, queryService)
	gameHandler := handlers.NewGameHandler(gameService, queryService)
	resultHandler := handlers.NewResultHandler(resultService, queryService)
	statsHandler := handlers.NewStatsHandler(queryService)

	return &Module{
		PlayerHandler:    playerHandler,
		PlayerService:    playerService,
		GameHandler:      gameHandler,
		GameService:      gameService,
		ResultHandler:    resultHandler,
		ResultService:    resultService,
		StandingsService: standingsService,
		StatsHandler:     statsHandler,
		QueryService:     queryService,
		db:               db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	players := r.Group("/players")
	{
		players.POST("", m.PlayerHandler.CreatePlayer)
		players.GET("", m.PlayerHandler.GetAllPlayers)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.PATCH("/:id/deactivate", m.PlayerHandler.DeactivatePlayer)
		players.GET("/:id/results", m.PlayerHandler.GetPlayerResults)
	}

	games := r.Group("/games")
	{
		games.POST("", m.GameHandler.CreateGame)
		games.GET("", m.GameHandler.GetAllGames)
		games.GET("/:id", m.GameHandler.GetGame)
		games.PATCH("/:id", m.GameHandler.UpdateGame)
		games.GET("/:id/standings", m.GameHandler.GetStandings)
	}

	results := r.Group("/results")
	{
		results.POST("", m.ResultHandler.RecordResult)
		results.GET("", m.ResultHandler.ListResults)
		results.GET("/:id", m.ResultHandler.GetResult)
	}

	r.GET("/stats", m.StatsHandler.GetStats)
}
