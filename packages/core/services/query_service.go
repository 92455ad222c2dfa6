package services

import (
	"context"
	"time"

	"core/errs"
	"core/models"

	"gorm.io/gorm"
)

// ResultFilters narrows a result listing. Nil fields are ignored.
type ResultFilters struct {
	GameID   *uint
	PlayerID *uint
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PerPage  int
}

// QueryService is the read-only facade the transport calls against. It
// composes entity lookups with aggregation views and owns nothing itself:
// filters referencing unknown entities fail with not-found, empty matches
// come back as an empty page, never an error.
type QueryService struct {
	db        *gorm.DB
	timeout   time.Duration
	players   *PlayerService
	games     *GameService
	standings *StandingsService
	results   *ResultService
}

func NewQueryService(db *gorm.DB, players *PlayerService, games *GameService, standings *StandingsService, results *ResultService) *QueryService {
	return &QueryService{
		db:        db,
		timeout:   DefaultStorageTimeout,
		players:   players,
		games:     games,
		standings: standings,
		results:   results,
	}
}

func (s *QueryService) GetStandings(ctx context.Context, gameID uint, asOf *time.Time) (*models.StandingsResponse, error) {
	standings, err := s.standings.StandingsFor(ctx, gameID, asOf)
	if err != nil {
		return nil, err
	}
	return &models.StandingsResponse{
		GameID:    gameID,
		AsOf:      asOf,
		Standings: standings,
	}, nil
}

func (s *QueryService) GetPlayerHistory(ctx context.Context, playerID uint, gameID *uint, page, perPage int) (*models.PaginatedResultsResponse, error) {
	return s.standings.HistoryFor(ctx, playerID, gameID, page, perPage)
}

func (s *QueryService) GetResult(ctx context.Context, id uint) (*models.Result, error) {
	return s.results.GetResultByID(ctx, id)
}

func (s *QueryService) ListResults(ctx context.Context, filters ResultFilters) (*models.PaginatedResultsResponse, error) {
	// Validate referenced entities up front so an unknown id is a
	// not-found, distinguishable from a legitimately empty page.
	if filters.GameID != nil {
		if _, err := s.games.GetGameByID(ctx, *filters.GameID); err != nil {
			return nil, err
		}
	}
	if filters.PlayerID != nil {
		if _, err := s.players.GetPlayerByID(ctx, *filters.PlayerID); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	baseQuery := s.db.WithContext(ctx).Model(&models.Result{})
	if filters.GameID != nil {
		baseQuery = baseQuery.Where("results.game_id = ?", *filters.GameID)
	}
	if filters.PlayerID != nil {
		baseQuery = baseQuery.
			Joins("JOIN result_entries ON result_entries.result_id = results.id").
			Where("result_entries.player_id = ?", *filters.PlayerID)
	}
	if filters.DateFrom != nil {
		baseQuery = baseQuery.Where("results.recorded_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		baseQuery = baseQuery.Where("results.recorded_at < ?", *filters.DateTo)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, errs.Storage(err, "failed to count results")
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	perPage := filters.PerPage
	if perPage < 1 {
		perPage = 10
	}
	offset := (page - 1) * perPage

	var results []models.Result
	if err := baseQuery.
		Order("results.recorded_at DESC, results.id DESC").
		Offset(offset).
		Limit(perPage).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("result_entries.position ASC")
		}).
		Preload("Entries.Player").
		Find(&results).Error; err != nil {
		return nil, errs.Storage(err, "failed to list results")
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	return &models.PaginatedResultsResponse{
		Data:       results,
		Total:      total,
		Page:       page,
		PageSize:   perPage,
		TotalPages: totalPages,
	}, nil
}

// GetStats returns the headline totals plus the recent activity windows.
func (s *QueryService) GetStats(ctx context.Context) (*models.Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var stats models.Stats

	if err := s.db.WithContext(ctx).Model(&models.Player{}).Count(&stats.TotalPlayers).Error; err != nil {
		return nil, errs.Storage(err, "failed to count players")
	}
	if err := s.db.WithContext(ctx).Model(&models.Game{}).Count(&stats.TotalGames).Error; err != nil {
		return nil, errs.Storage(err, "failed to count games")
	}
	if err := s.db.WithContext(ctx).Model(&models.Result{}).Count(&stats.TotalResults).Error; err != nil {
		return nil, errs.Storage(err, "failed to count results")
	}

	now := time.Now()
	last7DaysStart := now.AddDate(0, 0, -7)
	previous7DaysStart := now.AddDate(0, 0, -14)

	if err := s.db.WithContext(ctx).Model(&models.Result{}).
		Where("recorded_at >= ?", last7DaysStart).
		Count(&stats.ResultsLast7Days).Error; err != nil {
		return nil, errs.Storage(err, "failed to count recent results")
	}

	if err := s.db.WithContext(ctx).Model(&models.Result{}).
		Where("recorded_at >= ? AND recorded_at < ?", previous7DaysStart, last7DaysStart).
		Count(&stats.ResultsPrevious7Days).Error; err != nil {
		return nil, errs.Storage(err, "failed to count previous results")
	}

	return &stats, nil
}
