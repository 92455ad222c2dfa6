package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"core/errs"
	"core/metrics"
	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

// StandingsService derives leaderboards and histories from the committed
// result set. Standings are a pure fold over results: recomputing from the
// same set always yields the same ordering, whatever order the results were
// recorded in.
type StandingsService struct {
	db      *gorm.DB
	timeout time.Duration
	table   utils.PointTable

	mu       sync.Mutex
	versions map[uint]uint64
	cache    map[uint]cachedStandings
}

type cachedStandings struct {
	version   uint64
	standings []models.Standing
}

func NewStandingsService(db *gorm.DB) *StandingsService {
	return NewStandingsServiceWithTable(db, utils.DefaultPointTable)
}

func NewStandingsServiceWithTable(db *gorm.DB, table utils.PointTable) *StandingsService {
	return &StandingsService{
		db:       db,
		timeout:  DefaultStorageTimeout,
		table:    table,
		versions: make(map[uint]uint64),
		cache:    make(map[uint]cachedStandings),
	}
}

// Invalidate bumps the game's result-set version and drops any cached
// standings. Called by the recorder after every commit.
func (s *StandingsService) Invalidate(gameID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.versions[gameID]++
	delete(s.cache, gameID)
}

// StandingsFor returns the leaderboard for a game, folding every committed
// result up to asOf when given. Ordering: points descending, then (numeric
// games) earliest contributing result, then player id.
func (s *StandingsService) StandingsFor(ctx context.Context, gameID uint, asOf *time.Time) ([]models.Standing, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("game %d not found", gameID)
		}
		return nil, errs.Storage(err, "failed to load game")
	}

	// Point-in-time queries bypass the cache; it only ever holds the
	// current view.
	var version uint64
	if asOf == nil {
		s.mu.Lock()
		version = s.versions[gameID]
		if c, ok := s.cache[gameID]; ok && c.version == version {
			out := make([]models.Standing, len(c.standings))
			copy(out, c.standings)
			s.mu.Unlock()
			metrics.StandingsCacheHits.Inc()
			return out, nil
		}
		s.mu.Unlock()
		metrics.StandingsCacheMisses.Inc()
	}

	standings, err := s.computeStandings(ctx, &game, asOf)
	if err != nil {
		return nil, err
	}

	if asOf == nil {
		s.mu.Lock()
		// Only keep the computation if no commit landed while folding.
		if s.versions[gameID] == version {
			stored := make([]models.Standing, len(standings))
			copy(stored, standings)
			s.cache[gameID] = cachedStandings{version: version, standings: stored}
		}
		s.mu.Unlock()
	}

	return standings, nil
}

type accumulator struct {
	points  float64
	results int
	firstAt time.Time
}

func (s *StandingsService) computeStandings(ctx context.Context, game *models.Game, asOf *time.Time) ([]models.Standing, error) {
	query := s.db.WithContext(ctx).
		Where("game_id = ?", game.ID).
		Preload("Entries")
	if asOf != nil {
		query = query.Where("recorded_at <= ?", *asOf)
	}

	var results []models.Result
	if err := query.Order("recorded_at ASC, id ASC").Find(&results).Error; err != nil {
		return nil, errs.Storage(err, "failed to load results")
	}

	acc := make(map[uint]*accumulator)
	for _, result := range results {
		for _, entry := range result.Entries {
			if _, ok := acc[entry.PlayerID]; !ok {
				acc[entry.PlayerID] = &accumulator{firstAt: result.RecordedAt}
			} else if result.RecordedAt.Before(acc[entry.PlayerID].firstAt) {
				acc[entry.PlayerID].firstAt = result.RecordedAt
			}
		}

		switch game.ScoringType {
		case models.ScoringOrdinal:
			ranks := make([]int, len(result.Entries))
			for i, entry := range result.Entries {
				ranks[i] = *entry.Rank
			}
			points := utils.OrdinalPoints(ranks, s.table)
			for i, entry := range result.Entries {
				acc[entry.PlayerID].points += points[i]
				acc[entry.PlayerID].results++
			}
		case models.ScoringNumeric:
			for _, entry := range result.Entries {
				acc[entry.PlayerID].points += *entry.Score
				acc[entry.PlayerID].results++
			}
		}
	}

	if len(acc) == 0 {
		return []models.Standing{}, nil
	}

	ids := make([]uint, 0, len(acc))
	for id := range acc {
		ids = append(ids, id)
	}

	var players []models.Player
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&players).Error; err != nil {
		return nil, errs.Storage(err, "failed to resolve standings players")
	}
	names := make(map[uint]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	standings := make([]models.Standing, 0, len(acc))
	for id, a := range acc {
		standings = append(standings, models.Standing{
			PlayerID:   id,
			PlayerName: names[id],
			Points:     a.points,
			Results:    a.results,
		})
	}

	numeric := game.ScoringType == models.ScoringNumeric
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if numeric {
			fa, fb := acc[a.PlayerID].firstAt, acc[b.PlayerID].firstAt
			if !fa.Equal(fb) {
				return fa.Before(fb)
			}
		}
		return a.PlayerID < b.PlayerID
	})

	return standings, nil
}

// HistoryFor lists a player's results, most recent first, optionally scoped
// to one game. Each result carries its original entries.
func (s *StandingsService) HistoryFor(ctx context.Context, playerID uint, gameID *uint, page int, pageSize int) (*models.PaginatedResultsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var player models.Player
	if err := s.db.WithContext(ctx).First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("player %d not found", playerID)
		}
		return nil, errs.Storage(err, "failed to load player")
	}

	if gameID != nil {
		var game models.Game
		if err := s.db.WithContext(ctx).First(&game, *gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.NotFound("game %d not found", *gameID)
			}
			return nil, errs.Storage(err, "failed to load game")
		}
	}

	baseQuery := s.db.WithContext(ctx).Model(&models.Result{}).
		Joins("JOIN result_entries ON result_entries.result_id = results.id").
		Where("result_entries.player_id = ?", playerID)
	if gameID != nil {
		baseQuery = baseQuery.Where("results.game_id = ?", *gameID)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, errs.Storage(err, "failed to count results")
	}

	offset := (page - 1) * pageSize

	var results []models.Result
	if err := baseQuery.
		Order("results.recorded_at DESC, results.id DESC").
		Offset(offset).
		Limit(pageSize).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("result_entries.position ASC")
		}).
		Preload("Entries.Player").
		Find(&results).Error; err != nil {
		return nil, errs.Storage(err, "failed to list results")
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedResultsResponse{
		Data:       results,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
