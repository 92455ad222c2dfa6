package services

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"core/errs"
	"core/metrics"
	"core/models"

	"gorm.io/gorm"
)

// Invalidator is how the recorder tells the aggregation side that standings
// for a game are stale. Satisfied by StandingsService.
type Invalidator interface {
	Invalidate(gameID uint)
}

type ResultService struct {
	db          *gorm.DB
	invalidator Invalidator
	timeout     time.Duration

	// One mutex per game id. Commits for the same game are serialized so
	// concurrent recordings cannot interleave within a transaction window.
	locks sync.Map
}

func NewResultService(db *gorm.DB, invalidator Invalidator) *ResultService {
	return &ResultService{
		db:          db,
		invalidator: invalidator,
		timeout:     DefaultStorageTimeout,
	}
}

func (s *ResultService) gameLock(gameID uint) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(gameID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// RecordResult validates and commits one match outcome as a single atomic
// unit. Nothing is persisted when any validation fails, and a storage
// failure rolls back the whole result. Replaying a request key returns the
// already-committed result.
func (s *ResultService) RecordResult(ctx context.Context, req models.RecordResultRequest) (*models.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, req.GameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("game %d not found", req.GameID)
		}
		return nil, errs.Storage(err, "failed to load game")
	}

	if err := validateEntries(&game, req.Entries); err != nil {
		return nil, err
	}

	if err := s.checkPlayersExist(ctx, req.Entries); err != nil {
		return nil, err
	}

	if req.CompensatesID != nil {
		var original models.Result
		if err := s.db.WithContext(ctx).First(&original, *req.CompensatesID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.InvalidResult("compensated result %d does not exist", *req.CompensatesID)
			}
			return nil, errs.Storage(err, "failed to load compensated result")
		}
		if original.GameID != req.GameID {
			return nil, errs.InvalidResult("compensated result %d belongs to game %d, not %d", original.ID, original.GameID, req.GameID)
		}
	}

	if req.RequestKey != "" {
		if existing, err := s.findByRequestKey(ctx, req.RequestKey); err != nil {
			return nil, err
		} else if existing != nil {
			metrics.ResultsReplayed.Inc()
			return existing, nil
		}
	}

	recordedAt := time.Now()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	result := models.Result{
		GameID:        req.GameID,
		RecordedAt:    recordedAt,
		SessionID:     req.SessionID,
		CompensatesID: req.CompensatesID,
	}
	if req.RequestKey != "" {
		key := req.RequestKey
		result.RequestKey = &key
	}
	for i, e := range req.Entries {
		result.Entries = append(result.Entries, models.ResultEntry{
			PlayerID: e.PlayerID,
			Position: i,
			Rank:     e.Rank,
			Score:    e.Score,
		})
	}

	mu := s.gameLock(req.GameID)
	mu.Lock()
	defer mu.Unlock()

	// Result and entries go in together; gorm inserts the association rows
	// inside the same transaction as the parent.
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&result).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) && req.RequestKey != "" {
			// Lost a race against a retry carrying the same key.
			if existing, ferr := s.findByRequestKey(ctx, req.RequestKey); ferr == nil && existing != nil {
				metrics.ResultsReplayed.Inc()
				return existing, nil
			}
		}
		return nil, errs.Storage(err, "failed to commit result")
	}

	metrics.ResultsRecorded.Inc()
	if s.invalidator != nil {
		s.invalidator.Invalidate(req.GameID)
	}

	return s.loadResult(ctx, result.ID)
}

func (s *ResultService) GetResultByID(ctx context.Context, id uint) (*models.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.loadResult(ctx, id)
}

func (s *ResultService) loadResult(ctx context.Context, id uint) (*models.Result, error) {
	var result models.Result
	err := s.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("result_entries.position ASC")
		}).
		Preload("Entries.Player").
		First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("result %d not found", id)
		}
		return nil, errs.Storage(err, "failed to load result")
	}
	return &result, nil
}

func (s *ResultService) findByRequestKey(ctx context.Context, key string) (*models.Result, error) {
	var existing models.Result
	err := s.db.WithContext(ctx).Where("request_key = ?", key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Storage(err, "failed to check request key")
	}
	return s.loadResult(ctx, existing.ID)
}

func (s *ResultService) checkPlayersExist(ctx context.Context, entries []models.ResultEntryRequest) error {
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.PlayerID)
	}

	var found []models.Player
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return errs.Storage(err, "failed to resolve players")
	}

	known := make(map[uint]bool, len(found))
	for _, p := range found {
		known[p.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return errs.NotFound("player %d not found", id)
		}
	}
	return nil
}

// validateEntries enforces the shape rules: entry count against the game's
// participant bounds, distinct players, and outcomes matching the declared
// scoring type (finite scores for numeric games, ranks for ordinal ones).
func validateEntries(game *models.Game, entries []models.ResultEntryRequest) error {
	if len(entries) == 0 {
		return errs.InvalidResult("a result needs at least one entry")
	}

	seen := make(map[uint]bool, len(entries))
	for _, e := range entries {
		if seen[e.PlayerID] {
			return errs.InvalidResult("player %d appears more than once", e.PlayerID)
		}
		seen[e.PlayerID] = true
	}

	if len(entries) < 2 && !game.SingleParticipant() {
		return errs.InvalidResult("game %q requires at least two distinct players", game.Name)
	}
	if len(entries) < game.MinPlayers {
		return errs.InvalidResult("game %q requires at least %d players", game.Name, game.MinPlayers)
	}
	if game.MaxPlayers != 0 && len(entries) > game.MaxPlayers {
		return errs.InvalidResult("game %q allows at most %d players", game.Name, game.MaxPlayers)
	}

	for _, e := range entries {
		switch game.ScoringType {
		case models.ScoringOrdinal:
			if e.Rank == nil || e.Score != nil {
				return errs.InvalidResult("game %q is rank-scored; every entry needs a rank and no score", game.Name)
			}
			if *e.Rank < 1 {
				return errs.InvalidResult("rank values start at 1, got %d", *e.Rank)
			}
		case models.ScoringNumeric:
			if e.Score == nil || e.Rank != nil {
				return errs.InvalidResult("game %q is point-scored; every entry needs a score and no rank", game.Name)
			}
			if math.IsNaN(*e.Score) || math.IsInf(*e.Score, 0) {
				return errs.InvalidResult("score for player %d must be finite", e.PlayerID)
			}
		default:
			return errs.InvalidResult("game %q has unknown scoring type %q", game.Name, game.ScoringType)
		}
	}

	return nil
}
