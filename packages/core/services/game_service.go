package services

import (
	"context"
	"errors"
	"time"

	"core/errs"
	"core/models"

	"gorm.io/gorm"
)

type GameService struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{
		db:      db,
		timeout: DefaultStorageTimeout,
	}
}

func (s *GameService) CreateGame(ctx context.Context, req models.CreateGameRequest) (*models.Game, error) {
	key := models.NormalizeName(req.Name)
	if key == "" {
		return nil, errs.InvalidResult("game name must not be empty")
	}
	if req.ScoringType != models.ScoringOrdinal && req.ScoringType != models.ScoringNumeric {
		return nil, errs.InvalidResult("scoring type must be %q or %q", models.ScoringOrdinal, models.ScoringNumeric)
	}

	minPlayers := req.MinPlayers
	if minPlayers == 0 {
		minPlayers = 2
	}
	if minPlayers < 1 {
		return nil, errs.InvalidResult("min players must be at least 1")
	}
	if req.MaxPlayers != 0 && req.MaxPlayers < minPlayers {
		return nil, errs.InvalidResult("max players must not be below min players")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var existing models.Game
	err := s.db.WithContext(ctx).Where("name_key = ?", key).First(&existing).Error
	if err == nil {
		return nil, errs.DuplicateName("game name %q is already registered", existing.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Storage(err, "failed to check game name")
	}

	game := &models.Game{
		Name:        req.Name,
		NameKey:     key,
		ScoringType: req.ScoringType,
		MinPlayers:  minPlayers,
		MaxPlayers:  req.MaxPlayers,
		Description: req.Description,
	}

	if err := s.db.WithContext(ctx).Create(game).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.DuplicateName("game name %q is already registered", req.Name)
		}
		return nil, errs.Storage(err, "failed to create game")
	}

	return game, nil
}

func (s *GameService) GetGameByID(ctx context.Context, id uint) (*models.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("game %d not found", id)
		}
		return nil, errs.Storage(err, "failed to load game")
	}

	return &game, nil
}

// UpdateGameMetadata edits the non-semantic fields of a game. Scoring type
// and min players are frozen once the game exists, so results recorded under
// the old rules never change meaning.
func (s *GameService) UpdateGameMetadata(ctx context.Context, id uint, req models.UpdateGameRequest) (*models.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("game %d not found", id)
		}
		return nil, errs.Storage(err, "failed to load game")
	}

	updates := map[string]interface{}{}
	if req.MaxPlayers != nil {
		if *req.MaxPlayers != 0 && *req.MaxPlayers < game.MinPlayers {
			return nil, errs.InvalidResult("max players must not be below min players")
		}
		updates["max_players"] = *req.MaxPlayers
		game.MaxPlayers = *req.MaxPlayers
	}
	if req.Description != nil {
		updates["description"] = *req.Description
		game.Description = *req.Description
	}

	if len(updates) == 0 {
		return &game, nil
	}

	if err := s.db.WithContext(ctx).Model(&game).Updates(updates).Error; err != nil {
		return nil, errs.Storage(err, "failed to update game")
	}

	return &game, nil
}

func (s *GameService) GetAllGames(ctx context.Context, page int, pageSize int) (*models.PaginatedGamesResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Game{}).Count(&total).Error; err != nil {
		return nil, errs.Storage(err, "failed to count games")
	}

	offset := (page - 1) * pageSize

	var games []models.Game
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&games).Error; err != nil {
		return nil, errs.Storage(err, "failed to list games")
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedGamesResponse{
		Data:       games,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
