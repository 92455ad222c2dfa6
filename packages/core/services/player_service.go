package services

import (
	"context"
	"errors"
	"time"

	"core/errs"
	"core/models"

	"gorm.io/gorm"
)

// DefaultStorageTimeout bounds every storage call so no operation blocks
// indefinitely. Expiry surfaces as a transient error the caller may retry.
const DefaultStorageTimeout = 5 * time.Second

type PlayerService struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db:      db,
		timeout: DefaultStorageTimeout,
	}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, name string) (*models.Player, error) {
	key := models.NormalizeName(name)
	if key == "" {
		return nil, errs.InvalidResult("player name must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var existing models.Player
	err := s.db.WithContext(ctx).Where("name_key = ?", key).First(&existing).Error
	if err == nil {
		return nil, errs.DuplicateName("player name %q is already registered", existing.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Storage(err, "failed to check player name")
	}

	player := &models.Player{
		Name:    name,
		NameKey: key,
		Active:  true,
	}

	if err := s.db.WithContext(ctx).Create(player).Error; err != nil {
		// The unique index catches races the pre-check missed.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.DuplicateName("player name %q is already registered", name)
		}
		return nil, errs.Storage(err, "failed to create player")
	}

	return player, nil
}

func (s *PlayerService) GetPlayerByID(ctx context.Context, id uint) (*models.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var player models.Player
	if err := s.db.WithContext(ctx).First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("player %d not found", id)
		}
		return nil, errs.Storage(err, "failed to load player")
	}

	return &player, nil
}

// DeactivatePlayer marks a player inactive. The row is never removed so
// historical results keep resolving; deactivating twice is a no-op.
func (s *PlayerService) DeactivatePlayer(ctx context.Context, id uint) (*models.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var player models.Player
	if err := s.db.WithContext(ctx).First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("player %d not found", id)
		}
		return nil, errs.Storage(err, "failed to load player")
	}

	if !player.Active {
		return &player, nil
	}

	if err := s.db.WithContext(ctx).Model(&player).Update("active", false).Error; err != nil {
		return nil, errs.Storage(err, "failed to deactivate player")
	}
	player.Active = false

	return &player, nil
}

func (s *PlayerService) GetAllPlayers(ctx context.Context, orderBy string, direction string, page int, pageSize int) (*models.PaginatedPlayersResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	allowedOrderBy := map[string]bool{
		"created_at": true,
		"name":       true,
	}

	if !allowedOrderBy[orderBy] {
		orderBy = "created_at"
	}

	if direction != "ASC" && direction != "DESC" {
		direction = "DESC"
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Player{}).Count(&total).Error; err != nil {
		return nil, errs.Storage(err, "failed to count players")
	}

	offset := (page - 1) * pageSize

	var players []models.Player
	if err := s.db.WithContext(ctx).
		Order(orderBy + " " + direction).
		Order("id ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&players).Error; err != nil {
		return nil, errs.Storage(err, "failed to list players")
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedPlayersResponse{
		Data:       players,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
