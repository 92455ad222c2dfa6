package models

import "time"

// Scoring types a game can declare. Ordinal games rank their entrants,
// numeric games record raw point values.
const (
	ScoringOrdinal = "ordinal"
	ScoringNumeric = "numeric"
)

type Game struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	NameKey     string `gorm:"size:255;not null;uniqueIndex" json:"-"`
	ScoringType string `gorm:"size:16;not null" json:"scoring_type"`
	// MinPlayers of 1 marks a single-participant game (solo play allowed).
	MinPlayers  int       `gorm:"default:2" json:"min_players"`
	MaxPlayers  int       `gorm:"default:0" json:"max_players"` // 0 = unbounded
	Description string    `gorm:"size:1024" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Game) TableName() string {
	return "games"
}

// SingleParticipant reports whether the game accepts results with one entrant.
func (g *Game) SingleParticipant() bool {
	return g.MinPlayers == 1
}

type PaginatedGamesResponse struct {
	Data       []Game `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

type CreateGameRequest struct {
	Name        string `json:"name" binding:"required"`
	ScoringType string `json:"scoring_type" binding:"required,oneof=ordinal numeric"`
	MinPlayers  int    `json:"min_players,omitempty"`
	MaxPlayers  int    `json:"max_players,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateGameRequest covers the non-semantic metadata edits allowed after a
// game has recorded results. Scoring type and min players stay frozen.
type UpdateGameRequest struct {
	MaxPlayers  *int    `json:"max_players,omitempty"`
	Description *string `json:"description,omitempty"`
}
