package models

import "time"

// Result is an immutable record of one match outcome. Corrections are new
// results carrying CompensatesID, never edits to a committed row.
type Result struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GameID     uint      `gorm:"not null;index" json:"game_id"`
	RecordedAt time.Time `gorm:"not null;index" json:"recorded_at"`
	SessionID  string    `gorm:"size:64;index" json:"session_id,omitempty"`
	// RequestKey is a caller-supplied idempotency key. Replaying a commit
	// with the same key returns the original result instead of a duplicate.
	RequestKey    *string   `gorm:"size:64;uniqueIndex" json:"request_key,omitempty"`
	CompensatesID *uint     `gorm:"index" json:"compensates_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	Entries []ResultEntry `gorm:"foreignKey:ResultID" json:"entries"`
}

func (Result) TableName() string {
	return "results"
}

// ResultEntry holds one player's outcome within a result. Exactly one of
// Rank and Score is set, matching the game's scoring type.
type ResultEntry struct {
	ID       uint     `gorm:"primaryKey;autoIncrement" json:"-"`
	ResultID uint     `gorm:"not null;index" json:"-"`
	PlayerID uint     `gorm:"not null;index" json:"player_id"`
	Position int      `gorm:"not null" json:"-"` // submission order, for stable round-trips
	Rank     *int     `json:"rank,omitempty"`
	Score    *float64 `json:"score,omitempty"`

	Player Player `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
}

func (ResultEntry) TableName() string {
	return "result_entries"
}

type PaginatedResultsResponse struct {
	Data       []Result `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}

type ResultEntryRequest struct {
	PlayerID uint     `json:"player_id" binding:"required"`
	Rank     *int     `json:"rank,omitempty"`
	Score    *float64 `json:"score,omitempty"`
}

type RecordResultRequest struct {
	GameID        uint                 `json:"game_id" binding:"required"`
	Entries       []ResultEntryRequest `json:"entries" binding:"required"`
	RecordedAt    *time.Time           `json:"recorded_at,omitempty"`
	SessionID     string               `json:"session_id,omitempty"`
	RequestKey    string               `json:"request_key,omitempty"`
	CompensatesID *uint                `json:"compensates_id,omitempty"`
}
