package models

import "time"

// Standing is one row of a computed leaderboard. Standings are derived from
// the result set on demand and are never persisted as ground truth.
type Standing struct {
	PlayerID   uint    `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Points     float64 `json:"points"`
	Results    int     `json:"results"`
}

type StandingsResponse struct {
	GameID    uint       `json:"game_id"`
	AsOf      *time.Time `json:"as_of,omitempty"`
	Standings []Standing `json:"standings"`
}

type Stats struct {
	TotalPlayers         int64 `json:"total_players"`
	TotalGames           int64 `json:"total_games"`
	TotalResults         int64 `json:"total_results"`
	ResultsLast7Days     int64 `json:"results_last_7_days"`
	ResultsPrevious7Days int64 `json:"results_previous_7_days"`
}
