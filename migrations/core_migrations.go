package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2026_08_01_000000_create_core_tables",
			Up: func(db *gorm.DB) error {
				// Players. name_key is the trimmed lowercase name; its
				// unique index enforces case-insensitive uniqueness.
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						name_key VARCHAR(255) NOT NULL UNIQUE,
						active BOOLEAN DEFAULT TRUE,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_players_active ON players(active);
				`).Error; err != nil {
					return err
				}

				// Games.
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS games (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						name_key VARCHAR(255) NOT NULL UNIQUE,
						scoring_type VARCHAR(16) NOT NULL,
						min_players INT DEFAULT 2,
						max_players INT DEFAULT 0,
						description VARCHAR(1024),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
				`).Error; err != nil {
					return err
				}

				// Results. Immutable once inserted; request_key backs
				// idempotent retries, compensates_id links corrections.
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS results (
						id BIGSERIAL PRIMARY KEY,
						game_id BIGINT NOT NULL,
						recorded_at TIMESTAMP NOT NULL,
						session_id VARCHAR(64),
						request_key VARCHAR(64) UNIQUE,
						compensates_id BIGINT,
						created_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (game_id) REFERENCES games(id),
						FOREIGN KEY (compensates_id) REFERENCES results(id)
					);
					CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
					CREATE INDEX IF NOT EXISTS idx_results_recorded_at ON results(recorded_at);
					CREATE INDEX IF NOT EXISTS idx_results_session_id ON results(session_id);
					CREATE INDEX IF NOT EXISTS idx_results_compensates_id ON results(compensates_id);
				`).Error; err != nil {
					return err
				}

				// Result entries: one row per (result, player) outcome.
				// rank is set for ordinal games, score for numeric ones.
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS result_entries (
						id BIGSERIAL PRIMARY KEY,
						result_id BIGINT NOT NULL,
						player_id BIGINT NOT NULL,
						position INT NOT NULL,
						rank INT,
						score FLOAT,
						FOREIGN KEY (result_id) REFERENCES results(id) ON DELETE CASCADE,
						FOREIGN KEY (player_id) REFERENCES players(id),
						UNIQUE (result_id, player_id)
					);
					CREATE INDEX IF NOT EXISTS idx_result_entries_result_id ON result_entries(result_id);
					CREATE INDEX IF NOT EXISTS idx_result_entries_player_id ON result_entries(player_id);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				if err := db.Exec("DROP TABLE IF EXISTS result_entries CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS results CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS games CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS players CASCADE").Error; err != nil {
					return err
				}
				return nil
			},
		},
	}
}
