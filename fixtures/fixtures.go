// Package fixtures seeds a demo dataset. It only ever talks to the core
// services — the same contracts the API serves — so seeded data obeys every
// validation and aggregation rule a real client would.
package fixtures

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"core"
	"core/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Fixtures struct {
	db     *gorm.DB
	module *core.Module
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{
		db:     db,
		module: core.NewModule(db),
	}
}

var demoPlayers = []string{
	"Alice", "Bob", "Charlie", "Diana", "Erik",
	"Fatima", "Grace", "Hugo", "Ingrid", "Jonas",
}

// GenerateTestData creates the demo players, three games and a month of
// recorded results.
func (f *Fixtures) GenerateTestData() error {
	ctx := context.Background()

	log.Println("Starting fixtures generation...")

	players := make([]*models.Player, 0, len(demoPlayers))
	for _, name := range demoPlayers {
		p, err := f.module.PlayerService.CreatePlayer(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to create player %s: %w", name, err)
		}
		players = append(players, p)
	}
	log.Printf("Created %d players", len(players))

	chess, err := f.module.GameService.CreateGame(ctx, models.CreateGameRequest{
		Name:        "Chess",
		ScoringType: models.ScoringOrdinal,
		MinPlayers:  2,
		MaxPlayers:  2,
		Description: "Head-to-head, ranked finish",
	})
	if err != nil {
		return fmt.Errorf("failed to create chess: %w", err)
	}

	scrabble, err := f.module.GameService.CreateGame(ctx, models.CreateGameRequest{
		Name:        "Scrabble",
		ScoringType: models.ScoringNumeric,
		MinPlayers:  2,
		MaxPlayers:  4,
		Description: "Raw point totals",
	})
	if err != nil {
		return fmt.Errorf("failed to create scrabble: %w", err)
	}

	solitaire, err := f.module.GameService.CreateGame(ctx, models.CreateGameRequest{
		Name:        "Solitaire",
		ScoringType: models.ScoringNumeric,
		MinPlayers:  1,
		MaxPlayers:  1,
		Description: "Solo score chasing",
	})
	if err != nil {
		return fmt.Errorf("failed to create solitaire: %w", err)
	}

	if err := f.recordChessResults(ctx, chess, players); err != nil {
		return err
	}
	if err := f.recordScrabbleResults(ctx, scrabble, players); err != nil {
		return err
	}
	if err := f.recordSolitaireResults(ctx, solitaire, players); err != nil {
		return err
	}

	log.Println("Fixtures generation completed")
	return nil
}

func (f *Fixtures) recordChessResults(ctx context.Context, game *models.Game, players []*models.Player) error {
	for i := 0; i < 20; i++ {
		a, b := pickTwo(players)
		recordedAt := randomPastTime(30)

		// Roughly one draw in five.
		rankA, rankB := 1, 2
		switch rand.Intn(5) {
		case 0:
			rankB = 1
		case 1:
			rankA, rankB = 2, 1
		}

		req := models.RecordResultRequest{
			GameID:     game.ID,
			RecordedAt: &recordedAt,
			RequestKey: uuid.NewString(),
			Entries: []models.ResultEntryRequest{
				{PlayerID: a.ID, Rank: &rankA},
				{PlayerID: b.ID, Rank: &rankB},
			},
		}
		if _, err := f.module.ResultService.RecordResult(ctx, req); err != nil {
			return fmt.Errorf("failed to record chess result: %w", err)
		}
	}
	log.Println("Recorded 20 chess results")
	return nil
}

func (f *Fixtures) recordScrabbleResults(ctx context.Context, game *models.Game, players []*models.Player) error {
	for i := 0; i < 15; i++ {
		count := 2 + rand.Intn(3)
		picked := pickN(players, count)
		recordedAt := randomPastTime(30)
		sessionID := uuid.NewString()

		entries := make([]models.ResultEntryRequest, 0, count)
		for _, p := range picked {
			score := float64(120 + rand.Intn(280))
			entries = append(entries, models.ResultEntryRequest{PlayerID: p.ID, Score: &score})
		}

		req := models.RecordResultRequest{
			GameID:     game.ID,
			RecordedAt: &recordedAt,
			SessionID:  sessionID,
			RequestKey: uuid.NewString(),
			Entries:    entries,
		}
		if _, err := f.module.ResultService.RecordResult(ctx, req); err != nil {
			return fmt.Errorf("failed to record scrabble result: %w", err)
		}
	}
	log.Println("Recorded 15 scrabble results")
	return nil
}

func (f *Fixtures) recordSolitaireResults(ctx context.Context, game *models.Game, players []*models.Player) error {
	for i := 0; i < 10; i++ {
		p := players[rand.Intn(len(players))]
		recordedAt := randomPastTime(30)
		score := float64(50 + rand.Intn(500))

		req := models.RecordResultRequest{
			GameID:     game.ID,
			RecordedAt: &recordedAt,
			RequestKey: uuid.NewString(),
			Entries: []models.ResultEntryRequest{
				{PlayerID: p.ID, Score: &score},
			},
		}
		if _, err := f.module.ResultService.RecordResult(ctx, req); err != nil {
			return fmt.Errorf("failed to record solitaire result: %w", err)
		}
	}
	log.Println("Recorded 10 solitaire results")
	return nil
}

// ClearAllData wipes the seeded tables. Ops tooling, not a core contract:
// the core never deletes results.
func (f *Fixtures) ClearAllData() error {
	tables := []string{"result_entries", "results", "games", "players"}
	for _, table := range tables {
		if err := f.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func pickTwo(players []*models.Player) (*models.Player, *models.Player) {
	i := rand.Intn(len(players))
	j := rand.Intn(len(players) - 1)
	if j >= i {
		j++
	}
	return players[i], players[j]
}

func pickN(players []*models.Player, n int) []*models.Player {
	idx := rand.Perm(len(players))
	picked := make([]*models.Player, 0, n)
	for _, i := range idx[:n] {
		picked = append(picked, players[i])
	}
	return picked
}

func randomPastTime(maxDays int) time.Time {
	return time.Now().
		AddDate(0, 0, -rand.Intn(maxDays)).
		Add(-time.Duration(rand.Intn(24*60)) * time.Minute)
}
