package services

import (
	"context"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"core/errs"
	"core/models"
)

func TestStandingsChessScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustCreatePlayer(t, "Alice")
	bob := env.mustCreatePlayer(t, "Bob")
	chess := env.mustCreateGame(t, models.CreateGameRequest{
		Name:        "Chess",
		ScoringType: models.ScoringOrdinal,
		MaxPlayers:  2,
	})

	env.mustRecord(t, models.RecordResultRequest{
		GameID: chess.ID,
		Entries: []models.ResultEntryRequest{
			{PlayerID: alice.ID, Rank: intp(1)},
			{PlayerID: bob.ID, Rank: intp(2)},
		},
	})

	standings, err := env.standings.StandingsFor(ctx, chess.ID, nil)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	assertStandings(t, standings, []models.Standing{
		{PlayerID: alice.ID, PlayerName: "Alice", Points: 2, Results: 1},
		{PlayerID: bob.ID, PlayerName: "Bob", Points: 0, Results: 1},
	})

	// A draw splits the points of positions one and two: 1 apiece.
	env.mustRecord(t, models.RecordResultRequest{
		GameID: chess.ID,
		Entries: []models.ResultEntryRequest{
			{PlayerID: alice.ID, Rank: intp(1)},
			{PlayerID: bob.ID, Rank: intp(1)},
		},
	})

	standings, err = env.standings.StandingsFor(ctx, chess.ID, nil)
	if err != nil {
		t.Fatalf("standings after draw: %v", err)
	}
	assertStandings(t, standings, []models.Standing{
		{PlayerID: alice.ID, PlayerName: "Alice", Points: 3, Results: 2},
		{PlayerID: bob.ID, PlayerName: "Bob", Points: 1, Results: 2},
	})
}

func TestStandingsPermutationInvariant(t *testing.T) {
	// The same multiset of results must produce identical standings
	// whatever order they were recorded in.
	type entry struct {
		player int
		rank   int
	}
	matches := [][]entry{
		{{0, 1}, {1, 2}},
		{{1, 1}, {2, 2}},
		{{0, 1}, {2, 1}},
		{{2, 1}, {0, 2}},
		{{1, 1}, {0, 1}},
	}

	var reference []models.Standing

	for trial := 0; trial < 4; trial++ {
		env := newTestEnv(t)
		players := []*models.Player{
			env.mustCreatePlayer(t, "Alice"),
			env.mustCreatePlayer(t, "Bob"),
			env.mustCreatePlayer(t, "Charlie"),
		}
		chess := env.mustCreateGame(t, models.CreateGameRequest{Name: "Chess", ScoringType: models.ScoringOrdinal})

		order := rand.Perm(len(matches))
		for _, mi := range order {
			m := matches[mi]
			entries := make([]models.ResultEntryRequest, 0, len(m))
			for _, e := range m {
				rank := e.rank
				entries = append(entries, models.ResultEntryRequest{PlayerID: players[e.player].ID, Rank: &rank})
			}
			recordedAt := time.Date(2026, 3, 1+mi, 12, 0, 0, 0, time.UTC)
			env.mustRecord(t, models.RecordResultRequest{
				GameID:     chess.ID,
				RecordedAt: &recordedAt,
				Entries:    entries,
			})
		}

		standings, err := env.standings.StandingsFor(context.Background(), chess.ID, nil)
		if err != nil {
			t.Fatalf("trial %d standings: %v", trial, err)
		}

		if reference == nil {
			reference = standings
			continue
		}
		if !reflect.DeepEqual(standings, reference) {
			t.Fatalf("trial %d: standings differ from reference\n got %+v\nwant %+v", trial, standings, reference)
		}
	}
}

func TestStandingsNumericAccumulation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustCreatePlayer(t, "Alice")
	bob := env.mustCreatePlayer(t, "Bob")
	charlie := env.mustCreatePlayer(t, "Charlie")
	scrabble := env.mustCreateGame(t, models.CreateGameRequest{
		Name:        "Scrabble",
		ScoringType: models.ScoringNumeric,
		MaxPlayers:  4,
	})

	early := time.Date(2026, 1, 10, 18, 0, 0, 0, time.UTC)
	late := time.Date(2026, 1, 20, 18, 0, 0, 0, time.UTC)

	env.mustRecord(t, models.RecordResultRequest{
		GameID:     scrabble.ID,
		RecordedAt: &early,
		Entries: []models.ResultEntryRequest{
			{PlayerID: alice.ID, Score: floatp(120)},
			{PlayerID: bob.ID, Score: floatp(80)},
		},
	})
	env.mustRecord(t, models.RecordResultRequest{
		GameID:     scrabble.ID,
		RecordedAt: &late,
		Entries: []models.ResultEntryRequest{
			{PlayerID: bob.ID, Score: floatp(40)},
			{PlayerID: charlie.ID, Score: floatp(120)},
		},
	})

	standings, err := env.standings.StandingsFor(ctx, scrabble.ID, nil)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}

	// Alice and Bob both total 120; Alice's first result is earlier, so she
	// ranks ahead. Charlie also totals 120 but joined latest.
	if len(standings) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(standings))
	}
	if standings[0].PlayerID != alice.ID || standings[1].PlayerID != bob.ID || standings[2].PlayerID != charlie.ID {
		t.Fatalf("unexpected order: %+v", standings)
	}
	for i, want := range []float64{120, 120, 120} {
		if standings[i].Points != want {
			t.Fatalf("row %d: expected %v points, got %v", i, want, standings[i].Points)
		}
	}
}

func TestStandingsAsOf(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustCreatePlayer(t, "Alice")
	bob := env.mustCreatePlayer(t, "Bob")
	chess := env.mustCreateGame(t, models.CreateGameRequest{Name: "Chess", ScoringType: models.ScoringOrdinal})

	day1 := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)

	env.mustRecord(t, models.RecordResultRequest{
		GameID:     chess.ID,
		RecordedAt: &day1,
		Entries: []models.ResultEntryRequest{
			{PlayerID: alice.ID, Rank: intp(1)},
			{PlayerID: bob.ID, Rank: intp(2)},
		},
	})
	env.mustRecord(t, models.RecordResultRequest{
		GameID:     chess.ID,
		RecordedAt: &day2,
		Entries: []models.ResultEntryRequest{
			{PlayerID: bob.ID, Rank: intp(1)},
			{PlayerID: alice.ID, Rank: intp(2)},
		},
	})

	cutoff := day1.Add(time.Hour)
	standings, err := env.standings.StandingsFor(ctx, chess.ID, &cutoff)
	if err != nil {
		t.Fatalf("as-of standings: %v", err)
	}
	assertStandings(t, standings, []models.Standing{
		{PlayerID: alice.ID, PlayerName: "Alice", Points: 2, Results: 1},
		{PlayerID: bob.ID, PlayerName: "Bob", Points: 0, Results: 1},
	})

	// The full fold sees both results.
	standings, err = env.standings.StandingsFor(ctx, chess.ID, nil)
	if err != nil {
		t.Fatalf("current standings: %v", err)
	}
	if standings[0].Points != 2 || standings[1].Points != 2 {
		t.Fatalf("expected an even split, got %+v", standings)
	}
}

func TestStandingsReadIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustCreatePlayer(t, "Alice")
	bob := env.mustCreatePlayer(t, "Bob")
	chess := env.mustCreateGame(t, models.CreateGameRequest{Name: "Chess", ScoringType: models.ScoringOrdinal})

	env.mustRecord(t, models.RecordResultRequest{
		GameID: chess.ID,
		Entries: []models.ResultEntryRequest{
			{PlayerID: alice.ID, Rank: intp(1)},
			{PlayerID: bob.ID, Rank: intp(2)},
		},
	})

	first, err := env.standings.StandingsFor(ctx, chess.ID, nil)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	// Second read is served from the versioned cache; third forces a
	// recompute after invalidation. All must agree.
	second, err := env.standings.StandingsFor(ctx, chess.ID, nil)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	env.standings.Invalidate(chess.ID)
	third, err := env.standings.StandingsFor(ctx, chess.ID, nil)
	if err != nil {
		t.Fatalf("third read: %v", err)
	}

	if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(first, third) {
		t.Fatalf("reads disagree:\n1: %+v\n2: %+v\n3: %+v", first, second, third)
	}
}

func TestStandingsCacheInvalidatedByCommit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustCreatePlayer(t, "Alice")
	bob := env.mustCreatePlayer(t, "Bob")
	chess := env.mustCreateGame(t, models.CreateGameRequest{Name: "Chess", ScoringType: models.ScoringOrdinal})

	env.mustRecord(t, models.RecordResultRequest{
		GameID: chess.ID,
		Entries: []models.ResultEntryRequest{
			{PlayerID: alice.ID, Rank: intp(1)},
			{PlayerID: bob.ID, Rank: intp(2)},
		},
	})

	before, err := env.standings.StandingsFor(ctx, chess.ID, nil)
	if err != nil {
		t.Fatalf("standings before: %v", err)
	}
	if before[0].Points != 2 {
		t.Fatalf("expected 2 points, got %v", before[0].Points)
	}

	// The recorder signals the engine; a cached leaderboard may not
	// survive the commit.
	env.mustRecord(t, models.RecordResultRequest{
		GameID: chess.ID,
		Entries: []models.ResultEntryRequest{
			{PlayerID: alice.ID, Rank: intp(1)},
			{PlayerID: bob.ID, Rank: intp(2)},
		},
	})

	after, err := env.standings.StandingsFor(ctx, chess.ID, nil)
	if err != nil {
		t.Fatalf("standings after: %v", err)
	}
	if after[0].Points != 4 {
		t.Fatalf("expected refreshed standings with 4 points, got %+v", after)
	}
}

func TestStandingsUnknownGame(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.standings.StandingsFor(context.Background(), 404, nil)
	if errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestStandingsIncludeDeactivatedPlayers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustCreatePlayer(t, "Alice")
	bob := env.mustCreatePlayer(t, "Bob")
	chess := env.mustCreateGame(t, models.CreateGameRequest{Name: "Chess", ScoringType: models.ScoringOrdinal})

	env.mustRecord(t, models.RecordResultRequest{
		GameID: chess.ID,
		Entries: []models.ResultEntryRequest{
			{PlayerID: alice.ID, Rank: intp(1)},
			{PlayerID: bob.ID, Rank: intp(2)},
		},
	})

	if _, err := env.players.DeactivatePlayer(ctx, bob.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	standings, err := env.standings.StandingsFor(ctx, chess.ID, nil)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("deactivated players must keep their standings row, got %+v", standings)
	}
	if standings[1].PlayerName != "Bob" {
		t.Fatalf("expected Bob's row to survive deactivation, got %+v", standings[1])
	}
}

func TestHistoryForRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustCreatePlayer(t, "Alice")
	bob := env.mustCreatePlayer(t, "Bob")
	chess := env.mustCreateGame(t, models.CreateGameRequest{Name: "Chess", ScoringType: models.ScoringOrdinal})

	const n = 5
	var recorded []*models.Result
	for i := 0; i < n; i++ {
		recordedAt := time.Date(2026, 4, 1+i, 20, 0, 0, 0, time.UTC)
		winner, loser := alice, bob
		if i%2 == 1 {
			winner, loser = bob, alice
		}
		r := env.mustRecord(t, models.RecordResultRequest{
			GameID:     chess.ID,
			RecordedAt: &recordedAt,
			Entries: []models.ResultEntryRequest{
				{PlayerID: winner.ID, Rank: intp(1)},
				{PlayerID: loser.ID, Rank: intp(2)},
			},
		})
		recorded = append(recorded, r)
	}

	history, err := env.standings.HistoryFor(ctx, alice.ID, &chess.ID, 1, 50)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if history.Total != n {
		t.Fatalf("expected %d results, got %d", n, history.Total)
	}

	// Most recent first, each reproducing its original entries.
	for i, got := range history.Data {
		want := recorded[n-1-i]
		if got.ID != want.ID {
			t.Fatalf("position %d: expected result %d, got %d", i, want.ID, got.ID)
		}
		if len(got.Entries) != len(want.Entries) {
			t.Fatalf("result %d: expected %d entries, got %d", got.ID, len(want.Entries), len(got.Entries))
		}
		for j := range got.Entries {
			if got.Entries[j].PlayerID != want.Entries[j].PlayerID {
				t.Fatalf("result %d entry %d: player mismatch", got.ID, j)
			}
			if *got.Entries[j].Rank != *want.Entries[j].Rank {
				t.Fatalf("result %d entry %d: rank mismatch", got.ID, j)
			}
		}
	}
}

func TestHistoryForPaginationAndScope(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustCreatePlayer(t, "Alice")
	bob := env.mustCreatePlayer(t, "Bob")
	chess := env.mustCreateGame(t, models.CreateGameRequest{Name: "Chess", ScoringType: models.ScoringOrdinal})
	scrabble := env.mustCreateGame(t, models.CreateGameRequest{Name: "Scrabble", ScoringType: models.ScoringNumeric})

	for i := 0; i < 3; i++ {
		recordedAt := time.Date(2026, 6, 1+i, 12, 0, 0, 0, time.UTC)
		env.mustRecord(t, models.RecordResultRequest{
			GameID:     chess.ID,
			RecordedAt: &recordedAt,
			Entries: []models.ResultEntryRequest{
				{PlayerID: alice.ID, Rank: intp(1)},
				{PlayerID: bob.ID, Rank: intp(2)},
			},
		})
	}
	env.mustRecord(t, models.RecordResultRequest{
		GameID: scrabble.ID,
		Entries: []models.ResultEntryRequest{
			{PlayerID: alice.ID, Score: floatp(200)},
			{PlayerID: bob.ID, Score: floatp(150)},
		},
	})

	// Unscoped history covers both games.
	all, err := env.standings.HistoryFor(ctx, alice.ID, nil, 1, 50)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if all.Total != 4 {
		t.Fatalf("expected 4 results, got %d", all.Total)
	}

	// Scoped to chess, paginated two at a time.
	page, err := env.standings.HistoryFor(ctx, alice.ID, &chess.ID, 2, 2)
	if err != nil {
		t.Fatalf("history page 2: %v", err)
	}
	if page.Total != 3 || page.TotalPages != 2 || len(page.Data) != 1 {
		t.Fatalf("unexpected page: total=%d pages=%d len=%d", page.Total, page.TotalPages, len(page.Data))
	}

	// Unknown ids are not-found, not empty pages.
	if _, err := env.standings.HistoryFor(ctx, 999, nil, 1, 10); errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("expected not-found for unknown player, got %v", err)
	}
	unknownGame := uint(888)
	if _, err := env.standings.HistoryFor(ctx, alice.ID, &unknownGame, 1, 10); errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("expected not-found for unknown game, got %v", err)
	}
}

func assertStandings(t *testing.T, got, want []models.Standing) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("standings mismatch:\n got %+v\nwant %+v", got, want)
	}
}
