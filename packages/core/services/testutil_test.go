package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"core/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// openTestDB gives each test its own in-memory database. The DSN carries a
// unique name because plain ":memory:" hands every pooled connection a
// different database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// One connection keeps sqlite from throwing table-locked errors when
	// tests exercise concurrent reads and writes.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Player{}, &models.Game{}, &models.Result{}, &models.ResultEntry{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

type testEnv struct {
	db        *gorm.DB
	players   *PlayerService
	games     *GameService
	standings *StandingsService
	results   *ResultService
	query     *QueryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := openTestDB(t)
	players := NewPlayerService(db)
	games := NewGameService(db)
	standings := NewStandingsService(db)
	results := NewResultService(db, standings)
	query := NewQueryService(db, players, games, standings, results)

	return &testEnv{
		db:        db,
		players:   players,
		games:     games,
		standings: standings,
		results:   results,
		query:     query,
	}
}

func (e *testEnv) mustCreatePlayer(t *testing.T, name string) *models.Player {
	t.Helper()
	p, err := e.players.CreatePlayer(context.Background(), name)
	if err != nil {
		t.Fatalf("create player %s: %v", name, err)
	}
	return p
}

func (e *testEnv) mustCreateGame(t *testing.T, req models.CreateGameRequest) *models.Game {
	t.Helper()
	g, err := e.games.CreateGame(context.Background(), req)
	if err != nil {
		t.Fatalf("create game %s: %v", req.Name, err)
	}
	return g
}

func (e *testEnv) mustRecord(t *testing.T, req models.RecordResultRequest) *models.Result {
	t.Helper()
	r, err := e.results.RecordResult(context.Background(), req)
	if err != nil {
		t.Fatalf("record result: %v", err)
	}
	return r
}

func (e *testEnv) countResults(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&models.Result{}).Count(&n).Error; err != nil {
		t.Fatalf("count results: %v", err)
	}
	return n
}

func (e *testEnv) countEntries(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&models.ResultEntry{}).Count(&n).Error; err != nil {
		t.Fatalf("count entries: %v", err)
	}
	return n
}

func intp(v int) *int             { return &v }
func floatp(v float64) *float64   { return &v }
func uintp(v uint) *uint          { return &v }
