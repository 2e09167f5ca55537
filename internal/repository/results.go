// Package repository persists batch results to Postgres. Persistence
// is optional: the simulator is fully functional without a database.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/duskfold/goldfish/internal/sim"
)

const schema = `
CREATE TABLE IF NOT EXISTS batches (
    id               UUID PRIMARY KEY,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    deck             TEXT NOT NULL,
    seed             BIGINT NOT NULL,
    runs             INTEGER NOT NULL,
    wins             INTEGER NOT NULL,
    avg_win_turn     DOUBLE PRECISION NOT NULL,
    win_turns        JSONB NOT NULL,
    triple_color_turns JSONB NOT NULL
)`

// Store writes batch summaries to a Postgres pool.
type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// New connects to url and ensures the schema exists.
func New(ctx context.Context, url string, logger *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	logger.Info("result store connected")
	return &Store{pool: pool, log: logger}, nil
}

// Close releases the connection pool.
func (s *Store) Close() { s.pool.Close() }

// SaveBatch inserts one batch-summary row.
func (s *Store) SaveBatch(ctx context.Context, deckName string, seed uint32, stats *sim.Stats) error {
	winTurns, err := json.Marshal(stats.WinTurns)
	if err != nil {
		return fmt.Errorf("encoding win turns: %w", err)
	}
	colorTurns, err := json.Marshal(stats.TripleColorTurns)
	if err != nil {
		return fmt.Errorf("encoding color turns: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO batches (id, deck, seed, runs, wins, avg_win_turn, win_turns, triple_color_turns)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		stats.BatchID.String(), deckName, int64(seed), stats.Runs, stats.Wins,
		stats.AvgWinTurn(), winTurns, colorTurns,
	)
	if err != nil {
		return fmt.Errorf("inserting batch %s: %w", stats.BatchID, err)
	}

	s.log.Info("batch persisted",
		zap.String("batch_id", stats.BatchID.String()),
		zap.String("deck", deckName),
	)
	return nil
}
