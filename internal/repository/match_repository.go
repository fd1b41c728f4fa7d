package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Match is one finished match as recorded from the event stream.
type Match struct {
	ID            uuid.UUID
	PlayerName    string
	OpponentName  string
	PlayerClass   string
	OpponentClass string
	Outcome       string
	Turns         int
	EndedAt       time.Time
}

// MatchRepository stores finished matches.
type MatchRepository struct {
	db *DB
}

// NewMatchRepository creates a match repository backed by db.
func NewMatchRepository(db *DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// EnsureSchema creates the matches table when it does not exist yet.
func (r *MatchRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS matches (
			id             UUID PRIMARY KEY,
			player_name    TEXT NOT NULL,
			opponent_name  TEXT NOT NULL,
			player_class   TEXT NOT NULL,
			opponent_class TEXT NOT NULL,
			outcome        TEXT NOT NULL,
			turns          INT NOT NULL,
			ended_at       TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("creating matches table: %w", err)
	}
	return nil
}

// Save inserts one finished match. Saving the same match id twice
// updates the existing row; a conceded game may report its outcome
// after the first GAME_END.
func (r *MatchRepository) Save(ctx context.Context, m Match) error {
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO matches (id, player_name, opponent_name, player_class, opponent_class, outcome, turns, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			outcome = EXCLUDED.outcome,
			turns = EXCLUDED.turns,
			ended_at = EXCLUDED.ended_at`,
		m.ID, m.PlayerName, m.OpponentName, m.PlayerClass, m.OpponentClass,
		m.Outcome, m.Turns, m.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("saving match %s: %w", m.ID, err)
	}
	return nil
}

// Recent returns the most recently finished matches, newest first.
func (r *MatchRepository) Recent(ctx context.Context, limit int) ([]Match, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, player_name, opponent_name, player_class, opponent_class, outcome, turns, ended_at
		FROM matches
		ORDER BY ended_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.PlayerName, &m.OpponentName, &m.PlayerClass,
			&m.OpponentClass, &m.Outcome, &m.Turns, &m.EndedAt); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
