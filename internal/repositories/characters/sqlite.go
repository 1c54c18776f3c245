package characters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/sparta-village/internal/domain/character"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS saves (
	slot       TEXT PRIMARY KEY,
	record     TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteRepoConfig holds configuration for the SQLite repository
type SQLiteRepoConfig struct {
	// Path is the database file, or ":memory:"
	Path  string
	Clock TimeProvider
}

// SQLiteRepository keeps save records in a single SQLite table
type SQLiteRepository struct {
	db    *sql.DB
	clock TimeProvider
}

// OpenSQLite opens the database and creates the saves table if needed
func OpenSQLite(cfg *SQLiteRepoConfig) (*SQLiteRepository, error) {
	if cfg == nil || strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := cfg.Path
	if dsn != ":memory:" {
		dsn = filepath.Clean(dsn) + "?_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// one connection keeps ":memory:" a single database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create saves table: %w", err)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = realTime{}
	}

	return &SQLiteRepository{db: db, clock: clock}, nil
}

// Close closes the SQLite handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Load reads and decodes the slot's record
func (r *SQLiteRepository) Load(ctx context.Context, slot string) (*character.Character, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	var record string
	err := r.db.QueryRowContext(ctx, `SELECT record FROM saves WHERE slot = ?`, slot).Scan(&record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("save slot '%s' not found", slot).
				WithMeta("slot", slot)
		}
		return nil, fmt.Errorf("failed to query save: %w", err)
	}

	return Decode([]byte(record))
}

// Save upserts the slot's record
func (r *SQLiteRepository) Save(ctx context.Context, slot string, char *character.Character) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	data, err := Encode(char)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO saves (slot, record, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at`,
		slot, string(data), r.clock.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}

	return nil
}

// Delete removes the slot's row
func (r *SQLiteRepository) Delete(ctx context.Context, slot string) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	return nil
}

// List summarizes every row ordered by slot
func (r *SQLiteRepository) List(ctx context.Context) ([]*SaveSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT slot, record, updated_at FROM saves ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	defer rows.Close()

	summaries := []*SaveSummary{}
	for rows.Next() {
		var (
			slot      string
			record    string
			updatedAt int64
		)
		if err := rows.Scan(&slot, &record, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan save: %w", err)
		}

		char, decodeErr := Decode([]byte(record))
		summary := summarize(slot, char, decodeErr)
		summary.UpdatedAt = time.UnixMilli(updatedAt).UTC()
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saves: %w", err)
	}

	return summaries, nil
}
