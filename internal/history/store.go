// Package history keeps the most recent evaluated expressions in a SQLite
// database owned by the caller.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/funvibe/radixquest/internal/config"
)

// Entry is one recorded evaluation.
type Entry struct {
	ID         uuid.UUID
	Expression string
	// Display is the primary text shown for the result.
	Display   string
	Mode      string
	CreatedAt time.Time
}

// Store is a bounded, newest-first history. It is safe for concurrent use
// to the extent *sql.DB is.
type Store struct {
	db    *sql.DB
	limit int

	insertStmt, trimStmt, listStmt *sql.Stmt
}

const schema = `CREATE TABLE IF NOT EXISTS history (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	expression TEXT NOT NULL,
	display    TEXT NOT NULL,
	mode       TEXT NOT NULL,
	created_at INTEGER NOT NULL
)`

// Open opens or creates the history database at path, keeping at most limit
// entries. A limit <= 0 uses the default of 30.
func Open(ctx context.Context, path string, limit int) (*Store, error) {
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history %s: %w", path, err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, limit: limit}
	if err := s.init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating history table: %w", err)
	}
	var err error
	if s.insertStmt, err = s.db.PrepareContext(ctx,
		"INSERT INTO history (id, expression, display, mode, created_at) VALUES (?, ?, ?, ?, ?)"); err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	if s.trimStmt, err = s.db.PrepareContext(ctx,
		"DELETE FROM history WHERE seq NOT IN (SELECT seq FROM history ORDER BY seq DESC LIMIT ?)"); err != nil {
		return fmt.Errorf("preparing trim: %w", err)
	}
	if s.listStmt, err = s.db.PrepareContext(ctx,
		"SELECT id, expression, display, mode, created_at FROM history ORDER BY seq DESC LIMIT ?"); err != nil {
		return fmt.Errorf("preparing list: %w", err)
	}
	return nil
}

// Limit returns the maximum number of entries kept.
func (s *Store) Limit() int { return s.limit }

// Push records e as the newest entry and drops the oldest ones beyond the
// limit. A zero ID or CreatedAt is filled in.
func (s *Store) Push(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Entry{}, err
	}
	defer tx.Rollback()

	if _, err := tx.StmtContext(ctx, s.insertStmt).ExecContext(ctx,
		e.ID.String(), e.Expression, e.Display, e.Mode, e.CreatedAt.UnixMilli()); err != nil {
		return Entry{}, fmt.Errorf("inserting history entry: %w", err)
	}
	if _, err := tx.StmtContext(ctx, s.trimStmt).ExecContext(ctx, s.limit); err != nil {
		return Entry{}, fmt.Errorf("trimming history: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// List returns up to n entries, newest first. n <= 0 returns all of them.
func (s *Store) List(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 || n > s.limit {
		n = s.limit
	}
	rows, err := s.listStmt.QueryContext(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e      Entry
			id     string
			millis int64
		)
		if err := rows.Scan(&id, &e.Expression, &e.Display, &e.Mode, &millis); err != nil {
			return nil, fmt.Errorf("reading history row: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("history row has bad id %q: %w", id, err)
		}
		e.CreatedAt = time.UnixMilli(millis)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM history"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	for _, stmt := range []*sql.Stmt{s.insertStmt, s.trimStmt, s.listStmt} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}
