package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"svw.info/gridsolver/internal/domain"
)

// SQLite stores puzzles in a single-file database. The grid is kept as
// a JSON column so the schema is independent of board size.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and applies the
// schema. Use ":memory:" for an ephemeral store.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		size INTEGER NOT NULL,
		grid TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_puzzles_created ON puzzles(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	if p.Grid == nil {
		return errors.New("invalid puzzle: missing grid")
	}
	grid, err := json.Marshal(p.Grid)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO puzzles (id, name, notes, size, grid, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name, notes = excluded.notes,
		   size = excluded.size, grid = excluded.grid`,
		p.ID, p.Name, p.Notes, p.Grid.Size(), string(grid), p.CreatedAt,
	)
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, notes, grid, created_at FROM puzzles WHERE id = ?`, id)
	var p domain.Puzzle
	var grid string
	if err := row.Scan(&p.ID, &p.Name, &p.Notes, &grid, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Grid = &domain.Grid{}
	if err := json.Unmarshal([]byte(grid), p.Grid); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, size, created_at FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.Size, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
