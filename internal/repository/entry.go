package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/careerOS/pkg/model"
	"github.com/jackc/pgx/v5"
)

// DefaultListLimit is both the default and the maximum page size of ListLatest.
const DefaultListLimit = 50

var ErrEntryNotFound = errors.New("entry not found")

// EntryRepository is the concrete implementation for entries.
type EntryRepository struct {
	db DBTX
}

func NewEntryRepository(db DBTX) *EntryRepository {
	return &EntryRepository{db: db}
}

// Create inserts an entry and returns the stored row with its id and created_at
func (r *EntryRepository) Create(ctx context.Context, title, markdown string) (model.Entry, error) {
	const q = `
INSERT INTO entries (title, markdown)
VALUES ($1, $2)
RETURNING id, COALESCE(title, ''), markdown, created_at
`
	var e model.Entry
	row := r.db.QueryRow(ctx, q, title, markdown)
	if err := row.Scan(&e.ID, &e.Title, &e.Markdown, &e.CreatedAt); err != nil {
		return model.Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	return e, nil
}

// GetByID fetches an entry by id
func (r *EntryRepository) GetByID(ctx context.Context, id int64) (model.Entry, error) {
	const q = `
SELECT id, COALESCE(title, ''), markdown, created_at
FROM entries
WHERE id = $1
`
	var e model.Entry
	row := r.db.QueryRow(ctx, q, id)
	if err := row.Scan(&e.ID, &e.Title, &e.Markdown, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Entry{}, fmt.Errorf("%w: %d", ErrEntryNotFound, id)
		}
		return model.Entry{}, fmt.Errorf("scan entry: %w", err)
	}
	return e, nil
}

// ListLatest returns up to limit entries, newest first
func (r *EntryRepository) ListLatest(ctx context.Context, limit int) ([]model.Entry, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	const q = `
SELECT id, COALESCE(title, ''), markdown, created_at
FROM entries
ORDER BY created_at DESC, id DESC
LIMIT $1
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	out := make([]model.Entry, 0, limit)
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.ID, &e.Title, &e.Markdown, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}
