package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// artifactRepo implements ArtifactRepo over the artifacts table.
type artifactRepo struct {
	db *sql.DB
}

func (r *artifactRepo) Save(ctx context.Context, a *Artifact) error {
	if a.ID == "" {
		return fmt.Errorf("artifact ID is required")
	}
	params := a.Params
	if len(params) == 0 {
		params = []byte("{}")
	}

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO artifacts (id, kind, params, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Kind, string(params), string(a.Payload), createdAt,
	)
	if err != nil {
		return fmt.Errorf("save artifact: %w", err)
	}
	return nil
}

func (r *artifactRepo) Get(ctx context.Context, id string) (*Artifact, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, kind, params, payload, created_at FROM artifacts WHERE id = ?`, id)

	a, err := scanArtifact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get artifact %s: %w", id, err)
	}
	return a, nil
}

func (r *artifactRepo) ListRecent(ctx context.Context, kind string, limit int) ([]Artifact, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, kind, params, payload, created_at FROM artifacts`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	var out []Artifact
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artifact: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtifact(row rowScanner) (*Artifact, error) {
	var a Artifact
	var params, payload string
	if err := row.Scan(&a.ID, &a.Kind, &params, &payload, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.Params = []byte(params)
	a.Payload = []byte(payload)
	return &a, nil
}
