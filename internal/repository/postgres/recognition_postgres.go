package postgres

import (
	"context"
	"database/sql"

	"ocrapi/internal/model"
	"ocrapi/internal/repository"
)

// RecognitionPostgres is a PostgreSQL implementation of repository.RecognitionRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type RecognitionPostgres struct {
	db *sql.DB
}

// NewRecognitionPostgres creates a new RecognitionPostgres repository.
func NewRecognitionPostgres(db *sql.DB) *RecognitionPostgres {
	return &RecognitionPostgres{db: db}
}

var _ repository.RecognitionRepository = (*RecognitionPostgres)(nil)

const recognitionColumns = `id, filename, content_type, size, text, engine, storage_path, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecognition(s scanner) (*model.Recognition, error) {
	var r model.Recognition
	if err := s.Scan(
		&r.ID,
		&r.Filename,
		&r.ContentType,
		&r.Size,
		&r.Text,
		&r.Engine,
		&r.StoragePath,
		&r.DurationMS,
		&r.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a new recognition row and returns the stored record.
func (r *RecognitionPostgres) Create(ctx context.Context, rec *model.Recognition) (*model.Recognition, error) {
	const q = `
		INSERT INTO recognitions (` + recognitionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + recognitionColumns
	row := r.db.QueryRowContext(ctx, q,
		rec.ID,
		rec.Filename,
		rec.ContentType,
		rec.Size,
		rec.Text,
		rec.Engine,
		rec.StoragePath,
		rec.DurationMS,
		rec.CreatedAt,
	)
	return scanRecognition(row)
}

// FindByID fetches a single recognition by its ID.
func (r *RecognitionPostgres) FindByID(ctx context.Context, id string) (*model.Recognition, error) {
	const q = `
		SELECT ` + recognitionColumns + `
		FROM recognitions
		WHERE id = $1
	`
	return scanRecognition(r.db.QueryRowContext(ctx, q, id))
}

// List returns recognitions using LIMIT/OFFSET pagination and a total count.
func (r *RecognitionPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Recognition], error) {
	const qCount = `SELECT COUNT(*) FROM recognitions`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + recognitionColumns + `
		FROM recognitions
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Recognition, 0)
	for rows.Next() {
		rec, err := scanRecognition(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Recognition]{
		Items: items,
		Total: total,
	}, nil
}
