// Package repository contains data access abstractions for recognition
// history. Implementations live in subpackages (e.g. postgres).
package repository

import (
	"context"

	"ocrapi/internal/model"
)

// RecognitionRepository persists recognition records using SQL queries only.
type RecognitionRepository interface {
	// Create inserts a new record and returns it as stored.
	Create(ctx context.Context, rec *model.Recognition) (*model.Recognition, error)

	// FindByID returns a record by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Recognition, error)

	// List returns a page of records, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Recognition], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
