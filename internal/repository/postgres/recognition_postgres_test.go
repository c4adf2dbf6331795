package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocrapi/internal/model"
	"ocrapi/internal/repository"
)

var columns = []string{"id", "filename", "content_type", "size", "text", "engine", "storage_path", "duration_ms", "created_at"}

func TestRecognitionPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRecognitionPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rec := &model.Recognition{
		ID:          "test-uuid",
		Filename:    "receipt.png",
		ContentType: "image/png",
		Size:        2048,
		Text:        "TOTAL 12.50",
		Engine:      "tesseract",
		StoragePath: "uploads/test-uuid.png",
		DurationMS:  420,
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows(columns).
		AddRow(rec.ID, rec.Filename, rec.ContentType, rec.Size, rec.Text, rec.Engine, rec.StoragePath, rec.DurationMS, rec.CreatedAt)

	mock.ExpectQuery("INSERT INTO recognitions").
		WithArgs(rec.ID, rec.Filename, rec.ContentType, rec.Size, rec.Text, rec.Engine, rec.StoragePath, rec.DurationMS, rec.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, rec)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, rec.ID, result.ID)
	assert.Equal(t, "TOTAL 12.50", result.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecognitionPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRecognitionPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow("test-id", "a.jpg", "image/jpeg", 100, "hello", "tesseract", "", 12, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM recognitions WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		rec, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "test-id", rec.ID)
		assert.Equal(t, "hello", rec.Text)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM recognitions WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		rec, err := repo.FindByID(ctx, "missing")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, rec)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecognitionPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRecognitionPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM recognitions").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows(columns).
			AddRow("id-2", "b.png", "image/png", 10, "two", "tesseract", "", 5, time.Now()).
			AddRow("id-1", "a.png", "image/png", 10, "one", "tesseract", "", 5, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM recognitions ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "id-2", res.Items[0].ID)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM recognitions").
			WillReturnError(errors.New("db down"))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10})

		assert.EqualError(t, err, "db down")
		assert.Nil(t, res)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
