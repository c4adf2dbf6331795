package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ocrapi/internal/imaging"
	"ocrapi/internal/logging"
	"ocrapi/internal/model"
	"ocrapi/internal/ocr"
	"ocrapi/internal/repository"
	"ocrapi/internal/storage"
)

var (
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrReaderNil       = errors.New("reader is nil")
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("recognition not found")
	ErrHistoryDisabled = errors.New("recognition history is not configured")
	ErrNotArchived     = errors.New("upload was not archived")
)

// allowedContentTypes are the declared MIME types accepted for upload.
var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/jpg":  {},
}

// IsSupportedContentType reports whether ct is an accepted upload type.
func IsSupportedContentType(ct string) bool {
	_, ok := allowedContentTypes[ct]
	return ok
}

const presignExpiry = 15 * time.Minute

var tracer = otel.Tracer("ocrapi/internal/service")

// RecognitionListResult is the service-level DTO for paginated history.
type RecognitionListResult struct {
	Items []model.Recognition `json:"data"`
	Total int                 `json:"total"`
}

// RecognitionService defines the OCR use cases.
type RecognitionService interface {
	// Recognize validates the declared content type, decodes the upload,
	// converts it to grayscale and returns the trimmed engine output.
	// When configured, the upload is archived and the result recorded;
	// failures there are logged and do not fail the call.
	Recognize(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*model.Recognition, error)

	// List returns recorded recognitions using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*RecognitionListResult, error)

	// Get returns a single recorded recognition by its ID.
	Get(ctx context.Context, id string) (*model.Recognition, error)

	// ImageURL returns a time-limited download URL for an archived upload.
	ImageURL(ctx context.Context, id string) (string, error)

	// HistoryEnabled reports whether recognitions are persisted.
	HistoryEnabled() bool

	// Check reports whether the OCR engine is usable.
	Check(ctx context.Context) error
}

// Option configures the recognition service.
type Option func(*recognitionService)

// WithArchive stores every upload in the given object storage.
func WithArchive(store storage.Storage) Option {
	return func(s *recognitionService) { s.store = store }
}

// WithHistory records every successful recognition in repo.
func WithHistory(repo repository.RecognitionRepository) Option {
	return func(s *recognitionService) { s.repo = repo }
}

// WithMaxPixels caps the decoded size of an upload; n <= 0 disables the cap.
func WithMaxPixels(n int64) Option {
	return func(s *recognitionService) { s.maxPixels = n }
}

// WithLogger overrides the logger used for archive/history failures.
func WithLogger(l *logging.Logger) Option {
	return func(s *recognitionService) { s.log = l }
}

type recognitionService struct {
	engine ocr.Engine
	store  storage.Storage
	repo   repository.RecognitionRepository
	log    *logging.Logger
	now    func() time.Time

	maxPixels int64
}

// NewRecognitionService constructs a RecognitionService around engine.
func NewRecognitionService(engine ocr.Engine, opts ...Option) RecognitionService {
	s := &recognitionService{engine: engine, log: logging.Default(), now: time.Now, maxPixels: imaging.DefaultMaxPixels}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *recognitionService) Recognize(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*model.Recognition, error) {
	if !IsSupportedContentType(contentType) {
		return nil, ErrUnsupportedType
	}
	if r == nil {
		return nil, ErrReaderNil
	}

	ctx, span := tracer.Start(ctx, "RecognitionService.Recognize")
	defer span.End()
	span.SetAttributes(
		attribute.String("ocr.filename", filename),
		attribute.String("ocr.content_type", contentType),
		attribute.String("ocr.engine", s.engine.Name()),
	)

	var buf bytes.Buffer
	if size > 0 {
		buf.Grow(int(size))
	}
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, failSpan(span, fmt.Errorf("read upload: %w", err))
	}
	data := buf.Bytes()

	img, _, err := imaging.Decode(data, s.maxPixels)
	if err != nil {
		return nil, failSpan(span, fmt.Errorf("decode image: %w", err))
	}
	gray := imaging.Grayscale(img)

	start := s.now()
	raw, err := s.engine.Recognize(ctx, gray)
	if err != nil {
		return nil, failSpan(span, fmt.Errorf("recognize text: %w", err))
	}
	elapsed := s.now().Sub(start)

	rec := &model.Recognition{
		ID:          uuid.NewString(),
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Text:        strings.TrimSpace(raw),
		Engine:      s.engine.Name(),
		DurationMS:  elapsed.Milliseconds(),
		CreatedAt:   s.now().UTC(),
	}
	span.SetAttributes(attribute.Int("ocr.text_length", len(rec.Text)))

	s.archive(ctx, rec, data)
	return s.record(ctx, rec), nil
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// archive copies the original upload to object storage under uploads/<id><ext>.
func (s *recognitionService) archive(ctx context.Context, rec *model.Recognition, data []byte) {
	if s.store == nil {
		return
	}
	key := path.Join("uploads", rec.ID+strings.ToLower(filepath.Ext(rec.Filename)))
	info, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: rec.ContentType,
		Metadata: map[string]string{
			"original-filename": rec.Filename,
		},
	})
	if err != nil {
		s.log.Error("archive_failed", err, logging.Fields{"component": "service", "recognition_id": rec.ID, "key": key})
		return
	}
	rec.StoragePath = info.Key
}

// record persists rec and returns the stored copy, or rec itself when
// history is disabled or the insert failed.
func (s *recognitionService) record(ctx context.Context, rec *model.Recognition) *model.Recognition {
	if s.repo == nil {
		return rec
	}
	stored, err := s.repo.Create(ctx, rec)
	if err == nil {
		return stored
	}

	fields := logging.Fields{"component": "service", "recognition_id": rec.ID}
	if rec.StoragePath != "" {
		// an archived object without a history row is unreachable
		if delErr := s.store.Delete(ctx, rec.StoragePath); delErr != nil {
			s.log.Error("archive_rollback_failed", delErr, fields)
		} else {
			rec.StoragePath = ""
		}
	}
	s.log.Error("history_save_failed", err, fields)
	return rec
}

// List returns paginated recognitions without exposing repository types.
func (s *recognitionService) List(ctx context.Context, limit, offset int) (*RecognitionListResult, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &RecognitionListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a recognition by ID.
func (s *recognitionService) Get(ctx context.Context, id string) (*model.Recognition, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// ImageURL presigns a download of the archived upload for id.
func (s *recognitionService) ImageURL(ctx context.Context, id string) (string, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if s.store == nil || rec.StoragePath == "" {
		return "", ErrNotArchived
	}
	u, err := s.store.PresignGet(ctx, rec.StoragePath, presignExpiry)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return u, nil
}

func (s *recognitionService) HistoryEnabled() bool { return s.repo != nil }

func (s *recognitionService) Check(ctx context.Context) error { return s.engine.Check(ctx) }
