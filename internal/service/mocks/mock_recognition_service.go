package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"ocrapi/internal/model"
	"ocrapi/internal/service"
)

type MockRecognitionService struct {
	mock.Mock
}

func (m *MockRecognitionService) Recognize(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*model.Recognition, error) {
	args := m.Called(ctx, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recognition), args.Error(1)
}

func (m *MockRecognitionService) List(ctx context.Context, limit, offset int) (*service.RecognitionListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecognitionListResult), args.Error(1)
}

func (m *MockRecognitionService) Get(ctx context.Context, id string) (*model.Recognition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recognition), args.Error(1)
}

func (m *MockRecognitionService) ImageURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockRecognitionService) HistoryEnabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockRecognitionService) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
