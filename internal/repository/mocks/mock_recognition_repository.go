package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ocrapi/internal/model"
	"ocrapi/internal/repository"
)

type MockRecognitionRepository struct {
	mock.Mock
}

func (m *MockRecognitionRepository) Create(ctx context.Context, rec *model.Recognition) (*model.Recognition, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recognition), args.Error(1)
}

func (m *MockRecognitionRepository) FindByID(ctx context.Context, id string) (*model.Recognition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recognition), args.Error(1)
}

func (m *MockRecognitionRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Recognition], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Recognition]), args.Error(1)
}
