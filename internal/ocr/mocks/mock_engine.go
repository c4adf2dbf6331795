package mocks

import (
	"context"
	"image"

	"github.com/stretchr/testify/mock"
)

type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockEngine) Recognize(ctx context.Context, img image.Image) (string, error) {
	args := m.Called(ctx, img)
	return args.String(0), args.Error(1)
}

func (m *MockEngine) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
