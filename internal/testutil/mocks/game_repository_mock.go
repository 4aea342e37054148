package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ledren/scoutbook/internal/models"
)

// MockGameRepository is a mock implementation of repository.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) ListGames(ctx context.Context, q models.GameQuery) ([]models.GameRow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GameRow), args.Error(1)
}

func (m *MockGameRepository) CountGames(ctx context.Context, q models.GameQuery) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}
