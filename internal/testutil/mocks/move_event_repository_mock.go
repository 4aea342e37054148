package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ledren/scoutbook/internal/models"
)

// MockMoveEventRepository is a mock implementation of repository.MoveEventRepository
type MockMoveEventRepository struct {
	mock.Mock
}

func (m *MockMoveEventRepository) ListEvents(ctx context.Context, q models.GameQuery) ([]models.MoveEvent, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MoveEvent), args.Error(1)
}
