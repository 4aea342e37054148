package model_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ledren/scoutbook/internal/model"
	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/testutil/mocks"
)

func TestCache_MissThenHit(t *testing.T) {
	repo := new(mocks.MockGameRepository)
	repo.On("ListGames", mock.Anything, mock.Anything).Return([]models.GameRow{
		gameRow(1, asWhite("1-0", "1. e4 e5")),
	}, nil).Once()

	cache := model.NewCache(model.NewBuilder(repo, 500, 0), time.Minute)
	params := model.BuildParams{Identity: identity()}

	m1, info, err := cache.Get(context.Background(), params)
	require.NoError(t, err)
	assert.False(t, info.Hit)
	assert.Equal(t, 1, info.GamesUsed)

	m2, info, err := cache.Get(context.Background(), params)
	require.NoError(t, err)
	assert.True(t, info.Hit)
	assert.Same(t, m1, m2, "a hit serves the stored model, not a rebuild")
	assert.GreaterOrEqual(t, info.Age, time.Duration(0))

	// One store read total: the second Get never touched the repository.
	repo.AssertExpectations(t)
}

func TestCache_DistinctParamsDistinctEntries(t *testing.T) {
	repo := new(mocks.MockGameRepository)
	repo.On("ListGames", mock.Anything, mock.Anything).Return([]models.GameRow{
		gameRow(1, asWhite("1-0", "1. e4 e5")),
	}, nil).Times(2)

	cache := model.NewCache(model.NewBuilder(repo, 500, 0), time.Minute)

	_, info, err := cache.Get(context.Background(), model.BuildParams{Identity: identity()})
	require.NoError(t, err)
	assert.False(t, info.Hit)

	_, info, err = cache.Get(context.Background(), model.BuildParams{
		Identity: identity(),
		Speeds:   []string{models.SpeedBlitz},
	})
	require.NoError(t, err)
	assert.False(t, info.Hit, "different filters are a different cache key")

	repo.AssertExpectations(t)
}

func TestCache_SpeedOrderDoesNotSplitKeys(t *testing.T) {
	repo := new(mocks.MockGameRepository)
	repo.On("ListGames", mock.Anything, mock.Anything).Return([]models.GameRow{
		gameRow(1, asWhite("1-0", "1. e4 e5")),
	}, nil).Once()

	cache := model.NewCache(model.NewBuilder(repo, 500, 0), time.Minute)

	_, _, err := cache.Get(context.Background(), model.BuildParams{
		Identity: identity(),
		Speeds:   []string{models.SpeedRapid, models.SpeedBlitz},
	})
	require.NoError(t, err)

	_, info, err := cache.Get(context.Background(), model.BuildParams{
		Identity: identity(),
		Speeds:   []string{models.SpeedBlitz, models.SpeedRapid},
	})
	require.NoError(t, err)
	assert.True(t, info.Hit, "the speed list is sorted into the key")
}

func TestCache_ExpiredEntryRebuilds(t *testing.T) {
	repo := new(mocks.MockGameRepository)
	repo.On("ListGames", mock.Anything, mock.Anything).Return([]models.GameRow{
		gameRow(1, asWhite("1-0", "1. e4 e5")),
	}, nil).Times(2)

	cache := model.NewCache(model.NewBuilder(repo, 500, 0), 10*time.Millisecond)
	params := model.BuildParams{Identity: identity()}

	_, _, err := cache.Get(context.Background(), params)
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)

	_, info, err := cache.Get(context.Background(), params)
	require.NoError(t, err)
	assert.False(t, info.Hit, "entries past the TTL rebuild")
	repo.AssertExpectations(t)
}

func TestCache_Invalidate(t *testing.T) {
	repo := new(mocks.MockGameRepository)
	repo.On("ListGames", mock.Anything, mock.Anything).Return([]models.GameRow{
		gameRow(1, asWhite("1-0", "1. e4 e5")),
	}, nil).Times(2)

	cache := model.NewCache(model.NewBuilder(repo, 500, 0), time.Minute)
	params := model.BuildParams{Identity: identity()}

	_, _, err := cache.Get(context.Background(), params)
	require.NoError(t, err)

	cache.Invalidate(params)

	_, info, err := cache.Get(context.Background(), params)
	require.NoError(t, err)
	assert.False(t, info.Hit)
	repo.AssertExpectations(t)
}

func TestCache_ConcurrentMissesShareOneBuild(t *testing.T) {
	repo := new(mocks.MockGameRepository)
	started := make(chan struct{})
	release := make(chan struct{})
	repo.On("ListGames", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]models.GameRow{gameRow(1, asWhite("1-0", "1. e4 e5"))}, nil).
		Once()

	cache := model.NewCache(model.NewBuilder(repo, 500, 0), time.Minute)
	params := model.BuildParams{Identity: identity()}

	var wg sync.WaitGroup
	results := make([]*models.OpponentModel, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, _, err := cache.Get(context.Background(), params)
			assert.NoError(t, err)
			results[i] = m
		}(i)
	}

	<-started
	close(release)
	wg.Wait()

	assert.Same(t, results[0], results[1], "both misses share the one build")
	repo.AssertExpectations(t)
}
