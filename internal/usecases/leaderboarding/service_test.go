package leaderboarding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-leaderboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetLeaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metricsRepo := mocks.NewMockMetricsRepository(ctrl)

	now := time.Now()
	metricsRepo.EXPECT().GetLeaderboard().Return(&domain.LeaderboardResponse{
		Ranking: []domain.LeaderboardEntry{
			{Position: 1, Slug: "app-a-x1y2z3", Name: "App A", TotalRevenue: 1500.558, MRR: 120.004, LastUpdated: now},
			{Position: 2, Slug: "app-b-a9b8c7", Name: "App B", TotalRevenue: 200.0, MRR: 20.0, LastUpdated: now},
		},
		LastUpdate: now,
	}, nil)

	service := NewService(metricsRepo, mocks.NewMockStartupRepository(ctrl))

	response, err := service.GetLeaderboard()
	require.NoError(t, err)
	require.Len(t, response.Ranking, 2)

	assert.Equal(t, 1500.56, response.Ranking[0].TotalRevenue)
	assert.Equal(t, 120.0, response.Ranking[0].MRR)
	assert.Equal(t, 200.0, response.Ranking[1].TotalRevenue)
}

func TestGetLeaderboardRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metricsRepo := mocks.NewMockMetricsRepository(ctrl)
	metricsRepo.EXPECT().GetLeaderboard().Return(nil, errors.New("conexão perdida"))

	service := NewService(metricsRepo, mocks.NewMockStartupRepository(ctrl))

	response, err := service.GetLeaderboard()
	assert.Nil(t, response)
	assert.Error(t, err)
}

func TestGetStartup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startupRepo := mocks.NewMockStartupRepository(ctrl)
	startupRepo.EXPECT().GetBySlug("meu-app-x1y2z3").Return(&domain.Startup{
		ID:   42,
		Slug: "meu-app-x1y2z3",
		Name: "Meu App",
	}, nil)

	service := NewService(mocks.NewMockMetricsRepository(ctrl), startupRepo)

	startup, err := service.GetStartup("meu-app-x1y2z3")
	require.NoError(t, err)
	assert.Equal(t, "Meu App", startup.Name)
}

func TestGetStartupNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startupRepo := mocks.NewMockStartupRepository(ctrl)
	startupRepo.EXPECT().GetBySlug("nao-existe").Return(nil, nil)

	service := NewService(mocks.NewMockMetricsRepository(ctrl), startupRepo)

	startup, err := service.GetStartup("nao-existe")
	assert.Nil(t, startup)
	assert.ErrorIs(t, err, repository.ErrStartupNotFound)
}
