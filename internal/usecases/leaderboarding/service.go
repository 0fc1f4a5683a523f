package leaderboarding

import (
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/repository"
	"github.com/vfg2006/revenue-leaderboard-api/internal/domain"
	"github.com/vfg2006/revenue-leaderboard-api/pkg/utils"
)

type LeaderboardService interface {
	GetLeaderboard() (*domain.LeaderboardResponse, error)
	GetStartup(slug string) (*domain.Startup, error)
}

type Service struct {
	metricsRepo repository.MetricsRepository
	startupRepo repository.StartupRepository
}

func NewService(metricsRepo repository.MetricsRepository, startupRepo repository.StartupRepository) LeaderboardService {
	return &Service{
		metricsRepo: metricsRepo,
		startupRepo: startupRepo,
	}
}

// GetLeaderboard retorna o ranking público com os valores monetários
// arredondados para duas casas
func (s *Service) GetLeaderboard() (*domain.LeaderboardResponse, error) {
	leaderboard, err := s.metricsRepo.GetLeaderboard()
	if err != nil {
		return nil, err
	}

	for i := range leaderboard.Ranking {
		leaderboard.Ranking[i].TotalRevenue = utils.RoundWithTwoDecimalPlace(leaderboard.Ranking[i].TotalRevenue)
		leaderboard.Ranking[i].MRR = utils.RoundWithTwoDecimalPlace(leaderboard.Ranking[i].MRR)
	}

	return leaderboard, nil
}

// GetStartup retorna o perfil público de uma startup pelo slug. Retorna
// ErrStartupNotFound quando o slug não existe.
func (s *Service) GetStartup(slug string) (*domain.Startup, error) {
	startup, err := s.startupRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if startup == nil {
		return nil, repository.ErrStartupNotFound
	}

	return startup, nil
}
