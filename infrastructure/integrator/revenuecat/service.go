package revenuecat

import (
	rcdomain "github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat/domain"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat/rcclient"
	"github.com/vfg2006/revenue-leaderboard-api/internal/config"
)

type RevenueCatIntegrator interface {
	GetRevenueMetrics(apiKey string, projectID string) (*rcdomain.RevenueMetrics, error)
	ValidateCredential(apiKey string, projectID string) bool
}

type RevenueCatService struct {
	cfg    *config.Config
	Client rcclient.Client
}

func New(cfg *config.Config, client rcclient.Client) RevenueCatIntegrator {
	return &RevenueCatService{
		cfg:    cfg,
		Client: client,
	}
}

// GetRevenueMetrics busca as métricas de visão geral e normaliza os campos
// de receita. Identificadores ausentes na resposta valem zero: ausência de
// métrica significa "sem receita a reportar", não erro.
func (s *RevenueCatService) GetRevenueMetrics(apiKey string, projectID string) (*rcdomain.RevenueMetrics, error) {
	resp, err := s.Client.GetOverviewMetrics(apiKey, projectID)
	if err != nil {
		return nil, err
	}

	metrics := &rcdomain.RevenueMetrics{}
	for _, metric := range resp.Metrics {
		switch metric.ID {
		case rcdomain.MetricIDRevenue:
			metrics.TotalRevenue = metric.Value
		case rcdomain.MetricIDMRR:
			metrics.MRR = metric.Value
		}
	}

	return metrics, nil
}

// ValidateCredential verifica se a credencial consegue consultar o projeto.
// O chamador não distingue o tipo de falha: qualquer erro vale false.
func (s *RevenueCatService) ValidateCredential(apiKey string, projectID string) bool {
	_, err := s.GetRevenueMetrics(apiKey, projectID)
	return err == nil
}
