package rcclient

import (
	"net/http"
	"time"

	rcdomain "github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat/domain"
	"github.com/vfg2006/revenue-leaderboard-api/internal/config"
)

type Client interface {
	GetOverviewMetrics(apiKey string, projectID string) (*rcdomain.OverviewMetricsResponse, error)
}

type RevenueCatClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &RevenueCatClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
