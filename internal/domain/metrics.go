package domain

import "time"

// StartupMetrics é o último snapshot conhecido de receita de uma startup
// (1:1 com Startup). Cada atualização sobrescreve o valor anterior, não é
// uma série temporal.
type StartupMetrics struct {
	StartupID    int64     `json:"-"`
	TotalRevenue float64   `json:"total_revenue"`
	MRR          float64   `json:"mrr"`
	LastUpdated  time.Time `json:"last_updated"`
}

// StartupWithCredential é a projeção usada pelo job de atualização de
// métricas: apenas o necessário para decifrar e consultar o RevenueCat
type StartupWithCredential struct {
	StartupID        int64
	Name             string
	EncryptedSecret  string
	AccountProjectID string
}
