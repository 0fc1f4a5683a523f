package rcdomain

// Identificadores de métricas do endpoint de visão geral do RevenueCat.
// A ausência de um identificador na resposta significa "sem receita a
// reportar" e é tratada como leitura zero válida, não como erro.
const (
	MetricIDRevenue = "revenue"
	MetricIDMRR     = "mrr"
)

// OverviewMetric é um item da lista de métricas retornada pela API
type OverviewMetric struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Period      string  `json:"period,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Value       float64 `json:"value"`
}

// OverviewMetricsResponse é a resposta crua do endpoint
// /projects/{id}/metrics/overview
type OverviewMetricsResponse struct {
	Object  string           `json:"object"`
	Metrics []OverviewMetric `json:"metrics"`
}

// RevenueMetrics é o resultado normalizado consumido pelo restante da
// aplicação
type RevenueMetrics struct {
	TotalRevenue float64
	MRR          float64
}
