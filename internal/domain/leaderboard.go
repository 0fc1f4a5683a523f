package domain

import "time"

// LeaderboardEntry é uma linha do ranking público
type LeaderboardEntry struct {
	Position      int       `json:"position"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	WebsiteURL    string    `json:"website_url"`
	FounderHandle string    `json:"founder_handle"`
	StoreID       string    `json:"store_id"`
	TotalRevenue  float64   `json:"total_revenue"`
	MRR           float64   `json:"mrr"`
	LastUpdated   time.Time `json:"last_updated"`
}

// LeaderboardResponse é a resposta do endpoint público de ranking
type LeaderboardResponse struct {
	Ranking    []LeaderboardEntry `json:"ranking"`
	LastUpdate time.Time          `json:"last_update"`
}
