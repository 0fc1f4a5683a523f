package domain

import "time"

// Startup representa um app cadastrado no leaderboard
type Startup struct {
	ID            int64     `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	WebsiteURL    string    `json:"website_url"`
	FounderHandle string    `json:"founder_handle"`
	StoreID       string    `json:"store_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StartupCredential guarda o token de API cifrado e o identificador do
// projeto no RevenueCat (1:1 com Startup). O campo EncryptedSecret nunca é
// devolvido a nenhum cliente da API.
type StartupCredential struct {
	StartupID        int64
	EncryptedSecret  string
	AccountProjectID string
}

// RegisterStartupRequest é o payload de cadastro de uma nova startup
type RegisterStartupRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	WebsiteURL    string `json:"website_url" validate:"required,url,max=255"`
	FounderHandle string `json:"founder_handle" validate:"required,max=50"`
	StoreID       string `json:"store_id" validate:"required,max=100"`
	APIKey        string `json:"api_key" validate:"required,max=255"`
	ProjectID     string `json:"project_id" validate:"required,max=100"`
}

// RegisterStartupResponse é a resposta do cadastro, sem qualquer dado do
// token de API
type RegisterStartupResponse struct {
	Startup *Startup        `json:"startup"`
	Metrics *StartupMetrics `json:"metrics"`
}
