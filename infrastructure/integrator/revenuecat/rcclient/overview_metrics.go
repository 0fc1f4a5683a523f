package rcclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	rcdomain "github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat/domain"
)

// GetOverviewMetrics consulta o endpoint de visão geral de métricas de um
// projeto no RevenueCat. Toda falha é classificada em um rcdomain.FetchError:
// apenas 401/403 com o corpo de erro exato da API contam como credencial
// inválida; o restante é transitório ou resposta malformada.
func (c *RevenueCatClient) GetOverviewMetrics(apiKey string, projectID string) (*rcdomain.OverviewMetricsResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição
	endpoint, err := url.Parse(c.config.RevenueCat.URL)
	if err != nil {
		return nil, rcdomain.NewTransientError(0, fmt.Sprintf("erro ao analisar a URL base: %v", err))
	}
	endpoint.Path = path.Join(endpoint.Path, "projects", projectID, "metrics", "overview")

	// Criar a requisição HTTP
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, rcdomain.NewTransientError(0, fmt.Sprintf("erro ao criar a requisição: %v", err))
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Accept", "application/json")

	// Executar a requisição
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, rcdomain.NewTransientError(0, fmt.Sprintf("erro ao executar a requisição: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rcdomain.NewTransientError(resp.StatusCode, fmt.Sprintf("erro ao ler a resposta: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyErrorResponse(resp.StatusCode, body)
	}

	// Decodificar a resposta JSON
	var response rcdomain.OverviewMetricsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, rcdomain.NewMalformedResponseError(fmt.Sprintf("erro ao decodificar a resposta: %v", err))
	}

	return &response, nil
}

// classifyErrorResponse aplica o contrato estreito de classificação: somente
// 401/403 com o corpo de erro reconhecido do RevenueCat é credencial
// inválida. Corpo não reconhecido em 401/403 é evidência ambígua e fica como
// falha transitória.
func classifyErrorResponse(statusCode int, body []byte) *rcdomain.FetchError {
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		var errResponse rcdomain.ErrorResponse
		if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.IsAuthorizationError() {
			return rcdomain.NewInvalidCredentialError(statusCode, errResponse.Message)
		}

		return rcdomain.NewTransientError(statusCode, "resposta de autorização não reconhecida")
	}

	return rcdomain.NewTransientError(statusCode, fmt.Sprintf("requisição falhou com status %d", statusCode))
}
