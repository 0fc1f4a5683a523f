package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-leaderboard-api/internal/domain"
)

const metricsTable = "startup_metrics m"

type MetricsRepository interface {
	Upsert(startupID int64, totalRevenue float64, mrr float64, lastUpdated time.Time) error
	GetLeaderboard() (*domain.LeaderboardResponse, error)
}

type metricsRepository struct {
	conn *postgres.Connection
}

func NewMetricsRepository(conn *postgres.Connection) MetricsRepository {
	return &metricsRepository{
		conn: conn,
	}
}

// Upsert sobrescreve o snapshot de métricas da startup. Cada atualização
// substitui a anterior por completo.
func (r *metricsRepository) Upsert(startupID int64, totalRevenue float64, mrr float64, lastUpdated time.Time) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("startup_metrics").
		Columns("startup_id", "total_revenue", "mrr", "last_updated").
		Values(startupID, totalRevenue, mrr, lastUpdated).
		Suffix(`
			ON CONFLICT (startup_id) DO UPDATE SET
				total_revenue = EXCLUDED.total_revenue,
				mrr = EXCLUDED.mrr,
				last_updated = EXCLUDED.last_updated
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

// GetLeaderboard retorna o ranking público ordenado por receita total,
// com a posição preenchida pela ordem das linhas
func (r *metricsRepository) GetLeaderboard() (*domain.LeaderboardResponse, error) {
	queryBuilder := squirrel.
		Select(
			"s.slug",
			"s.name",
			"s.website_url",
			"s.founder_handle",
			"s.store_id",
			"m.total_revenue",
			"m.mrr",
			"m.last_updated",
		).
		From(metricsTable).
		Join("startups s ON s.id = m.startup_id").
		OrderBy("m.total_revenue DESC", "s.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.LeaderboardResponse{
				Ranking:    []domain.LeaderboardEntry{},
				LastUpdate: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ranking := make([]domain.LeaderboardEntry, 0)
	var lastUpdate time.Time

	for rows.Next() {
		entry := domain.LeaderboardEntry{}
		err := rows.Scan(
			&entry.Slug,
			&entry.Name,
			&entry.WebsiteURL,
			&entry.FounderHandle,
			&entry.StoreID,
			&entry.TotalRevenue,
			&entry.MRR,
			&entry.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		entry.Position = len(ranking) + 1
		ranking = append(ranking, entry)

		if entry.LastUpdated.After(lastUpdate) {
			lastUpdate = entry.LastUpdated
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.LeaderboardResponse{
		Ranking:    ranking,
		LastUpdate: lastUpdate,
	}, nil
}
