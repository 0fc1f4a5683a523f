// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-leaderboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-leaderboard-api/internal/domain"
)

const startupsTable = "startups s"

var ErrStartupNotFound = errors.New("startup não encontrada")

type StartupRepository interface {
	Create(startup *domain.Startup) (*domain.Startup, error)
	GetBySlug(slug string) (*domain.Startup, error)
	Delete(startupID int64) error
}

type startupRepository struct {
	conn *postgres.Connection
}

func NewStartupRepository(conn *postgres.Connection) StartupRepository {
	return &startupRepository{
		conn: conn,
	}
}

func (r *startupRepository) Create(startup *domain.Startup) (*domain.Startup, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("startups").
		Columns("slug", "name", "website_url", "founder_handle", "store_id").
		Values(
			startup.Slug,
			startup.Name,
			startup.WebsiteURL,
			startup.FounderHandle,
			startup.StoreID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(
		&startup.ID,
		&startup.CreatedAt,
		&startup.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir startup: %w", err)
	}

	return startup, nil
}

func (r *startupRepository) GetBySlug(slug string) (*domain.Startup, error) {
	query, args, err := squirrel.
		Select("s.id, s.slug, s.name, s.website_url, s.founder_handle, s.store_id, s.created_at, s.updated_at").
		From(startupsTable).
		Where(squirrel.Eq{"s.slug": slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	startup := &domain.Startup{}
	err = r.conn.QueryRow(query, args...).Scan(
		&startup.ID,
		&startup.Slug,
		&startup.Name,
		&startup.WebsiteURL,
		&startup.FounderHandle,
		&startup.StoreID,
		&startup.CreatedAt,
		&startup.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar startup: %w", err)
	}

	return startup, nil
}

// Delete remove a startup. As linhas de credencial e de métricas caem em
// cascata pelas foreign keys, nenhum segredo fica órfão.
func (r *startupRepository) Delete(startupID int64) error {
	query, args, err := squirrel.
		Delete("startups").
		Where(squirrel.Eq{"id": startupID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao remover startup: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrStartupNotFound
	}

	return nil
}
