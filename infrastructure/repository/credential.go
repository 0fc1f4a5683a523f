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

const credentialsTable = "credentials c"

// ErrProjectIDTaken indica que outro cadastro já referencia o mesmo projeto
// no RevenueCat (account_project_id é único no sistema inteiro)
var ErrProjectIDTaken = errors.New("projeto já cadastrado por outra startup")

type CredentialRepository interface {
	Upsert(credential *domain.StartupCredential) error
	IsProjectIDTaken(projectID string) (bool, error)
	ListStartupsWithCredentials() ([]*domain.StartupWithCredential, error)
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

func (r *credentialRepository) Upsert(credential *domain.StartupCredential) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("credentials").
		Columns("startup_id", "encrypted_secret", "account_project_id").
		Values(
			credential.StartupID,
			credential.EncryptedSecret,
			credential.AccountProjectID,
		).
		Suffix(`
			ON CONFLICT (startup_id) DO UPDATE SET
				encrypted_secret = EXCLUDED.encrypted_secret,
				account_project_id = EXCLUDED.account_project_id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		// A constraint única de account_project_id é a última linha de defesa
		// contra dois cadastros concorrentes do mesmo projeto
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrProjectIDTaken
		}
		return fmt.Errorf("erro ao gravar credencial: %w", err)
	}

	return nil
}

func (r *credentialRepository) IsProjectIDTaken(projectID string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(credentialsTable).
		Where(squirrel.Eq{"c.account_project_id": projectID}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.conn.QueryRow(query, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao consultar projeto: %w", err)
	}

	return true, nil
}

// ListStartupsWithCredentials retorna a projeção consumida pelo job de
// atualização de métricas: toda startup que possui credencial gravada,
// com o segredo ainda cifrado
func (r *credentialRepository) ListStartupsWithCredentials() ([]*domain.StartupWithCredential, error) {
	query, args, err := squirrel.
		Select("c.startup_id, s.name, c.encrypted_secret, c.account_project_id").
		From(credentialsTable).
		Join("startups s ON s.id = c.startup_id").
		OrderBy("c.startup_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.StartupWithCredential, 0)

	for rows.Next() {
		entry := &domain.StartupWithCredential{}
		err := rows.Scan(
			&entry.StartupID,
			&entry.Name,
			&entry.EncryptedSecret,
			&entry.AccountProjectID,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar credencial: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return entries, nil
}
