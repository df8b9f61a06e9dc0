package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Gabryellzs/blecks-david-sub000/infrastructure/database/postgres"
	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

const (
	syncStatusTable = "platform_sync_status"
)

// SyncStatusRepository persiste o resultado das sincronizações periódicas.
// Apenas o agendador escreve aqui: as leituras em tempo real dos adaptadores
// nunca tocam o banco.
type SyncStatusRepository interface {
	SaveOrUpdate(status *domain.SyncStatus) error
	GetByPlatform(kind domain.PlatformKind) (*domain.SyncStatus, error)
	ListAll() ([]*domain.SyncStatus, error)
}

type syncStatusRepository struct {
	conn postgres.Queryer
}

func NewSyncStatusRepository(conn postgres.Queryer) SyncStatusRepository {
	return &syncStatusRepository{
		conn: conn,
	}
}

func (r *syncStatusRepository) SaveOrUpdate(status *domain.SyncStatus) error {
	var nextSync interface{}
	if status.NextSync != nil {
		nextSync = status.NextSync.UTC()
	}

	query := squirrel.StatementBuilder.
		Insert(syncStatusTable).
		Columns("platform", "last_sync", "status", "error", "records_processed", "next_sync").
		Values(
			status.Platform.String(),
			status.LastSync.UTC(),
			string(status.Status),
			status.Error,
			status.RecordsProcessed,
			nextSync,
		).
		Suffix(`
			ON CONFLICT (platform) DO UPDATE SET
				last_sync = EXCLUDED.last_sync,
				status = EXCLUDED.status,
				error = EXCLUDED.error,
				records_processed = EXCLUDED.records_processed,
				next_sync = EXCLUDED.next_sync,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *syncStatusRepository) GetByPlatform(kind domain.PlatformKind) (*domain.SyncStatus, error) {
	query, args, err := squirrel.
		Select("platform, last_sync, status, error, records_processed, next_sync").
		From(syncStatusTable).
		Where(squirrel.Eq{"platform": kind.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	status, err := scanSyncStatus(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear status de sincronização: %w", err)
	}

	return status, nil
}

func (r *syncStatusRepository) ListAll() ([]*domain.SyncStatus, error) {
	query, args, err := squirrel.
		Select("platform, last_sync, status, error, records_processed, next_sync").
		From(syncStatusTable).
		OrderBy("platform ASC").
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

	statuses := make([]*domain.SyncStatus, 0)
	for rows.Next() {
		status, err := scanSyncStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear status de sincronização: %w", err)
		}
		statuses = append(statuses, status)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return statuses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSyncStatus(row rowScanner) (*domain.SyncStatus, error) {
	status := &domain.SyncStatus{}
	var platform, state string
	var errorMsg sql.NullString
	var nextSync sql.NullTime

	err := row.Scan(
		&platform,
		&status.LastSync,
		&state,
		&errorMsg,
		&status.RecordsProcessed,
		&nextSync,
	)
	if err != nil {
		return nil, err
	}

	status.Platform = domain.PlatformKind(platform)
	status.Status = domain.SyncState(state)
	if errorMsg.Valid {
		status.Error = errorMsg.String
	}
	if nextSync.Valid {
		next := nextSync.Time
		status.NextSync = &next
	}

	return status, nil
}
