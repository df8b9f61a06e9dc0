package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Gabryellzs/blecks-david-sub000/infrastructure/database/postgres"
	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

const (
	metricsSnapshotTable = "tracking_metrics_snapshots"
)

// MetricsSnapshotRepository guarda um retrato diário das métricas agregadas
// por plataforma, alimentado pelo agendador de sincronização
type MetricsSnapshotRepository interface {
	SaveOrUpdate(kind domain.PlatformKind, date time.Time, metrics *domain.TrackingMetrics) error
	GetByPlatformAndDate(kind domain.PlatformKind, date time.Time) (*domain.TrackingMetrics, error)
	GetByDateRange(kind domain.PlatformKind, startDate, endDate time.Time) ([]*domain.TrackingMetrics, error)
	DeleteOlderThan(days int) (int64, error)
}

type metricsSnapshotRepository struct {
	conn postgres.Queryer
}

func NewMetricsSnapshotRepository(conn postgres.Queryer) MetricsSnapshotRepository {
	return &metricsSnapshotRepository{
		conn: conn,
	}
}

func (r *metricsSnapshotRepository) SaveOrUpdate(kind domain.PlatformKind, date time.Time, metrics *domain.TrackingMetrics) error {
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(metricsSnapshotTable).
		Columns("platform", "date", "metrics").
		Values(
			kind.String(),
			date.Format("2006-01-02"),
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (platform, date) DO UPDATE SET
				metrics = EXCLUDED.metrics,
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

func (r *metricsSnapshotRepository) GetByPlatformAndDate(kind domain.PlatformKind, date time.Time) (*domain.TrackingMetrics, error) {
	query, args, err := squirrel.
		Select("metrics").
		From(metricsSnapshotTable).
		Where(squirrel.Eq{"platform": kind.String(), "date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var metricsJSON []byte
	if err := r.conn.QueryRow(query, args...).Scan(&metricsJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot de métricas: %w", err)
	}

	metrics := &domain.TrackingMetrics{}
	if err := json.Unmarshal(metricsJSON, metrics); err != nil {
		return nil, fmt.Errorf("erro ao desserializar métricas: %w", err)
	}

	return metrics, nil
}

func (r *metricsSnapshotRepository) GetByDateRange(kind domain.PlatformKind, startDate, endDate time.Time) ([]*domain.TrackingMetrics, error) {
	query, args, err := squirrel.
		Select("metrics").
		From(metricsSnapshotTable).
		Where(squirrel.Eq{"platform": kind.String()}).
		Where(squirrel.GtOrEq{"date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": endDate.Format("2006-01-02")}).
		OrderBy("date ASC").
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

	snapshots := make([]*domain.TrackingMetrics, 0)
	for rows.Next() {
		var metricsJSON []byte
		if err := rows.Scan(&metricsJSON); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot de métricas: %w", err)
		}

		metrics := &domain.TrackingMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao desserializar métricas: %w", err)
		}
		snapshots = append(snapshots, metrics)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *metricsSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete(metricsSnapshotTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
