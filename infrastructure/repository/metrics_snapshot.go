package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

const (
	metricsSnapshotsTable = "metrics_snapshots ms"

	metricsSnapshotColumns = "ms.id, ms.variant_id, ms.impressions, ms.clicks, ms.leads, ms.spend, " +
		"ms.ctr, ms.cpl, ms.cpc, ms.captured_at"
)

// MetricsSnapshotRepository é um log append-only: não há update nem delete
type MetricsSnapshotRepository interface {
	Append(snapshot *domain.MetricsSnapshot) error
	GetLatest(variantID string) (*domain.MetricsSnapshot, error)
	GetLatestByVariantIDs(variantIDs []string) (map[string]*domain.MetricsSnapshot, error)
	ListByVariant(variantID string, lastN int) ([]*domain.MetricsSnapshot, error)
}

type metricsSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricsSnapshotRepository(conn *postgres.Connection) MetricsSnapshotRepository {
	return &metricsSnapshotRepository{
		conn: conn,
	}
}

// Append insere o snapshot e preenche o ID gerado pelo banco
func (r *metricsSnapshotRepository) Append(snapshot *domain.MetricsSnapshot) error {
	query, args, err := squirrel.
		Insert("metrics_snapshots").
		Columns("variant_id", "impressions", "clicks", "leads", "spend", "ctr", "cpl", "cpc", "captured_at").
		Values(
			snapshot.VariantID,
			snapshot.Impressions,
			snapshot.Clicks,
			snapshot.Leads,
			snapshot.Spend,
			snapshot.CTR,
			snapshot.CPL,
			snapshot.CPC,
			snapshot.CapturedAt,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&snapshot.ID); err != nil {
		return wrapPQError("erro ao inserir snapshot de métricas", err)
	}

	return nil
}

func (r *metricsSnapshotRepository) GetLatest(variantID string) (*domain.MetricsSnapshot, error) {
	query, args, err := squirrel.
		Select(metricsSnapshotColumns).
		From(metricsSnapshotsTable).
		Where(squirrel.Eq{"ms.variant_id": variantID}).
		OrderBy("ms.id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := deserializeSnapshot(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar último snapshot da variante %s: %w", variantID, err)
	}

	return snapshot, nil
}

// GetLatestByVariantIDs retorna o snapshot mais recente de cada variante; variantes sem métricas ficam fora do mapa
func (r *metricsSnapshotRepository) GetLatestByVariantIDs(variantIDs []string) (map[string]*domain.MetricsSnapshot, error) {
	latest := make(map[string]*domain.MetricsSnapshot, len(variantIDs))
	if len(variantIDs) == 0 {
		return latest, nil
	}

	query, args, err := squirrel.
		Select("DISTINCT ON (ms.variant_id) " + metricsSnapshotColumns).
		From(metricsSnapshotsTable).
		Where("ms.variant_id = ANY(?)", pq.Array(variantIDs)).
		OrderBy("ms.variant_id", "ms.id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		snapshot, err := deserializeSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler snapshot: %w", err)
		}
		latest[snapshot.VariantID] = snapshot
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar snapshots: %w", err)
	}

	return latest, nil
}

// ListByVariant retorna a série em ordem de inserção; lastN > 0 limita às últimas N entradas
func (r *metricsSnapshotRepository) ListByVariant(variantID string, lastN int) ([]*domain.MetricsSnapshot, error) {
	queryBuilder := squirrel.
		Select(metricsSnapshotColumns).
		From(metricsSnapshotsTable).
		Where(squirrel.Eq{"ms.variant_id": variantID}).
		PlaceholderFormat(squirrel.Dollar)

	if lastN > 0 {
		queryBuilder = queryBuilder.OrderBy("ms.id DESC").Limit(uint64(lastN))
	} else {
		queryBuilder = queryBuilder.OrderBy("ms.id ASC")
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MetricsSnapshot, 0)
	for rows.Next() {
		snapshot, err := deserializeSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar snapshots: %w", err)
	}

	if lastN > 0 {
		slices.Reverse(snapshots)
	}

	return snapshots, nil
}

func deserializeSnapshot(row scanner) (*domain.MetricsSnapshot, error) {
	snapshot := &domain.MetricsSnapshot{}

	var cpl, cpc sql.NullFloat64

	if err := row.Scan(
		&snapshot.ID,
		&snapshot.VariantID,
		&snapshot.Impressions,
		&snapshot.Clicks,
		&snapshot.Leads,
		&snapshot.Spend,
		&snapshot.CTR,
		&cpl,
		&cpc,
		&snapshot.CapturedAt,
	); err != nil {
		return nil, err
	}

	if cpl.Valid {
		snapshot.CPL = &cpl.Float64
	}
	if cpc.Valid {
		snapshot.CPC = &cpc.Float64
	}

	return snapshot, nil
}
