package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

const (
	variantsTable = "variants v"

	variantColumns = "v.id, v.experiment_id, v.product_id, v.headline, v.body, v.call_to_action, v.image_url, " +
		"v.ext_campaign_id, v.ext_adset_id, v.ext_creative_id, v.ext_ad_id, " +
		"v.status, v.paused_by, v.paused_at, v.created_at, v.updated_at"
)

type VariantRepository interface {
	GetByID(variantID string) (*domain.Variant, error)
	ListByExperiment(experimentID string) ([]*domain.Variant, error)
	ListByStatus(statuses []domain.VariantStatus) ([]*domain.Variant, error)
	Create(variant *domain.Variant) error
	UpdateStatus(variantID string, status domain.VariantStatus, pausedBy *domain.PauseSource, at time.Time) error
	UpdateExternalIDs(variantID string, external domain.ExternalAdIDs) error
}

type variantRepository struct {
	conn *postgres.Connection
}

func NewVariantRepository(conn *postgres.Connection) VariantRepository {
	return &variantRepository{
		conn: conn,
	}
}

func (r *variantRepository) GetByID(variantID string) (*domain.Variant, error) {
	query, args, err := squirrel.
		Select(variantColumns).
		From(variantsTable).
		Where(squirrel.Eq{"v.id": variantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	variant, err := deserializeVariant(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar variante %s: %w", variantID, err)
	}

	return variant, nil
}

// ListByExperiment retorna todas as variantes do experimento, em qualquer status, na ordem de criação
func (r *variantRepository) ListByExperiment(experimentID string) ([]*domain.Variant, error) {
	query, args, err := squirrel.
		Select(variantColumns).
		From(variantsTable).
		Where(squirrel.Eq{"v.experiment_id": experimentID}).
		OrderBy("v.created_at ASC", "v.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryVariants(query, args...)
}

func (r *variantRepository) ListByStatus(statuses []domain.VariantStatus) ([]*domain.Variant, error) {
	queryBuilder := squirrel.
		Select(variantColumns).
		From(variantsTable).
		OrderBy("v.experiment_id ASC", "v.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"v.status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryVariants(query, args...)
}

func (r *variantRepository) queryVariants(query string, args ...any) ([]*domain.Variant, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	variants := make([]*domain.Variant, 0)
	for rows.Next() {
		variant, err := deserializeVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler variante: %w", err)
		}
		variants = append(variants, variant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar variantes: %w", err)
	}

	return variants, nil
}

func (r *variantRepository) Create(variant *domain.Variant) error {
	query, args, err := squirrel.
		Insert("variants").
		Columns(
			"id", "experiment_id", "product_id", "headline", "body", "call_to_action", "image_url",
			"ext_campaign_id", "ext_adset_id", "ext_creative_id", "ext_ad_id",
			"status", "paused_by", "paused_at", "created_at", "updated_at",
		).
		Values(
			variant.ID, variant.ExperimentID, variant.ProductID, variant.Headline, variant.Body, variant.CallToAction, variant.ImageURL,
			variant.External.CampaignID, variant.External.AdSetID, variant.External.CreativeID, variant.External.AdID,
			variant.Status, pauseSourceValue(variant.PausedBy), variant.PausedAt, variant.CreatedAt, variant.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return wrapPQError("erro ao inserir variante", err)
	}

	return nil
}

// UpdateStatus grava o novo status; pausedBy só é mantido quando o status é paused
func (r *variantRepository) UpdateStatus(variantID string, status domain.VariantStatus, pausedBy *domain.PauseSource, at time.Time) error {
	builder := squirrel.
		Update("variants").
		Set("status", status).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": variantID}).
		PlaceholderFormat(squirrel.Dollar)

	if status == domain.VariantStatusPaused {
		builder = builder.Set("paused_by", pauseSourceValue(pausedBy)).Set("paused_at", at)
	} else {
		builder = builder.Set("paused_by", nil).Set("paused_at", nil)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execAffectingOne(query, args, variantID)
}

func (r *variantRepository) UpdateExternalIDs(variantID string, external domain.ExternalAdIDs) error {
	query, args, err := squirrel.
		Update("variants").
		Set("ext_campaign_id", external.CampaignID).
		Set("ext_adset_id", external.AdSetID).
		Set("ext_creative_id", external.CreativeID).
		Set("ext_ad_id", external.AdID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": variantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execAffectingOne(query, args, variantID)
}

func (r *variantRepository) execAffectingOne(query string, args []any, variantID string) error {
	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return wrapPQError("erro ao atualizar variante", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.NewVariantNotFoundError(variantID)
	}

	return nil
}

func deserializeVariant(row scanner) (*domain.Variant, error) {
	variant := &domain.Variant{}

	var pausedBy sql.NullString
	var pausedAt sql.NullTime

	if err := row.Scan(
		&variant.ID,
		&variant.ExperimentID,
		&variant.ProductID,
		&variant.Headline,
		&variant.Body,
		&variant.CallToAction,
		&variant.ImageURL,
		&variant.External.CampaignID,
		&variant.External.AdSetID,
		&variant.External.CreativeID,
		&variant.External.AdID,
		&variant.Status,
		&pausedBy,
		&pausedAt,
		&variant.CreatedAt,
		&variant.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if pausedBy.Valid {
		source := domain.PauseSource(pausedBy.String)
		variant.PausedBy = &source
	}
	variant.PausedAt = nullTimePtr(pausedAt)

	return variant, nil
}
