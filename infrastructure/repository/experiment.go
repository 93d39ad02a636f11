package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

const (
	experimentsTable = "experiments e"

	experimentColumns = "e.id, e.product_id, e.total_budget, e.daily_budget, e.target_cpl, e.min_leads, " +
		"e.opt_enabled, e.opt_interval_hours, e.opt_min_impressions, e.opt_cpl_multiplier, e.opt_min_leads, " +
		"e.opt_auto_relaunch, e.opt_max_variants, e.opt_pause_underperforming, " +
		"e.status, e.last_evaluated_at, e.next_evaluated_at, e.created_at, e.updated_at"
)

type ExperimentRepository interface {
	GetByID(experimentID string) (*domain.Experiment, error)
	List(statuses []domain.ExperimentStatus) ([]*domain.Experiment, error)
	ListDueForEvaluation(now time.Time) ([]*domain.Experiment, error)
	Create(experiment *domain.Experiment) error
	Update(experiment *domain.Experiment) error
	UpdateSchedule(experimentID string, lastEvaluatedAt, nextEvaluatedAt time.Time) error
	UpdateNextEvaluation(experimentID string, nextEvaluatedAt time.Time) error
	UpdateStatusCascade(experimentID string, status domain.ExperimentStatus, cascade domain.VariantCascade) (int64, error)
}

type experimentRepository struct {
	conn *postgres.Connection
}

func NewExperimentRepository(conn *postgres.Connection) ExperimentRepository {
	return &experimentRepository{
		conn: conn,
	}
}

// scanner é satisfeito por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func (r *experimentRepository) GetByID(experimentID string) (*domain.Experiment, error) {
	query, args, err := squirrel.
		Select(experimentColumns).
		From(experimentsTable).
		Where(squirrel.Eq{"e.id": experimentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	experiment, err := deserializeExperiment(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar experimento %s: %w", experimentID, err)
	}

	return experiment, nil
}

func (r *experimentRepository) List(statuses []domain.ExperimentStatus) ([]*domain.Experiment, error) {
	queryBuilder := squirrel.
		Select(experimentColumns).
		From(experimentsTable).
		OrderBy("e.created_at ASC", "e.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"e.status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryExperiments(query, args...)
}

// ListDueForEvaluation retorna os experimentos em execução, com otimização habilitada e agenda vencida
func (r *experimentRepository) ListDueForEvaluation(now time.Time) ([]*domain.Experiment, error) {
	query, args, err := squirrel.
		Select(experimentColumns).
		From(experimentsTable).
		Where(squirrel.Eq{"e.status": domain.ExperimentStatusRunning}).
		Where(squirrel.Eq{"e.opt_enabled": true}).
		Where(squirrel.Or{
			squirrel.Eq{"e.next_evaluated_at": nil},
			squirrel.LtOrEq{"e.next_evaluated_at": now},
		}).
		OrderBy("e.next_evaluated_at ASC NULLS FIRST", "e.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryExperiments(query, args...)
}

func (r *experimentRepository) queryExperiments(query string, args ...any) ([]*domain.Experiment, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	experiments := make([]*domain.Experiment, 0)
	for rows.Next() {
		experiment, err := deserializeExperiment(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler experimento: %w", err)
		}
		experiments = append(experiments, experiment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar experimentos: %w", err)
	}

	return experiments, nil
}

func (r *experimentRepository) Create(experiment *domain.Experiment) error {
	opt := experiment.Optimization

	query, args, err := squirrel.
		Insert("experiments").
		Columns(
			"id", "product_id", "total_budget", "daily_budget", "target_cpl", "min_leads",
			"opt_enabled", "opt_interval_hours", "opt_min_impressions", "opt_cpl_multiplier", "opt_min_leads",
			"opt_auto_relaunch", "opt_max_variants", "opt_pause_underperforming",
			"status", "last_evaluated_at", "next_evaluated_at", "created_at", "updated_at",
		).
		Values(
			experiment.ID, experiment.ProductID, experiment.TotalBudget, experiment.DailyBudget, experiment.TargetCPL, experiment.MinLeads,
			opt.Enabled, opt.EvaluationIntervalHours, opt.MinImpressionsThreshold, opt.CPLMultiplier, opt.MinLeadsForDecision,
			opt.AutoRelaunch, opt.MaxVariantsPerExperiment, opt.PauseUnderperforming,
			experiment.Status, experiment.LastEvaluatedAt, experiment.NextEvaluatedAt, experiment.CreatedAt, experiment.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return wrapPQError("erro ao inserir experimento", err)
	}

	return nil
}

// Update grava os campos editáveis; a agenda (last/next_evaluated_at) só muda por UpdateSchedule e UpdateNextEvaluation
func (r *experimentRepository) Update(experiment *domain.Experiment) error {
	query, args, err := updateExperimentQuery(experiment)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execAffectingOne(query, args, experiment.ID)
}

func updateExperimentQuery(experiment *domain.Experiment) (string, []any, error) {
	opt := experiment.Optimization

	return squirrel.
		Update("experiments").
		Set("total_budget", experiment.TotalBudget).
		Set("daily_budget", experiment.DailyBudget).
		Set("target_cpl", experiment.TargetCPL).
		Set("min_leads", experiment.MinLeads).
		Set("opt_enabled", opt.Enabled).
		Set("opt_interval_hours", opt.EvaluationIntervalHours).
		Set("opt_min_impressions", opt.MinImpressionsThreshold).
		Set("opt_cpl_multiplier", opt.CPLMultiplier).
		Set("opt_min_leads", opt.MinLeadsForDecision).
		Set("opt_auto_relaunch", opt.AutoRelaunch).
		Set("opt_max_variants", opt.MaxVariantsPerExperiment).
		Set("opt_pause_underperforming", opt.PauseUnderperforming).
		Set("status", experiment.Status).
		Set("updated_at", experiment.UpdatedAt).
		Where(squirrel.Eq{"id": experiment.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// UpdateNextEvaluation move apenas a próxima avaliação, mantendo last_evaluated_at
func (r *experimentRepository) UpdateNextEvaluation(experimentID string, nextEvaluatedAt time.Time) error {
	query, args, err := squirrel.
		Update("experiments").
		Set("next_evaluated_at", nextEvaluatedAt).
		Where(squirrel.Eq{"id": experimentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execAffectingOne(query, args, experimentID)
}

func (r *experimentRepository) UpdateSchedule(experimentID string, lastEvaluatedAt, nextEvaluatedAt time.Time) error {
	query, args, err := squirrel.
		Update("experiments").
		Set("last_evaluated_at", lastEvaluatedAt).
		Set("next_evaluated_at", nextEvaluatedAt).
		Set("updated_at", lastEvaluatedAt).
		Where(squirrel.Eq{"id": experimentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execAffectingOne(query, args, experimentID)
}

// UpdateStatusCascade altera o status do experimento e das variantes selecionadas pela cascata na mesma transação
func (r *experimentRepository) UpdateStatusCascade(
	experimentID string,
	status domain.ExperimentStatus,
	cascade domain.VariantCascade,
) (int64, error) {
	experimentQuery, experimentArgs, err := squirrel.
		Update("experiments").
		Set("status", status).
		Set("updated_at", cascade.TransitionsAt).
		Where(squirrel.Eq{"id": experimentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	variantBuilder := squirrel.
		Update("variants").
		Set("status", cascade.To).
		Set("updated_at", cascade.TransitionsAt).
		Where(squirrel.Eq{"experiment_id": experimentID}).
		Where(squirrel.Eq{"status": cascade.From}).
		PlaceholderFormat(squirrel.Dollar)

	if cascade.OnlyPausedBy != nil {
		variantBuilder = variantBuilder.Where(squirrel.Eq{"paused_by": string(*cascade.OnlyPausedBy)})
	}

	if cascade.To == domain.VariantStatusPaused {
		variantBuilder = variantBuilder.
			Set("paused_by", pauseSourceValue(cascade.SetPausedBy)).
			Set("paused_at", cascade.TransitionsAt)
	} else {
		variantBuilder = variantBuilder.
			Set("paused_by", nil).
			Set("paused_at", nil)
	}

	variantQuery, variantArgs, err := variantBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var affected int64
	err = r.conn.RunInTransaction(context.Background(), func(tx postgres.Queryer) error {
		result, err := tx.Exec(experimentQuery, experimentArgs...)
		if err != nil {
			return wrapPQError("erro ao atualizar status do experimento", err)
		}

		if rows, _ := result.RowsAffected(); rows == 0 {
			return domain.NewExperimentNotFoundError(experimentID)
		}

		result, err = tx.Exec(variantQuery, variantArgs...)
		if err != nil {
			return wrapPQError("erro ao atualizar status das variantes", err)
		}

		affected, _ = result.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

func (r *experimentRepository) execAffectingOne(query string, args []any, experimentID string) error {
	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return wrapPQError("erro ao atualizar experimento", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.NewExperimentNotFoundError(experimentID)
	}

	return nil
}

func deserializeExperiment(row scanner) (*domain.Experiment, error) {
	experiment := &domain.Experiment{}
	opt := &experiment.Optimization

	var lastEvaluatedAt, nextEvaluatedAt sql.NullTime

	if err := row.Scan(
		&experiment.ID,
		&experiment.ProductID,
		&experiment.TotalBudget,
		&experiment.DailyBudget,
		&experiment.TargetCPL,
		&experiment.MinLeads,
		&opt.Enabled,
		&opt.EvaluationIntervalHours,
		&opt.MinImpressionsThreshold,
		&opt.CPLMultiplier,
		&opt.MinLeadsForDecision,
		&opt.AutoRelaunch,
		&opt.MaxVariantsPerExperiment,
		&opt.PauseUnderperforming,
		&experiment.Status,
		&lastEvaluatedAt,
		&nextEvaluatedAt,
		&experiment.CreatedAt,
		&experiment.UpdatedAt,
	); err != nil {
		return nil, err
	}

	experiment.LastEvaluatedAt = nullTimePtr(lastEvaluatedAt)
	experiment.NextEvaluatedAt = nullTimePtr(nextEvaluatedAt)

	return experiment, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}

func pauseSourceValue(source *domain.PauseSource) any {
	if source == nil {
		return nil
	}
	return string(*source)
}

// wrapPQError acrescenta o código do erro do PostgreSQL quando disponível
func wrapPQError(message string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w (code: %s)", message, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%s: %w", message, err)
}
