package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

// setupTestDB conecta no banco de TEST_DATABASE_URL, aplica o schema e limpa as tabelas
func setupTestDB(t *testing.T) *postgres.Connection {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL não definido, pulando teste de integração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, config.Database{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, conn.ApplySchema(ctx))

	_, err = conn.Exec("TRUNCATE metrics_snapshots, variants, experiments, products RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return conn
}

func seedExperiment(t *testing.T, conn *postgres.Connection, now time.Time) (*domain.Experiment, []*domain.Variant) {
	t.Helper()

	products := NewProductRepository(conn)
	experiments := NewExperimentRepository(conn)
	variants := NewVariantRepository(conn)

	require.NoError(t, products.Create(&domain.Product{ID: "PRD001", Name: "Curso", Concept: "Curso online", CreatedAt: now}))

	cfg := domain.DefaultOptimizationConfig()
	cfg.Enabled = true
	experiment := &domain.Experiment{
		ID:           "EXP001",
		ProductID:    "PRD001",
		TotalBudget:  1000,
		DailyBudget:  50,
		TargetCPL:    10,
		MinLeads:     5,
		Optimization: cfg,
		Status:       domain.ExperimentStatusRunning,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, experiments.Create(experiment))

	created := make([]*domain.Variant, 0, 3)
	for i, id := range []string{"VAR001", "VAR002", "VAR003"} {
		variant := &domain.Variant{
			ID:           id,
			ExperimentID: experiment.ID,
			ProductID:    experiment.ProductID,
			Headline:     "Título " + id,
			Body:         "Texto",
			CallToAction: "LEARN_MORE",
			Status:       domain.VariantStatusActive,
			CreatedAt:    now.Add(time.Duration(i) * time.Second),
			UpdatedAt:    now,
		}
		require.NoError(t, variants.Create(variant))
		created = append(created, variant)
	}

	return experiment, created
}

func TestExperimentRepository_Integration(t *testing.T) {
	conn := setupTestDB(t)
	now := time.Now().UTC().Truncate(time.Second)

	experiments := NewExperimentRepository(conn)
	variants := NewVariantRepository(conn)

	experiment, seeded := seedExperiment(t, conn, now)

	t.Run("Experimento nunca avaliado está elegível", func(t *testing.T) {
		due, err := experiments.ListDueForEvaluation(now)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, experiment.ID, due[0].ID)
		assert.True(t, due[0].Optimization.Enabled)
		assert.Equal(t, 1.5, due[0].Optimization.CPLMultiplier)
	})

	t.Run("Reagendado para o futuro sai da lista", func(t *testing.T) {
		require.NoError(t, experiments.UpdateSchedule(experiment.ID, now, now.Add(24*time.Hour)))

		due, err := experiments.ListDueForEvaluation(now)
		require.NoError(t, err)
		assert.Empty(t, due)

		stored, err := experiments.GetByID(experiment.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.NextEvaluatedAt)
		assert.True(t, stored.NextEvaluatedAt.Equal(now.Add(24*time.Hour)))
	})

	t.Run("Update com cópia antiga não desfaz o reagendamento", func(t *testing.T) {
		stale, err := experiments.GetByID(experiment.ID)
		require.NoError(t, err)

		rescheduled := now.Add(48 * time.Hour)
		require.NoError(t, experiments.UpdateSchedule(experiment.ID, now, rescheduled))

		past := now.Add(-time.Hour)
		stale.NextEvaluatedAt = &past
		stale.TargetCPL = 12
		require.NoError(t, experiments.Update(stale))

		stored, err := experiments.GetByID(experiment.ID)
		require.NoError(t, err)
		assert.Equal(t, 12.0, stored.TargetCPL)
		require.NotNil(t, stored.NextEvaluatedAt)
		assert.True(t, stored.NextEvaluatedAt.Equal(rescheduled))

		due, err := experiments.ListDueForEvaluation(now)
		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("UpdateNextEvaluation mantém a última avaliação", func(t *testing.T) {
		next := now.Add(6 * time.Hour)
		require.NoError(t, experiments.UpdateNextEvaluation(experiment.ID, next))

		stored, err := experiments.GetByID(experiment.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.LastEvaluatedAt)
		assert.True(t, stored.LastEvaluatedAt.Equal(now))
		assert.True(t, stored.NextEvaluatedAt.Equal(next))

		assert.ErrorIs(t, experiments.UpdateNextEvaluation("EXP404", next), domain.ErrNotFound)
	})

	t.Run("Retomada reativa só as pausas manuais", func(t *testing.T) {
		optimizer := domain.PauseSourceOptimizer
		require.NoError(t, variants.UpdateStatus(seeded[0].ID, domain.VariantStatusPaused, &optimizer, now))

		manual := domain.PauseSourceManual
		paused, err := experiments.UpdateStatusCascade(experiment.ID, domain.ExperimentStatusPaused, domain.VariantCascade{
			From:          domain.VariantStatusActive,
			To:            domain.VariantStatusPaused,
			SetPausedBy:   &manual,
			TransitionsAt: now,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), paused)

		resumed, err := experiments.UpdateStatusCascade(experiment.ID, domain.ExperimentStatusRunning, domain.VariantCascade{
			From:          domain.VariantStatusPaused,
			To:            domain.VariantStatusActive,
			OnlyPausedBy:  &manual,
			TransitionsAt: now,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), resumed)

		stored, err := variants.ListByExperiment(experiment.ID)
		require.NoError(t, err)
		require.Len(t, stored, 3)
		assert.Equal(t, domain.VariantStatusPaused, stored[0].Status)
		require.NotNil(t, stored[0].PausedBy)
		assert.Equal(t, domain.PauseSourceOptimizer, *stored[0].PausedBy)
		assert.Equal(t, domain.VariantStatusActive, stored[1].Status)
		assert.Nil(t, stored[1].PausedBy)
		assert.Equal(t, domain.VariantStatusActive, stored[2].Status)
	})

	t.Run("Cascata em experimento inexistente", func(t *testing.T) {
		_, err := experiments.UpdateStatusCascade("EXP404", domain.ExperimentStatusPaused, domain.VariantCascade{
			From:          domain.VariantStatusActive,
			To:            domain.VariantStatusPaused,
			TransitionsAt: now,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Experimento inexistente retorna nil", func(t *testing.T) {
		stored, err := experiments.GetByID("EXP404")
		assert.NoError(t, err)
		assert.Nil(t, stored)
	})
}

func TestMetricsSnapshotRepository_Integration(t *testing.T) {
	conn := setupTestDB(t)
	now := time.Now().UTC().Truncate(time.Second)

	_, seeded := seedExperiment(t, conn, now)
	snapshots := NewMetricsSnapshotRepository(conn)

	first := domain.NewMetricsSnapshot(seeded[0].ID, domain.RawCounters{Impressions: 1000, Clicks: 10, Leads: 0, Spend: 20}, now)
	second := domain.NewMetricsSnapshot(seeded[0].ID, domain.RawCounters{Impressions: 3000, Clicks: 40, Leads: 4, Spend: 60}, now)
	other := domain.NewMetricsSnapshot(seeded[1].ID, domain.RawCounters{Impressions: 500, Clicks: 5, Leads: 1, Spend: 8}, now)

	for _, snapshot := range []*domain.MetricsSnapshot{first, second, other} {
		require.NoError(t, snapshots.Append(snapshot))
	}
	assert.Less(t, first.ID, second.ID)

	latest, err := snapshots.GetLatest(seeded[0].ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
	require.NotNil(t, latest.CPL)
	assert.InDelta(t, 15.0, *latest.CPL, 1e-9)

	history, err := snapshots.ListByVariant(seeded[0].ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, first.ID, history[0].ID)
	assert.Nil(t, history[0].CPL)

	byVariant, err := snapshots.GetLatestByVariantIDs([]string{seeded[0].ID, seeded[1].ID, seeded[2].ID})
	require.NoError(t, err)
	assert.Len(t, byVariant, 2)
	assert.Equal(t, other.ID, byVariant[seeded[1].ID].ID)

	empty, err := snapshots.GetLatest(seeded[2].ID)
	assert.NoError(t, err)
	assert.Nil(t, empty)
}
