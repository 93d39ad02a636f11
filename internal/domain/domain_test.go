package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionExperiment(t *testing.T) {
	tests := []struct {
		name string
		from ExperimentStatus
		to   ExperimentStatus
		want bool
	}{
		{"Pendente para rodando", ExperimentStatusPending, ExperimentStatusRunning, true},
		{"Pendente para concluído", ExperimentStatusPending, ExperimentStatusCompleted, true},
		{"Rodando para concluído", ExperimentStatusRunning, ExperimentStatusCompleted, true},
		{"Mesmo status", ExperimentStatusPaused, ExperimentStatusPaused, true},
		{"Rodando para pausado só por pausa explícita", ExperimentStatusRunning, ExperimentStatusPaused, false},
		{"Pausado para rodando só por retomada", ExperimentStatusPaused, ExperimentStatusRunning, false},
		{"Concluído é terminal", ExperimentStatusCompleted, ExperimentStatusRunning, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionExperiment(tt.from, tt.to))
		})
	}
}

func TestCanTransitionVariant(t *testing.T) {
	tests := []struct {
		name string
		from VariantStatus
		to   VariantStatus
		want bool
	}{
		{"Rascunho para ativa", VariantStatusDraft, VariantStatusActive, true},
		{"Ativa para pausada", VariantStatusActive, VariantStatusPaused, true},
		{"Pausada para ativa", VariantStatusPaused, VariantStatusActive, true},
		{"Pausada para excluída", VariantStatusPaused, VariantStatusDeleted, true},
		{"Rascunho para pausada", VariantStatusDraft, VariantStatusPaused, false},
		{"Excluída é terminal", VariantStatusDeleted, VariantStatusActive, false},
		{"Ativa para ativa", VariantStatusActive, VariantStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionVariant(tt.from, tt.to))
		})
	}
}

func TestExperiment_IsDue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	running := func(enabled bool, next *time.Time) *Experiment {
		cfg := DefaultOptimizationConfig()
		cfg.Enabled = enabled
		return &Experiment{Status: ExperimentStatusRunning, Optimization: cfg, NextEvaluatedAt: next}
	}

	tests := []struct {
		name       string
		experiment *Experiment
		want       bool
	}{
		{"Nunca avaliado", running(true, nil), true},
		{"Próxima avaliação no passado", running(true, &past), true},
		{"Próxima avaliação exatamente agora", running(true, &now), true},
		{"Próxima avaliação no futuro", running(true, &future), false},
		{"Otimização desabilitada", running(false, nil), false},
		{"Experimento pausado", &Experiment{Status: ExperimentStatusPaused, Optimization: OptimizationConfig{Enabled: true}}, false},
		{"Experimento nulo", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.experiment.IsDue(now))
		})
	}
}

func TestOptimizationConfigPatch_ApplyTo(t *testing.T) {
	base := DefaultOptimizationConfig()

	t.Run("Patch nulo mantém a configuração", func(t *testing.T) {
		var patch *OptimizationConfigPatch
		assert.Equal(t, base, patch.ApplyTo(base))
	})

	t.Run("Aplica apenas os campos informados", func(t *testing.T) {
		enabled := true
		interval := 6
		multiplier := 2.0

		got := (&OptimizationConfigPatch{
			Enabled:                 &enabled,
			EvaluationIntervalHours: &interval,
			CPLMultiplier:           &multiplier,
		}).ApplyTo(base)

		assert.True(t, got.Enabled)
		assert.Equal(t, 6, got.EvaluationIntervalHours)
		assert.Equal(t, 2.0, got.CPLMultiplier)
		assert.Equal(t, base.MinImpressionsThreshold, got.MinImpressionsThreshold)
		assert.Equal(t, base.MaxVariantsPerExperiment, got.MaxVariantsPerExperiment)
		assert.Equal(t, 6*time.Hour, got.EvaluationInterval())
		assert.False(t, base.Enabled, "base não deve ser alterada")
	})
}

func TestNewMetricsSnapshot(t *testing.T) {
	capturedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Calcula métricas derivadas", func(t *testing.T) {
		snapshot := NewMetricsSnapshot("VAR001", RawCounters{Impressions: 2000, Clicks: 50, Leads: 4, Spend: 100}, capturedAt)

		assert.InDelta(t, 0.025, snapshot.CTR, 1e-9)
		require.NotNil(t, snapshot.CPL)
		assert.InDelta(t, 25.0, *snapshot.CPL, 1e-9)
		require.NotNil(t, snapshot.CPC)
		assert.InDelta(t, 2.0, *snapshot.CPC, 1e-9)
		assert.Equal(t, capturedAt, snapshot.CapturedAt)
	})

	t.Run("Sem leads nem cliques", func(t *testing.T) {
		snapshot := NewMetricsSnapshot("VAR001", RawCounters{Impressions: 0, Spend: 10}, capturedAt)

		assert.Zero(t, snapshot.CTR)
		assert.Nil(t, snapshot.CPL)
		assert.Nil(t, snapshot.CPC)
	})
}

func TestRawCounters_HasNegative(t *testing.T) {
	assert.False(t, RawCounters{}.HasNegative())
	assert.True(t, RawCounters{Clicks: -1}.HasNegative())
	assert.True(t, RawCounters{Spend: -0.01}.HasNegative())
}

func TestValidateStruct(t *testing.T) {
	t.Run("Configuração válida", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(DefaultOptimizationConfig()))
	})

	t.Run("Intervalo acima do limite", func(t *testing.T) {
		cfg := DefaultOptimizationConfig()
		cfg.EvaluationIntervalHours = 200

		err := ValidateStruct(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "evaluation_interval_hours must be <= 168")
	})

	t.Run("Campos obrigatórios da variante", func(t *testing.T) {
		err := ValidateStruct(&Variant{Status: VariantStatusActive})
		require.Error(t, err)

		var optErr *OptimizationError
		require.True(t, errors.As(err, &optErr))
		assert.Equal(t, "VAL_001", optErr.Code)
		assert.Contains(t, optErr.Details, "headline is required")
	})
}

func TestExternalServiceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewExternalServiceError("meta", "pause_ad", cause)

	assert.ErrorIs(t, err, ErrExternalService)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "external service error: meta pause_ad: connection refused", err.Error())
}
