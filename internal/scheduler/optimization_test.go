package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/lock"
	lockmocks "github.com/vfg2006/campaign-optimizer-api/infrastructure/lock/mocks"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	expmocks "github.com/vfg2006/campaign-optimizer-api/internal/usecases/experimenting/mocks"
	measmocks "github.com/vfg2006/campaign-optimizer-api/internal/usecases/measuring/mocks"
	optmocks "github.com/vfg2006/campaign-optimizer-api/internal/usecases/optimizing/mocks"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type optimizationMocks struct {
	store      *expmocks.MockExperimentStore
	metrics    *measmocks.MockMetricsStore
	adPlatform *optmocks.MockAdPlatform
	generator  *optmocks.MockVariantGenerator
}

func newTestOptimizationService(t *testing.T) (*OptimizationService, optimizationMocks) {
	ctrl := gomock.NewController(t)

	m := optimizationMocks{
		store:      expmocks.NewMockExperimentStore(ctrl),
		metrics:    measmocks.NewMockMetricsStore(ctrl),
		adPlatform: optmocks.NewMockAdPlatform(ctrl),
		generator:  optmocks.NewMockVariantGenerator(ctrl),
	}

	service := &OptimizationService{
		config: OptimizationSchedulerConfig{
			Enabled:                  true,
			RunTimeout:               time.Minute,
			MaxConcurrentExperiments: 2,
			LeaseTTL:                 time.Minute,
			Objective:                "OUTCOME_LEADS",
		},
		store:      m.store,
		metrics:    m.metrics,
		adPlatform: m.adPlatform,
		generator:  m.generator,
		locker:     lock.NewLocalLocker(),
		now:        func() time.Time { return testNow },
	}

	return service, m
}

func dueExperiment(id string) *domain.Experiment {
	cfg := domain.DefaultOptimizationConfig()
	cfg.Enabled = true

	return &domain.Experiment{
		ID:           id,
		ProductID:    "PRD001",
		DailyBudget:  50,
		TargetCPL:    5,
		Optimization: cfg,
		Status:       domain.ExperimentStatusRunning,
	}
}

func publishedVariant(id string) *domain.Variant {
	return &domain.Variant{
		ID:           id,
		ExperimentID: "EXP001",
		ProductID:    "PRD001",
		Status:       domain.VariantStatusActive,
		External:     domain.ExternalAdIDs{AdID: "ad-" + id},
	}
}

// goodSnapshot tem CPL 4.00 e badSnapshot CPL 15.00 para target 5 x 1.5
func goodSnapshot(variantID string) *domain.MetricsSnapshot {
	return domain.NewMetricsSnapshot(variantID, domain.RawCounters{Impressions: 5000, Clicks: 100, Leads: 10, Spend: 40}, testNow)
}

func badSnapshot(variantID string) *domain.MetricsSnapshot {
	return domain.NewMetricsSnapshot(variantID, domain.RawCounters{Impressions: 5000, Clicks: 100, Leads: 5, Spend: 75}, testNow)
}

func TestOptimizationService_RunBatch(t *testing.T) {
	tests := []struct {
		name     string
		ctx      func() context.Context
		setup    func(m optimizationMocks)
		validate func(t *testing.T, report *domain.BatchReport, err error)
	}{
		{
			name: "Experimento inexistente no meio da rodada não interrompe os demais",
			ctx:  context.Background,
			setup: func(m optimizationMocks) {
				m.store.EXPECT().ListDueForEvaluation(testNow).Return([]*domain.Experiment{
					dueExperiment("EXP001"), dueExperiment("EXP002"), dueExperiment("EXP003"),
				}, nil)

				m.store.EXPECT().GetExperiment("EXP001").Return(dueExperiment("EXP001"), nil)
				m.store.EXPECT().GetExperiment("EXP002").Return(nil, domain.NewExperimentNotFoundError("EXP002"))
				m.store.EXPECT().GetExperiment("EXP003").Return(dueExperiment("EXP003"), nil)

				m.store.EXPECT().ListVariants("EXP001").Return([]*domain.Variant{}, nil)
				m.store.EXPECT().ListVariants("EXP003").Return([]*domain.Variant{}, nil)

				next := testNow.Add(24 * time.Hour)
				m.store.EXPECT().Reschedule("EXP001", testNow, next).Return(nil)
				m.store.EXPECT().Reschedule("EXP003", testNow, next).Return(nil)
			},
			validate: func(t *testing.T, report *domain.BatchReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, report.ExperimentsEvaluated)
				assert.Len(t, report.Results, 2)
				require.Len(t, report.Errors, 1)
				assert.Equal(t, "EXP002", report.Errors[0].ExperimentID)
				assert.Contains(t, report.Errors[0].Message, "EXP002")
				assert.False(t, report.TimedOut)
			},
		},
		{
			name: "Experimento reagendado por outro processo é pulado sem erro",
			ctx:  context.Background,
			setup: func(m optimizationMocks) {
				m.store.EXPECT().ListDueForEvaluation(testNow).Return([]*domain.Experiment{dueExperiment("EXP001")}, nil)

				moved := dueExperiment("EXP001")
				future := testNow.Add(time.Hour)
				moved.NextEvaluatedAt = &future
				m.store.EXPECT().GetExperiment("EXP001").Return(moved, nil)
			},
			validate: func(t *testing.T, report *domain.BatchReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, report.ExperimentsEvaluated)
				assert.Empty(t, report.Errors)
			},
		},
		{
			name: "Contexto expirado não inicia avaliações",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			setup: func(m optimizationMocks) {
				m.store.EXPECT().ListDueForEvaluation(testNow).Return([]*domain.Experiment{dueExperiment("EXP001")}, nil)
			},
			validate: func(t *testing.T, report *domain.BatchReport, err error) {
				require.NoError(t, err)
				assert.True(t, report.TimedOut)
				assert.Equal(t, 0, report.ExperimentsEvaluated)
			},
		},
		{
			name: "Erro ao listar experimentos é retornado",
			ctx:  context.Background,
			setup: func(m optimizationMocks) {
				m.store.EXPECT().ListDueForEvaluation(testNow).Return(nil, errors.New("banco indisponível"))
			},
			validate: func(t *testing.T, report *domain.BatchReport, err error) {
				assert.Nil(t, report)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "banco indisponível")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestOptimizationService(t)
			tt.setup(m)

			report, err := service.RunBatch(tt.ctx())
			tt.validate(t, report, err)
		})
	}
}

func TestOptimizationService_RunBatchJaEmAndamento(t *testing.T) {
	service, _ := newTestOptimizationService(t)
	service.syncRunning = true

	report, err := service.RunBatch(context.Background())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrBatchAlreadyRunning)
}

func TestOptimizationService_EvaluateExperiment(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m optimizationMocks)
		validate func(t *testing.T, result *domain.OptimizationResult, err error)
	}{
		{
			name: "Pausa três e lança apenas duas variantes até o limite do experimento",
			setup: func(m optimizationMocks) {
				experiment := dueExperiment("EXP001")
				m.store.EXPECT().GetExperiment("EXP001").Return(experiment, nil).Times(2)

				variants := make([]*domain.Variant, 0, 8)
				latest := map[string]*domain.MetricsSnapshot{}
				for i := 1; i <= 8; i++ {
					id := fmt.Sprintf("VAR%03d", i)
					variants = append(variants, publishedVariant(id))
					if i <= 3 {
						latest[id] = badSnapshot(id)
					} else {
						latest[id] = goodSnapshot(id)
					}
				}
				m.store.EXPECT().ListVariants("EXP001").Return(variants, nil)
				m.metrics.EXPECT().LatestSnapshots(gomock.Len(8)).Return(latest, nil)

				m.adPlatform.EXPECT().PauseAd(gomock.Any(), gomock.Any()).Return(nil).Times(3)
				m.store.EXPECT().PauseVariant(gomock.Any(), domain.PauseSourceOptimizer).Return(&domain.Variant{}, nil).Times(3)

				product := &domain.Product{ID: "PRD001", Name: "Curso de Go", Concept: "Curso online"}
				m.store.EXPECT().GetProduct("PRD001").Return(product, nil)
				m.generator.EXPECT().Generate(gomock.Any(), product, 2).Return([]domain.CreativeDraft{
					{Headline: "Novo 1", Body: "Corpo 1", CallToAction: "LEARN_MORE"},
					{Headline: "Novo 2", Body: "Corpo 2", CallToAction: "LEARN_MORE"},
				}, nil)

				created := 0
				m.store.EXPECT().CreateVariant(gomock.Any()).DoAndReturn(func(req *domain.CreateVariantRequest) (*domain.Variant, error) {
					assert.Equal(t, domain.VariantStatusActive, req.Status)
					created++
					return &domain.Variant{ID: fmt.Sprintf("NEW%03d", created), ExperimentID: req.ExperimentID, Status: req.Status}, nil
				}).Times(2)
				m.adPlatform.EXPECT().CreateAd(gomock.Any(), gomock.Any(), domain.BudgetOptions{DailyBudget: 50, Objective: "OUTCOME_LEADS"}).
					Return(&domain.ExternalAdIDs{AdID: "ad-new"}, nil).Times(2)
				m.store.EXPECT().SetVariantExternalIDs(gomock.Any(), domain.ExternalAdIDs{AdID: "ad-new"}).Return(nil).Times(2)

				m.store.EXPECT().Reschedule("EXP001", testNow, testNow.Add(24*time.Hour)).Return(nil)
			},
			validate: func(t *testing.T, result *domain.OptimizationResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Success)
				assert.Equal(t, 8, result.VariantsEvaluated)
				assert.Equal(t, 3, result.VariantsPaused)
				assert.Equal(t, 2, result.VariantsLaunched)
				assert.Empty(t, result.Errors)

				launches := 0
				for _, d := range result.Decisions {
					if d.Action == domain.DecisionLaunch {
						launches++
						assert.Equal(t, "launched to replace underperforming variant", d.Reason)
					}
				}
				assert.Equal(t, 2, launches)
				assert.Equal(t, testNow.Add(24*time.Hour), result.NextEvaluationAt)
			},
		},
		{
			name: "Falha do gerador mantém as pausas e não lança nada",
			setup: func(m optimizationMocks) {
				experiment := dueExperiment("EXP001")
				m.store.EXPECT().GetExperiment("EXP001").Return(experiment, nil).Times(2)
				m.store.EXPECT().ListVariants("EXP001").Return([]*domain.Variant{publishedVariant("VAR001"), publishedVariant("VAR002")}, nil)
				m.metrics.EXPECT().LatestSnapshots(gomock.Any()).Return(map[string]*domain.MetricsSnapshot{
					"VAR001": badSnapshot("VAR001"),
					"VAR002": goodSnapshot("VAR002"),
				}, nil)

				m.adPlatform.EXPECT().PauseAd(gomock.Any(), gomock.Any()).Return(nil)
				m.store.EXPECT().PauseVariant("VAR001", domain.PauseSourceOptimizer).Return(&domain.Variant{}, nil)

				m.store.EXPECT().GetProduct("PRD001").Return(&domain.Product{ID: "PRD001"}, nil)
				m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), 1).Return(nil, errors.New("quota excedida"))

				m.store.EXPECT().Reschedule("EXP001", testNow, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.OptimizationResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.VariantsPaused)
				assert.Equal(t, 0, result.VariantsLaunched)
				require.Len(t, result.Errors, 1)
				assert.Contains(t, result.Errors[0], "quota excedida")
				assert.Contains(t, result.Errors[0], domain.ErrExternalService.Error())
			},
		},
		{
			name: "Falha da plataforma ao pausar deixa a variante ativa e segue com as outras",
			setup: func(m optimizationMocks) {
				experiment := dueExperiment("EXP001")
				experiment.Optimization.AutoRelaunch = false
				m.store.EXPECT().GetExperiment("EXP001").Return(experiment, nil).Times(2)
				m.store.EXPECT().ListVariants("EXP001").Return([]*domain.Variant{publishedVariant("VAR001"), publishedVariant("VAR002")}, nil)
				m.metrics.EXPECT().LatestSnapshots(gomock.Any()).Return(map[string]*domain.MetricsSnapshot{
					"VAR001": badSnapshot("VAR001"),
					"VAR002": badSnapshot("VAR002"),
				}, nil)

				m.adPlatform.EXPECT().PauseAd(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *domain.Variant) error {
					if v.ID == "VAR001" {
						return errors.New("timeout na plataforma")
					}
					return nil
				}).Times(2)
				m.store.EXPECT().PauseVariant("VAR002", domain.PauseSourceOptimizer).Return(&domain.Variant{}, nil)

				m.store.EXPECT().Reschedule("EXP001", testNow, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.OptimizationResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.VariantsPaused)
				require.Len(t, result.Decisions, 2)
				assert.Equal(t, domain.DecisionPause, result.Decisions[0].Action)
				assert.Contains(t, result.Decisions[0].Error, "timeout na plataforma")
				assert.Empty(t, result.Decisions[1].Error)
				assert.Len(t, result.Errors, 1)
			},
		},
		{
			name: "Variante sem anúncio publicado é pausada só localmente",
			setup: func(m optimizationMocks) {
				experiment := dueExperiment("EXP001")
				experiment.Optimization.AutoRelaunch = false
				m.store.EXPECT().GetExperiment("EXP001").Return(experiment, nil).Times(2)

				local := publishedVariant("VAR001")
				local.External = domain.ExternalAdIDs{}
				m.store.EXPECT().ListVariants("EXP001").Return([]*domain.Variant{local}, nil)
				m.metrics.EXPECT().LatestSnapshots([]string{"VAR001"}).Return(map[string]*domain.MetricsSnapshot{
					"VAR001": badSnapshot("VAR001"),
				}, nil)

				m.store.EXPECT().PauseVariant("VAR001", domain.PauseSourceOptimizer).Return(&domain.Variant{}, nil)
				m.store.EXPECT().Reschedule("EXP001", testNow, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.OptimizationResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.VariantsPaused)
			},
		},
		{
			name: "Falha ao publicar a nova variante mantém a variante criada",
			setup: func(m optimizationMocks) {
				experiment := dueExperiment("EXP001")
				m.store.EXPECT().GetExperiment("EXP001").Return(experiment, nil).Times(2)
				m.store.EXPECT().ListVariants("EXP001").Return([]*domain.Variant{publishedVariant("VAR001")}, nil)
				m.metrics.EXPECT().LatestSnapshots(gomock.Any()).Return(map[string]*domain.MetricsSnapshot{
					"VAR001": badSnapshot("VAR001"),
				}, nil)

				m.adPlatform.EXPECT().PauseAd(gomock.Any(), gomock.Any()).Return(nil)
				m.store.EXPECT().PauseVariant("VAR001", domain.PauseSourceOptimizer).Return(&domain.Variant{}, nil)
				m.store.EXPECT().GetProduct("PRD001").Return(&domain.Product{ID: "PRD001"}, nil)
				m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), 1).Return([]domain.CreativeDraft{
					{Headline: "Novo", Body: "Corpo", CallToAction: "SIGN_UP"},
				}, nil)
				m.store.EXPECT().CreateVariant(gomock.Any()).Return(&domain.Variant{ID: "NEW001", Status: domain.VariantStatusActive}, nil)
				m.adPlatform.EXPECT().CreateAd(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("conta sem saldo"))

				m.store.EXPECT().Reschedule("EXP001", testNow, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.OptimizationResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.VariantsLaunched)
				require.Len(t, result.Decisions, 2)
				assert.Equal(t, domain.DecisionLaunch, result.Decisions[1].Action)
				assert.Contains(t, result.Decisions[1].Error, "conta sem saldo")
			},
		},
		{
			name: "Otimização desabilitada falha sem efeitos colaterais",
			setup: func(m optimizationMocks) {
				experiment := dueExperiment("EXP001")
				experiment.Optimization.Enabled = false
				m.store.EXPECT().GetExperiment("EXP001").Return(experiment, nil)
			},
			validate: func(t *testing.T, result *domain.OptimizationResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, domain.ErrConfigDisabled)
			},
		},
		{
			name: "Experimento inexistente retorna NotFound",
			setup: func(m optimizationMocks) {
				m.store.EXPECT().GetExperiment("EXP001").Return(nil, domain.NewExperimentNotFoundError("EXP001"))
			},
			validate: func(t *testing.T, result *domain.OptimizationResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, domain.ErrNotFound)
			},
		},
		{
			name: "Ignora o horário agendado na avaliação manual",
			setup: func(m optimizationMocks) {
				experiment := dueExperiment("EXP001")
				future := testNow.Add(6 * time.Hour)
				experiment.NextEvaluatedAt = &future
				m.store.EXPECT().GetExperiment("EXP001").Return(experiment, nil).Times(2)
				m.store.EXPECT().ListVariants("EXP001").Return([]*domain.Variant{publishedVariant("VAR001")}, nil)
				m.metrics.EXPECT().LatestSnapshots(gomock.Any()).Return(map[string]*domain.MetricsSnapshot{}, nil)
				m.store.EXPECT().Reschedule("EXP001", testNow, testNow.Add(24*time.Hour)).Return(nil)
			},
			validate: func(t *testing.T, result *domain.OptimizationResult, err error) {
				require.NoError(t, err)
				require.Len(t, result.Decisions, 1)
				assert.Equal(t, "no metrics available yet", result.Decisions[0].Reason)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestOptimizationService(t)
			tt.setup(m)

			result, err := service.EvaluateExperiment(context.Background(), "EXP001")
			tt.validate(t, result, err)
		})
	}
}

func TestOptimizationService_EvaluateExperimentComLeaseOcupada(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, m := newTestOptimizationService(t)

	locker := lockmocks.NewMockLocker(ctrl)
	service.locker = locker

	m.store.EXPECT().GetExperiment("EXP001").Return(dueExperiment("EXP001"), nil)
	locker.EXPECT().TryLock(gomock.Any(), lock.ExperimentKey("EXP001"), time.Minute).Return(nil, false, nil)

	result, err := service.EvaluateExperiment(context.Background(), "EXP001")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrEvaluationInProgress)
}

func TestOptimizationService_LiberaLeaseAposAvaliacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, m := newTestOptimizationService(t)

	locker := lockmocks.NewMockLocker(ctrl)
	lease := lockmocks.NewMockLease(ctrl)
	service.locker = locker

	m.store.EXPECT().GetExperiment("EXP001").Return(dueExperiment("EXP001"), nil).Times(2)
	locker.EXPECT().TryLock(gomock.Any(), lock.ExperimentKey("EXP001"), time.Minute).Return(lease, true, nil)
	m.store.EXPECT().ListVariants("EXP001").Return([]*domain.Variant{}, nil)
	lease.EXPECT().Refresh(gomock.Any(), time.Minute).Return(nil)
	m.store.EXPECT().Reschedule("EXP001", testNow, gomock.Any()).Return(nil)
	lease.EXPECT().Release(gomock.Any()).Return(nil)

	_, err := service.EvaluateExperiment(context.Background(), "EXP001")
	require.NoError(t, err)
}

func TestOptimizationService_LeasePerdidaNaoReagenda(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, m := newTestOptimizationService(t)

	locker := lockmocks.NewMockLocker(ctrl)
	lease := lockmocks.NewMockLease(ctrl)
	service.locker = locker

	experiment := dueExperiment("EXP001")
	m.store.EXPECT().GetExperiment("EXP001").Return(experiment, nil).Times(2)
	locker.EXPECT().TryLock(gomock.Any(), lock.ExperimentKey("EXP001"), time.Minute).Return(lease, true, nil)
	m.store.EXPECT().ListVariants("EXP001").Return([]*domain.Variant{publishedVariant("VAR001"), publishedVariant("VAR002")}, nil)
	m.metrics.EXPECT().LatestSnapshots(gomock.Any()).Return(map[string]*domain.MetricsSnapshot{
		"VAR001": badSnapshot("VAR001"),
		"VAR002": badSnapshot("VAR002"),
	}, nil)

	// a primeira pausa acontece; a lease expira antes da segunda
	gomock.InOrder(
		lease.EXPECT().Refresh(gomock.Any(), time.Minute).Return(nil),
		lease.EXPECT().Refresh(gomock.Any(), time.Minute).Return(lock.ErrLeaseLost),
	)
	m.adPlatform.EXPECT().PauseAd(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().PauseVariant("VAR001", domain.PauseSourceOptimizer).Return(&domain.Variant{}, nil)
	lease.EXPECT().Release(gomock.Any()).Return(nil)

	result, err := service.EvaluateExperiment(context.Background(), "EXP001")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.VariantsPaused)
	assert.Equal(t, 0, result.VariantsLaunched)
	assert.True(t, result.NextEvaluationAt.IsZero())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], lock.ErrLeaseLost.Error())
}

func TestOptimizationService_ReavaliacaoComMesmasMetricasRepeteDecisoes(t *testing.T) {
	service, m := newTestOptimizationService(t)

	experiment := dueExperiment("EXP001")
	experiment.Optimization.AutoRelaunch = false

	variants := []*domain.Variant{
		publishedVariant("VAR001"),
		publishedVariant("VAR002"),
		publishedVariant("VAR003"),
	}
	latest := map[string]*domain.MetricsSnapshot{
		"VAR001": badSnapshot("VAR001"),
		"VAR002": goodSnapshot("VAR002"),
	}

	m.store.EXPECT().GetExperiment("EXP001").Return(experiment, nil).Times(4)
	m.store.EXPECT().ListVariants("EXP001").Return(variants, nil).Times(2)
	m.metrics.EXPECT().LatestSnapshots(gomock.Len(3)).Return(latest, nil).Times(2)
	m.adPlatform.EXPECT().PauseAd(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.store.EXPECT().PauseVariant("VAR001", domain.PauseSourceOptimizer).Return(&domain.Variant{}, nil).Times(2)
	m.store.EXPECT().Reschedule("EXP001", testNow, testNow.Add(24*time.Hour)).Return(nil).Times(2)

	first, err := service.EvaluateExperiment(context.Background(), "EXP001")
	require.NoError(t, err)

	second, err := service.EvaluateExperiment(context.Background(), "EXP001")
	require.NoError(t, err)

	require.Len(t, first.Decisions, 3)
	assert.Equal(t, first.Decisions, second.Decisions)
	assert.Equal(t, first.VariantsPaused, second.VariantsPaused)
	assert.Equal(t, domain.DecisionPause, first.Decisions[0].Action)
}

func TestOptimizationService_GetStatus(t *testing.T) {
	service, m := newTestOptimizationService(t)
	m.store.EXPECT().ListDueForEvaluation(testNow).Return([]*domain.Experiment{}, nil)

	_, err := service.RunBatch(context.Background())
	require.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 0, status["last_experiments_evaluated"])
	assert.Equal(t, testNow, status["last_sync_completed_at"])
}
