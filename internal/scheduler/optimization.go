package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/lock"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/experimenting"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/measuring"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/optimizing"
	applog "github.com/vfg2006/campaign-optimizer-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// errNotDue indica que outro avaliador já reagendou o experimento
var errNotDue = errors.New("experiment no longer due")

// OptimizationSchedulerConfig representa a configuração do agendador de otimização
type OptimizationSchedulerConfig struct {
	CronSchedule             string
	Enabled                  bool
	RunTimeout               time.Duration
	MaxConcurrentExperiments int
	LeaseTTL                 time.Duration
	Objective                string
}

// OptimizationService agenda e executa as rodadas de otimização dos experimentos
type OptimizationService struct {
	scheduler           *gocron.Scheduler
	config              OptimizationSchedulerConfig
	store               experimenting.ExperimentStore
	metrics             measuring.MetricsStore
	adPlatform          optimizing.AdPlatform
	generator           optimizing.VariantGenerator
	locker              lock.Locker
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.BatchReport
}

// NewOptimizationService cria uma nova instância do serviço de otimização
func NewOptimizationService(
	store experimenting.ExperimentStore,
	metrics measuring.MetricsStore,
	adPlatform optimizing.AdPlatform,
	generator optimizing.VariantGenerator,
	locker lock.Locker,
	appConfig *config.Config,
) *OptimizationService {
	optimizationConfig := OptimizationSchedulerConfig{
		CronSchedule:             appConfig.Optimization.CronSchedule,
		Enabled:                  appConfig.Optimization.Enabled,
		RunTimeout:               appConfig.Optimization.RunTimeout,
		MaxConcurrentExperiments: appConfig.Optimization.MaxConcurrentExperiments,
		LeaseTTL:                 appConfig.Optimization.LeaseTTL,
		Objective:                appConfig.AdPlatform.Objective,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":              optimizationConfig.CronSchedule,
		"enabled":                    optimizationConfig.Enabled,
		"run_timeout":                optimizationConfig.RunTimeout.String(),
		"max_concurrent_experiments": optimizationConfig.MaxConcurrentExperiments,
		"lease_ttl":                  optimizationConfig.LeaseTTL.String(),
	}).Info("Configuração do agendador de otimização carregada")

	return &OptimizationService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     optimizationConfig,
		store:      store,
		metrics:    metrics,
		adPlatform: adPlatform,
		generator:  generator,
		locker:     locker,
		now:        time.Now,
	}
}

// Start inicia o agendador
func (s *OptimizationService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Otimização automática desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de otimização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunBatch(ctx); err != nil {
			logrus.WithError(err).Warn("Rodada agendada de otimização não executada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rodada de otimização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de otimização")
		s.scheduler.Stop()
	}()

	return nil
}

// RunBatch avalia todos os experimentos elegíveis. Falhas de um experimento
// entram no relatório e não interrompem os demais.
func (s *OptimizationService) RunBatch(ctx context.Context) (*domain.BatchReport, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rodada de otimização já em andamento, ignorando")
		return nil, domain.NewBatchAlreadyRunningError()
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	report := &domain.BatchReport{
		Errors:    []domain.ExperimentFailure{},
		Results:   []*domain.OptimizationResult{},
		StartedAt: s.now(),
	}

	ctx, runID := applog.WithRunID(ctx)
	log := logrus.WithField("run_id", runID)

	experiments, err := s.store.ListDueForEvaluation(report.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar experimentos elegíveis: %w", err)
	}

	log.WithField("experiments", len(experiments)).Info("Iniciando rodada de otimização")

	runCtx, cancel := context.WithTimeout(ctx, s.config.RunTimeout)
	defer cancel()

	var (
		mu       sync.Mutex
		timedOut atomic.Bool
		group    errgroup.Group
	)
	group.SetLimit(s.config.MaxConcurrentExperiments)

	for _, experiment := range experiments {
		// após o timeout nenhuma avaliação nova começa
		if runCtx.Err() != nil {
			timedOut.Store(true)
			break
		}

		group.Go(func() error {
			if runCtx.Err() != nil {
				timedOut.Store(true)
				return nil
			}

			result, err := s.evaluate(runCtx, experiment.ID, true)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if errors.Is(err, errNotDue) {
					log.WithField("experiment_id", experiment.ID).Info("Experimento já reavaliado por outro processo, pulando")
					return nil
				}

				log.WithFields(logrus.Fields{
					"experiment_id": experiment.ID,
					"error":         err.Error(),
				}).Error("Erro ao avaliar experimento")

				report.Errors = append(report.Errors, domain.ExperimentFailure{
					ExperimentID: experiment.ID,
					Message:      err.Error(),
				})
				return nil
			}

			report.Results = append(report.Results, result)
			report.ExperimentsEvaluated++
			report.VariantsPaused += result.VariantsPaused
			report.VariantsLaunched += result.VariantsLaunched
			return nil
		})
	}

	// as goroutines nunca retornam erro
	_ = group.Wait()

	report.TimedOut = timedOut.Load()
	report.CompletedAt = s.now()

	log.WithFields(logrus.Fields{
		"duration":              report.CompletedAt.Sub(report.StartedAt).String(),
		"experiments_evaluated": report.ExperimentsEvaluated,
		"variants_paused":       report.VariantsPaused,
		"variants_launched":     report.VariantsLaunched,
		"errors":                len(report.Errors),
		"timed_out":             report.TimedOut,
	}).Info("Rodada de otimização concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = report.CompletedAt
	s.lastReport = report
	s.syncMutex.Unlock()

	return report, nil
}

// EvaluateExperiment avalia um experimento sob demanda, ignorando next_evaluated_at
func (s *OptimizationService) EvaluateExperiment(ctx context.Context, experimentID string) (*domain.OptimizationResult, error) {
	experiment, err := s.store.GetExperiment(experimentID)
	if err != nil {
		return nil, err
	}

	if !experiment.Optimization.Enabled {
		return nil, domain.NewConfigDisabledError(experimentID)
	}

	return s.evaluate(ctx, experimentID, false)
}

// evaluate executa a avaliação completa de um experimento sob lease exclusiva
func (s *OptimizationService) evaluate(ctx context.Context, experimentID string, scheduled bool) (*domain.OptimizationResult, error) {
	// efeitos colaterais já iniciados não são cancelados pelo timeout da rodada
	ctx = context.WithoutCancel(ctx)

	lease, acquired, err := s.locker.TryLock(ctx, lock.ExperimentKey(experimentID), s.config.LeaseTTL)
	if err != nil {
		return nil, fmt.Errorf("erro ao adquirir lease do experimento: %w", err)
	}
	if !acquired {
		return nil, domain.NewEvaluationInProgressError(experimentID)
	}
	defer func() {
		if err := lease.Release(ctx); err != nil {
			logrus.WithFields(logrus.Fields{
				"experiment_id": experimentID,
				"error":         err.Error(),
			}).Warn("Erro ao liberar lease do experimento")
		}
	}()

	experiment, err := s.store.GetExperiment(experimentID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if scheduled && !experiment.IsDue(now) {
		return nil, errNotDue
	}
	if !experiment.Optimization.Enabled {
		return nil, domain.NewConfigDisabledError(experimentID)
	}

	variants, err := s.store.ListVariants(experimentID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar variantes: %w", err)
	}

	variantsByID := make(map[string]*domain.Variant, len(variants))
	activeIDs := make([]string, 0, len(variants))
	for _, variant := range variants {
		variantsByID[variant.ID] = variant
		if variant.Status == domain.VariantStatusActive {
			activeIDs = append(activeIDs, variant.ID)
		}
	}

	latest := map[string]*domain.MetricsSnapshot{}
	if len(activeIDs) > 0 {
		latest, err = s.metrics.LatestSnapshots(activeIDs)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar métricas das variantes: %w", err)
		}
	}

	decisions := optimizing.Decide(experiment, variants, latest)

	result := &domain.OptimizationResult{
		ExperimentID:      experimentID,
		VariantsEvaluated: len(decisions),
		Errors:            []string{},
		EvaluatedAt:       now,
	}

	result.Decisions = decisions

	for i := range decisions {
		decision := &decisions[i]
		if decision.Action != domain.DecisionPause {
			continue
		}

		if err := s.renewLease(ctx, lease); err != nil {
			return s.abandon(experimentID, result, err), nil
		}

		if err := s.pauseVariant(ctx, variantsByID[decision.VariantID]); err != nil {
			decision.Error = err.Error()
			result.Errors = append(result.Errors, fmt.Sprintf("variant %s: %s", decision.VariantID, err.Error()))
			continue
		}
		result.VariantsPaused++
	}

	toGenerate := optimizing.ReplacementCount(experiment.Optimization, result.VariantsPaused, len(variants))
	if toGenerate > 0 {
		if err := s.launchReplacements(ctx, lease, experiment, toGenerate, result); err != nil {
			return s.abandon(experimentID, result, err), nil
		}
	}

	// sem a lease outro avaliador pode já ter assumido; não reagenda por cima dele
	if err := s.renewLease(ctx, lease); err != nil {
		return s.abandon(experimentID, result, err), nil
	}

	next := optimizing.NextEvaluation(now, experiment.Optimization)
	result.NextEvaluationAt = next
	result.Success = true

	if err := s.store.Reschedule(experimentID, now, next); err != nil {
		result.Success = false
		result.Errors = append(result.Errors, fmt.Sprintf("reschedule: %s", err.Error()))
		logrus.WithFields(logrus.Fields{
			"experiment_id": experimentID,
			"error":         err.Error(),
		}).Error("Erro ao reagendar experimento")
	}

	logrus.WithFields(logrus.Fields{
		"experiment_id":      experimentID,
		"variants_evaluated": result.VariantsEvaluated,
		"variants_paused":    result.VariantsPaused,
		"variants_launched":  result.VariantsLaunched,
		"errors":             len(result.Errors),
		"next_evaluation_at": next,
	}).Info("Experimento avaliado")

	return result, nil
}

// renewLease estende a lease antes de cada efeito externo
func (s *OptimizationService) renewLease(ctx context.Context, lease lock.Lease) error {
	if err := lease.Refresh(ctx, s.config.LeaseTTL); err != nil {
		return fmt.Errorf("lease do experimento perdida: %w", err)
	}
	return nil
}

// abandon encerra a avaliação sem reagendar; o que já foi feito continua no resultado
func (s *OptimizationService) abandon(experimentID string, result *domain.OptimizationResult, err error) *domain.OptimizationResult {
	result.Success = false
	result.Errors = append(result.Errors, err.Error())

	logrus.WithFields(logrus.Fields{
		"experiment_id":     experimentID,
		"variants_paused":   result.VariantsPaused,
		"variants_launched": result.VariantsLaunched,
		"error":             err.Error(),
	}).Error("Avaliação interrompida")

	return result
}

// pauseVariant pausa o anúncio externo e só depois grava a pausa; se a plataforma falhar a variante continua ativa
func (s *OptimizationService) pauseVariant(ctx context.Context, variant *domain.Variant) error {
	if variant.External.IsPublished() {
		if err := s.adPlatform.PauseAd(ctx, variant); err != nil {
			return asExternalError("ad_platform", "pause_ad", err)
		}
	}

	if _, err := s.store.PauseVariant(variant.ID, domain.PauseSourceOptimizer); err != nil {
		return err
	}

	return nil
}

// launchReplacements gera e publica as variantes de reposição. Falhas aqui nunca desfazem as pausas;
// só a perda da lease é devolvida como erro.
func (s *OptimizationService) launchReplacements(
	ctx context.Context,
	lease lock.Lease,
	experiment *domain.Experiment,
	toGenerate int,
	result *domain.OptimizationResult,
) error {
	product, err := s.store.GetProduct(experiment.ProductID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("product %s: %s", experiment.ProductID, err.Error()))
		return nil
	}

	if err := s.renewLease(ctx, lease); err != nil {
		return err
	}

	drafts, err := s.generator.Generate(ctx, product, toGenerate)
	if err != nil {
		err = asExternalError("variant_generator", "generate", err)
		result.Errors = append(result.Errors, err.Error())
		logrus.WithFields(logrus.Fields{
			"experiment_id": experiment.ID,
			"requested":     toGenerate,
			"error":         err.Error(),
		}).Error("Erro ao gerar variantes de reposição")
		return nil
	}

	if len(drafts) > toGenerate {
		drafts = drafts[:toGenerate]
	}

	for _, draft := range drafts {
		if err := s.renewLease(ctx, lease); err != nil {
			return err
		}

		variant, err := s.store.CreateVariant(&domain.CreateVariantRequest{
			ExperimentID: experiment.ID,
			Headline:     draft.Headline,
			Body:         draft.Body,
			CallToAction: draft.CallToAction,
			ImageURL:     draft.ImageURL,
			Status:       domain.VariantStatusActive,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("create variant: %s", err.Error()))
			continue
		}

		decision := optimizing.LaunchDecision(variant.ID)
		if err := s.publishVariant(ctx, experiment, variant); err != nil {
			decision.Error = err.Error()
			result.Errors = append(result.Errors, fmt.Sprintf("variant %s: %s", variant.ID, err.Error()))
		}

		result.Decisions = append(result.Decisions, decision)
		result.VariantsLaunched++
	}

	return nil
}

// publishVariant cria o anúncio na plataforma; a variante permanece salva mesmo se a publicação falhar
func (s *OptimizationService) publishVariant(ctx context.Context, experiment *domain.Experiment, variant *domain.Variant) error {
	external, err := s.adPlatform.CreateAd(ctx, variant, domain.BudgetOptions{
		DailyBudget: experiment.DailyBudget,
		Objective:   s.config.Objective,
	})
	if err != nil {
		return asExternalError("ad_platform", "create_ad", err)
	}

	if external == nil {
		return nil
	}

	if err := s.store.SetVariantExternalIDs(variant.ID, *external); err != nil {
		return fmt.Errorf("erro ao salvar ids externos: %w", err)
	}
	variant.External = *external

	return nil
}

func asExternalError(service, op string, err error) error {
	if errors.Is(err, domain.ErrExternalService) {
		return err
	}
	return domain.NewExternalServiceError(service, op, err)
}

// TriggerManualSync inicia manualmente uma rodada de otimização
func (s *OptimizationService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rodada de otimização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando rodada manual de otimização")
	go func() {
		if _, err := s.RunBatch(context.Background()); err != nil {
			logrus.WithError(err).Warn("Rodada manual de otimização não executada")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *OptimizationService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"sync_max_concurrent":    s.config.MaxConcurrentExperiments,
		"sync_run_timeout":       s.config.RunTimeout.String(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastReport != nil {
		status["last_experiments_evaluated"] = s.lastReport.ExperimentsEvaluated
		status["last_variants_paused"] = s.lastReport.VariantsPaused
		status["last_variants_launched"] = s.lastReport.VariantsLaunched
		status["last_errors"] = len(s.lastReport.Errors)
	}

	return status
}
