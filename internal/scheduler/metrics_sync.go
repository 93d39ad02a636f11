package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/experimenting"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/measuring"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/optimizing"
)

// MetricsSyncConfig representa a configuração do agendador de coleta de métricas
type MetricsSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// MetricsSyncService coleta os contadores dos anúncios publicados e grava snapshots
type MetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              MetricsSyncConfig
	store               experimenting.ExperimentStore
	metrics             measuring.MetricsStore
	adPlatform          optimizing.AdPlatform
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncRecorded    int
}

// NewMetricsSyncService cria uma nova instância do serviço de coleta de métricas
func NewMetricsSyncService(
	store experimenting.ExperimentStore,
	metrics measuring.MetricsStore,
	adPlatform optimizing.AdPlatform,
	appConfig *config.Config,
) *MetricsSyncService {
	syncConfig := MetricsSyncConfig{
		CronSchedule:        appConfig.MetricsSync.CronSchedule,
		RequestDelaySeconds: appConfig.MetricsSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.MetricsSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.MetricsSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de métricas carregada")

	return &MetricsSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		store:      store,
		metrics:    metrics,
		adPlatform: adPlatform,
	}
}

// Start inicia o agendador
func (s *MetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Coleta de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de coleta de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllMetrics(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de coleta de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllMetrics coleta as métricas de todas as variantes ativas publicadas
func (s *MetricsSyncService) syncAllMetrics(ctx context.Context) int {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de métricas já em andamento, ignorando")
		return 0
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	variants, err := s.store.ListVariantsByStatus([]domain.VariantStatus{domain.VariantStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar variantes ativas para coleta de métricas")
		return 0
	}

	if len(variants) == 0 {
		logrus.Info("Nenhuma variante ativa encontrada para coleta de métricas")
		return 0
	}

	recorded := s.processVariants(ctx, variants)

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"variants": len(variants),
		"recorded": recorded,
	}).Info("Coleta de métricas concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncRecorded = recorded
	s.syncMutex.Unlock()

	return recorded
}

// processVariants coleta as variantes com no máximo MaxConcurrentJobs requisições simultâneas
func (s *MetricsSyncService) processVariants(ctx context.Context, variants []*domain.Variant) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var recordedMu sync.Mutex
	recorded := 0

	for _, variant := range variants {
		// Se a variante não foi publicada, não há o que coletar
		if !variant.External.IsPublished() {
			logrus.WithField("variant_id", variant.ID).Debug("Variante sem anúncio externo. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(v *domain.Variant) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if s.processVariant(ctx, v) {
				recordedMu.Lock()
				recorded++
				recordedMu.Unlock()
			}

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(variant)
	}

	wg.Wait()

	return recorded
}

func (s *MetricsSyncService) processVariant(ctx context.Context, variant *domain.Variant) bool {
	counters, err := s.adPlatform.GetAdInsights(ctx, variant.External.AdID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"variant_id": variant.ID,
			"ad_id":      variant.External.AdID,
			"error":      err.Error(),
		}).Error("Erro ao obter métricas do anúncio")
		return false
	}

	if counters == nil {
		logrus.WithFields(logrus.Fields{
			"variant_id": variant.ID,
			"ad_id":      variant.External.AdID,
		}).Warn("Nenhuma métrica obtida para o anúncio")
		return false
	}

	snapshot, err := s.metrics.RecordSnapshot(variant.ID, *counters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"variant_id": variant.ID,
			"error":      err.Error(),
		}).Error("Erro ao gravar snapshot de métricas")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"variant_id":  variant.ID,
		"snapshot_id": snapshot.ID,
		"impressions": counters.Impressions,
		"leads":       counters.Leads,
	}).Info("Snapshot de métricas gravado")

	return true
}

// TriggerManualSync inicia manualmente uma coleta de métricas
func (s *MetricsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando coleta manual de métricas")
	go s.syncAllMetrics(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *MetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_recorded":     s.lastSyncRecorded,
	}
}
