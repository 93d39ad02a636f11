package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/adsandbox"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/copywriter"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/lock"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/internal/api"
	"github.com/vfg2006/campaign-optimizer-api/internal/api/handler"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/scheduler"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/experimenting"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/measuring"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/optimizing"
	applog "github.com/vfg2006/campaign-optimizer-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	applog.Setup(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	experimentRepo := repository.NewExperimentRepository(pgConn)
	variantRepo := repository.NewVariantRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	snapshotRepo := repository.NewMetricsSnapshotRepository(pgConn)

	locker, closeLocker := newLocker(ctx, cfg)
	defer closeLocker()

	store := experimenting.NewService(experimentRepo, variantRepo, productRepo, locker)
	metrics := measuring.NewService(snapshotRepo, variantRepo)

	adPlatform := newAdPlatform(cfg)
	generator := newGenerator(cfg)

	authenticator := authenticating.NewService(cfg)

	optimizationService := scheduler.NewOptimizationService(store, metrics, adPlatform, generator, locker, cfg)
	metricsSyncService := scheduler.NewMetricsSyncService(store, metrics, adPlatform, cfg)

	// Inicia os agendadores em background
	if err := metricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de coleta de métricas")
	} else {
		logrus.Info("Agendador de coleta de métricas iniciado com sucesso")
	}

	if err := optimizationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de otimização")
	} else {
		logrus.Info("Agendador de otimização iniciado com sucesso")
	}

	server := api.New(cfg, api.Services{
		Store:         store,
		Metrics:       metrics,
		Optimizer:     optimizationService,
		Authenticator: authenticator,
		CronJobs: handler.CronJobServices{
			OptimizationService: optimizationService,
			MetricsSyncService:  metricsSyncService,
		},
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newAdPlatform escolhe entre a Meta Marketing API e o sandbox em memória
func newAdPlatform(cfg *config.Config) optimizing.AdPlatform {
	if cfg.AdPlatform.Mode == "meta" {
		logrus.WithField("ad_account_id", cfg.Meta.AdAccountID).Info("Usando a Meta Marketing API como plataforma de anúncios")
		return meta.New(cfg, metaclient.NewClient(cfg))
	}

	logrus.Info("Usando o sandbox de anúncios em memória")
	return adsandbox.New()
}

func newGenerator(cfg *config.Config) optimizing.VariantGenerator {
	if cfg.Generator.Mode == "openai" {
		logrus.WithField("model", cfg.Generator.Model).Info("Usando gerador de criativos via LLM")
		return copywriter.NewOpenAIGenerator(cfg)
	}

	logrus.Info("Usando gerador de criativos por templates")
	return copywriter.NewTemplateGenerator()
}

// newLocker devolve o lock distribuído configurado e a função que o encerra
func newLocker(ctx context.Context, cfg *config.Config) (lock.Locker, func()) {
	if cfg.Lock.Backend != "redis" {
		return lock.NewLocalLocker(), func() {}
	}

	redisLocker, err := lock.NewRedisLocker(ctx, cfg.Lock.RedisAddr, cfg.Lock.RedisPassword, cfg.Lock.RedisDB)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.WithField("addr", cfg.Lock.RedisAddr).Info("Conexão com Redis estabelecida com sucesso")

	return redisLocker, func() {
		if err := redisLocker.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com Redis")
		}
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
