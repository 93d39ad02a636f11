package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeOptimization = "optimization"
	CronJobTypeMetrics      = "metrics"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	OptimizationService CronService
	MetricsSyncService  CronService
}

// RunCronJob dispara manualmente um job em segundo plano
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logrus.WithField("type", cronType).Info("INIT - RunCronJob")

		switch cronType {
		case CronJobTypeOptimization:
			if services.OptimizationService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de otimização não disponível", nil)
				return
			}
			services.OptimizationService.TriggerManualSync()

		case CronJobTypeMetrics:
			if services.MetricsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de coleta de métricas não disponível", nil)
				return
			}
			services.MetricsSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.MetricsSyncService != nil {
				services.MetricsSyncService.TriggerManualSync()
			}
			if services.OptimizationService != nil {
				services.OptimizationService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: optimization, metrics, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.OptimizationService != nil {
			status[CronJobTypeOptimization] = services.OptimizationService.GetStatus()
		}
		if services.MetricsSyncService != nil {
			status[CronJobTypeMetrics] = services.MetricsSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
