package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/experimenting"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
)

func experimentID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do experimento é obrigatório", nil)
		return "", false
	}
	return id, true
}

func CreateExperiment(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateExperimentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		experiment, err := service.CreateExperiment(&req)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar experimento")
			return
		}

		writeJSON(w, http.StatusCreated, experiment)
	})
}

// ListExperiments aceita ?status=running,paused
func ListExperiments(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		statuses := make([]domain.ExperimentStatus, 0)
		if filter := r.URL.Query().Get("status"); filter != "" {
			for _, status := range strings.Split(filter, ",") {
				statuses = append(statuses, domain.ExperimentStatus(strings.TrimSpace(status)))
			}
		}

		experiments, err := service.ListExperiments(statuses)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar experimentos")
			return
		}

		writeJSON(w, http.StatusOK, experiments)
	})
}

func GetExperiment(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := experimentID(w, r)
		if !ok {
			return
		}

		experiment, err := service.GetExperiment(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar experimento")
			return
		}

		writeJSON(w, http.StatusOK, experiment)
	})
}

func UpdateExperiment(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := experimentID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateExperimentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		// Garante que o ID da URL seja usado
		req.ID = id

		experiment, err := service.UpdateExperiment(&req)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar experimento")
			return
		}

		writeJSON(w, http.StatusOK, experiment)
	})
}

func UpdateOptimizationConfig(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := experimentID(w, r)
		if !ok {
			return
		}

		var patch domain.OptimizationConfigPatch
		if !decodeBody(w, r, &patch) {
			return
		}

		experiment, err := service.UpdateOptimizationConfig(id, &patch)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar configuração de otimização")
			return
		}

		writeJSON(w, http.StatusOK, experiment)
	})
}

func PauseExperiment(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := experimentID(w, r)
		if !ok {
			return
		}

		experiment, err := service.PauseExperiment(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao pausar experimento")
			return
		}

		writeJSON(w, http.StatusOK, experiment)
	})
}

func ResumeExperiment(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := experimentID(w, r)
		if !ok {
			return
		}

		experiment, err := service.ResumeExperiment(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao retomar experimento")
			return
		}

		writeJSON(w, http.StatusOK, experiment)
	})
}

// OptimizeExperiment dispara a avaliação imediata de um experimento
func OptimizeExperiment(optimizer Optimizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := experimentID(w, r)
		if !ok {
			return
		}

		logrus.WithField("experiment_id", id).Info("INIT - OptimizeExperiment")

		result, err := optimizer.EvaluateExperiment(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao avaliar experimento")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// RunOptimization executa uma rodada completa de forma síncrona
func RunOptimization(optimizer Optimizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunOptimization")

		report, err := optimizer.RunBatch(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao executar rodada de otimização")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}
