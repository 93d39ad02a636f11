package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/measuring"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
)

const defaultTrendWindow = 5

type aggregateRequest struct {
	VariantIDs []string `json:"variant_ids"`
}

func RecordSnapshot(service measuring.MetricsStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := variantID(w, r)
		if !ok {
			return
		}

		var counters domain.RawCounters
		if !decodeBody(w, r, &counters) {
			return
		}

		snapshot, err := service.RecordSnapshot(id, counters)
		if err != nil {
			writeServiceError(w, err, "Erro ao registrar métricas")
			return
		}

		writeJSON(w, http.StatusCreated, snapshot)
	})
}

func MetricsHistory(service measuring.MetricsStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := variantID(w, r)
		if !ok {
			return
		}

		history, err := service.History(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar histórico de métricas")
			return
		}

		writeJSON(w, http.StatusOK, history)
	})
}

func LatestMetrics(service measuring.MetricsStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := variantID(w, r)
		if !ok {
			return
		}

		snapshot, err := service.LatestSnapshot(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar métricas")
			return
		}
		if snapshot == nil {
			writeServiceError(w, domain.NewNotFoundError("metrics snapshot for variant", id), "")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

// MetricsTrend aceita ?last=N (padrão 5)
func MetricsTrend(service measuring.MetricsStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := variantID(w, r)
		if !ok {
			return
		}

		lastN := defaultTrendWindow
		if raw := r.URL.Query().Get("last"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 2 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro last deve ser um inteiro maior ou igual a 2", nil)
				return
			}
			lastN = parsed
		}

		trend, err := service.Trend(id, lastN)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular tendência")
			return
		}

		writeJSON(w, http.StatusOK, trend)
	})
}

func AggregateMetrics(service measuring.MetricsStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req aggregateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if len(req.VariantIDs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "variant_ids é obrigatório", nil)
			return
		}

		aggregate, err := service.Aggregate(req.VariantIDs)
		if err != nil {
			writeServiceError(w, err, "Erro ao agregar métricas")
			return
		}

		writeJSON(w, http.StatusOK, aggregate)
	})
}
