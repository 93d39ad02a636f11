package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/experimenting"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
)

func variantID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da variante é obrigatório", nil)
		return "", false
	}
	return id, true
}

func CreateVariant(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := experimentID(w, r)
		if !ok {
			return
		}

		var req domain.CreateVariantRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ExperimentID = id

		variant, err := service.CreateVariant(&req)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar variante")
			return
		}

		writeJSON(w, http.StatusCreated, variant)
	})
}

func ListVariants(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := experimentID(w, r)
		if !ok {
			return
		}

		variants, err := service.ListVariants(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar variantes")
			return
		}

		writeJSON(w, http.StatusOK, variants)
	})
}

func GetVariant(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := variantID(w, r)
		if !ok {
			return
		}

		variant, err := service.GetVariant(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar variante")
			return
		}

		writeJSON(w, http.StatusOK, variant)
	})
}

// PauseVariant registra uma pausa manual; o otimizador não reativa variantes pausadas assim
func PauseVariant(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := variantID(w, r)
		if !ok {
			return
		}

		variant, err := service.PauseVariant(id, domain.PauseSourceManual)
		if err != nil {
			writeServiceError(w, err, "Erro ao pausar variante")
			return
		}

		writeJSON(w, http.StatusOK, variant)
	})
}

func ActivateVariant(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := variantID(w, r)
		if !ok {
			return
		}

		variant, err := service.ActivateVariant(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao ativar variante")
			return
		}

		writeJSON(w, http.StatusOK, variant)
	})
}

func DeleteVariant(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := variantID(w, r)
		if !ok {
			return
		}

		variant, err := service.DeleteVariant(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao remover variante")
			return
		}

		writeJSON(w, http.StatusOK, variant)
	})
}
