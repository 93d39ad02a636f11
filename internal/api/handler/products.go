package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/experimenting"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
)

func CreateProduct(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var product domain.Product
		if !decodeBody(w, r, &product) {
			return
		}

		created, err := service.CreateProduct(&product)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar produto")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func ListProducts(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts()
		if err != nil {
			writeServiceError(w, err, "Erro ao listar produtos")
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

func GetProduct(service experimenting.ExperimentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto é obrigatório", nil)
			return
		}

		product, err := service.GetProduct(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar produto")
			return
		}

		writeJSON(w, http.StatusOK, product)
	})
}
