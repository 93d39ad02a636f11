package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody decodifica o corpo JSON; em caso de erro já escreve a resposta 400
func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}
	return true
}

// writeServiceError traduz os erros de domínio para o formato padrão da API
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var optErr *domain.OptimizationError
	if errors.As(err, &optErr) {
		var details map[string]string
		if optErr.ExperimentID != "" || optErr.VariantID != "" {
			details = map[string]string{}
			if optErr.ExperimentID != "" {
				details["experiment_id"] = optErr.ExperimentID
			}
			if optErr.VariantID != "" {
				details["variant_id"] = optErr.VariantID
			}
		}
		apiErrors.WriteError(w, optErr.Code, optErr.Error(), details)
		return
	}

	var extErr *domain.ExternalServiceError
	if errors.As(err, &extErr) {
		logrus.WithFields(logrus.Fields{
			"service": extErr.Service,
			"op":      extErr.Op,
			"error":   extErr.Err.Error(),
		}).Error("Falha em serviço externo")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, extErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
