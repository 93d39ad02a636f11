package domain

import (
	"errors"
	"fmt"

	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
)

var (
	ErrNotFound             = errors.New("resource not found")
	ErrConfigDisabled       = errors.New("optimization is disabled for this experiment")
	ErrValidation           = errors.New("validation failed")
	ErrExternalService      = errors.New("external service error")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrEvaluationInProgress = errors.New("experiment evaluation already in progress")
	ErrBatchAlreadyRunning  = errors.New("optimization batch already running")
)

// OptimizationError é um erro com contexto adicional para experimentos e variantes
type OptimizationError struct {
	Err          error  // Erro base
	Code         string // Código de erro para API
	ExperimentID string // ID do experimento envolvido (quando aplicável)
	VariantID    string // ID da variante envolvida (quando aplicável)
	Details      string // Detalhes adicionais
}

func (e *OptimizationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OptimizationError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(resource, id string) *OptimizationError {
	return &OptimizationError{
		Err:     ErrNotFound,
		Code:    apiErrors.ErrResourceNotFound,
		Details: fmt.Sprintf("%s %s", resource, id),
	}
}

func NewExperimentNotFoundError(experimentID string) *OptimizationError {
	err := NewNotFoundError("experiment", experimentID)
	err.ExperimentID = experimentID
	return err
}

func NewVariantNotFoundError(variantID string) *OptimizationError {
	err := NewNotFoundError("variant", variantID)
	err.VariantID = variantID
	return err
}

func NewConfigDisabledError(experimentID string) *OptimizationError {
	return &OptimizationError{
		Err:          ErrConfigDisabled,
		Code:         apiErrors.ErrOptimizationDisabled,
		ExperimentID: experimentID,
	}
}

func NewValidationError(details string) *OptimizationError {
	return &OptimizationError{
		Err:     ErrValidation,
		Code:    apiErrors.ErrInvalidRequest,
		Details: details,
	}
}

func NewInvalidTransitionError(from, to string) *OptimizationError {
	return &OptimizationError{
		Err:     ErrInvalidTransition,
		Code:    apiErrors.ErrInvalidTransition,
		Details: fmt.Sprintf("%s -> %s", from, to),
	}
}

func NewEvaluationInProgressError(experimentID string) *OptimizationError {
	return &OptimizationError{
		Err:          ErrEvaluationInProgress,
		Code:         apiErrors.ErrEvaluationInProgress,
		ExperimentID: experimentID,
	}
}

// ExternalServiceError representa uma falha em um colaborador externo (plataforma de anúncios, gerador)
type ExternalServiceError struct {
	Service string
	Op      string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrExternalService.Error(), e.Service, e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() []error {
	return []error{ErrExternalService, e.Err}
}

func NewExternalServiceError(service, op string, err error) *ExternalServiceError {
	return &ExternalServiceError{Service: service, Op: op, Err: err}
}

func NewBatchAlreadyRunningError() *OptimizationError {
	return &OptimizationError{
		Err:  ErrBatchAlreadyRunning,
		Code: apiErrors.ErrBatchAlreadyRunning,
	}
}
