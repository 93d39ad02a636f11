package experimenting

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

// CreateVariant cria uma variante no experimento; sem status informado ela nasce ativa
func (s *Service) CreateVariant(req *domain.CreateVariantRequest) (*domain.Variant, error) {
	if req == nil {
		return nil, domain.NewValidationError("request body is required")
	}

	status := req.Status
	if status == "" {
		status = domain.VariantStatusActive
	}
	if status != domain.VariantStatusDraft && status != domain.VariantStatusActive {
		return nil, domain.NewValidationError(fmt.Sprintf("variant must be created as draft or active, got %q", status))
	}

	experiment, err := s.GetExperiment(req.ExperimentID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	variant := &domain.Variant{
		ExperimentID: experiment.ID,
		ProductID:    experiment.ProductID,
		Headline:     req.Headline,
		Body:         req.Body,
		CallToAction: req.CallToAction,
		ImageURL:     req.ImageURL,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.External != nil {
		variant.External = *req.External
	}

	if err := domain.ValidateStruct(variant); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da variante: %w", err)
	}
	variant.ID = id

	if err := s.variantRepo.Create(variant); err != nil {
		return nil, fmt.Errorf("erro ao salvar variante: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"experiment_id": variant.ExperimentID,
		"variant_id":    variant.ID,
		"status":        variant.Status,
	}).Info("Variante criada")

	return variant, nil
}

func (s *Service) GetVariant(variantID string) (*domain.Variant, error) {
	if variantID == "" {
		return nil, domain.NewValidationError("variant id is required")
	}

	variant, err := s.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar variante: %w", err)
	}
	if variant == nil {
		return nil, domain.NewVariantNotFoundError(variantID)
	}

	return variant, nil
}

// ListVariants devolve todas as variantes do experimento, inclusive pausadas e removidas
func (s *Service) ListVariants(experimentID string) ([]*domain.Variant, error) {
	if _, err := s.GetExperiment(experimentID); err != nil {
		return nil, err
	}

	return s.variantRepo.ListByExperiment(experimentID)
}

func (s *Service) ListVariantsByStatus(statuses []domain.VariantStatus) ([]*domain.Variant, error) {
	return s.variantRepo.ListByStatus(statuses)
}

func (s *Service) PauseVariant(variantID string, source domain.PauseSource) (*domain.Variant, error) {
	if source != domain.PauseSourceManual && source != domain.PauseSourceOptimizer {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid pause source %q", source))
	}

	return s.transitionVariant(variantID, domain.VariantStatusPaused, &source)
}

func (s *Service) ActivateVariant(variantID string) (*domain.Variant, error) {
	return s.transitionVariant(variantID, domain.VariantStatusActive, nil)
}

func (s *Service) DeleteVariant(variantID string) (*domain.Variant, error) {
	return s.transitionVariant(variantID, domain.VariantStatusDeleted, nil)
}

func (s *Service) SetVariantExternalIDs(variantID string, external domain.ExternalAdIDs) error {
	return s.variantRepo.UpdateExternalIDs(variantID, external)
}

func (s *Service) transitionVariant(variantID string, to domain.VariantStatus, source *domain.PauseSource) (*domain.Variant, error) {
	variant, err := s.GetVariant(variantID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransitionVariant(variant.Status, to) {
		err := domain.NewInvalidTransitionError(string(variant.Status), string(to))
		err.VariantID = variantID
		return nil, err
	}

	now := s.now()
	if err := s.variantRepo.UpdateStatus(variantID, to, source, now); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"variant_id": variantID,
		"from":       variant.Status,
		"to":         to,
	}).Info("Status da variante alterado")

	variant.Status = to
	variant.UpdatedAt = now
	if to == domain.VariantStatusPaused {
		variant.PausedBy = source
		variant.PausedAt = &now
	} else {
		variant.PausedBy = nil
		variant.PausedAt = nil
	}

	return variant, nil
}
