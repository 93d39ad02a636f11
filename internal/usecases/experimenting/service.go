package experimenting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/lock"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/pkg/utils"
)

// ExperimentStore é o único ponto de escrita de experimentos, variantes e produtos
type ExperimentStore interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	GetProduct(productID string) (*domain.Product, error)
	ListProducts() ([]*domain.Product, error)

	CreateExperiment(req *domain.CreateExperimentRequest) (*domain.Experiment, error)
	GetExperiment(experimentID string) (*domain.Experiment, error)
	ListExperiments(statuses []domain.ExperimentStatus) ([]*domain.Experiment, error)
	ListDueForEvaluation(now time.Time) ([]*domain.Experiment, error)
	UpdateExperiment(req *domain.UpdateExperimentRequest) (*domain.Experiment, error)
	UpdateOptimizationConfig(experimentID string, patch *domain.OptimizationConfigPatch) (*domain.Experiment, error)
	PauseExperiment(experimentID string) (*domain.Experiment, error)
	ResumeExperiment(experimentID string) (*domain.Experiment, error)
	Reschedule(experimentID string, lastEvaluatedAt, nextEvaluatedAt time.Time) error

	CreateVariant(req *domain.CreateVariantRequest) (*domain.Variant, error)
	GetVariant(variantID string) (*domain.Variant, error)
	ListVariants(experimentID string) ([]*domain.Variant, error)
	ListVariantsByStatus(statuses []domain.VariantStatus) ([]*domain.Variant, error)
	PauseVariant(variantID string, source domain.PauseSource) (*domain.Variant, error)
	ActivateVariant(variantID string) (*domain.Variant, error)
	DeleteVariant(variantID string) (*domain.Variant, error)
	SetVariantExternalIDs(variantID string, external domain.ExternalAdIDs) error
}

// writeLeaseTTL limita quanto tempo uma alteração de experimento segura a chave do avaliador
const writeLeaseTTL = 30 * time.Second

type Service struct {
	experimentRepo repository.ExperimentRepository
	variantRepo    repository.VariantRepository
	productRepo    repository.ProductRepository
	locker         lock.Locker
	now            func() time.Time
	generateID     func() (string, error)
}

func NewService(
	experimentRepo repository.ExperimentRepository,
	variantRepo repository.VariantRepository,
	productRepo repository.ProductRepository,
	locker lock.Locker,
) ExperimentStore {
	return &Service{
		experimentRepo: experimentRepo,
		variantRepo:    variantRepo,
		productRepo:    productRepo,
		locker:         locker,
		now:            time.Now,
		generateID:     utils.GenerateID,
	}
}

// withExperimentLease executa fn segurando a mesma chave da avaliação, para que status
// e agenda nunca sejam gravados no meio de uma avaliação do experimento
func (s *Service) withExperimentLease(experimentID string, fn func() error) error {
	ctx := context.Background()

	lease, acquired, err := s.locker.TryLock(ctx, lock.ExperimentKey(experimentID), writeLeaseTTL)
	if err != nil {
		return fmt.Errorf("erro ao adquirir lease do experimento: %w", err)
	}
	if !acquired {
		return domain.NewEvaluationInProgressError(experimentID)
	}
	defer func() {
		if err := lease.Release(ctx); err != nil {
			logrus.WithFields(logrus.Fields{
				"experiment_id": experimentID,
				"error":         err.Error(),
			}).Warn("Erro ao liberar lease do experimento")
		}
	}()

	return fn()
}

func (s *Service) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if err := domain.ValidateStruct(product); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do produto: %w", err)
	}

	product.ID = id
	product.CreatedAt = s.now()

	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("erro ao salvar produto: %w", err)
	}

	return product, nil
}

func (s *Service) GetProduct(productID string) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	if product == nil {
		return nil, domain.NewNotFoundError("product", productID)
	}
	return product, nil
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	return s.productRepo.List()
}

func (s *Service) CreateExperiment(req *domain.CreateExperimentRequest) (*domain.Experiment, error) {
	if req == nil {
		return nil, domain.NewValidationError("request body is required")
	}

	now := s.now()
	experiment := &domain.Experiment{
		ProductID:    req.ProductID,
		TotalBudget:  req.TotalBudget,
		DailyBudget:  req.DailyBudget,
		TargetCPL:    req.TargetCPL,
		MinLeads:     req.MinLeads,
		Optimization: req.Optimization.ApplyTo(domain.DefaultOptimizationConfig()),
		Status:       domain.ExperimentStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := domain.ValidateStruct(experiment); err != nil {
		return nil, err
	}

	if _, err := s.GetProduct(req.ProductID); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do experimento: %w", err)
	}
	experiment.ID = id

	if err := s.experimentRepo.Create(experiment); err != nil {
		return nil, fmt.Errorf("erro ao salvar experimento: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"experiment_id":        experiment.ID,
		"product_id":           experiment.ProductID,
		"optimization_enabled": experiment.Optimization.Enabled,
	}).Info("Experimento criado")

	return experiment, nil
}

func (s *Service) GetExperiment(experimentID string) (*domain.Experiment, error) {
	if experimentID == "" {
		return nil, domain.NewValidationError("experiment id is required")
	}

	experiment, err := s.experimentRepo.GetByID(experimentID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar experimento: %w", err)
	}
	if experiment == nil {
		return nil, domain.NewExperimentNotFoundError(experimentID)
	}

	return experiment, nil
}

func (s *Service) ListExperiments(statuses []domain.ExperimentStatus) ([]*domain.Experiment, error) {
	for _, status := range statuses {
		if !status.IsValid() {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid experiment status %q", status))
		}
	}

	return s.experimentRepo.List(statuses)
}

func (s *Service) ListDueForEvaluation(now time.Time) ([]*domain.Experiment, error) {
	return s.experimentRepo.ListDueForEvaluation(now)
}

// UpdateExperiment altera orçamento, limiares e status; pausa e retomada só passam por PauseExperiment/ResumeExperiment
func (s *Service) UpdateExperiment(req *domain.UpdateExperimentRequest) (*domain.Experiment, error) {
	if req == nil {
		return nil, domain.NewValidationError("request body is required")
	}

	var updated *domain.Experiment
	err := s.withExperimentLease(req.ID, func() error {
		var err error
		updated, err = s.updateExperiment(req)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) updateExperiment(req *domain.UpdateExperimentRequest) (*domain.Experiment, error) {
	experiment, err := s.GetExperiment(req.ID)
	if err != nil {
		return nil, err
	}

	if req.TotalBudget != nil {
		experiment.TotalBudget = *req.TotalBudget
	}
	if req.DailyBudget != nil {
		experiment.DailyBudget = *req.DailyBudget
	}
	if req.TargetCPL != nil {
		experiment.TargetCPL = *req.TargetCPL
	}
	if req.MinLeads != nil {
		experiment.MinLeads = *req.MinLeads
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid experiment status %q", *req.Status))
		}
		if !domain.CanTransitionExperiment(experiment.Status, *req.Status) {
			return nil, domain.NewInvalidTransitionError(string(experiment.Status), string(*req.Status))
		}
		experiment.Status = *req.Status
	}

	if err := domain.ValidateStruct(experiment); err != nil {
		return nil, err
	}

	experiment.UpdatedAt = s.now()
	if err := s.experimentRepo.Update(experiment); err != nil {
		return nil, fmt.Errorf("erro ao atualizar experimento: %w", err)
	}

	return experiment, nil
}

// UpdateOptimizationConfig revalida os limites e reagenda quando o intervalo muda com a otimização habilitada
func (s *Service) UpdateOptimizationConfig(experimentID string, patch *domain.OptimizationConfigPatch) (*domain.Experiment, error) {
	if patch == nil {
		return nil, domain.NewValidationError("optimization config is required")
	}

	var updated *domain.Experiment
	err := s.withExperimentLease(experimentID, func() error {
		var err error
		updated, err = s.updateOptimizationConfig(experimentID, patch)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) updateOptimizationConfig(experimentID string, patch *domain.OptimizationConfigPatch) (*domain.Experiment, error) {
	experiment, err := s.GetExperiment(experimentID)
	if err != nil {
		return nil, err
	}

	previous := experiment.Optimization
	updated := patch.ApplyTo(previous)

	if err := domain.ValidateStruct(updated); err != nil {
		return nil, err
	}

	now := s.now()
	reschedule := updated.Enabled && updated.EvaluationIntervalHours != previous.EvaluationIntervalHours

	experiment.Optimization = updated
	experiment.UpdatedAt = now

	if err := s.experimentRepo.Update(experiment); err != nil {
		return nil, fmt.Errorf("erro ao atualizar configuração de otimização: %w", err)
	}

	if reschedule {
		base := now
		if experiment.LastEvaluatedAt != nil {
			base = *experiment.LastEvaluatedAt
		}
		next := base.Add(updated.EvaluationInterval())

		if err := s.experimentRepo.UpdateNextEvaluation(experimentID, next); err != nil {
			return nil, fmt.Errorf("erro ao reagendar experimento: %w", err)
		}
		experiment.NextEvaluatedAt = &next
	}

	logrus.WithFields(logrus.Fields{
		"experiment_id":     experimentID,
		"enabled":           updated.Enabled,
		"interval_hours":    updated.EvaluationIntervalHours,
		"next_evaluated_at": experiment.NextEvaluatedAt,
	}).Info("Configuração de otimização atualizada")

	return experiment, nil
}

// PauseExperiment pausa o experimento e todas as variantes ativas, marcando a pausa como manual
func (s *Service) PauseExperiment(experimentID string) (*domain.Experiment, error) {
	var paused *domain.Experiment
	err := s.withExperimentLease(experimentID, func() error {
		var err error
		paused, err = s.pauseExperiment(experimentID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return paused, nil
}

func (s *Service) pauseExperiment(experimentID string) (*domain.Experiment, error) {
	experiment, err := s.GetExperiment(experimentID)
	if err != nil {
		return nil, err
	}

	if experiment.Status != domain.ExperimentStatusRunning {
		return nil, domain.NewInvalidTransitionError(string(experiment.Status), string(domain.ExperimentStatusPaused))
	}

	manual := domain.PauseSourceManual
	now := s.now()

	affected, err := s.experimentRepo.UpdateStatusCascade(experimentID, domain.ExperimentStatusPaused, domain.VariantCascade{
		From:          domain.VariantStatusActive,
		To:            domain.VariantStatusPaused,
		SetPausedBy:   &manual,
		TransitionsAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao pausar experimento: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"experiment_id":   experimentID,
		"variants_paused": affected,
	}).Info("Experimento pausado")

	experiment.Status = domain.ExperimentStatusPaused
	experiment.UpdatedAt = now
	return experiment, nil
}

// ResumeExperiment retoma o experimento e reativa apenas as variantes pausadas manualmente
func (s *Service) ResumeExperiment(experimentID string) (*domain.Experiment, error) {
	var resumed *domain.Experiment
	err := s.withExperimentLease(experimentID, func() error {
		var err error
		resumed, err = s.resumeExperiment(experimentID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return resumed, nil
}

func (s *Service) resumeExperiment(experimentID string) (*domain.Experiment, error) {
	experiment, err := s.GetExperiment(experimentID)
	if err != nil {
		return nil, err
	}

	if experiment.Status != domain.ExperimentStatusPaused {
		return nil, domain.NewInvalidTransitionError(string(experiment.Status), string(domain.ExperimentStatusRunning))
	}

	manual := domain.PauseSourceManual
	now := s.now()

	affected, err := s.experimentRepo.UpdateStatusCascade(experimentID, domain.ExperimentStatusRunning, domain.VariantCascade{
		From:          domain.VariantStatusPaused,
		To:            domain.VariantStatusActive,
		OnlyPausedBy:  &manual,
		TransitionsAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao retomar experimento: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"experiment_id":        experimentID,
		"variants_reactivated": affected,
	}).Info("Experimento retomado")

	experiment.Status = domain.ExperimentStatusRunning
	experiment.UpdatedAt = now
	return experiment, nil
}

func (s *Service) Reschedule(experimentID string, lastEvaluatedAt, nextEvaluatedAt time.Time) error {
	return s.experimentRepo.UpdateSchedule(experimentID, lastEvaluatedAt, nextEvaluatedAt)
}
