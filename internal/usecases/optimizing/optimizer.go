package optimizing

import (
	"fmt"
	"time"

	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

const (
	reasonNoMetrics = "no metrics available yet"
	reasonLaunched  = "launched to replace underperforming variant"
)

// Decide avalia cada variante ativa do experimento com base no último snapshot.
// Não faz I/O; os efeitos colaterais ficam com o scheduler.
func Decide(experiment *domain.Experiment, variants []*domain.Variant, latest map[string]*domain.MetricsSnapshot) []domain.VariantDecision {
	cfg := experiment.Optimization
	maxAcceptableCPL := experiment.TargetCPL * cfg.CPLMultiplier

	decisions := make([]domain.VariantDecision, 0, len(variants))
	for _, variant := range variants {
		if variant.Status != domain.VariantStatusActive {
			continue
		}

		decisions = append(decisions, decideVariant(variant.ID, experiment.TargetCPL, maxAcceptableCPL, cfg, latest[variant.ID]))
	}

	return decisions
}

func decideVariant(variantID string, targetCPL, maxAcceptableCPL float64, cfg domain.OptimizationConfig, snapshot *domain.MetricsSnapshot) domain.VariantDecision {
	decision := domain.VariantDecision{
		VariantID: variantID,
		Action:    domain.DecisionKeep,
	}

	if snapshot == nil {
		decision.Reason = reasonNoMetrics
		return decision
	}

	decision.Metrics = &domain.DecisionMetrics{
		Impressions: snapshot.Impressions,
		Leads:       snapshot.Leads,
		Spend:       snapshot.Spend,
		CPL:         snapshot.CPL,
	}

	if snapshot.Impressions < cfg.MinImpressionsThreshold {
		decision.Reason = fmt.Sprintf("insufficient impressions: %d < %d", snapshot.Impressions, cfg.MinImpressionsThreshold)
		return decision
	}

	if snapshot.Leads < cfg.MinLeadsForDecision {
		decision.Reason = fmt.Sprintf("insufficient leads: %d < %d", snapshot.Leads, cfg.MinLeadsForDecision)
		return decision
	}

	decision.Metrics.MaxAcceptableCPL = maxAcceptableCPL

	// leads >= MinLeadsForDecision >= 1, então o CPL está definido
	actualCPL := snapshot.Spend / float64(snapshot.Leads)
	if snapshot.CPL != nil {
		actualCPL = *snapshot.CPL
	}

	if cfg.PauseUnderperforming && actualCPL > maxAcceptableCPL {
		decision.Action = domain.DecisionPause
		decision.Reason = fmt.Sprintf("CPL $%.2f exceeds max acceptable $%.2f (target $%.2f x %.2f)",
			actualCPL, maxAcceptableCPL, targetCPL, cfg.CPLMultiplier)
		return decision
	}

	decision.Reason = fmt.Sprintf("CPL $%.2f within threshold $%.2f (target $%.2f)", actualCPL, maxAcceptableCPL, targetCPL)
	return decision
}

// ReplacementCount retorna quantas variantes novas devem ser geradas após as pausas.
// totalVariants conta variantes em qualquer status.
func ReplacementCount(cfg domain.OptimizationConfig, paused, totalVariants int) int {
	if paused <= 0 || !cfg.AutoRelaunch || totalVariants >= cfg.MaxVariantsPerExperiment {
		return 0
	}

	return min(paused, cfg.MaxVariantsPerExperiment-totalVariants)
}

func LaunchDecision(variantID string) domain.VariantDecision {
	return domain.VariantDecision{
		VariantID: variantID,
		Action:    domain.DecisionLaunch,
		Reason:    reasonLaunched,
	}
}

func NextEvaluation(now time.Time, cfg domain.OptimizationConfig) time.Time {
	return now.Add(cfg.EvaluationInterval())
}
