package domain

import "time"

const (
	DefaultEvaluationIntervalHours  = 24
	DefaultMinImpressionsThreshold  = 1000
	DefaultCPLMultiplier            = 1.5
	DefaultMinLeadsForDecision      = 5
	DefaultMaxVariantsPerExperiment = 10
)

type OptimizationConfig struct {
	Enabled                  bool    `json:"enabled"`
	EvaluationIntervalHours  int     `json:"evaluation_interval_hours" validate:"min=1,max=168"`
	MinImpressionsThreshold  int64   `json:"min_impressions_threshold" validate:"min=100"`
	CPLMultiplier            float64 `json:"cpl_multiplier" validate:"min=1"`
	MinLeadsForDecision      int64   `json:"min_leads_for_decision" validate:"min=1"`
	AutoRelaunch             bool    `json:"auto_relaunch"`
	MaxVariantsPerExperiment int     `json:"max_variants_per_experiment" validate:"min=1,max=20"`
	PauseUnderperforming     bool    `json:"pause_underperforming"`
}

func DefaultOptimizationConfig() OptimizationConfig {
	return OptimizationConfig{
		Enabled:                  false,
		EvaluationIntervalHours:  DefaultEvaluationIntervalHours,
		MinImpressionsThreshold:  DefaultMinImpressionsThreshold,
		CPLMultiplier:            DefaultCPLMultiplier,
		MinLeadsForDecision:      DefaultMinLeadsForDecision,
		AutoRelaunch:             true,
		MaxVariantsPerExperiment: DefaultMaxVariantsPerExperiment,
		PauseUnderperforming:     true,
	}
}

// EvaluationInterval retorna o intervalo entre avaliações como time.Duration
func (c OptimizationConfig) EvaluationInterval() time.Duration {
	return time.Duration(c.EvaluationIntervalHours) * time.Hour
}

// OptimizationConfigPatch representa uma atualização parcial da configuração
type OptimizationConfigPatch struct {
	Enabled                  *bool    `json:"enabled,omitempty"`
	EvaluationIntervalHours  *int     `json:"evaluation_interval_hours,omitempty"`
	MinImpressionsThreshold  *int64   `json:"min_impressions_threshold,omitempty"`
	CPLMultiplier            *float64 `json:"cpl_multiplier,omitempty"`
	MinLeadsForDecision      *int64   `json:"min_leads_for_decision,omitempty"`
	AutoRelaunch             *bool    `json:"auto_relaunch,omitempty"`
	MaxVariantsPerExperiment *int     `json:"max_variants_per_experiment,omitempty"`
	PauseUnderperforming     *bool    `json:"pause_underperforming,omitempty"`
}

// ApplyTo retorna uma cópia de base com os campos preenchidos do patch
func (p *OptimizationConfigPatch) ApplyTo(base OptimizationConfig) OptimizationConfig {
	if p == nil {
		return base
	}

	if p.Enabled != nil {
		base.Enabled = *p.Enabled
	}
	if p.EvaluationIntervalHours != nil {
		base.EvaluationIntervalHours = *p.EvaluationIntervalHours
	}
	if p.MinImpressionsThreshold != nil {
		base.MinImpressionsThreshold = *p.MinImpressionsThreshold
	}
	if p.CPLMultiplier != nil {
		base.CPLMultiplier = *p.CPLMultiplier
	}
	if p.MinLeadsForDecision != nil {
		base.MinLeadsForDecision = *p.MinLeadsForDecision
	}
	if p.AutoRelaunch != nil {
		base.AutoRelaunch = *p.AutoRelaunch
	}
	if p.MaxVariantsPerExperiment != nil {
		base.MaxVariantsPerExperiment = *p.MaxVariantsPerExperiment
	}
	if p.PauseUnderperforming != nil {
		base.PauseUnderperforming = *p.PauseUnderperforming
	}

	return base
}
