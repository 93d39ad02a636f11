package domain

import "time"

type DecisionAction string

const (
	DecisionKeep   DecisionAction = "keep"
	DecisionPause  DecisionAction = "pause"
	DecisionLaunch DecisionAction = "launch"
)

// DecisionMetrics são os números usados para justificar uma decisão
type DecisionMetrics struct {
	Impressions      int64    `json:"impressions"`
	Leads            int64    `json:"leads"`
	Spend            float64  `json:"spend"`
	CPL              *float64 `json:"cpl"`
	MaxAcceptableCPL float64  `json:"max_acceptable_cpl,omitempty"`
}

type VariantDecision struct {
	VariantID string           `json:"variant_id"`
	Action    DecisionAction   `json:"action"`
	Reason    string           `json:"reason"`
	Metrics   *DecisionMetrics `json:"metrics,omitempty"`
	Error     string           `json:"error,omitempty"`
}

type OptimizationResult struct {
	ExperimentID      string            `json:"experiment_id"`
	Success           bool              `json:"success"`
	VariantsEvaluated int               `json:"variants_evaluated"`
	VariantsPaused    int               `json:"variants_paused"`
	VariantsLaunched  int               `json:"variants_launched"`
	Decisions         []VariantDecision `json:"decisions"`
	Errors            []string          `json:"errors,omitempty"`
	EvaluatedAt       time.Time         `json:"evaluated_at"`
	NextEvaluationAt  time.Time         `json:"next_evaluation_at"`
}

type ExperimentFailure struct {
	ExperimentID string `json:"experiment_id"`
	Message      string `json:"message"`
}

type BatchReport struct {
	ExperimentsEvaluated int                   `json:"experiments_evaluated"`
	VariantsPaused       int                   `json:"variants_paused"`
	VariantsLaunched     int                   `json:"variants_launched"`
	Errors               []ExperimentFailure   `json:"errors"`
	Results              []*OptimizationResult `json:"results"`
	TimedOut             bool                  `json:"timed_out"`
	StartedAt            time.Time             `json:"started_at"`
	CompletedAt          time.Time             `json:"completed_at"`
}
