package domain

import (
	"time"
)

type ExperimentStatus string

const (
	ExperimentStatusPending   ExperimentStatus = "pending"
	ExperimentStatusRunning   ExperimentStatus = "running"
	ExperimentStatusPaused    ExperimentStatus = "paused"
	ExperimentStatusCompleted ExperimentStatus = "completed"
)

func (s ExperimentStatus) IsValid() bool {
	switch s {
	case ExperimentStatusPending, ExperimentStatusRunning, ExperimentStatusPaused, ExperimentStatusCompleted:
		return true
	}
	return false
}

// experimentTransitions lista as transições permitidas fora de pause/resume.
// running -> paused e paused -> running só acontecem por PauseExperiment/ResumeExperiment.
var experimentTransitions = map[ExperimentStatus][]ExperimentStatus{
	ExperimentStatusPending: {ExperimentStatusRunning, ExperimentStatusCompleted},
	ExperimentStatusRunning: {ExperimentStatusCompleted},
	ExperimentStatusPaused:  {ExperimentStatusCompleted},
}

// CanTransitionExperiment indica se a mudança de status pode ser feita por uma atualização comum
func CanTransitionExperiment(from, to ExperimentStatus) bool {
	if from == to {
		return true
	}

	for _, allowed := range experimentTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

type Experiment struct {
	ID              string             `json:"id"`
	ProductID       string             `json:"product_id" validate:"required"`
	TotalBudget     float64            `json:"total_budget" validate:"gte=0"`
	DailyBudget     float64            `json:"daily_budget" validate:"gte=0"`
	TargetCPL       float64            `json:"target_cpl" validate:"gt=0"`
	MinLeads        int                `json:"min_leads" validate:"gte=0"`
	Optimization    OptimizationConfig `json:"optimization"`
	Status          ExperimentStatus   `json:"status"`
	LastEvaluatedAt *time.Time         `json:"last_evaluated_at"`
	NextEvaluatedAt *time.Time         `json:"next_evaluated_at"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// IsDue indica se o experimento está elegível para avaliação automática em now
func (e *Experiment) IsDue(now time.Time) bool {
	if e == nil {
		return false
	}

	if e.Status != ExperimentStatusRunning || !e.Optimization.Enabled {
		return false
	}

	return e.NextEvaluatedAt == nil || !e.NextEvaluatedAt.After(now)
}

type CreateExperimentRequest struct {
	ProductID    string                  `json:"product_id"`
	TotalBudget  float64                 `json:"total_budget"`
	DailyBudget  float64                 `json:"daily_budget"`
	TargetCPL    float64                 `json:"target_cpl"`
	MinLeads     int                     `json:"min_leads"`
	Optimization *OptimizationConfigPatch `json:"optimization,omitempty"`
}

type UpdateExperimentRequest struct {
	ID          string            `json:"id"`
	TotalBudget *float64          `json:"total_budget,omitempty"`
	DailyBudget *float64          `json:"daily_budget,omitempty"`
	TargetCPL   *float64          `json:"target_cpl,omitempty"`
	MinLeads    *int              `json:"min_leads,omitempty"`
	Status      *ExperimentStatus `json:"status,omitempty"`
}
