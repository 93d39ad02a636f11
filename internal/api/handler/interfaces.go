package handler

import (
	"context"

	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

// Optimizer é a parte do agendador de otimização exposta pela API
type Optimizer interface {
	RunBatch(ctx context.Context) (*domain.BatchReport, error)
	EvaluateExperiment(ctx context.Context, experimentID string) (*domain.OptimizationResult, error)
}

// CronService é um job agendado que pode ser disparado manualmente
type CronService interface {
	TriggerManualSync()
	GetStatus() map[string]any
}
