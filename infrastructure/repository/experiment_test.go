package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

func TestUpdateExperimentQuery(t *testing.T) {
	next := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)
	last := time.Date(2025, 3, 9, 11, 0, 0, 0, time.UTC)

	experiment := &domain.Experiment{
		ID:              "EXP001",
		TargetCPL:       12.5,
		Optimization:    domain.DefaultOptimizationConfig(),
		Status:          domain.ExperimentStatusRunning,
		LastEvaluatedAt: &last,
		NextEvaluatedAt: &next,
		UpdatedAt:       time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	query, args, err := updateExperimentQuery(experiment)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE experiments SET"))
	assert.NotContains(t, query, "next_evaluated_at")
	assert.NotContains(t, query, "last_evaluated_at")
	assert.Contains(t, query, "target_cpl = $3")
	assert.Contains(t, args, 12.5)
	assert.NotContains(t, args, &next)
	assert.Equal(t, "EXP001", args[len(args)-1])
}
