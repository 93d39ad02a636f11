package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{code: ErrResourceNotFound, expected: http.StatusNotFound},
		{code: ErrOptimizationDisabled, expected: http.StatusConflict},
		{code: ErrEvaluationInProgress, expected: http.StatusConflict},
		{code: ErrInvalidTransition, expected: http.StatusConflict},
		{code: ErrBatchAlreadyRunning, expected: http.StatusConflict},
		{code: ErrExternalService, expected: http.StatusBadGateway},
		{code: ErrInvalidRequest, expected: http.StatusBadRequest},
		{code: "XYZ_999", expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFor(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrResourceNotFound, "experiment EXP001", map[string]string{"experiment_id": "EXP001"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "RES_001", body["code"])
	assert.Equal(t, "experiment EXP001", body["message"])
	assert.Equal(t, map[string]any{"experiment_id": "EXP001"}, body["details"])
}
