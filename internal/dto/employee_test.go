package dto

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeactivateDto_TerminationDateOptional(t *testing.T) {
	var req DeactivateDto
	require.NoError(t, binding.JSON.BindBody([]byte(`{"terminationReason":"resigned"}`), &req))
	assert.Nil(t, req.TerminationDate)
	assert.Equal(t, "resigned", req.TerminationReason)
}

func TestDeactivateDto_AcceptsExplicitDate(t *testing.T) {
	var req DeactivateDto
	body := `{"terminationDate":"2026-08-31T00:00:00Z","terminationReason":"contract ended"}`
	require.NoError(t, binding.JSON.BindBody([]byte(body), &req))
	require.NotNil(t, req.TerminationDate)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), req.TerminationDate.UTC())
}

func TestDeactivateDto_RequiresReason(t *testing.T) {
	var req DeactivateDto
	require.Error(t, binding.JSON.BindBody([]byte(`{}`), &req))
}
