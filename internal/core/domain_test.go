package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to RecruitmentStatus }{
		{StatusPending, StatusOnProgress},
		{StatusPending, StatusRejected},
		{StatusPending, StatusCancelled},
		{StatusOnProgress, StatusInterview},
		{StatusOnProgress, StatusRejected},
		{StatusOnProgress, StatusCancelled},
		{StatusInterview, StatusCompleted},
		{StatusInterview, StatusRejected},
		{StatusCompleted, StatusHired},
		{StatusCompleted, StatusRejected},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to RecruitmentStatus }{
		{StatusPending, StatusInterview},
		{StatusPending, StatusHired},
		{StatusOnProgress, StatusHired},
		{StatusInterview, StatusCancelled},
		{StatusCompleted, StatusCancelled},
		{StatusHired, StatusPending},
		{StatusRejected, StatusOnProgress},
		{StatusCancelled, StatusPending},
		{StatusPending, StatusPending},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestTerminalStatusesHaveNoTransitions(t *testing.T) {
	for _, status := range []RecruitmentStatus{StatusHired, StatusRejected, StatusCancelled} {
		assert.Empty(t, StatusTransitions[status])
	}
}

func TestDepartmentPrefixesCoverAllDepartments(t *testing.T) {
	departments := []Department{
		DepartmentHR, DepartmentFinance, DepartmentIT, DepartmentOperations,
		DepartmentMarketing, DepartmentWarehouse, DepartmentSecurity,
	}
	for _, department := range departments {
		prefix, ok := DepartmentPrefixes[department]
		assert.True(t, ok, "missing prefix for %s", department)
		assert.NotEmpty(t, prefix)
	}
	assert.Len(t, DepartmentPrefixes, len(departments))
}
