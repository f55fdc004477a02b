package service

import (
	"testing"

	"recruithub/internal/core"
	"recruithub/internal/database/mongodb/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlanRow(t *testing.T) {
	testCases := []struct {
		name       string
		planned    int64
		actual     int64
		variance   int64
		percentage int64
		status     core.PlanStatus
	}{
		{"above target", 3, 5, 2, 67, core.PlanAbove},
		{"below target", 10, 7, -3, -30, core.PlanBelow},
		{"on target", 4, 4, 0, 0, core.PlanOnTarget},
		{"no plan set", 0, 6, 6, 0, core.PlanAbove},
		{"nothing at all", 0, 0, 0, 0, core.PlanOnTarget},
		{"rounding up", 3, 4, 1, 33, core.PlanAbove},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row := buildPlanRow(core.DepartmentIT, tc.planned, tc.actual)
			assert.Equal(t, tc.variance, row.Variance)
			assert.Equal(t, tc.percentage, row.Percentage)
			assert.Equal(t, tc.status, row.Status)
		})
	}
}

func TestBuildPlanVsActualRows(t *testing.T) {
	plans := []*model.HiringPlan{
		{Department: core.DepartmentIT, Planned: 3, Year: 2026},
		{Department: core.DepartmentWarehouse, Planned: 8, Year: 2026},
	}
	actuals := []model.DepartmentCount{
		{Department: core.DepartmentIT, Count: 5},
		{Department: core.DepartmentSecurity, Count: 2},
	}

	rows := buildPlanVsActualRows(plans, actuals)
	require.Len(t, rows, 3)

	byDepartment := map[core.Department]int{}
	for i, row := range rows {
		byDepartment[row.Department] = i
	}

	it := rows[byDepartment[core.DepartmentIT]]
	assert.Equal(t, int64(5), it.Actual)
	assert.Equal(t, int64(2), it.Variance)
	assert.Equal(t, core.PlanAbove, it.Status)

	// 有目標沒實績
	warehouse := rows[byDepartment[core.DepartmentWarehouse]]
	assert.Equal(t, int64(0), warehouse.Actual)
	assert.Equal(t, int64(-8), warehouse.Variance)
	assert.Equal(t, core.PlanBelow, warehouse.Status)

	// 有實績沒目標
	security := rows[byDepartment[core.DepartmentSecurity]]
	assert.Equal(t, int64(0), security.Planned)
	assert.Equal(t, int64(2), security.Actual)
	assert.Equal(t, core.PlanAbove, security.Status)

	// 部門字典序排序
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].Department, rows[i].Department)
	}
}

func TestBuildPlanVsActualRows_Empty(t *testing.T) {
	rows := buildPlanVsActualRows(nil, nil)
	assert.Empty(t, rows)
}
