package dto

import (
	"recruithub/internal/core"
	"recruithub/internal/database/mongodb/model"
)

// 招募儀表板
type RecruitmentStatsDto struct {
	Total        int64                  `json:"total"`
	ByStatus     []model.StatusCount    `json:"byStatus"`
	AgeBuckets   []model.AgeBucketCount `json:"ageBuckets"`
	MonthlyTrend []model.MonthCount     `json:"monthlyTrend"`
}

// 員工儀表板
type EmployeeStatsDto struct {
	ActiveTotal        int64                    `json:"activeTotal"`
	ByDepartment       []model.DepartmentCount  `json:"byDepartment"`
	SalaryByDepartment []model.DepartmentSalary `json:"salaryByDepartment"`
}

// UpsertHiringPlanDto 設定部門年度聘用目標
type UpsertHiringPlanDto struct {
	Department core.Department `json:"department" binding:"required"`
	Position   core.Position   `json:"position,omitempty"`
	Planned    int64           `json:"planned" binding:"required,min=0"`
	Year       int             `json:"year" binding:"required,min=2000,max=2100"`
}

// PlanVsActualRowDto plan-vs-actual 單一部門列
type PlanVsActualRowDto struct {
	Department core.Department `json:"department"`
	Planned    int64           `json:"planned"`
	Actual     int64           `json:"actual"`
	Variance   int64           `json:"variance"`
	Percentage int64           `json:"percentage"`
	Status     core.PlanStatus `json:"status"`
}

type PlanVsActualDto struct {
	Year int                  `json:"year"`
	Rows []PlanVsActualRowDto `json:"rows"`
}
