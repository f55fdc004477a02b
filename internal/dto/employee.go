package dto

import (
	"recruithub/internal/core"
	"recruithub/internal/database/mongodb/model"
	"time"
)

// MigrateDto 將 HIRED 表單轉入員工名冊
type MigrateDto struct {
	// 不帶則依部門前綴自動產生
	EmployeeID       string            `json:"employeeId,omitempty" binding:"omitempty,max=20"`
	HiredPosition    core.Position     `json:"hiredPosition" binding:"required"`
	Department       core.Department   `json:"department" binding:"required"`
	ContractType     core.ContractType `json:"contractType" binding:"required"`
	ShiftPattern     core.ShiftPattern `json:"shiftPattern" binding:"required"`
	BasicSalary      int64             `json:"basicSalary" binding:"required,min=0"`
	SupervisorID     *string           `json:"supervisorId,omitempty"`
	StartDate        time.Time         `json:"startDate" binding:"required"`
	ProbationEndDate *time.Time        `json:"probationEndDate,omitempty"`
	// 沒給試用期結束日時才生效；預設 PERMANENT
	EmploymentStatus *core.EmploymentStatus `json:"employmentStatus,omitempty"`
}

// UpdateEmployeeDto 部分更新；僅允許列出的欄位
type UpdateEmployeeDto struct {
	HiredPosition    *core.Position         `json:"hiredPosition,omitempty"`
	Department       *core.Department       `json:"department,omitempty"`
	EmploymentStatus *core.EmploymentStatus `json:"employmentStatus,omitempty"`
	ContractType     *core.ContractType     `json:"contractType,omitempty"`
	ShiftPattern     *core.ShiftPattern     `json:"shiftPattern,omitempty"`
	BasicSalary      *int64                 `json:"basicSalary,omitempty" binding:"omitempty,min=0"`
	ProbationEndDate *time.Time             `json:"probationEndDate,omitempty"`
}

// AssignSupervisorDto 指派或清除直屬主管（null = 清除）
type AssignSupervisorDto struct {
	SupervisorID *string `json:"supervisorId"`
}

// DeactivateDto 停用（離職）；不帶 terminationDate 以當下時間為準
type DeactivateDto struct {
	TerminationDate   *time.Time `json:"terminationDate,omitempty"`
	TerminationReason string     `json:"terminationReason" binding:"required,max=255"`
}

// ListEmployeeQuery 員工名冊列表篩選
type ListEmployeeQuery struct {
	Department       string `form:"department"`
	Position         string `form:"position"`
	EmploymentStatus string `form:"employmentStatus"`
	ContractType     string `form:"contractType"`
	ShiftPattern     string `form:"shiftPattern"`
	Active           *bool  `form:"active"`
	SalaryMin        int64  `form:"salaryMin" binding:"omitempty,min=0"`
	SalaryMax        int64  `form:"salaryMax" binding:"omitempty,min=0"`
	StartedFrom      string `form:"startedFrom"`
	StartedTo        string `form:"startedTo"`
	EmployeeID       string `form:"employeeId"`
	Page             int64  `form:"page,default=1" binding:"omitempty,min=1"`
	Size             int64  `form:"size,default=20" binding:"omitempty,min=1,max=100"`
}

// EmployeeGraphDto 單一員工完整關係圖
type EmployeeGraphDto struct {
	Employee     *model.HiredEmployee   `json:"employee"`
	Form         *model.RecruitmentForm `json:"recruitmentForm,omitempty"`
	Supervisor   *model.HiredEmployee   `json:"supervisor,omitempty"`
	Subordinates []*model.HiredEmployee `json:"subordinates"`
}
