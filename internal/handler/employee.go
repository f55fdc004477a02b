package handler

import (
	"strconv"

	"recruithub/internal/dto"
	"recruithub/internal/pkg/response"
	"recruithub/internal/service"
	"recruithub/internal/telemetry"
	"recruithub/utils/validate"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler 員工名冊管理
type EmployeeHandler struct {
	trace           *telemetry.Trace
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(trace *telemetry.Trace, employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{trace: trace, employeeService: employeeService}
}

// List 名冊列表
func (h *EmployeeHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var query dto.ListEmployeeQuery
	if cause, respErr := validate.BindAndValidate(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employees, total, err := h.employeeService.ListEmployees(ctx, &query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, dto.NewPage(employees, total, query.Page, query.Size))
}

// Get 單一員工 + 來源表單 + 主管 + 在職下屬
func (h *EmployeeHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	graph, err := h.employeeService.GetEmployeeGraph(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, graph)
}

// Update 部分更新
func (h *EmployeeHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, err := h.employeeService.UpdateEmployee(ctx, id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employee)
}

// AssignSupervisor 指派或清除主管（body 帶 null 即清除）
func (h *EmployeeHandler) AssignSupervisor(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.AssignSupervisorDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, err := h.employeeService.AssignSupervisor(ctx, id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employee)
}

// Deactivate 停用；?hard=true 則直接移除
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	hard, _ := strconv.ParseBool(c.Query("hard"))

	req := dto.DeactivateDto{}
	if !hard {
		if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
			end(cause)
			response.AbortWithError(c, respErr)
			return
		}
	}

	if err := h.employeeService.Deactivate(ctx, id, &req, hard); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "employee deactivated successfully")
}

// Restore 復職
func (h *EmployeeHandler) Restore(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, err := h.employeeService.Restore(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employee)
}

// EligibleSupervisors 可指派為主管的人選
func (h *EmployeeHandler) EligibleSupervisors(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employees, err := h.employeeService.EligibleSupervisors(ctx, c.Query("department"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employees)
}
