package handler

import (
	"time"

	"recruithub/internal/dto"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/pkg/response"
	"recruithub/internal/service"
	"recruithub/internal/telemetry"
	"recruithub/utils/validate"

	"github.com/gin-gonic/gin"
)

// StatisticsHandler 儀表板與 plan-vs-actual
type StatisticsHandler struct {
	trace             *telemetry.Trace
	statisticsService *service.StatisticsService
}

func NewStatisticsHandler(trace *telemetry.Trace, statisticsService *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{trace: trace, statisticsService: statisticsService}
}

// Recruitments 招募儀表板
func (h *StatisticsHandler) Recruitments(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	stats, err := h.statisticsService.RecruitmentStats(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, stats)
}

// Employees 員工儀表板
func (h *StatisticsHandler) Employees(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	stats, err := h.statisticsService.EmployeeStats(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, stats)
}

// PlanVsActual 年度聘用目標對照實際在職人數；?year= 缺省為今年
func (h *StatisticsHandler) PlanVsActual(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	year := int(getInt64Query(c, "year", int64(time.Now().UTC().Year())))
	if year < 2000 || year > 2100 {
		response.AbortWithError(c, cErr.BadRequestParams("year must be between 2000 and 2100"))
		return
	}

	result, err := h.statisticsService.PlanVsActual(ctx, year)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result)
}

// UpsertHiringPlan 設定部門年度聘用目標
func (h *StatisticsHandler) UpsertHiringPlan(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	principal, ok := getPrincipal(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("missing credentials"))
		return
	}

	var req dto.UpsertHiringPlanDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	plan, err := h.statisticsService.UpsertHiringPlan(ctx, &req, principal)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, plan)
}
