package service

import (
	"context"
	"math"
	"sort"

	"recruithub/internal/core"
	"recruithub/internal/database/mongodb/model"
	"recruithub/internal/database/mongodb/repository"
	"recruithub/internal/dto"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const monthlyTrendMonths = 12

type StatisticsService struct {
	trace             *telemetry.Trace
	recruitmentRepo   *repository.RecruitmentFormRepository
	hiredEmployeeRepo *repository.HiredEmployeeRepository
	recruiterDataRepo *repository.RecruiterDataRepository
	hiringPlanRepo    *repository.HiringPlanRepository
}

func NewStatisticsService(
	trace *telemetry.Trace,
	recruitmentRepo *repository.RecruitmentFormRepository,
	hiredEmployeeRepo *repository.HiredEmployeeRepository,
	recruiterDataRepo *repository.RecruiterDataRepository,
	hiringPlanRepo *repository.HiringPlanRepository,
) *StatisticsService {
	return &StatisticsService{
		trace:             trace,
		recruitmentRepo:   recruitmentRepo,
		hiredEmployeeRepo: hiredEmployeeRepo,
		recruiterDataRepo: recruiterDataRepo,
		hiringPlanRepo:    hiringPlanRepo,
	}
}

// RecruitmentStats 招募儀表板：總量、狀態分佈、年齡區間、近十二個月投遞趨勢
func (s *StatisticsService) RecruitmentStats(ctx context.Context) (*dto.RecruitmentStatsDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	total, err := s.recruitmentRepo.Count(ctx, bson.M{})
	if err != nil {
		return nil, cErr.DatabaseError("database Count error")
	}
	byStatus, err := s.recruitmentRepo.CountByStatus(ctx)
	if err != nil {
		return nil, cErr.DatabaseError("database CountByStatus error")
	}
	ageBuckets, err := s.recruitmentRepo.AgeBuckets(ctx)
	if err != nil {
		return nil, cErr.DatabaseError("database AgeBuckets error")
	}
	trend, err := s.recruitmentRepo.MonthlyTrend(ctx, monthlyTrendMonths)
	if err != nil {
		return nil, cErr.DatabaseError("database MonthlyTrend error")
	}

	stats := &dto.RecruitmentStatsDto{
		Total:        total,
		ByStatus:     byStatus,
		AgeBuckets:   ageBuckets,
		MonthlyTrend: trend,
	}
	if stats.ByStatus == nil {
		stats.ByStatus = []model.StatusCount{}
	}
	if stats.AgeBuckets == nil {
		stats.AgeBuckets = []model.AgeBucketCount{}
	}
	if stats.MonthlyTrend == nil {
		stats.MonthlyTrend = []model.MonthCount{}
	}
	return stats, nil
}

// EmployeeStats 員工儀表板：在職總數、部門分佈、部門平均薪資
func (s *StatisticsService) EmployeeStats(ctx context.Context) (*dto.EmployeeStatsDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	activeTotal, err := s.hiredEmployeeRepo.Count(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, cErr.DatabaseError("database Count error")
	}
	byDepartment, err := s.hiredEmployeeRepo.CountByDepartment(ctx)
	if err != nil {
		return nil, cErr.DatabaseError("database CountByDepartment error")
	}
	salaryByDepartment, err := s.hiredEmployeeRepo.AverageSalaryByDepartment(ctx)
	if err != nil {
		return nil, cErr.DatabaseError("database AverageSalaryByDepartment error")
	}

	stats := &dto.EmployeeStatsDto{
		ActiveTotal:        activeTotal,
		ByDepartment:       byDepartment,
		SalaryByDepartment: salaryByDepartment,
	}
	if stats.ByDepartment == nil {
		stats.ByDepartment = []model.DepartmentCount{}
	}
	if stats.SalaryByDepartment == nil {
		stats.SalaryByDepartment = []model.DepartmentSalary{}
	}
	return stats, nil
}

// UpsertHiringPlan 設定部門年度聘用目標（同部門同年度覆蓋）
func (s *StatisticsService) UpsertHiringPlan(
	ctx context.Context,
	planDto *dto.UpsertHiringPlanDto,
	principal core.Principal,
) (*model.HiringPlan, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, exist := core.DepartmentPrefixes[planDto.Department]; !exist {
		return nil, cErr.BadRequestBody("invalid department: " + string(planDto.Department))
	}
	updatedBy, err := primitive.ObjectIDFromHex(principal.UserID)
	if err != nil {
		return nil, cErr.Unauthorized("invalid principal")
	}

	plan := &model.HiringPlan{
		Department: planDto.Department,
		Position:   planDto.Position,
		Planned:    planDto.Planned,
		Year:       planDto.Year,
		UpdatedBy:  updatedBy,
	}
	if err := s.hiringPlanRepo.Upsert(ctx, plan); err != nil {
		return nil, cErr.DatabaseError("database Upsert error")
	}
	// 覆蓋既有目標時 _id 以庫內為準，讀回落定後的列
	stored, err := s.hiringPlanRepo.GetByDepartmentYear(ctx, planDto.Department, planDto.Year)
	if err != nil {
		return nil, cErr.DatabaseError("database GetByDepartmentYear error")
	}
	return stored, nil
}

// PlanVsActual 以反正規化的在職人數對照年度聘用目標
func (s *StatisticsService) PlanVsActual(ctx context.Context, year int) (*dto.PlanVsActualDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	plans, err := s.hiringPlanRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, cErr.DatabaseError("database ListByYear error")
	}
	actuals, err := s.recruiterDataRepo.CountByDepartment(ctx)
	if err != nil {
		return nil, cErr.DatabaseError("database CountByDepartment error")
	}
	return &dto.PlanVsActualDto{Year: year, Rows: buildPlanVsActualRows(plans, actuals)}, nil
}

// buildPlanVsActualRows 純計算：variance = actual − planned；
// percentage 在 planned>0 時為 round(variance/planned×100)，否則為 0。
// 只有目標沒有實績、或只有實績沒有目標的部門各自也要成列
func buildPlanVsActualRows(plans []*model.HiringPlan, actuals []model.DepartmentCount) []dto.PlanVsActualRowDto {
	actualByDepartment := make(map[core.Department]int64, len(actuals))
	for _, row := range actuals {
		actualByDepartment[row.Department] = row.Count
	}

	rows := make([]dto.PlanVsActualRowDto, 0, len(plans))
	planned := make(map[core.Department]struct{}, len(plans))
	for _, plan := range plans {
		planned[plan.Department] = struct{}{}
		rows = append(rows, buildPlanRow(plan.Department, plan.Planned, actualByDepartment[plan.Department]))
	}
	for _, row := range actuals {
		if _, has := planned[row.Department]; !has {
			rows = append(rows, buildPlanRow(row.Department, 0, row.Count))
		}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Department < rows[j].Department })
	return rows
}

func buildPlanRow(department core.Department, plannedCount, actualCount int64) dto.PlanVsActualRowDto {
	variance := actualCount - plannedCount
	var percentage int64
	if plannedCount > 0 {
		percentage = int64(math.Round(float64(variance) / float64(plannedCount) * 100))
	}
	status := core.PlanOnTarget
	switch {
	case variance > 0:
		status = core.PlanAbove
	case variance < 0:
		status = core.PlanBelow
	}
	return dto.PlanVsActualRowDto{
		Department: department,
		Planned:    plannedCount,
		Actual:     actualCount,
		Variance:   variance,
		Percentage: percentage,
		Status:     status,
	}
}
