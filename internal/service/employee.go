package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"recruithub/internal/core"
	"recruithub/internal/database/mongodb/model"
	"recruithub/internal/database/mongodb/repository"
	"recruithub/internal/dto"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/telemetry"
	"recruithub/utils/validate"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type EmployeeService struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	recruitmentRepo   *repository.RecruitmentFormRepository
	hiredEmployeeRepo *repository.HiredEmployeeRepository
}

func NewEmployeeService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	recruitmentRepo *repository.RecruitmentFormRepository,
	hiredEmployeeRepo *repository.HiredEmployeeRepository,
) *EmployeeService {
	return &EmployeeService{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		recruitmentRepo:   recruitmentRepo,
		hiredEmployeeRepo: hiredEmployeeRepo,
	}
}

// MigrateCandidateToEmployee 把 HIRED 表單轉入員工名冊。
// 檢核順序固定：表單存在 → 狀態 HIRED → 未遷移 → 列舉值 → 主管 → 員工編號 → 日期。
// 併發重複遷移由 uniq_recruitmentFormId 擋下，轉譯為 already-migrated
func (s *EmployeeService) MigrateCandidateToEmployee(
	ctx context.Context,
	formID primitive.ObjectID,
	migrateDto *dto.MigrateDto,
	principal core.Principal,
) (*model.HiredEmployee, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	// 1) 表單存在
	form, err := s.recruitmentRepo.GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("recruitment form not found")
		}
		return nil, cErr.DatabaseError("database GetByID error")
	}

	// 2) 狀態必須是 HIRED
	if form.Status != core.StatusHired {
		return nil, cErr.InvalidStatusTransition(
			fmt.Sprintf("form status is %s; only HIRED forms can be migrated", form.Status))
	}

	// 3) 未曾遷移
	if _, err := s.hiredEmployeeRepo.GetByFormID(ctx, formID); err == nil {
		return nil, cErr.AlreadyMigrated("form has already been migrated")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, cErr.DatabaseError("database GetByFormID error")
	}

	// 4) 列舉值
	if !validate.IsValidDepartment(string(migrateDto.Department)) {
		return nil, cErr.BadRequestBody(fmt.Sprintf("invalid department: %s", migrateDto.Department))
	}
	if !validate.IsValidPosition(string(migrateDto.HiredPosition)) {
		return nil, cErr.BadRequestBody(fmt.Sprintf("invalid hiredPosition: %s", migrateDto.HiredPosition))
	}
	if !validate.IsValidContractType(string(migrateDto.ContractType)) {
		return nil, cErr.BadRequestBody(fmt.Sprintf("invalid contractType: %s", migrateDto.ContractType))
	}
	if !validate.IsValidShiftPattern(string(migrateDto.ShiftPattern)) {
		return nil, cErr.BadRequestBody(fmt.Sprintf("invalid shiftPattern: %s", migrateDto.ShiftPattern))
	}
	if migrateDto.EmploymentStatus != nil {
		if !validate.IsValidEmploymentStatus(string(*migrateDto.EmploymentStatus)) ||
			*migrateDto.EmploymentStatus == core.EmploymentTerminated {
			return nil, cErr.BadRequestBody(fmt.Sprintf("invalid employmentStatus: %s", *migrateDto.EmploymentStatus))
		}
	}

	// 5) 主管存在且在職
	var supervisorID *primitive.ObjectID
	if migrateDto.SupervisorID != nil && *migrateDto.SupervisorID != "" {
		validated, err := s.validateSupervisorCandidate(ctx, *migrateDto.SupervisorID)
		if err != nil {
			return nil, err
		}
		supervisorID = validated
	}

	// 6) 員工編號唯一；不帶則依部門前綴產生
	employeeID := strings.TrimSpace(migrateDto.EmployeeID)
	if employeeID != "" {
		exists, err := s.hiredEmployeeRepo.ExistsEmployeeID(ctx, employeeID)
		if err != nil {
			return nil, cErr.DatabaseError("database ExistsEmployeeID error")
		}
		if exists {
			return nil, cErr.EmployeeIDExists(fmt.Sprintf("employee id %s already in use", employeeID))
		}
	} else {
		generated, err := s.nextEmployeeID(ctx, migrateDto.Department, migrateDto.StartDate)
		if err != nil {
			return nil, err
		}
		employeeID = generated
	}

	// 7) 試用期結束日必須晚於到職日
	if migrateDto.ProbationEndDate != nil && !migrateDto.ProbationEndDate.After(migrateDto.StartDate) {
		return nil, cErr.BadRequestBody("probationEndDate must be after startDate")
	}
	employmentStatus := migrationEmploymentStatus(migrateDto.EmploymentStatus, migrateDto.ProbationEndDate)

	processedBy, err := primitive.ObjectIDFromHex(principal.UserID)
	if err != nil {
		return nil, cErr.Unauthorized("invalid principal")
	}

	employee := &model.HiredEmployee{
		ID:                primitive.NewObjectID(),
		EmployeeID:        employeeID,
		RecruitmentFormID: formID,
		HiredPosition:     migrateDto.HiredPosition,
		Department:        migrateDto.Department,
		EmploymentStatus:  employmentStatus,
		ContractType:      migrateDto.ContractType,
		ShiftPattern:      migrateDto.ShiftPattern,
		BasicSalary:       migrateDto.BasicSalary,
		SupervisorID:      supervisorID,
		IsActive:          true,
		StartDate:         migrateDto.StartDate,
		ProbationEndDate:  migrateDto.ProbationEndDate,
		ProcessedBy:       processedBy,
	}

	created, err := s.hiredEmployeeRepo.Create(ctx, employee)
	if err != nil {
		if repository.IsDuplicateKeyError(err) {
			// 兩個唯一索引都可能觸發：先判斷是否輸在遷移競態
			if _, raceErr := s.hiredEmployeeRepo.GetByFormID(ctx, formID); raceErr == nil {
				return nil, cErr.AlreadyMigrated("form has already been migrated")
			}
			return nil, cErr.EmployeeIDExists(fmt.Sprintf("employee id %s already in use", employeeID))
		}
		return nil, cErr.DatabaseError("database CreateEmployee error")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceHierarchyMeta{
		EmployeeID: created.EmployeeID,
		FormID:     formID.Hex(),
		Op:         "migrate",
		Status:     string(created.EmploymentStatus),
	})
	if s.metric.MigrationsTotal != nil {
		s.metric.MigrationsTotal.
			WithLabelValues(string(created.Department), string(created.EmploymentStatus)).
			Inc()
	}
	s.logger.Info("candidate migrated to employee roster",
		zap.String("employeeId", created.EmployeeID),
		zap.String("formId", formID.Hex()),
		zap.String("department", string(created.Department)),
	)
	return created, nil
}

// AssignSupervisor 指派或清除直屬主管。三種拒絕各自獨立：
// 自我指派、主管不存在/已停用、會成環
func (s *EmployeeService) AssignSupervisor(
	ctx context.Context,
	employeeID primitive.ObjectID,
	assignDto *dto.AssignSupervisorDto,
) (*model.HiredEmployee, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	// null → 清除主管
	if assignDto.SupervisorID == nil || *assignDto.SupervisorID == "" {
		update := bson.M{"$unset": bson.M{"supervisorId": ""}}
		if _, err := s.hiredEmployeeRepo.UpdateByID(ctx, employeeID, update); err != nil {
			return nil, cErr.DatabaseError("database AssignSupervisor error")
		}
		employee.SupervisorID = nil
		s.trace.ApplyTraceAttributes(span, core.TraceHierarchyMeta{
			EmployeeID: employee.EmployeeID,
			Op:         "clear_supervisor",
		})
		return employee, nil
	}

	candidateID, err := primitive.ObjectIDFromHex(*assignDto.SupervisorID)
	if err != nil {
		return nil, cErr.BadRequestBody("invalid supervisorId")
	}
	if candidateID == employeeID {
		return nil, cErr.SelfSupervision("an employee cannot supervise themselves")
	}
	if _, err := s.validateSupervisorCandidate(ctx, *assignDto.SupervisorID); err != nil {
		return nil, err
	}

	// 成環檢查：通過之前不改動任何資料
	cycle, err := wouldCreateCycle(employeeID, candidateID, func(id primitive.ObjectID) (*primitive.ObjectID, error) {
		current, err := s.hiredEmployeeRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// 鏈上出現不存在的參照 → 視為鏈結束
				return nil, nil
			}
			return nil, err
		}
		return current.SupervisorID, nil
	})
	if err != nil {
		return nil, cErr.DatabaseError("supervisor chain walk failed: " + err.Error())
	}
	if cycle {
		return nil, cErr.CircularSupervision(
			fmt.Sprintf("assigning %s as supervisor of %s would create a cycle", candidateID.Hex(), employeeID.Hex()))
	}

	update := bson.M{"$set": bson.M{"supervisorId": candidateID}}
	if _, err := s.hiredEmployeeRepo.UpdateByID(ctx, employeeID, update); err != nil {
		return nil, cErr.DatabaseError("database AssignSupervisor error")
	}
	employee.SupervisorID = &candidateID

	s.trace.ApplyTraceAttributes(span, core.TraceHierarchyMeta{
		EmployeeID:   employee.EmployeeID,
		SupervisorID: candidateID.Hex(),
		Op:           "assign_supervisor",
	})
	return employee, nil
}

// Deactivate 停用（軟刪）或移除（硬刪）員工；仍有在職下屬時拒絕
func (s *EmployeeService) Deactivate(
	ctx context.Context,
	employeeID primitive.ObjectID,
	deactivateDto *dto.DeactivateDto,
	hard bool,
) error {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return err
	}

	subordinates, err := s.hiredEmployeeRepo.CountActiveSubordinates(ctx, employeeID)
	if err != nil {
		return cErr.DatabaseError("database CountActiveSubordinates error")
	}
	if subordinates > 0 {
		return cErr.HasActiveSubordinates(
			fmt.Sprintf("employee has %d active subordinates; reassign them first", subordinates))
	}

	s.trace.ApplyTraceAttributes(span, core.TraceHierarchyMeta{
		EmployeeID: employee.EmployeeID,
		Op:         "deactivate",
	})

	if hard {
		if err := s.hiredEmployeeRepo.DeleteByID(ctx, employeeID); err != nil {
			return cErr.DatabaseError("database DeleteEmployee error")
		}
		return nil
	}

	// 不帶離職日以當下時間為準
	terminationDate := time.Now().UTC()
	if deactivateDto.TerminationDate != nil {
		terminationDate = *deactivateDto.TerminationDate
	}
	set := bson.M{
		"isActive":          false,
		"employmentStatus":  core.EmploymentTerminated,
		"terminationDate":   terminationDate,
		"terminationReason": deactivateDto.TerminationReason,
	}
	if _, err := s.hiredEmployeeRepo.UpdateByID(ctx, employeeID, bson.M{"$set": set}); err != nil {
		return cErr.DatabaseError("database Deactivate error")
	}
	return nil
}

// Restore 復職；僅允許已離職者
func (s *EmployeeService) Restore(ctx context.Context, employeeID primitive.ObjectID) (*model.HiredEmployee, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.IsActive {
		return nil, cErr.NotTerminated("employee is still active")
	}

	update := bson.M{
		"$set":   bson.M{"isActive": true, "employmentStatus": core.EmploymentPermanent},
		"$unset": bson.M{"terminationDate": "", "terminationReason": ""},
	}
	if _, err := s.hiredEmployeeRepo.UpdateByID(ctx, employeeID, update); err != nil {
		return nil, cErr.DatabaseError("database Restore error")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceHierarchyMeta{
		EmployeeID: employee.EmployeeID,
		Op:         "restore",
	})
	return s.getEmployee(ctx, employeeID)
}

// UpdateEmployee 部分更新；只接受 DTO 列出的欄位
func (s *EmployeeService) UpdateEmployee(
	ctx context.Context,
	employeeID primitive.ObjectID,
	updateDto *dto.UpdateEmployeeDto,
) (*model.HiredEmployee, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if updateDto.HiredPosition != nil {
		if !validate.IsValidPosition(string(*updateDto.HiredPosition)) {
			return nil, cErr.BadRequestBody(fmt.Sprintf("invalid hiredPosition: %s", *updateDto.HiredPosition))
		}
		set["hiredPosition"] = *updateDto.HiredPosition
	}
	if updateDto.Department != nil {
		if !validate.IsValidDepartment(string(*updateDto.Department)) {
			return nil, cErr.BadRequestBody(fmt.Sprintf("invalid department: %s", *updateDto.Department))
		}
		set["department"] = *updateDto.Department
	}
	if updateDto.EmploymentStatus != nil {
		if !validate.IsValidEmploymentStatus(string(*updateDto.EmploymentStatus)) {
			return nil, cErr.BadRequestBody(fmt.Sprintf("invalid employmentStatus: %s", *updateDto.EmploymentStatus))
		}
		set["employmentStatus"] = *updateDto.EmploymentStatus
	}
	if updateDto.ContractType != nil {
		if !validate.IsValidContractType(string(*updateDto.ContractType)) {
			return nil, cErr.BadRequestBody(fmt.Sprintf("invalid contractType: %s", *updateDto.ContractType))
		}
		set["contractType"] = *updateDto.ContractType
	}
	if updateDto.ShiftPattern != nil {
		if !validate.IsValidShiftPattern(string(*updateDto.ShiftPattern)) {
			return nil, cErr.BadRequestBody(fmt.Sprintf("invalid shiftPattern: %s", *updateDto.ShiftPattern))
		}
		set["shiftPattern"] = *updateDto.ShiftPattern
	}
	if updateDto.BasicSalary != nil {
		set["basicSalary"] = *updateDto.BasicSalary
	}
	if updateDto.ProbationEndDate != nil {
		if !updateDto.ProbationEndDate.After(employee.StartDate) {
			return nil, cErr.BadRequestBody("probationEndDate must be after startDate")
		}
		set["probationEndDate"] = *updateDto.ProbationEndDate
	}
	if len(set) == 0 {
		return nil, cErr.BadRequestBody("no fields to update")
	}

	if _, err := s.hiredEmployeeRepo.UpdateByID(ctx, employeeID, bson.M{"$set": set}); err != nil {
		return nil, cErr.DatabaseError("database UpdateEmployee error")
	}
	return s.getEmployee(ctx, employeeID)
}

// GetEmployeeGraph 單一員工 + 來源表單 + 主管 + 在職下屬
func (s *EmployeeService) GetEmployeeGraph(ctx context.Context, employeeID primitive.ObjectID) (*dto.EmployeeGraphDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	graph := &dto.EmployeeGraphDto{Employee: employee, Subordinates: []*model.HiredEmployee{}}

	if form, err := s.recruitmentRepo.GetByID(ctx, employee.RecruitmentFormID); err == nil {
		graph.Form = form
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, cErr.DatabaseError("database GetByID error")
	}

	if employee.SupervisorID != nil {
		if supervisor, err := s.hiredEmployeeRepo.GetByID(ctx, *employee.SupervisorID); err == nil {
			graph.Supervisor = supervisor
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.DatabaseError("database GetByID error")
		}
	}

	subordinates, err := s.hiredEmployeeRepo.ListActiveSubordinates(ctx, employeeID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListActiveSubordinates error")
	}
	if subordinates != nil {
		graph.Subordinates = subordinates
	}
	return graph, nil
}

// ListEmployees 分頁列表 + 篩選
func (s *EmployeeService) ListEmployees(ctx context.Context, query *dto.ListEmployeeQuery) ([]*model.HiredEmployee, int64, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	filter := bson.M{}
	if query.Department != "" {
		filter["department"] = core.Department(query.Department)
	}
	if query.Position != "" {
		filter["hiredPosition"] = core.Position(query.Position)
	}
	if query.EmploymentStatus != "" {
		filter["employmentStatus"] = core.EmploymentStatus(query.EmploymentStatus)
	}
	if query.ContractType != "" {
		filter["contractType"] = core.ContractType(query.ContractType)
	}
	if query.ShiftPattern != "" {
		filter["shiftPattern"] = core.ShiftPattern(query.ShiftPattern)
	}
	if query.Active != nil {
		filter["isActive"] = *query.Active
	}
	if query.SalaryMin > 0 || query.SalaryMax > 0 {
		salaryRange := bson.M{}
		if query.SalaryMin > 0 {
			salaryRange["$gte"] = query.SalaryMin
		}
		if query.SalaryMax > 0 {
			salaryRange["$lte"] = query.SalaryMax
		}
		filter["basicSalary"] = salaryRange
	}
	if query.StartedFrom != "" || query.StartedTo != "" {
		dateRange := bson.M{}
		if query.StartedFrom != "" {
			from, parseErr := time.Parse("2006-01-02", query.StartedFrom)
			if parseErr != nil {
				return nil, 0, cErr.BadRequestParams(fmt.Sprintf("invalid startedFrom date: %s", query.StartedFrom))
			}
			dateRange["$gte"] = from
		}
		if query.StartedTo != "" {
			to, parseErr := time.Parse("2006-01-02", query.StartedTo)
			if parseErr != nil {
				return nil, 0, cErr.BadRequestParams(fmt.Sprintf("invalid startedTo date: %s", query.StartedTo))
			}
			dateRange["$lt"] = to.AddDate(0, 0, 1)
		}
		filter["startDate"] = dateRange
	}
	if query.EmployeeID != "" {
		filter["employeeId"] = primitive.Regex{Pattern: "^" + query.EmployeeID, Options: "i"}
	}

	employees, err := s.hiredEmployeeRepo.List(ctx, core.ListOptions{Filter: filter, Page: query.Page, Size: query.Size})
	if err != nil {
		return nil, 0, cErr.DatabaseError("database ListEmployees error")
	}
	total, err := s.hiredEmployeeRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, cErr.DatabaseError("database CountEmployees error")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceListMeta{
		Page:        query.Page,
		Size:        query.Size,
		ResultCount: len(employees),
	})
	return employees, total, nil
}

// EligibleSupervisors 可被指派為主管的人選：在職且 PERMANENT/CONTRACT
func (s *EmployeeService) EligibleSupervisors(ctx context.Context, department string) ([]*model.HiredEmployee, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	filter := bson.M{
		"isActive":         true,
		"employmentStatus": bson.M{"$in": bson.A{core.EmploymentPermanent, core.EmploymentContract}},
	}
	if department != "" {
		if !validate.IsValidDepartment(department) {
			return nil, cErr.BadRequestParams(fmt.Sprintf("invalid department: %s", department))
		}
		filter["department"] = core.Department(department)
	}
	employees, err := s.hiredEmployeeRepo.List(ctx, core.ListOptions{
		Filter: filter,
		Sort:   bson.D{{Key: "employeeId", Value: 1}},
	})
	if err != nil {
		return nil, cErr.DatabaseError("database EligibleSupervisors error")
	}
	return employees, nil
}

// ─── helpers ───────────────────────────────────────────────────────────────────

func (s *EmployeeService) getEmployee(ctx context.Context, id primitive.ObjectID) (*model.HiredEmployee, error) {
	employee, err := s.hiredEmployeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("employee not found")
		}
		return nil, cErr.DatabaseError("database GetByID error")
	}
	return employee, nil
}

// validateSupervisorCandidate 主管人選必須存在且在職
func (s *EmployeeService) validateSupervisorCandidate(ctx context.Context, hexID string) (*primitive.ObjectID, error) {
	candidateID, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, cErr.BadRequestBody("invalid supervisorId")
	}
	supervisor, err := s.hiredEmployeeRepo.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("supervisor not found")
		}
		return nil, cErr.DatabaseError("database GetByID error")
	}
	if !supervisor.IsActive {
		return nil, cErr.SupervisorInactive(fmt.Sprintf("supervisor %s is inactive", supervisor.EmployeeID))
	}
	return &candidateID, nil
}

// nextEmployeeID 產生 <部門前綴><西元年後兩碼><三碼流水號>，如 IT26001
func (s *EmployeeService) nextEmployeeID(ctx context.Context, department core.Department, startDate time.Time) (string, error) {
	prefix, exist := core.DepartmentPrefixes[department]
	if !exist {
		return "", cErr.BadRequestBody(fmt.Sprintf("invalid department: %s", department))
	}
	yearPrefix := fmt.Sprintf("%s%02d", prefix, startDate.Year()%100)

	latest, err := s.hiredEmployeeRepo.LatestEmployeeIDWithPrefix(ctx, yearPrefix)
	if err != nil {
		return "", cErr.DatabaseError("database LatestEmployeeIDWithPrefix error")
	}
	next, err := nextSequencedID(yearPrefix, latest)
	if err != nil {
		return "", cErr.InternalServer("employee id sequence corrupted: " + err.Error())
	}
	return next, nil
}

// nextSequencedID 取同前綴目前最大編號的流水號 +1；沒有既有編號從 001 起算。
// 流水號尾碼必須是數字，否則既有資料已壞，重新從 1 起算只會撞 uniq_employeeId
func nextSequencedID(yearPrefix, latest string) (string, error) {
	sequence := 1
	if latest != "" {
		tail := strings.TrimPrefix(latest, yearPrefix)
		parsed, parseErr := strconv.Atoi(tail)
		if parseErr != nil {
			return "", fmt.Errorf("employee id %q has a non-numeric sequence tail", latest)
		}
		sequence = parsed + 1
	}
	return fmt.Sprintf("%s%03d", yearPrefix, sequence), nil
}

// migrationEmploymentStatus 有試用期結束日一律 PROBATION；
// 否則依請求指定，預設 PERMANENT
func migrationEmploymentStatus(requested *core.EmploymentStatus, probationEndDate *time.Time) core.EmploymentStatus {
	if probationEndDate != nil {
		return core.EmploymentProbation
	}
	if requested != nil {
		return *requested
	}
	return core.EmploymentPermanent
}
