package cron

import (
	"context"
	"time"

	"recruithub/internal/core"
	"recruithub/internal/database/mongodb/model"
	"recruithub/internal/database/mongodb/repository"
	"recruithub/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const recruiterDataTimeout = 5 * time.Minute

// RecruiterDataJob 把在職員工攤平為報表用的反正規化資料列。
// 全量重建，不做差異比對；來源永遠以 hired_employees 為準
type RecruiterDataJob struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	hiredEmployeeRepo *repository.HiredEmployeeRepository
	recruiterDataRepo *repository.RecruiterDataRepository
}

func NewRecruiterDataJob(
	logger *zap.Logger,
	trace *telemetry.Trace,
	hiredEmployeeRepo *repository.HiredEmployeeRepository,
	recruiterDataRepo *repository.RecruiterDataRepository,
) *RecruiterDataJob {
	return &RecruiterDataJob{
		logger:            logger,
		trace:             trace,
		hiredEmployeeRepo: hiredEmployeeRepo,
		recruiterDataRepo: recruiterDataRepo,
	}
}

func (job *RecruiterDataJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), recruiterDataTimeout)
	defer cancel()

	if err := job.Rebuild(ctx); err != nil {
		job.logger.Error("[Cron RecruiterData] rebuild failed", zap.Error(err))
	}
}

// Rebuild 供排程與測試共用
func (job *RecruiterDataJob) Rebuild(ctx context.Context) error {
	ctx, _, end := job.trace.WithSpan(ctx)
	defer end(nil)

	started := time.Now().UTC()

	employees, err := job.hiredEmployeeRepo.List(ctx, core.ListOptions{Filter: bson.M{"isActive": true}})
	if err != nil {
		return err
	}

	rows := make([]model.RecruiterData, 0, len(employees))
	for _, employee := range employees {
		rows = append(rows, model.RecruiterData{
			Department:  employee.Department,
			Position:    employee.HiredPosition,
			EmployeeRef: employee.ID,
		})
	}

	if err := job.recruiterDataRepo.ReplaceAll(ctx, rows); err != nil {
		return err
	}

	job.logger.Info("[Cron RecruiterData] rebuild finished",
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}
