package repository

import (
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	userRepo          *UserRepository
	recruitmentRepo   *RecruitmentFormRepository
	hiredEmployeeRepo *HiredEmployeeRepository
	recruiterDataRepo *RecruiterDataRepository
	hiringPlanRepo    *HiringPlanRepository
}

// 建立 MongoDB repository 物件
func NewMongoDBRepository(
	userRepo *UserRepository,
	recruitmentRepo *RecruitmentFormRepository,
	hiredEmployeeRepo *HiredEmployeeRepository,
	recruiterDataRepo *RecruiterDataRepository,
	hiringPlanRepo *HiringPlanRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		userRepo:          userRepo,
		recruitmentRepo:   recruitmentRepo,
		hiredEmployeeRepo: hiredEmployeeRepo,
		recruiterDataRepo: recruiterDataRepo,
		hiringPlanRepo:    hiringPlanRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewUserRepository,
	NewRecruitmentFormRepository,
	NewHiredEmployeeRepository,
	NewRecruiterDataRepository,
	NewHiringPlanRepository,
	NewMongoDBRepository)

func withUpdatedAt(update bson.M) bson.M {
	// 確保 $currentDate 存在
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}

// IsDuplicateKeyError 判斷唯一索引衝突（employeeId、email、recruitmentFormId）
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
