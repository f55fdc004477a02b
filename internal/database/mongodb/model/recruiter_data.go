package model

import (
	"time"

	"recruithub/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecruiterData 反正規化的實際在職人數資料；每列代表一名在職員工，
// 由排程每日自 hired_employees 重建，僅供 plan-vs-actual 統計使用
type RecruiterData struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Department  core.Department    `json:"department" bson:"department"`
	Position    core.Position      `json:"position" bson:"position"`
	EmployeeRef primitive.ObjectID `json:"employeeRef" bson:"employeeRef"`
	SyncedAt    time.Time          `json:"syncedAt" bson:"syncedAt"`
}

var RecruiterDataIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "department", Value: 1}, {Key: "position", Value: 1}},
		Options: options.Index().SetName("idx_department_position"),
	},
}

// HiringPlan 各部門的年度聘用目標，plan-vs-actual 的 planned 來源
type HiringPlan struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Department core.Department    `json:"department" bson:"department"`
	Position   core.Position      `json:"position,omitempty" bson:"position,omitempty"`
	Planned    int64              `json:"planned" bson:"planned"`
	Year       int                `json:"year" bson:"year"`
	UpdatedBy  primitive.ObjectID `json:"updatedBy" bson:"updatedBy"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var HiringPlanIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "department", Value: 1}, {Key: "year", Value: 1}},
		Options: options.Index().SetName("uniq_department_year").SetUnique(true),
	},
}
