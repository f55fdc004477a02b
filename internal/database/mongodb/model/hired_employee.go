package model

import (
	"time"

	"recruithub/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HiredEmployee struct {
	ID                primitive.ObjectID    `json:"id" bson:"_id"`
	EmployeeID        string                `json:"employeeId" bson:"employeeId"`
	RecruitmentFormID primitive.ObjectID    `json:"recruitmentFormId" bson:"recruitmentFormId"`
	HiredPosition     core.Position         `json:"hiredPosition" bson:"hiredPosition"`
	Department        core.Department       `json:"department" bson:"department"`
	EmploymentStatus  core.EmploymentStatus `json:"employmentStatus" bson:"employmentStatus"`
	ContractType      core.ContractType     `json:"contractType" bson:"contractType"`
	ShiftPattern      core.ShiftPattern     `json:"shiftPattern" bson:"shiftPattern"`
	BasicSalary       int64                 `json:"basicSalary" bson:"basicSalary"`
	SupervisorID      *primitive.ObjectID   `json:"supervisorId,omitempty" bson:"supervisorId,omitempty"`
	IsActive          bool                  `json:"isActive" bson:"isActive"`
	StartDate         time.Time             `json:"startDate" bson:"startDate"`
	ProbationEndDate  *time.Time            `json:"probationEndDate,omitempty" bson:"probationEndDate,omitempty"`
	TerminationDate   *time.Time            `json:"terminationDate,omitempty" bson:"terminationDate,omitempty"`
	TerminationReason string                `json:"terminationReason,omitempty" bson:"terminationReason,omitempty"`
	ProcessedBy       primitive.ObjectID    `json:"processedBy" bson:"processedBy"`
	CreatedAt         time.Time             `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt" bson:"updatedAt"`
}

// uniq_recruitmentFormId 保證一張表單最多遷移出一名員工；
// 併發重複遷移由索引擋下，service 轉譯為 already-migrated
var HiredEmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}},
		Options: options.Index().SetName("uniq_employeeId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "recruitmentFormId", Value: 1}},
		Options: options.Index().SetName("uniq_recruitmentFormId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "supervisorId", Value: 1}, {Key: "isActive", Value: 1}},
		Options: options.Index().SetName("idx_supervisorId_isActive"),
	},
	{
		Keys:    bson.D{{Key: "department", Value: 1}, {Key: "isActive", Value: 1}},
		Options: options.Index().SetName("idx_department_isActive"),
	},
	{
		Keys:    bson.D{{Key: "employmentStatus", Value: 1}},
		Options: options.Index().SetName("idx_employmentStatus"),
	},
}
