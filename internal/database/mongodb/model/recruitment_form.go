package model

import (
	"time"

	"recruithub/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ApplicationDocuments 應徵表單夾帶的文件；皆為外部儲存參照
type ApplicationDocuments struct {
	Photo              *StoredFile  `json:"photo,omitempty" bson:"photo,omitempty"`
	CV                 *StoredFile  `json:"cv,omitempty" bson:"cv,omitempty"`
	IDCard             *StoredFile  `json:"idCard,omitempty" bson:"idCard,omitempty"`
	PoliceClearance    *StoredFile  `json:"policeClearance,omitempty" bson:"policeClearance,omitempty"`
	VaccineCertificate *StoredFile  `json:"vaccineCertificate,omitempty" bson:"vaccineCertificate,omitempty"`
	Supporting         []StoredFile `json:"supporting,omitempty" bson:"supporting,omitempty"`
}

// All 回傳所有已存在的檔案參照（清除孤兒檔案用）
func (d *ApplicationDocuments) All() []StoredFile {
	if d == nil {
		return nil
	}
	var refs []StoredFile
	for _, f := range []*StoredFile{d.Photo, d.CV, d.IDCard, d.PoliceClearance, d.VaccineCertificate} {
		if f != nil {
			refs = append(refs, *f)
		}
	}
	refs = append(refs, d.Supporting...)
	return refs
}

type RecruitmentForm struct {
	ID              primitive.ObjectID     `json:"id" bson:"_id"`
	FullName        string                 `json:"fullName" bson:"fullName"`
	Email           string                 `json:"email" bson:"email"`
	Phone           string                 `json:"phone" bson:"phone"`
	BirthDate       time.Time              `json:"birthDate" bson:"birthDate"`
	Gender          core.Gender            `json:"gender" bson:"gender"`
	Province        string                 `json:"province" bson:"province"`
	City            string                 `json:"city" bson:"city"`
	Address         string                 `json:"address" bson:"address"`
	Education       core.Education         `json:"education" bson:"education"`
	Major           string                 `json:"major,omitempty" bson:"major,omitempty"`
	AppliedPosition core.Position          `json:"appliedPosition" bson:"appliedPosition"`
	ExpectedSalary  int64                  `json:"expectedSalary,omitempty" bson:"expectedSalary,omitempty"`
	Status          core.RecruitmentStatus `json:"status" bson:"status"`
	StatusUpdatedBy *primitive.ObjectID    `json:"statusUpdatedBy,omitempty" bson:"statusUpdatedBy,omitempty"`
	StatusUpdatedAt *time.Time             `json:"statusUpdatedAt,omitempty" bson:"statusUpdatedAt,omitempty"`
	Documents       ApplicationDocuments   `json:"documents" bson:"documents"`
	CreatedBy       *primitive.ObjectID    `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt       time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt" bson:"updatedAt"`
}

var RecruitmentFormIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_status_createdAt"),
	},
	{
		Keys:    bson.D{{Key: "province", Value: 1}},
		Options: options.Index().SetName("idx_province"),
	},
	{
		Keys:    bson.D{{Key: "appliedPosition", Value: 1}},
		Options: options.Index().SetName("idx_appliedPosition"),
	},
	{
		Keys:    bson.D{{Key: "fullName", Value: "text"}, {Key: "email", Value: "text"}},
		Options: options.Index().SetName("txt_fullName_email"),
	},
}
