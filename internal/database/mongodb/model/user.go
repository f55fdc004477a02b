package model

import (
	"time"

	"recruithub/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoredFile 外部物件儲存回傳的檔案參照；本服務不解讀內容
type StoredFile struct {
	PublicID string `json:"publicId" bson:"publicId"`
	URL      string `json:"url" bson:"url"`
}

type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	Role         core.Role          `json:"role" bson:"role"`
	Avatar       *StoredFile        `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var UserIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "role", Value: 1}},
		Options: options.Index().SetName("idx_role"),
	},
}
