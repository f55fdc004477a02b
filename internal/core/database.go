package core

import "go.mongodb.org/mongo-driver/bson"

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBRecruithub MongoDatabaseName = "recruithub"
)

// MongoDB collections
const (
	MongoCollectionUsers            MongoCollection = "users"
	MongoCollectionRecruitmentForms MongoCollection = "recruitment_forms"
	MongoCollectionHiredEmployees   MongoCollection = "hired_employees"
	MongoCollectionRecruiterData    MongoCollection = "recruiter_data"
	MongoCollectionHiringPlans      MongoCollection = "hiring_plans"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyRevokedToken RedisKey = "revoked_token" // 已登出的 token jti
	RedisKeyIntakeLimit  RedisKey = "intake_limit"  // 公開應徵入口限流
	RedisKeyServerName   RedisKey = "recruithub"
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Sort   bson.D `json:"sort,omitempty" bson:"sort,omitempty"`
	Page   int64  `json:"page,omitempty" bson:"page,omitempty"`
	Size   int64  `json:"size,omitempty" bson:"size,omitempty"`
}
