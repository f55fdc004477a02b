package model

import "recruithub/internal/core"

// 聚合查詢（groupBy）結果型別

type StatusCount struct {
	Status core.RecruitmentStatus `json:"status" bson:"_id"`
	Count  int64                  `json:"count" bson:"count"`
}

type DepartmentCount struct {
	Department core.Department `json:"department" bson:"_id"`
	Count      int64           `json:"count" bson:"count"`
}

type DepartmentSalary struct {
	Department core.Department `json:"department" bson:"_id"`
	Average    float64         `json:"averageSalary" bson:"averageSalary"`
	Count      int64           `json:"count" bson:"count"`
}

type AgeBucketCount struct {
	Bucket string `json:"bucket" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}

type MonthCount struct {
	Month string `json:"month" bson:"_id"` // "2006-01"
	Count int64  `json:"count" bson:"count"`
}
