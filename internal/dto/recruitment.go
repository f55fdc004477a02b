package dto

import (
	"recruithub/internal/core"
	"recruithub/internal/pkg/request"
	"time"
)

// ApplyDto 公開應徵表單（multipart form，檔案欄位另行處理）
type ApplyDto struct {
	FullName        string `form:"fullName" binding:"required,max=120"`
	Email           string `form:"email" binding:"required,email"`
	Phone           string `form:"phone" binding:"required,max=20"`
	BirthDate       string `form:"birthDate" binding:"required,datetime=2006-01-02"`
	Gender          string `form:"gender" binding:"required"`
	Province        string `form:"province" binding:"required"`
	City            string `form:"city" binding:"required,max=80"`
	Address         string `form:"address" binding:"required,max=255"`
	Education       string `form:"education" binding:"required"`
	Major           string `form:"major" binding:"omitempty,max=120"`
	AppliedPosition string `form:"appliedPosition" binding:"required"`
	ExpectedSalary  int64  `form:"expectedSalary" binding:"omitempty,min=0"`
}

// GetMessages 應徵者看得懂的欄位錯誤訊息
func (d *ApplyDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"FullName.required":        "full name is required",
		"Email.required":           "email is required",
		"Email.email":              "email format is invalid",
		"Phone.required":           "phone number is required",
		"BirthDate.required":       "birth date is required",
		"BirthDate.datetime":       "birth date must be in YYYY-MM-DD format",
		"Gender.required":          "gender is required",
		"Province.required":        "province is required",
		"City.required":            "city is required",
		"Address.required":         "address is required",
		"Education.required":       "education is required",
		"AppliedPosition.required": "applied position is required",
	}
}

// 變更招募狀態
type UpdateRecruitmentStatusDto struct {
	Status core.RecruitmentStatus `json:"status" binding:"required"`
}

// UpdateRecruitmentDto 人員端部分更新；重新上傳的檔案另行處理
type UpdateRecruitmentDto struct {
	FullName        *string `form:"fullName" binding:"omitempty,max=120"`
	Email           *string `form:"email" binding:"omitempty,email"`
	Phone           *string `form:"phone" binding:"omitempty,max=20"`
	BirthDate       *string `form:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	Gender          *string `form:"gender"`
	Province        *string `form:"province"`
	City            *string `form:"city" binding:"omitempty,max=80"`
	Address         *string `form:"address" binding:"omitempty,max=255"`
	Education       *string `form:"education"`
	Major           *string `form:"major" binding:"omitempty,max=120"`
	AppliedPosition *string `form:"appliedPosition"`
	ExpectedSalary  *int64  `form:"expectedSalary" binding:"omitempty,min=0"`
}

// ListRecruitmentQuery 人員端列表篩選
type ListRecruitmentQuery struct {
	Status    string `form:"status"`
	Province  string `form:"province"`
	Education string `form:"education"`
	Position  string `form:"position"`
	Search    string `form:"search"`
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page      int64  `form:"page,default=1" binding:"omitempty,min=1"`
	Size      int64  `form:"size,default=20" binding:"omitempty,min=1,max=100"`
}

// ApplyResponseDto 公開端只回追蹤用的最小資訊
type ApplyResponseDto struct {
	ID     string                 `json:"id"`
	Status core.RecruitmentStatus `json:"status"`
}

// PublicStatusDto 公開查詢進度
type PublicStatusDto struct {
	ID              string                 `json:"id"`
	FullName        string                 `json:"fullName"`
	AppliedPosition core.Position          `json:"appliedPosition"`
	Status          core.RecruitmentStatus `json:"status"`
	SubmittedAt     time.Time              `json:"submittedAt"`
}
