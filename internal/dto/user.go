package dto

import (
	"recruithub/internal/core"
	"recruithub/internal/database/mongodb/model"
	"time"
)

// 建立 HR/ADMIN 帳號
type CreateUserDto struct {
	Name     string    `json:"name" binding:"required"`
	Email    string    `json:"email" binding:"required,email"`
	Password string    `json:"password" binding:"required,min=8"`
	Role     core.Role `json:"role" binding:"required"`
}

// 更新帳號
type UpdateUserDto struct {
	Name     *string    `json:"name,omitempty"`
	Email    *string    `json:"email,omitempty" binding:"omitempty,email"`
	Password *string    `json:"password,omitempty" binding:"omitempty,min=8"`
	Role     *core.Role `json:"role,omitempty"`
}

type UserResponseDto struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Role      core.Role         `json:"role"`
	Avatar    *model.StoredFile `json:"avatar,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func NewUserResponse(user *model.User) UserResponseDto {
	return UserResponseDto{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
