package core

import "github.com/golang-jwt/jwt/v4"

// Claims 登入 token 內容；Subject = user id（hex）
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal 通過驗證後掛在請求上的身分
type Principal struct {
	UserID string
	Name   string
	Role   Role
}

// Gin context keys
const (
	ContextPrincipalKey = "principal"
	ContextClaimsKey    = "claims"
)
