package handler

import (
	"recruithub/internal/dto"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/pkg/response"
	"recruithub/internal/service"
	"recruithub/internal/telemetry"
	"recruithub/utils/validate"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuthHandler(trace *telemetry.Trace, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{trace: trace, authService: authService}
}

// Login 帳密換 token
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.LoginDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.authService.Login(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Logout 將當前 token 的 jti 加入黑名單
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	claims, ok := getClaims(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("missing credentials"))
		return
	}

	if err := h.authService.Logout(ctx, claims); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "logged out successfully")
}

// Me 當前登入者資訊
func (h *AuthHandler) Me(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	principal, ok := getPrincipal(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("missing credentials"))
		return
	}

	res, err := h.authService.Me(ctx, principal)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
