package handler

import (
	"recruithub/internal/dto"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/pkg/response"
	"recruithub/internal/service"
	"recruithub/internal/telemetry"
	"recruithub/utils/validate"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type UserHandler struct {
	trace       *telemetry.Trace
	userService *service.UserService
}

func NewUserHandler(trace *telemetry.Trace, userService *service.UserService) *UserHandler {
	return &UserHandler{trace: trace, userService: userService}
}

// List 帳號列表
func (h *UserHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	page := getInt64Query(c, "page", 1)
	size := getInt64Query(c, "size", 20)

	filter := bson.M{}
	if role := c.Query("role"); role != "" {
		if !validate.IsValidRole(role) {
			response.AbortWithError(c, cErr.BadRequestParams("invalid role: "+role))
			return
		}
		filter["role"] = role
	}

	users, total, err := h.userService.ListUsers(ctx, filter, page, size)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, dto.NewPage(users, total, page, size))
}

// Get 取得單一帳號
func (h *UserHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "userID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	user, err := h.userService.GetUserByID(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, user)
}

// Create 新增帳號（僅 ADMIN）
func (h *UserHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateUserDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.userService.CreateUser(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Update 更新帳號
func (h *UserHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "userID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateUserDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.userService.UpdateUserByID(ctx, id, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "user updated successfully")
}

// Delete 刪除帳號；仍有經手員工紀錄時拒絕
func (h *UserHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "userID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.userService.DeleteUser(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "user deleted successfully")
}

// UploadAvatar 更新頭像
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "userID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestFile("missing avatar file"))
		return
	}

	res, uploadErr := h.userService.UploadAvatar(ctx, id, fileHeader)
	if uploadErr != nil {
		response.AbortWithError(c, uploadErr)
		return
	}
	response.Success(c, res)
}
