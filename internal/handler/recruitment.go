package handler

import (
	"recruithub/internal/dto"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/pkg/response"
	"recruithub/internal/service"
	"recruithub/internal/telemetry"
	"recruithub/utils/validate"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecruitmentHandler 人員端的招募表單管理
type RecruitmentHandler struct {
	trace              *telemetry.Trace
	recruitmentService *service.RecruitmentService
	employeeService    *service.EmployeeService
}

func NewRecruitmentHandler(
	trace *telemetry.Trace,
	recruitmentService *service.RecruitmentService,
	employeeService *service.EmployeeService,
) *RecruitmentHandler {
	return &RecruitmentHandler{
		trace:              trace,
		recruitmentService: recruitmentService,
		employeeService:    employeeService,
	}
}

// List 表單列表（狀態/省份/學歷/職缺/全文/日期區間）
func (h *RecruitmentHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var query dto.ListRecruitmentQuery
	if cause, respErr := validate.BindAndValidate(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	forms, total, err := h.recruitmentService.ListForms(ctx, &query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, dto.NewPage(forms, total, query.Page, query.Size))
}

// Get 取得單一表單（含文件參照）
func (h *RecruitmentHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "formID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	form, err := h.recruitmentService.GetForm(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, form)
}

// Create 人員代建表單；經手人記在 createdBy
func (h *RecruitmentHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	principal, ok := getPrincipal(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("missing credentials"))
		return
	}
	createdBy, err := primitive.ObjectIDFromHex(principal.UserID)
	if err != nil {
		response.AbortWithError(c, cErr.Unauthorized("invalid principal"))
		return
	}

	var req dto.ApplyDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	files, filesErr := collectDocumentFiles(c)
	if filesErr != nil {
		end(filesErr)
		response.AbortWithError(c, cErr.BadRequestFile("invalid multipart payload"))
		return
	}

	res, createErr := h.recruitmentService.StaffCreate(ctx, &req, files, createdBy)
	if createErr != nil {
		response.AbortWithError(c, createErr)
		return
	}
	response.Create(c, res)
}

// Update 部分更新；重新上傳的文件走同一組欄位名
func (h *RecruitmentHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "formID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateRecruitmentDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	documentFiles, filesErr := collectDocumentFiles(c)
	if filesErr != nil {
		// 純文字更新沒有 multipart 檔案也合法
		documentFiles = nil
	}

	form, err := h.recruitmentService.UpdateForm(ctx, id, &req, documentFiles)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, form)
}

// UpdateStatus 狀態流轉
func (h *RecruitmentHandler) UpdateStatus(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "formID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	principal, ok := getPrincipal(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("missing credentials"))
		return
	}

	var req dto.UpdateRecruitmentStatusDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	form, err := h.recruitmentService.UpdateStatus(ctx, id, req.Status, principal)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, form)
}

// Delete 刪除表單並清除外部文件
func (h *RecruitmentHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "formID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.recruitmentService.DeleteForm(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "recruitment form deleted successfully")
}

// Migrate 將 HIRED 表單轉入員工名冊
func (h *RecruitmentHandler) Migrate(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "formID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	principal, ok := getPrincipal(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("missing credentials"))
		return
	}

	var req dto.MigrateDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, err := h.employeeService.MigrateCandidateToEmployee(ctx, id, &req, principal)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, employee)
}
