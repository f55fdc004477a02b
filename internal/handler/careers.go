package handler

import (
	"recruithub/internal/core"
	"recruithub/internal/dto"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/pkg/response"
	"recruithub/internal/service"
	"recruithub/internal/telemetry"
	"recruithub/utils/validate"

	"github.com/gin-gonic/gin"
)

// CareersHandler 公開應徵入口；不經過 auth middleware
type CareersHandler struct {
	trace              *telemetry.Trace
	recruitmentService *service.RecruitmentService
}

func NewCareersHandler(trace *telemetry.Trace, recruitmentService *service.RecruitmentService) *CareersHandler {
	return &CareersHandler{trace: trace, recruitmentService: recruitmentService}
}

// Apply 投遞應徵表單（multipart：文字欄位 + 至多六份文件）
func (h *CareersHandler) Apply(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.ApplyDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		// 漏填必填欄位給專屬 code，前端據此標紅欄位
		if validate.HasRequiredViolation(cause) {
			respErr = cErr.MissingRequiredFields(cErr.From(respErr).ErrorDesc())
		}
		response.AbortWithError(c, respErr)
		return
	}

	files, err := collectDocumentFiles(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestFile("invalid multipart payload"))
		return
	}

	res, submitErr := h.recruitmentService.SubmitApplication(ctx, &req, files)
	if submitErr != nil {
		response.AbortWithError(c, submitErr)
		return
	}
	response.Create(c, res)
}

// Status 應徵者以表單 id 查詢進度；只回最小欄位
func (h *CareersHandler) Status(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "formID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.recruitmentService.PublicStatus(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Options 表單下拉選項的封閉值域
func (h *CareersHandler) Options(c *gin.Context) {
	_, _, end := h.trace.WithSpan(c)
	defer end(nil)

	response.Success(c, gin.H{
		"genders":    []core.Gender{core.GenderMale, core.GenderFemale},
		"provinces":  core.Provinces,
		"educations": []core.Education{core.EducationSD, core.EducationSMP, core.EducationSMA, core.EducationSMK, core.EducationD3, core.EducationS1, core.EducationS2},
		"positions": []core.Position{
			core.PositionStaff, core.PositionAdminStaff, core.PositionDriver,
			core.PositionOperator, core.PositionTechnician, core.PositionSupervisorRole,
			core.PositionManager, core.PositionSecurityGuard,
		},
		"documents": []core.DocumentKind{
			core.DocumentPhoto, core.DocumentCV, core.DocumentIDCard,
			core.DocumentPoliceClearance, core.DocumentVaccineCertificate, core.DocumentSupporting,
		},
	})
}
