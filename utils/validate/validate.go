package validate

import (
	"fmt"
	"recruithub/internal/core"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/pkg/request"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 輸出格式化的 validator error（欄位 json 名/型別/規則列表）
func ValidationErrorResponse(c *gin.Context, obj interface{}, err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var b strings.Builder
		b.WriteString("Validation error:\n")
		for _, fe := range errs {
			field := jsonFieldName(obj, fe.StructField())
			ftype := fieldType(obj, fe.StructField())
			format := getFieldFormat(obj, fe.StructField())
			b.WriteString(fmt.Sprintf(" - Field \"%s\" (type: %s) failed the '%s' validation (rules: %v)\n",
				field, ftype, fe.Tag(), format))
		}
		return b.String()
	}
	return fmt.Sprintf("Validation error: %s", err.Error())
}

func jsonFieldName(obj interface{}, structField string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("json")
		if tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}
	return structField
}

func fieldType(obj interface{}, structField string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		return f.Type.Name()
	}
	return ""
}

func getFieldFormat(obj interface{}, structField string) []string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("binding")
		if tag != "" {
			return strings.Split(tag, ",")
		}
	}
	return nil
}
// HasRequiredViolation 判斷綁定錯誤中是否含 required 違規
func HasRequiredViolation(err error) bool {
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			if fe.Tag() == "required" {
				return true
			}
		}
	}
	return false
}

func ParseObjectID(c *gin.Context, key string) (id primitive.ObjectID, cause error, responseErr error) {
	id, err := primitive.ObjectIDFromHex(c.Param(key))
	if err != nil {
		return primitive.NilObjectID, err, cErr.ValidatePathParamsErr("invalid " + key)
	}
	return id, nil, nil
}

// BindAndValidate 依 method/content-type 綁定（GET → query、multipart → form、其餘 JSON）。
// DTO 實作 request.Validator 時採用其自訂訊息
func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBind(req); err != nil {
		if _, isValidatorErrors := err.(validator.ValidationErrors); isValidatorErrors {
			if _, hasMessages := req.(request.Validator); hasMessages {
				return err, request.GetError(req, err)
			}
			return err, cErr.ValidateErr(ValidationErrorResponse(c, req, err))
		}
		return err, cErr.ValidateErr(err.Error())
	}
	return nil, nil
}
// ===== Role =====
var validRoles = []core.Role{
	core.RoleAdmin,
	core.RoleHR,
}

func IsValidRole(role string) bool {
	for _, v := range validRoles {
		if core.Role(role) == v {
			return true
		}
	}
	return false
}

// ===== RecruitmentStatus =====
var validRecruitmentStatuses = []core.RecruitmentStatus{
	core.StatusPending,
	core.StatusOnProgress,
	core.StatusInterview,
	core.StatusCompleted,
	core.StatusHired,
	core.StatusRejected,
	core.StatusCancelled,
}

func IsValidRecruitmentStatus(status string) bool {
	for _, v := range validRecruitmentStatuses {
		if core.RecruitmentStatus(status) == v {
			return true
		}
	}
	return false
}

// ===== Department / Position =====
func IsValidDepartment(department string) bool {
	_, exist := core.DepartmentPrefixes[core.Department(department)]
	return exist
}

var validPositions = []core.Position{
	core.PositionStaff,
	core.PositionAdminStaff,
	core.PositionDriver,
	core.PositionOperator,
	core.PositionTechnician,
	core.PositionSupervisorRole,
	core.PositionManager,
	core.PositionSecurityGuard,
}

func IsValidPosition(position string) bool {
	for _, v := range validPositions {
		if core.Position(position) == v {
			return true
		}
	}
	return false
}

// ===== Applicant fields =====
var validEducations = []core.Education{
	core.EducationSD,
	core.EducationSMP,
	core.EducationSMA,
	core.EducationSMK,
	core.EducationD3,
	core.EducationS1,
	core.EducationS2,
}

func IsValidEducation(education string) bool {
	for _, v := range validEducations {
		if core.Education(education) == v {
			return true
		}
	}
	return false
}

func IsValidGender(gender string) bool {
	return core.Gender(gender) == core.GenderMale || core.Gender(gender) == core.GenderFemale
}

// IsValidProvince 省份比對不分大小寫
func IsValidProvince(province string) bool {
	upper := strings.ToUpper(strings.TrimSpace(province))
	for _, v := range core.Provinces {
		if upper == v {
			return true
		}
	}
	return false
}

// ===== Employment fields =====
var validEmploymentStatuses = []core.EmploymentStatus{
	core.EmploymentProbation,
	core.EmploymentPermanent,
	core.EmploymentContract,
	core.EmploymentTerminated,
}

func IsValidEmploymentStatus(status string) bool {
	for _, v := range validEmploymentStatuses {
		if core.EmploymentStatus(status) == v {
			return true
		}
	}
	return false
}

var validContractTypes = []core.ContractType{
	core.ContractFullTime,
	core.ContractPartTime,
	core.ContractInternship,
	core.ContractOutsourced,
}

func IsValidContractType(contractType string) bool {
	for _, v := range validContractTypes {
		if core.ContractType(contractType) == v {
			return true
		}
	}
	return false
}

var validShiftPatterns = []core.ShiftPattern{
	core.ShiftRegular,
	core.ShiftMorning,
	core.ShiftEvening,
	core.ShiftNight,
	core.ShiftRotating,
}

func IsValidShiftPattern(shift string) bool {
	for _, v := range validShiftPatterns {
		if core.ShiftPattern(shift) == v {
			return true
		}
	}
	return false
}
