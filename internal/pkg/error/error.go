package error

import "net/http"

type Error struct {
	httpCode  int
	errorCode int
	errorMsg  string
	errorDesc string
}

func New(httpCode, errorCode int, errorMsg string, errorDesc string) *Error {
	return &Error{
		httpCode:  httpCode,
		errorCode: errorCode,
		errorMsg:  errorMsg,
		errorDesc: errorDesc,
	}

}
func From(err error) *Error {
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return InternalServer(err.Error())
}

// ✅ 用戶端錯誤 (400 系列)
func ValidateErr(errorDesc string) *Error {
	errCode := BAD_REQUEST_BODY
	return New(http.StatusBadRequest, errCode, "bad-request/body", errorDesc)
}
func ValidatePathParamsErr(errorDesc string) *Error {
	errCode := BAD_REQUEST_PARAMS
	return New(http.StatusBadRequest, errCode, "bad-request/params", errorDesc)
}

// 更語義化的建構器（Consume 會用到）
func RateLimiterUnavailable(desc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "rate-limiter-unavailable", desc)
}

// ✅ 伺服器內部錯誤 (500 系列)
func InternalServer(errorDesc string) *Error {
	return New(http.StatusInternalServerError, INTERNAL_ERROR, "internal-server-error", errorDesc)
}

func DatabaseError(errorDesc string) *Error {
	return New(http.StatusInternalServerError, DATABASE_ERROR, "database-error", errorDesc)
}

func ServiceUnavailable(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "service-unavailable", errorDesc)
}

// ✅ 外部 API 錯誤 (502, 504)
func ExternalRequestError(errorDesc string) *Error {
	return New(http.StatusBadGateway, EXTERNAL_REQUEST_ERROR, "external-request-failed", errorDesc)
}

func ExternalResponseFormatError(errorDesc string) *Error {
	return New(http.StatusBadGateway, EXTERNAL_RESPONSE_FORMAT_ERROR, "external-response-invalid", errorDesc)
}

func StorageError(errorDesc string) *Error {
	return New(http.StatusBadGateway, STORAGE_ERROR, "storage-error", errorDesc)
}

func GatewayTimeout(errorDesc string) *Error {
	return New(http.StatusGatewayTimeout, GATEWAY_TIMEOUT, "gateway-timeout", errorDesc)
}

// ✅ 用戶請求錯誤 (400 系列)
func BadRequest(errorDesc string, errorCode ...int) *Error {
	errCode := BAD_REQUEST_BODY
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusBadRequest, errCode, "bad-request", errorDesc)
}
func BadRequestBody(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, "bad-request-body", errorDesc)
}

func BadRequestParams(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_PARAMS, "bad-request-params", errorDesc)
}

func BadRequestHeaders(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_HEADERS, "bad-request-headers", errorDesc)
}

func BadRequestFile(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_FILE, "bad-request-file", errorDesc)
}

func InvalidProvince(errorDesc string) *Error {
	return New(http.StatusBadRequest, INVALID_PROVINCE, "invalid-province", errorDesc)
}

func MissingRequiredFields(errorDesc string) *Error {
	return New(http.StatusBadRequest, MISSING_REQUIRED_FIELDS, "missing-required-fields", errorDesc)
}

func InvalidDocumentType(errorDesc string) *Error {
	return New(http.StatusBadRequest, INVALID_DOCUMENT_TYPE, "invalid-document-type", errorDesc)
}

// ✅ 領域狀態衝突 (400, 409 系列)
func AlreadyMigrated(errorDesc string) *Error {
	return New(http.StatusConflict, ALREADY_MIGRATED, "already-migrated", errorDesc)
}

func CircularSupervision(errorDesc string) *Error {
	return New(http.StatusConflict, CIRCULAR_SUPERVISION, "circular-supervision", errorDesc)
}

func SelfSupervision(errorDesc string) *Error {
	return New(http.StatusBadRequest, SELF_SUPERVISION, "self-supervision", errorDesc)
}

func EmployeeIDExists(errorDesc string) *Error {
	return New(http.StatusConflict, EMPLOYEE_ID_EXISTS, "employee-id-exists", errorDesc)
}

func HasActiveSubordinates(errorDesc string) *Error {
	return New(http.StatusConflict, HAS_ACTIVE_SUBORDINATES, "has-active-subordinates", errorDesc)
}

func InvalidStatusTransition(errorDesc string) *Error {
	return New(http.StatusBadRequest, INVALID_STATUS_TRANSITION, "invalid-status-transition", errorDesc)
}

func EmailExists(errorDesc string) *Error {
	return New(http.StatusConflict, EMAIL_EXISTS, "email-exists", errorDesc)
}

func NotTerminated(errorDesc string) *Error {
	return New(http.StatusBadRequest, NOT_TERMINATED, "not-terminated", errorDesc)
}

func SupervisorInactive(errorDesc string) *Error {
	return New(http.StatusBadRequest, SUPERVISOR_INACTIVE, "supervisor-inactive", errorDesc)
}

// ✅ 權限錯誤 (401, 403)
func Unauthorized(errorDesc string, errorCode ...int) *Error {
	errCode := UNAUTHORIZED
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusUnauthorized, errCode, "unauthorized", errorDesc)
}

func InvalidSession(errorDesc string) *Error {
	return New(http.StatusUnauthorized, INVALID_SESSION, "invalid-session", errorDesc)
}

func RateLimitExceeded(errorDesc string) *Error {
	return New(http.StatusTooManyRequests, RATE_LIMIT_EXCEEDED, "rate-limit-exceeded", errorDesc)
}

func Forbidden(errorDesc string, errorCode ...int) *Error {
	errCode := FORBIDDEN
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusForbidden, errCode, "forbidden", errorDesc)
}

// ✅ 資源找不到 (404)
func NotFound(errorDesc string, errorCode ...int) *Error {
	errCode := NOT_FOUND
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusNotFound, errCode, "not-found", errorDesc)
}
func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}
func (e *Error) ErrorDesc() string {
	return e.errorDesc
}
func (e *Error) Error() string {
	return e.errorMsg
}
func MapHttpStatusToError(status int, desc string) *Error {
	switch status {
	case http.StatusBadRequest:
		return BadRequest(desc)
	case http.StatusUnauthorized:
		return Unauthorized(desc)
	case http.StatusForbidden:
		return Forbidden(desc)
	case http.StatusNotFound:
		return NotFound(desc)
	case http.StatusInternalServerError:
		return InternalServer(desc)
	case http.StatusServiceUnavailable:
		return ServiceUnavailable(desc)
	case http.StatusGatewayTimeout:
		return GatewayTimeout(desc)
	default:
		return InternalServer(desc)
	}
}
