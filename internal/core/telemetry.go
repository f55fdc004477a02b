package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest         TraceSpanName = "http_request"
	SpanLoggerMiddleware    TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware  TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware      TraceSpanName = "cors_middleware"
	SpanResponseMiddleware  TraceSpanName = "response_middleware"
	SpanAuthMiddleware      TraceSpanName = "auth_middleware"
	SpanRoleMiddleware      TraceSpanName = "role_middleware"
	SpanRateLimitMiddleware TraceSpanName = "ratelimit_middleware"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal       MetricName = "requests_total"
	MetricHttpRequestDuration     MetricName = "request_duration_seconds"
	MetricRequestSuccessTotal     MetricName = "request_success_total"
	MetricRequestFailTotal        MetricName = "request_fail_total"
	MetricApplicationsTotal       MetricName = "applications_submitted_total"
	MetricMigrationsTotal         MetricName = "employee_migrations_total"
	MetricTransitionRejectedTotal MetricName = "status_transition_rejected_total"
	MetricRateLimitTotal          MetricName = "rate_limited_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint   MetricLabelName = "endpoint"
	MetricLabelStatus     MetricLabelName = "status"
	MetricLabelReason     MetricLabelName = "reason"
	MetricLabelDepartment MetricLabelName = "department"
	MetricLabelPosition   MetricLabelName = "position"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.duration_ms"`
	Data       string  `trace:"response.data"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.duration_ms"`
	Message    string  `trace:"panic.message"`
	Stack      string  `trace:"panic.stack"`
	Status     int     `trace:"http.status"`
}

// 供 auth middleware 使用
type TraceAuthMiddlewareMeta struct {
	UserID   string `trace:"auth.user_id,omitempty"`
	Role     string `trace:"auth.role,omitempty"`
	ClientIP string `trace:"net.peer.ip"`
	Status   string `trace:"auth.status"`
}

// 供 Redis 限流 Consume / Reset 使用
type TraceRateLimitMeta struct {
	ClientIP  string `trace:"rl.client_ip"`
	Scope     string `trace:"rl.scope"`
	Limit     int    `trace:"rl.limit_count"`
	WindowSec int64  `trace:"rl.window_sec"`
	Remaining int    `trace:"rl.remaining,omitempty"`
	TTL       int64  `trace:"rl.ttl_sec,omitempty"`
	Op        string `trace:"rl.op"` // "consume" / "reset" / "get"
}

// 供招募/員工 service 紀錄查詢條件與結果筆數
type TraceListMeta struct {
	Page        int64          `trace:"list.page"`
	Size        int64          `trace:"list.size"`
	Filter      map[string]any `trace:"filter,omitempty"`
	ResultCount int            `trace:"result.count,omitempty"`
	Error       *string        `trace:"error,omitempty"`
}

// 供遷移/階層操作使用
type TraceHierarchyMeta struct {
	EmployeeID   string `trace:"employee.id,omitempty"`
	SupervisorID string `trace:"employee.supervisor_id,omitempty"`
	FormID       string `trace:"recruitment.form_id,omitempty"`
	Op           string `trace:"op"`
	Status       string `trace:"status,omitempty"`
}

// 供物件儲存上傳/刪除使用
type TraceStorageMeta struct {
	Field    string `trace:"storage.field,omitempty"`
	PublicID string `trace:"storage.public_id,omitempty"`
	Bytes    int64  `trace:"storage.bytes,omitempty"`
	Op       string `trace:"storage.op"`
}
