package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY    = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS  = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_HEADERS = 40002 // 400 - 無效的請求標頭
	BAD_REQUEST_FILE    = 40003 // 400 - 上傳檔案無效（格式或大小）

	// 40010 ~ 40019: 應徵表單驗證錯誤
	INVALID_PROVINCE        = 40010 // 400 - 省份不在許可清單
	MISSING_REQUIRED_FIELDS = 40011 // 400 - 必填欄位缺漏
	INVALID_DOCUMENT_TYPE   = 40012 // 400 - 文件欄位或類型不被接受

	// 40020 ~ 40099: 領域狀態衝突 (400 / 409 系列)
	ALREADY_MIGRATED          = 40020 // 409 - 錄取表單已轉入員工名冊
	CIRCULAR_SUPERVISION      = 40021 // 409 - 主管指派會形成循環
	SELF_SUPERVISION          = 40022 // 400 - 不可指派自己為主管
	EMPLOYEE_ID_EXISTS        = 40023 // 409 - 員工編號已存在
	HAS_ACTIVE_SUBORDINATES   = 40024 // 409 - 仍有在職下屬，不可停用
	INVALID_STATUS_TRANSITION = 40025 // 400 - 不允許的狀態轉換
	EMAIL_EXISTS              = 40026 // 409 - Email 已被使用
	NOT_TERMINATED            = 40027 // 400 - 員工非離職狀態，不可復職
	SUPERVISOR_INACTIVE       = 40028 // 400 - 指定的主管已停用

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED    = 40100 // 401 - 未授權
	INVALID_SESSION = 40101 // 401 - 會話失效（token 撤銷或過期）
	FORBIDDEN       = 40301 // 403 - 禁止訪問（角色不足）

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND = 40400 // 404 - 資源未找到

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 速率限制超過

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	DATABASE_ERROR      = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停 (維護模式)

	// 50200 ~ 50499: 外部請求錯誤 (502 504 系列)
	EXTERNAL_REQUEST_ERROR         = 50200 // 502 - 外部 API 請求錯誤
	EXTERNAL_RESPONSE_FORMAT_ERROR = 50201 // 502 - 外部 API 回應格式錯誤
	STORAGE_ERROR                  = 50202 // 502 - 檔案儲存服務錯誤
	GATEWAY_TIMEOUT                = 50400 // 504 - 外部 API 超時
)
