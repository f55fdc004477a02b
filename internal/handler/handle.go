package handler

import (
	"mime/multipart"
	"strconv"

	"recruithub/internal/core"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

// ProviderSet Provider对象集合
var ProviderSet = wire.NewSet(
	NewAuthHandler,
	NewUserHandler,
	NewCareersHandler,
	NewRecruitmentHandler,
	NewEmployeeHandler,
	NewStatisticsHandler,
	NewHealthHandler,
)

// getPrincipal 取出 auth middleware 掛上的身分；拿不到代表路由掛錯
func getPrincipal(c *gin.Context) (core.Principal, bool) {
	value, exist := c.Get(core.ContextPrincipalKey)
	if !exist {
		return core.Principal{}, false
	}
	principal, ok := value.(core.Principal)
	return principal, ok
}

func getClaims(c *gin.Context) (*core.Claims, bool) {
	value, exist := c.Get(core.ContextClaimsKey)
	if !exist {
		return nil, false
	}
	claims, ok := value.(*core.Claims)
	return claims, ok
}

func getInt64Query(c *gin.Context, key string, defaultVal int64) int64 {
	if v := c.Query(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return defaultVal
}

// collectDocumentFiles 依固定欄位名收集應徵文件；
// supporting 允許多檔，其餘欄位各取一檔
func collectDocumentFiles(c *gin.Context) (map[core.DocumentKind][]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	files := map[core.DocumentKind][]*multipart.FileHeader{}
	for field, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		files[core.DocumentKind(field)] = headers
	}
	return files, nil
}
