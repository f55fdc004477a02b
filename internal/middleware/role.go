package middleware

import (
	"recruithub/internal/core"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/pkg/response"
	"recruithub/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type RoleGuard struct {
	trace *telemetry.Trace
}

func NewRoleGuard(trace *telemetry.Trace) *RoleGuard {
	return &RoleGuard{trace: trace}
}

// Require 只放行指定角色；必須掛在 Auth.Handler 之後
func (middleware *RoleGuard) Require(roles ...core.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRoleMiddleware))
		meta := core.TraceAuthMiddlewareMeta{ClientIP: c.ClientIP()}

		raw, exist := c.Get(core.ContextPrincipalKey)
		if !exist {
			meta.Status = "missing_principal"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.Unauthorized("authentication required")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}
		principal, ok := raw.(core.Principal)
		if !ok {
			meta.Status = "invalid_principal"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.InternalServer("invalid principal data")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		meta.UserID = principal.UserID
		meta.Role = string(principal.Role)

		for _, role := range roles {
			if principal.Role == role {
				meta.Status = "success"
				middleware.trace.ApplyTraceAttributes(span, meta)
				end(nil)
				c.Next()
				return
			}
		}

		meta.Status = "forbidden_role"
		middleware.trace.ApplyTraceAttributes(span, meta)
		cause := cErr.Forbidden("forbidden: role not allowed")
		response.AbortWithError(c, cause)
		end(cause)
	}
}
