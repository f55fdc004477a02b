package middleware

import (
	"fmt"
	"recruithub/config"
	"recruithub/internal/core"
	"recruithub/internal/database/redis/repository"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/pkg/response"
	"recruithub/internal/telemetry"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type Auth struct {
	logger                 *zap.Logger
	trace                  *telemetry.Trace
	config                 *config.Configuration
	revokedTokenRepository *repository.RevokedTokenRepository
}

func NewAuth(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	revokedTokenRepository *repository.RevokedTokenRepository,
) *Auth {
	return &Auth{
		logger:                 logger,
		trace:                  trace,
		config:                 config,
		revokedTokenRepository: revokedTokenRepository,
	}
}

// Handler 驗證 Bearer token，成功後把 Principal 掛到 gin.Context
func (middleware *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))
		meta := core.TraceAuthMiddlewareMeta{ClientIP: c.ClientIP()}

		tokenString := middleware.readBearerToken(c)
		if tokenString == "" {
			meta.Status = "missing_token"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.Unauthorized("missing bearer token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		claims := &core.Claims{}
		token, parseError := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(middleware.config.JWT.SecretKey), nil
		})
		if parseError != nil || !token.Valid {
			meta.Status = "invalid_token"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.Unauthorized("invalid or expired token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		// 登出後的 token 仍在效期內 → 黑名單比對
		if claims.ID != "" {
			revoked, revokedError := middleware.revokedTokenRepository.IsRevoked(ctx, claims.ID)
			if revokedError != nil {
				meta.Status = "revocation_check_failed"
				middleware.trace.ApplyTraceAttributes(span, meta)
				cause := cErr.DatabaseError("token revocation check failed")
				response.AbortWithError(c, cause)
				end(revokedError)
				return
			}
			if revoked {
				meta.Status = "revoked_token"
				middleware.trace.ApplyTraceAttributes(span, meta)
				cause := cErr.InvalidSession("token has been revoked")
				response.AbortWithError(c, cause)
				end(cause)
				return
			}
		}

		principal := core.Principal{
			UserID: claims.Subject,
			Role:   claims.Role,
		}

		meta.UserID = principal.UserID
		meta.Role = string(principal.Role)
		meta.Status = "success"
		middleware.trace.ApplyTraceAttributes(span, meta)

		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()
		middleware.logger.Info("[Auth Authenticated]",
			zap.String("userID", principal.UserID),
			zap.String("role", string(principal.Role)),
			zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		)
		end(nil)

		c.Set(core.ContextPrincipalKey, principal)
		c.Set(core.ContextClaimsKey, claims)
		c.Next()
	}
}

func (middleware *Auth) readBearerToken(c *gin.Context) string {
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if auth == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[len("Bearer "):])
	}
	return ""
}
