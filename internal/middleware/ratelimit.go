package middleware

import (
	"errors"
	"recruithub/config"
	"recruithub/internal/core"
	"recruithub/internal/database/redis/repository"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/pkg/response"
	"recruithub/internal/telemetry"
	"strconv"

	"github.com/gin-gonic/gin"
)

// 公開應徵入口的固定視窗：一小時
const intakeWindowSeconds int64 = 3600

const intakeScope = "careers"

type RateLimit struct {
	trace                 *telemetry.Trace
	metric                *telemetry.Metric
	config                *config.Configuration
	rateLimiterRepository *repository.RateLimiterRepository
}

func NewRateLimit(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	rateLimiterRepository *repository.RateLimiterRepository,
) *RateLimit {
	return &RateLimit{
		trace:                 trace,
		metric:                metric,
		config:                config,
		rateLimiterRepository: rateLimiterRepository,
	}
}

// Guard 依 client IP 限制公開應徵入口的請求量（固定視窗）
func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRateLimitMiddleware))

		limitCount := middleware.config.Intake.RateLimitPerHour
		if limitCount <= 0 {
			// 未設定 → 不限流
			end(nil)
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		remaining, ttlSec, consumeError := middleware.rateLimiterRepository.Consume(
			ctx,
			clientIP,
			intakeScope,
			intakeWindowSeconds,
			limitCount,
		)

		middleware.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{
			ClientIP:  clientIP,
			Scope:     intakeScope,
			Limit:     limitCount,
			WindowSec: intakeWindowSeconds,
			Remaining: remaining,
			TTL:       ttlSec,
			Op:        "consume",
		})

		// 寫入回應標頭，方便呼叫端與排錯
		c.Header("X-RateLimit-Limit", strconv.Itoa(limitCount))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if ttlSec > 0 {
			c.Header("X-RateLimit-Reset", strconv.FormatInt(ttlSec, 10))
		}

		if consumeError != nil {
			if errors.Is(consumeError, repository.ErrRateLimitExceeded) {
				if ttlSec > 0 {
					c.Header("Retry-After", strconv.FormatInt(ttlSec, 10))
				}
				if middleware.metric.RateLimitTotal != nil {
					middleware.metric.RateLimitTotal.WithLabelValues(c.FullPath()).Inc()
				}
				cause := cErr.RateLimitExceeded("too many applications from this address, retry later")
				response.AbortWithError(c, cause)
				end(cause)
				return
			}
			// Redis 故障不阻斷應徵主流程
			end(consumeError)
			c.Next()
			return
		}
		end(nil)
		c.Next()
	}
}
