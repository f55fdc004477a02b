package router

import (
	"recruithub/internal/handler"
	"recruithub/internal/middleware"

	"github.com/gin-gonic/gin"
)

// CareersRouter 公開應徵入口；只有投遞端點掛限流
type CareersRouter struct {
	careersHandler *handler.CareersHandler
	rateLimit      *middleware.RateLimit
}

func NewCareersRouter(
	careersHandler *handler.CareersHandler,
	rateLimit *middleware.RateLimit,
) *CareersRouter {
	return &CareersRouter{
		careersHandler: careersHandler,
		rateLimit:      rateLimit,
	}
}

func (cr *CareersRouter) RegisterRoutes(r *gin.Engine) {
	careers := r.Group("/api/careers")
	{
		careers.POST("/apply", cr.rateLimit.Guard(), cr.careersHandler.Apply)
		careers.GET("/status/:formID", cr.careersHandler.Status)
		careers.GET("/options", cr.careersHandler.Options)
	}
}
