package router

import (
	"net/http"

	"recruithub/config"
	"recruithub/internal/middleware"
	"recruithub/internal/pkg/response"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewCareersRouter,
	NewAuthRouter,
	NewStaffRouter,
	NewHealthRouter,
)

// NewRouter 組裝 gin 引擎：全域 middleware、基礎端點與各路由群組
func NewRouter(
	config *config.Configuration,
	recovery *middleware.Recovery,
	cors *middleware.Cors,
	logger *middleware.Logger,
	responseMiddleware *middleware.Response,
	careersRouter *CareersRouter,
	authRouter *AuthRouter,
	staffRouter *StaffRouter,
	healthRouter *HealthRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	// JSON body 不接受未宣告的欄位
	binding.EnableDecoderDisallowUnknownFields = true
	router := gin.New()
	router.Use(logger.LoggerHandler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())
	router.Use(responseMiddleware.FormatHandler())
	router.GET("/health-check", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Response{
			Code:        0,
			Data:        "ok",
			Message:     "success",
			Description: "service is alive",
		})
		c.Abort()
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	careersRouter.RegisterRoutes(router)
	authRouter.RegisterRoutes(router)
	staffRouter.RegisterRoutes(router)
	healthRouter.RegisterHealthRoutes(router)
	pprof.Register(router)
	return router
}
