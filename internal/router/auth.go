package router

import (
	"recruithub/internal/handler"
	"recruithub/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthRouter struct {
	authHandler *handler.AuthHandler
	auth        *middleware.Auth
}

func NewAuthRouter(
	authHandler *handler.AuthHandler,
	auth *middleware.Auth,
) *AuthRouter {
	return &AuthRouter{
		authHandler: authHandler,
		auth:        auth,
	}
}

func (ar *AuthRouter) RegisterRoutes(r *gin.Engine) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", ar.authHandler.Login)
		authGroup.POST("/logout", ar.auth.Handler(), ar.authHandler.Logout)
		authGroup.GET("/me", ar.auth.Handler(), ar.authHandler.Me)
	}
}
