package router

import (
	"recruithub/internal/core"
	"recruithub/internal/handler"
	"recruithub/internal/middleware"

	"github.com/gin-gonic/gin"
)

// StaffRouter HR/ADMIN 後台路由；整組掛 auth + role guard
type StaffRouter struct {
	recruitmentHandler *handler.RecruitmentHandler
	employeeHandler    *handler.EmployeeHandler
	statisticsHandler  *handler.StatisticsHandler
	userHandler        *handler.UserHandler
	auth               *middleware.Auth
	roleGuard          *middleware.RoleGuard
}

func NewStaffRouter(
	recruitmentHandler *handler.RecruitmentHandler,
	employeeHandler *handler.EmployeeHandler,
	statisticsHandler *handler.StatisticsHandler,
	userHandler *handler.UserHandler,
	auth *middleware.Auth,
	roleGuard *middleware.RoleGuard,
) *StaffRouter {
	return &StaffRouter{
		recruitmentHandler: recruitmentHandler,
		employeeHandler:    employeeHandler,
		statisticsHandler:  statisticsHandler,
		userHandler:        userHandler,
		auth:               auth,
		roleGuard:          roleGuard,
	}
}

func (sr *StaffRouter) RegisterRoutes(r *gin.Engine) {
	staff := r.Group("/api", sr.auth.Handler(), sr.roleGuard.Require(core.RoleAdmin, core.RoleHR))

	recruitments := staff.Group("/recruitments")
	{
		recruitments.GET("", sr.recruitmentHandler.List)
		recruitments.GET("/:formID", sr.recruitmentHandler.Get)
		recruitments.POST("", sr.recruitmentHandler.Create)
		recruitments.PUT("/:formID", sr.recruitmentHandler.Update)
		recruitments.PATCH("/:formID/status", sr.recruitmentHandler.UpdateStatus)
		recruitments.DELETE("/:formID", sr.recruitmentHandler.Delete)
		recruitments.POST("/:formID/migrate", sr.recruitmentHandler.Migrate)
	}

	employees := staff.Group("/employees")
	{
		employees.GET("", sr.employeeHandler.List)
		employees.GET("/eligible-supervisors", sr.employeeHandler.EligibleSupervisors)
		employees.GET("/:employeeID", sr.employeeHandler.Get)
		employees.PUT("/:employeeID", sr.employeeHandler.Update)
		employees.PATCH("/:employeeID/supervisor", sr.employeeHandler.AssignSupervisor)
		employees.DELETE("/:employeeID", sr.employeeHandler.Deactivate)
		employees.POST("/:employeeID/restore", sr.employeeHandler.Restore)
	}

	statistics := staff.Group("/statistics")
	{
		statistics.GET("/recruitments", sr.statisticsHandler.Recruitments)
		statistics.GET("/employees", sr.statisticsHandler.Employees)
		statistics.GET("/plan-vs-actual", sr.statisticsHandler.PlanVsActual)
		statistics.PUT("/hiring-plans", sr.statisticsHandler.UpsertHiringPlan)
	}

	// 帳號管理整組只開放 ADMIN
	users := r.Group("/api/users", sr.auth.Handler(), sr.roleGuard.Require(core.RoleAdmin))
	{
		users.GET("", sr.userHandler.List)
		users.GET("/:userID", sr.userHandler.Get)
		users.POST("", sr.userHandler.Create)
		users.PUT("/:userID", sr.userHandler.Update)
		users.POST("/:userID/avatar", sr.userHandler.UploadAvatar)
		users.DELETE("/:userID", sr.userHandler.Delete)
	}
}
