package web

import (
	"github.com/gin-gonic/gin"
	"github.com/greenstamp/greenstamp/middleware"
	"github.com/greenstamp/greenstamp/services"
)

// RegisterRoutes registers the HTML views and the admin review workflow
func RegisterRoutes(router *gin.Engine, projects *services.ProjectService, auth *services.AuthService) {
	pages := NewPageHandler(projects)
	router.GET("/", pages.Index)
	router.GET("/projects", pages.Projects)
	router.GET("/register", pages.Register)

	admin := NewAdminHandler(projects, auth)
	router.GET("/admin/login", admin.LoginForm)
	router.POST("/admin/login", admin.Login)

	// Review actions are POST only and require an admin token
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AdminAuth(auth))
	{
		adminGroup.GET("", admin.Dashboard)
		adminGroup.POST("/logout", admin.Logout)
		adminGroup.POST("/projects/:id/approve", admin.Approve)
		adminGroup.POST("/projects/:id/reject", admin.Reject)
	}
}
