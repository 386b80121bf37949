package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/greenstamp/greenstamp/services"
)

// RegisterRoutes registers the JSON API routes and the submission endpoint
func RegisterRoutes(router *gin.Engine, projects *services.ProjectService) {
	ctl := NewProjectController(projects)

	// Submission endpoint used by the registration form
	router.POST("/submit_project", ctl.SubmitProject)

	api := router.Group("/api")
	{
		api.GET("/health", HealthCheck)
		api.GET("/projects", ctl.ListProjects)
		api.GET("/projects/:id", ctl.GetProject)
	}
}
