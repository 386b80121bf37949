package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/greenstamp/greenstamp/dto"
	"github.com/greenstamp/greenstamp/services"
)

// ProjectController exposes the JSON API over the project service
type ProjectController struct {
	projects *services.ProjectService
}

// NewProjectController creates a new project controller instance
func NewProjectController(projects *services.ProjectService) *ProjectController {
	return &ProjectController{projects: projects}
}

// ListProjects returns the projection of every project in the store
func (ctl *ProjectController) ListProjects(c *gin.Context) {
	projects, err := ctl.projects.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve projects",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewProjectResponseList(projects))
}

// GetProject returns the projection of a single project by ID
func (ctl *ProjectController) GetProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Project not found",
		})
		return
	}

	project, err := ctl.projects.Get(uint(id))
	if err != nil {
		status := http.StatusInternalServerError
		message := "Failed to retrieve project"
		if err == services.ErrNotFound {
			status = http.StatusNotFound
			message = "Project not found"
		}
		c.JSON(status, gin.H{"status": "error", "message": message})
		return
	}

	c.JSON(http.StatusOK, dto.NewProjectResponse(project))
}

// SubmitProject accepts a new project registration. Any failure, whether a
// missing field or a storage fault, answers a structured failure payload with
// status 400 and leaves no partial write behind.
func (ctl *ProjectController) SubmitProject(c *gin.Context) {
	var req dto.SubmitProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.SubmitProjectResponse{
			Success: false,
			Message: "Error submitting project: " + err.Error(),
		})
		return
	}

	project, err := ctl.projects.Submit(req.Name, req.Location, req.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.SubmitProjectResponse{
			Success: false,
			Message: "Error submitting project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SubmitProjectResponse{
		Success:   true,
		Message:   "Project submitted successfully! Our team will review it soon.",
		ProjectID: project.ID,
	})
}
