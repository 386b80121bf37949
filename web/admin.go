package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/greenstamp/greenstamp/dto"
	"github.com/greenstamp/greenstamp/services"
)

// AdminHandler renders the review panel and applies approve/reject actions
type AdminHandler struct {
	projects *services.ProjectService
	auth     *services.AuthService
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(projects *services.ProjectService, auth *services.AuthService) *AdminHandler {
	return &AdminHandler{projects: projects, auth: auth}
}

// LoginForm renders the admin login page
func (h *AdminHandler) LoginForm(c *gin.Context) {
	session := sessions.Default(c)
	errors := session.Flashes("error")
	session.Save()

	c.HTML(http.StatusOK, "login.html", gin.H{
		"Errors": errors,
	})
}

// Login authenticates the reviewer and sets the admin token cookie
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.loginFailed(c, "Email and password are required")
		return
	}

	authResponse, err := h.auth.Login(req)
	if err != nil {
		h.loginFailed(c, "Invalid email or password")
		return
	}

	// HttpOnly cookie, 24 hours, matching the token lifetime
	c.SetCookie("access_token", authResponse.Token, 86400, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHandler) loginFailed(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, "error")
	session.Save()
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

// Logout clears the admin token cookie
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

// Dashboard renders every project, newest first, with review controls
func (h *AdminHandler) Dashboard(c *gin.Context) {
	projects, err := h.projects.ListAllByRecency()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load projects")
		return
	}

	session := sessions.Default(c)
	successes := session.Flashes("success")
	warnings := session.Flashes("warning")
	session.Save()

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Projects":  projects,
		"Successes": successes,
		"Warnings":  warnings,
	})
}

// Approve certifies a project and redirects back to the panel
func (h *AdminHandler) Approve(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	project, err := h.projects.Approve(id)
	if err != nil {
		h.actionFailed(c, err)
		return
	}

	session := sessions.Default(c)
	session.AddFlash(fmt.Sprintf("Project %q has been approved!", project.Name), "success")
	session.Save()
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Reject marks a project as rejected and redirects back to the panel
func (h *AdminHandler) Reject(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	project, err := h.projects.Reject(id)
	if err != nil {
		h.actionFailed(c, err)
		return
	}

	session := sessions.Default(c)
	session.AddFlash(fmt.Sprintf("Project %q has been rejected.", project.Name), "warning")
	session.Save()
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHandler) projectID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "Project not found")
		return 0, false
	}
	return uint(id), true
}

func (h *AdminHandler) actionFailed(c *gin.Context, err error) {
	if err == services.ErrNotFound {
		c.String(http.StatusNotFound, "Project not found")
		return
	}
	c.String(http.StatusInternalServerError, "Failed to update project")
}
