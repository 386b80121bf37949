package web

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greenstamp/greenstamp/services"
)

// PageHandler renders the public HTML views
type PageHandler struct {
	projects *services.ProjectService
}

// NewPageHandler creates a new page handler instance
func NewPageHandler(projects *services.ProjectService) *PageHandler {
	return &PageHandler{projects: projects}
}

// Index renders the landing page
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Projects renders the listing of certified projects
func (h *PageHandler) Projects(c *gin.Context) {
	projects, err := h.projects.ListApproved()
	if err != nil {
		log.Printf("Failed to load certified projects: %v", err)
		c.String(http.StatusInternalServerError, "Failed to load projects")
		return
	}

	c.HTML(http.StatusOK, "results.html", gin.H{
		"Projects": projects,
	})
}

// Register renders the project submission form
func (h *PageHandler) Register(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// TemplateFuncs returns the helpers available inside HTML templates
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"formatCertified": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("Jan 2, 2006")
		},
	}
}
