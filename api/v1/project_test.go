package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/greenstamp/greenstamp/database"
	"github.com/greenstamp/greenstamp/dto"
	"github.com/greenstamp/greenstamp/models"
	"github.com/greenstamp/greenstamp/repositories"
	"github.com/greenstamp/greenstamp/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.ProjectService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	svc := services.NewProjectService(repositories.NewProjectRepository(db))
	router := gin.New()
	RegisterRoutes(router, svc)
	return router, svc
}

func submitJSON(t *testing.T, router *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/submit_project", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestSubmitProjectSuccess(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := submitJSON(t, router, map[string]string{
		"name":        "Reef Watch",
		"location":    "Cebu",
		"description": "Coral reef monitoring by volunteer divers",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp dto.SubmitProjectResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotZero(t, resp.ProjectID)
	assert.Contains(t, resp.Message, "submitted successfully")
}

func TestSubmitProjectMissingField(t *testing.T) {
	router, svc := newTestRouter(t)

	rr := submitJSON(t, router, map[string]string{
		"name":     "Reef Watch",
		"location": "Cebu",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp dto.SubmitProjectResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Zero(t, resp.ProjectID)

	// Nothing may be persisted on a failed submission
	projects, err := svc.ListAll()
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestListProjectsReturnsProjections(t *testing.T) {
	router, svc := newTestRouter(t)

	submitted, err := svc.Submit("Reef Watch", "Cebu", "desc")
	require.NoError(t, err)
	_, err = svc.Approve(submitted.ID)
	require.NoError(t, err)
	_, err = svc.Submit("River Cleanup", "Pasig", "desc")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.ProjectResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)

	byName := map[string]dto.ProjectResponse{}
	for _, p := range resp {
		byName[p.Name] = p
	}

	approved := byName["Reef Watch"]
	assert.Equal(t, string(models.StatusApproved), approved.Status)
	require.NotNil(t, approved.CreatedAt)
	require.NotNil(t, approved.CertifiedAt)

	pending := byName["River Cleanup"]
	assert.Equal(t, string(models.StatusPending), pending.Status)
	assert.Nil(t, pending.CertifiedAt)
}

func TestGetProjectByID(t *testing.T) {
	router, svc := newTestRouter(t)

	submitted, err := svc.Submit("Reef Watch", "Cebu", "desc")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/projects/%d", submitted.ID), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp dto.ProjectResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, submitted.ID, resp.ID)
	assert.Equal(t, "Reef Watch", resp.Name)
	assert.Equal(t, string(models.StatusPending), resp.Status)
	assert.Nil(t, resp.CertifiedAt)
}

func TestGetProjectNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/projects/999", "/api/projects/not-a-number"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code, "path %s", path)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp["status"])
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "greenstamp", resp["service"])
}
