package repositories

import (
	"time"

	"github.com/greenstamp/greenstamp/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := r.db.Create(&project)
	return project, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id uint) (models.Project, error) {
	var project models.Project
	result := r.db.First(&project, "id = ?", id)
	return project, result.Error
}

// FindAll retrieves all projects
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Find(&projects)
	return projects, result.Error
}

// FindByStatus retrieves all projects with the given review status
func (r *ProjectRepository) FindByStatus(status models.ProjectStatus) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Where("status = ?", status).Find(&projects)
	return projects, result.Error
}

// FindAllByRecency retrieves all projects ordered by creation time, newest first
func (r *ProjectRepository) FindAllByRecency() ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Order("created_at DESC").Find(&projects)
	return projects, result.Error
}

// UpdateStatus applies a status transition to a single project. When
// certifiedAt is non-nil the certification timestamp is stamped alongside the
// status; when nil the stored value is left untouched. Returns
// gorm.ErrRecordNotFound if the id is absent.
func (r *ProjectRepository) UpdateStatus(id uint, status models.ProjectStatus, certifiedAt *time.Time) (models.Project, error) {
	var project models.Project
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			return err
		}

		changes := map[string]interface{}{"status": status}
		if certifiedAt != nil {
			changes["certified_at"] = *certifiedAt
		}

		if err := tx.Model(&project).Updates(changes).Error; err != nil {
			return err
		}

		// Re-read so the caller sees exactly what was stored
		return tx.First(&project, "id = ?", id).Error
	})
	return project, err
}
