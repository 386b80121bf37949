package database

import (
	"fmt"
	"log"
	"time"

	"github.com/greenstamp/greenstamp/models"
	"gorm.io/gorm"
)

// ResetAndSeed destructively reinitializes the project table and loads the
// given records. Every process restart discards prior submissions; this is
// demo data, not a migration mechanism.
func ResetAndSeed(db *gorm.DB, projects []models.Project) error {
	if err := db.Migrator().DropTable(&models.Project{}, &models.User{}); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	if err := Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if len(projects) > 0 {
		if err := db.Create(&projects).Error; err != nil {
			return fmt.Errorf("failed to insert seed projects: %w", err)
		}
	}

	log.Printf("🌱 Seeded %d sample projects", len(projects))
	return nil
}

func certDate(year int, month time.Month) *time.Time {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return &t
}

// SampleProjects returns the fixed set of certified demonstration projects
// loaded at every process start.
func SampleProjects() []models.Project {
	return []models.Project{
		{
			Name:            "Mangrove Restoration Initiative",
			Location:        "Palawan, Philippines",
			Description:     "This comprehensive project restores degraded mangrove forests along the coast, protecting vital coastal ecosystems and supporting local biodiversity. The initiative involves community participation and sustainable fishing practices.",
			Status:          models.StatusApproved,
			CertifiedAt:     certDate(2025, time.March),
			BackgroundImage: "https://images.unsplash.com/photo-1544551763-46a013bb70d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
		},
		{
			Name:            "Solar Village Project",
			Location:        "Cebu, Philippines",
			Description:     "Provides renewable solar energy solutions to rural communities, significantly reducing carbon footprint while promoting sustainable development. The project includes education programs and maintenance training for local residents.",
			Status:          models.StatusApproved,
			CertifiedAt:     certDate(2025, time.April),
			BackgroundImage: "https://images.unsplash.com/photo-1497435334941-8c899ee9e8e9?ixlib=rb-4.0.3&auto=format&fit=crop&w=2074&q=80",
		},
		{
			Name:            "Community Reforestation Program",
			Location:        "Bukidnon, Philippines",
			Description:     "Empowers local farmers to plant native tree species, restoring degraded upland areas and supporting watershed health. The program includes sustainable agriculture training and biodiversity conservation education.",
			Status:          models.StatusApproved,
			CertifiedAt:     certDate(2025, time.February),
			BackgroundImage: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?ixlib=rb-4.0.3&auto=format&fit=crop&w=2071&q=80",
		},
		{
			Name:            "Urban Green Spaces Initiative",
			Location:        "Metro Manila, Philippines",
			Description:     "Transforms urban areas into green spaces through vertical gardens, rooftop farming, and community parks. This project improves air quality and provides fresh produce to urban communities while promoting environmental awareness.",
			Status:          models.StatusApproved,
			CertifiedAt:     certDate(2025, time.January),
			BackgroundImage: "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
		},
		{
			Name:            "Marine Conservation Program",
			Location:        "Bohol, Philippines",
			Description:     "Protects marine ecosystems through coral reef restoration, sustainable fishing practices, and marine education programs. The initiative involves local fishermen and marine biologists working together to preserve ocean biodiversity.",
			Status:          models.StatusApproved,
			CertifiedAt:     certDate(2024, time.December),
			BackgroundImage: "https://images.unsplash.com/photo-1559827260-dc66d52bef19?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
		},
		{
			Name:            "Waste-to-Energy Facility",
			Location:        "Davao, Philippines",
			Description:     "Converts organic waste into clean energy through innovative biogas technology. The facility serves as a model for sustainable waste management while providing renewable energy to local communities and reducing landfill dependency.",
			Status:          models.StatusApproved,
			CertifiedAt:     certDate(2024, time.November),
			BackgroundImage: "https://images.unsplash.com/photo-1518837695005-2083093ee35b?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
		},
	}
}
