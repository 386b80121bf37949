package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	v1 "github.com/greenstamp/greenstamp/api/v1"
	"github.com/greenstamp/greenstamp/config"
	"github.com/greenstamp/greenstamp/database"
	"github.com/greenstamp/greenstamp/repositories"
	"github.com/greenstamp/greenstamp/services"
	"github.com/greenstamp/greenstamp/web"
)

func main() {
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	// Connect to the database; the handle is torn down at shutdown
	db, err := database.Connect(config.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Destructive bootstrap: drop everything and load the demo data set
	if err := database.ResetAndSeed(db, database.SampleProjects()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Wire repositories and services
	projectRepo := repositories.NewProjectRepository(db)
	userRepo := repositories.NewUserRepository(db)
	projectService := services.NewProjectService(projectRepo)
	authService := services.NewAuthService(userRepo, config.SessionSecret())

	if err := authService.EnsureAdmin(config.AdminEmail(), config.AdminPassword()); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
	}))

	// Cookie session store for flash notices on the admin panel
	store := cookie.NewStore([]byte(config.SessionSecret()))
	router.Use(sessions.Sessions("greenstamp_session", store))

	// HTML templates
	router.SetFuncMap(web.TemplateFuncs())
	router.LoadHTMLGlob("templates/*.html")

	// Routes
	v1.RegisterRoutes(router, projectService)
	web.RegisterRoutes(router, projectService, authService)

	port := config.Port()
	log.Printf("🌱 GreenStamp starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
