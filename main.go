package main

import (
	"log"
	"os"
	"time"

	"competition-portal-server/handlers/auth"
	"competition-portal-server/handlers/competitions"
	"competition-portal-server/handlers/forum"
	"competition-portal-server/handlers/notifications"
	"competition-portal-server/handlers/submissions"
	"competition-portal-server/handlers/uploads"
	"competition-portal-server/migrations"
	"competition-portal-server/notify"
	"competition-portal-server/seed"
	"competition-portal-server/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	r := gin.Default()

	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()

	migrations.MigrateUsers()
	migrations.MigrateCompetitions()
	migrations.MigrateForum()
	migrations.MigrateNotifications()

	// Seed Initial Data
	if err := seed.SeedAdminUser(); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := seed.SeedBannedWords(); err != nil {
		log.Fatalf("Failed to seed banned words: %v", err)
	}

	notifySvc := notify.NewService(notify.NewGormStore(utils.DB))

	// Public routes
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.POST("/refresh", auth.RefreshToken)
	r.Static("/files", uploads.UploadDir())

	public := r.Group("/")

	protected := r.Group("/")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("/logout", auth.Logout)
		protected.POST("/save-push-token", auth.SavePushToken)
		submissions.RegisterSubmissionsRoutes(protected)
		uploads.RegisterUploadsRoutes(protected)
	}

	competitions.RegisterCompetitionsRoutes(public, protected)
	forum.RegisterForumRoutes(public, protected, notifySvc)
	notifications.RegisterNotificationsRoutes(protected, notifySvc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
