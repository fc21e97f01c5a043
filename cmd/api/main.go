package main

import (
	"log"

	"github.com/careerbridge/jobboard-backend/internal/config"
	"github.com/careerbridge/jobboard-backend/internal/database"
	"github.com/careerbridge/jobboard-backend/internal/handlers"
	"github.com/careerbridge/jobboard-backend/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseURL)

	// 3. Blob storage for profile pictures, resumes and cover letters
	uploader, err := storage.NewDiskUploader(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal("Failed to init upload storage:", err)
	}

	// 4. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Uploaded files are public under /uploads
	r.Static("/uploads", cfg.UploadDir)

	// 5. Define Routes
	handlers.RegisterRoutes(r, db, uploader)

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
