package config

import "os"

// Config holds everything read from the environment. godotenv is loaded
// in main before this runs, so a local .env file works for dev.
type Config struct {
	Port          string
	DatabaseURL   string
	UploadDir     string
	PublicBaseURL string
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=jobboard port=5432 sslmode=disable"),
		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
