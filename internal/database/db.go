package database

import (
	"log"

	"github.com/careerbridge/jobboard-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the signup path relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	return db
}

// Migrate creates or updates the schema. Split out from Connect so tests
// can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.EmployerProfile{},
		&models.AdminProfile{},
		&models.Job{},
		&models.Application{},
		&models.Course{},
	)
}
