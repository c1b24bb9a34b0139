package database

import (
	"fmt"
	"log"

	config "github.com/gqmo/exam-server/configs"
	"github.com/gqmo/exam-server/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.ExamPaper{},
		&models.Submission{},
		&models.Score{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// Transaction provides a transactional scope around a unit of work: commit
// on normal return, roll back and propagate the error otherwise.
func Transaction(fn func(tx *gorm.DB) error) error {
	return DB.Transaction(fn)
}
