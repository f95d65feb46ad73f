package config

import (
	"fmt"
	"log"
	"os"

	"newsapp-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "newsapp"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	return db
}

// Migrate creates the schema, including the asymmetric referential actions
// on Bookmark/ReadHistory (user restrict, article cascade).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Article{},
		&models.ArticleTag{},
		&models.Bookmark{},
		&models.ReadHistory{},
	)
}
