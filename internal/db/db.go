package db

import (
	"os"

	"inkwell/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=inkwell port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	logrus.Info("Database connection established")

	if err := Migrate(DB); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	logrus.Info("Database migration completed")

	seedCategories(DB)
}

// Migrate runs the schema migration for every blog entity. Split out from
// Init so tests can run it against their own connection.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
		&models.Reply{},
		&models.Like{},
	)
}

func seedCategories(conn *gorm.DB) {
	// Skip if any category already exists
	var count int64
	conn.Model(&models.Category{}).Count(&count)
	if count > 0 {
		logrus.Info("Categories already seeded, skipping")
		return
	}

	categories := []models.Category{
		{Title: "General", Slug: "general"},
		{Title: "Tech", Slug: "tech"},
		{Title: "Life", Slug: "life"},
	}

	for _, category := range categories {
		if err := conn.Create(&category).Error; err != nil {
			logrus.Warnf("Failed to create category %s: %v", category.Title, err)
		}
	}
	logrus.Info("Initial categories created successfully")
}
