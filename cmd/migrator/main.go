package main

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sellywck/API/models"
)

// Moves data from a dev SQLite database into PostgreSQL.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using env vars")
	}

	sqlitePath := os.Getenv("DB_PATH")
	if sqlitePath == "" {
		sqlitePath = "propertypulse.db"
	}

	pgDSN := os.Getenv("DATABASE_URL")
	if pgDSN == "" {
		log.Fatal("DATABASE_URL is required")
	}

	log.Printf("Opening SQLite: %s\n", sqlitePath)
	srcDB, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to open SQLite:", err)
	}

	log.Println("Opening PostgreSQL...")
	dstDB, err := gorm.Open(postgres.Open(pgDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to open PostgreSQL:", err)
	}

	log.Println("Migrating Target Schema...")
	if err := dstDB.AutoMigrate(&models.User{}, &models.Listing{}, &models.Like{}, &models.SystemLog{}); err != nil {
		log.Fatal("Migration failed:", err)
	}

	copyTable(srcDB, dstDB, &[]models.User{}, "Users")
	copyTable(srcDB, dstDB, &[]models.Listing{}, "Listings")
	copyTable(srcDB, dstDB, &[]models.Like{}, "Likes")
	copyTable(srcDB, dstDB, &[]models.SystemLog{}, "SystemLogs")

	log.Println("Migration Complete!")
}

func copyTable(src *gorm.DB, dst *gorm.DB, model interface{}, name string) {
	log.Printf("Copying %s...", name)

	if err := src.Find(model).Error; err != nil {
		log.Printf("Error reading %s: %v\n", name, err)
		return
	}

	if err := dst.Create(model).Error; err != nil {
		log.Printf("Warning inserting %s (might be duplicates): %v\n", name, err)
	} else {
		log.Printf("Successfully copied %s\n", name)
	}
}
