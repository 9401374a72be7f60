package database

import (
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database and configures the connection pool. The caller
// owns the returned handle and passes it to the handlers; there is no
// package-level DB.
func Connect() *gorm.DB {
	driver := os.Getenv("DB_DRIVER")
	var dialector gorm.Dialector

	if driver == "sqlite" {
		dsn := os.Getenv("DB_PATH")
		if dsn == "" {
			dsn = "propertypulse.db"
		}
		dialector = sqlite.Open(dsn)
		log.Println("Connecting to SQLite...")
	} else {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			log.Fatal("DATABASE_URL environment variable is required")
		}
		dialector = postgres.Open(dsn)
		log.Println("Connecting to PostgreSQL...")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}

	// Bounded pool; each statement borrows a connection and returns it when
	// done, including on error paths.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to access connection pool. \n", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Println("Connected to Database successfully")
	return db
}
