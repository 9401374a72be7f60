package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/sellywck/API/database"
	"github.com/sellywck/API/models"
	"github.com/sellywck/API/seeds"
)

// Seeds a fresh database with sample users and listings for local dev.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := database.Connect()
	if err := db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Like{}, &models.SystemLog{}); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("Database already has users, skipping seed")
		return
	}

	if err := db.Create(&seeds.SampleUsers).Error; err != nil {
		log.Fatal("Seeding users failed: ", err)
	}
	if err := db.Create(&seeds.SampleListings).Error; err != nil {
		log.Fatal("Seeding listings failed: ", err)
	}

	log.Printf("Seeded %d users and %d listings\n", len(seeds.SampleUsers), len(seeds.SampleListings))
}
