package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joho/godotenv"

	"github.com/sellywck/API/auth"
	"github.com/sellywck/API/database"
	"github.com/sellywck/API/handlers"
	"github.com/sellywck/API/mailer"
	"github.com/sellywck/API/models"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		log.Fatal("SECRET_KEY environment variable is required")
	}

	app := fiber.New()

	// Security Middleware
	app.Use(helmet.New())

	// Rate Limiting (100 reqs / min)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests, please try again later.",
			})
		},
	}))

	// CORS
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Listing images
	app.Static("/uploads", "public/uploads")

	// Database
	db := database.Connect()
	log.Println("Running Auto Migrations...")
	if err := db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Like{}, &models.SystemLog{}); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	tokens := auth.NewTokenService(secret, auth.DefaultTTL)

	var mail mailer.Mailer
	if m := mailer.NewFromEnv(); m != nil {
		mail = m
	} else {
		log.Println("SMTP not configured, welcome emails disabled")
	}

	h := handlers.New(db, tokens, mail)

	// Routes
	api := app.Group("/v1")

	api.Post("/signup", h.Signup)
	api.Post("/login", h.Login)
	api.Post("/login/sso", h.LoginSSO)

	api.Get("/profile/:id", h.GetProfile)
	api.Patch("/profile/:id", h.UpdateProfile)

	api.Post("/listings", h.CreateListing)
	api.Get("/listings", h.GetMyListings)
	api.Get("/listings/landlord/:listing_id", h.GetListingLandlord)
	api.Get("/listings/:listing_id", h.GetListing)
	api.Put("/listings/:listing_id", h.UpdateListing)
	api.Delete("/listings/:listing_id", h.DeleteListing)

	api.Get("/alllistings", h.SearchListings)

	api.Get("/likes/listings/:listing_id", h.GetListingLikes)
	api.Get("/likes/users/:user_id", h.GetUserLikes)
	api.Post("/likes", h.ToggleLike)

	api.Post("/upload", h.UploadImage)

	// Admin (token must carry the admin flag)
	admin := api.Group("/admin")
	admin.Get("/users", h.GetAdminUsers)
	admin.Get("/logs", h.GetSystemLogs)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("Starting server on :" + port + "...")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Server Listen Error: ", err)
	}
}
