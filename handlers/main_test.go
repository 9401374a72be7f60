package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sellywck/API/auth"
	"github.com/sellywck/API/models"
)

// setupTestDB creates an in-memory SQLite database. The pool is pinned to a
// single connection so every statement sees the same :memory: database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Like{}, &models.SystemLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// newTestApp wires a Handler to a Fiber app with the production route table.
func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	db := setupTestDB(t)
	tokens := auth.NewTokenService("test-secret", auth.DefaultTTL)
	h := New(db, tokens, nil)

	app := fiber.New()
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

	admin := api.Group("/admin")
	admin.Get("/users", h.GetAdminUsers)
	admin.Get("/logs", h.GetSystemLogs)

	return app, h
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{UID: "uid-" + email, Email: email, Username: "user-" + email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func issueTestToken(t *testing.T, h *Handler, user models.User) string {
	t.Helper()

	token, err := h.Tokens.Issue(&user)
	if err != nil {
		t.Fatalf("failed to issue test token: %v", err)
	}
	return token
}

// jsonRequest builds a request with an optional JSON body and Authorization header.
func jsonRequest(t *testing.T, method, target string, body interface{}, token string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}
