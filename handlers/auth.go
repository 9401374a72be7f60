package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sellywck/API/models"
)

// Signup registers a new account and sends a welcome email.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var input struct {
		UID      string `json:"uid"`
		Email    string `json:"email"`
		Username string `json:"username"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid input"})
	}
	if input.Email == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Email is required"})
	}

	var existing models.User
	if err := h.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return c.Status(400).JSON(fiber.Map{"message": "Email already registered!"})
	} else if !isNotFound(err) {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	user := models.User{
		UID:      input.UID,
		Email:    input.Email,
		Username: input.Username,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	// Best effort, after the insert has committed. A failed email must never
	// roll back or block account creation.
	go h.sendWelcome(user.Email, user.Username)

	return c.Status(201).JSON(fiber.Map{
		"user":    user,
		"message": "User registered successfully",
	})
}

// Login issues a token for a registered email.
func (h *Handler) Login(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid input"})
	}

	var user models.User
	if err := h.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if isNotFound(err) {
			return c.Status(400).JSON(fiber.Map{"message": "User not registered"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := h.Tokens.Issue(&user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"message": "User logged in successfully",
	})
}

// LoginSSO creates the account on first SSO login, then issues a token.
func (h *Handler) LoginSSO(c *fiber.Ctx) error {
	var input struct {
		UID            string `json:"uid"`
		Email          string `json:"email"`
		Username       string `json:"username"`
		ProfilePicture string `json:"profilepicture"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid input"})
	}

	var user models.User
	err := h.DB.Where("email = ?", input.Email).First(&user).Error
	if isNotFound(err) {
		user = models.User{
			UID:            input.UID,
			Email:          input.Email,
			Username:       input.Username,
			ProfilePicture: input.ProfilePicture,
		}
		if err := h.DB.Create(&user).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		go h.sendWelcome(user.Email, user.Username)
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	// Re-read so the token carries whatever the row holds now, including the
	// admin flag on returning accounts.
	if err := h.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := h.Tokens.Issue(&user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"message": "User logged in successfully",
	})
}
