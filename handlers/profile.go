package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sellywck/API/models"
)

// GetProfile returns the caller's own profile.
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	claims, err := h.requireIdentity(c)
	if err != nil {
		return accessDenied(c)
	}

	id := c.Params("id")
	targetID, _ := strconv.Atoi(id)
	if claims.ID != uint(targetID) {
		return c.Status(401).JSON(fiber.Map{"message": "You can only update your own account!"})
	}

	var user models.User
	if err := h.DB.First(&user, targetID).Error; err != nil {
		if isNotFound(err) {
			return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("User with id %s not found", id)})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(user)
}

// UpdateProfile applies a partial update to the caller's own profile.
// Pointer fields distinguish "absent" from "set to empty".
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	claims, err := h.requireIdentity(c)
	if err != nil {
		return accessDenied(c)
	}

	id := c.Params("id")
	targetID, _ := strconv.Atoi(id)
	if claims.ID != uint(targetID) {
		return c.Status(401).JSON(fiber.Map{"message": "You can only update your own account!"})
	}

	var input struct {
		Username       *string `json:"username"`
		ProfilePicture *string `json:"profilepicture"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid input"})
	}

	updates := map[string]interface{}{}
	if input.Username != nil {
		updates["username"] = *input.Username
	}
	if input.ProfilePicture != nil {
		updates["profilepicture"] = *input.ProfilePicture
	}
	if len(updates) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No fields provided for update"})
	}

	var user models.User
	if err := h.DB.First(&user, targetID).Error; err != nil {
		if isNotFound(err) {
			return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("User with id %s not found", id)})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.DB.Model(&user).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":    user,
		"message": "User profile updated successfully!",
	})
}
