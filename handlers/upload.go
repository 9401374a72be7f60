package handlers

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadImage stores a listing image and returns its public URL for use in
// the listing's imageurls field.
func (h *Handler) UploadImage(c *fiber.Ctx) error {
	if _, err := h.requireIdentity(c); err != nil {
		return accessDenied(c)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid file type. Only images allowed."})
	}

	filename := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
	savePath := filepath.Join("public", "uploads", filename)

	if err := c.SaveFile(file, savePath); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save file"})
	}

	return c.JSON(fiber.Map{
		"url": fmt.Sprintf("/uploads/%s", filename),
	})
}
