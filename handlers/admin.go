package handlers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sellywck/API/models"
)

// GetAdminUsers returns a paginated list of users for the admin panel.
// Requires the token's admin claim.
func (h *Handler) GetAdminUsers(c *fiber.Ctx) error {
	if _, err := h.requireAdmin(c); err != nil {
		return accessDenied(c)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	search := c.Query("search", "")

	query := h.DB.Model(&models.User{})
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("username LIKE ? OR email LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	users := make([]models.User, 0)
	if err := query.Limit(limit).Offset(offset).Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  users,
		"page":  page,
		"limit": limit,
		"total": total,
		"pages": math.Ceil(float64(total) / float64(limit)),
	})
}

// GetSystemLogs returns recent system log entries, newest first.
func (h *Handler) GetSystemLogs(c *fiber.Ctx) error {
	if _, err := h.requireAdmin(c); err != nil {
		return accessDenied(c)
	}

	logs := make([]models.SystemLog, 0)
	if err := h.DB.Order("created_at desc").Limit(100).Find(&logs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"data": logs})
}
