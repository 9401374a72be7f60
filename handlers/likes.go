package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sellywck/API/models"
)

// ToggleLike creates the like if absent and removes it if present. The
// delete-first shape makes each branch a single statement; if two concurrent
// requests both reach the insert, the unique index on (user_id, listing_id)
// rejects the second one. The payload's user_id is not cross-checked against
// the token subject, matching the upstream contract.
func (h *Handler) ToggleLike(c *fiber.Ctx) error {
	if _, err := h.requireIdentity(c); err != nil {
		return accessDenied(c)
	}

	var input struct {
		UserID    uint `json:"user_id"`
		ListingID uint `json:"listing_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid input"})
	}

	var like models.Like
	removed := false
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND listing_id = ?", input.UserID, input.ListingID).Delete(&models.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			removed = true
			return nil
		}

		like = models.Like{UserID: input.UserID, ListingID: input.ListingID}
		return tx.Create(&like).Error
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if removed {
		return c.JSON(fiber.Map{"message": "The like has been removed successfully"})
	}
	return c.JSON(fiber.Map{
		"data":    like,
		"message": fmt.Sprintf("Like added successfully to listing with id %d", input.ListingID),
	})
}

// GetListingLikes returns the users who liked a listing.
func (h *Handler) GetListingLikes(c *fiber.Ctx) error {
	if _, err := h.requireIdentity(c); err != nil {
		return accessDenied(c)
	}

	listingID, _ := strconv.Atoi(c.Params("listing_id"))

	rows := make([]struct {
		Username string `json:"username"`
		UserID   uint   `gorm:"column:user_id" json:"user_id"`
		LikeID   uint   `gorm:"column:likes_id" json:"likes_id"`
	}, 0)
	err := h.DB.Model(&models.Like{}).
		Select("users.username, users.id AS user_id, likes.id AS likes_id").
		Joins("INNER JOIN users ON likes.user_id = users.id").
		Where("likes.listing_id = ?", listingID).
		Scan(&rows).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rows)
}

// GetUserLikes returns the listings a user has liked.
func (h *Handler) GetUserLikes(c *fiber.Ctx) error {
	if _, err := h.requireIdentity(c); err != nil {
		return accessDenied(c)
	}

	userID, _ := strconv.Atoi(c.Params("user_id"))

	listings := make([]models.Listing, 0)
	err := h.DB.Model(&models.Like{}).
		Select("listings.*").
		Joins("INNER JOIN listings ON likes.listing_id = listings.id").
		Where("likes.user_id = ?", userID).
		Scan(&listings).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(listings)
}
