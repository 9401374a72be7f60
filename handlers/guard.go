package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sellywck/API/auth"
	"github.com/sellywck/API/models"
)

// errNotAdmin is returned when a valid token lacks the admin flag.
var errNotAdmin = errors.New("admin access required")

// requireIdentity extracts and verifies the caller's token. All mutating
// routes call this before touching the database.
func (h *Handler) requireIdentity(c *fiber.Ctx) (*auth.Claims, error) {
	raw := c.Get("Authorization")
	if raw == "" {
		return nil, auth.ErrMissingToken
	}
	return h.Tokens.Verify(raw)
}

// requireAdmin verifies the token and its admin claim.
func (h *Handler) requireAdmin(c *fiber.Ctx) (*auth.Claims, error) {
	claims, err := h.requireIdentity(c)
	if err != nil {
		return nil, err
	}
	if !claims.IsAdmin {
		return nil, errNotAdmin
	}
	return claims, nil
}

// findOwnedListing resolves existence and ownership in one lookup, before
// any write. gorm.ErrRecordNotFound covers both a missing row and a row
// owned by someone else.
func (h *Handler) findOwnedListing(listingID int, userID uint) (*models.Listing, error) {
	var listing models.Listing
	err := h.DB.Where("id = ? AND user_id = ?", listingID, userID).First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// accessDenied converts a guard failure into the system's 401 response.
func accessDenied(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Access Denied"})
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
