package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sellywck/API/models"
)

// listingInput is the request body shared by create and update.
type listingInput struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Address         string            `json:"address"`
	RegularPrice    int64             `json:"regularprice"`
	DiscountedPrice int64             `json:"discountedprice"`
	Bathrooms       int               `json:"bathrooms"`
	Bedrooms        int               `json:"bedrooms"`
	Furnished       bool              `json:"furnished"`
	Parking         bool              `json:"parking"`
	Type            string            `json:"type"`
	Offer           bool              `json:"offer"`
	ImageURLs       models.StringList `json:"imageurls"`
	Latitude        *float64          `json:"latitude"`
	Longitude       *float64          `json:"longitude"`
	PhoneNumber     string            `json:"phonenumber"`
}

// CreateListing creates a listing owned by the token subject.
func (h *Handler) CreateListing(c *fiber.Ctx) error {
	claims, err := h.requireIdentity(c)
	if err != nil {
		return accessDenied(c)
	}

	var input listingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid input"})
	}

	listing := models.Listing{
		UserID:          claims.ID,
		Name:            input.Name,
		Description:     input.Description,
		Address:         input.Address,
		RegularPrice:    input.RegularPrice,
		DiscountedPrice: input.DiscountedPrice,
		Bathrooms:       input.Bathrooms,
		Bedrooms:        input.Bedrooms,
		Furnished:       input.Furnished,
		Parking:         input.Parking,
		Type:            input.Type,
		Offer:           input.Offer,
		ImageURLs:       input.ImageURLs,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		PhoneNumber:     input.PhoneNumber,
	}

	if err := h.DB.Create(&listing).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(listing)
}

// GetMyListings returns the caller's own listings, newest first.
func (h *Handler) GetMyListings(c *fiber.Ctx) error {
	claims, err := h.requireIdentity(c)
	if err != nil {
		return accessDenied(c)
	}

	listings := make([]models.Listing, 0)
	if err := h.DB.Where("user_id = ?", claims.ID).Order("created_at desc").Find(&listings).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(listings)
}

// GetListing returns a single listing. Public.
func (h *Handler) GetListing(c *fiber.Ctx) error {
	id := c.Params("listing_id")
	listingID, _ := strconv.Atoi(id)

	var listing models.Listing
	if err := h.DB.First(&listing, listingID).Error; err != nil {
		if isNotFound(err) {
			return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("Listing with id %s not found", id)})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(listing)
}

// UpdateListing replaces a listing's fields. The single owned-row lookup
// decides existence and ownership together before anything is written.
func (h *Handler) UpdateListing(c *fiber.Ctx) error {
	claims, err := h.requireIdentity(c)
	if err != nil {
		return accessDenied(c)
	}

	id := c.Params("listing_id")
	listingID, _ := strconv.Atoi(id)
	listing, err := h.findOwnedListing(listingID, claims.ID)
	if err != nil {
		if isNotFound(err) {
			return c.Status(400).JSON(fiber.Map{
				"error": fmt.Sprintf("Listing with id %s not found or does not belong to the authenticated user.", id),
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	var input listingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid input"})
	}

	listing.Name = input.Name
	listing.Description = input.Description
	listing.Address = input.Address
	listing.RegularPrice = input.RegularPrice
	listing.DiscountedPrice = input.DiscountedPrice
	listing.Bathrooms = input.Bathrooms
	listing.Bedrooms = input.Bedrooms
	listing.Furnished = input.Furnished
	listing.Parking = input.Parking
	listing.Type = input.Type
	listing.Offer = input.Offer
	listing.ImageURLs = input.ImageURLs
	listing.Latitude = input.Latitude
	listing.Longitude = input.Longitude
	listing.PhoneNumber = input.PhoneNumber

	if err := h.DB.Save(listing).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(listing)
}

// DeleteListing removes a listing the caller owns. The id+owner predicate on
// the delete itself means a non-owner deletes nothing.
func (h *Handler) DeleteListing(c *fiber.Ctx) error {
	claims, err := h.requireIdentity(c)
	if err != nil {
		return accessDenied(c)
	}

	id := c.Params("listing_id")
	listingID, _ := strconv.Atoi(id)
	result := h.DB.Where("id = ? AND user_id = ?", listingID, claims.ID).Delete(&models.Listing{})
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(400).JSON(fiber.Map{"message": fmt.Sprintf("Listing with id %s not found", id)})
	}

	return c.JSON(fiber.Map{
		"id":      listingID,
		"message": fmt.Sprintf("Listing with id %s deleted successfully", id),
	})
}

// GetListingLandlord returns the owner's contact info for a listing. Public.
func (h *Handler) GetListingLandlord(c *fiber.Ctx) error {
	id := c.Params("listing_id")
	listingID, _ := strconv.Atoi(id)

	var listing models.Listing
	if err := h.DB.First(&listing, listingID).Error; err != nil {
		if isNotFound(err) {
			return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("Listing with id %s not found!", id)})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	var info struct {
		Email       string `json:"email"`
		Username    string `json:"username"`
		PhoneNumber string `gorm:"column:phonenumber" json:"phonenumber"`
	}
	err := h.DB.Model(&models.Listing{}).
		Select("users.email, users.username, listings.phonenumber").
		Joins("INNER JOIN users ON listings.user_id = users.id").
		Where("listings.id = ?", listingID).
		Scan(&info).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(info)
}
