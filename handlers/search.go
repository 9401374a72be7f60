package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sellywck/API/models"
)

const (
	defaultSearchLimit = 9
	defaultSortColumn  = "created_at"
	defaultSortOrder   = "desc"
)

// Sort column and direction land in the query text verbatim, so both are
// checked against these allow-lists; anything else is rejected up front.
var searchSortColumns = map[string]bool{
	"created_at":      true,
	"updated_at":      true,
	"regularprice":    true,
	"discountedprice": true,
	"bedrooms":        true,
	"bathrooms":       true,
	"name":            true,
}

var searchSortOrders = map[string]bool{
	"asc":  true,
	"desc": true,
}

// searchParams is the parsed, validated form of the /v1/alllistings query string.
type searchParams struct {
	Limit      int
	StartIndex int
	Offer      bool // true narrows to offer=true; false matches both
	Furnished  bool
	Parking    bool
	Type       string // "" matches both categories
	SearchTerm string
	Sort       string
	Order      string
}

// parseSearchParams reads the query string. A boolean filter narrows only
// when the caller explicitly asserts it; absence (or "false") matches both
// values. type=all behaves like absence.
func parseSearchParams(c *fiber.Ctx) (searchParams, error) {
	p := searchParams{
		Limit:      c.QueryInt("limit", defaultSearchLimit),
		StartIndex: c.QueryInt("startIndex", 0),
		SearchTerm: c.Query("searchTerm"),
		Sort:       c.Query("sort", defaultSortColumn),
		Order:      c.Query("order", defaultSortOrder),
	}

	narrows := func(key string) bool {
		v := c.Query(key)
		return v != "" && v != "false"
	}
	p.Offer = narrows("offer")
	p.Furnished = narrows("furnished")
	p.Parking = narrows("parking")

	if t := c.Query("type"); t != "" && t != "all" {
		p.Type = t
	}

	if !searchSortColumns[p.Sort] {
		return p, fmt.Errorf("invalid sort field: %s", p.Sort)
	}
	if !searchSortOrders[p.Order] {
		return p, fmt.Errorf("invalid sort order: %s", p.Order)
	}

	return p, nil
}

// apply composes the filter, sort and pagination onto a listing query.
// Filters combine with AND; only the three text fields OR together.
func (p searchParams) apply(db *gorm.DB) *gorm.DB {
	q := db.Model(&models.Listing{})

	if p.SearchTerm != "" {
		term := "%" + strings.ToLower(p.SearchTerm) + "%"
		q = q.Where("lower(name) LIKE ? OR lower(description) LIKE ? OR lower(address) LIKE ?", term, term, term)
	}
	if p.Offer {
		q = q.Where("offer = ?", true)
	}
	if p.Furnished {
		q = q.Where("furnished = ?", true)
	}
	if p.Parking {
		q = q.Where("parking = ?", true)
	}
	if p.Type != "" {
		q = q.Where("type = ?", p.Type)
	}

	return q.Order(p.Sort + " " + p.Order).Limit(p.Limit).Offset(p.StartIndex)
}

// SearchListings serves the public search endpoint. No rows matching is an
// empty array, not an error.
func (h *Handler) SearchListings(c *fiber.Ctx) error {
	params, err := parseSearchParams(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	listings := make([]models.Listing, 0)
	if err := params.apply(h.DB).Find(&listings).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "An error occurred while fetching listings."})
	}

	return c.JSON(listings)
}
