package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sellywck/API/models"
)

// seedSearchListings creates the two canonical listings:
// A: offer=false, furnished=true, type=sale
// B: offer=true, furnished=true, type=rent
func seedSearchListings(t *testing.T, db *gorm.DB) (models.Listing, models.Listing) {
	t.Helper()

	a := models.Listing{
		UserID: 1, Name: "Listing A", Description: "quiet sale home", Address: "1 Alpha Road",
		Offer: false, Furnished: true, Parking: false, Type: "sale",
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	b := models.Listing{
		UserID: 1, Name: "Listing B", Description: "rental with an offer", Address: "2 Beta Street",
		Offer: true, Furnished: true, Parking: true, Type: "rent",
		CreatedAt: time.Now().Add(-1 * time.Hour),
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("failed to seed listing A: %v", err)
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("failed to seed listing B: %v", err)
	}
	return a, b
}

func searchNames(t *testing.T, app *fiber.App, target string) []string {
	t.Helper()

	resp, err := app.Test(jsonRequest(t, http.MethodGet, target, nil, ""))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status for %s = %d, want 200", target, resp.StatusCode)
	}

	var out []models.Listing
	decodeBody(t, resp, &out)
	names := make([]string, 0, len(out))
	for _, l := range out {
		names = append(names, l.Name)
	}
	return names
}

func TestSearch_DefaultsNewestFirstMaxNine(t *testing.T) {
	app, h := newTestApp(t)

	for i := 0; i < 12; i++ {
		l := models.Listing{
			UserID: 1, Name: fmt.Sprintf("Listing %02d", i), Type: "sale",
			CreatedAt: time.Now().Add(time.Duration(i-12) * time.Hour),
		}
		if err := h.DB.Create(&l).Error; err != nil {
			t.Fatalf("failed to seed listing: %v", err)
		}
	}

	names := searchNames(t, app, "/v1/alllistings")
	if len(names) != 9 {
		t.Fatalf("got %d listings, want 9", len(names))
	}
	if names[0] != "Listing 11" {
		t.Errorf("first listing = %q, want newest %q", names[0], "Listing 11")
	}
	for i := 1; i < len(names); i++ {
		if names[i] > names[i-1] {
			t.Fatalf("listings not in created_at desc order: %v", names)
		}
	}
}

func TestSearch_TriStateOffer(t *testing.T) {
	app, h := newTestApp(t)
	seedSearchListings(t, h.DB)

	// offer omitted matches both.
	names := searchNames(t, app, "/v1/alllistings")
	if len(names) != 2 {
		t.Fatalf("unfiltered got %d listings, want 2", len(names))
	}

	// offer=false also matches both.
	names = searchNames(t, app, "/v1/alllistings?offer=false")
	if len(names) != 2 {
		t.Fatalf("offer=false got %d listings, want 2", len(names))
	}

	// offer=true narrows to B.
	names = searchNames(t, app, "/v1/alllistings?offer=true")
	if len(names) != 1 || names[0] != "Listing B" {
		t.Fatalf("offer=true got %v, want [Listing B]", names)
	}
}

func TestSearch_TypeFilter(t *testing.T) {
	app, h := newTestApp(t)
	seedSearchListings(t, h.DB)

	names := searchNames(t, app, "/v1/alllistings?type=sale")
	if len(names) != 1 || names[0] != "Listing A" {
		t.Fatalf("type=sale got %v, want [Listing A]", names)
	}

	names = searchNames(t, app, "/v1/alllistings?type=rent")
	if len(names) != 1 || names[0] != "Listing B" {
		t.Fatalf("type=rent got %v, want [Listing B]", names)
	}

	names = searchNames(t, app, "/v1/alllistings?type=all")
	if len(names) != 2 {
		t.Fatalf("type=all got %d listings, want 2", len(names))
	}
}

func TestSearch_TermMatchesAnyTextField(t *testing.T) {
	app, h := newTestApp(t)
	seedSearchListings(t, h.DB)

	// Case-insensitive match against the address of A only.
	names := searchNames(t, app, "/v1/alllistings?searchTerm=ALPHA")
	if len(names) != 1 || names[0] != "Listing A" {
		t.Fatalf("searchTerm=ALPHA got %v, want [Listing A]", names)
	}

	// Matches the description of B only.
	names = searchNames(t, app, "/v1/alllistings?searchTerm=rental")
	if len(names) != 1 || names[0] != "Listing B" {
		t.Fatalf("searchTerm=rental got %v, want [Listing B]", names)
	}

	// No match is an empty array, not an error.
	names = searchNames(t, app, "/v1/alllistings?searchTerm=zzz-nothing")
	if len(names) != 0 {
		t.Fatalf("searchTerm=zzz-nothing got %v, want []", names)
	}
}

func TestSearch_FiltersCombineWithAnd(t *testing.T) {
	app, h := newTestApp(t)
	seedSearchListings(t, h.DB)

	// Both are furnished, but only B has an offer.
	names := searchNames(t, app, "/v1/alllistings?furnished=true&offer=true")
	if len(names) != 1 || names[0] != "Listing B" {
		t.Fatalf("furnished=true&offer=true got %v, want [Listing B]", names)
	}

	// No listing is both sale and parking.
	names = searchNames(t, app, "/v1/alllistings?type=sale&parking=true")
	if len(names) != 0 {
		t.Fatalf("type=sale&parking=true got %v, want []", names)
	}
}

func TestSearch_Pagination(t *testing.T) {
	app, h := newTestApp(t)
	seedSearchListings(t, h.DB)

	names := searchNames(t, app, "/v1/alllistings?limit=1")
	if len(names) != 1 || names[0] != "Listing B" {
		t.Fatalf("limit=1 got %v, want [Listing B]", names)
	}

	names = searchNames(t, app, "/v1/alllistings?limit=1&startIndex=1")
	if len(names) != 1 || names[0] != "Listing A" {
		t.Fatalf("limit=1&startIndex=1 got %v, want [Listing A]", names)
	}
}

func TestSearch_SortAllowList(t *testing.T) {
	app, h := newTestApp(t)
	seedSearchListings(t, h.DB)

	// Valid alternative sort.
	names := searchNames(t, app, "/v1/alllistings?sort=name&order=asc")
	if len(names) != 2 || names[0] != "Listing A" {
		t.Fatalf("sort=name&order=asc got %v, want [Listing A Listing B]", names)
	}

	// Unknown column is rejected, not interpolated.
	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/v1/alllistings?sort=id;drop+table+listings", nil, ""))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("malicious sort status = %d, want 400", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/v1/alllistings?order=sideways", nil, ""))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("invalid order status = %d, want 400", resp.StatusCode)
	}
}
