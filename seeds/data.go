package seeds

import "github.com/sellywck/API/models"

// SampleListings are dev fixtures for a fresh database.
var SampleListings = []models.Listing{
	{UserID: 1, Name: "Sunny Garden Apartment", Description: "Bright two-bedroom apartment with a shared garden.", Address: "12 Orchard Lane", RegularPrice: 1800, DiscountedPrice: 1650, Bathrooms: 1, Bedrooms: 2, Furnished: true, Parking: false, Type: "rent", Offer: true, PhoneNumber: "555-0101"},
	{UserID: 1, Name: "Riverside Family Home", Description: "Four-bedroom house overlooking the river.", Address: "88 Waterside Drive", RegularPrice: 450000, DiscountedPrice: 450000, Bathrooms: 3, Bedrooms: 4, Furnished: false, Parking: true, Type: "sale", Offer: false, PhoneNumber: "555-0102"},
	{UserID: 2, Name: "Downtown Studio", Description: "Compact studio a short walk from the station.", Address: "3 Market Street", RegularPrice: 1200, DiscountedPrice: 1100, Bathrooms: 1, Bedrooms: 1, Furnished: true, Parking: false, Type: "rent", Offer: true, PhoneNumber: "555-0103"},
	{UserID: 2, Name: "Hillside Cottage", Description: "Quiet cottage with parking and a furnished interior.", Address: "41 Hillside Road", RegularPrice: 320000, DiscountedPrice: 299000, Bathrooms: 2, Bedrooms: 3, Furnished: true, Parking: true, Type: "sale", Offer: true, PhoneNumber: "555-0104"},
	{UserID: 1, Name: "Suburban Townhouse", Description: "Three-bedroom townhouse near schools and parks.", Address: "27 Cedar Close", RegularPrice: 2400, DiscountedPrice: 2400, Bathrooms: 2, Bedrooms: 3, Furnished: false, Parking: true, Type: "rent", Offer: false, PhoneNumber: "555-0105"},
}

// SampleUsers own the sample listings.
var SampleUsers = []models.User{
	{UID: "seed-uid-1", Email: "alex@example.com", Username: "alex"},
	{UID: "seed-uid-2", Email: "sam@example.com", Username: "sam"},
}
