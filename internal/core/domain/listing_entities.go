package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPublished = "published"
)

// ListingRecord is one property in the local catalog. Identity for
// reconciliation is ExternalID; ID is the internal key used for stable
// sort tie-breaks.
type ListingRecord struct {
	ID         uuid.UUID
	ExternalID string

	Title       string
	Description string

	// Operation and PropertyType are always stored in canonical form,
	// see vocabulary.go.
	Operation    string
	PropertyType string

	Currency     string
	PriceDisplay string
	// PriceNumeric is derived from the raw amount or PriceDisplay on every
	// reconciliation pass and backs the range filters.
	PriceNumeric float64

	// Location is a comma-delimited hierarchy: neighborhood, city, state.
	Location string

	Bedrooms      int
	Bathrooms     int
	ParkingSpaces int

	LotSizeM2          float64
	ConstructionSizeM2 float64

	// Gallery grows by union across syncs; manually attached images survive
	// a re-sync.
	Gallery       []string
	FeaturedImage string

	Latitude  float64
	Longitude float64
	Geohash   string

	Status      string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasCoordinates reports whether the record carries a usable map position.
func (r *ListingRecord) HasCoordinates() bool {
	return r.Latitude != 0 || r.Longitude != 0
}

// RawListing is one remote listing as fetched, before normalization.
// Summary fields come from the paginated list endpoint; Description,
// gallery and coordinates are merged in from the per-listing detail call
// and stay empty when that call failed.
type RawListing struct {
	ExternalID   string
	Title        string
	Description  string
	Operation    string
	PropertyType string
	Currency     string
	PriceDisplay string
	// PriceAmount is the raw numeric amount when the payload carried one;
	// nil means PriceDisplay has to be parsed instead.
	PriceAmount *float64

	Location string

	Bedrooms      int
	Bathrooms     int
	ParkingSpaces int

	LotSizeM2          float64
	ConstructionSizeM2 float64

	TitleImageURL string
	GalleryURLs   []string

	Latitude  *float64
	Longitude *float64

	// Scope names the credential scope the listing was fetched under.
	Scope string
}

// ListingDetail is the payload of the per-listing detail request.
type ListingDetail struct {
	Description   string
	GalleryURLs   []string
	TitleImageURL string
	Latitude      *float64
	Longitude     *float64
}

// MergeDetail folds a detail payload into the summary record.
func (raw *RawListing) MergeDetail(detail *ListingDetail) {
	if detail == nil {
		return
	}
	if detail.Description != "" {
		raw.Description = detail.Description
	}
	if detail.TitleImageURL != "" {
		raw.TitleImageURL = detail.TitleImageURL
	}
	raw.GalleryURLs = append(raw.GalleryURLs, detail.GalleryURLs...)
	if detail.Latitude != nil {
		raw.Latitude = detail.Latitude
	}
	if detail.Longitude != nil {
		raw.Longitude = detail.Longitude
	}
}

// CredentialScope is one remote account; each scope produces its own
// paginated stream of listings.
type CredentialScope struct {
	Name   string
	APIKey string
}
