package rest

import (
	"time"

	"catalog-service/internal/core/domain"
)

// ListingCardResponse is the projection used for result-list cards.
type ListingCardResponse struct {
	ExternalID    string  `json:"external_id"`
	Title         string  `json:"title"`
	Operation     string  `json:"operation"`
	PropertyType  string  `json:"property_type"`
	Currency      string  `json:"currency"`
	PriceDisplay  string  `json:"price_display"`
	PriceNumeric  float64 `json:"price_numeric"`
	Location      string  `json:"location"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	FeaturedImage string  `json:"featured_image"`
}

type ListingPageResponse struct {
	Items       []ListingCardResponse `json:"items"`
	CurrentPage int                   `json:"current_page"`
	TotalPages  int                   `json:"total_pages"`
	TotalCount  int                   `json:"total_count"`
}

// ListingDetailResponse is the full record for a single-listing page.
type ListingDetailResponse struct {
	ExternalID         string    `json:"external_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Operation          string    `json:"operation"`
	PropertyType       string    `json:"property_type"`
	Currency           string    `json:"currency"`
	PriceDisplay       string    `json:"price_display"`
	PriceNumeric       float64   `json:"price_numeric"`
	Location           string    `json:"location"`
	Bedrooms           int       `json:"bedrooms"`
	Bathrooms          int       `json:"bathrooms"`
	ParkingSpaces      int       `json:"parking_spaces"`
	LotSizeM2          float64   `json:"lot_size_m2"`
	ConstructionSizeM2 float64   `json:"construction_size_m2"`
	Gallery            []string  `json:"gallery"`
	FeaturedImage      string    `json:"featured_image"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	Geohash            string    `json:"geohash"`
	PublishedAt        time.Time `json:"published_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type MapPinResponse struct {
	ExternalID   string  `json:"external_id"`
	Title        string  `json:"title"`
	PriceNumeric float64 `json:"price_numeric"`
	Currency     string  `json:"currency"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Geohash      string  `json:"geohash"`
}

type DictionaryItemResponse struct {
	SystemName  string `json:"system_name"`
	DisplayName string `json:"display_name"`
}

type StateFacetResponse struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

type RangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type FilterOptionsResponse struct {
	States            []StateFacetResponse     `json:"states"`
	PropertyTypes     []DictionaryItemResponse `json:"property_types"`
	Operations        []DictionaryItemResponse `json:"operations"`
	PriceRange        RangeResponse            `json:"price_range"`
	ConstructionRange RangeResponse            `json:"construction_range"`
	LotRange          RangeResponse            `json:"lot_range"`
}

type SyncReportResponse struct {
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
	Scopes     int                `json:"scopes"`
	Pages      int                `json:"pages"`
	Created    int                `json:"created"`
	Updated    int                `json:"updated"`
	Failed     int                `json:"failed"`
	Errors     []domain.SyncError `json:"errors"`
}

func toListingCard(record domain.ListingRecord) ListingCardResponse {
	return ListingCardResponse{
		ExternalID:    record.ExternalID,
		Title:         record.Title,
		Operation:     record.Operation,
		PropertyType:  record.PropertyType,
		Currency:      record.Currency,
		PriceDisplay:  record.PriceDisplay,
		PriceNumeric:  record.PriceNumeric,
		Location:      record.Location,
		Bedrooms:      record.Bedrooms,
		Bathrooms:     record.Bathrooms,
		FeaturedImage: record.FeaturedImage,
	}
}

func toListingDetail(record *domain.ListingRecord) ListingDetailResponse {
	return ListingDetailResponse{
		ExternalID:         record.ExternalID,
		Title:              record.Title,
		Description:        record.Description,
		Operation:          record.Operation,
		PropertyType:       record.PropertyType,
		Currency:           record.Currency,
		PriceDisplay:       record.PriceDisplay,
		PriceNumeric:       record.PriceNumeric,
		Location:           record.Location,
		Bedrooms:           record.Bedrooms,
		Bathrooms:          record.Bathrooms,
		ParkingSpaces:      record.ParkingSpaces,
		LotSizeM2:          record.LotSizeM2,
		ConstructionSizeM2: record.ConstructionSizeM2,
		Gallery:            record.Gallery,
		FeaturedImage:      record.FeaturedImage,
		Latitude:           record.Latitude,
		Longitude:          record.Longitude,
		Geohash:            record.Geohash,
		PublishedAt:        record.PublishedAt,
		UpdatedAt:          record.UpdatedAt,
	}
}

func toFilterOptions(summary *domain.FacetSummary) FilterOptionsResponse {
	response := FilterOptionsResponse{
		PriceRange:        RangeResponse(summary.PriceRange),
		ConstructionRange: RangeResponse(summary.ConstructionRange),
		LotRange:          RangeResponse(summary.LotRange),
	}
	for _, state := range summary.States {
		response.States = append(response.States, StateFacetResponse{Name: state.Name, Cities: state.Cities})
	}
	for _, item := range summary.PropertyTypes {
		response.PropertyTypes = append(response.PropertyTypes, DictionaryItemResponse(item))
	}
	for _, item := range summary.Operations {
		response.Operations = append(response.Operations, DictionaryItemResponse(item))
	}
	return response
}
