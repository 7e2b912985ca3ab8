package easybroker

import "catalog-service/internal/core/domain"

type summaryOperation struct {
	Type            string   `json:"type"`
	Amount          *float64 `json:"amount"`
	FormattedAmount *string  `json:"formatted_amount"`
	Currency        *string  `json:"currency"`
}

type listingSummary struct {
	PublicID         string             `json:"public_id"`
	Title            *string            `json:"title"`
	TitleImageThumb  *string            `json:"title_image_thumb"`
	Location         *string            `json:"location"`
	Operations       []summaryOperation `json:"operations"`
	PropertyType     *string            `json:"property_type"`
	Bedrooms         *int               `json:"bedrooms"`
	Bathrooms        *int               `json:"bathrooms"`
	ParkingSpaces    *int               `json:"parking_spaces"`
	LotSize          *float64           `json:"lot_size"`
	ConstructionSize *float64           `json:"construction_size"`
}

// toRawListing maps a remote summary into the internal raw shape. Missing
// fields default to empty values; only the first operation entry is used,
// matching how the listings were priced upstream.
func (s *listingSummary) toRawListing(scope string) domain.RawListing {
	raw := domain.RawListing{
		ExternalID:         s.PublicID,
		Title:              stringOrEmpty(s.Title),
		Location:           stringOrEmpty(s.Location),
		PropertyType:       stringOrEmpty(s.PropertyType),
		TitleImageURL:      stringOrEmpty(s.TitleImageThumb),
		Bedrooms:           intOrZero(s.Bedrooms),
		Bathrooms:          intOrZero(s.Bathrooms),
		ParkingSpaces:      intOrZero(s.ParkingSpaces),
		LotSizeM2:          floatOrZero(s.LotSize),
		ConstructionSizeM2: floatOrZero(s.ConstructionSize),
		Scope:              scope,
	}

	if len(s.Operations) > 0 {
		op := s.Operations[0]
		raw.Operation = op.Type
		raw.PriceAmount = op.Amount
		raw.PriceDisplay = stringOrEmpty(op.FormattedAmount)
		raw.Currency = stringOrEmpty(op.Currency)
	}

	return raw
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
