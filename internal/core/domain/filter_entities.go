package domain

// FilterCriteria is a transient, request-scoped set of facet filters.
// Every field is optional; zero/nil means "no constraint". All supplied
// facets are AND'd together, except states+cities which form a single
// OR group matched as substrings against Location.
type FilterCriteria struct {
	// Search is a free-text term matched against the title only.
	Search string

	Operations    []string
	PropertyTypes []string

	States []string
	Cities []string

	Bedrooms  *int
	Bathrooms *int

	PriceMin *float64
	PriceMax *float64

	ConstructionMin *float64
	ConstructionMax *float64

	LandMin *float64
	LandMax *float64

	Page int
}

// LocationTerms returns the combined state+city substring terms.
func (c FilterCriteria) LocationTerms() []string {
	terms := make([]string, 0, len(c.States)+len(c.Cities))
	terms = append(terms, c.States...)
	terms = append(terms, c.Cities...)
	return terms
}

// PaginatedResult is one page of matching records plus the metadata needed
// to render page-link navigation.
type PaginatedResult struct {
	Items       []ListingRecord
	CurrentPage int
	TotalPages  int
	TotalCount  int
}

// RangeResult is a min/max pair for one numeric facet.
type RangeResult struct {
	Min float64
	Max float64
}

// DictionaryItem pairs a canonical value with its display form.
type DictionaryItem struct {
	SystemName  string
	DisplayName string
}

// StateFacet is one state with its sorted unique cities, parsed from the
// positional location convention "neighborhood, city, state".
type StateFacet struct {
	Name   string
	Cities []string
}

// FacetSummary holds the derived aggregates computed over the full catalog.
type FacetSummary struct {
	States            []StateFacet
	PropertyTypes     []DictionaryItem
	Operations        []DictionaryItem
	PriceRange        RangeResult
	ConstructionRange RangeResult
	LotRange          RangeResult
}

// MapPin is the minimal projection used for map rendering.
type MapPin struct {
	ExternalID   string
	Title        string
	PriceNumeric float64
	Currency     string
	Latitude     float64
	Longitude    float64
	Geohash      string
}
