package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"catalog-service/internal/constants"
	"catalog-service/internal/core/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ListingRepositoryAdapter is an in-memory catalog store with the same
// query semantics as the PostgreSQL adapter. It backs tests and local
// runs without a database.
type ListingRepositoryAdapter struct {
	mu      sync.RWMutex
	records map[string]domain.ListingRecord
}

func NewListingRepositoryAdapter() *ListingRepositoryAdapter {
	return &ListingRepositoryAdapter{
		records: make(map[string]domain.ListingRecord),
	}
}

func (a *ListingRepositoryAdapter) FindByExternalID(_ context.Context, externalID string) (*domain.ListingRecord, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	record, ok := a.records[externalID]
	if !ok {
		return nil, nil
	}
	copied := record
	copied.Gallery = append([]string(nil), record.Gallery...)
	return &copied, nil
}

func (a *ListingRepositoryAdapter) Upsert(_ context.Context, record *domain.ListingRecord) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, exists := a.records[record.ExternalID]
	stored := *record
	stored.Gallery = append([]string(nil), record.Gallery...)
	a.records[record.ExternalID] = stored
	return !exists, nil
}

func (a *ListingRepositoryAdapter) Query(_ context.Context, criteria domain.FilterCriteria) (*domain.PaginatedResult, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var matched []domain.ListingRecord
	for _, record := range a.records {
		if matches(record, criteria) {
			matched = append(matched, record)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].PublishedAt.Equal(matched[j].PublishedAt) {
			return matched[i].PublishedAt.After(matched[j].PublishedAt)
		}
		return matched[i].ID.String() > matched[j].ID.String()
	})

	total := len(matched)
	totalPages := (total + constants.ResultsPageSize - 1) / constants.ResultsPageSize

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * constants.ResultsPageSize
	if start > total {
		start = total
	}
	end := start + constants.ResultsPageSize
	if end > total {
		end = total
	}

	return &domain.PaginatedResult{
		Items:       matched[start:end],
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
	}, nil
}

func (a *ListingRepositoryAdapter) MapPins(_ context.Context) ([]domain.MapPin, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var pins []domain.MapPin
	for _, record := range a.records {
		if record.Status != domain.StatusPublished || !record.HasCoordinates() {
			continue
		}
		pins = append(pins, domain.MapPin{
			ExternalID:   record.ExternalID,
			Title:        record.Title,
			PriceNumeric: record.PriceNumeric,
			Currency:     record.Currency,
			Latitude:     record.Latitude,
			Longitude:    record.Longitude,
			Geohash:      record.Geohash,
		})
	}

	sort.Slice(pins, func(i, j int) bool { return pins[i].ExternalID < pins[j].ExternalID })
	return pins, nil
}

func matches(record domain.ListingRecord, criteria domain.FilterCriteria) bool {
	if record.Status != domain.StatusPublished {
		return false
	}

	if criteria.Search != "" &&
		!strings.Contains(strings.ToLower(record.Title), strings.ToLower(criteria.Search)) {
		return false
	}

	if len(criteria.Operations) > 0 {
		found := false
		for _, op := range criteria.Operations {
			if strings.EqualFold(record.Operation, domain.NormalizeOperation(op)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(criteria.PropertyTypes) > 0 {
		found := false
		stored := strings.ToLower(record.PropertyType)
		for _, t := range criteria.PropertyTypes {
			for _, expanded := range domain.ExpandTypeFilter(t) {
				if stored == expanded {
					found = true
					break
				}
			}
		}
		if !found {
			return false
		}
	}

	if terms := criteria.LocationTerms(); len(terms) > 0 {
		found := false
		location := strings.ToLower(record.Location)
		for _, term := range terms {
			if strings.Contains(location, strings.ToLower(term)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if criteria.Bedrooms != nil && record.Bedrooms != *criteria.Bedrooms {
		return false
	}
	if criteria.Bathrooms != nil && record.Bathrooms != *criteria.Bathrooms {
		return false
	}

	if criteria.PriceMin != nil && record.PriceNumeric < *criteria.PriceMin {
		return false
	}
	if criteria.PriceMax != nil && record.PriceNumeric > *criteria.PriceMax {
		return false
	}
	if criteria.ConstructionMin != nil && record.ConstructionSizeM2 < *criteria.ConstructionMin {
		return false
	}
	if criteria.ConstructionMax != nil && record.ConstructionSizeM2 > *criteria.ConstructionMax {
		return false
	}
	if criteria.LandMin != nil && record.LotSizeM2 < *criteria.LandMin {
		return false
	}
	if criteria.LandMax != nil && record.LotSizeM2 > *criteria.LandMax {
		return false
	}

	return true
}

// ComputeFacets mirrors the PostgreSQL facet computation over the
// in-memory records.
func (a *ListingRepositoryAdapter) ComputeFacets(_ context.Context) (*domain.FacetSummary, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	citiesByState := make(map[string]map[string]struct{})
	typeSet := make(map[string]struct{})
	operationSet := make(map[string]struct{})

	summary := &domain.FacetSummary{}
	pricesSeen, constructionSeen, lotSeen := false, false, false

	for _, record := range a.records {
		if record.Status != domain.StatusPublished {
			continue
		}

		if record.Location != "" {
			state, city := splitLocation(record.Location)
			if state != "" {
				if citiesByState[state] == nil {
					citiesByState[state] = make(map[string]struct{})
				}
				if city != "" {
					citiesByState[state][city] = struct{}{}
				}
			}
		}

		if record.PropertyType != "" {
			typeSet[record.PropertyType] = struct{}{}
		}
		if record.Operation != "" {
			operationSet[record.Operation] = struct{}{}
		}

		if record.PriceNumeric > 0 {
			accumulateRange(&summary.PriceRange, &pricesSeen, record.PriceNumeric)
		}
		if record.ConstructionSizeM2 > 0 {
			accumulateRange(&summary.ConstructionRange, &constructionSeen, record.ConstructionSizeM2)
		}
		if record.LotSizeM2 > 0 {
			accumulateRange(&summary.LotRange, &lotSeen, record.LotSizeM2)
		}
	}

	for state, citySet := range citiesByState {
		cities := make([]string, 0, len(citySet))
		for city := range citySet {
			cities = append(cities, city)
		}
		sort.Strings(cities)
		summary.States = append(summary.States, domain.StateFacet{Name: state, Cities: cities})
	}
	sort.Slice(summary.States, func(i, j int) bool { return summary.States[i].Name < summary.States[j].Name })

	summary.PropertyTypes = toDictionary(typeSet)
	summary.Operations = toDictionary(operationSet)

	return summary, nil
}

func accumulateRange(r *domain.RangeResult, seen *bool, value float64) {
	if !*seen {
		r.Min, r.Max = value, value
		*seen = true
		return
	}
	if value < r.Min {
		r.Min = value
	}
	if value > r.Max {
		r.Max = value
	}
}

func toDictionary(values map[string]struct{}) []domain.DictionaryItem {
	caser := cases.Title(language.English)

	items := make([]domain.DictionaryItem, 0, len(values))
	for value := range values {
		display := caser.String(strings.ReplaceAll(value, "_", " "))
		items = append(items, domain.DictionaryItem{SystemName: value, DisplayName: display})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SystemName < items[j].SystemName })
	return items
}

func splitLocation(location string) (string, string) {
	parts := strings.Split(location, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[len(parts)-1], parts[len(parts)-2]
	}
}
