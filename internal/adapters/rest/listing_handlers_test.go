package rest

import (
	"net/http/httptest"
	"testing"
)

func TestParseFilterCriteriaMultiValueAndCommaSplit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/listings?type=house,apartment&type=land&operation=sale&state=CDMX&city=Guadalajara,Zapopan", nil)

	criteria := parseFilterCriteria(r)

	if len(criteria.PropertyTypes) != 3 {
		t.Errorf("PropertyTypes = %v; want 3 entries", criteria.PropertyTypes)
	}
	if len(criteria.Operations) != 1 || criteria.Operations[0] != "sale" {
		t.Errorf("Operations = %v", criteria.Operations)
	}
	if len(criteria.Cities) != 2 {
		t.Errorf("Cities = %v", criteria.Cities)
	}

	terms := criteria.LocationTerms()
	if len(terms) != 3 {
		t.Errorf("LocationTerms = %v; want states then cities", terms)
	}
}

func TestParseFilterCriteriaNumericParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/listings?bedrooms=3&price_min=1000000&price_max=2000000&paged=4", nil)

	criteria := parseFilterCriteria(r)

	if criteria.Bedrooms == nil || *criteria.Bedrooms != 3 {
		t.Errorf("Bedrooms = %v", criteria.Bedrooms)
	}
	if criteria.PriceMin == nil || *criteria.PriceMin != 1000000 {
		t.Errorf("PriceMin = %v", criteria.PriceMin)
	}
	if criteria.PriceMax == nil || *criteria.PriceMax != 2000000 {
		t.Errorf("PriceMax = %v", criteria.PriceMax)
	}
	if criteria.Page != 4 {
		t.Errorf("Page = %d", criteria.Page)
	}
}

func TestParseFilterCriteriaDropsMalformedInput(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/listings?bedrooms=abc&price_min=cheap&paged=-2&type=,,", nil)

	criteria := parseFilterCriteria(r)

	if criteria.Bedrooms != nil {
		t.Errorf("Bedrooms = %v; want nil for malformed input", criteria.Bedrooms)
	}
	if criteria.PriceMin != nil {
		t.Errorf("PriceMin = %v; want nil for malformed input", criteria.PriceMin)
	}
	if criteria.Page != 1 {
		t.Errorf("Page = %d; want 1 for negative input", criteria.Page)
	}
	if len(criteria.PropertyTypes) != 0 {
		t.Errorf("PropertyTypes = %v; want empty", criteria.PropertyTypes)
	}
}

func TestParseFilterCriteriaEmptyQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/listings", nil)

	criteria := parseFilterCriteria(r)

	if criteria.Search != "" || criteria.Bedrooms != nil || criteria.PriceMin != nil {
		t.Errorf("expected zero-value criteria, got %+v", criteria)
	}
	if criteria.Page != 1 {
		t.Errorf("Page = %d; want default 1", criteria.Page)
	}
}
