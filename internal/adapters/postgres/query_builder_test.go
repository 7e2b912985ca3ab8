package postgres

import (
	"strings"
	"testing"

	"catalog-service/internal/core/domain"
)

func TestApplyFiltersDefaults(t *testing.T) {
	where, args := applyFilters(domain.FilterCriteria{})

	if where != "WHERE status = 'published'" {
		t.Errorf("where = %q", where)
	}
	if len(args) != 0 {
		t.Errorf("args = %v; want none", args)
	}
}

func TestApplyFiltersSearchAndVocabulary(t *testing.T) {
	where, args := applyFilters(domain.FilterCriteria{
		Search:        "alberca",
		Operations:    []string{"Venta"},
		PropertyTypes: []string{"Casa"},
	})

	if !strings.Contains(where, "title ILIKE $1") {
		t.Errorf("missing title search in %q", where)
	}
	if !strings.Contains(where, "lower(operation) = ANY($2)") {
		t.Errorf("missing operation filter in %q", where)
	}
	if !strings.Contains(where, "lower(property_type) = ANY($3)") {
		t.Errorf("missing type filter in %q", where)
	}

	if len(args) != 3 {
		t.Fatalf("args = %v; want 3", args)
	}
	if args[0] != "%alberca%" {
		t.Errorf("search arg = %v", args[0])
	}
	operations := args[1].([]string)
	if len(operations) != 1 || operations[0] != "sale" {
		t.Errorf("operations arg = %v; want [sale]", operations)
	}
	// The type filter carries the canonical key plus legacy raw variants.
	types := args[2].([]string)
	want := []string{"house", "casa", "casas"}
	if len(types) != len(want) {
		t.Fatalf("types arg = %v; want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types arg = %v; want %v", types, want)
			break
		}
	}
}

func TestApplyFiltersLocationOrGroup(t *testing.T) {
	where, args := applyFilters(domain.FilterCriteria{
		States: []string{"Jalisco"},
		Cities: []string{"Tijuana"},
	})

	if !strings.Contains(where, "(location ILIKE $1 OR location ILIKE $2)") {
		t.Errorf("missing location OR group in %q", where)
	}
	if args[0] != "%Jalisco%" || args[1] != "%Tijuana%" {
		t.Errorf("location args = %v", args)
	}
}

func TestApplyFiltersRangesOnlyWhenBound(t *testing.T) {
	min := 1000000.0
	where, args := applyFilters(domain.FilterCriteria{
		PriceMin: &min,
	})

	if !strings.Contains(where, "price_numeric >= $1") {
		t.Errorf("missing price lower bound in %q", where)
	}
	if strings.Contains(where, "price_numeric <=") {
		t.Errorf("unexpected price upper bound in %q", where)
	}
	if len(args) != 1 || args[0] != min {
		t.Errorf("args = %v", args)
	}
}

func TestApplyFiltersNumericPlaceholdersStayOrdered(t *testing.T) {
	bedrooms := 3
	min, max := 100.0, 200.0
	where, args := applyFilters(domain.FilterCriteria{
		Bedrooms:        &bedrooms,
		ConstructionMin: &min,
		ConstructionMax: &max,
	})

	if !strings.Contains(where, "bedrooms = $1") ||
		!strings.Contains(where, "construction_size_m2 >= $2") ||
		!strings.Contains(where, "construction_size_m2 <= $3") {
		t.Errorf("placeholders out of order in %q", where)
	}
	if len(args) != 3 {
		t.Errorf("args = %v; want 3", args)
	}
}

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		location  string
		wantState string
		wantCity  string
	}{
		{"Roma Norte, Ciudad de México, CDMX", "CDMX", "Ciudad de México"},
		{"Guadalajara, Jalisco", "Jalisco", "Guadalajara"},
		{"Jalisco", "Jalisco", ""},
		{"a, b, c, d", "d", "c"},
	}

	for _, tt := range tests {
		state, city := splitLocation(tt.location)
		if state != tt.wantState || city != tt.wantCity {
			t.Errorf("splitLocation(%q) = (%q, %q); want (%q, %q)",
				tt.location, state, city, tt.wantState, tt.wantCity)
		}
	}
}
