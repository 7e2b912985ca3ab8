package postgres

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"catalog-service/internal/core/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FacetRepositoryAdapter computes catalog-wide aggregates for the filter
// UI: the state/city tree, the stored type and operation dictionaries and
// the numeric ranges.
type FacetRepositoryAdapter struct {
	pool *pgxpool.Pool
}

func NewFacetRepositoryAdapter(pool *pgxpool.Pool) (*FacetRepositoryAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FacetRepositoryAdapter{pool: pool}, nil
}

func (a *FacetRepositoryAdapter) ComputeFacets(ctx context.Context) (*domain.FacetSummary, error) {
	states, err := a.getStateFacets(ctx)
	if err != nil {
		return nil, err
	}

	types, err := a.getDictionary(ctx, "property_type")
	if err != nil {
		return nil, err
	}

	operations, err := a.getDictionary(ctx, "operation")
	if err != nil {
		return nil, err
	}

	priceRange, err := a.getRange(ctx, "price_numeric")
	if err != nil {
		return nil, err
	}
	constructionRange, err := a.getRange(ctx, "construction_size_m2")
	if err != nil {
		return nil, err
	}
	lotRange, err := a.getRange(ctx, "lot_size_m2")
	if err != nil {
		return nil, err
	}

	return &domain.FacetSummary{
		States:            states,
		PropertyTypes:     types,
		Operations:        operations,
		PriceRange:        priceRange,
		ConstructionRange: constructionRange,
		LotRange:          lotRange,
	}, nil
}

// getStateFacets builds the state/city tree from the stored locations.
// Locations follow the positional convention "neighborhood, city, state":
// the last component is the state, the one before it the city.
func (a *FacetRepositoryAdapter) getStateFacets(ctx context.Context) ([]domain.StateFacet, error) {
	sql := `SELECT DISTINCT location FROM listings WHERE status = 'published' AND location <> ''`

	rows, err := a.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct locations: %w", err)
	}
	defer rows.Close()

	citiesByState := make(map[string]map[string]struct{})
	for rows.Next() {
		var location string
		if err := rows.Scan(&location); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}

		state, city := splitLocation(location)
		if state == "" {
			continue
		}
		if citiesByState[state] == nil {
			citiesByState[state] = make(map[string]struct{})
		}
		if city != "" {
			citiesByState[state][city] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading location rows: %w", err)
	}

	states := make([]domain.StateFacet, 0, len(citiesByState))
	for state, citySet := range citiesByState {
		cities := make([]string, 0, len(citySet))
		for city := range citySet {
			cities = append(cities, city)
		}
		sort.Strings(cities)
		states = append(states, domain.StateFacet{Name: state, Cities: cities})
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Name < states[j].Name })

	return states, nil
}

// splitLocation extracts (state, city) from a comma-delimited hierarchy.
// A single-component location is treated as just a state.
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

func (a *FacetRepositoryAdapter) getDictionary(ctx context.Context, column string) ([]domain.DictionaryItem, error) {
	sql := fmt.Sprintf(
		"SELECT DISTINCT %s FROM listings WHERE status = 'published' AND %s <> '' ORDER BY %s",
		column, column, column)

	rows, err := a.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct %s: %w", column, err)
	}
	defer rows.Close()

	caser := cases.Title(language.English)

	var items []domain.DictionaryItem
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", column, err)
		}
		display := caser.String(strings.ReplaceAll(value, "_", " "))
		items = append(items, domain.DictionaryItem{SystemName: value, DisplayName: display})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading %s rows: %w", column, err)
	}

	return items, nil
}

func (a *FacetRepositoryAdapter) getRange(ctx context.Context, column string) (domain.RangeResult, error) {
	sql := fmt.Sprintf(
		"SELECT COALESCE(MIN(%s), 0), COALESCE(MAX(%s), 0) FROM listings WHERE status = 'published' AND %s > 0",
		column, column, column)

	var result domain.RangeResult
	if err := a.pool.QueryRow(ctx, sql).Scan(&result.Min, &result.Max); err != nil {
		return domain.RangeResult{}, fmt.Errorf("failed to query %s range: %w", column, err)
	}
	return result, nil
}
