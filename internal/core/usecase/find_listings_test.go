package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"catalog-service/internal/adapters/memory"
	"catalog-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo *memory.ListingRepositoryAdapter, records ...domain.ListingRecord) {
	t.Helper()
	for i := range records {
		if records[i].ID == uuid.Nil {
			records[i].ID = uuid.New()
		}
		if records[i].Status == "" {
			records[i].Status = domain.StatusPublished
		}
		_, err := repo.Upsert(context.Background(), &records[i])
		require.NoError(t, err)
	}
}

func intPtr(v int) *int { return &v }

func TestFindListingsFiltersByTypeWithLegacyAliases(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	seed(t, repo,
		domain.ListingRecord{ExternalID: "EB-1", Title: "Casa nueva", PropertyType: "house"},
		// A pre-normalization record still stores the raw display label.
		domain.ListingRecord{ExternalID: "EB-2", Title: "Casa vieja", PropertyType: "Casas"},
		domain.ListingRecord{ExternalID: "EB-3", Title: "Depto", PropertyType: "apartment"},
	)

	uc := NewFindListingsUseCase(repo)
	result, err := uc.Execute(context.Background(), domain.FilterCriteria{
		PropertyTypes: []string{"house"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
}

func TestFindListingsCombinedFilters(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	seed(t, repo,
		domain.ListingRecord{ExternalID: "EB-1", Title: "Casa cara", PropertyType: "house", Operation: "sale", PriceNumeric: 5000000, Bedrooms: 4},
		domain.ListingRecord{ExternalID: "EB-2", Title: "Casa accesible", PropertyType: "house", Operation: "sale", PriceNumeric: 1500000, Bedrooms: 3},
		domain.ListingRecord{ExternalID: "EB-3", Title: "Depto en renta", PropertyType: "apartment", Operation: "rental", PriceNumeric: 18000, Bedrooms: 2},
	)

	min, max := 1000000.0, 2000000.0
	uc := NewFindListingsUseCase(repo)
	result, err := uc.Execute(context.Background(), domain.FilterCriteria{
		PropertyTypes: []string{"house"},
		Operations:    []string{"Venta"},
		PriceMin:      &min,
		PriceMax:      &max,
		Bedrooms:      intPtr(3),
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "EB-2", result.Items[0].ExternalID)
}

func TestFindListingsPriceBoundsAreInclusive(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	seed(t, repo,
		domain.ListingRecord{ExternalID: "EB-1", PriceNumeric: 1000000},
		domain.ListingRecord{ExternalID: "EB-2", PriceNumeric: 999999.99},
		domain.ListingRecord{ExternalID: "EB-3", PriceNumeric: 2000000},
	)

	min, max := 1000000.0, 2000000.0
	uc := NewFindListingsUseCase(repo)
	result, err := uc.Execute(context.Background(), domain.FilterCriteria{
		PriceMin: &min,
		PriceMax: &max,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
}

func TestFindListingsLocationSubstringOrGroup(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	seed(t, repo,
		domain.ListingRecord{ExternalID: "EB-1", Location: "Roma Norte, Ciudad de México, CDMX"},
		domain.ListingRecord{ExternalID: "EB-2", Location: "Centro, Guadalajara, Jalisco"},
		domain.ListingRecord{ExternalID: "EB-3", Location: "Zona Río, Tijuana, Baja California"},
	)

	uc := NewFindListingsUseCase(repo)

	// City match is a substring test against the full location string.
	result, err := uc.Execute(context.Background(), domain.FilterCriteria{
		Cities: []string{"Ciudad de México"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "EB-1", result.Items[0].ExternalID)

	// States and cities together form one OR group.
	result, err = uc.Execute(context.Background(), domain.FilterCriteria{
		States: []string{"Jalisco"},
		Cities: []string{"Tijuana"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
}

func TestFindListingsSearchMatchesTitleOnly(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	seed(t, repo,
		domain.ListingRecord{ExternalID: "EB-1", Title: "Casa con alberca", Description: "jardín amplio"},
		domain.ListingRecord{ExternalID: "EB-2", Title: "Departamento moderno", Description: "cerca de alberca pública"},
	)

	uc := NewFindListingsUseCase(repo)
	result, err := uc.Execute(context.Background(), domain.FilterCriteria{Search: "alberca"})
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "EB-1", result.Items[0].ExternalID)
}

func TestFindListingsPaginationAndOrdering(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var records []domain.ListingRecord
	for i := 0; i < 30; i++ {
		records = append(records, domain.ListingRecord{
			ExternalID:  fmt.Sprintf("EB-%02d", i),
			Title:       fmt.Sprintf("Listing %02d", i),
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	seed(t, repo, records...)

	uc := NewFindListingsUseCase(repo)

	result, err := uc.Execute(context.Background(), domain.FilterCriteria{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 30, result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
	require.Len(t, result.Items, 12)
	// Newest first.
	assert.Equal(t, "EB-29", result.Items[0].ExternalID)

	result, err = uc.Execute(context.Background(), domain.FilterCriteria{Page: 3})
	require.NoError(t, err)
	assert.Len(t, result.Items, 6)

	// Out-of-range pages return an empty slice, not an error.
	result, err = uc.Execute(context.Background(), domain.FilterCriteria{Page: 9})
	require.NoError(t, err)
	assert.Empty(t, result.Items)

	// Page zero is clamped to the first page.
	result, err = uc.Execute(context.Background(), domain.FilterCriteria{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, result.CurrentPage)
}

func TestFindListingsNoFiltersReturnsEverythingPublished(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	seed(t, repo,
		domain.ListingRecord{ExternalID: "EB-1"},
		domain.ListingRecord{ExternalID: "EB-2"},
	)
	hidden := domain.ListingRecord{ID: uuid.New(), ExternalID: "EB-3", Status: "draft"}
	_, err := repo.Upsert(context.Background(), &hidden)
	require.NoError(t, err)

	uc := NewFindListingsUseCase(repo)
	result, err := uc.Execute(context.Background(), domain.FilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
}
