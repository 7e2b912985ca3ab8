package usecase

import (
	"context"
	"testing"
	"time"

	"catalog-service/internal/adapters/memory"
	"catalog-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFacetRepo struct {
	inner    *memory.ListingRepositoryAdapter
	computes int
}

func (r *countingFacetRepo) ComputeFacets(ctx context.Context) (*domain.FacetSummary, error) {
	r.computes++
	return r.inner.ComputeFacets(ctx)
}

func seedFacetData(t *testing.T, repo *memory.ListingRepositoryAdapter) {
	t.Helper()
	records := []domain.ListingRecord{
		{ExternalID: "EB-1", PropertyType: "house", Operation: "sale", Location: "Roma Norte, Ciudad de México, CDMX", PriceNumeric: 2500000, LotSizeM2: 200},
		{ExternalID: "EB-2", PropertyType: "apartment", Operation: "rental", Location: "Condesa, Ciudad de México, CDMX", PriceNumeric: 18000, ConstructionSizeM2: 80},
		{ExternalID: "EB-3", PropertyType: "house", Operation: "sale", Location: "Centro, Guadalajara, Jalisco", PriceNumeric: 1800000, LotSizeM2: 150},
	}
	for i := range records {
		records[i].ID = uuid.New()
		records[i].Status = domain.StatusPublished
		_, err := repo.Upsert(context.Background(), &records[i])
		require.NoError(t, err)
	}
}

func TestGetFacetsComputesStateTree(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	seedFacetData(t, repo)

	uc := NewGetFacetsUseCase(repo)
	summary, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.States, 2)
	assert.Equal(t, "CDMX", summary.States[0].Name)
	assert.Equal(t, []string{"Ciudad de México"}, summary.States[0].Cities)
	assert.Equal(t, "Jalisco", summary.States[1].Name)

	require.Len(t, summary.PropertyTypes, 2)
	assert.Equal(t, "apartment", summary.PropertyTypes[0].SystemName)
	assert.Equal(t, "Apartment", summary.PropertyTypes[0].DisplayName)

	assert.Equal(t, 18000.0, summary.PriceRange.Min)
	assert.Equal(t, 2500000.0, summary.PriceRange.Max)
	assert.Equal(t, 150.0, summary.LotRange.Min)
	assert.Equal(t, 200.0, summary.LotRange.Max)
}

func TestGetFacetsServesCacheUntilInvalidated(t *testing.T) {
	inner := memory.NewListingRepositoryAdapter()
	seedFacetData(t, inner)
	repo := &countingFacetRepo{inner: inner}

	uc := NewGetFacetsUseCase(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx)
	require.NoError(t, err)
	_, err = uc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.computes)

	uc.Invalidate()
	_, err = uc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.computes)
}

func TestGetFacetsRecomputesAfterTTL(t *testing.T) {
	inner := memory.NewListingRepositoryAdapter()
	seedFacetData(t, inner)
	repo := &countingFacetRepo{inner: inner}

	uc := NewGetFacetsUseCase(repo)
	uc.ttl = 10 * time.Millisecond
	ctx := context.Background()

	_, err := uc.Execute(ctx)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = uc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.computes)
}
