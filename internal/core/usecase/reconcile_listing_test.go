package usecase

import (
	"context"
	"testing"

	"catalog-service/internal/adapters/memory"
	"catalog-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Invalidate() { c.calls++ }

func floatPtr(v float64) *float64 { return &v }

func TestReconcileCreatesThenUpdates(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	invalidator := &countingInvalidator{}
	uc := NewReconcileListingUseCase(repo, invalidator)
	ctx := context.Background()

	raw := domain.RawListing{
		ExternalID:   "EB-001",
		Title:        "Casa en Roma Norte",
		Operation:    "Venta",
		PropertyType: "Casa",
		PriceDisplay: "$2,500,000 MXN",
		Currency:     "MXN",
		Location:     "Roma Norte, Ciudad de México, CDMX",
		Bedrooms:     3,
	}

	record, created, err := uc.Execute(ctx, raw)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, "", record.ID.String())
	assert.Equal(t, domain.OperationSale, record.Operation)
	assert.Equal(t, domain.TypeHouse, record.PropertyType)
	assert.Equal(t, 2500000.0, record.PriceNumeric)
	assert.Equal(t, domain.StatusPublished, record.Status)

	raw.Title = "Casa remodelada en Roma Norte"
	record, created, err = uc.Execute(ctx, raw)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Casa remodelada en Roma Norte", record.Title)

	stored, err := repo.FindByExternalID(ctx, "EB-001")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, record.ID, stored.ID)

	assert.Equal(t, 2, invalidator.calls)
}

func TestReconcileIsIdempotent(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	uc := NewReconcileListingUseCase(repo, nil)
	ctx := context.Background()

	raw := domain.RawListing{
		ExternalID:   "EB-002",
		Title:        "Departamento",
		Operation:    "rental",
		PropertyType: "Departamento",
		PriceAmount:  floatPtr(18000),
		GalleryURLs:  []string{"a.jpg", "b.jpg"},
	}

	first, _, err := uc.Execute(ctx, raw)
	require.NoError(t, err)

	second, created, err := uc.Execute(ctx, raw)
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Operation, second.Operation)
	assert.Equal(t, first.PropertyType, second.PropertyType)
	assert.Equal(t, first.PriceNumeric, second.PriceNumeric)
	assert.Equal(t, first.Gallery, second.Gallery)
}

func TestReconcileGalleryUnionAndFeaturedImage(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	uc := NewReconcileListingUseCase(repo, nil)
	ctx := context.Background()

	raw := domain.RawListing{
		ExternalID:    "EB-003",
		Title:         "Loft",
		TitleImageURL: "thumb-1.jpg",
		GalleryURLs:   []string{"a.jpg", "b.jpg"},
	}
	record, _, err := uc.Execute(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, "thumb-1.jpg", record.FeaturedImage)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, record.Gallery)

	// The next sync drops one URL, adds another and carries a different
	// thumbnail. The gallery grows by union, the featured image stays.
	raw.TitleImageURL = "thumb-2.jpg"
	raw.GalleryURLs = []string{"b.jpg", "c.jpg"}
	record, _, err = uc.Execute(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, "thumb-1.jpg", record.FeaturedImage)
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, record.Gallery)
}

func TestReconcileClampsNegativeCounts(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	uc := NewReconcileListingUseCase(repo, nil)

	record, _, err := uc.Execute(context.Background(), domain.RawListing{
		ExternalID: "EB-004",
		Title:      "Terreno",
		Bedrooms:   -2,
		Bathrooms:  -1,
		LotSizeM2:  -300,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, record.Bedrooms)
	assert.Equal(t, 0, record.Bathrooms)
	assert.Equal(t, 0.0, record.LotSizeM2)
}

func TestReconcileRejectsMissingExternalID(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	uc := NewReconcileListingUseCase(repo, nil)

	_, _, err := uc.Execute(context.Background(), domain.RawListing{Title: "no id"})
	assert.Error(t, err)
}

func TestReconcileLastScopeWins(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	uc := NewReconcileListingUseCase(repo, nil)
	ctx := context.Background()

	_, created, err := uc.Execute(ctx, domain.RawListing{
		ExternalID:  "EB-005",
		Title:       "From scope A",
		PriceAmount: floatPtr(100),
		Scope:       "scope-1",
	})
	require.NoError(t, err)
	assert.True(t, created)

	record, created, err := uc.Execute(ctx, domain.RawListing{
		ExternalID:  "EB-005",
		Title:       "From scope B",
		PriceAmount: floatPtr(200),
		Scope:       "scope-2",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "From scope B", record.Title)
	assert.Equal(t, 200.0, record.PriceNumeric)
}

func TestReconcileComputesGeohash(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	uc := NewReconcileListingUseCase(repo, nil)

	lat, lng := 19.4326, -99.1332
	record, _, err := uc.Execute(context.Background(), domain.RawListing{
		ExternalID: "EB-006",
		Title:      "Departamento céntrico",
		Latitude:   &lat,
		Longitude:  &lng,
	})
	require.NoError(t, err)
	assert.Len(t, record.Geohash, 7)
	assert.True(t, record.HasCoordinates())
}
