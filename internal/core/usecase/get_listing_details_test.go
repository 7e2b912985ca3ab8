package usecase

import (
	"context"
	"testing"

	"catalog-service/internal/adapters/memory"
	"catalog-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetListingDetails(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	record := domain.ListingRecord{
		ID:         uuid.New(),
		ExternalID: "EB-1",
		Title:      "Casa en venta",
		Status:     domain.StatusPublished,
	}
	_, err := repo.Upsert(context.Background(), &record)
	require.NoError(t, err)

	uc := NewGetListingDetailsUseCase(repo)

	found, err := uc.Execute(context.Background(), "EB-1")
	require.NoError(t, err)
	assert.Equal(t, "Casa en venta", found.Title)

	_, err = uc.Execute(context.Background(), "EB-404")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestGetMapPinsSkipsRecordsWithoutCoordinates(t *testing.T) {
	repo := memory.NewListingRepositoryAdapter()
	records := []domain.ListingRecord{
		{ID: uuid.New(), ExternalID: "EB-1", Status: domain.StatusPublished, Latitude: 19.43, Longitude: -99.13, Geohash: "9g3w818"},
		{ID: uuid.New(), ExternalID: "EB-2", Status: domain.StatusPublished},
	}
	for i := range records {
		_, err := repo.Upsert(context.Background(), &records[i])
		require.NoError(t, err)
	}

	uc := NewGetMapPinsUseCase(repo)
	pins, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, pins, 1)
	assert.Equal(t, "EB-1", pins[0].ExternalID)
	assert.Equal(t, "9g3w818", pins[0].Geohash)
}
