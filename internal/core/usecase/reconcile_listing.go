package usecase

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/constants"
	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
)

// ReconcileListingUseCase maps one RawListing onto exactly one local record
// (create-or-update by external id). Safe to call repeatedly with the same
// payload: re-running it leaves the record in the same final state.
type ReconcileListingUseCase struct {
	repo   port.ListingRepositoryPort
	facets port.FacetInvalidatorPort
}

func NewReconcileListingUseCase(repo port.ListingRepositoryPort, facets port.FacetInvalidatorPort) *ReconcileListingUseCase {
	return &ReconcileListingUseCase{repo: repo, facets: facets}
}

// Execute upserts the raw listing and reports whether a new record was
// created. There is no conflict detection: scalar fields are last-write-wins.
func (uc *ReconcileListingUseCase) Execute(ctx context.Context, raw domain.RawListing) (*domain.ListingRecord, bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ReconcileListing",
		"external_id": raw.ExternalID,
		"scope":       raw.Scope,
	})

	if raw.ExternalID == "" {
		return nil, false, fmt.Errorf("reconcile: raw listing has no external id")
	}

	record, err := uc.repo.FindByExternalID(ctx, raw.ExternalID)
	if err != nil {
		return nil, false, fmt.Errorf("reconcile: lookup of %q failed: %w", raw.ExternalID, err)
	}

	created := false
	if record == nil {
		// Identity is established first: a minimal published record with
		// the external id, before any other field is written.
		now := time.Now()
		record = &domain.ListingRecord{
			ID:          uuid.New(),
			ExternalID:  raw.ExternalID,
			Title:       raw.Title,
			Status:      domain.StatusPublished,
			PublishedAt: now,
			CreatedAt:   now,
		}
		if _, err := uc.repo.Upsert(ctx, record); err != nil {
			return nil, false, fmt.Errorf("reconcile: creating %q failed: %w", raw.ExternalID, err)
		}
		created = true
		ucLogger.Debug("Created new catalog record", nil)
	}

	applyRawFields(record, raw)

	if _, err := uc.repo.Upsert(ctx, record); err != nil {
		return nil, created, fmt.Errorf("reconcile: saving %q failed: %w", raw.ExternalID, err)
	}

	if uc.facets != nil {
		uc.facets.Invalidate()
	}

	ucLogger.Info("Reconciled listing", port.Fields{
		"created":       created,
		"property_type": record.PropertyType,
		"operation":     record.Operation,
		"price":         record.PriceNumeric,
	})
	return record, created, nil
}

// applyRawFields overwrites the record from the raw payload: scalars are
// last-write-wins, vocabulary goes through normalization, the gallery is
// unioned and the featured image is only ever set once.
func applyRawFields(record *domain.ListingRecord, raw domain.RawListing) {
	record.Title = raw.Title
	if raw.Description != "" {
		record.Description = raw.Description
	}
	record.Operation = domain.NormalizeOperation(raw.Operation)
	record.PropertyType = domain.NormalizeType(raw.PropertyType)
	record.Currency = raw.Currency
	record.Location = raw.Location
	record.Bedrooms = clampNonNegative(raw.Bedrooms)
	record.Bathrooms = clampNonNegative(raw.Bathrooms)
	record.ParkingSpaces = clampNonNegative(raw.ParkingSpaces)
	record.LotSizeM2 = clampNonNegativeF(raw.LotSizeM2)
	record.ConstructionSizeM2 = clampNonNegativeF(raw.ConstructionSizeM2)

	record.PriceDisplay = raw.PriceDisplay
	if raw.PriceAmount != nil {
		record.PriceNumeric = *raw.PriceAmount
	} else {
		record.PriceNumeric = domain.ParsePriceAmount(raw.PriceDisplay)
	}

	record.Gallery = unionGallery(record.Gallery, raw.GalleryURLs)

	if record.FeaturedImage == "" && raw.TitleImageURL != "" {
		record.FeaturedImage = raw.TitleImageURL
	}

	if raw.Latitude != nil && raw.Longitude != nil {
		record.Latitude = *raw.Latitude
		record.Longitude = *raw.Longitude
		record.Geohash = geohash.EncodeWithPrecision(record.Latitude, record.Longitude, constants.GeohashPrecision)
	}

	record.Status = domain.StatusPublished
	record.UpdatedAt = time.Now()
}

// unionGallery appends new URLs preserving order, keeping existing entries
// (manually attached images included) and dropping duplicates.
func unionGallery(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, url := range existing {
		if url == "" {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		merged = append(merged, url)
	}
	for _, url := range incoming {
		if url == "" {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		merged = append(merged, url)
	}
	return merged
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampNonNegativeF(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
