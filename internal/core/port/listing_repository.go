package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// ListingRepositoryPort is the catalog store. FindByExternalID returns
// (nil, nil) when no record exists, so the reconciler can distinguish
// "create" from a real storage failure.
type ListingRepositoryPort interface {
	FindByExternalID(ctx context.Context, externalID string) (*domain.ListingRecord, error)

	// Upsert writes the record keyed by external id and reports whether a
	// new row was created.
	Upsert(ctx context.Context, record *domain.ListingRecord) (created bool, err error)

	// Query answers a filtered, paginated catalog query.
	Query(ctx context.Context, criteria domain.FilterCriteria) (*domain.PaginatedResult, error)

	// MapPins returns the map projection of published records that carry
	// coordinates.
	MapPins(ctx context.Context) ([]domain.MapPin, error)
}
