package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// FacetRepositoryPort computes the derived aggregates over the full
// catalog. Implementations do the pure computation; caching lives in the
// use case wrapping this port.
type FacetRepositoryPort interface {
	ComputeFacets(ctx context.Context) (*domain.FacetSummary, error)
}

// FacetInvalidatorPort lets the write path drop cached aggregates the
// moment any record is created or updated.
type FacetInvalidatorPort interface {
	Invalidate()
}
