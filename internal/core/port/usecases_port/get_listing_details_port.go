package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetListingDetailsUseCase interface {
	Execute(ctx context.Context, externalID string) (*domain.ListingRecord, error)
}
