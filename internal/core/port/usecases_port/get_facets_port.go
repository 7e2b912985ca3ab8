package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetFacetsUseCase interface {
	Execute(ctx context.Context) (*domain.FacetSummary, error)
}
