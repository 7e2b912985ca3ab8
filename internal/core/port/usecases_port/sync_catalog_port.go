package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type SyncCatalogUseCase interface {
	Execute(ctx context.Context) (*domain.SyncReport, error)
}
