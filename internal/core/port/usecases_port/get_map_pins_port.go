package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetMapPinsUseCase interface {
	Execute(ctx context.Context) ([]domain.MapPin, error)
}
