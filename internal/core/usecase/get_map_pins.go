package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type GetMapPinsUseCase struct {
	repo port.ListingRepositoryPort
}

func NewGetMapPinsUseCase(repo port.ListingRepositoryPort) *GetMapPinsUseCase {
	return &GetMapPinsUseCase{repo: repo}
}

func (uc *GetMapPinsUseCase) Execute(ctx context.Context) ([]domain.MapPin, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetMapPins"})

	pins, err := uc.repo.MapPins(ctx)
	if err != nil {
		ucLogger.Error("Map pins query failed", err, nil)
		return nil, err
	}
	ucLogger.Debug("Map pins loaded", port.Fields{"count": len(pins)})
	return pins, nil
}
