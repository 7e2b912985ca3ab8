package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type GetListingDetailsUseCase struct {
	repo port.ListingRepositoryPort
}

func NewGetListingDetailsUseCase(repo port.ListingRepositoryPort) *GetListingDetailsUseCase {
	return &GetListingDetailsUseCase{repo: repo}
}

func (uc *GetListingDetailsUseCase) Execute(ctx context.Context, externalID string) (*domain.ListingRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetListingDetails",
		"external_id": externalID,
	})

	record, err := uc.repo.FindByExternalID(ctx, externalID)
	if err != nil {
		ucLogger.Error("Lookup failed", err, nil)
		return nil, err
	}
	if record == nil {
		ucLogger.Debug("Listing not found", nil)
		return nil, domain.ErrListingNotFound
	}
	return record, nil
}
