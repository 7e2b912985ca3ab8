package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type FindListingsUseCase struct {
	repo port.ListingRepositoryPort
}

func NewFindListingsUseCase(repo port.ListingRepositoryPort) *FindListingsUseCase {
	return &FindListingsUseCase{repo: repo}
}

func (uc *FindListingsUseCase) Execute(ctx context.Context, criteria domain.FilterCriteria) (*domain.PaginatedResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindListings",
		"page":     criteria.Page,
	})

	if criteria.Page < 1 {
		criteria.Page = 1
	}

	result, err := uc.repo.Query(ctx, criteria)
	if err != nil {
		ucLogger.Error("Catalog query failed", err, nil)
		return nil, err
	}

	ucLogger.Info("Catalog query finished", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Items),
		"total_pages":   result.TotalPages,
	})
	return result, nil
}
