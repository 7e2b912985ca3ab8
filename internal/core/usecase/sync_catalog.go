package usecase

import (
	"context"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// reconciler is what SyncCatalogUseCase needs from the reconciliation step.
type reconciler interface {
	Execute(ctx context.Context, raw domain.RawListing) (*domain.ListingRecord, bool, error)
}

// SyncCatalogUseCase runs one full synchronization pass: every credential
// scope sequentially, every page of that scope, one detail call per listing,
// reconcile, optional media mirroring. Errors are collected into the report
// and never abort the run as a whole; only a page-level transport failure
// ends the current scope's pagination loop.
//
// No mutual exclusion is applied between overlapping runs; this is a
// single-operator tool and concurrent reconciliation of the same external
// id is last-write-wins.
type SyncCatalogUseCase struct {
	fetcher   port.CatalogFetcherPort
	reconcile reconciler
	media     port.MediaStoragePort        // nil disables mirroring
	publisher port.SyncReportPublisherPort // nil disables publishing
	scopes    []domain.CredentialScope
}

func NewSyncCatalogUseCase(
	fetcher port.CatalogFetcherPort,
	reconcile reconciler,
	media port.MediaStoragePort,
	publisher port.SyncReportPublisherPort,
	scopes []domain.CredentialScope,
) *SyncCatalogUseCase {
	return &SyncCatalogUseCase{
		fetcher:   fetcher,
		reconcile: reconcile,
		media:     media,
		publisher: publisher,
		scopes:    scopes,
	}
}

func (uc *SyncCatalogUseCase) Execute(ctx context.Context) (*domain.SyncReport, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "SyncCatalog"})

	report := &domain.SyncReport{
		StartedAt: time.Now(),
		Scopes:    len(uc.scopes),
	}

	ucLogger.Info("Sync started", port.Fields{"scopes": len(uc.scopes)})

	for _, scope := range uc.scopes {
		uc.syncScope(ctx, scope, report)
	}

	report.FinishedAt = time.Now()
	report.Failed = len(report.Errors)

	ucLogger.Info("Sync finished", port.Fields{
		"pages":    report.Pages,
		"created":  report.Created,
		"updated":  report.Updated,
		"failed":   report.Failed,
		"duration": report.FinishedAt.Sub(report.StartedAt).String(),
	})

	if uc.publisher != nil {
		if err := uc.publisher.PublishReport(ctx, *report); err != nil {
			ucLogger.Error("Failed to publish sync report", err, nil)
		}
	}

	return report, nil
}

func (uc *SyncCatalogUseCase) syncScope(ctx context.Context, scope domain.CredentialScope, report *domain.SyncReport) {
	logger := contextkeys.LoggerFromContext(ctx)
	scopeLogger := logger.WithFields(port.Fields{"use_case": "SyncCatalog", "scope": scope.Name})

	page := 1
	for {
		listings, hasNext, err := uc.fetcher.FetchPage(ctx, scope, page)
		if err != nil {
			// A page failure aborts this scope only; other scopes still run.
			scopeLogger.Error("Listing page fetch failed, aborting scope", err, port.Fields{"page": page})
			report.Errors = append(report.Errors, domain.SyncError{
				Scope:   scope.Name,
				Stage:   domain.SyncStagePage,
				Message: err.Error(),
			})
			return
		}
		report.Pages++

		if len(listings) == 0 {
			break
		}

		for _, raw := range listings {
			uc.processListing(ctx, scope, raw, report)
		}

		if !hasNext {
			break
		}
		page++
	}

	scopeLogger.Info("Scope synced", port.Fields{"pages": page})
}

func (uc *SyncCatalogUseCase) processListing(ctx context.Context, scope domain.CredentialScope, raw domain.RawListing, report *domain.SyncReport) {
	logger := contextkeys.LoggerFromContext(ctx)
	itemLogger := logger.WithFields(port.Fields{
		"use_case":    "SyncCatalog",
		"scope":       scope.Name,
		"external_id": raw.ExternalID,
	})

	raw.Scope = scope.Name

	detail, err := uc.fetcher.FetchDetail(ctx, scope, raw.ExternalID)
	if err != nil {
		// Partial data: the listing is still reconciled from its summary,
		// just without gallery/description.
		itemLogger.Warn("Detail fetch failed, continuing with summary only", port.Fields{"error": err.Error()})
		report.Errors = append(report.Errors, domain.SyncError{
			Scope:      scope.Name,
			ExternalID: raw.ExternalID,
			Stage:      domain.SyncStageDetail,
			Message:    err.Error(),
		})
	} else {
		raw.MergeDetail(detail)
	}

	record, created, err := uc.reconcile.Execute(ctx, raw)
	if err != nil {
		itemLogger.Error("Reconciliation failed", err, nil)
		report.Errors = append(report.Errors, domain.SyncError{
			Scope:      scope.Name,
			ExternalID: raw.ExternalID,
			Stage:      domain.SyncStageReconcile,
			Message:    err.Error(),
		})
		return
	}
	if created {
		report.Created++
	} else {
		report.Updated++
	}

	if uc.media != nil && len(record.Gallery) > 0 {
		if _, err := uc.media.MirrorGallery(ctx, record.ExternalID, record.Gallery); err != nil {
			itemLogger.Warn("Gallery mirroring incomplete", port.Fields{"error": err.Error()})
			report.Errors = append(report.Errors, domain.SyncError{
				Scope:      scope.Name,
				ExternalID: raw.ExternalID,
				Stage:      domain.SyncStageMedia,
				Message:    err.Error(),
			})
		}
	}
}
