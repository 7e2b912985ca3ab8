package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// SyncReportPublisherPort hands a finished sync report to downstream
// consumers. Publishing failures are logged by the caller, never fatal.
type SyncReportPublisherPort interface {
	PublishReport(ctx context.Context, report domain.SyncReport) error
}
