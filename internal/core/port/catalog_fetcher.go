package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// CatalogFetcherPort is the remote catalog API. Pages are fetched under one
// credential scope at a time; hasNext reports whether the server signalled
// a further page.
type CatalogFetcherPort interface {
	FetchPage(ctx context.Context, scope domain.CredentialScope, page int) (listings []domain.RawListing, hasNext bool, err error)

	// FetchDetail retrieves the long description, gallery URLs and
	// coordinates for one listing. Summary and detail are two distinct
	// remote calls per listing.
	FetchDetail(ctx context.Context, scope domain.CredentialScope, externalID string) (*domain.ListingDetail, error)
}
