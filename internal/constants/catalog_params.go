package constants

import "time"

const (
	// RemotePageSize is the page size requested from the remote catalog API.
	RemotePageSize = 50

	// ResultsPageSize is the fixed page size of local catalog queries.
	ResultsPageSize = 12

	// RemoteRequestTimeout applies to each remote call; there is no retry.
	RemoteRequestTimeout = 30 * time.Second

	// FacetCacheTTL bounds how long derived aggregates are served without
	// recomputation when no write invalidated them.
	FacetCacheTTL = 24 * time.Hour

	// GeohashPrecision is the cell precision stored on records for map pins.
	GeohashPrecision = 7

	DefaultCatalogAPIURL = "https://api.easybroker.com/v1"
)
