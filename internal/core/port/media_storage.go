package port

import "context"

// MediaStoragePort mirrors remote gallery images into local storage.
// Mirroring is best-effort: already-present files are skipped and the
// stored count is reported alongside any aggregated error.
type MediaStoragePort interface {
	MirrorGallery(ctx context.Context, externalID string, urls []string) (stored int, err error)
}
