package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"catalog-service/internal/constants"
	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/port"

	"github.com/go-resty/resty/v2"
)

// DownloaderAdapter mirrors gallery images onto the local filesystem under
// baseDir/<external_id>/. Files already present are skipped, so re-running
// a sync does not re-download anything.
type DownloaderAdapter struct {
	client  *resty.Client
	baseDir string
}

func NewDownloaderAdapter(baseDir string) (*DownloaderAdapter, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("media base directory cannot be empty")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory %s: %w", baseDir, err)
	}

	client := resty.New()
	client.SetTimeout(constants.RemoteRequestTimeout)

	return &DownloaderAdapter{
		client:  client,
		baseDir: baseDir,
	}, nil
}

// MirrorGallery downloads every URL that is not already mirrored. Failures
// are aggregated; a partial mirror still reports how many files landed.
func (a *DownloaderAdapter) MirrorGallery(ctx context.Context, externalID string, urls []string) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	dir := filepath.Join(a.baseDir, externalID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create gallery directory for %s: %w", externalID, err)
	}

	stored := 0
	var errs []error
	for _, rawURL := range urls {
		target := filepath.Join(dir, localName(rawURL))
		if _, err := os.Stat(target); err == nil {
			continue
		}

		resp, err := a.client.R().SetContext(ctx).Get(rawURL)
		if err != nil {
			errs = append(errs, fmt.Errorf("download %s: %w", rawURL, err))
			continue
		}
		if resp.StatusCode() != 200 {
			errs = append(errs, fmt.Errorf("download %s: status %d", rawURL, resp.StatusCode()))
			continue
		}

		if err := os.WriteFile(target, resp.Body(), 0o644); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", target, err))
			continue
		}
		stored++
	}

	if stored > 0 {
		logger.Debug("mirrored gallery images", port.Fields{
			"external_id": externalID,
			"stored":      stored,
		})
	}

	return stored, errors.Join(errs...)
}

// localName derives a stable filename from the source URL: a short hash
// prefix keeps distinct URLs with identical basenames from colliding.
func localName(rawURL string) string {
	sum := sha1.Sum([]byte(rawURL))
	prefix := hex.EncodeToString(sum[:4])

	base := "image"
	if parsed, err := url.Parse(rawURL); err == nil {
		if name := path.Base(parsed.Path); name != "" && name != "." && name != "/" {
			base = name
		}
	}
	return prefix + "_" + base
}
