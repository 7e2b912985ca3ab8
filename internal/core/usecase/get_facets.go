package usecase

import (
	"context"
	"sync"
	"time"

	"catalog-service/internal/constants"
	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// GetFacetsUseCase serves derived aggregates behind an explicit TTL cache.
// The computation itself lives in the repository; this wrapper only decides
// when a cached value may still be served. Invalidate is called by the
// reconciler on every catalog write, so queries never see a stale window
// longer than a single in-flight read.
type GetFacetsUseCase struct {
	repo port.FacetRepositoryPort
	ttl  time.Duration

	mu        sync.Mutex
	cached    *domain.FacetSummary
	expiresAt time.Time
}

func NewGetFacetsUseCase(repo port.FacetRepositoryPort) *GetFacetsUseCase {
	return &GetFacetsUseCase{
		repo: repo,
		ttl:  constants.FacetCacheTTL,
	}
}

func (uc *GetFacetsUseCase) Execute(ctx context.Context) (*domain.FacetSummary, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetFacets"})

	uc.mu.Lock()
	if uc.cached != nil && time.Now().Before(uc.expiresAt) {
		summary := uc.cached
		uc.mu.Unlock()
		ucLogger.Debug("Serving cached facets", nil)
		return summary, nil
	}
	uc.mu.Unlock()

	summary, err := uc.repo.ComputeFacets(ctx)
	if err != nil {
		ucLogger.Error("Facet computation failed", err, nil)
		return nil, err
	}

	uc.mu.Lock()
	uc.cached = summary
	uc.expiresAt = time.Now().Add(uc.ttl)
	uc.mu.Unlock()

	ucLogger.Info("Facets recomputed", port.Fields{
		"states": len(summary.States),
		"types":  len(summary.PropertyTypes),
	})
	return summary, nil
}

// Invalidate drops the cached summary immediately.
func (uc *GetFacetsUseCase) Invalidate() {
	uc.mu.Lock()
	uc.cached = nil
	uc.expiresAt = time.Time{}
	uc.mu.Unlock()
}
