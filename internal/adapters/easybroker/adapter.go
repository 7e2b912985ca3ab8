package easybroker

import (
	"fmt"
	"net/url"

	"catalog-service/internal/constants"

	"github.com/gocolly/colly/v2"
)

// EasyBrokerAdapter talks to the remote catalog API. One parent collector
// holds the shared limits; every request runs on a clone with its own
// callbacks. Requests are single-attempt with a fixed timeout; there is
// no retry or backoff.
type EasyBrokerAdapter struct {
	collector *colly.Collector
	baseURL   string
}

func NewEasyBrokerAdapter(baseURL string) (*EasyBrokerAdapter, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("easybroker adapter: invalid base URL %q: %w", baseURL, err)
	}

	c := colly.NewCollector(
		colly.AllowedDomains(parsed.Host),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(constants.RemoteRequestTimeout)

	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  parsed.Host,
		Parallelism: 1,
	}); err != nil {
		return nil, fmt.Errorf("easybroker adapter: failed to set limit rule: %w", err)
	}

	return &EasyBrokerAdapter{
		collector: c,
		baseURL:   baseURL,
	}, nil
}
