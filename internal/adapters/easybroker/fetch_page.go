package easybroker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"catalog-service/internal/constants"
	"catalog-service/internal/contextkeys"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"github.com/gocolly/colly/v2"
)

type pagePagination struct {
	NextPage *int `json:"next_page"`
	Total    int  `json:"total"`
}

// hasNext reports whether another page should be requested. The remote API
// signals the end of pagination with a null or zero next_page.
func (p pagePagination) hasNext() bool {
	return p.NextPage != nil && *p.NextPage > 0
}

type pageResponse struct {
	Pagination pagePagination   `json:"pagination"`
	Content    []listingSummary `json:"content"`
}

// FetchPage requests one page of listing summaries for the given scope.
// Any transport or decode failure is returned as-is: the caller decides
// how a failed page affects the rest of the run.
func (a *EasyBrokerAdapter) FetchPage(ctx context.Context, scope domain.CredentialScope, page int) ([]domain.RawListing, bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	requestURL := a.buildPageURL(page)

	collector := a.collector.Clone()

	var responseErr error
	var parsed pageResponse
	var gotResponse bool

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "application/json")
		r.Headers.Set("X-Authorization", scope.APIKey)
	})

	collector.OnResponse(func(r *colly.Response) {
		gotResponse = true
		if err := contracts.ValidateListingPage(r.Body); err != nil {
			logger.Warn("remote page payload failed contract validation", port.Fields{
				"scope": scope.Name,
				"page":  page,
				"error": err.Error(),
			})
		}
		if err := json.Unmarshal(r.Body, &parsed); err != nil {
			responseErr = fmt.Errorf("failed to decode page %d: %w", page, err)
		}
	})

	collector.OnError(func(r *colly.Response, err error) {
		responseErr = fmt.Errorf("page request failed (status %d): %w", r.StatusCode, err)
	})

	if err := collector.Visit(requestURL); err != nil {
		return nil, false, fmt.Errorf("failed to visit %s: %w", requestURL, err)
	}
	collector.Wait()

	if responseErr != nil {
		return nil, false, responseErr
	}
	if !gotResponse {
		return nil, false, fmt.Errorf("no response received for page %d", page)
	}

	listings := make([]domain.RawListing, 0, len(parsed.Content))
	for _, summary := range parsed.Content {
		raw := summary.toRawListing(scope.Name)
		if raw.ExternalID == "" {
			logger.Warn("skipping summary without public id", port.Fields{
				"scope": scope.Name,
				"page":  page,
			})
			continue
		}
		listings = append(listings, raw)
	}

	hasNext := parsed.Pagination.hasNext()

	logger.Debug("fetched listing page", port.Fields{
		"scope":    scope.Name,
		"page":     page,
		"listings": len(listings),
		"has_next": hasNext,
	})

	return listings, hasNext, nil
}

func (a *EasyBrokerAdapter) buildPageURL(page int) string {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(constants.RemotePageSize))
	return fmt.Sprintf("%s/properties?%s", a.baseURL, params.Encode())
}
