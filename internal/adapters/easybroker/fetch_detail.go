package easybroker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"github.com/gocolly/colly/v2"
)

type detailLocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type detailImage struct {
	URL string `json:"url"`
}

type detailResponse struct {
	PublicID       string         `json:"public_id"`
	Description    *string        `json:"description"`
	TitleImageFull *string        `json:"title_image_full"`
	Location       detailLocation `json:"location"`
	PropertyImages []detailImage  `json:"property_images"`
}

// FetchDetail requests the full record for a single listing. A failure
// here is scoped to that one listing, so the error message carries the
// external id.
func (a *EasyBrokerAdapter) FetchDetail(ctx context.Context, scope domain.CredentialScope, externalID string) (*domain.ListingDetail, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	requestURL := fmt.Sprintf("%s/properties/%s", a.baseURL, url.PathEscape(externalID))

	collector := a.collector.Clone()

	var responseErr error
	var detail *domain.ListingDetail

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "application/json")
		r.Headers.Set("X-Authorization", scope.APIKey)
	})

	collector.OnResponse(func(r *colly.Response) {
		if err := contracts.ValidateListingDetail(r.Body); err != nil {
			logger.Warn("remote detail payload failed contract validation", port.Fields{
				"external_id": externalID,
				"error":       err.Error(),
			})
		}
		var parsed detailResponse
		if err := json.Unmarshal(r.Body, &parsed); err != nil {
			responseErr = fmt.Errorf("failed to decode detail for %s: %w", externalID, err)
			return
		}
		detail = parsed.toDomain()
	})

	collector.OnError(func(r *colly.Response, err error) {
		responseErr = fmt.Errorf("detail request for %s failed (status %d): %w", externalID, r.StatusCode, err)
	})

	if err := collector.Visit(requestURL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", requestURL, err)
	}
	collector.Wait()

	if responseErr != nil {
		return nil, responseErr
	}
	if detail == nil {
		return nil, fmt.Errorf("no detail response received for %s", externalID)
	}

	return detail, nil
}

func (d *detailResponse) toDomain() *domain.ListingDetail {
	detail := &domain.ListingDetail{
		Latitude:  d.Location.Latitude,
		Longitude: d.Location.Longitude,
	}
	if d.Description != nil {
		detail.Description = *d.Description
	}
	if d.TitleImageFull != nil {
		detail.TitleImageURL = *d.TitleImageFull
	}
	for _, img := range d.PropertyImages {
		if img.URL != "" {
			detail.GalleryURLs = append(detail.GalleryURLs, img.URL)
		}
	}
	return detail
}
