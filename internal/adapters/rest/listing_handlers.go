package rest

import (
	"errors"
	"net/http"

	"catalog-service/internal/core/domain"
	usecases_port "catalog-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type ListingHandler struct {
	findListingsUC      usecases_port.FindListingsUseCase
	getListingDetailsUC usecases_port.GetListingDetailsUseCase
	getMapPinsUC        usecases_port.GetMapPinsUseCase
}

func NewListingHandler(findListingsUC usecases_port.FindListingsUseCase,
	getListingDetailsUC usecases_port.GetListingDetailsUseCase,
	getMapPinsUC usecases_port.GetMapPinsUseCase) *ListingHandler {
	return &ListingHandler{
		findListingsUC:      findListingsUC,
		getListingDetailsUC: getListingDetailsUC,
		getMapPinsUC:        getMapPinsUC,
	}
}

// FindListings answers a filtered, paginated catalog query. Every filter
// parameter is optional and malformed values are dropped rather than
// rejected.
func (h *ListingHandler) FindListings(w http.ResponseWriter, r *http.Request) {
	criteria := parseFilterCriteria(r)

	result, err := h.findListingsUC.Execute(r.Context(), criteria)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to query listings")
		return
	}

	response := ListingPageResponse{
		Items:       make([]ListingCardResponse, 0, len(result.Items)),
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
		TotalCount:  result.TotalCount,
	}
	for _, record := range result.Items {
		response.Items = append(response.Items, toListingCard(record))
	}

	RespondWithJSON(w, http.StatusOK, response)
}

func (h *ListingHandler) GetListingDetails(w http.ResponseWriter, r *http.Request) {
	externalID := chi.URLParam(r, "externalID")
	if externalID == "" {
		WriteJSONError(w, http.StatusBadRequest, "Listing id is required")
		return
	}

	record, err := h.getListingDetailsUC.Execute(r.Context(), externalID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get listing")
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingDetail(record))
}

func (h *ListingHandler) GetMapPins(w http.ResponseWriter, r *http.Request) {
	pins, err := h.getMapPinsUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get map pins")
		return
	}

	response := make([]MapPinResponse, 0, len(pins))
	for _, pin := range pins {
		response = append(response, MapPinResponse(pin))
	}

	RespondWithJSON(w, http.StatusOK, response)
}

func parseFilterCriteria(r *http.Request) domain.FilterCriteria {
	return domain.FilterCriteria{
		Search:          r.URL.Query().Get("search"),
		Operations:      getMultiValue(r, "operation"),
		PropertyTypes:   getMultiValue(r, "type"),
		States:          getMultiValue(r, "state"),
		Cities:          getMultiValue(r, "city"),
		Bedrooms:        getIntOrNil(r, "bedrooms"),
		Bathrooms:       getIntOrNil(r, "bathrooms"),
		PriceMin:        getFloatOrNil(r, "price_min"),
		PriceMax:        getFloatOrNil(r, "price_max"),
		ConstructionMin: getFloatOrNil(r, "construction_min"),
		ConstructionMax: getFloatOrNil(r, "construction_max"),
		LandMin:         getFloatOrNil(r, "land_min"),
		LandMax:         getFloatOrNil(r, "land_max"),
		Page:            getPageOrDefault(r),
	}
}
