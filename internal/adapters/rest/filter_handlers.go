package rest

import (
	"net/http"

	usecases_port "catalog-service/internal/core/port/usecases_port"
)

type FilterHandler struct {
	getFacetsUC usecases_port.GetFacetsUseCase
}

func NewFilterHandler(getFacetsUC usecases_port.GetFacetsUseCase) *FilterHandler {
	return &FilterHandler{
		getFacetsUC: getFacetsUC,
	}
}

func (h *FilterHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	summary, err := h.getFacetsUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get filter options")
		return
	}

	RespondWithJSON(w, http.StatusOK, toFilterOptions(summary))
}
