package rest

import (
	"net/http"

	usecases_port "catalog-service/internal/core/port/usecases_port"
)

type SyncHandler struct {
	syncCatalogUC usecases_port.SyncCatalogUseCase
}

func NewSyncHandler(syncCatalogUC usecases_port.SyncCatalogUseCase) *SyncHandler {
	return &SyncHandler{
		syncCatalogUC: syncCatalogUC,
	}
}

// TriggerSync runs a full catalog sync and returns the report. The run is
// synchronous: errors inside the sync are collected into the report, so a
// 500 here means the run itself could not start or finish.
func (h *SyncHandler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	report, err := h.syncCatalogUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Sync run failed")
		return
	}

	RespondWithJSON(w, http.StatusOK, SyncReportResponse{
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Scopes:     report.Scopes,
		Pages:      report.Pages,
		Created:    report.Created,
		Updated:    report.Updated,
		Failed:     report.Failed,
		Errors:     report.Errors,
	})
}
