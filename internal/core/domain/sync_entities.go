package domain

import "time"

// Stages at which a sync error can be recorded.
const (
	SyncStagePage      = "page"
	SyncStageDetail    = "detail"
	SyncStageReconcile = "reconcile"
	SyncStageMedia     = "media"
)

// SyncError is one per-listing (or per-page) failure collected during a
// sync run. Errors never abort the whole run; they are surfaced together
// in the final report.
type SyncError struct {
	Scope      string `json:"scope"`
	ExternalID string `json:"external_id,omitempty"`
	Stage      string `json:"stage"`
	Message    string `json:"message"`
}

// SyncReport summarizes one full sync run across all credential scopes.
type SyncReport struct {
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Scopes     int         `json:"scopes"`
	Pages      int         `json:"pages"`
	Created    int         `json:"created"`
	Updated    int         `json:"updated"`
	Failed     int         `json:"failed"`
	Errors     []SyncError `json:"errors,omitempty"`
}
