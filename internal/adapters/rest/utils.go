package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// WriteJSONError sends an error JSON body with the given status.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON sends a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// getMultiValue collects a filter parameter that may be repeated
// (?type=a&type=b) or comma-delimited (?type=a,b). Empty entries are
// dropped.
func getMultiValue(r *http.Request, name string) []string {
	var values []string
	for _, raw := range r.URL.Query()[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}

// getIntOrNil parses an optional integer parameter. Malformed input is
// treated the same as absent input.
func getIntOrNil(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

// getFloatOrNil parses an optional float parameter, dropping malformed
// input silently.
func getFloatOrNil(r *http.Request, name string) *float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

// getPageOrDefault parses the page parameter; anything missing or
// malformed falls back to the first page.
func getPageOrDefault(r *http.Request) int {
	raw := r.URL.Query().Get("paged")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
