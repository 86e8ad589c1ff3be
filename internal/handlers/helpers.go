package handlers

import (
	"encoding/json"
	"net/http"
)

// fallbackHeader marks responses served from the built-in demo dataset
// instead of the backend.
const fallbackHeader = "X-Fallback-Data"

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log error but can't do much else at this point
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// markFallback flags a degraded response built from sample data.
func markFallback(w http.ResponseWriter, degraded bool) {
	if degraded {
		w.Header().Set(fallbackHeader, "true")
	}
}
