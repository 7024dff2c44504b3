package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as a JSON response with the given status and returns
// the number of body bytes written. Product answers are authoritative state,
// so they are marked as not cacheable.
//
// If data cannot be marshaled, a 500 is written instead and the error is
// returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
