package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody keeps the {"error": ...} shape when data itself cannot
// be encoded.
const marshalFailureBody = `{"error":"internal server error"}`

// WriteJSON encodes data and writes it with statusCode. Every API response,
// errors included, goes through here so clients always get a JSON body.
// When encoding fails a 500 with a fixed error body is written instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(jsonData)
}
