package handlers

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
)

// maxUploadSize caps a single enrollment or verification image at 20 MB.
const maxUploadSize = 20 << 20

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// round2 rounds a confidence value to two decimal places for presentation.
// Stored confidence stays unrounded; only API responses go through here.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// readFormImage reads the named multipart file field into memory.
func readFormImage(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
