package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/kozaktomas/aerogate/internal/access"
	"github.com/kozaktomas/aerogate/internal/database"
)

// Verify handles a gate verification. The response status is the phrase the
// gate terminal displays: ACCESS GRANTED or ACCESS DENIED. Attempts that
// never reach the matcher (no face, empty member set) are denials with a
// reason and leave no audit entry.
func (h *GateHandler) Verify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	image, err := readFormImage(r, "image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "image file is required")
		return
	}

	result, err := h.service.Verify(r.Context(), image)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrNoFaceDetected):
			respondJSON(w, http.StatusOK, map[string]string{
				"status": "ACCESS DENIED",
				"reason": "No face detected",
			})
		case errors.Is(err, access.ErrNoEnrolledMembers):
			respondJSON(w, http.StatusOK, map[string]string{
				"status": "ACCESS DENIED",
				"reason": "No members registered",
			})
		default:
			log.Printf("verification failure: %v", err)
			respondError(w, http.StatusInternalServerError, "Database error occurred")
		}
		return
	}

	status := "ACCESS DENIED"
	if result.Verdict == database.VerdictGranted {
		status = "ACCESS GRANTED"
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":     status,
		"name":       result.Member.Name,
		"confidence": round2(result.Score * 100),
	})
}
