package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/kozaktomas/aerogate/internal/access"
)

// GateHandler handles the enrollment and verification endpoints.
type GateHandler struct {
	service *access.Service
}

// NewGateHandler creates a new gate handler.
func NewGateHandler(service *access.Service) *GateHandler {
	return &GateHandler{service: service}
}

// enrollFailureReason maps a workflow error to the reason string reported to
// the registration kiosk. Unknown errors fall through to a generic message so
// storage detail never leaks to the client.
func enrollFailureReason(err error) string {
	switch {
	case errors.Is(err, access.ErrNoFaceDetected):
		return "No face detected"
	case errors.Is(err, access.ErrInvalidDateFormat):
		return "Invalid expiry date format"
	case errors.Is(err, access.ErrAlreadyExpired):
		return "Membership already expired"
	case errors.Is(err, access.ErrDuplicatePassport):
		return "Passport already registered"
	default:
		return "Database error occurred"
	}
}

// Enroll handles member registration. Workflow failures are reported as a
// 200 with status FAILED and a reason, so the kiosk UI can show them inline;
// malformed requests get a 400.
func (h *GateHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	name := r.FormValue("name")
	passport := r.FormValue("passport")
	expiry := r.FormValue("expiry")
	if name == "" || passport == "" || expiry == "" {
		respondError(w, http.StatusBadRequest, "name, passport and expiry are required")
		return
	}

	image, err := readFormImage(r, "image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "image file is required")
		return
	}

	enrollment, err := h.service.Enroll(r.Context(), access.EnrollRequest{
		Name:     name,
		Email:    r.FormValue("email"),
		Passport: passport,
		Expiry:   expiry,
		Image:    image,
	})
	if err != nil {
		if errors.Is(err, access.ErrStorage) {
			log.Printf("enrollment storage failure: %v", err)
		}
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "FAILED",
			"reason": enrollFailureReason(err),
		})
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"status":     "SUCCESS",
		"member_id":  enrollment.MemberID,
		"member_uid": enrollment.MemberUID,
	})
}
