package handlers

import (
	"log"
	"net/http"

	"github.com/kozaktomas/aerogate/internal/database"
)

// MembersHandler handles member-related read endpoints.
type MembersHandler struct {
	members database.MemberStore
}

// NewMembersHandler creates a new members handler.
func NewMembersHandler(members database.MemberStore) *MembersHandler {
	return &MembersHandler{members: members}
}

// Count returns the number of enrolled members.
func (h *MembersHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.members.Count(r.Context())
	if err != nil {
		log.Printf("counting members: %v", err)
		respondError(w, http.StatusInternalServerError, "Database error occurred")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"count": count})
}
