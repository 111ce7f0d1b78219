package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kozaktomas/aerogate/internal/database"
)

// LogsHandler handles the audit trail endpoints.
type LogsHandler struct {
	logs       database.AccessLogStore
	terminalID string
}

// NewLogsHandler creates a new logs handler.
func NewLogsHandler(logs database.AccessLogStore, terminalID string) *LogsHandler {
	return &LogsHandler{
		logs:       logs,
		terminalID: terminalID,
	}
}

// logListEntry is the wire shape of one audit entry.
type logListEntry struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Timestamp  string  `json:"timestamp"`
	Status     string  `json:"status"`
	Terminal   string  `json:"terminal"`
	Confidence float64 `json:"confidence"`
}

// displayStatus renders a stored verdict as the phrase shown in log listings.
func displayStatus(verdict string) string {
	if verdict == database.VerdictGranted {
		return "access granted"
	}
	return "access denied"
}

// List returns all access attempts, newest first.
func (h *LogsHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.logs.ListAll(r.Context())
	if err != nil {
		log.Printf("listing access logs: %v", err)
		respondError(w, http.StatusInternalServerError, "Database error occurred")
		return
	}

	out := make([]logListEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, logListEntry{
			ID:         fmt.Sprintf("LG-%04d", entry.ID),
			Name:       entry.Name,
			Timestamp:  entry.CreatedAt.Format("2006-01-02 15:04:05"),
			Status:     displayStatus(entry.Verdict),
			Terminal:   h.terminalID,
			Confidence: round2(entry.Confidence),
		})
	}

	respondJSON(w, http.StatusOK, out)
}
