package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/aerogate/internal/database"
	"github.com/kozaktomas/aerogate/internal/database/mock"
)

func TestLogsList(t *testing.T) {
	logs := mock.NewLogStore()
	for _, entry := range []database.AccessLogEntry{
		{Name: "Ada Lovelace", Passport: "AB123456", Verdict: database.VerdictGranted, Confidence: 97.123456},
		{Name: "Grace Hopper", Passport: "CD789012", Verdict: database.VerdictDenied, Confidence: 41.987654},
	} {
		e := entry
		if err := logs.Append(context.Background(), &e); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}

	handler := NewLogsHandler(logs, "LNG-04")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/logs", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assertStatusCode(t, rec, http.StatusOK)

	var result []logListEntry
	parseJSONResponse(t, rec, &result)
	if len(result) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result))
	}

	// Newest first.
	if result[0].ID != "LG-0002" || result[1].ID != "LG-0001" {
		t.Errorf("expected newest-first LG ids, got %q, %q", result[0].ID, result[1].ID)
	}
	if result[0].Name != "Grace Hopper" {
		t.Errorf("expected newest entry first, got %q", result[0].Name)
	}

	// Verdicts render as lowercase display phrases.
	if result[0].Status != "access denied" {
		t.Errorf("expected 'access denied', got %q", result[0].Status)
	}
	if result[1].Status != "access granted" {
		t.Errorf("expected 'access granted', got %q", result[1].Status)
	}

	// Confidence is rounded to two decimals only here.
	if result[0].Confidence != 41.99 {
		t.Errorf("expected confidence 41.99, got %v", result[0].Confidence)
	}
	if result[1].Confidence != 97.12 {
		t.Errorf("expected confidence 97.12, got %v", result[1].Confidence)
	}

	for _, entry := range result {
		if entry.Terminal != "LNG-04" {
			t.Errorf("expected terminal LNG-04, got %q", entry.Terminal)
		}
		if len(entry.Timestamp) != len("2006-01-02 15:04:05") {
			t.Errorf("unexpected timestamp format: %q", entry.Timestamp)
		}
	}
}

func TestLogsListEmpty(t *testing.T) {
	handler := NewLogsHandler(mock.NewLogStore(), "LNG-04")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/logs", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assertStatusCode(t, rec, http.StatusOK)
	var result []logListEntry
	parseJSONResponse(t, rec, &result)
	if len(result) != 0 {
		t.Errorf("expected empty list, got %d entries", len(result))
	}
}

func TestLogsListStorageError(t *testing.T) {
	logs := mock.NewLogStore()
	logs.ListError = errors.New("connection refused")

	handler := NewLogsHandler(logs, "LNG-04")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/logs", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assertStatusCode(t, rec, http.StatusInternalServerError)
	assertJSONError(t, rec, "Database error occurred")
}

func TestMembersCount(t *testing.T) {
	members := mock.NewMemberStore()
	handler := NewMembersHandler(members)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/count", nil)
	rec := httptest.NewRecorder()
	handler.Count(rec, req)

	assertStatusCode(t, rec, http.StatusOK)
	var result map[string]int
	parseJSONResponse(t, rec, &result)
	if result["count"] != 0 {
		t.Errorf("expected count 0, got %d", result["count"])
	}
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	HealthCheck(rec, req)

	assertStatusCode(t, rec, http.StatusOK)
	var result map[string]string
	parseJSONResponse(t, rec, &result)
	if result["status"] != "ok" {
		t.Errorf("expected status ok, got %q", result["status"])
	}
}
