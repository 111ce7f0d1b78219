package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kozaktomas/aerogate/internal/access"
	"github.com/kozaktomas/aerogate/internal/database/mock"
)

// fixedClock is the deterministic "now" all handler tests run against.
var fixedClock = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// stubExtractor returns a fixed embedding or error regardless of input.
type stubExtractor struct {
	embedding []float32
	err       error
}

func (s *stubExtractor) Extract(ctx context.Context, imageData []byte) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.embedding, nil
}

// gateFixture bundles a gate handler with its injected doubles.
type gateFixture struct {
	handler   *GateHandler
	extractor *stubExtractor
	members   *mock.MemberStore
	logs      *mock.LogStore
}

// newGateFixture wires a gate handler onto mock stores and a stub extractor
// with an injected clock.
func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()

	extractor := &stubExtractor{embedding: []float32{1, 0, 0}}
	members := mock.NewMemberStore()
	logs := mock.NewLogStore()
	service := access.NewService(extractor, members, logs, access.NewLinearMatcher(members), 0.60, nil)
	service.SetClock(func() time.Time { return fixedClock })

	return &gateFixture{
		handler:   NewGateHandler(service),
		extractor: extractor,
		members:   members,
		logs:      logs,
	}
}

// multipartRequest builds a multipart request with the given form fields and
// an optional image file part.
func multipartRequest(t *testing.T, path string, fields map[string]string, image []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("writing form field %s: %v", key, err)
		}
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "face.jpg")
		if err != nil {
			t.Fatalf("creating image part: %v", err)
		}
		if _, err := io.Copy(part, bytes.NewReader(image)); err != nil {
			t.Fatalf("writing image part: %v", err)
		}
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// enrollFields returns a valid set of enrollment form fields.
func enrollFields() map[string]string {
	return map[string]string{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"passport": "AB123456",
		"expiry":   "2030-01-15",
	}
}

// parseJSONResponse parses a JSON response body into the target type
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertJSONError checks if the response is a JSON error with the expected message
func assertJSONError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, recorder.Body.String())
	}
	if result["error"] != expectedMessage {
		t.Errorf("expected error '%s', got '%s'", expectedMessage, result["error"])
	}
}
