// Package recognition talks to the external face embedding service and
// provides the vector math used to compare the embeddings it produces.
package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

const (
	defaultExtractorURL = "http://localhost:8000"
	defaultDim          = 512
)

// ErrNoFaceDetected is returned when the extractor finds no face in the image.
var ErrNoFaceDetected = errors.New("no face detected")

// Extractor produces a fixed-length, unit-normalized face embedding from raw
// image bytes. Implementations must return vectors of consistent
// dimensionality across calls.
type Extractor interface {
	Extract(ctx context.Context, imageData []byte) ([]float32, error)
}

// Client computes face embeddings using the embedding server.
type Client struct {
	baseURL string
	dim     int
	client  *http.Client
}

// NewClient creates a new extractor client.
func NewClient(baseURL string, dim int) *Client {
	if baseURL == "" {
		baseURL = defaultExtractorURL
	}
	if dim <= 0 {
		dim = defaultDim
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		dim:     dim,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// faceDetection represents a single detected face in the server response.
type faceDetection struct {
	FaceIndex int       `json:"face_index"`
	Dim       int       `json:"dim"`
	Embedding []float32 `json:"embedding"`
	DetScore  float64   `json:"det_score"`
}

// faceResponse represents the response from the face embedding endpoint.
type faceResponse struct {
	FacesCount int             `json:"faces_count"`
	Faces      []faceDetection `json:"faces"`
	Model      string          `json:"model"`
}

// postMultipartImage constructs a multipart form with the image data and posts
// it to the given endpoint. The part carries an explicit Content-Type header
// based on magic byte detection.
func (c *Client) postMultipartImage(ctx context.Context, endpoint string, imageData []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="image.jpg"`)
	h.Set("Content-Type", detectMIMEType(imageData))
	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// Extract detects faces in the image and returns the embedding of the first
// detected face. Returns ErrNoFaceDetected if the service finds no face.
// Images larger than MaxImageSize on a side are downscaled before upload.
func (c *Client) Extract(ctx context.Context, imageData []byte) ([]float32, error) {
	prepared, err := PrepareImage(imageData, MaxImageSize)
	if err != nil {
		// An undecodable upload carries no detectable face.
		return nil, ErrNoFaceDetected
	}

	body, err := c.postMultipartImage(ctx, "/embed/face", prepared)
	if err != nil {
		return nil, err
	}

	var faceResp faceResponse
	if err := json.Unmarshal(body, &faceResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if faceResp.FacesCount == 0 || len(faceResp.Faces) == 0 {
		return nil, ErrNoFaceDetected
	}

	embedding := faceResp.Faces[0].Embedding
	if len(embedding) == 0 {
		return nil, ErrNoFaceDetected
	}
	if len(embedding) != c.dim {
		return nil, fmt.Errorf("extractor returned %d-dimensional embedding, expected %d", len(embedding), c.dim)
	}

	return embedding, nil
}

// detectMIMEType detects the MIME type from image data.
func detectMIMEType(data []byte) string {
	if len(data) < 8 {
		return "application/octet-stream"
	}
	// JPEG: FF D8 FF
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return "image/jpeg"
	}
	// PNG: 89 50 4E 47 0D 0A 1A 0A
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "image/png"
	}
	// GIF: 47 49 46 38
	if data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46 && data[3] == 0x38 {
		return "image/gif"
	}
	// WebP: 52 49 46 46 ... 57 45 42 50
	if len(data) >= 12 && data[0] == 0x52 && data[1] == 0x49 && data[2] == 0x46 && data[3] == 0x46 &&
		data[8] == 0x57 && data[9] == 0x45 && data[10] == 0x42 && data[11] == 0x50 {
		return "image/webp"
	}
	return "application/octet-stream"
}
