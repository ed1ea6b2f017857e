package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/tsawler/scantab/imaging"
	"github.com/tsawler/scantab/model"
)

// HTTPEngine is an Engine backed by a layout-analysis sidecar service.
//
// The sidecar receives the page as a PNG via POST and responds with a
// JSON array of detected regions:
//
//	[{"type": "table", "bbox": [x1, y1, x2, y2], "score": 0.97}, ...]
//
// Coordinates may be fractional; they are rounded to integer pixels.
type HTTPEngine struct {
	endpoint string
	client   *http.Client
}

// NewHTTPEngine creates an engine that sends analysis requests to the
// given endpoint URL.
func NewHTTPEngine(endpoint string) *HTTPEngine {
	return &HTTPEngine{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 2 * time.Minute},
	}
}

// SetClient replaces the underlying HTTP client, for custom timeouts or
// transports.
func (e *HTTPEngine) SetClient(client *http.Client) {
	e.client = client
}

// httpRegion is the sidecar's wire representation of a region.
type httpRegion struct {
	Type  string     `json:"type"`
	BBox  [4]float64 `json:"bbox"`
	Score float64    `json:"score"`
}

// Analyze sends the image to the sidecar and returns the detected
// regions in response order.
func (e *HTTPEngine) Analyze(img image.Image) ([]Region, error) {
	data, err := imaging.PNGBytes(img)
	if err != nil {
		return nil, fmt.Errorf("preparing request image: %w", err)
	}

	resp, err := e.client.Post(e.endpoint, "image/png", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("layout service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("layout service returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var raw []httpRegion
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding layout service response: %w", err)
	}

	regions := make([]Region, 0, len(raw))
	for _, r := range raw {
		regions = append(regions, Region{
			Type: r.Type,
			BBox: model.NewBBox(
				int(math.Round(r.BBox[0])),
				int(math.Round(r.BBox[1])),
				int(math.Round(r.BBox[2])),
				int(math.Round(r.BBox[3])),
			),
			Confidence: r.Score,
		})
	}
	return regions, nil
}

// Name returns "http".
func (e *HTTPEngine) Name() string {
	return "http"
}

// Close releases idle connections held by the HTTP client.
func (e *HTTPEngine) Close() error {
	e.client.CloseIdleConnections()
	return nil
}
