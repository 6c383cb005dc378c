package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

const roboflowTimeout = 30 * time.Second

// RoboflowDetector calls a hosted Roboflow detection model. The model takes a
// public image URL and returns bounding-box predictions.
type RoboflowDetector struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewRoboflowDetector(endpoint, apiKey string) (*RoboflowDetector, error) {
	if endpoint == "" || apiKey == "" {
		return nil, errors.New("roboflow endpoint and api key are required")
	}
	return &RoboflowDetector{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: roboflowTimeout},
	}, nil
}

type roboflowRequest struct {
	Image string `json:"image"`
}

type roboflowResponse struct {
	Predictions []struct {
		Class      string  `json:"class"`
		Confidence float64 `json:"confidence"`
		X          float64 `json:"x"`
		Y          float64 `json:"y"`
		Width      float64 `json:"width"`
		Height     float64 `json:"height"`
	} `json:"predictions"`
}

func (d *RoboflowDetector) Detect(ctx context.Context, imageURL string) ([]ports.Prediction, error) {
	body, err := json.Marshal(roboflowRequest{Image: imageURL})
	if err != nil {
		return nil, fmt.Errorf("marshal detection request: %w", err)
	}

	endpoint := d.endpoint + "?api_key=" + url.QueryEscape(d.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build detection request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: detection api status %d: %s", domain.ErrUpstream, resp.StatusCode, payload)
	}

	var out roboflowResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode detection response: %v", domain.ErrUpstream, err)
	}

	predictions := make([]ports.Prediction, 0, len(out.Predictions))
	for _, p := range out.Predictions {
		predictions = append(predictions, ports.Prediction{
			Class:      p.Class,
			Confidence: p.Confidence,
			X:          p.X,
			Y:          p.Y,
			Width:      p.Width,
			Height:     p.Height,
		})
	}
	return predictions, nil
}
