package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

// DetectionService runs insect detection on a hosted image URL through the
// external detection provider.
type DetectionService struct {
	detector ports.InsectDetector
	logger   zerolog.Logger
}

func NewDetectionService(detector ports.InsectDetector, logger zerolog.Logger) *DetectionService {
	return &DetectionService{detector: detector, logger: logger}
}

func (s *DetectionService) Detect(ctx context.Context, fileURL string) (*ports.DetectionResult, error) {
	fileURL = strings.TrimSpace(fileURL)
	if fileURL == "" {
		return nil, domain.ValidationError("no image URL provided for detection")
	}

	predictions, err := s.detector.Detect(ctx, fileURL)
	if err != nil {
		s.logger.Error().Err(err).Msg("insect detection failed")
		return nil, err
	}

	return &ports.DetectionResult{
		Detected:    len(predictions) > 0,
		Predictions: predictions,
		FileURL:     fileURL,
	}, nil
}
