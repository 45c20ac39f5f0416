package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/app/repositories"
)

// AnalyticsService records site analytics events
type AnalyticsService struct {
	analyticsRepo repositories.IAnalyticsRepository
	logger        zerolog.Logger
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(analyticsRepo repositories.IAnalyticsRepository, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo, logger: logger}
}

// Track persists a single event
func (s *AnalyticsService) Track(ctx context.Context, req *dto.TrackEventRequest) error {
	event := &models.Event{
		Type:      models.EventType(req.Type),
		Path:      req.Path,
		SessionID: req.SessionID,
		Metadata:  req.Metadata,
	}

	if err := s.analyticsRepo.Insert(ctx, event); err != nil {
		return err
	}

	s.logger.Debug().Str("type", req.Type).Str("path", req.Path).Msg("Event tracked")
	return nil
}
