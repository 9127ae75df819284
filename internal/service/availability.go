package service

import (
	"context"
	"fmt"
	"time"

	"turfnest/internal/format"
	"turfnest/internal/logger"
	"turfnest/internal/models"
	"turfnest/internal/repository"
	"turfnest/internal/slots"
)

type AvailabilityService struct {
	availabilityRepo *repository.AvailabilityRepository
	turfService      *TurfService
}

func NewAvailabilityService(availabilityRepo *repository.AvailabilityRepository, turfService *TurfService) *AvailabilityService {
	return &AvailabilityService{
		availabilityRepo: availabilityRepo,
		turfService:      turfService,
	}
}

// Slots returns the bookable start times for a (turf, sport, date) triple.
// The turf must exist; a missing or unreachable availability table yields an
// empty slot list, not an error, so the picker can render a sold-out day.
func (s *AvailabilityService) Slots(ctx context.Context, turfID, sportID, dateStr string) (*models.ListSlotsResponse, error) {
	if _, err := s.turfService.Get(ctx, turfID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	templates, err := s.availabilityRepo.ListByTurf(ctx, turfID)
	if err != nil {
		logger.WithFields("turf_id", turfID).Warn("Availability read failed, serving empty day", "error", err)
		templates = nil
	}

	resolved := slots.Resolve(templates, sportID, date)
	if resolved == nil {
		resolved = []string{}
	}
	display := make([]string, len(resolved))
	for i, t := range resolved {
		display[i] = format.Time(t)
	}

	return &models.ListSlotsResponse{
		TurfID:  turfID,
		SportID: sportID,
		Date:    dateStr,
		Weekday: int(date.Weekday()),
		Slots:   resolved,
		Display: display,
	}, nil
}
