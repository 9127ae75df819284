package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"turfnest/internal/format"
	"turfnest/internal/localstore"
	"turfnest/internal/logger"
	"turfnest/internal/messaging"
	"turfnest/internal/metrics"
	"turfnest/internal/models"
	"turfnest/internal/repository"
	"turfnest/internal/slots"
)

type BookingService struct {
	bookingRepo *repository.BookingRepository
	turfService *TurfService
	store       *localstore.Store
	natsClient  *messaging.NATSClient
}

func NewBookingService(bookingRepo *repository.BookingRepository, turfService *TurfService, store *localstore.Store, natsClient *messaging.NATSClient) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		turfService: turfService,
		store:       store,
		natsClient:  natsClient,
	}
}

// Create reserves a slot. The remote insert is attempted first; if it fails
// the booking survives as local-only. The local mirror record is written on
// every attempt, success or not, so the profile view never loses a booking.
func (s *BookingService) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error) {
	turf, err := s.turfService.Get(ctx, req.TurfID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	startAt, endAt, err := slots.BookingWindow(date, req.StartTime, req.Hours)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		TurfID:    turf.ID,
		SportID:   req.SportID,
		StartAt:   startAt,
		EndAt:     endAt,
		Hours:     req.Hours,
		AmountINR: turf.PricePerHour * req.Hours,
		Status:    models.BookingStatusConfirmed,
		CreatedAt: time.Now(),
	}

	localOnly := false
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		localOnly = true
		metrics.LocalOnlyBookings.Inc()
		logger.WithFields("booking_id", booking.ID).Warn("Remote booking insert failed, keeping local mirror only", "error", err)
	}

	mirror := models.BookingMirror{
		ID:        booking.ID,
		TurfID:    turf.ID,
		TurfName:  turf.Name,
		Sport:     s.turfService.SportName(ctx, req.SportID),
		Location:  turf.Area + ", " + turf.City,
		StartAt:   startAt,
		EndAt:     endAt,
		AmountINR: booking.AmountINR,
		CreatedAt: booking.CreatedAt,
	}
	if err := s.store.AppendBookingMirror(mirror); err != nil {
		logger.WithFields("booking_id", booking.ID).Error("Booking mirror write failed", "error", err)
	}

	event := models.BookingCreatedEvent{
		BookingID: booking.ID,
		TurfID:    turf.ID,
		SportID:   req.SportID,
		AmountINR: booking.AmountINR,
		LocalOnly: localOnly,
		Timestamp: booking.CreatedAt,
	}
	if err := s.natsClient.Publish(models.EventBookingCreated, event); err != nil {
		logger.WithFields("booking_id", booking.ID).Error("Failed to publish booking created event", "error", err)
	}

	return &models.CreateBookingResponse{
		ID:            booking.ID,
		Status:        booking.Status,
		AmountINR:     booking.AmountINR,
		AmountDisplay: format.Currency(booking.AmountINR),
		LocalOnly:     localOnly,
	}, nil
}

// List returns past bookings for the profile view, remote first, local mirror
// when the remote store is unreachable.
func (s *BookingService) List(ctx context.Context) (*models.ListBookingsResponse, error) {
	remote, err := s.bookingRepo.List(ctx)
	if err == nil {
		mirrors := make([]models.BookingMirror, 0, len(remote))
		for _, b := range remote {
			mirrors = append(mirrors, s.toMirror(ctx, b))
		}
		return &models.ListBookingsResponse{Bookings: mirrors, LocalOnly: false}, nil
	}
	logger.Get().Warn("Remote booking list failed, serving local mirror", "error", err)

	local, err := s.store.BookingMirrors()
	if err != nil {
		return nil, err
	}
	return &models.ListBookingsResponse{Bookings: local, LocalOnly: true}, nil
}

// toMirror projects a remote booking row into the display shape the profile
// view renders, resolving the turf name and location when the turf is known.
func (s *BookingService) toMirror(ctx context.Context, b models.Booking) models.BookingMirror {
	m := models.BookingMirror{
		ID:        b.ID,
		TurfID:    b.TurfID,
		Sport:     s.turfService.SportName(ctx, b.SportID),
		StartAt:   b.StartAt,
		EndAt:     b.EndAt,
		AmountINR: b.AmountINR,
		CreatedAt: b.CreatedAt,
	}
	if turf, err := s.turfService.Get(ctx, b.TurfID); err == nil {
		m.TurfName = turf.Name
		m.Location = turf.Area + ", " + turf.City
	}
	return m
}
