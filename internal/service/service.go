package service

import (
	"errors"

	"turfnest/internal/cache"
	"turfnest/internal/localstore"
	"turfnest/internal/messaging"
	"turfnest/internal/repository"
	"turfnest/internal/source"
)

// Sentinel errors handlers translate into HTTP statuses.
var (
	ErrTurfNotFound = errors.New("turf not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Services struct {
	Turfs        *TurfService
	Availability *AvailabilityService
	Bookings     *BookingService
}

func NewServices(repos *repository.Repositories, coordinator *source.Coordinator, store *localstore.Store, natsClient *messaging.NATSClient, cacheClient *cache.Client) *Services {
	turfService := NewTurfService(repos.Turfs, repos.Availability, coordinator, store, natsClient, cacheClient)
	availabilityService := NewAvailabilityService(repos.Availability, turfService)
	bookingService := NewBookingService(repos.Bookings, turfService, store, natsClient)

	return &Services{
		Turfs:        turfService,
		Availability: availabilityService,
		Bookings:     bookingService,
	}
}
