package repository

import (
	"turfnest/internal/database"
)

type Repositories struct {
	Turfs        *TurfRepository
	Sports       *SportRepository
	Availability *AvailabilityRepository
	Bookings     *BookingRepository
}

// NewRepositories wires the remote-store repositories. db may be nil when the
// remote database was unreachable at startup; callers check Available().
func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Turfs:        NewTurfRepository(db),
		Sports:       NewSportRepository(db),
		Availability: NewAvailabilityRepository(db),
		Bookings:     NewBookingRepository(db),
	}
}

func (r *Repositories) Available() bool {
	return r.Turfs.db != nil
}
