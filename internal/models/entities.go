package models

import (
	"time"

	"github.com/lib/pq"
)

// Sport is a reference row: small, mostly static set.
type Sport struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Turf represents a bookable venue in the catalogue.
// Sports holds sport ids as stored; SportNames holds resolved display names
// and is what owner-submitted records carry instead of ids.
type Turf struct {
	ID           string         `json:"id" db:"id"`
	Name         string         `json:"name" db:"name"`
	Area         string         `json:"area" db:"area"`
	City         string         `json:"city" db:"city"`
	State        string         `json:"state,omitempty" db:"state"`
	Rating       float64        `json:"rating" db:"rating"`
	PricePerHour int            `json:"price_per_hour" db:"price_per_hour"`
	Images       pq.StringArray `json:"images" db:"images"`
	Amenities    pq.StringArray `json:"amenities" db:"amenities"`
	Sports       pq.StringArray `json:"sports,omitempty" db:"sports"`
	SportNames   []string       `json:"sport_names,omitempty" db:"-"`
	IsActive     bool           `json:"is_active" db:"is_active"`
}

// AvailabilityTemplate is a recurring weekly window during which a
// (turf, sport) pair accepts bookings. Weekday uses Sunday=0 numbering.
type AvailabilityTemplate struct {
	ID          string `json:"id" db:"id"`
	TurfID      string `json:"turf_id" db:"turf_id"`
	SportID     string `json:"sport_id" db:"sport_id"`
	Weekday     int    `json:"weekday" db:"weekday"`
	StartTime   string `json:"start_time" db:"start_time"`
	EndTime     string `json:"end_time" db:"end_time"`
	SlotMinutes int    `json:"slot_minutes" db:"slot_minutes"`
}

// Booking statuses. A booking is never mutated after creation; there is no
// cancellation or status-update path.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a reservation in the remote store.
type Booking struct {
	ID        string    `json:"id" db:"id"`
	TurfID    string    `json:"turf_id" db:"turf_id"`
	SportID   string    `json:"sport_id" db:"sport_id"`
	StartAt   time.Time `json:"start_at" db:"start_at"`
	EndAt     time.Time `json:"end_at" db:"end_at"`
	Hours     int       `json:"hours" db:"hours"`
	AmountINR int       `json:"amount_inr" db:"amount_inr"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BookingMirror is the locally persisted audit record written for every
// booking attempt, whether or not the remote insert succeeded.
type BookingMirror struct {
	ID        string    `json:"id"`
	TurfID    string    `json:"turf_id"`
	TurfName  string    `json:"name"`
	Sport     string    `json:"sport"`
	Location  string    `json:"location"`
	StartAt   time.Time `json:"start"`
	EndAt     time.Time `json:"end"`
	AmountINR int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
