package models

import "time"

// NATS Event Types
const (
	EventBookingCreated = "booking.created"
	EventTurfListed     = "turf.listed"
)

// BookingCreatedEvent represents a booking creation event
type BookingCreatedEvent struct {
	BookingID string    `json:"booking_id"`
	TurfID    string    `json:"turf_id"`
	SportID   string    `json:"sport_id"`
	AmountINR int       `json:"amount_inr"`
	LocalOnly bool      `json:"local_only"`
	Timestamp time.Time `json:"timestamp"`
}

// TurfListedEvent represents an owner listing a new turf
type TurfListedEvent struct {
	TurfID    string    `json:"turf_id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Timestamp time.Time `json:"timestamp"`
}
