package models

// CreateTurfRequest - payload for the owner listing form.
// Sports and images are optional; at least one amenity is required.
type CreateTurfRequest struct {
	Name         string   `json:"name" binding:"required"`
	City         string   `json:"city" binding:"required"`
	Area         string   `json:"area" binding:"required"`
	State        string   `json:"state"`
	PricePerHour int      `json:"price_per_hour" binding:"required,gt=0"`
	Sports       []string `json:"sports"`
	Amenities    []string `json:"amenities" binding:"required,min=1"`
	Images       []string `json:"images"`
}

// CreateTurfResponse - response after listing a turf.
type CreateTurfResponse struct {
	ID        string `json:"id"`
	LocalOnly bool   `json:"local_only"`
}

// ListTurfsResponse - browse results plus which relaxation stage produced
// them, so callers can surface an "adjusted results" notice.
type ListTurfsResponse struct {
	Turfs    []Turf `json:"turfs"`
	Stage    string `json:"stage"`
	Adjusted bool   `json:"adjusted"`
}

// ListSlotsResponse - bookable start times for a (turf, sport, date) triple.
// Display carries the 12-hour labels the slot picker renders.
type ListSlotsResponse struct {
	TurfID  string   `json:"turf_id"`
	SportID string   `json:"sport_id"`
	Date    string   `json:"date"`
	Weekday int      `json:"weekday"`
	Slots   []string `json:"slots"`
	Display []string `json:"display"`
}

// CreateBookingRequest - payload for the booking form. Date is YYYY-MM-DD,
// StartTime is HH:MM; the end time is derived from Hours.
type CreateBookingRequest struct {
	TurfID    string `json:"turf_id" binding:"required"`
	SportID   string `json:"sport_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Hours     int    `json:"hours" binding:"required,gt=0"`
}

// CreateBookingResponse - outcome of a booking attempt. LocalOnly is set when
// the remote insert failed and only the local mirror holds the record.
type CreateBookingResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	AmountINR     int    `json:"amount_inr"`
	AmountDisplay string `json:"amount_display"`
	LocalOnly     bool   `json:"local_only"`
}

// ListBookingsResponse - profile view of past bookings, served from the
// remote store or from the local mirror when the remote is unreachable.
type ListBookingsResponse struct {
	Bookings  []BookingMirror `json:"bookings"`
	LocalOnly bool            `json:"local_only"`
}
