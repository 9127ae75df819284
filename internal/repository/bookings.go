package repository

import (
	"context"

	"turfnest/internal/database"
	"turfnest/internal/models"
)

type BookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if r.db == nil {
		return ErrUnavailable
	}

	query := `
		INSERT INTO bookings (id, turf_id, sport_id, start_at, end_at, hours, amount_inr, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		booking.ID,
		booking.TurfID,
		booking.SportID,
		booking.StartAt,
		booking.EndAt,
		booking.Hours,
		booking.AmountINR,
		booking.Status,
	).Scan(&booking.CreatedAt)
}

// List returns bookings newest first for the profile view.
func (r *BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, turf_id, sport_id, start_at, end_at, hours, amount_inr, status, created_at
		FROM bookings
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(&b.ID, &b.TurfID, &b.SportID, &b.StartAt, &b.EndAt, &b.Hours, &b.AmountINR, &b.Status, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}
