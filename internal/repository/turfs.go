package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"turfnest/internal/database"
	"turfnest/internal/models"
)

// ErrUnavailable is returned by every repository when no remote database
// connection was established at startup.
var ErrUnavailable = errors.New("remote store unavailable")

type TurfRepository struct {
	db *database.DB
}

func NewTurfRepository(db *database.DB) *TurfRepository {
	return &TurfRepository{db: db}
}

const turfColumns = `id, name, area, city, COALESCE(state, ''), rating, price_per_hour, images, amenities, sports, is_active`

func scanTurf(row interface{ Scan(...interface{}) error }) (models.Turf, error) {
	var t models.Turf
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Area,
		&t.City,
		&t.State,
		&t.Rating,
		&t.PricePerHour,
		&t.Images,
		&t.Amenities,
		&t.Sports,
		&t.IsActive,
	)
	return t, err
}

// ListActive returns every active turf in the catalogue.
func (r *TurfRepository) ListActive(ctx context.Context) ([]models.Turf, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+turfColumns+`
		FROM turfs
		WHERE is_active
		ORDER BY rating DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turfs []models.Turf
	for rows.Next() {
		t, err := scanTurf(rows)
		if err != nil {
			return nil, err
		}
		turfs = append(turfs, t)
	}

	return turfs, rows.Err()
}

func (r *TurfRepository) GetByID(ctx context.Context, id string) (*models.Turf, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+turfColumns+`
		FROM turfs
		WHERE id = $1`, id)

	t, err := scanTurf(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TurfRepository) Create(ctx context.Context, turf *models.Turf) error {
	if r.db == nil {
		return ErrUnavailable
	}

	query := `
		INSERT INTO turfs (name, area, city, state, rating, price_per_hour, images, amenities, sports, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		turf.Name,
		turf.Area,
		turf.City,
		turf.State,
		turf.Rating,
		turf.PricePerHour,
		pq.Array([]string(turf.Images)),
		pq.Array([]string(turf.Amenities)),
		pq.Array([]string(turf.Sports)),
		turf.IsActive,
	).Scan(&turf.ID)
}
