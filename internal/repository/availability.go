package repository

import (
	"context"
	"fmt"
	"strings"

	"turfnest/internal/database"
	"turfnest/internal/models"
)

type AvailabilityRepository struct {
	db *database.DB
}

func NewAvailabilityRepository(db *database.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// ListByTurf returns every weekly template registered for a turf.
func (r *AvailabilityRepository) ListByTurf(ctx context.Context, turfID string) ([]models.AvailabilityTemplate, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, turf_id, sport_id, weekday, start_time, end_time, slot_minutes
		FROM turf_availability
		WHERE turf_id = $1
		ORDER BY weekday, start_time`, turfID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.AvailabilityTemplate
	for rows.Next() {
		var t models.AvailabilityTemplate
		err := rows.Scan(&t.ID, &t.TurfID, &t.SportID, &t.Weekday, &t.StartTime, &t.EndTime, &t.SlotMinutes)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	return templates, rows.Err()
}

// CreateBatch inserts templates in one statement. Used by the listing flow to
// register the default weekly windows for a new turf.
func (r *AvailabilityRepository) CreateBatch(ctx context.Context, templates []models.AvailabilityTemplate) error {
	if r.db == nil {
		return ErrUnavailable
	}
	if len(templates) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO turf_availability (turf_id, sport_id, weekday, start_time, end_time, slot_minutes) VALUES `)

	args := make([]interface{}, 0, len(templates)*6)
	for i, t := range templates {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 6
		sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, t.TurfID, t.SportID, t.Weekday, t.StartTime, t.EndTime, t.SlotMinutes)
	}

	_, err := r.db.ExecContext(ctx, sb.String(), args...)
	return err
}
