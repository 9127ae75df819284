package repository

import (
	"context"

	"turfnest/internal/database"
	"turfnest/internal/models"
)

type SportRepository struct {
	db *database.DB
}

func NewSportRepository(db *database.DB) *SportRepository {
	return &SportRepository{db: db}
}

func (r *SportRepository) List(ctx context.Context) ([]models.Sport, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM sports ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sports []models.Sport
	for rows.Next() {
		var s models.Sport
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		sports = append(sports, s)
	}

	return sports, rows.Err()
}
