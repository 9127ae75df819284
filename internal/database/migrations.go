package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createSportsTable,
		createTurfsTable,
		createAvailabilityTable,
		createBookingsTable,
		createTurfsCityIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createSportsTable = `
CREATE TABLE IF NOT EXISTS sports (
    id VARCHAR(50) PRIMARY KEY,
    name VARCHAR(100) NOT NULL
);`

const createTurfsTable = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";
CREATE TABLE IF NOT EXISTS turfs (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    name VARCHAR(200) NOT NULL,
    area VARCHAR(200) NOT NULL,
    city VARCHAR(100) NOT NULL,
    state VARCHAR(100),
    rating NUMERIC(2,1) NOT NULL DEFAULT 4.5,
    price_per_hour INTEGER NOT NULL,
    images TEXT[] NOT NULL DEFAULT '{}',
    amenities TEXT[] NOT NULL DEFAULT '{}',
    sports TEXT[] NOT NULL DEFAULT '{}',
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (price_per_hour > 0),
    CHECK (rating >= 0 AND rating <= 5)
);`

const createAvailabilityTable = `
CREATE TABLE IF NOT EXISTS turf_availability (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    turf_id UUID NOT NULL REFERENCES turfs(id) ON DELETE CASCADE,
    sport_id VARCHAR(50) NOT NULL,
    weekday SMALLINT NOT NULL,
    start_time VARCHAR(5) NOT NULL,
    end_time VARCHAR(5) NOT NULL,
    slot_minutes INTEGER NOT NULL DEFAULT 60,

    CHECK (weekday >= 0 AND weekday <= 6),
    CHECK (start_time < end_time)
);`

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id UUID PRIMARY KEY,
    turf_id UUID NOT NULL,
    sport_id VARCHAR(50) NOT NULL,
    start_at TIMESTAMP NOT NULL,
    end_at TIMESTAMP NOT NULL,
    hours INTEGER NOT NULL,
    amount_inr INTEGER NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (hours > 0),
    CHECK (status IN ('pending', 'confirmed', 'cancelled'))
);`

const createTurfsCityIndex = `
CREATE INDEX IF NOT EXISTS idx_turfs_city ON turfs(city) WHERE is_active;
CREATE INDEX IF NOT EXISTS idx_availability_turf ON turf_availability(turf_id, sport_id, weekday);`
