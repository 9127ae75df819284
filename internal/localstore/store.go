// Package localstore is the embedded key-value persistence layer standing in
// for the browser's local storage: whole JSON-encoded collections are read
// and written under a handful of well-known keys.
package localstore

import (
	"encoding/json"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"turfnest/internal/models"
)

// Logical collection keys. The names are kept from the storefront so an
// exported browser snapshot can be imported as-is.
const (
	KeyOwnerTurfs = "tn_owner_turfs"
	KeyBookings   = "tn_bookings"
)

type record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (record) TableName() string { return "collections" }

// Store persists JSON collections in an embedded SQLite database. Collections
// are read-modify-written wholesale; there is no row-level access.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the store at path. ":memory:" gives a throwaway
// in-process store for tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("migrate local store: %w", err)
	}
	return &Store{db: db}, nil
}

// GetCollection decodes the collection stored under key into out. A missing
// key decodes as an empty sequence.
func (s *Store) GetCollection(key string, out interface{}) error {
	var rec record
	err := s.db.First(&rec, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return json.Unmarshal([]byte("[]"), out)
	}
	if err != nil {
		return fmt.Errorf("read collection %s: %w", key, err)
	}
	if err := json.Unmarshal(rec.Value, out); err != nil {
		return fmt.Errorf("decode collection %s: %w", key, err)
	}
	return nil
}

// PutCollection replaces the collection stored under key.
func (s *Store) PutCollection(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	err = s.db.Save(&record{Key: key, Value: data}).Error
	if err != nil {
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	return nil
}

// OwnerTurfs returns the owner-submitted overlay, newest first.
func (s *Store) OwnerTurfs() ([]models.Turf, error) {
	var turfs []models.Turf
	if err := s.GetCollection(KeyOwnerTurfs, &turfs); err != nil {
		return nil, err
	}
	return turfs, nil
}

// UpsertOwnerTurf prepends a turf to the overlay, replacing any existing
// record with the same id.
func (s *Store) UpsertOwnerTurf(t models.Turf) error {
	existing, err := s.OwnerTurfs()
	if err != nil {
		return err
	}
	out := make([]models.Turf, 0, len(existing)+1)
	out = append(out, t)
	for _, e := range existing {
		if e.ID != t.ID {
			out = append(out, e)
		}
	}
	return s.PutCollection(KeyOwnerTurfs, out)
}

// BookingMirrors returns the local booking audit log, newest first.
func (s *Store) BookingMirrors() ([]models.BookingMirror, error) {
	var mirrors []models.BookingMirror
	if err := s.GetCollection(KeyBookings, &mirrors); err != nil {
		return nil, err
	}
	return mirrors, nil
}

// AppendBookingMirror prepends a mirror record to the local booking log.
func (s *Store) AppendBookingMirror(m models.BookingMirror) error {
	existing, err := s.BookingMirrors()
	if err != nil {
		return err
	}
	out := make([]models.BookingMirror, 0, len(existing)+1)
	out = append(out, m)
	out = append(out, existing...)
	return s.PutCollection(KeyBookings, out)
}
