package localstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfnest/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	return s
}

func TestMissingKeyDecodesAsEmpty(t *testing.T) {
	s := openTestStore(t)

	turfs, err := s.OwnerTurfs()
	assert.NoError(t, err)
	assert.Empty(t, turfs)

	mirrors, err := s.BookingMirrors()
	assert.NoError(t, err)
	assert.Empty(t, mirrors)
}

func TestUpsertOwnerTurfReplacesByID(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.UpsertOwnerTurf(models.Turf{ID: "n1", Name: "Original"}))
	require.NoError(t, s.UpsertOwnerTurf(models.Turf{ID: "n2", Name: "Other"}))
	require.NoError(t, s.UpsertOwnerTurf(models.Turf{ID: "n1", Name: "Replaced"}))

	turfs, err := s.OwnerTurfs()
	require.NoError(t, err)
	require.Len(t, turfs, 2)
	// newest first, one record per id
	assert.Equal(t, "n1", turfs[0].ID)
	assert.Equal(t, "Replaced", turfs[0].Name)
	assert.Equal(t, "n2", turfs[1].ID)
}

func TestAppendBookingMirrorPrepends(t *testing.T) {
	s := openTestStore(t)

	first := models.BookingMirror{ID: "1", TurfName: "A", CreatedAt: time.Now().UTC()}
	second := models.BookingMirror{ID: "2", TurfName: "B", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.AppendBookingMirror(first))
	require.NoError(t, s.AppendBookingMirror(second))

	mirrors, err := s.BookingMirrors()
	require.NoError(t, err)
	require.Len(t, mirrors, 2)
	assert.Equal(t, "2", mirrors[0].ID)
	assert.Equal(t, "1", mirrors[1].ID)
}

func TestCollectionsSurviveRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := []models.Turf{{
		ID:           "n1",
		Name:         "GreenPitch Arena",
		Area:         "College Road",
		City:         "Nashik",
		Rating:       4.7,
		PricePerHour: 800,
		Amenities:    []string{"Parking"},
		SportNames:   []string{"Football", "Cricket"},
		Images:       []string{},
		IsActive:     true,
	}}
	require.NoError(t, s.PutCollection(KeyOwnerTurfs, in))

	var out []models.Turf
	require.NoError(t, s.GetCollection(KeyOwnerTurfs, &out))
	assert.Equal(t, in, out)
}
