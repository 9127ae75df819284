package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfnest/internal/localstore"
	"turfnest/internal/messaging"
	"turfnest/internal/models"
	"turfnest/internal/repository"
	"turfnest/internal/search"
	"turfnest/internal/source"
)

// newTestServices wires the full service stack against a nil remote database
// and a throwaway local store, so every remote call fails and the fallback
// paths run for real.
func newTestServices(t *testing.T) (*Services, *localstore.Store) {
	t.Helper()

	store, err := localstore.Open(":memory:")
	require.NoError(t, err)

	repos := repository.NewRepositories(nil)
	coordinator := source.NewCoordinator(store,
		source.NewRemoteProvider(repos.Turfs, repos.Sports),
		source.NewSeedProvider(),
	)

	return NewServices(repos, coordinator, store, &messaging.NATSClient{}, nil), store
}

func TestBrowseFallsBackToSeed(t *testing.T) {
	svcs, _ := newTestServices(t)

	resp := svcs.Turfs.Browse(context.Background(), search.Filters{})

	require.NotEmpty(t, resp.Turfs)
	assert.Equal(t, "strict", resp.Stage)
	assert.False(t, resp.Adjusted)
	assert.Equal(t, "Nashik", resp.Turfs[0].City)
}

func TestGetUnknownTurf(t *testing.T) {
	svcs, _ := newTestServices(t)

	_, err := svcs.Turfs.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestGetResolvesSportNames(t *testing.T) {
	svcs, _ := newTestServices(t)

	turf, err := svcs.Turfs.Get(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, "GreenPitch Arena Nashik", turf.Name)
	assert.Contains(t, turf.SportNames, "Football")
}

func TestCreateTurfSurvivesRemoteOutage(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	resp, err := svcs.Turfs.Create(ctx, &models.CreateTurfRequest{
		Name:         "Riverside Turf",
		City:         "Nashik",
		Area:         "Panchavati",
		PricePerHour: 700,
		Sports:       []string{"FOOTBALL"},
		Amenities:    []string{"Parking"},
	})
	require.NoError(t, err)
	assert.True(t, resp.LocalOnly)
	assert.NotEmpty(t, resp.ID)

	overlay, err := store.OwnerTurfs()
	require.NoError(t, err)
	require.Len(t, overlay, 1)
	assert.Equal(t, resp.ID, overlay[0].ID)
	assert.Equal(t, 4.5, overlay[0].Rating)
	assert.Equal(t, "Maharashtra", overlay[0].State)
	assert.Equal(t, []string{"Football"}, overlay[0].SportNames)
	assert.True(t, overlay[0].IsActive)
}

func TestListedTurfAppearsInBrowse(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	created, err := svcs.Turfs.Create(ctx, &models.CreateTurfRequest{
		Name:         "Lakeside Court",
		City:         "Nashik",
		Area:         "Tidke Colony",
		PricePerHour: 550,
		Sports:       []string{"cricket", "football"}, // ids in any case
		Amenities:    []string{"Drinking Water"},
	})
	require.NoError(t, err)

	resp := svcs.Turfs.Browse(ctx, search.Filters{Sport: "CRICKET", City: "Nashik"})
	require.NotEmpty(t, resp.Turfs)

	found := false
	for _, turf := range resp.Turfs {
		if turf.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found, "owner listing should appear in browse without a remote round-trip")

	got, err := svcs.Turfs.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lakeside Court", got.Name)
	assert.Equal(t, []string{"Cricket", "Football"}, got.SportNames)
	require.NotNil(t, got.Images)
	assert.Empty(t, got.Images)
}

func TestSlotsUnknownTurf(t *testing.T) {
	svcs, _ := newTestServices(t)

	_, err := svcs.Availability.Slots(context.Background(), "nope", "FOOTBALL", "2025-01-06")
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestSlotsMalformedDate(t *testing.T) {
	svcs, _ := newTestServices(t)

	_, err := svcs.Availability.Slots(context.Background(), "n1", "FOOTBALL", "06-01-2025")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSlotsEmptyWhenRemoteDown(t *testing.T) {
	svcs, _ := newTestServices(t)

	resp, err := svcs.Availability.Slots(context.Background(), "n1", "FOOTBALL", "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Weekday)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestBookingAmountAndMirror(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	resp, err := svcs.Bookings.Create(ctx, &models.CreateBookingRequest{
		TurfID:    "n1", // 800/hour in the bundled catalogue
		SportID:   "FOOTBALL",
		Date:      "2025-01-06",
		StartTime: "18:00",
		Hours:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1600, resp.AmountINR)
	assert.Equal(t, "₹1,600", resp.AmountDisplay)
	assert.Equal(t, models.BookingStatusConfirmed, resp.Status)
	assert.True(t, resp.LocalOnly)

	mirrors, err := store.BookingMirrors()
	require.NoError(t, err)
	require.Len(t, mirrors, 1)
	assert.Equal(t, resp.ID, mirrors[0].ID)
	assert.Equal(t, "GreenPitch Arena Nashik", mirrors[0].TurfName)
	assert.Equal(t, "Football", mirrors[0].Sport)
	assert.Equal(t, "College Road, Nashik", mirrors[0].Location)
	assert.Equal(t, 1600, mirrors[0].AmountINR)
	assert.Equal(t, 18, mirrors[0].StartAt.Hour())
	assert.Equal(t, 20, mirrors[0].EndAt.Hour())
}

func TestBookingRejectsMidnightRollover(t *testing.T) {
	svcs, _ := newTestServices(t)

	_, err := svcs.Bookings.Create(context.Background(), &models.CreateBookingRequest{
		TurfID:    "n1",
		SportID:   "FOOTBALL",
		Date:      "2025-01-06",
		StartTime: "23:00",
		Hours:     2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookingUnknownTurf(t *testing.T) {
	svcs, _ := newTestServices(t)

	_, err := svcs.Bookings.Create(context.Background(), &models.CreateBookingRequest{
		TurfID:    "nope",
		SportID:   "FOOTBALL",
		Date:      "2025-01-06",
		StartTime: "18:00",
		Hours:     1,
	})
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestBookingListFallsBackToMirror(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	first, err := svcs.Bookings.Create(ctx, &models.CreateBookingRequest{
		TurfID: "n1", SportID: "FOOTBALL", Date: "2025-01-06", StartTime: "17:00", Hours: 1,
	})
	require.NoError(t, err)
	second, err := svcs.Bookings.Create(ctx, &models.CreateBookingRequest{
		TurfID: "n2", SportID: "CRICKET", Date: "2025-01-07", StartTime: "06:00", Hours: 1,
	})
	require.NoError(t, err)

	listed, err := svcs.Bookings.List(ctx)
	require.NoError(t, err)
	assert.True(t, listed.LocalOnly)
	require.Len(t, listed.Bookings, 2)
	assert.Equal(t, second.ID, listed.Bookings[0].ID, "newest first")
	assert.Equal(t, first.ID, listed.Bookings[1].ID)
}

func TestSportsFallBackToSeed(t *testing.T) {
	svcs, _ := newTestServices(t)

	sports := svcs.Turfs.Sports(context.Background())
	require.Len(t, sports, 5)
	assert.Equal(t, "FOOTBALL", sports[0].ID)
}
