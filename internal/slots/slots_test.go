package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"turfnest/internal/models"
)

func TestGenerateHourly(t *testing.T) {
	got := Generate("06:00", "10:00", 60)
	assert.Equal(t, []string{"06:00", "07:00", "08:00", "09:00"}, got)
}

func TestGenerateUnevenGranularity(t *testing.T) {
	// 90 minutes does not divide the 4h window; last slot stays before end
	got := Generate("06:00", "10:00", 90)
	assert.Equal(t, []string{"06:00", "07:30", "09:00"}, got)
}

func TestGenerateStartAfterEnd(t *testing.T) {
	assert.Empty(t, Generate("10:00", "06:00", 60))
	assert.Empty(t, Generate("10:00", "10:00", 60))
}

func TestGenerateDefaultGranularity(t *testing.T) {
	got := Generate("16:00", "19:00", 0)
	assert.Equal(t, []string{"16:00", "17:00", "18:00"}, got)
}

func TestGenerateMalformedInput(t *testing.T) {
	assert.Empty(t, Generate("six", "10:00", 60))
	assert.Empty(t, Generate("06:00", "25:30", 60))
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("06:30")
	assert.NoError(t, err)
	assert.Equal(t, 390, m)

	m, err = ParseClock("24:00")
	assert.NoError(t, err)
	assert.Equal(t, 1440, m)

	_, err = ParseClock("24:01")
	assert.Error(t, err)

	_, err = ParseClock("0600")
	assert.Error(t, err)
}

func TestResolveMatchesWeekdayAndSport(t *testing.T) {
	templates := []models.AvailabilityTemplate{
		{SportID: "FOOTBALL", Weekday: 1, StartTime: "06:00", EndTime: "10:00", SlotMinutes: 60},
	}

	// 2025-01-06 is a Monday (weekday 1)
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	got := Resolve(templates, "FOOTBALL", monday)
	assert.Equal(t, []string{"06:00", "07:00", "08:00", "09:00"}, got)

	tuesday := monday.AddDate(0, 0, 1)
	assert.Empty(t, Resolve(templates, "FOOTBALL", tuesday))
	assert.Empty(t, Resolve(templates, "CRICKET", monday))
}

func TestResolveKeepsOverlapDuplicates(t *testing.T) {
	templates := []models.AvailabilityTemplate{
		{SportID: "F", Weekday: 0, StartTime: "06:00", EndTime: "08:00", SlotMinutes: 60},
		{SportID: "F", Weekday: 0, StartTime: "07:00", EndTime: "09:00", SlotMinutes: 60},
	}

	sunday := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	got := Resolve(templates, "F", sunday)
	// overlapping windows are unioned in template order without dedup
	assert.Equal(t, []string{"06:00", "07:00", "07:00", "08:00"}, got)
}

func TestBookingWindow(t *testing.T) {
	date := time.Date(2025, 3, 10, 15, 4, 9, 12, time.UTC)
	start, end, err := BookingWindow(date, "18:00", 2)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC), end)
}

func TestBookingWindowRejectsMidnightCrossing(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, _, err := BookingWindow(date, "23:00", 2)
	assert.Error(t, err)

	// ending exactly at 24:00 is still a same-day booking
	_, end, err := BookingWindow(date, "22:00", 2)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), end)
}

func TestBookingWindowMalformedStart(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, _, err := BookingWindow(date, "bad", 1)
	assert.Error(t, err)
}
