package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"turfnest/internal/models"
)

var testSports = []models.Sport{
	{ID: "FOOTBALL", Name: "Football"},
	{ID: "CRICKET", Name: "Cricket"},
	{ID: "BADMINTON", Name: "Badminton"},
	{ID: "TENNIS", Name: "Tennis"},
}

func turf(id, name, city string, rating float64, price int, sports ...string) models.Turf {
	return models.Turf{
		ID:           id,
		Name:         name,
		Area:         "Central",
		City:         city,
		Rating:       rating,
		PricePerHour: price,
		SportNames:   sports,
		IsActive:     true,
	}
}

func testCollection() []models.Turf {
	return []models.Turf{
		turf("m1", "Andheri Turf Park", "Mumbai", 4.7, 1200, "Football"),
		turf("n1", "GreenPitch Arena", "Nashik", 4.7, 800, "Football", "Cricket"),
		turf("p1", "Shivajinagar Complex", "Pune", 4.6, 700, "Badminton"),
		turf("d1", "Capital Sports Arena", "Delhi", 4.5, 950, "Football"),
	}
}

func TestStrictFiltering(t *testing.T) {
	e := NewEngine(testSports)

	res := e.Filter(testCollection(), Filters{Sport: "FOOTBALL", City: "Mumbai"})
	assert.Equal(t, StageStrict, res.Stage)
	assert.False(t, res.Adjusted())
	assert.Len(t, res.Turfs, 1)
	assert.Equal(t, "m1", res.Turfs[0].ID)
}

func TestSportMatchesByResolvedName(t *testing.T) {
	e := NewEngine(testSports)

	byID := e.Filter(testCollection(), Filters{Sport: "BADMINTON"})
	byName := e.Filter(testCollection(), Filters{Sport: "Badminton"})
	assert.Equal(t, byID.Turfs, byName.Turfs)
	assert.Equal(t, "p1", byID.Turfs[0].ID)
}

func TestNeverEmptyGuarantee(t *testing.T) {
	e := NewEngine(testSports)
	all := testCollection()

	cases := []Filters{
		{Sport: "TENNIS"},                      // no tennis turf at all
		{City: "Kochi"},                        // unknown city
		{Sport: "FOOTBALL", City: "Pune"},      // sport exists, city mismatch
		{Query: "quidditch arena"},             // text with no hits
		{Sport: "TENNIS", City: "Mumbai", Price: "low", Query: "xyz"},
	}
	for _, f := range cases {
		res := e.Filter(all, f)
		assert.NotEmpty(t, res.Turfs, "filters %+v must not produce an empty result", f)
		assert.True(t, res.Adjusted())
	}
}

func TestRelaxationStages(t *testing.T) {
	e := NewEngine(testSports)
	all := testCollection()

	// city mismatch but sport exists: stage 2 keeps the sport constraint
	res := e.Filter(all, Filters{Sport: "BADMINTON", City: "Mumbai"})
	assert.Equal(t, StageRelaxed, res.Stage)
	assert.Len(t, res.Turfs, 1)
	assert.Equal(t, "p1", res.Turfs[0].ID)

	// nothing matches even relaxed: stage 3 returns the whole collection
	res = e.Filter(all, Filters{Sport: "TENNIS"})
	assert.Equal(t, StageExhaustive, res.Stage)
	assert.Len(t, res.Turfs, len(all))
}

func TestPriorityCityAlwaysRanksFirst(t *testing.T) {
	e := NewEngine(testSports)

	// the Nashik turf is neither the best rated for the requested sport nor
	// in the requested city, yet it outranks everything
	res := e.Filter(testCollection(), Filters{})
	assert.Equal(t, "n1", res.Turfs[0].ID)
}

func TestRankingTieBreaks(t *testing.T) {
	e := NewEngine(testSports)
	all := []models.Turf{
		turf("a", "Arena A", "Pune", 4.2, 900, "Football"),
		turf("b", "Arena B", "Pune", 4.6, 900, "Football"),
		turf("c", "Arena C", "Pune", 4.6, 700, "Football"),
	}

	res := e.Filter(all, Filters{City: "Pune"})
	// equal city/sport status: rating desc, then cheaper first
	assert.Equal(t, []string{"c", "b", "a"}, ids(res.Turfs))
}

func TestRequestedCityOutranksOthers(t *testing.T) {
	e := NewEngine(testSports)
	all := []models.Turf{
		turf("d1", "Delhi Arena", "Delhi", 4.9, 500, "Football"),
		turf("p1", "Pune Arena", "Pune", 4.0, 900, "Football"),
	}

	// price knocks out every strict match, so both turfs come back via the
	// relaxed stage; the requested city still wins over the higher rating
	res := e.Filter(all, Filters{Sport: "FOOTBALL", City: "Pune", Price: "100-200"})
	assert.Equal(t, StageRelaxed, res.Stage)
	assert.Equal(t, []string{"p1", "d1"}, ids(res.Turfs))
}

func TestQueryTokenParsing(t *testing.T) {
	e := NewEngine(testSports)

	// "football mumbai" decomposes into a sport token and a city token
	res := e.Filter(testCollection(), Filters{Query: "football mumbai"})
	assert.Equal(t, StageStrict, res.Stage)
	assert.Equal(t, []string{"m1"}, ids(res.Turfs))

	// residual free text is a case-insensitive substring over the haystack
	res = e.Filter(testCollection(), Filters{Query: "greenpitch"})
	assert.Equal(t, StageStrict, res.Stage)
	assert.Equal(t, []string{"n1"}, ids(res.Turfs))
}

func TestPriceBands(t *testing.T) {
	e := NewEngine(testSports)
	all := []models.Turf{
		turf("lo", "Budget Turf", "Pune", 4.0, 599, "Football"),
		turf("mid1", "Mid Turf", "Pune", 4.0, 600, "Football"),
		turf("mid2", "Mid Turf Upper", "Pune", 4.0, 1200, "Football"),
		turf("hi", "Premium Turf", "Pune", 4.0, 1201, "Football"),
	}

	res := e.Filter(all, Filters{Price: "low"})
	assert.Equal(t, []string{"lo"}, ids(res.Turfs))

	res = e.Filter(all, Filters{Price: "mid"})
	assert.ElementsMatch(t, []string{"mid1", "mid2"}, ids(res.Turfs))

	res = e.Filter(all, Filters{Price: "high"})
	assert.Equal(t, []string{"hi"}, ids(res.Turfs))

	res = e.Filter(all, Filters{Price: "all"})
	assert.Len(t, res.Turfs, 4)
}

func TestPriceRangeEncoding(t *testing.T) {
	e := NewEngine(testSports)
	all := []models.Turf{
		turf("a", "A", "Pune", 4.0, 450, "Football"),
		turf("b", "B", "Pune", 4.0, 1000, "Football"),
		turf("c", "C", "Pune", 4.0, 2500, "Football"),
	}

	res := e.Filter(all, Filters{Price: "500-1000"})
	assert.Equal(t, StageStrict, res.Stage)
	assert.Equal(t, []string{"b"}, ids(res.Turfs))

	// open-ended "min" form
	res = e.Filter(all, Filters{Price: "2000"})
	assert.Equal(t, []string{"c"}, ids(res.Turfs))
}

func TestNormalizeResolvesSportIDs(t *testing.T) {
	e := NewEngine(testSports)

	raw := models.Turf{ID: "x", Sports: []string{"CRICKET", "FOOTBALL"}}
	got := e.Normalize(raw)
	assert.Equal(t, []string{"Cricket", "Football"}, got.SportNames)

	// records already carrying names pass through untouched
	named := models.Turf{ID: "y", SportNames: []string{"Tennis"}}
	assert.Equal(t, []string{"Tennis"}, e.Normalize(named).SportNames)
}

func ids(turfs []models.Turf) []string {
	out := make([]string, len(turfs))
	for i, t := range turfs {
		out[i] = t.ID
	}
	return out
}
