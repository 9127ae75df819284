// Package search implements the browse filter over the merged turf
// collection: a strict pass, a two-step relaxation that guarantees a
// non-empty result, and a fixed ranking chain.
package search

import (
	"sort"
	"strconv"
	"strings"

	"turfnest/internal/models"
)

// PriorityCity is the platform's home market and always ranks first.
const PriorityCity = "Nashik"

// ResultCap is the maximum number of turfs returned to the browse view,
// applied after ranking.
const ResultCap = 50

// Stage reports how much of the filter set was honored to produce a result.
type Stage string

const (
	// StageStrict - every supplied criterion matched.
	StageStrict Stage = "strict"
	// StageRelaxed - city and price constraints were dropped.
	StageRelaxed Stage = "relaxed"
	// StageExhaustive - all criteria ignored, the full collection returned.
	StageExhaustive Stage = "exhaustive"
)

// Filters is one browse filter set. Sport may be a sport id or a resolved
// display name. Price accepts a band name (low, mid, high, all) or a
// "min-max" / "min" range encoding.
type Filters struct {
	Query string
	Sport string
	City  string
	Price string
}

// Result carries the ranked turfs and the stage that produced them, so
// callers can surface an "adjusted results" notice instead of inferring the
// relaxation from a side channel.
type Result struct {
	Turfs []models.Turf
	Stage Stage
}

// Adjusted reports whether the stated criteria were relaxed.
func (r Result) Adjusted() bool {
	return r.Stage != StageStrict
}

// knownCityTokens are the city names the free-text parser recognizes.
var knownCityTokens = []string{
	"nashik", "mumbai", "pune", "thane", "aurangabad", "nagpur",
	"hyderabad", "bengaluru", "surat", "delhi", "chennai", "kolkata",
}

// Engine filters and ranks turfs. It holds the sport reference set for
// resolving ids to display names and recognizing sport tokens in queries.
type Engine struct {
	sportNameByID map[string]string
	sportTokens   map[string]bool
}

func NewEngine(sports []models.Sport) *Engine {
	e := &Engine{
		sportNameByID: make(map[string]string, len(sports)),
		sportTokens:   make(map[string]bool, len(sports)),
	}
	for _, s := range sports {
		e.sportNameByID[strings.ToLower(s.ID)] = s.Name
		e.sportTokens[strings.ToLower(s.Name)] = true
	}
	return e
}

// parsedQuery splits a free-text query into recognized sport tokens, city
// tokens, and the residual text matched as a substring.
type parsedQuery struct {
	sports []string
	cities []string
	rest   string
}

func (e *Engine) parseQuery(q string) parsedQuery {
	var p parsedQuery
	var rest []string
	for _, tok := range strings.Fields(strings.ToLower(strings.TrimSpace(q))) {
		switch {
		case e.sportTokens[tok]:
			p.sports = append(p.sports, tok)
		case containsToken(knownCityTokens, tok):
			p.cities = append(p.cities, tok)
		default:
			rest = append(rest, tok)
		}
	}
	p.rest = strings.Join(rest, " ")
	return p
}

func containsToken(list []string, tok string) bool {
	for _, v := range list {
		if v == tok {
			return true
		}
	}
	return false
}

// resolveSportName maps a filter sport value (id or display name) to the
// lowercase display name used for matching.
func (e *Engine) resolveSportName(sport string) string {
	if sport == "" {
		return ""
	}
	if name, ok := e.sportNameByID[strings.ToLower(sport)]; ok {
		return strings.ToLower(name)
	}
	return strings.ToLower(sport)
}

// Normalize fills SportNames from the sport id sequence when the record does
// not already carry resolved names. Ids without a reference row fall back to
// the raw id so the record still matches itself.
func (e *Engine) Normalize(t models.Turf) models.Turf {
	if len(t.SportNames) > 0 {
		return t
	}
	names := make([]string, 0, len(t.Sports))
	for _, id := range t.Sports {
		if name, ok := e.sportNameByID[strings.ToLower(id)]; ok {
			names = append(names, name)
		} else {
			names = append(names, id)
		}
	}
	t.SportNames = names
	return t
}

// Filter applies the three-stage relaxation policy and ranks the survivors.
// For a non-empty input collection the result is never empty: stage 2 drops
// city and price, stage 3 returns the whole collection.
func (e *Engine) Filter(all []models.Turf, f Filters) Result {
	merged := make([]models.Turf, len(all))
	for i, t := range all {
		merged[i] = e.Normalize(t)
	}

	sportName := e.resolveSportName(f.Sport)
	parsed := e.parseQuery(f.Query)
	band := parsePriceFilter(f.Price)

	stage := StageStrict
	rows := filter(merged, func(t models.Turf) bool {
		return matchSport(t, sportName) &&
			matchCity(t, f.City) &&
			(band == nil || band.matches(t.PricePerHour)) &&
			matchQuery(t, parsed)
	})

	if len(rows) == 0 {
		stage = StageRelaxed
		rows = filter(merged, func(t models.Turf) bool {
			return matchSport(t, sportName) && matchQuery(t, parsed)
		})
	}
	if len(rows) == 0 {
		stage = StageExhaustive
		rows = merged
	}

	rank(rows, f.City, sportName)
	return Result{Turfs: rows, Stage: stage}
}

func filter(in []models.Turf, keep func(models.Turf) bool) []models.Turf {
	var out []models.Turf
	for _, t := range in {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func matchSport(t models.Turf, sportName string) bool {
	if sportName == "" {
		return true
	}
	for _, n := range t.SportNames {
		if strings.ToLower(n) == sportName {
			return true
		}
	}
	return false
}

func matchCity(t models.Turf, city string) bool {
	return city == "" || strings.EqualFold(t.City, city)
}

func matchQuery(t models.Turf, p parsedQuery) bool {
	if len(p.sports) == 0 && len(p.cities) == 0 && p.rest == "" {
		return true
	}

	if len(p.sports) > 0 {
		ok := false
		for _, sp := range p.sports {
			if matchSport(t, sp) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if len(p.cities) > 0 {
		ok := false
		for _, c := range p.cities {
			if strings.EqualFold(t.City, c) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if p.rest != "" {
		hay := strings.ToLower(t.Name + " " + t.Area + " " + t.City + " " + strings.Join(t.SportNames, " "))
		if !strings.Contains(hay, p.rest) {
			return false
		}
	}
	return true
}

// rank applies the fixed, non-configurable tie-break chain: priority city,
// requested city match, requested sport match, rating, then cheaper first.
func rank(rows []models.Turf, wantedCity, wantedSport string) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]

		an, bn := strings.EqualFold(a.City, PriorityCity), strings.EqualFold(b.City, PriorityCity)
		if an != bn {
			return an
		}
		if wantedCity != "" {
			ac, bc := strings.EqualFold(a.City, wantedCity), strings.EqualFold(b.City, wantedCity)
			if ac != bc {
				return ac
			}
		}
		if wantedSport != "" {
			as, bs := matchSport(a, wantedSport), matchSport(b, wantedSport)
			if as != bs {
				return as
			}
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.PricePerHour < b.PricePerHour
	})
}

// priceFilter is a closed or open-ended hourly price interval.
type priceFilter struct {
	min, max int
	open     bool // no upper bound
}

func (p *priceFilter) matches(price int) bool {
	if price < p.min {
		return false
	}
	return p.open || price <= p.max
}

// parsePriceFilter understands the coarse band names and the "min-max" /
// "min" range encoding. Unknown or empty values mean no price constraint.
func parsePriceFilter(s string) *priceFilter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return nil
	case "low":
		return &priceFilter{min: 0, max: 599}
	case "mid":
		return &priceFilter{min: 600, max: 1200}
	case "high":
		return &priceFilter{min: 1201, open: true}
	}

	minStr, maxStr, ranged := strings.Cut(s, "-")
	min, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil {
		return nil
	}
	if !ranged {
		return &priceFilter{min: min, open: true}
	}
	max, err := strconv.Atoi(strings.TrimSpace(maxStr))
	if err != nil {
		return &priceFilter{min: min, open: true}
	}
	return &priceFilter{min: min, max: max}
}
