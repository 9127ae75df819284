package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"turfnest/internal/cache"
	"turfnest/internal/localstore"
	"turfnest/internal/logger"
	"turfnest/internal/messaging"
	"turfnest/internal/models"
	"turfnest/internal/repository"
	"turfnest/internal/search"
	"turfnest/internal/source"
)

// Default weekly windows registered for every sport of a newly listed turf.
var defaultWindows = []struct {
	start, end string
}{
	{"06:00", "10:00"},
	{"16:00", "22:00"},
}

// NewListingRating is the rating assigned to owner-submitted turfs.
const NewListingRating = 4.5

type TurfService struct {
	turfRepo         *repository.TurfRepository
	availabilityRepo *repository.AvailabilityRepository
	coordinator      *source.Coordinator
	store            *localstore.Store
	natsClient       *messaging.NATSClient
	cacheClient      *cache.Client
}

func NewTurfService(turfRepo *repository.TurfRepository, availabilityRepo *repository.AvailabilityRepository, coordinator *source.Coordinator, store *localstore.Store, natsClient *messaging.NATSClient, cacheClient *cache.Client) *TurfService {
	return &TurfService{
		turfRepo:         turfRepo,
		availabilityRepo: availabilityRepo,
		coordinator:      coordinator,
		store:            store,
		natsClient:       natsClient,
		cacheClient:      cacheClient,
	}
}

// engine builds a search engine over the current sport reference set.
func (s *TurfService) engine(ctx context.Context) *search.Engine {
	return search.NewEngine(s.coordinator.Sports(ctx))
}

// Sports returns the sport reference set through the data-source chain.
func (s *TurfService) Sports(ctx context.Context) []models.Sport {
	return s.coordinator.Sports(ctx)
}

// Browse runs the merged catalogue through the filter engine and caps the
// ranked result. The unfiltered listing is served from the cache when one is
// configured; filtered requests always compute.
func (s *TurfService) Browse(ctx context.Context, filters search.Filters) *models.ListTurfsResponse {
	unfiltered := filters == (search.Filters{})
	if unfiltered && s.cacheClient != nil {
		if raw, err := s.cacheClient.GetBrowseRaw(ctx); err == nil {
			var cached models.ListTurfsResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached
			}
		}
	}

	all := s.coordinator.Turfs(ctx)
	result := s.engine(ctx).Filter(all, filters)

	turfs := result.Turfs
	if len(turfs) > search.ResultCap {
		turfs = turfs[:search.ResultCap]
	}

	resp := &models.ListTurfsResponse{
		Turfs:    turfs,
		Stage:    string(result.Stage),
		Adjusted: result.Adjusted(),
	}
	if unfiltered && s.cacheClient != nil {
		s.cacheClient.SetBrowse(ctx, resp)
	}
	return resp
}

// Get returns one turf: a remote read first, then a scan of the merged
// seed+overlay collection when the remote misses or is down. Returns
// ErrTurfNotFound when no source knows the id.
func (s *TurfService) Get(ctx context.Context, id string) (*models.Turf, error) {
	turf, err := s.turfRepo.GetByID(ctx, id)
	if err == nil && turf != nil {
		t := s.engine(ctx).Normalize(*turf)
		return &t, nil
	}
	if err != nil {
		logger.WithFields("turf_id", id).Warn("Remote turf read failed, falling back", "error", err)
	}

	eng := s.engine(ctx)
	for _, t := range s.coordinator.Turfs(ctx) {
		if t.ID == id {
			normalized := eng.Normalize(t)
			return &normalized, nil
		}
	}
	return nil, ErrTurfNotFound
}

// Create lists a new turf: a remote insert with default availability is
// attempted, and the record is unconditionally mirrored to the owner overlay
// so it appears in browse results without a remote round-trip.
func (s *TurfService) Create(ctx context.Context, req *models.CreateTurfRequest) (*models.CreateTurfResponse, error) {
	state := req.State
	if state == "" {
		state = "Maharashtra"
	}
	images := req.Images
	if images == nil {
		images = []string{}
	}

	turf := &models.Turf{
		Name:         req.Name,
		Area:         req.Area,
		City:         req.City,
		State:        state,
		Rating:       NewListingRating,
		PricePerHour: req.PricePerHour,
		Images:       pq.StringArray(images),
		Amenities:    pq.StringArray(req.Amenities),
		Sports:       pq.StringArray(req.Sports),
		IsActive:     true,
	}

	localOnly := false
	if err := s.turfRepo.Create(ctx, turf); err != nil {
		localOnly = true
		turf.ID = uuid.New().String()
		logger.WithFields("turf", turf.Name).Warn("Remote turf insert failed, keeping listing local", "error", err)
	} else if len(req.Sports) > 0 {
		if err := s.availabilityRepo.CreateBatch(ctx, defaultAvailability(turf.ID, req.Sports)); err != nil {
			logger.WithFields("turf_id", turf.ID).Error("Failed to register default availability", "error", err)
		}
	}

	mirror := s.engine(ctx).Normalize(*turf)
	if err := s.store.UpsertOwnerTurf(mirror); err != nil {
		// non-blocking, same as the remote path
		logger.WithFields("turf_id", turf.ID).Error("Owner overlay write failed", "error", err)
	}

	if s.cacheClient != nil {
		s.cacheClient.InvalidateBrowse(ctx)
	}

	event := models.TurfListedEvent{
		TurfID:    turf.ID,
		Name:      turf.Name,
		City:      turf.City,
		Timestamp: time.Now(),
	}
	if err := s.natsClient.Publish(models.EventTurfListed, event); err != nil {
		logger.WithFields("turf_id", turf.ID).Error("Failed to publish turf listed event", "error", err)
	}

	return &models.CreateTurfResponse{ID: turf.ID, LocalOnly: localOnly}, nil
}

// defaultAvailability builds the standard weekly windows for each sport of a
// new listing: every weekday, morning and evening, hourly slots.
func defaultAvailability(turfID string, sportIDs []string) []models.AvailabilityTemplate {
	templates := make([]models.AvailabilityTemplate, 0, len(sportIDs)*7*len(defaultWindows))
	for _, sportID := range sportIDs {
		for weekday := 0; weekday <= 6; weekday++ {
			for _, w := range defaultWindows {
				templates = append(templates, models.AvailabilityTemplate{
					TurfID:      turfID,
					SportID:     sportID,
					Weekday:     weekday,
					StartTime:   w.start,
					EndTime:     w.end,
					SlotMinutes: 60,
				})
			}
		}
	}
	return templates
}

// SportName resolves a sport id to its display name, falling back to the raw
// id when the reference set does not know it.
func (s *TurfService) SportName(ctx context.Context, sportID string) string {
	for _, sp := range s.coordinator.Sports(ctx) {
		if sp.ID == sportID {
			return sp.Name
		}
	}
	return sportID
}
