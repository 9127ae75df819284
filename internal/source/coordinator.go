package source

import (
	"context"
	"log/slog"

	"turfnest/internal/metrics"
	"turfnest/internal/models"
)

// Overlay is the locally persisted owner-submitted turf collection, merged on
// top of whatever provider answered. Implemented by localstore.Store.
type Overlay interface {
	OwnerTurfs() ([]models.Turf, error)
}

// Coordinator walks the provider chain in order and applies the overlay
// merge. Provider failures degrade silently to the next provider; they are
// logged but never surfaced to the caller.
type Coordinator struct {
	providers []Provider
	overlay   Overlay
}

func NewCoordinator(overlay Overlay, providers ...Provider) *Coordinator {
	return &Coordinator{providers: providers, overlay: overlay}
}

// Turfs returns the merged turf collection. Each provider is tried in order;
// an error and a zero-row success are treated identically. The overlay always
// wins on id collision, and overlay-only records are appended.
func (c *Coordinator) Turfs(ctx context.Context) []models.Turf {
	base := c.fetchTurfs(ctx)

	overlay, err := c.overlay.OwnerTurfs()
	if err != nil {
		slog.Warn("Failed to read owner overlay", "error", err)
		return base
	}
	return mergeByID(base, overlay)
}

func (c *Coordinator) fetchTurfs(ctx context.Context) []models.Turf {
	for i, p := range c.providers {
		turfs, err := p.FetchTurfs(ctx)
		if err != nil {
			slog.Warn("Turf provider failed, trying next", "provider", p.Name(), "error", err)
			continue
		}
		if len(turfs) == 0 {
			slog.Info("Turf provider returned no rows, trying next", "provider", p.Name())
			continue
		}
		if i > 0 {
			metrics.SourceFallbacks.WithLabelValues("turfs").Inc()
		}
		return turfs
	}
	return nil
}

// Sports returns the sport reference set from the first provider that has
// one. The overlay does not apply to sports.
func (c *Coordinator) Sports(ctx context.Context) []models.Sport {
	for i, p := range c.providers {
		sports, err := p.FetchSports(ctx)
		if err != nil {
			slog.Warn("Sport provider failed, trying next", "provider", p.Name(), "error", err)
			continue
		}
		if len(sports) == 0 {
			continue
		}
		if i > 0 {
			metrics.SourceFallbacks.WithLabelValues("sports").Inc()
		}
		return sports
	}
	return nil
}

// mergeByID keeps base ordering, substituting overlay records for colliding
// ids in place and appending overlay-only records at the end.
func mergeByID(base, overlay []models.Turf) []models.Turf {
	if len(overlay) == 0 {
		return base
	}

	byID := make(map[string]models.Turf, len(overlay))
	for _, t := range overlay {
		byID[t.ID] = t
	}

	out := make([]models.Turf, 0, len(base)+len(overlay))
	for _, t := range base {
		if o, ok := byID[t.ID]; ok {
			out = append(out, o)
			delete(byID, t.ID)
		} else {
			out = append(out, t)
		}
	}
	for _, t := range overlay {
		if _, ok := byID[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out
}
