// Package source implements the catalogue data-source chain: an ordered list
// of providers tried in turn, with the locally persisted owner overlay merged
// on top of whichever provider answered.
package source

import (
	"context"

	"turfnest/internal/models"
	"turfnest/internal/repository"
	"turfnest/internal/seed"
)

// Provider supplies one reference collection each for turfs and sports.
// Providers are tried in order by the Coordinator; an error or an empty
// result both mean "try the next one".
type Provider interface {
	Name() string
	FetchTurfs(ctx context.Context) ([]models.Turf, error)
	FetchSports(ctx context.Context) ([]models.Sport, error)
}

// RemoteProvider reads the catalogue from the remote relational store.
type RemoteProvider struct {
	turfs  *repository.TurfRepository
	sports *repository.SportRepository
}

func NewRemoteProvider(turfs *repository.TurfRepository, sports *repository.SportRepository) *RemoteProvider {
	return &RemoteProvider{turfs: turfs, sports: sports}
}

func (p *RemoteProvider) Name() string { return "remote" }

func (p *RemoteProvider) FetchTurfs(ctx context.Context) ([]models.Turf, error) {
	return p.turfs.ListActive(ctx)
}

func (p *RemoteProvider) FetchSports(ctx context.Context) ([]models.Sport, error) {
	return p.sports.List(ctx)
}

// SeedProvider serves the bundled demo catalogue. It never fails, so it
// terminates every chain it is part of.
type SeedProvider struct{}

func NewSeedProvider() *SeedProvider { return &SeedProvider{} }

func (p *SeedProvider) Name() string { return "seed" }

func (p *SeedProvider) FetchTurfs(ctx context.Context) ([]models.Turf, error) {
	return seed.Turfs(), nil
}

func (p *SeedProvider) FetchSports(ctx context.Context) ([]models.Sport, error) {
	return seed.Sports(), nil
}
