package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
)

// DestinationRepo defines the persistence operations for the destination
// catalog. Like trips, the catalog is one JSON array under a single key and
// is always written as a whole.
type DestinationRepo interface {
	// List returns the full catalog in stored order.
	List(ctx context.Context) ([]domain.Destination, error)

	// GetByID returns a single catalog entry.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Destination, error)

	// Save upserts a destination into the catalog, matching on ID.
	Save(ctx context.Context, d domain.Destination) error

	// Delete removes a destination by ID. Trip items referencing it are
	// left untouched; dangling references are tolerated by design.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error

	// SeedIfEmpty stores the provided catalog when none exists yet.
	// Called once at startup so a fresh install has something to browse.
	SeedIfEmpty(ctx context.Context, seed []domain.Destination) error
}

// kvDestinationRepo stores the catalog as a JSON array in a KV store.
type kvDestinationRepo struct {
	kv KV

	mu sync.Mutex
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided KV store.
func NewDestinationRepo(kv KV) DestinationRepo {
	return &kvDestinationRepo{kv: kv}
}

func (r *kvDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *kvDestinationRepo) GetByID(ctx context.Context, id string) (domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.load(ctx)
	if err != nil {
		return domain.Destination{}, err
	}
	for _, d := range catalog {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", domain.ErrNotFound)
}

func (r *kvDestinationRepo) Save(ctx context.Context, dest domain.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, d := range catalog {
		if d.ID == dest.ID {
			catalog[i] = dest
			replaced = true
			break
		}
	}
	if !replaced {
		catalog = append(catalog, dest)
	}

	return r.store(ctx, catalog)
}

func (r *kvDestinationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := catalog[:0]
	for _, d := range catalog {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(catalog) {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", domain.ErrNotFound)
	}

	return r.store(ctx, kept)
}

func (r *kvDestinationRepo) SeedIfEmpty(ctx context.Context, seed []domain.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, found, err := r.kv.Load(ctx, DestinationsKey)
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.SeedIfEmpty: %w", err)
	}
	if found {
		return nil
	}
	return r.store(ctx, seed)
}

// load reads the stored catalog. Callers must hold r.mu.
func (r *kvDestinationRepo) load(ctx context.Context) ([]domain.Destination, error) {
	raw, found, err := r.kv.Load(ctx, DestinationsKey)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo: load: %w", err)
	}
	if !found {
		return []domain.Destination{}, nil
	}

	var catalog []domain.Destination
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo: decode: %w", err)
	}
	if catalog == nil {
		catalog = []domain.Destination{}
	}
	return catalog, nil
}

// store writes the whole catalog back. Callers must hold r.mu.
func (r *kvDestinationRepo) store(ctx context.Context, catalog []domain.Destination) error {
	if catalog == nil {
		catalog = []domain.Destination{}
	}
	value, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo: marshal: %w", err)
	}
	if err := r.kv.Save(ctx, DestinationsKey, value); err != nil {
		return fmt.Errorf("repo.DestinationRepo: save: %w", err)
	}
	return nil
}
