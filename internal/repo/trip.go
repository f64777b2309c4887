package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the kv-backed
// implementation, which allows services to be unit-tested with a mock.
//
// Trips are stored as one JSON array under TripsKey and always written as a
// whole — matching the local-storage layout and the "persisted as a unit"
// contract of the domain model.
type TripRepo interface {
	// List returns all stored trips. Entries failing the minimal shape
	// check (missing id, items not an array) are dropped, not repaired.
	List(ctx context.Context) ([]domain.Trip, error)

	// GetByID returns a single trip.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Trip, error)

	// Save upserts a trip into the stored array, matching on ID.
	Save(ctx context.Context, trip domain.Trip) error

	// Delete removes a trip by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

// tripShape is the minimal load-time shape check for a persisted trip entry:
// it must carry a non-empty id and an array-typed items field. Anything else
// is treated as corrupt and dropped during List.
type tripShape struct {
	ID    string            `json:"id"`
	Items []json.RawMessage `json:"items"`
}

// kvTripRepo stores the trip collection as a JSON array in a KV store.
// The mutex serializes read-modify-write cycles: the domain is single-user,
// but the HTTP server is not single-threaded.
type kvTripRepo struct {
	kv  KV
	log *slog.Logger

	mu sync.Mutex
}

// NewTripRepo constructs a TripRepo backed by the provided KV store.
// Dropped corrupt entries are reported through log at warn level.
func NewTripRepo(kv KV, log *slog.Logger) TripRepo {
	return &kvTripRepo{kv: kv, log: log}
}

// List loads and decodes the whole trip collection.
func (r *kvTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// GetByID scans the stored collection for a matching ID.
func (r *kvTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trips, err := r.load(ctx)
	if err != nil {
		return domain.Trip{}, err
	}
	for _, t := range trips {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
}

// Save replaces the trip with the same ID, or appends when it is new,
// then writes the whole collection back.
func (r *kvTripRepo) Save(ctx context.Context, trip domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trips, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, t := range trips {
		if t.ID == trip.ID {
			trips[i] = trip
			replaced = true
			break
		}
	}
	if !replaced {
		trips = append(trips, trip)
	}

	return r.store(ctx, trips)
}

// Delete removes the trip with the given ID and writes the collection back.
func (r *kvTripRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trips, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := trips[:0]
	for _, t := range trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trips) {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}

	return r.store(ctx, kept)
}

// load reads the stored array and drops entries failing the shape check.
// Callers must hold r.mu.
func (r *kvTripRepo) load(ctx context.Context) ([]domain.Trip, error) {
	raw, found, err := r.kv.Load(ctx, TripsKey)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo: load: %w", err)
	}
	if !found {
		return []domain.Trip{}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		// The whole document is unreadable; treat it as absent rather
		// than blocking the user. The next save rewrites it.
		r.log.Warn("trip store is not a JSON array; ignoring stored value", "error", err)
		return []domain.Trip{}, nil
	}

	trips := make([]domain.Trip, 0, len(entries))
	for i, entry := range entries {
		var shape tripShape
		if err := json.Unmarshal(entry, &shape); err != nil || shape.ID == "" || shape.Items == nil {
			r.log.Warn("dropping malformed trip entry", "index", i)
			continue
		}
		var t domain.Trip
		if err := json.Unmarshal(entry, &t); err != nil {
			r.log.Warn("dropping undecodable trip entry", "index", i, "error", err)
			continue
		}
		trips = append(trips, t)
	}
	return trips, nil
}

// store writes the whole collection back under TripsKey.
// Callers must hold r.mu.
func (r *kvTripRepo) store(ctx context.Context, trips []domain.Trip) error {
	// A nil Items slice would serialize as JSON null and be dropped by the
	// shape check on the next load; always persist an array.
	for i := range trips {
		if trips[i].Items == nil {
			trips[i].Items = []domain.TripItem{}
		}
	}

	value, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("repo.TripRepo: marshal: %w", err)
	}
	if err := r.kv.Save(ctx, TripsKey, value); err != nil {
		return fmt.Errorf("repo.TripRepo: save: %w", err)
	}
	return nil
}
