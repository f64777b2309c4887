package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hmnguyen/travel-planner/backend/internal/clock"
	"github.com/hmnguyen/travel-planner/backend/internal/domain"
	"github.com/hmnguyen/travel-planner/backend/internal/planner"
	"github.com/hmnguyen/travel-planner/backend/internal/repo"
)

// DestinationService implements business logic for catalog administration
// and browsing.
type DestinationService struct {
	catalog repo.DestinationRepo
	clock   clock.Clock

	newID func() string
}

// NewDestinationService constructs a DestinationService backed by the
// provided catalog repo.
func NewDestinationService(catalog repo.DestinationRepo, clk clock.Clock) *DestinationService {
	return &DestinationService{
		catalog: catalog,
		clock:   clk,
		newID:   func() string { return planner.NewDestinationID(clk.Now()) },
	}
}

// SetIDGeneratorForTest overrides destination ID generation for
// deterministic tests. It should not be used in production code.
func (s *DestinationService) SetIDGeneratorForTest(fn func() string) {
	if fn != nil {
		s.newID = fn
	}
}

// List returns catalog entries matching the filter, in the filter's sort
// order. Always returns a non-nil slice so callers can safely range over it.
func (s *DestinationService) List(ctx context.Context, filter domain.DestinationFilter) ([]domain.Destination, error) {
	if filter.Type != "" && !domain.ValidDestinationType(filter.Type) {
		return nil, fmt.Errorf("%w: unknown destination type %q", domain.ErrValidation, filter.Type)
	}
	if !domain.ValidDestinationSort(filter.Sort) {
		return nil, fmt.Errorf("%w: unknown sort order %q", domain.ErrValidation, filter.Sort)
	}

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.List: %w", err)
	}

	result := make([]domain.Destination, 0, len(catalog))
	for _, d := range catalog {
		if filter.Type != "" && d.Type != filter.Type {
			continue
		}
		if d.Rating < filter.MinRating {
			continue
		}
		result = append(result, d)
	}

	switch filter.Sort {
	case domain.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case domain.SortRatingAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating < result[j].Rating })
	case domain.SortRatingDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	}

	return result, nil
}

// GetByID returns a single catalog entry.
// Returns domain.ErrNotFound if no destination with that ID exists.
func (s *DestinationService) GetByID(ctx context.Context, id string) (domain.Destination, error) {
	d, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.GetByID: %w", err)
	}
	return d, nil
}

// Create validates and persists a new catalog entry, assigning it a fresh ID.
func (s *DestinationService) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	if err := validateDestination(d); err != nil {
		return domain.Destination{}, err
	}

	d.ID = s.newID()
	d.Name = strings.TrimSpace(d.Name)
	if err := s.catalog.Save(ctx, d); err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Create: %w", err)
	}
	return d, nil
}

// Update validates and persists changes to an existing catalog entry.
// Returns domain.ErrNotFound if the destination does not exist.
func (s *DestinationService) Update(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	if err := validateDestination(d); err != nil {
		return domain.Destination{}, err
	}

	if _, err := s.catalog.GetByID(ctx, d.ID); err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Update: %w", err)
	}

	d.Name = strings.TrimSpace(d.Name)
	if err := s.catalog.Save(ctx, d); err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Update: %w", err)
	}
	return d, nil
}

// Delete removes a catalog entry by ID. Trip items referencing it keep
// their DestinationID and render as unknown from then on.
// Returns domain.ErrNotFound if the destination does not exist.
func (s *DestinationService) Delete(ctx context.Context, id string) error {
	if err := s.catalog.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.DestinationService.Delete: %w", err)
	}
	return nil
}

// validateDestination enforces business rules common to Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - Type must be one of the known destination types.
//   - Price must not be negative.
//   - Rating must be within 0..5.
func validateDestination(d domain.Destination) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !domain.ValidDestinationType(d.Type) {
		return fmt.Errorf("%w: type must be beach, mountain, or city", domain.ErrValidation)
	}
	if d.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if d.Rating < 0 || d.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", domain.ErrValidation)
	}
	return nil
}
