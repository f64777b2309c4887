package planner

import (
	"math"

	"github.com/hmnguyen/travel-planner/backend/internal/domain"
)

// Auto-allocation policy: the base amount is the destination cost plus a 20%
// buffer, floored at 1,000,000 VND, and split across categories in fixed
// proportions. The proportions are a policy constant, not user-configurable.
const (
	autoAllocateBufferFactor = 1.2
	autoAllocateMinimumBase  = 1_000_000

	shareAccommodation  = 0.40
	shareFood           = 0.30
	shareTransportation = 0.15
	shareActivities     = 0.10
	shareOther          = 0.05
)

// Catalog resolves destination IDs to catalog entries.
// The second return value is false when the ID does not resolve.
type Catalog interface {
	GetByID(id string) (domain.Destination, bool)
}

// CatalogIndex is a map-backed Catalog over a destination slice.
type CatalogIndex map[string]domain.Destination

// NewCatalogIndex builds a CatalogIndex from a destination slice.
// Later duplicates of an ID win, mirroring a last-write catalog update.
func NewCatalogIndex(destinations []domain.Destination) CatalogIndex {
	idx := make(CatalogIndex, len(destinations))
	for _, d := range destinations {
		idx[d.ID] = d
	}
	return idx
}

func (c CatalogIndex) GetByID(id string) (domain.Destination, bool) {
	d, ok := c[id]
	return d, ok
}

// Total returns the sum of the five budget categories.
func Total(b domain.Budget) float64 {
	return b.Food + b.Accommodation + b.Transportation + b.Activities + b.Other
}

// BudgetPercentages is the per-category share of the total budget, each
// rounded to the nearest whole percent. The shares sum to 100 give or take
// rounding error, or are all zero for an empty budget.
type BudgetPercentages struct {
	Food           int `json:"food"`
	Accommodation  int `json:"accommodation"`
	Transportation int `json:"transportation"`
	Activities     int `json:"activities"`
	Other          int `json:"other"`
}

// Percentages computes the rounded per-category percentage breakdown of b.
// When the total is zero (or negative, which validated input rules out) the
// result is all zeros rather than a division by zero.
func Percentages(b domain.Budget) BudgetPercentages {
	total := Total(b)
	if total <= 0 {
		return BudgetPercentages{}
	}
	pct := func(v float64) int { return int(math.Round(v / total * 100)) }
	return BudgetPercentages{
		Food:           pct(b.Food),
		Accommodation:  pct(b.Accommodation),
		Transportation: pct(b.Transportation),
		Activities:     pct(b.Activities),
		Other:          pct(b.Other),
	}
}

// Status classifies totalBudget against the trip's aggregate destination
// cost. A trip with no entered budget is "empty" regardless of cost; a trip
// with no destination cost is always "sufficient".
func Status(totalBudget, destinationCost float64) domain.BudgetStatus {
	switch {
	case totalBudget == 0:
		return domain.BudgetEmpty
	case totalBudget < destinationCost:
		return domain.BudgetInsufficient
	default:
		return domain.BudgetSufficient
	}
}

// AutoAllocate proposes a budget from the trip's destination cost: the base
// is max(cost × 1.2, 1,000,000), distributed 40% accommodation, 30% food,
// 15% transportation, 10% activities, 5% other, each category rounded to the
// nearest whole currency unit.
func AutoAllocate(destinationCost float64) domain.Budget {
	base := math.Max(destinationCost*autoAllocateBufferFactor, autoAllocateMinimumBase)
	return domain.Budget{
		Food:           math.Round(base * shareFood),
		Accommodation:  math.Round(base * shareAccommodation),
		Transportation: math.Round(base * shareTransportation),
		Activities:     math.Round(base * shareActivities),
		Other:          math.Round(base * shareOther),
	}
}

// DestinationCost sums the catalog price of every item's destination across
// the whole trip. Items whose DestinationID does not resolve contribute
// zero; a dangling reference is a presentation concern, not an error.
func DestinationCost(trip domain.Trip, catalog Catalog) float64 {
	var total float64
	for _, it := range trip.Items {
		if d, ok := catalog.GetByID(it.DestinationID); ok {
			total += d.Price
		}
	}
	return total
}
