// Package domain contains the core data types for the Travel Planner API.
// This package has zero external dependencies and is imported by every other
// internal package (planner, repo, service, handler).
package domain

// DateLayout is the wire and storage format for all calendar dates.
// An empty string means the date is unset.
const DateLayout = "2006-01-02"

// TripItem is one scheduled visit to a destination on a specific day.
//
// Among all items of a trip that share the same Date, Order values are unique
// and define the display sequence when sorted ascending. Contiguity is not an
// invariant: deletions leave gaps, and only the drag-reorder operation
// renumbers a day back to 0..n-1.
//
// DestinationID is not guaranteed to resolve in the catalog — an admin may
// delete a destination that is still referenced. Dangling references are
// tolerated everywhere and rendered as "unknown" by the presentation layer.
type TripItem struct {
	ID            string `json:"id"`
	DestinationID string `json:"destinationId"`
	Date          string `json:"date"` // DateLayout
	Order         int    `json:"order"`
}

// Budget holds the five spending categories of a trip.
// All values are non-negative; the service layer rejects negative input
// before it ever reaches a Budget value.
type Budget struct {
	Food           float64 `json:"food"`
	Accommodation  float64 `json:"accommodation"`
	Transportation float64 `json:"transportation"`
	Activities     float64 `json:"activities"`
	Other          float64 `json:"other"`
}

// BudgetStatus classifies a trip budget against its aggregate destination cost.
type BudgetStatus string

const (
	// BudgetEmpty means no budget has been entered yet (total == 0).
	BudgetEmpty BudgetStatus = "empty"
	// BudgetInsufficient means a budget exists but does not cover the
	// summed price of the trip's destinations.
	BudgetInsufficient BudgetStatus = "insufficient"
	// BudgetSufficient means the budget covers the destination cost
	// (including the case where the trip has no destinations at all).
	BudgetSufficient BudgetStatus = "sufficient"
)

// Trip is the top-level aggregate: a named, dated itinerary plus a budget.
//
// StartDate and EndDate are empty until the user confirms a date range.
// Items may reference dates outside [StartDate, EndDate]; such items are kept
// in storage but are unreachable through date-indexed views until the range
// is reconfirmed to cover them again.
//
// A Trip is persisted as a unit — there is no partial persistence — and every
// itinerary operation takes a Trip value and returns a new Trip value.
type Trip struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartDate string     `json:"startDate"` // DateLayout, "" when unset
	EndDate   string     `json:"endDate"`   // DateLayout, "" when unset
	Items     []TripItem `json:"items"`
	Budget    Budget     `json:"budget"`
}

// DatesConfirmed reports whether the trip has a confirmed date range.
// Day-by-day views are only derivable once this is true.
func (t Trip) DatesConfirmed() bool {
	return t.StartDate != "" && t.EndDate != ""
}
