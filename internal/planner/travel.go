package planner

import "hash/fnv"

// Travel time estimates are bounded to a plausible same-region range.
const (
	minTravelMinutes = 30
	maxTravelMinutes = 180
)

// TravelTimeEstimator estimates the travel time in minutes between two
// destinations. It is an injected capability: there is no real geodata in
// this system, so the estimate source must stay pluggable rather than being
// baked into the itinerary view.
type TravelTimeEstimator interface {
	Minutes(fromDestinationID, toDestinationID string) int
}

// PairHashEstimator derives a stable pseudo-estimate from the ID pair.
// Unlike a random placeholder it returns the same minutes for the same pair
// every time, so itinerary views don't flicker between renders.
type PairHashEstimator struct{}

func NewPairHashEstimator() PairHashEstimator { return PairHashEstimator{} }

func (PairHashEstimator) Minutes(fromDestinationID, toDestinationID string) int {
	h := fnv.New32a()
	h.Write([]byte(fromDestinationID))
	h.Write([]byte{0})
	h.Write([]byte(toDestinationID))
	span := maxTravelMinutes - minTravelMinutes + 1
	return minTravelMinutes + int(h.Sum32())%span
}
