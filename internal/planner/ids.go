package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewTripID returns a trip identifier unique within the process lifetime.
// The format ("trip-<unix ms>-<random suffix>") keeps IDs sortable by
// creation time when eyeballing the persisted JSON; no cross-client
// uniqueness guarantee is needed for a single-user local store.
func NewTripID(now time.Time) string {
	return prefixedID("trip", now)
}

// NewItemID returns a trip item identifier, same scheme as NewTripID.
func NewItemID(now time.Time) string {
	return prefixedID("item", now)
}

// NewDestinationID returns a catalog entry identifier.
func NewDestinationID(now time.Time) string {
	return prefixedID("dest", now)
}

func prefixedID(prefix string, now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), suffix)
}
