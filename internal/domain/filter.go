package domain

// DestinationSort names a supported catalog sort order.
type DestinationSort string

const (
	SortNone       DestinationSort = ""
	SortPriceAsc   DestinationSort = "price_asc"
	SortPriceDesc  DestinationSort = "price_desc"
	SortRatingAsc  DestinationSort = "rating_asc"
	SortRatingDesc DestinationSort = "rating_desc"
)

// ValidDestinationSort reports whether s is a supported sort order.
// The empty string means "catalog order" and is always valid.
func ValidDestinationSort(s DestinationSort) bool {
	switch s {
	case SortNone, SortPriceAsc, SortPriceDesc, SortRatingAsc, SortRatingDesc:
		return true
	}
	return false
}

// DestinationFilter carries catalog browsing parameters from the HTTP layer
// to the service layer. Zero values mean "no constraint".
type DestinationFilter struct {
	// Type restricts results to a single destination type when non-empty.
	Type DestinationType
	// MinRating excludes destinations rated below this value.
	MinRating float64
	// Sort orders the result; SortNone keeps catalog order.
	Sort DestinationSort
}
