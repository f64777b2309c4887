package domain

// MonthCount is one bucket in the monthly trip-creation statistic.
type MonthCount struct {
	// Month is the bucket label, formatted "MM/YYYY".
	Month string `json:"month"`
	// Count is the number of trips whose start date falls in that month.
	Count int `json:"count"`
}

// PopularDestination is the usage statistic for one catalog entry: how many
// trip items across all trips reference it, with display fields resolved
// from the catalog. Unresolved destination IDs get placeholder display
// values rather than being excluded.
type PopularDestination struct {
	DestinationID string  `json:"destinationId"`
	Name          string  `json:"name"`
	Count         int     `json:"count"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	Rating        float64 `json:"rating"`
}
