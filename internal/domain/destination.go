package domain

// DestinationType classifies a destination for catalog filtering.
type DestinationType string

const (
	DestinationBeach    DestinationType = "beach"
	DestinationMountain DestinationType = "mountain"
	DestinationCity     DestinationType = "city"
)

// ValidDestinationType reports whether t is one of the known catalog types.
func ValidDestinationType(t DestinationType) bool {
	switch t {
	case DestinationBeach, DestinationMountain, DestinationCity:
		return true
	}
	return false
}

// Destination is one entry in the catalog of places available for planning.
// Identity is ID; all other fields change only through explicit admin updates.
type Destination struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Type        DestinationType `json:"type"`
	Price       float64         `json:"price"`
	Rating      float64         `json:"rating"` // 0..5
	Description string          `json:"description"`
}
