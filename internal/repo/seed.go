package repo

import "github.com/hmnguyen/travel-planner/backend/internal/domain"

// SeedCatalog returns the starter destination catalog written on first run.
// Prices are in VND. Admins can edit or delete these like any other entry.
func SeedCatalog() []domain.Destination {
	return []domain.Destination{
		{
			ID:          "1",
			Name:        "Ha Long Bay",
			Image:       "/destinations/halong.jpg",
			Type:        domain.DestinationBeach,
			Price:       1_500_000,
			Rating:      4.8,
			Description: "World natural wonder with thousands of limestone islands rising from emerald water.",
		},
		{
			ID:          "2",
			Name:        "Sapa Rice Terraces",
			Image:       "/destinations/sapa.jpg",
			Type:        domain.DestinationMountain,
			Price:       1_200_000,
			Rating:      4.7,
			Description: "Mountain town famous for its terraced rice fields and the culture of local hill tribes.",
		},
		{
			ID:          "3",
			Name:        "Da Lat",
			Image:       "/destinations/dalat.jpg",
			Type:        domain.DestinationMountain,
			Price:       1_100_000,
			Rating:      4.6,
			Description: "The city of flowers, with a cool year-round climate, French architecture, and pine forests.",
		},
		{
			ID:          "4",
			Name:        "Hoi An Ancient Town",
			Image:       "/destinations/hoian.jpg",
			Type:        domain.DestinationCity,
			Price:       1_300_000,
			Rating:      4.9,
			Description: "Romantic old town of well-preserved houses, colorful lanterns, and the Thu Bon river.",
		},
		{
			ID:          "5",
			Name:        "Nha Trang Beach",
			Image:       "/destinations/nhatrang.jpg",
			Type:        domain.DestinationBeach,
			Price:       1_600_000,
			Rating:      4.5,
			Description: "Coastal city known for white sand beaches, clear water, and plenty of entertainment.",
		},
		{
			ID:          "6",
			Name:        "Ho Chi Minh City",
			Image:       "/destinations/hochiminh.jpg",
			Type:        domain.DestinationCity,
			Price:       2_000_000,
			Rating:      4.5,
			Description: "Vietnam's most dynamic city, full of historic sights, rich food, and vibrant nightlife.",
		},
	}
}
