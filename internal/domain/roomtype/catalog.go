package roomtype

// InitialCatalog is inserted on first start when room_types is empty.
func InitialCatalog() []Params {
	return []Params{
		{
			ID:          "double-1",
			Name:        "Double Room",
			TotalUnits:  5,
			PriceCents:  19900,
			Description: "Spacious double occupancy room with king-size bed, private balcony, and stunning views",
			Amenities:   []string{"King Size Bed", "Private Balcony", "Air Conditioning", "Mini Bar", "Free WiFi", "Room Service"},
			Image:       "https://images.unsplash.com/photo-1647792855184-af42f1720b91?w=500&q=80",
			MaxGuests:   2,
		},
		{
			ID:          "single-1",
			Name:        "Single Room",
			TotalUnits:  4,
			PriceCents:  12900,
			Description: "Cozy single occupancy room perfect for solo travelers",
			Amenities:   []string{"Queen Size Bed", "Work Desk", "Air Conditioning", "Free WiFi", "Room Service"},
			Image:       "https://images.unsplash.com/photo-1698927100805-2a32718a7e05?w=500&q=80",
			MaxGuests:   1,
		},
		{
			ID:          "villa-1",
			Name:        "Villa",
			TotalUnits:  2,
			PriceCents:  249900,
			Description: "Luxurious villa perfect for large families and groups. Spacious living area with multiple bedrooms",
			Amenities:   []string{"5 Bedrooms", "Living Room", "Kitchen", "Private Garden", "BBQ Area", "Free WiFi", "24/7 Service"},
			Image:       "https://images.unsplash.com/photo-1599809275671-b5942cabc7a2?w=500&q=80",
			MaxGuests:   15,
		},
	}
}
