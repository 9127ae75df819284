// Package seed bundles the demo catalogue served when the remote store is
// unreachable or empty. Nashik, the home market, carries the densest data.
package seed

import "turfnest/internal/models"

// Sports returns the bundled sport reference set.
func Sports() []models.Sport {
	return []models.Sport{
		{ID: "FOOTBALL", Name: "Football"},
		{ID: "CRICKET", Name: "Cricket"},
		{ID: "BADMINTON", Name: "Badminton"},
		{ID: "TENNIS", Name: "Tennis"},
		{ID: "BASKETBALL", Name: "Basketball"},
	}
}

// Turfs returns the bundled venue catalogue.
func Turfs() []models.Turf {
	return []models.Turf{
		{
			ID: "n1", Name: "GreenPitch Arena Nashik", Area: "College Road",
			City: "Nashik", State: "Maharashtra", Rating: 4.7, PricePerHour: 800,
			Images: []string{
				"https://images.unsplash.com/photo-1599058917212-d750089bc07c?auto=format&fit=crop&w=1200&q=60",
				"https://images.unsplash.com/photo-1528291151373-706c4bbf35cf?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Parking", "Changing Room", "Drinking Water"},
			SportNames: []string{"Football", "Cricket"},
			IsActive:   true,
		},
		{
			ID: "n2", Name: "City Sports Hub Nashik", Area: "Gangapur Road",
			City: "Nashik", State: "Maharashtra", Rating: 4.6, PricePerHour: 650,
			Images: []string{
				"https://images.unsplash.com/photo-1517649763962-0c623066013b?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Parking", "Drinking Water"},
			SportNames: []string{"Badminton", "Tennis"},
			IsActive:   true,
		},
		{
			ID: "n3", Name: "Metro Arena Nashik", Area: "Indira Nagar",
			City: "Nashik", State: "Maharashtra", Rating: 4.8, PricePerHour: 1000,
			Images: []string{
				"https://images.unsplash.com/photo-1487956382158-bb926046304a?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Parking", "Changing Room", "Cafeteria"},
			SportNames: []string{"Basketball", "Football"},
			IsActive:   true,
		},
		{
			ID: "m1", Name: "Andheri Turf Park", Area: "Andheri West",
			City: "Mumbai", State: "Maharashtra", Rating: 4.7, PricePerHour: 1200,
			Images: []string{
				"https://images.unsplash.com/photo-1530549387789-4c1017266637?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Parking", "Lockers"},
			SportNames: []string{"Football"},
			IsActive:   true,
		},
		{
			ID: "m2", Name: "Marine Drive Courts", Area: "Marine Drive",
			City: "Mumbai", State: "Maharashtra", Rating: 4.5, PricePerHour: 900,
			Images: []string{
				"https://images.unsplash.com/photo-1587383693061-53b5f1a59c83?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Changing Room", "Drinking Water"},
			SportNames: []string{"Tennis", "Badminton"},
			IsActive:   true,
		},
		{
			ID: "p1", Name: "Shivajinagar Sports Complex", Area: "Shivajinagar",
			City: "Pune", State: "Maharashtra", Rating: 4.6, PricePerHour: 700,
			Images: []string{
				"https://images.unsplash.com/photo-1542144582-1ba00456b5a4?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Parking", "Cafeteria"},
			SportNames: []string{"Badminton", "Basketball"},
			IsActive:   true,
		},
		{
			ID: "p2", Name: "Kalyani Nagar Arena", Area: "Kalyani Nagar",
			City: "Pune", State: "Maharashtra", Rating: 4.3, PricePerHour: 600,
			Images: []string{
				"https://images.unsplash.com/photo-1517649763962-0c623066013b?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Drinking Water"},
			SportNames: []string{"Cricket"},
			IsActive:   true,
		},
		{
			ID: "d1", Name: "Capital Sports Arena", Area: "Dwarka",
			City: "Delhi", State: "Delhi", Rating: 4.5, PricePerHour: 950,
			Images: []string{
				"https://images.unsplash.com/photo-1521417531039-94c5c4f2ab1a?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Parking", "Changing Room"},
			SportNames: []string{"Football", "Basketball"},
			IsActive:   true,
		},
		{
			ID: "d2", Name: "Green Park Courts", Area: "Green Park",
			City: "Delhi", State: "Delhi", Rating: 4.4, PricePerHour: 800,
			Images: []string{
				"https://images.unsplash.com/photo-1546519638-68e109498ffc?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Lockers", "Drinking Water"},
			SportNames: []string{"Tennis"},
			IsActive:   true,
		},
		{
			ID: "b1", Name: "Koramangala Sports Hub", Area: "Koramangala",
			City: "Bengaluru", State: "Karnataka", Rating: 4.6, PricePerHour: 850,
			Images: []string{
				"https://images.unsplash.com/photo-1521417531039-94c5c4f2ab1a?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Parking", "Cafeteria"},
			SportNames: []string{"Badminton", "Cricket"},
			IsActive:   true,
		},
		{
			ID: "b2", Name: "Whitefield Courts", Area: "Whitefield",
			City: "Bengaluru", State: "Karnataka", Rating: 4.2, PricePerHour: 650,
			Images: []string{
				"https://images.unsplash.com/photo-1542144582-1ba00456b5a4?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Changing Room", "Drinking Water"},
			SportNames: []string{"Basketball"},
			IsActive:   true,
		},
		{
			ID: "h1", Name: "Gachibowli Arena", Area: "Gachibowli",
			City: "Hyderabad", State: "Telangana", Rating: 4.5, PricePerHour: 700,
			Images: []string{
				"https://images.unsplash.com/photo-1530549387789-4c1017266637?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Parking", "Lockers"},
			SportNames: []string{"Football"},
			IsActive:   true,
		},
		{
			ID: "h2", Name: "Kukatpally Sports Club", Area: "Kukatpally",
			City: "Hyderabad", State: "Telangana", Rating: 4.3, PricePerHour: 600,
			Images: []string{
				"https://images.unsplash.com/photo-1517649763962-0c623066013b?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Drinking Water"},
			SportNames: []string{"Cricket", "Badminton"},
			IsActive:   true,
		},
		{
			ID: "c1", Name: "Adyar Courts", Area: "Adyar",
			City: "Chennai", State: "Tamil Nadu", Rating: 4.4, PricePerHour: 700,
			Images: []string{
				"https://images.unsplash.com/photo-1587383693061-53b5f1a59c83?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Parking", "Changing Room"},
			SportNames: []string{"Tennis"},
			IsActive:   true,
		},
		{
			ID: "k1", Name: "Salt Lake Sports Arena", Area: "Salt Lake",
			City: "Kolkata", State: "West Bengal", Rating: 4.5, PricePerHour: 750,
			Images: []string{
				"https://images.unsplash.com/photo-1521417531039-94c5c4f2ab1a?auto=format&fit=crop&w=1200&q=60",
			},
			Amenities:  []string{"Parking", "Cafeteria"},
			SportNames: []string{"Badminton", "Football"},
			IsActive:   true,
		},
	}
}
