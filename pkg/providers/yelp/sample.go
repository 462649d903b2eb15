package yelp

// SampleRestaurants returns static restaurant data for use when no API key
// is configured.
func SampleRestaurants(cuisine string) []Restaurant {
	if cuisine == "" {
		cuisine = "Italian"
	}
	return []Restaurant{
		{
			ID:          "sample-trattoria-roma",
			Name:        "Trattoria Roma",
			Cuisine:     cuisine,
			Rating:      4.5,
			ReviewCount: 812,
			Price:       "$$",
			Address:     "14 Mulberry St",
			Phone:       "(555) 201-4478",
		},
		{
			ID:          "sample-golden-wok",
			Name:        "Golden Wok",
			Cuisine:     "Chinese",
			Rating:      4.1,
			ReviewCount: 455,
			Price:       "$",
			Address:     "88 Canal St",
			Phone:       "(555) 334-9081",
		},
		{
			ID:          "sample-le-petit-jardin",
			Name:        "Le Petit Jardin",
			Cuisine:     "French",
			Rating:      4.8,
			ReviewCount: 1290,
			Price:       "$$$",
			Address:     "3 Orchard Lane",
			Phone:       "(555) 772-0034",
		},
	}
}
