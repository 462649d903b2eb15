package hotels

import "fmt"

// SampleHotels returns static hotel data for use when no API key is
// configured.
func SampleHotels(location string) []Hotel {
	if location == "" {
		location = "downtown"
	}
	return []Hotel{
		{
			ID:            "htl-1001",
			Name:          fmt.Sprintf("Grand %s Hotel", location),
			Address:       fmt.Sprintf("1 Main Street, %s", location),
			Rating:        4.6,
			PricePerNight: 189,
			Currency:      "USD",
		},
		{
			ID:            "htl-1002",
			Name:          "Harborview Suites",
			Address:       fmt.Sprintf("42 Waterfront Ave, %s", location),
			Rating:        4.2,
			PricePerNight: 145,
			Currency:      "USD",
		},
		{
			ID:            "htl-1003",
			Name:          "The Budget Inn",
			Address:       fmt.Sprintf("980 Airport Rd, %s", location),
			Rating:        3.4,
			PricePerNight: 79,
			Currency:      "USD",
		},
	}
}
