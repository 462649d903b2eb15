package aviationstack

import "fmt"

// SampleFlights returns static flight data for use when no access key is
// configured. The route fields echo the request so the workshop output reads
// naturally.
func SampleFlights(from, to string) []Flight {
	if from == "" {
		from = "JFK"
	}
	if to == "" {
		to = "LAX"
	}
	return []Flight{
		{
			FlightNumber:     "AA100",
			Airline:          "American Airlines",
			DepartureAirport: from,
			DepartureTime:    "2025-06-01T08:15:00+00:00",
			ArrivalAirport:   to,
			ArrivalTime:      "2025-06-01T11:40:00+00:00",
			Status:           "scheduled",
		},
		{
			FlightNumber:     "DL2847",
			Airline:          "Delta Air Lines",
			DepartureAirport: from,
			DepartureTime:    "2025-06-01T13:05:00+00:00",
			ArrivalAirport:   to,
			ArrivalTime:      "2025-06-01T16:22:00+00:00",
			Status:           "scheduled",
		},
		{
			FlightNumber:     "UA455",
			Airline:          "United Airlines",
			DepartureAirport: from,
			DepartureTime:    "2025-06-01T18:30:00+00:00",
			ArrivalAirport:   to,
			ArrivalTime:      "2025-06-01T21:55:00+00:00",
			Status:           "scheduled",
		},
	}
}

// SampleStatus returns a static status record for one flight number.
func SampleStatus(flightNumber string) []Flight {
	if flightNumber == "" {
		flightNumber = "AA100"
	}
	return []Flight{
		{
			FlightNumber:     flightNumber,
			Airline:          fmt.Sprintf("Sample carrier for %s", flightNumber),
			DepartureAirport: "JFK",
			DepartureTime:    "2025-06-01T08:15:00+00:00",
			ArrivalAirport:   "LAX",
			ArrivalTime:      "2025-06-01T11:40:00+00:00",
			Status:           "active",
		},
	}
}
