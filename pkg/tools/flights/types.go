package flights

import (
	"github.com/h-ess/concierge-toolkit/pkg/providers/aviationstack"
	"github.com/h-ess/concierge-toolkit/pkg/tools/booking"
)

// SearchFlightsArgs are the filters for the search_flights tool.
type SearchFlightsArgs struct {
	From    string `json:"from" jsonschema:"required,description=Departure airport IATA code (e.g. JFK)."`
	To      string `json:"to" jsonschema:"required,description=Arrival airport IATA code (e.g. LAX)."`
	Date    string `json:"date,omitempty" jsonschema:"description=Flight date in YYYY-MM-DD format."`
	Airline string `json:"airline,omitempty" jsonschema:"description=Restrict results to this airline name."`
	Limit   int    `json:"limit,omitempty" jsonschema:"description=Maximum number of results (default 10)."`
}

// SearchFlightsResponse carries the matched flights and a rendered listing.
type SearchFlightsResponse struct {
	Success bool                   `json:"success"`
	Flights []aviationstack.Flight `json:"flights,omitempty"`
	Display string                 `json:"display,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// FlightStatusArgs identify one flight for the flight_status tool.
type FlightStatusArgs struct {
	FlightNumber string `json:"flightNumber" jsonschema:"required,description=IATA flight number (e.g. AA100)."`
	Date         string `json:"date,omitempty" jsonschema:"description=Flight date in YYYY-MM-DD format."`
}

// FlightStatusResponse carries the status records found for the flight.
type FlightStatusResponse struct {
	Success bool                   `json:"success"`
	Flights []aviationstack.Flight `json:"flights,omitempty"`
	Display string                 `json:"display,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// BookFlightArgs are the passenger details for the mocked book_flight tool.
type BookFlightArgs struct {
	FlightNumber   string `json:"flightNumber" jsonschema:"required,description=IATA flight number to book."`
	PassengerName  string `json:"passengerName" jsonschema:"required,description=Full name of the passenger."`
	PassengerEmail string `json:"passengerEmail" jsonschema:"required,description=Email address for the booking confirmation."`
	SeatClass      string `json:"seatClass,omitempty" jsonschema:"description=Seat class,enum=economy,enum=premium,enum=business,enum=first"`
}

// BookFlightResponse carries the fabricated confirmation.
type BookFlightResponse struct {
	Success      bool                  `json:"success"`
	Confirmation *booking.Confirmation `json:"confirmation,omitempty"`
	Display      string                `json:"display,omitempty"`
	Error        string                `json:"error,omitempty"`
}
