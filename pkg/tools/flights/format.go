package flights

import (
	"fmt"
	"strings"

	"github.com/h-ess/concierge-toolkit/pkg/providers/aviationstack"
	"github.com/h-ess/concierge-toolkit/pkg/tools/booking"
)

// FormatFlights renders a numbered flight listing. Pure: same input, same
// output, and every field may be empty.
func FormatFlights(flights []aviationstack.Flight) string {
	if len(flights) == 0 {
		return "No flights found."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d flight(s):\n", len(flights))
	for i, f := range flights {
		number := f.FlightNumber
		if number == "" {
			number = "(unknown flight)"
		}
		fmt.Fprintf(&sb, "%d. %s %s\n", i+1, number, f.Airline)
		fmt.Fprintf(&sb, "   %s %s -> %s %s", f.DepartureAirport, f.DepartureTime, f.ArrivalAirport, f.ArrivalTime)
		if f.Status != "" {
			fmt.Fprintf(&sb, " [%s]", f.Status)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatBooking renders a flight booking confirmation block.
func FormatBooking(conf booking.Confirmation, seatClass string) string {
	var sb strings.Builder
	sb.WriteString("Flight booked!\n")
	fmt.Fprintf(&sb, "Confirmation: %s\n", conf.ConfirmationCode)
	fmt.Fprintf(&sb, "Passenger: %s\n", conf.Name)
	fmt.Fprintf(&sb, "Item: %s", conf.Item)
	if seatClass != "" {
		fmt.Fprintf(&sb, "\nSeat class: %s", seatClass)
	}
	return sb.String()
}
