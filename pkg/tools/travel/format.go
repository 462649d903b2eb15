package travel

import (
	"fmt"
	"strings"

	"github.com/h-ess/concierge-toolkit/pkg/store"
)

// FormatPlan renders a travel plan as an itinerary block.
func FormatPlan(p store.TravelPlan) string {
	var sb strings.Builder
	title := p.Title
	if title == "" {
		title = "(untitled trip)"
	}
	fmt.Fprintf(&sb, "Travel plan %s: %s [%s]\n", p.ID, title, p.Status)
	if len(p.Destinations) > 0 {
		fmt.Fprintf(&sb, "Destinations: %s\n", strings.Join(p.Destinations, " → "))
	}
	fmt.Fprintf(&sb, "Dates: %s to %s\n", p.StartDate, p.EndDate)
	fmt.Fprintf(&sb, "Travelers: %d", p.Travelers)
	if p.Budget > 0 {
		fmt.Fprintf(&sb, "\nBudget: $%.2f", p.Budget)
	}
	if len(p.Flights) > 0 {
		fmt.Fprintf(&sb, "\nFlights: %s", strings.Join(p.Flights, ", "))
	}
	if len(p.Hotels) > 0 {
		fmt.Fprintf(&sb, "\nHotels: %s", strings.Join(p.Hotels, ", "))
	}
	return sb.String()
}

// FormatTrip renders the outcome of an aggregate booking, one line per leg.
func FormatTrip(p store.TravelPlan, legs []LegResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Trip booking for plan %s:\n", p.ID)
	for _, leg := range legs {
		if leg.Success {
			fmt.Fprintf(&sb, "- %s: confirmed (%s)\n", leg.Leg, leg.Confirmation.ConfirmationCode)
		} else {
			fmt.Fprintf(&sb, "- %s: failed (%s)\n", leg.Leg, leg.Error)
		}
	}
	if p.Status == planStatusBooked {
		sb.WriteString("All legs booked. Have a great trip!")
	} else {
		sb.WriteString("Some legs could not be booked; successful legs remain confirmed.")
	}
	return sb.String()
}
