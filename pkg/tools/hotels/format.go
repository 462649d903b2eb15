package hotels

import (
	"fmt"
	"strings"

	providerhotels "github.com/h-ess/concierge-toolkit/pkg/providers/hotels"
	"github.com/h-ess/concierge-toolkit/pkg/tools/booking"
)

// FormatHotels renders a numbered hotel listing. Pure and total over empty
// fields.
func FormatHotels(hotels []providerhotels.Hotel) string {
	if len(hotels) == 0 {
		return "No hotels matched your filters."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d hotel(s):\n", len(hotels))
	for i, h := range hotels {
		name := h.Name
		if name == "" {
			name = "(unnamed hotel)"
		}
		fmt.Fprintf(&sb, "%d. %s", i+1, name)
		if h.Rating > 0 {
			fmt.Fprintf(&sb, " — %.1f/5", h.Rating)
		}
		sb.WriteString("\n")
		if h.Address != "" {
			fmt.Fprintf(&sb, "   %s\n", h.Address)
		}
		if h.PricePerNight > 0 {
			currency := h.Currency
			if currency == "" {
				currency = "USD"
			}
			fmt.Fprintf(&sb, "   %.2f %s per night\n", h.PricePerNight, currency)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatBooking renders a hotel booking confirmation block.
func FormatBooking(conf booking.Confirmation, guests int) string {
	var sb strings.Builder
	sb.WriteString("Hotel booked!\n")
	fmt.Fprintf(&sb, "Confirmation: %s\n", conf.ConfirmationCode)
	fmt.Fprintf(&sb, "Guest: %s\n", conf.Name)
	fmt.Fprintf(&sb, "Item: %s", conf.Item)
	if guests > 0 {
		fmt.Fprintf(&sb, "\nGuests: %d", guests)
	}
	return sb.String()
}
