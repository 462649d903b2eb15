package restaurants

import (
	"fmt"
	"strings"

	"github.com/h-ess/concierge-toolkit/pkg/providers/yelp"
	"github.com/h-ess/concierge-toolkit/pkg/store"
)

// FormatRestaurants renders a numbered restaurant listing. Pure and total
// over empty fields.
func FormatRestaurants(restaurants []yelp.Restaurant) string {
	if len(restaurants) == 0 {
		return "No restaurants matched your filters."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d restaurant(s):\n", len(restaurants))
	for i, r := range restaurants {
		name := r.Name
		if name == "" {
			name = "(unnamed restaurant)"
		}
		fmt.Fprintf(&sb, "%d. %s", i+1, name)
		if r.Cuisine != "" {
			fmt.Fprintf(&sb, " (%s)", r.Cuisine)
		}
		if r.Rating > 0 {
			fmt.Fprintf(&sb, " — %.1f stars, %d reviews", r.Rating, r.ReviewCount)
		}
		if r.Price != "" {
			fmt.Fprintf(&sb, " %s", r.Price)
		}
		sb.WriteString("\n")
		if r.Address != "" {
			fmt.Fprintf(&sb, "   %s", r.Address)
			if r.Phone != "" {
				fmt.Fprintf(&sb, " — %s", r.Phone)
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatReservation renders one reservation as a confirmation block.
func FormatReservation(r store.Reservation) string {
	var sb strings.Builder
	switch r.Status {
	case store.StatusCancelled:
		sb.WriteString("Reservation cancelled.\n")
	default:
		sb.WriteString("Reservation confirmed!\n")
	}
	fmt.Fprintf(&sb, "Reservation id: %s\n", r.ID)
	fmt.Fprintf(&sb, "Restaurant: %s\n", r.RestaurantID)
	fmt.Fprintf(&sb, "Date: %s at %s\n", r.Date, r.Time)
	fmt.Fprintf(&sb, "Party of %d under %s", r.PartySize, r.CustomerName)
	if r.SpecialRequests != "" {
		fmt.Fprintf(&sb, "\nSpecial requests: %s", r.SpecialRequests)
	}
	return sb.String()
}

// FormatReservationList renders a compact listing of reservations.
func FormatReservationList(rs []store.Reservation) string {
	if len(rs) == 0 {
		return "No reservations found."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d reservation(s):\n", len(rs))
	for i, r := range rs {
		fmt.Fprintf(&sb, "%d. %s — %s on %s at %s, party of %d [%s]\n",
			i+1, r.ID, r.RestaurantID, r.Date, r.Time, r.PartySize, r.Status)
	}
	return strings.TrimRight(sb.String(), "\n")
}
