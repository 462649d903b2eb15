package restaurants

import (
	"github.com/h-ess/concierge-toolkit/pkg/providers/yelp"
	"github.com/h-ess/concierge-toolkit/pkg/store"
)

// SearchRestaurantsArgs are the filters for the search_restaurants tool.
// MinRating is applied locally; Yelp has no native support for it.
type SearchRestaurantsArgs struct {
	Location  string  `json:"location" jsonschema:"required,description=City or neighborhood to search in."`
	Cuisine   string  `json:"cuisine,omitempty" jsonschema:"description=Cuisine or dish to search for."`
	MinRating float64 `json:"minRating,omitempty" jsonschema:"description=Minimum rating between 0 and 5."`
	Price     string  `json:"price,omitempty" jsonschema:"description=Price tier,enum=1,enum=2,enum=3,enum=4"`
	OpenNow   bool    `json:"openNow,omitempty" jsonschema:"description=Only include restaurants open right now."`
	Limit     int     `json:"limit,omitempty" jsonschema:"description=Maximum number of results (default 10)."`
}

// SearchRestaurantsResponse carries the matched restaurants and a rendered
// listing.
type SearchRestaurantsResponse struct {
	Success     bool              `json:"success"`
	Restaurants []yelp.Restaurant `json:"restaurants,omitempty"`
	Display     string            `json:"display,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// MakeReservationArgs are the details for the make_reservation tool.
type MakeReservationArgs struct {
	RestaurantID    string `json:"restaurantId" jsonschema:"required,description=Restaurant id from a previous search."`
	Date            string `json:"date" jsonschema:"required,description=Reservation date in YYYY-MM-DD format."`
	Time            string `json:"time" jsonschema:"required,description=Reservation time in HH:MM 24-hour format."`
	PartySize       int    `json:"partySize" jsonschema:"required,description=Number of people in the party."`
	CustomerName    string `json:"customerName" jsonschema:"required,description=Full name for the reservation."`
	CustomerEmail   string `json:"customerEmail" jsonschema:"required,description=Email address for confirmation."`
	CustomerPhone   string `json:"customerPhone,omitempty" jsonschema:"description=Contact phone number."`
	SpecialRequests string `json:"specialRequests,omitempty" jsonschema:"description=Dietary needs or seating preferences."`
}

// ReservationResponse is shared by the reservation tools: it carries the
// affected reservation and a rendered confirmation block.
type ReservationResponse struct {
	Success     bool               `json:"success"`
	Reservation *store.Reservation `json:"reservation,omitempty"`
	Display     string             `json:"display,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// CancelReservationArgs identify the reservation for the cancel tool.
type CancelReservationArgs struct {
	ReservationID string `json:"reservationId" jsonschema:"required,description=Id of the reservation to cancel."`
}

// GetReservationArgs identify the reservation for the lookup tool.
type GetReservationArgs struct {
	ReservationID string `json:"reservationId" jsonschema:"required,description=Id of the reservation to look up."`
}

// ListReservationsArgs optionally restrict the listing to one customer.
type ListReservationsArgs struct {
	CustomerEmail string `json:"customerEmail,omitempty" jsonschema:"description=Only list reservations for this email."`
}

// ListReservationsResponse carries the matching reservations.
type ListReservationsResponse struct {
	Success      bool                `json:"success"`
	Reservations []store.Reservation `json:"reservations,omitempty"`
	Display      string              `json:"display,omitempty"`
	Error        string              `json:"error,omitempty"`
}
