package hotels

import (
	providerhotels "github.com/h-ess/concierge-toolkit/pkg/providers/hotels"
	"github.com/h-ess/concierge-toolkit/pkg/tools/booking"
)

// SearchHotelsArgs are the filters for the search_hotels tool. MinRating and
// MaxPrice are applied locally; the provider API has no native support for
// them.
type SearchHotelsArgs struct {
	Location  string  `json:"location" jsonschema:"required,description=City or area to search in."`
	CheckIn   string  `json:"checkIn" jsonschema:"required,description=Check-in date in YYYY-MM-DD format."`
	CheckOut  string  `json:"checkOut" jsonschema:"required,description=Check-out date in YYYY-MM-DD format."`
	Guests    int     `json:"guests,omitempty" jsonschema:"description=Number of guests (default 2)."`
	MinRating float64 `json:"minRating,omitempty" jsonschema:"description=Minimum guest rating between 0 and 5."`
	MaxPrice  float64 `json:"maxPrice,omitempty" jsonschema:"description=Maximum price per night."`
}

// SearchHotelsResponse carries the matched hotels and a rendered listing.
type SearchHotelsResponse struct {
	Success bool                   `json:"success"`
	Hotels  []providerhotels.Hotel `json:"hotels,omitempty"`
	Display string                 `json:"display,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// BookHotelArgs are the guest details for the mocked book_hotel tool.
type BookHotelArgs struct {
	HotelID    string `json:"hotelId" jsonschema:"required,description=Hotel id from a previous search."`
	CheckIn    string `json:"checkIn" jsonschema:"required,description=Check-in date in YYYY-MM-DD format."`
	CheckOut   string `json:"checkOut" jsonschema:"required,description=Check-out date in YYYY-MM-DD format."`
	Guests     int    `json:"guests" jsonschema:"required,description=Number of guests."`
	GuestName  string `json:"guestName" jsonschema:"required,description=Full name of the lead guest."`
	GuestEmail string `json:"guestEmail" jsonschema:"required,description=Email address for the booking confirmation."`
}

// BookHotelResponse carries the fabricated confirmation.
type BookHotelResponse struct {
	Success      bool                  `json:"success"`
	Confirmation *booking.Confirmation `json:"confirmation,omitempty"`
	Display      string                `json:"display,omitempty"`
	Error        string                `json:"error,omitempty"`
}
