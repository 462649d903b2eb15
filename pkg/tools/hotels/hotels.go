// Package hotels implements the hotel use case: search with local
// rating/price filtering and a mocked booking.
package hotels

import (
	"context"
	"fmt"
	"time"

	"github.com/h-ess/concierge-toolkit/pkg/logging"
	providerhotels "github.com/h-ess/concierge-toolkit/pkg/providers/hotels"
	"github.com/h-ess/concierge-toolkit/pkg/tools/booking"
	"github.com/h-ess/concierge-toolkit/toolkit"
)

// Service holds the provider client the hotel tools need.
type Service struct {
	api *providerhotels.Client
}

// NewService builds the hotel tools service.
func NewService(api *providerhotels.Client) *Service {
	return &Service{api: api}
}

// SearchHotels finds hotels for the stay, then applies the rating and price
// filters the provider cannot. Without an API key the provider client serves
// sample data instead.
func (s *Service) SearchHotels(ctx context.Context, args SearchHotelsArgs) (SearchHotelsResponse, error) {
	if err := validateStay(args.CheckIn, args.CheckOut); err != nil {
		return SearchHotelsResponse{Success: false, Error: "invalid_dates"}, err
	}
	guests := args.Guests
	if guests <= 0 {
		guests = 2
	}

	var found []providerhotels.Hotel
	if s.api.Configured() {
		var err error
		found, err = s.api.SearchHotels(ctx, providerhotels.SearchParams{
			Location: args.Location,
			CheckIn:  args.CheckIn,
			CheckOut: args.CheckOut,
			Guests:   guests,
		})
		if err != nil {
			logging.Error("hotels: search failed", "location", args.Location, "err", err)
			return SearchHotelsResponse{Success: false, Error: "provider_error"},
				toolkit.NewError("provider_error", err.Error())
		}
	} else {
		logging.Warn("hotels: no RapidAPI key configured, serving sample data")
		found = providerhotels.SampleHotels(args.Location)
	}

	filtered := filterHotels(found, args.MinRating, args.MaxPrice)
	return SearchHotelsResponse{
		Success: true,
		Hotels:  filtered,
		Display: FormatHotels(filtered),
	}, nil
}

// BookHotel performs the mocked booking.
func (s *Service) BookHotel(ctx context.Context, args BookHotelArgs) (BookHotelResponse, error) {
	if err := validateStay(args.CheckIn, args.CheckOut); err != nil {
		return BookHotelResponse{Success: false, Error: "invalid_dates"}, err
	}

	item := fmt.Sprintf("hotel %s, %s to %s", args.HotelID, args.CheckIn, args.CheckOut)
	conf, err := booking.Confirm("HT", item, args.GuestName)
	if err != nil {
		logging.Warn("hotels: mock booking rejected", "hotel", args.HotelID)
		return BookHotelResponse{Success: false, Error: "booking_failed"},
			toolkit.NewError("booking_failed", err.Error())
	}

	return BookHotelResponse{
		Success:      true,
		Confirmation: &conf,
		Display:      FormatBooking(conf, args.Guests),
	}, nil
}

func validateStay(checkIn, checkOut string) error {
	in, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return toolkit.NewError("invalid_arguments", fmt.Sprintf("checkIn must be YYYY-MM-DD, got %q", checkIn))
	}
	out, err := time.Parse("2006-01-02", checkOut)
	if err != nil {
		return toolkit.NewError("invalid_arguments", fmt.Sprintf("checkOut must be YYYY-MM-DD, got %q", checkOut))
	}
	if !out.After(in) {
		return toolkit.NewError("invalid_arguments", "checkOut must be after checkIn")
	}
	return nil
}

func filterHotels(hotels []providerhotels.Hotel, minRating, maxPrice float64) []providerhotels.Hotel {
	var out []providerhotels.Hotel
	for _, h := range hotels {
		if minRating > 0 && h.Rating < minRating {
			continue
		}
		if maxPrice > 0 && h.PricePerNight > maxPrice {
			continue
		}
		out = append(out, h)
	}
	return out
}
