// Package restaurants implements restaurant discovery through Yelp and the
// reservation lifecycle against the reservation store.
package restaurants

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/h-ess/concierge-toolkit/pkg/logging"
	"github.com/h-ess/concierge-toolkit/pkg/providers/yelp"
	"github.com/h-ess/concierge-toolkit/pkg/store"
	"github.com/h-ess/concierge-toolkit/toolkit"
)

const defaultLimit = 10

// Service holds the Yelp client and the reservation store.
type Service struct {
	api          *yelp.Client
	reservations store.ReservationStore
}

// NewService builds the restaurant tools service.
func NewService(api *yelp.Client, reservations store.ReservationStore) *Service {
	return &Service{api: api, reservations: reservations}
}

// SearchRestaurants finds restaurants and applies the minimum-rating filter
// locally. Without an API key the provider client serves sample data.
func (s *Service) SearchRestaurants(ctx context.Context, args SearchRestaurantsArgs) (SearchRestaurantsResponse, error) {
	limit := args.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	var found []yelp.Restaurant
	if s.api.Configured() {
		var err error
		found, err = s.api.SearchRestaurants(ctx, yelp.SearchParams{
			Location: args.Location,
			Cuisine:  args.Cuisine,
			Price:    args.Price,
			OpenNow:  args.OpenNow,
			Limit:    limit,
		})
		if err != nil {
			logging.Error("restaurants: search failed", "location", args.Location, "err", err)
			return SearchRestaurantsResponse{Success: false, Error: "provider_error"},
				toolkit.NewError("provider_error", err.Error())
		}
	} else {
		logging.Warn("restaurants: no Yelp key configured, serving sample data")
		found = yelp.SampleRestaurants(args.Cuisine)
	}

	var filtered []yelp.Restaurant
	for _, r := range found {
		if args.MinRating > 0 && r.Rating < args.MinRating {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	return SearchRestaurantsResponse{
		Success:     true,
		Restaurants: filtered,
		Display:     FormatRestaurants(filtered),
	}, nil
}

// MakeReservation creates a confirmed reservation in the store. The id keeps
// the original timestamp-plus-suffix shape so it stays recognizable in
// workshop transcripts.
func (s *Service) MakeReservation(ctx context.Context, args MakeReservationArgs) (ReservationResponse, error) {
	if _, err := time.Parse("2006-01-02", args.Date); err != nil {
		return ReservationResponse{Success: false, Error: "invalid_date"},
			toolkit.NewError("invalid_arguments", fmt.Sprintf("date must be YYYY-MM-DD, got %q", args.Date))
	}
	if _, err := time.Parse("15:04", args.Time); err != nil {
		return ReservationResponse{Success: false, Error: "invalid_time"},
			toolkit.NewError("invalid_arguments", fmt.Sprintf("time must be HH:MM, got %q", args.Time))
	}
	if args.PartySize <= 0 {
		return ReservationResponse{Success: false, Error: "invalid_party_size"},
			toolkit.NewError("invalid_arguments", "partySize must be at least 1")
	}

	r := store.Reservation{
		ID:              newReservationID(),
		RestaurantID:    args.RestaurantID,
		Date:            args.Date,
		Time:            args.Time,
		PartySize:       args.PartySize,
		CustomerName:    args.CustomerName,
		CustomerEmail:   args.CustomerEmail,
		CustomerPhone:   args.CustomerPhone,
		Status:          store.StatusConfirmed,
		SpecialRequests: args.SpecialRequests,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.reservations.Create(ctx, r); err != nil {
		logging.Error("restaurants: store reservation", "id", r.ID, "err", err)
		return ReservationResponse{Success: false, Error: "store_error"},
			toolkit.NewError("store_error", err.Error())
	}

	logging.Info("restaurants: reservation created", "id", r.ID, "restaurant", r.RestaurantID)
	return ReservationResponse{
		Success:     true,
		Reservation: &r,
		Display:     FormatReservation(r),
	}, nil
}

// CancelReservation flips the reservation to cancelled. A second cancel of
// the same id is rejected, as is an unknown id.
func (s *Service) CancelReservation(ctx context.Context, args CancelReservationArgs) (ReservationResponse, error) {
	r, err := s.reservations.Cancel(ctx, args.ReservationID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ReservationResponse{Success: false, Error: "reservation_not_found"},
			toolkit.NewError("reservation_not_found", fmt.Sprintf("no reservation with id %q", args.ReservationID))
	case errors.Is(err, store.ErrAlreadyCancelled):
		return ReservationResponse{Success: false, Error: "already_cancelled"},
			toolkit.NewError("already_cancelled", fmt.Sprintf("reservation %q is already cancelled", args.ReservationID))
	case err != nil:
		logging.Error("restaurants: cancel reservation", "id", args.ReservationID, "err", err)
		return ReservationResponse{Success: false, Error: "store_error"},
			toolkit.NewError("store_error", err.Error())
	}

	logging.Info("restaurants: reservation cancelled", "id", r.ID)
	return ReservationResponse{
		Success:     true,
		Reservation: &r,
		Display:     FormatReservation(r),
	}, nil
}

// GetReservation looks up one reservation by id.
func (s *Service) GetReservation(ctx context.Context, args GetReservationArgs) (ReservationResponse, error) {
	r, err := s.reservations.Get(ctx, args.ReservationID)
	if errors.Is(err, store.ErrNotFound) {
		return ReservationResponse{Success: false, Error: "reservation_not_found"},
			toolkit.NewError("reservation_not_found", fmt.Sprintf("no reservation with id %q", args.ReservationID))
	}
	if err != nil {
		return ReservationResponse{Success: false, Error: "store_error"},
			toolkit.NewError("store_error", err.Error())
	}
	return ReservationResponse{
		Success:     true,
		Reservation: &r,
		Display:     FormatReservation(r),
	}, nil
}

// ListReservations returns reservations, optionally for one customer email.
func (s *Service) ListReservations(ctx context.Context, args ListReservationsArgs) (ListReservationsResponse, error) {
	rs, err := s.reservations.List(ctx, args.CustomerEmail)
	if err != nil {
		return ListReservationsResponse{Success: false, Error: "store_error"},
			toolkit.NewError("store_error", err.Error())
	}
	return ListReservationsResponse{
		Success:      true,
		Reservations: rs,
		Display:      FormatReservationList(rs),
	}, nil
}

func newReservationID() string {
	return fmt.Sprintf("RES-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}
