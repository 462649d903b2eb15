// Package store persists reservations and travel plans. The original
// workshop kept these in a process-global slice that vanished on restart;
// here they live behind small store interfaces with a SQLite implementation
// for durability and an in-memory one for tests and quick demos.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyCancelled is returned when cancelling a reservation that is
// already cancelled. A second cancel is rejected rather than silently
// succeeding.
var ErrAlreadyCancelled = errors.New("reservation already cancelled")

// Reservation status values.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Reservation is a restaurant reservation held by a customer.
type Reservation struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurantId"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	PartySize       int       `json:"partySize"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone,omitempty"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// TravelPlan is an itinerary covering one or more destinations.
type TravelPlan struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Destinations []string `json:"destinations"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Travelers    int      `json:"travelers"`
	Budget       float64  `json:"budget,omitempty"`
	Status       string   `json:"status"`
	Flights      []string `json:"flights,omitempty"`
	Hotels       []string `json:"hotels,omitempty"`
}

// ReservationStore is the keyed reservation table. Cancel performs the status
// flip as a single transactional update so a reservation can only move from
// confirmed to cancelled once.
type ReservationStore interface {
	Create(ctx context.Context, r Reservation) error
	Get(ctx context.Context, id string) (Reservation, error)
	// List returns reservations for the given customer email, or all
	// reservations when email is empty, newest first.
	List(ctx context.Context, email string) ([]Reservation, error)
	// Cancel flips the reservation to cancelled and returns the updated row.
	// Returns ErrNotFound for unknown ids and ErrAlreadyCancelled when the
	// reservation was cancelled before.
	Cancel(ctx context.Context, id string) (Reservation, error)
	Close() error
}

// PlanStore persists travel plans.
type PlanStore interface {
	Save(ctx context.Context, p TravelPlan) error
	Get(ctx context.Context, id string) (TravelPlan, error)
	List(ctx context.Context) ([]TravelPlan, error)
	Close() error
}
