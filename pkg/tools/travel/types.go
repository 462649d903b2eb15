package travel

import (
	"github.com/h-ess/concierge-toolkit/pkg/store"
	"github.com/h-ess/concierge-toolkit/pkg/tools/booking"
)

// CreatePlanArgs are the details for the create_travel_plan tool.
type CreatePlanArgs struct {
	Title        string   `json:"title" jsonschema:"required,description=Short title for the trip."`
	Destinations []string `json:"destinations" jsonschema:"required,description=Cities or regions to visit, in order."`
	StartDate    string   `json:"startDate" jsonschema:"required,description=Trip start date in YYYY-MM-DD format."`
	EndDate      string   `json:"endDate" jsonschema:"required,description=Trip end date in YYYY-MM-DD format."`
	Travelers    int      `json:"travelers" jsonschema:"required,description=Number of travelers."`
	Budget       float64  `json:"budget,omitempty" jsonschema:"description=Total budget for the trip."`
}

// PlanResponse is shared by the plan tools.
type PlanResponse struct {
	Success bool              `json:"success"`
	Plan    *store.TravelPlan `json:"plan,omitempty"`
	Display string            `json:"display,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// GetPlanArgs identify the plan for the get_travel_plan tool.
type GetPlanArgs struct {
	PlanID string `json:"planId" jsonschema:"required,description=Id of the travel plan."`
}

// BookTripArgs drive the aggregate book_trip tool. Flight and hotel legs are
// both optional; at least one must be given.
type BookTripArgs struct {
	PlanID        string `json:"planId" jsonschema:"required,description=Id of the travel plan to book against."`
	FlightNumber  string `json:"flightNumber,omitempty" jsonschema:"description=Flight to book for the trip."`
	HotelID       string `json:"hotelId,omitempty" jsonschema:"description=Hotel to book for the trip."`
	TravelerName  string `json:"travelerName" jsonschema:"required,description=Full name of the lead traveler."`
	TravelerEmail string `json:"travelerEmail" jsonschema:"required,description=Email address for confirmations."`
}

// LegResult is the outcome of one booking leg within book_trip.
type LegResult struct {
	Leg          string                `json:"leg"`
	Success      bool                  `json:"success"`
	Confirmation *booking.Confirmation `json:"confirmation,omitempty"`
	Error        string                `json:"error,omitempty"`
}

// BookTripResponse reports the outcome of every attempted leg. Success means
// every leg succeeded; there is no rollback of completed legs when a later
// one fails.
type BookTripResponse struct {
	Success bool        `json:"success"`
	Legs    []LegResult `json:"legs,omitempty"`
	Display string      `json:"display,omitempty"`
	Error   string      `json:"error,omitempty"`
}
