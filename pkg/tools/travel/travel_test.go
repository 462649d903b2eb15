package travel

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h-ess/concierge-toolkit/pkg/providers/gcal"
	"github.com/h-ess/concierge-toolkit/pkg/store"
	"github.com/h-ess/concierge-toolkit/toolkit"
)

func newTestService() *Service {
	return NewService(store.NewMemoryPlanStore(), gcal.NewClient("", ""))
}

func validPlanArgs() CreatePlanArgs {
	return CreatePlanArgs{
		Title:        "Spring in Japan",
		Destinations: []string{"Tokyo", "Kyoto"},
		StartDate:    "2025-04-01",
		EndDate:      "2025-04-14",
		Travelers:    2,
		Budget:       6000,
	}
}

func TestCreateTravelPlan_Persisted(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	resp, err := s.CreateTravelPlan(ctx, validPlanArgs())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Plan)
	assert.True(t, strings.HasPrefix(resp.Plan.ID, "TP-"))
	assert.Equal(t, "draft", resp.Plan.Status)
	assert.Contains(t, resp.Display, "Tokyo")

	// The plan is durable, not discarded after the response.
	got, err := s.GetTravelPlan(ctx, GetPlanArgs{PlanID: resp.Plan.ID})
	require.NoError(t, err)
	assert.Equal(t, resp.Plan.Title, got.Plan.Title)
	assert.Equal(t, resp.Plan.Destinations, got.Plan.Destinations)
}

func TestCreateTravelPlan_RejectsMalformedInput(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name   string
		mutate func(*CreatePlanArgs)
	}{
		{name: "bad start date", mutate: func(a *CreatePlanArgs) { a.StartDate = "April 1st" }},
		{name: "bad end date", mutate: func(a *CreatePlanArgs) { a.EndDate = "2025/04/14" }},
		{name: "end before start", mutate: func(a *CreatePlanArgs) { a.EndDate = "2025-03-01" }},
		{name: "no destinations", mutate: func(a *CreatePlanArgs) { a.Destinations = nil }},
		{name: "zero travelers", mutate: func(a *CreatePlanArgs) { a.Travelers = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := validPlanArgs()
			tc.mutate(&args)
			_, err := s.CreateTravelPlan(context.Background(), args)
			require.Error(t, err)
			var tkErr toolkit.ToolKitError
			require.ErrorAs(t, err, &tkErr)
			assert.Equal(t, "invalid_arguments", tkErr.Code)
		})
	}
}

func TestGetTravelPlan_UnknownIDServesSample(t *testing.T) {
	s := newTestService()
	resp, err := s.GetTravelPlan(context.Background(), GetPlanArgs{PlanID: "TP-UNKNOWN"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Plan)
	assert.Equal(t, "TP-UNKNOWN", resp.Plan.ID)
	assert.NotEmpty(t, resp.Plan.Destinations)
}

func TestBookTrip_RequiresALeg(t *testing.T) {
	s := newTestService()
	_, err := s.BookTrip(context.Background(), BookTripArgs{
		PlanID:        "TP-X",
		TravelerName:  "Dana Reed",
		TravelerEmail: "dana@example.com",
	})
	require.Error(t, err)
	var tkErr toolkit.ToolKitError
	require.ErrorAs(t, err, &tkErr)
	assert.Equal(t, "invalid_arguments", tkErr.Code)
}

func TestBookTrip_UnknownPlan(t *testing.T) {
	s := newTestService()
	_, err := s.BookTrip(context.Background(), BookTripArgs{
		PlanID:       "TP-NOPE",
		FlightNumber: "AA100",
		TravelerName: "Dana Reed",
	})
	require.Error(t, err)
	var tkErr toolkit.ToolKitError
	require.ErrorAs(t, err, &tkErr)
	assert.Equal(t, "plan_not_found", tkErr.Code)
}

func TestBookTrip_BooksBothLegs(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	created, err := s.CreateTravelPlan(ctx, validPlanArgs())
	require.NoError(t, err)
	planID := created.Plan.ID

	// Booking is randomized; retry until both mocked legs confirm.
	var resp BookTripResponse
	for i := 0; i < 30; i++ {
		resp, err = s.BookTrip(ctx, BookTripArgs{
			PlanID:       planID,
			FlightNumber: "AA100",
			HotelID:      "sample-grand-plaza",
			TravelerName: "Dana Reed",
		})
		if err == nil && resp.Success {
			break
		}
	}
	require.True(t, resp.Success, "booking never succeeded after retries")
	require.Len(t, resp.Legs, 2)
	assert.Equal(t, "flight", resp.Legs[0].Leg)
	assert.Equal(t, "hotel", resp.Legs[1].Leg)
	for _, leg := range resp.Legs {
		require.NotNil(t, leg.Confirmation)
		assert.Equal(t, "confirmed", leg.Confirmation.Status)
	}

	got, err := s.GetTravelPlan(ctx, GetPlanArgs{PlanID: planID})
	require.NoError(t, err)
	assert.Equal(t, "booked", got.Plan.Status)
	assert.Contains(t, got.Plan.Flights, "AA100")
	assert.Contains(t, got.Plan.Hotels, "sample-grand-plaza")
}

func TestFormatPlan_PureAndTotal(t *testing.T) {
	out := FormatPlan(store.TravelPlan{})
	assert.Contains(t, out, "(untitled trip)")
	assert.Equal(t, out, FormatPlan(store.TravelPlan{}))

	full := SamplePlan("TP-1")
	rendered := FormatPlan(full)
	assert.Contains(t, rendered, "Paris")
	assert.Contains(t, rendered, "$5000.00")
}
