package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReservation(id string) Reservation {
	return Reservation{
		ID:            id,
		RestaurantID:  "yelp-abc123",
		Date:          "2025-07-04",
		Time:          "19:30",
		PartySize:     4,
		CustomerName:  "Dana Reed",
		CustomerEmail: "dana@example.com",
		Status:        StatusConfirmed,
		CreatedAt:     time.Now().Truncate(time.Millisecond),
	}
}

// Both implementations must satisfy the same behavior, so the reservation
// tests run against each.
func reservationStores(t *testing.T) map[string]ReservationStore {
	t.Helper()
	sqliteRes, _, err := NewSQLiteStores(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteRes.Close() })
	return map[string]ReservationStore{
		"memory": NewMemoryReservationStore(),
		"sqlite": sqliteRes,
	}
}

func TestReservationStore_CreateAndGet(t *testing.T) {
	for name, s := range reservationStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			r := sampleReservation("RES-1001-abc")
			require.NoError(t, s.Create(ctx, r))

			got, err := s.Get(ctx, r.ID)
			require.NoError(t, err)
			assert.Equal(t, r.ID, got.ID)
			assert.Equal(t, r.CustomerEmail, got.CustomerEmail)
			assert.Equal(t, StatusConfirmed, got.Status)
			assert.Equal(t, r.PartySize, got.PartySize)
		})
	}
}

func TestReservationStore_GetMissing(t *testing.T) {
	for name, s := range reservationStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(context.Background(), "RES-does-not-exist")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestReservationStore_Cancel(t *testing.T) {
	for name, s := range reservationStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			r := sampleReservation("RES-1002-def")
			require.NoError(t, s.Create(ctx, r))

			cancelled, err := s.Cancel(ctx, r.ID)
			require.NoError(t, err)
			assert.Equal(t, StatusCancelled, cancelled.Status)

			// The stored row reflects the flip.
			got, err := s.Get(ctx, r.ID)
			require.NoError(t, err)
			assert.Equal(t, StatusCancelled, got.Status)

			// A second cancel of the same id is rejected.
			_, err = s.Cancel(ctx, r.ID)
			assert.ErrorIs(t, err, ErrAlreadyCancelled)
		})
	}
}

func TestReservationStore_CancelMissing(t *testing.T) {
	for name, s := range reservationStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Cancel(context.Background(), "RES-nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestReservationStore_ListFiltersByEmail(t *testing.T) {
	for name, s := range reservationStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			r1 := sampleReservation("RES-2001-aaa")
			r2 := sampleReservation("RES-2002-bbb")
			r2.CustomerEmail = "other@example.com"
			require.NoError(t, s.Create(ctx, r1))
			require.NoError(t, s.Create(ctx, r2))

			all, err := s.List(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, 2)

			mine, err := s.List(ctx, "dana@example.com")
			require.NoError(t, err)
			require.Len(t, mine, 1)
			assert.Equal(t, "RES-2001-aaa", mine[0].ID)
		})
	}
}

func TestPlanStore_SaveAndGet(t *testing.T) {
	_, sqlitePlans, err := NewSQLiteStores(filepath.Join(t.TempDir(), "plans.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlitePlans.Close() })

	for name, s := range map[string]PlanStore{
		"memory": NewMemoryPlanStore(),
		"sqlite": sqlitePlans,
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := TravelPlan{
				ID:           "TP-3001",
				Title:        "Spring in Lisbon",
				Destinations: []string{"Lisbon", "Porto"},
				StartDate:    "2025-04-10",
				EndDate:      "2025-04-17",
				Travelers:    2,
				Budget:       2500,
				Status:       "planned",
			}
			require.NoError(t, s.Save(ctx, p))

			got, err := s.Get(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, p.Title, got.Title)
			assert.Equal(t, []string{"Lisbon", "Porto"}, got.Destinations)
			assert.Equal(t, 2500.0, got.Budget)

			_, err = s.Get(ctx, "TP-missing")
			assert.ErrorIs(t, err, ErrNotFound)

			// Save is an upsert.
			p.Status = "booked"
			p.Flights = []string{"FL-1234"}
			require.NoError(t, s.Save(ctx, p))
			got, err = s.Get(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, "booked", got.Status)
			assert.Equal(t, []string{"FL-1234"}, got.Flights)
		})
	}
}
