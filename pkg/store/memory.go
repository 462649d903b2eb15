package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryReservationStore keeps reservations in a mutex-guarded map. Used for
// tests and for running the workshop without a database file.
type MemoryReservationStore struct {
	mu           sync.Mutex
	reservations map[string]Reservation
}

// NewMemoryReservationStore returns an empty in-memory reservation store.
func NewMemoryReservationStore() *MemoryReservationStore {
	return &MemoryReservationStore{reservations: make(map[string]Reservation)}
}

func (s *MemoryReservationStore) Create(ctx context.Context, r Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID] = r
	return nil
}

func (s *MemoryReservationStore) Get(ctx context.Context, id string) (Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return Reservation{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryReservationStore) List(ctx context.Context, email string) ([]Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Reservation
	for _, r := range s.reservations {
		if email == "" || r.CustomerEmail == email {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryReservationStore) Cancel(ctx context.Context, id string) (Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return Reservation{}, ErrNotFound
	}
	if r.Status == StatusCancelled {
		return Reservation{}, ErrAlreadyCancelled
	}
	r.Status = StatusCancelled
	s.reservations[id] = r
	return r, nil
}

func (s *MemoryReservationStore) Close() error { return nil }

// MemoryPlanStore keeps travel plans in a mutex-guarded map.
type MemoryPlanStore struct {
	mu    sync.Mutex
	plans map[string]TravelPlan
}

// NewMemoryPlanStore returns an empty in-memory plan store.
func NewMemoryPlanStore() *MemoryPlanStore {
	return &MemoryPlanStore{plans: make(map[string]TravelPlan)}
}

func (s *MemoryPlanStore) Save(ctx context.Context, p TravelPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[p.ID] = p
	return nil
}

func (s *MemoryPlanStore) Get(ctx context.Context, id string) (TravelPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[id]
	if !ok {
		return TravelPlan{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryPlanStore) List(ctx context.Context) ([]TravelPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TravelPlan, 0, len(s.plans))
	for _, p := range s.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

func (s *MemoryPlanStore) Close() error { return nil }
