package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/h-ess/concierge-toolkit/pkg/store/migrations"
)

// SQLiteReservationStore implements ReservationStore on SQLite.
type SQLiteReservationStore struct {
	db *sql.DB
}

// SQLitePlanStore implements PlanStore on SQLite.
type SQLitePlanStore struct {
	db *sql.DB
}

// NewSQLiteStores opens (creating if needed) the SQLite database at path and
// returns reservation and plan stores sharing the connection.
func NewSQLiteStores(path string) (ReservationStore, PlanStore, error) {
	if path == "" {
		path = "data/concierge.db"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteReservationStore{db: db}, &SQLitePlanStore{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	data, err := migrations.SQLite.ReadFile("sqlite/001_init.sql")
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := db.Exec(string(data)); err != nil {
		return fmt.Errorf("exec migration: %w", err)
	}
	return nil
}

// --- ReservationStore ---

func (s *SQLiteReservationStore) Create(ctx context.Context, r Reservation) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reservations (
			id, restaurant_id, date, time, party_size, customer_name,
			customer_email, customer_phone, status, special_requests, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.RestaurantID, r.Date, r.Time, r.PartySize, r.CustomerName,
		r.CustomerEmail, r.CustomerPhone, r.Status, r.SpecialRequests,
		r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (s *SQLiteReservationStore) Get(ctx context.Context, id string) (Reservation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, restaurant_id, date, time, party_size, customer_name,
			   customer_email, customer_phone, status, special_requests, created_at
		FROM reservations WHERE id = ?`, id)
	return scanReservation(row)
}

func (s *SQLiteReservationStore) List(ctx context.Context, email string) ([]Reservation, error) {
	query := `
		SELECT id, restaurant_id, date, time, party_size, customer_name,
			   customer_email, customer_phone, status, special_requests, created_at
		FROM reservations`
	args := []interface{}{}
	if email != "" {
		query += ` WHERE customer_email = ?`
		args = append(args, email)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	var out []Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Cancel flips the status inside a transaction so concurrent cancels of the
// same id cannot both succeed.
func (s *SQLiteReservationStore) Cancel(ctx context.Context, id string) (Reservation, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Reservation{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE reservations SET status = ? WHERE id = ? AND status != ?`,
		StatusCancelled, id, StatusCancelled)
	if err != nil {
		return Reservation{}, fmt.Errorf("update reservation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Reservation{}, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		var status string
		err := tx.QueryRowContext(ctx, `SELECT status FROM reservations WHERE id = ?`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return Reservation{}, ErrNotFound
		}
		if err != nil {
			return Reservation{}, fmt.Errorf("query reservation status: %w", err)
		}
		return Reservation{}, ErrAlreadyCancelled
	}

	row := tx.QueryRowContext(ctx, `
		SELECT id, restaurant_id, date, time, party_size, customer_name,
			   customer_email, customer_phone, status, special_requests, created_at
		FROM reservations WHERE id = ?`, id)
	r, err := scanReservation(row)
	if err != nil {
		return Reservation{}, err
	}

	if err := tx.Commit(); err != nil {
		return Reservation{}, fmt.Errorf("commit: %w", err)
	}
	return r, nil
}

func (s *SQLiteReservationStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (Reservation, error) {
	var r Reservation
	var createdAt int64
	err := row.Scan(
		&r.ID, &r.RestaurantID, &r.Date, &r.Time, &r.PartySize, &r.CustomerName,
		&r.CustomerEmail, &r.CustomerPhone, &r.Status, &r.SpecialRequests, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r, ErrNotFound
	}
	if err != nil {
		return r, fmt.Errorf("scan reservation: %w", err)
	}
	r.CreatedAt = time.UnixMilli(createdAt)
	return r, nil
}

// --- PlanStore ---

func (s *SQLitePlanStore) Save(ctx context.Context, p TravelPlan) error {
	destinations, err := json.Marshal(p.Destinations)
	if err != nil {
		return fmt.Errorf("marshal destinations: %w", err)
	}
	flights, err := json.Marshal(p.Flights)
	if err != nil {
		return fmt.Errorf("marshal flights: %w", err)
	}
	hotels, err := json.Marshal(p.Hotels)
	if err != nil {
		return fmt.Errorf("marshal hotels: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO travel_plans (
			id, title, destinations, start_date, end_date, travelers,
			budget, status, flights, hotels
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, string(destinations), p.StartDate, p.EndDate, p.Travelers,
		p.Budget, p.Status, string(flights), string(hotels),
	)
	if err != nil {
		return fmt.Errorf("insert travel plan: %w", err)
	}
	return nil
}

func (s *SQLitePlanStore) Get(ctx context.Context, id string) (TravelPlan, error) {
	var p TravelPlan
	var destinations, flights, hotels string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, destinations, start_date, end_date, travelers,
			   budget, status, flights, hotels
		FROM travel_plans WHERE id = ?`, id).Scan(
		&p.ID, &p.Title, &destinations, &p.StartDate, &p.EndDate, &p.Travelers,
		&p.Budget, &p.Status, &flights, &hotels,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	if err != nil {
		return p, fmt.Errorf("query travel plan: %w", err)
	}

	if err := json.Unmarshal([]byte(destinations), &p.Destinations); err != nil {
		return p, fmt.Errorf("unmarshal destinations: %w", err)
	}
	if err := json.Unmarshal([]byte(flights), &p.Flights); err != nil {
		return p, fmt.Errorf("unmarshal flights: %w", err)
	}
	if err := json.Unmarshal([]byte(hotels), &p.Hotels); err != nil {
		return p, fmt.Errorf("unmarshal hotels: %w", err)
	}
	return p, nil
}

func (s *SQLitePlanStore) List(ctx context.Context) ([]TravelPlan, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, destinations, start_date, end_date, travelers,
			   budget, status, flights, hotels
		FROM travel_plans ORDER BY start_date`)
	if err != nil {
		return nil, fmt.Errorf("query travel plans: %w", err)
	}
	defer rows.Close()

	var plans []TravelPlan
	for rows.Next() {
		var p TravelPlan
		var destinations, flights, hotels string
		if err := rows.Scan(
			&p.ID, &p.Title, &destinations, &p.StartDate, &p.EndDate, &p.Travelers,
			&p.Budget, &p.Status, &flights, &hotels,
		); err != nil {
			return nil, fmt.Errorf("scan travel plan: %w", err)
		}
		if err := json.Unmarshal([]byte(destinations), &p.Destinations); err != nil {
			return nil, fmt.Errorf("unmarshal destinations: %w", err)
		}
		if err := json.Unmarshal([]byte(flights), &p.Flights); err != nil {
			return nil, fmt.Errorf("unmarshal flights: %w", err)
		}
		if err := json.Unmarshal([]byte(hotels), &p.Hotels); err != nil {
			return nil, fmt.Errorf("unmarshal hotels: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (s *SQLitePlanStore) Close() error {
	return s.db.Close()
}
