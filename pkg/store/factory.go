package store

// NewStores creates reservation and plan stores based on the DSN.
// - Empty DSN: in-memory stores (nothing survives a restart)
// - Anything else: SQLite at the specified path
func NewStores(dsn string) (ReservationStore, PlanStore, error) {
	if dsn == "" {
		return NewMemoryReservationStore(), NewMemoryPlanStore(), nil
	}
	return NewSQLiteStores(dsn)
}
