package services

import (
	"context"
	"database/sql"
	"time"

	intdb "travelapi/internal/db"
)

// HealthService checks the datastore for /api/db-check.
type HealthService struct {
	DB        *sql.DB
	Dialect   intdb.Dialect
	DBTimeout time.Duration
}

// CheckDB pings the database and reports which owned tables exist.
func (s HealthService) CheckDB(ctx context.Context) (map[string]bool, error) {
	ctx, cancel := withTimeout(ctx, s.DBTimeout)
	defer cancel()

	if err := s.DB.PingContext(ctx); err != nil {
		return nil, err
	}
	tables := make(map[string]bool, len(intdb.Tables))
	for _, t := range intdb.Tables {
		tables[t] = intdb.HasTable(ctx, s.DB, s.Dialect, t)
	}
	return tables, nil
}
