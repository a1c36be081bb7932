package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	intdb "travelapi/internal/db"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

// OpenDB opens the datastore named by DATABASE_URL, tunes the pool and pings it.
func OpenDB(env Env) (*sql.DB, intdb.Dialect, error) {
	dialect := intdb.DialectFor(env.DatabaseURL)

	conn, err := sql.Open(dialect.DriverName(), env.DatabaseURL)
	if err != nil {
		return nil, dialect, fmt.Errorf("open %s: %w", dialect, err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(25)
	conn.SetConnMaxLifetime(10 * time.Minute)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), env.DBTimeout)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, dialect, fmt.Errorf("ping %s: %w", dialect, err)
	}

	log.Printf("[DB] connected dialect=%s", dialect)
	return conn, dialect, nil
}
