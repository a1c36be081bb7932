package db

import (
	"context"
	"database/sql"
	"fmt"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS subscribers (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		budget DOUBLE NOT NULL,
		email VARCHAR(120) NOT NULL,
		date_subscribed DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_subscribers_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		destination VARCHAR(100) NOT NULL,
		start_date VARCHAR(100) NOT NULL,
		end_date VARCHAR(100) NOT NULL,
		passengers INT NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS destinations (
		id VARCHAR(100) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		banner_image VARCHAR(200) NOT NULL,
		image VARCHAR(200) NOT NULL,
		teaser VARCHAR(500) NOT NULL,
		description TEXT NOT NULL,
		gallery_images TEXT NOT NULL,
		events TEXT NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS subscribers (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		budget DOUBLE PRECISION NOT NULL,
		email VARCHAR(120) NOT NULL UNIQUE,
		date_subscribed TIMESTAMP NOT NULL DEFAULT (NOW() AT TIME ZONE 'utc')
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		destination VARCHAR(100) NOT NULL,
		start_date VARCHAR(100) NOT NULL,
		end_date VARCHAR(100) NOT NULL,
		passengers INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS destinations (
		id VARCHAR(100) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		banner_image VARCHAR(200) NOT NULL,
		image VARCHAR(200) NOT NULL,
		teaser VARCHAR(500) NOT NULL,
		description TEXT NOT NULL,
		gallery_images TEXT NOT NULL,
		events TEXT NOT NULL
	)`,
}

// Tables lists every table EnsureSchema owns.
var Tables = []string{"subscribers", "bookings", "destinations"}

// EnsureSchema creates the three tables when they do not exist yet.
func EnsureSchema(ctx context.Context, conn *sql.DB, d Dialect) error {
	stmts := mysqlSchema
	if d == Postgres {
		stmts = postgresSchema
	}
	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HasTable looks the table up in information_schema for the current database.
func HasTable(ctx context.Context, q QueryRower, d Dialect, table string) bool {
	schemaExpr := "DATABASE()"
	if d == Postgres {
		schemaExpr = "current_schema()"
	}
	var name sql.NullString
	err := q.QueryRowContext(ctx, d.Rebind(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = `+schemaExpr+`
		  AND table_name = ?
		LIMIT 1
	`), table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}
