package repositories

import (
	"context"
	"database/sql"
	"errors"

	intdb "travelapi/internal/db"
	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
)

type BookingRepository struct {
	DB      *sql.DB
	Dialect intdb.Dialect
}

// Create inserts the booking and returns it with the assigned id.
func (r BookingRepository) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	const insert = `
		INSERT INTO bookings (name, destination, start_date, end_date, passengers)
		VALUES (?, ?, ?, ?, ?)`
	args := []any{b.Name, b.Destination, b.StartDate, b.EndDate, b.Passengers}

	// lib/pq has no LastInsertId.
	if r.Dialect == intdb.Postgres {
		if err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(insert+" RETURNING id"), args...).Scan(&b.ID); err != nil {
			return models.Booking{}, err
		}
		return b, nil
	}

	res, err := r.DB.ExecContext(ctx, insert, args...)
	if err != nil {
		return models.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}
	b.ID = id
	return b, nil
}

func (r BookingRepository) GetByID(ctx context.Context, id int64) (models.Booking, error) {
	var b models.Booking
	err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(`
		SELECT id, name, destination, start_date, end_date, passengers
		FROM bookings
		WHERE id = ?`), id).Scan(&b.ID, &b.Name, &b.Destination, &b.StartDate, &b.EndDate, &b.Passengers)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}
