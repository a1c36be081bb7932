package repositories

import (
	"context"
	"database/sql"
	"time"

	intdb "travelapi/internal/db"
	"travelapi/internal/domain/models"
)

type SubscriberRepository struct {
	DB      *sql.DB
	Dialect intdb.Dialect
}

// InsertIfAbsent adds the subscriber unless the email is already taken. It is a
// single conditional insert, so concurrent sign-ups for one address cannot
// both create rows. created is false when the email already existed.
func (r SubscriberRepository) InsertIfAbsent(ctx context.Context, s models.Subscriber) (bool, error) {
	if s.DateSubscribed.IsZero() {
		s.DateSubscribed = time.Now().UTC()
	}

	query := `
		INSERT INTO subscribers (name, budget, email, date_subscribed)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = id`
	if r.Dialect == intdb.Postgres {
		query = `
		INSERT INTO subscribers (name, budget, email, date_subscribed)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (email) DO NOTHING`
	}

	res, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query), s.Name, s.Budget, s.Email, s.DateSubscribed)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
