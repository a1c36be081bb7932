package services

import (
	"context"
	"fmt"
	"time"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/repositories"
	"travelapi/internal/utils"
)

// BookingInput is the POST /api/book payload. Dates are kept as opaque text
// whatever JSON scalar they arrive as; passengers may be a number or a numeric
// string.
type BookingInput struct {
	Name        string    `json:"name" validate:"required"`
	Destination string    `json:"destination" validate:"required"`
	StartDate   Stringish `json:"startDate" validate:"required"`
	EndDate     Stringish `json:"endDate" validate:"required"`
	Passengers  Intish    `json:"passengers" validate:"required"`
}

type BookingService struct {
	Bookings  repositories.BookingRepository
	DBTimeout time.Duration
	RequestID string
}

func (s BookingService) Create(ctx context.Context, in BookingInput) (models.Booking, error) {
	in.Name = utils.TrimOrEmpty(in.Name)
	in.Destination = utils.TrimOrEmpty(in.Destination)
	in.StartDate = Stringish(utils.TrimOrEmpty(in.StartDate.String()))
	in.EndDate = Stringish(utils.TrimOrEmpty(in.EndDate.String()))
	if err := utils.ValidateRequest(in); err != nil {
		return models.Booking{}, err
	}

	dbCtx, cancel := withTimeout(ctx, s.DBTimeout)
	defer cancel()

	b, err := s.Bookings.Create(dbCtx, models.Booking{
		Name:        in.Name,
		Destination: in.Destination,
		StartDate:   in.StartDate.String(),
		EndDate:     in.EndDate.String(),
		Passengers:  int(in.Passengers),
	})
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "insert booking", Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("booking_id=%d destination=%q passengers=%d", b.ID, b.Destination, b.Passengers))
	return b, nil
}

func (s BookingService) Get(ctx context.Context, id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}
	dbCtx, cancel := withTimeout(ctx, s.DBTimeout)
	defer cancel()

	b, err := s.Bookings.GetByID(dbCtx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, domain.InternalError{Msg: "load booking", Err: err}
	}
	return b, nil
}
