package handlers

import (
	"database/sql"
	"time"

	intdb "travelapi/internal/db"
	"travelapi/internal/http/middleware"
	"travelapi/internal/mail"
	"travelapi/internal/repositories"
	"travelapi/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler carries the collaborators built at startup. Services are assembled
// per request so each one logs with the caller's request_id.
type Handler struct {
	DB          *sql.DB
	Dialect     intdb.Dialect
	DBTimeout   time.Duration
	Mailer      mail.Sender
	MailTimeout time.Duration
	ImagesDir   string
}

func (h *Handler) subscriptions(c *gin.Context) services.SubscriptionService {
	return services.SubscriptionService{
		Subscribers: repositories.SubscriberRepository{DB: h.DB, Dialect: h.Dialect},
		Mailer:      h.Mailer,
		DBTimeout:   h.DBTimeout,
		MailTimeout: h.MailTimeout,
		RequestID:   middleware.GetRequestID(c),
	}
}

func (h *Handler) bookings(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:  repositories.BookingRepository{DB: h.DB, Dialect: h.Dialect},
		DBTimeout: h.DBTimeout,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) destinations(c *gin.Context) services.DestinationService {
	return services.DestinationService{
		Destinations: repositories.DestinationRepository{DB: h.DB, Dialect: h.Dialect},
		DBTimeout:    h.DBTimeout,
		RequestID:    middleware.GetRequestID(c),
	}
}

func (h *Handler) docs(c *gin.Context) services.DocsService {
	return services.DocsService{
		Bookings:  h.bookings(c),
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) health() services.HealthService {
	return services.HealthService{DB: h.DB, Dialect: h.Dialect, DBTimeout: h.DBTimeout}
}
