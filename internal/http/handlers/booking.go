package handlers

import (
	"net/http"
	"strconv"

	"travelapi/internal/services"

	"github.com/gin-gonic/gin"
)

// CreateBooking handles POST /api/book and echoes the stored booking. The
// response carries the assigned id as well, since GET /api/book/:id/ticket is
// addressed by it.
func (h *Handler) CreateBooking(c *gin.Context) {
	var in services.BookingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := h.bookings(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBookingTicket returns the booking ticket PDF inline.
func (h *Handler) GetBookingTicket(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_booking_id", "invalid booking id")
		return
	}

	pdfBytes, filename, err := h.docs(c).GenerateTicket(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
