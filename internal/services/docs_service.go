package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"travelapi/internal/domain/models"
	"travelapi/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking documents.
type DocsService struct {
	Bookings  BookingService
	RequestID string
	Loader    func(context.Context, int64) (models.Booking, error)
	Now       func() time.Time
}

// GenerateTicket returns a one-page PDF ticket and its file name.
func (s DocsService) GenerateTicket(ctx context.Context, bookingID int64) ([]byte, string, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_ticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildTicketPDF(b, s.now())
}

func (s DocsService) load(ctx context.Context, id int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return s.Bookings.Get(ctx, id)
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func buildTicketPDF(b models.Booking, issued time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING TICKET")
	pdf.Ln(12)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking code : %s", bookingCode(b.ID)),
		fmt.Sprintf("Traveler     : %s", safe(b.Name, "-")),
		fmt.Sprintf("Destination  : %s", safe(b.Destination, "-")),
		fmt.Sprintf("From         : %s", safe(b.StartDate, "-")),
		fmt.Sprintf("Until        : %s", safe(b.EndDate, "-")),
		fmt.Sprintf("Passengers   : %d", b.Passengers),
		fmt.Sprintf("Issued       : %s", issued.Format("2006-01-02 15:04")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, tr(l))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please keep this ticket and present it at check-in.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("TICKET_%s_%s.pdf", bookingCode(b.ID), safeFilenamePart(b.Name))
	return buf.Bytes(), filename, nil
}

func bookingCode(id int64) string {
	return fmt.Sprintf("BKG-%d", id)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
