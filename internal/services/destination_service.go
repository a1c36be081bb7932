package services

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/repositories"
	"travelapi/internal/utils"
)

type DestinationService struct {
	Destinations repositories.DestinationRepository
	DBTimeout    time.Duration
	RequestID    string
}

// List returns the whole catalog ordered by id. Rows whose events cannot be
// decoded are logged and left out.
func (s DestinationService) List(ctx context.Context) ([]models.DestinationView, error) {
	dbCtx, cancel := withTimeout(ctx, s.DBTimeout)
	defer cancel()

	rows, err := s.Destinations.List(dbCtx)
	if err != nil {
		return nil, domain.InternalError{Msg: "list destinations", Err: err}
	}
	out := make([]models.DestinationView, 0, len(rows))
	for _, d := range rows {
		v, err := ToView(d)
		if err != nil {
			// One corrupt row must not hide the rest of the catalog.
			utils.LogEvent(s.RequestID, "destinations", "skip_row", err.Error())
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s DestinationService) Get(ctx context.Context, id string) (models.DestinationView, error) {
	dbCtx, cancel := withTimeout(ctx, s.DBTimeout)
	defer cancel()

	d, err := s.Destinations.GetByID(dbCtx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.DestinationView{}, err
		}
		return models.DestinationView{}, domain.InternalError{Msg: "load destination", Err: err}
	}
	return ToView(d)
}

// ToView shapes a stored destination for the API: the gallery string becomes
// an ordered list and the events blob is decoded as JSON.
func ToView(d models.Destination) (models.DestinationView, error) {
	events, err := DecodeEvents(d.Events)
	if err != nil {
		return models.DestinationView{}, domain.InternalError{Msg: "decode events of destination " + d.ID, Err: err}
	}
	return models.DestinationView{
		ID:            d.ID,
		Name:          d.Name,
		BannerImage:   d.BannerImage,
		Image:         d.Image,
		Teaser:        d.Teaser,
		Description:   d.Description,
		GalleryImages: utils.SplitCommaList(d.GalleryImages),
		Events:        events,
	}, nil
}

// DecodeEvents parses the stored events blob. Blank means no events.
func DecodeEvents(raw string) ([]models.Event, error) {
	b := bytes.TrimSpace([]byte(raw))
	if len(b) == 0 {
		return []models.Event{}, nil
	}
	events := []models.Event{}
	if err := json.Unmarshal(b, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// EncodeEvents is the inverse of DecodeEvents.
func EncodeEvents(events []models.Event) (string, error) {
	if events == nil {
		events = []models.Event{}
	}
	b, err := json.Marshal(events)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
