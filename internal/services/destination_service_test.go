package services

import (
	"context"
	"reflect"
	"testing"

	intdb "travelapi/internal/db"
	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var destinationCols = []string{"id", "name", "banner_image", "image", "teaser", "description", "gallery_images", "events"}

const baliEvents = `[{"name":"Nyepi","date":"2024-03-11","description":"Day of Silence"},{"name":"Galungan","date":"2024-02-28","description":"Temple festival"}]`

func TestDestinationList_ShapesGalleryAndEvents(t *testing.T) {
	db, mock := newMock(t)
	svc := DestinationService{Destinations: repositories.DestinationRepository{DB: db, Dialect: intdb.MySQL}}

	mock.ExpectQuery("FROM destinations").
		WillReturnRows(sqlmock.NewRows(destinationCols).
			AddRow("bali", "Bali", "bali-banner.jpg", "bali.jpg", "Island", "Long", "a.jpg,b.jpg", baliEvents).
			AddRow("oslo", "Oslo", "oslo-banner.jpg", "oslo.jpg", "Fjords", "Long", "", ""))

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 destinations, got %d", len(list))
	}
	if !reflect.DeepEqual(list[0].GalleryImages, []string{"a.jpg", "b.jpg"}) {
		t.Fatalf("gallery order lost: %#v", list[0].GalleryImages)
	}
	want := []models.Event{
		{Name: "Nyepi", Date: "2024-03-11", Description: "Day of Silence"},
		{Name: "Galungan", Date: "2024-02-28", Description: "Temple festival"},
	}
	if !reflect.DeepEqual(list[0].Events, want) {
		t.Fatalf("events not decoded: %#v", list[0].Events)
	}
	if len(list[1].GalleryImages) != 0 || len(list[1].Events) != 0 || list[1].Events == nil {
		t.Fatalf("empty fields should become empty lists: %+v", list[1])
	}
}

func TestDestinationList_SkipsCorruptRow(t *testing.T) {
	db, mock := newMock(t)
	svc := DestinationService{Destinations: repositories.DestinationRepository{DB: db, Dialect: intdb.MySQL}}

	mock.ExpectQuery("FROM destinations").
		WillReturnRows(sqlmock.NewRows(destinationCols).
			AddRow("bali", "Bali", "b.jpg", "i.jpg", "t", "d", "a.jpg", `{"name":"Nyepi"}`).
			AddRow("oslo", "Oslo", "o.jpg", "o.jpg", "t", "d", "", baliEvents))

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 1 || list[0].ID != "oslo" {
		t.Fatalf("expected only oslo, got %+v", list)
	}
}

func TestDestinationGet_NotFound(t *testing.T) {
	db, mock := newMock(t)
	svc := DestinationService{Destinations: repositories.DestinationRepository{DB: db, Dialect: intdb.MySQL}}

	mock.ExpectQuery("FROM destinations WHERE id").WithArgs("atlantis").
		WillReturnRows(sqlmock.NewRows(destinationCols))

	if _, err := svc.Get(context.Background(), "atlantis"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDestinationGet_CorruptEventsIsInternal(t *testing.T) {
	db, mock := newMock(t)
	svc := DestinationService{Destinations: repositories.DestinationRepository{DB: db, Dialect: intdb.MySQL}}

	// Non-JSON blobs are rejected, never evaluated.
	mock.ExpectQuery("FROM destinations WHERE id").WithArgs("bali").
		WillReturnRows(sqlmock.NewRows(destinationCols).
			AddRow("bali", "Bali", "b.jpg", "i.jpg", "t", "d", "a.jpg", `[{'name': __import__('os').getcwd()}]`))

	if _, err := svc.Get(context.Background(), "bali"); !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestEncodeDecodeEvents(t *testing.T) {
	events := []models.Event{{Name: "Gion Matsuri", Date: "2024-07-17", Description: "Parade"}}
	raw, err := EncodeEvents(events)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := DecodeEvents(raw)
	if err != nil || !reflect.DeepEqual(back, events) {
		t.Fatalf("decode mismatch: %#v err=%v", back, err)
	}
	if raw, _ := EncodeEvents(nil); raw != "[]" {
		t.Fatalf("nil events should encode as [], got %s", raw)
	}
	if ev, err := DecodeEvents("null"); err != nil || ev == nil || len(ev) != 0 {
		t.Fatalf("null should decode to empty list, got %#v err=%v", ev, err)
	}
}
