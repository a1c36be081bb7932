package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	intdb "travelapi/internal/db"
	"travelapi/internal/domain"
	"travelapi/internal/mail"
	"travelapi/internal/repositories"
	"travelapi/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newSubscriptionService(db *sql.DB, mailer mail.Sender) SubscriptionService {
	return SubscriptionService{
		Subscribers: repositories.SubscriberRepository{DB: db, Dialect: intdb.MySQL},
		Mailer:      mailer,
	}
}

func TestSubscribe_FreshEmailIsLowercasedAndConfirmed(t *testing.T) {
	db, mock := newMock(t)
	rec := &mail.Recorder{}
	svc := newSubscriptionService(db, rec)

	mock.ExpectExec("INSERT INTO subscribers").
		WithArgs("Ana", 1500.0, "ana@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := svc.Subscribe(context.Background(), SubscribeInput{Name: "Ana", Budget: 1500, Email: "  Ana@Example.COM "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !created {
		t.Fatalf("expected a new subscriber")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}

	sent := rec.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sent))
	}
	if sent[0].To != "ana@example.com" || sent[0].Subject != ConfirmationSubject {
		t.Fatalf("unexpected email %+v", sent[0])
	}
	if sent[0].Body != "Dear Ana,\n\nThank you for subscribing to our newsletter!" {
		t.Fatalf("unexpected body %q", sent[0].Body)
	}
}

func TestSubscribe_ExistingEmailStillConfirms(t *testing.T) {
	db, mock := newMock(t)
	rec := &mail.Recorder{}
	svc := newSubscriptionService(db, rec)

	mock.ExpectExec("INSERT INTO subscribers").
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := svc.Subscribe(context.Background(), SubscribeInput{Name: "Ana", Budget: 1500, Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created {
		t.Fatalf("existing email must not create a row")
	}
	if len(rec.Sent()) != 1 {
		t.Fatalf("confirmation must still be sent")
	}
}

func TestSubscribe_ValidationHappensBeforeWrite(t *testing.T) {
	cases := []struct {
		name string
		in   SubscribeInput
		msg  string
	}{
		{"missing name", SubscribeInput{Budget: 10, Email: "ana@example.com"}, utils.MsgMissingFields},
		{"blank name", SubscribeInput{Name: "   ", Budget: 10, Email: "ana@example.com"}, utils.MsgMissingFields},
		{"missing budget", SubscribeInput{Name: "Ana", Email: "ana@example.com"}, utils.MsgMissingFields},
		{"missing email", SubscribeInput{Name: "Ana", Budget: 10}, utils.MsgMissingFields},
		{"invalid email", SubscribeInput{Name: "Ana", Budget: 10, Email: "not-an-email"}, utils.MsgInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMock(t)
			rec := &mail.Recorder{}
			svc := newSubscriptionService(db, rec)

			_, err := svc.Subscribe(context.Background(), tc.in)
			var ve domain.ValidationError
			if !errors.As(err, &ve) || ve.Msg != tc.msg {
				t.Fatalf("expected validation error %q, got %v", tc.msg, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("no query expected: %v", err)
			}
			if len(rec.Sent()) != 0 {
				t.Fatalf("no email expected on invalid input")
			}
		})
	}
}

func TestSubscribe_MailFailureDoesNotFailRequest(t *testing.T) {
	db, mock := newMock(t)
	rec := &mail.Recorder{Err: errors.New("relay down")}
	svc := newSubscriptionService(db, rec)

	mock.ExpectExec("INSERT INTO subscribers").WillReturnResult(sqlmock.NewResult(3, 1))

	created, err := svc.Subscribe(context.Background(), SubscribeInput{Name: "Ana", Budget: 1, Email: "ana@example.com"})
	if err != nil || !created {
		t.Fatalf("mail failure must not fail subscription, created=%v err=%v", created, err)
	}
}

func TestSubscribe_DatabaseFailureIsInternal(t *testing.T) {
	db, mock := newMock(t)
	rec := &mail.Recorder{}
	svc := newSubscriptionService(db, rec)

	mock.ExpectExec("INSERT INTO subscribers").WillReturnError(sql.ErrConnDone)

	_, err := svc.Subscribe(context.Background(), SubscribeInput{Name: "Ana", Budget: 1, Email: "ana@example.com"})
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if len(rec.Sent()) != 0 {
		t.Fatalf("no confirmation when the write failed")
	}
}
