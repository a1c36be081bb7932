package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/mail"
	"travelapi/internal/repositories"
	"travelapi/internal/utils"
)

const (
	ConfirmationSubject = "Subscription Confirmation"
	confirmationBody    = "Dear %s,\n\nThank you for subscribing to our newsletter!"
)

// SubscribeInput is the POST /api/subscribe payload.
type SubscribeInput struct {
	Name   string  `json:"name" validate:"required"`
	Budget float64 `json:"budget" validate:"required"`
	Email  string  `json:"email" validate:"required,email"`
}

type SubscriptionService struct {
	Subscribers repositories.SubscriberRepository
	Mailer      mail.Sender
	DBTimeout   time.Duration
	MailTimeout time.Duration
	RequestID   string
}

// Subscribe registers the address once and always sends the confirmation
// email. Mail is best-effort: a failed send is logged and does not undo or fail
// the subscription. created reports whether a new row was written.
func (s SubscriptionService) Subscribe(ctx context.Context, in SubscribeInput) (bool, error) {
	in.Name = utils.TrimOrEmpty(in.Name)
	in.Email = utils.TrimOrEmpty(in.Email)
	if err := utils.ValidateRequest(in); err != nil {
		return false, err
	}
	email := strings.ToLower(in.Email)

	dbCtx, cancel := withTimeout(ctx, s.DBTimeout)
	created, err := s.Subscribers.InsertIfAbsent(dbCtx, models.Subscriber{
		Name:   in.Name,
		Budget: in.Budget,
		Email:  email,
	})
	cancel()
	if err != nil {
		return false, domain.InternalError{Msg: "insert subscriber", Err: err}
	}
	utils.LogEvent(s.RequestID, "subscribe", "upsert", fmt.Sprintf("email=%s created=%t", utils.RedactEmail(email), created))

	s.sendConfirmation(ctx, email, in.Name)
	return created, nil
}

func (s SubscriptionService) sendConfirmation(ctx context.Context, email, name string) {
	if s.Mailer == nil {
		utils.LogEvent(s.RequestID, "subscribe", "mail_skipped", "no mail sender configured")
		return
	}
	mailCtx, cancel := withTimeout(ctx, s.MailTimeout)
	defer cancel()

	err := s.Mailer.Send(mailCtx, mail.Message{
		To:      email,
		Subject: ConfirmationSubject,
		Body:    fmt.Sprintf(confirmationBody, name),
	})
	if err != nil {
		utils.LogEvent(s.RequestID, "subscribe", "mail_failed", fmt.Sprintf("email=%s err=%v", utils.RedactEmail(email), err))
		return
	}
	utils.LogEvent(s.RequestID, "subscribe", "mail_sent", "email="+utils.RedactEmail(email))
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
