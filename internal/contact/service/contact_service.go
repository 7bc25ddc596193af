package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/portfolio-site/portfolio-backend/internal/api/http/middleware"
	"github.com/portfolio-site/portfolio-backend/internal/contact/domain"
	"github.com/portfolio-site/portfolio-backend/internal/contact/mailer"
)

// MessageStore persists contact messages.
type MessageStore interface {
	Create(ctx context.Context, req domain.CreateMessageRequest) (*domain.ContactMessage, error)
}

// Notifier forwards a stored message to the site owner.
type Notifier interface {
	Send(ctx context.Context, msg domain.ContactMessage) (mailer.Receipt, error)
}

// ContactService stores a submission first, then relays it on a best-effort basis
type ContactService struct {
	store    MessageStore
	notifier Notifier
}

// NewContactService creates a new ContactService
func NewContactService(store MessageStore, notifier Notifier) *ContactService {
	return &ContactService{
		store:    store,
		notifier: notifier,
	}
}

// Submit persists req and then attempts the relay once. Only a persistence
// failure is returned as an error; the relay outcome is in Delivery.
func (s *ContactService) Submit(ctx context.Context, req domain.CreateMessageRequest) (*domain.Submission, error) {
	msg, err := s.store.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	// the relay must finish even if the client goes away
	delivery := s.relay(context.WithoutCancel(ctx), *msg)

	return &domain.Submission{Message: *msg, Delivery: delivery}, nil
}

func (s *ContactService) relay(ctx context.Context, msg domain.ContactMessage) domain.Delivery {
	rid := middleware.GetRequestID(ctx)
	receipt, err := s.notifier.Send(ctx, msg)
	switch {
	case err == nil:
		log.Printf("[contact] id=%s message %d received and email sent: %s", rid, msg.ID, receipt.MessageID)
		return domain.Delivery{Status: domain.DeliverySent, MessageID: receipt.MessageID}
	case errors.Is(err, mailer.ErrNotConfigured):
		log.Printf("[contact] id=%s message %d received, email relay not configured", rid, msg.ID)
		return domain.Delivery{Status: domain.DeliveryNotConfigured, Err: err}
	default:
		log.Printf("[contact] id=%s message %d received, failed to send email notification: %v", rid, msg.ID, err)
		return domain.Delivery{Status: domain.DeliveryFailed, Err: err}
	}
}
