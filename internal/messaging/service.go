package messaging

import (
	"context"
	"errors"

	"growth-server/internal/clients/mail"
	"growth-server/internal/observability"
)

var ErrNoRecipient = errors.New("no recipient contact available")

// Flow labels for the message-producing parts of the growth engine
const (
	FlowNurture       = "nurture"
	FlowReviewRequest = "review_request"
)

// EmailClient sends an email and returns the provider message id
type EmailClient interface {
	Send(ctx context.Context, email mail.Email) (string, error)
}

// SMSClient sends an SMS and returns the provider message id
type SMSClient interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}

// Service fans outbound messages to the configured delivery clients. Callers
// record the intent to send; delivery outcome is the provider's concern.
type Service struct {
	email         EmailClient
	sms           SMSClient
	defaultSender string
	flow          string
	logger        *observability.Logger
}

func New(email EmailClient, sms SMSClient, defaultSender string, logger *observability.Logger) *Service {
	return &Service{
		email:         email,
		sms:           sms,
		defaultSender: defaultSender,
		logger:        logger,
	}
}

// ForFlow returns a copy of the service that stamps outbound messages with
// the given flow label
func (s *Service) ForFlow(flow string) *Service {
	stamped := *s
	stamped.flow = flow
	return &stamped
}

// SendEmail delivers an email from the practice's default sender address
func (s *Service) SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error) {
	if to == "" {
		return "", ErrNoRecipient
	}
	return s.email.Send(ctx, mail.Email{
		From:    s.defaultSender,
		To:      to,
		Subject: subject,
		HTML:    htmlContent,
		Flow:    s.flow,
	})
}

// SendSMS delivers a text message
func (s *Service) SendSMS(ctx context.Context, to, body string) (string, error) {
	if to == "" {
		return "", ErrNoRecipient
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "message_flow", Value: s.flow})
	return s.sms.SendSMS(ctx, to, body)
}
