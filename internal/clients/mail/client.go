package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"growth-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

var (
	ErrMissingRecipient = errors.New("mail: missing recipient address")
	ErrMissingSender    = errors.New("mail: missing sender address")
)

// Email is a single outbound message. Flow names the part of the growth
// engine that produced it (nurture, review request) and travels into the
// delivery logs so provider events can be traced back to their origin.
type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
	Flow    string
}

type ResendClient struct {
	client *resend.Client
	logger *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) (*ResendClient, error) {
	if apiKey == "" {
		return nil, errors.New("mail: resend API key is required")
	}

	return &ResendClient{
		client: resend.NewClient(apiKey),
		logger: logger,
	}, nil
}

// Send delivers the email through Resend and returns the provider message id
func (c *ResendClient) Send(ctx context.Context, email Email) (string, error) {
	if strings.TrimSpace(email.To) == "" {
		return "", ErrMissingRecipient
	}
	if strings.TrimSpace(email.From) == "" {
		return "", ErrMissingSender
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: email.To},
		observability.Field{Key: "email_subject", Value: email.Subject},
		observability.Field{Key: "email_flow", Value: email.Flow},
	)

	res, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		c.logger.Error(ctx, "email delivery failed", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email accepted by provider")
	return res.Id, nil
}
