package sms

import (
	"context"
	"fmt"
	"growth-server/internal/observability"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioClient struct {
	client     *twilio.RestClient
	fromNumber string
	logger     *observability.Logger
}

func NewTwilioClient(accountSID, authToken, fromNumber string, logger *observability.Logger) *TwilioClient {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioClient{
		client:     client,
		fromNumber: fromNumber,
		logger:     logger,
	}
}

func (c *TwilioClient) SendSMS(ctx context.Context, to, body string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "sms_to", Value: to},
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.fromNumber)
	params.SetBody(body)

	res, err := c.client.Api.CreateMessage(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send sms", err)
		return "", fmt.Errorf("failed to send sms: %w", err)
	}

	messageID := ""
	if res.Sid != nil {
		messageID = *res.Sid
	}

	c.logger.Info(ctx, "sms sent successfully")
	return messageID, nil
}
