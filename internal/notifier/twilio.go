package notifier

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/vish-34/PulseIQ/internal/config"
)

// DeliveryReceipt - результат отправки SMS или голосового вызова
type DeliveryReceipt struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// TwilioNotifier отправляет SMS и голосовые вызовы через Twilio REST API
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
	logger *logrus.Logger
}

// NewTwilioNotifier создает клиент Twilio из конфигурации
func NewTwilioNotifier(cfg *config.Config, logger *logrus.Logger) (*TwilioNotifier, error) {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		return nil, fmt.Errorf("twilio account SID and auth token must be provided")
	}
	if cfg.TwilioFromNumber == "" {
		return nil, fmt.Errorf("twilio from number must be provided")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	return &TwilioNotifier{
		client: client,
		from:   cfg.TwilioFromNumber,
		logger: logger,
	}, nil
}

// SendSMS отправляет SMS на указанный номер
func (t *TwilioNotifier) SendSMS(ctx context.Context, to, text string) (*DeliveryReceipt, error) {
	log := t.logger.WithFields(logrus.Fields{
		"service": "notifier",
		"method":  "SendSMS",
		"to":      to,
	})

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(text)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		log.WithError(err).Error("Failed to send SMS")
		return nil, fmt.Errorf("failed to send SMS: %w", err)
	}

	receipt := &DeliveryReceipt{}
	if resp.Sid != nil {
		receipt.ID = *resp.Sid
	}
	if resp.Status != nil {
		receipt.Status = *resp.Status
	}
	log.WithField("sid", receipt.ID).Info("SMS sent")
	return receipt, nil
}

// MakeVoiceCall делает голосовой вызов и зачитывает текст через TwiML <Say>
func (t *TwilioNotifier) MakeVoiceCall(ctx context.Context, to, text string) (*DeliveryReceipt, error) {
	log := t.logger.WithFields(logrus.Fields{
		"service": "notifier",
		"method":  "MakeVoiceCall",
		"to":      to,
	})

	var escaped bytes.Buffer
	if err := xml.EscapeText(&escaped, []byte(text)); err != nil {
		return nil, fmt.Errorf("failed to escape call text: %w", err)
	}

	params := &twilioApi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetTwiml(fmt.Sprintf("<Response><Say voice=\"alice\">%s</Say></Response>", escaped.String()))

	resp, err := t.client.Api.CreateCall(params)
	if err != nil {
		log.WithError(err).Error("Failed to make voice call")
		return nil, fmt.Errorf("failed to make voice call: %w", err)
	}

	receipt := &DeliveryReceipt{}
	if resp.Sid != nil {
		receipt.ID = *resp.Sid
	}
	if resp.Status != nil {
		receipt.Status = *resp.Status
	}
	log.WithField("sid", receipt.ID).Info("Voice call initiated")
	return receipt, nil
}
