package notifier

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// MultiChannel объединяет каналы доставки (почта, SMS, голос) в один
// уведомитель. Любой канал может быть не сконфигурирован (nil) - тогда
// отправка через него возвращает ошибку, а не панику: вызывающая сторона
// трактует каналы как best-effort.
type MultiChannel struct {
	email  *EmailSender
	twilio *TwilioNotifier
	logger *logrus.Logger
}

// NewMultiChannel собирает уведомитель из доступных каналов
func NewMultiChannel(email *EmailSender, twilio *TwilioNotifier, logger *logrus.Logger) *MultiChannel {
	return &MultiChannel{
		email:  email,
		twilio: twilio,
		logger: logger,
	}
}

// SendEmail отправляет письмо через SMTP-канал
func (m *MultiChannel) SendEmail(ctx context.Context, to, subject, body string) error {
	if m.email == nil {
		return fmt.Errorf("email channel is not configured")
	}
	return m.email.SendEmail(ctx, to, subject, body)
}

// SendSMS отправляет SMS через Twilio-канал
func (m *MultiChannel) SendSMS(ctx context.Context, to, text string) (*DeliveryReceipt, error) {
	if m.twilio == nil {
		return nil, fmt.Errorf("sms channel is not configured")
	}
	return m.twilio.SendSMS(ctx, to, text)
}

// MakeVoiceCall делает голосовой вызов через Twilio-канал
func (m *MultiChannel) MakeVoiceCall(ctx context.Context, to, text string) (*DeliveryReceipt, error) {
	if m.twilio == nil {
		return nil, fmt.Errorf("voice channel is not configured")
	}
	return m.twilio.MakeVoiceCall(ctx, to, text)
}
