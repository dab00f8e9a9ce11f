package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vish-34/PulseIQ/internal/config"
)

// EmailSender отправляет почту через SMTP
type EmailSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
	logger   *logrus.Logger
}

// NewEmailSender создает SMTP-отправитель из конфигурации
func NewEmailSender(cfg *config.Config, logger *logrus.Logger) (*EmailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host must be provided")
	}
	return &EmailSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		logger:   logger,
	}, nil
}

// SendEmail отправляет письмо на указанный адрес
func (e *EmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	log := e.logger.WithFields(logrus.Fields{
		"service": "notifier",
		"method":  "SendEmail",
		"to":      to,
	})

	msg := strings.Join([]string{
		"From: " + e.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", e.host, e.port)
	var auth smtp.Auth
	if e.user != "" {
		auth = smtp.PlainAuth("", e.user, e.password, e.host)
	}

	if err := smtp.SendMail(addr, auth, e.from, []string{to}, []byte(msg)); err != nil {
		log.WithError(err).Error("Failed to send email")
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	log.Info("Email sent")
	return nil
}
