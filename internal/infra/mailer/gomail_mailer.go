// Package mailer implements the outbound email gateway using SMTP.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"passport/config"
	"passport/internal/domain/service"

	"github.com/pkg/errors"
)

// gomailMailer is a concrete implementation of the Mailer interface using gomail.
type gomailMailer struct {
	dialer       *gomail.Dialer
	from         string
	resetBaseURL string
	logger       *slog.Logger
}

// NewGomailMailer is the constructor for gomailMailer.
func NewGomailMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration is required")
	}
	if cfg.SMTP.Host == "" || cfg.SMTP.Port == 0 {
		return nil, errors.New("smtp host and port must be provided")
	}
	if cfg.SMTP.From == "" {
		return nil, errors.New("smtp sender address must be provided")
	}

	dialer := gomail.NewDialer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
	)

	return &gomailMailer{
		dialer:       dialer,
		from:         cfg.SMTP.From,
		resetBaseURL: cfg.SMTP.ResetBaseURL,
		logger:       logger,
	}, nil
}

// SendWelcomeEmail sends the post-registration welcome message.
func (m *gomailMailer) SendWelcomeEmail(_ context.Context, to string) error {
	return m.send(to, "Welcome to Our Application!",
		"Thank you for registering with us!", "")
}

// SendPasswordResetEmail sends the reset link embedding the raw token.
func (m *gomailMailer) SendPasswordResetEmail(_ context.Context, to, resetToken string) error {
	resetLink := fmt.Sprintf("%s/%s", m.resetBaseURL, resetToken)
	htmlBody := fmt.Sprintf(
		`<p>You have requested to reset your password. Please click <a href="%s">here</a> to reset your password.</p>`,
		resetLink,
	)

	return m.send(to, "Password Reset Request", "", htmlBody)
}

// SendPasswordResetSuccessEmail confirms a completed password rotation.
func (m *gomailMailer) SendPasswordResetSuccessEmail(_ context.Context, to string) error {
	return m.send(to, "Password Reset Successful",
		"Your password has been successfully reset.", "")
}

func (m *gomailMailer) send(to, subject, body, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)

	if htmlBody != "" {
		msg.SetBody("text/html", htmlBody)
		if body != "" {
			msg.AddAlternative("text/plain", body)
		}
	} else {
		msg.SetBody("text/plain", body)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("Failed to send email", slog.String("subject", subject), slog.Any("error", err))

		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
