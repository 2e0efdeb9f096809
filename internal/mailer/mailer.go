package mailer

//go:generate mockgen -destination=../mocks/mock_notifier.go -package=mocks github.com/lsweb/lsweb-api/internal/mailer Notifier

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/lsweb/lsweb-api/internal/contact/domain"
)

// Notifier dispatches a notification for a stored contact request. Errors
// are for the caller to log; a failed notification must never abort the
// intake pipeline.
type Notifier interface {
	Notify(ctx context.Context, req *domain.ContactRequest) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string
}

// SMTPMailer sends the rendered notification over SMTP with STARTTLS.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Notify(ctx context.Context, req *domain.ContactRequest) error {
	subject, body, err := Render(req)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.User); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("failed to build SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
