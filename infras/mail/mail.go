package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodge/config"
	"lodge/infras/otel"
	"lodge/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

const otelAttrRecipient = "mail.to"

// Mailer sends plain text notification mails over SMTP. When the SMTP
// credentials are not configured sends are skipped silently.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	otel   otel.Otel
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Mail.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrRecipient, to)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err = m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", to).Msg("Failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

type noopMailer struct{}

func (noopMailer) Send(_ context.Context, to, _, _ string) error {
	log.Debug().Str("to", to).Msg("Mail credentials not configured, skipping send")

	return nil
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	if cfg.Mail.Host == "" || cfg.Mail.Username == "" || cfg.Mail.Password == "" {
		log.Info().Msg("Mail disabled, missing SMTP credentials")

		return noopMailer{}
	}

	from := cfg.Mail.From
	if from == "" {
		from = cfg.Mail.Username
	}

	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password),
		from:   from,
		otel:   otl,
	}
}
