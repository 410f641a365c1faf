package sms

//go:generate go run go.uber.org/mock/mockgen -source=./sms.go -destination=./mocks/sms_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodge/config"
	"lodge/infras/otel"
	"lodge/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const otelAttrRecipient = "sms.to"

// Sender sends SMS notifications through Twilio. When the Twilio
// credentials are not configured sends are skipped silently.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

type twilioSender struct {
	client *twilio.RestClient
	from   string
	otel   otel.Otel
}

func (s *twilioSender) Send(ctx context.Context, to, body string) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SMS.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrRecipient, to)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err = s.client.Api.CreateMessage(params); err != nil {
		log.Error().Err(err).Str("to", to).Msg("Failed to send SMS")

		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}

type noopSender struct{}

func (noopSender) Send(_ context.Context, to, _ string) error {
	log.Debug().Str("to", to).Msg("SMS credentials not configured, skipping send")

	return nil
}

func New(cfg *config.Config, otl otel.Otel) Sender {
	if cfg.SMS.TwilioAccountSID == "" || cfg.SMS.TwilioAuthToken == "" || cfg.SMS.TwilioFrom == "" {
		log.Info().Msg("SMS disabled, missing Twilio credentials")

		return noopSender{}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.SMS.TwilioAccountSID,
		Password: cfg.SMS.TwilioAuthToken,
	})

	return &twilioSender{
		client: client,
		from:   cfg.SMS.TwilioFrom,
		otel:   otl,
	}
}
