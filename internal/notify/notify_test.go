package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/config"
	"lodge/infras/otel/mocks"
	"lodge/internal/notify"
)

type recordingMailer struct {
	mu    sync.Mutex
	sent  []string
	fails bool
}

func (m *recordingMailer) Send(_ context.Context, to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fails {
		return errors.New("smtp unavailable")
	}

	m.sent = append(m.sent, to)

	return nil
}

type recordingSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *recordingSender) Send(_ context.Context, to, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sent = append(s.sent, to)

	return nil
}

func TestDispatcher_DeliversQueuedNotifications(t *testing.T) {
	mailer := &recordingMailer{}
	sender := &recordingSender{}

	cfg := &config.Config{}
	cfg.Notify.QueueSize = 8

	dispatcher := notify.New(cfg, mailer, sender, mocks.NewOtel())

	dispatcher.EnqueueEmail(notify.Email{To: "admin@example.com", Subject: "New booking", Body: "BK00000001"})
	dispatcher.EnqueueSMS(notify.SMS{To: "+628123456789", Body: "Your booking is confirmed"})
	dispatcher.Close()

	assert.Equal(t, []string{"admin@example.com"}, mailer.sent)
	assert.Equal(t, []string{"+628123456789"}, sender.sent)
}

func TestDispatcher_DeliveryFailureIsSwallowed(t *testing.T) {
	mailer := &recordingMailer{fails: true}
	sender := &recordingSender{}

	cfg := &config.Config{}

	dispatcher := notify.New(cfg, mailer, sender, mocks.NewOtel())

	dispatcher.EnqueueEmail(notify.Email{To: "admin@example.com", Subject: "New booking", Body: "BK00000001"})
	dispatcher.EnqueueSMS(notify.SMS{To: "+628123456789", Body: "still delivered"})
	dispatcher.Close()

	assert.Empty(t, mailer.sent)
	assert.Equal(t, []string{"+628123456789"}, sender.sent)
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	cfg := &config.Config{}

	dispatcher := notify.New(cfg, &recordingMailer{}, &recordingSender{}, mocks.NewOtel())

	dispatcher.Close()
	assert.NotPanics(t, func() {
		dispatcher.Close()
	})
}
