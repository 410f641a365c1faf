package notify

//go:generate go run go.uber.org/mock/mockgen -source=./notify.go -destination=./mocks/notify_mock.go -package=mocks

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/mail"
	"lodge/infras/otel"
	"lodge/infras/sms"
	"lodge/shared/constant"
)

const defaultQueueSize = 64

// Email is a queued mail notification.
type Email struct {
	To      string
	Subject string
	Body    string
}

// SMS is a queued text message notification.
type SMS struct {
	To   string
	Body string
}

type task struct {
	email *Email
	sms   *SMS
}

// Dispatcher delivers notifications off the request path. Enqueue never
// blocks and delivery failures are logged and discarded, they must not
// surface as request errors.
type Dispatcher interface {
	EnqueueEmail(email Email)
	EnqueueSMS(message SMS)
	Close()
}

type dispatcherImpl struct {
	queue  chan task
	mailer mail.Mailer
	sms    sms.Sender
	otel   otel.Otel
	wg     sync.WaitGroup
	once   sync.Once
}

func New(cfg *config.Config, mailer mail.Mailer, sender sms.Sender, otl otel.Otel) Dispatcher {
	size := cfg.Notify.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}

	d := &dispatcherImpl{
		queue:  make(chan task, size),
		mailer: mailer,
		sms:    sender,
		otel:   otl,
	}

	d.wg.Add(1)
	go d.worker()

	return d
}

func (d *dispatcherImpl) EnqueueEmail(email Email) {
	d.enqueue(task{email: &email})
}

func (d *dispatcherImpl) EnqueueSMS(message SMS) {
	d.enqueue(task{sms: &message})
}

// enqueue drops the task when the queue is full rather than blocking
// the caller.
func (d *dispatcherImpl) enqueue(t task) {
	select {
	case d.queue <- t:
	default:
		log.Warn().Msg("notification queue full, dropping notification")
	}
}

func (d *dispatcherImpl) worker() {
	defer d.wg.Done()

	for t := range d.queue {
		ctx, scope := d.otel.NewScope(context.Background(), constant.OtelNotifyScopeName, constant.OtelNotifyScopeName+".deliver")

		switch {
		case t.email != nil:
			if err := d.mailer.Send(ctx, t.email.To, t.email.Subject, t.email.Body); err != nil {
				scope.TraceError(err)
				log.Error().Err(err).Str("to", t.email.To).Msg("failed to deliver email notification")
			}
		case t.sms != nil:
			if err := d.sms.Send(ctx, t.sms.To, t.sms.Body); err != nil {
				scope.TraceError(err)
				log.Error().Err(err).Str("to", t.sms.To).Msg("failed to deliver sms notification")
			}
		}

		scope.End()
	}
}

// Close drains the queue and stops the worker.
func (d *dispatcherImpl) Close() {
	d.once.Do(func() {
		close(d.queue)
	})

	d.wg.Wait()
}
