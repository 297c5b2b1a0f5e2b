package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Notification struct {
	Recipient string
	Subject   string
	Body      string
}

// Dispatcher delivers notifications off the request path, same shape
// as the audit dispatcher.
type Dispatcher struct {
	notifier Notifier
	log      *zap.Logger
	queue    chan Notification
}

func NewDispatcher(notifier Notifier, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		log:      log,
		queue:    make(chan Notification, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for n := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := d.notifier.Send(ctx, n.Recipient, n.Subject, n.Body); err != nil {
			d.log.Warn("notification delivery failed",
				zap.String("recipient", n.Recipient),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// Dispatch enqueues a notification. A nil dispatcher drops everything.
func (d *Dispatcher) Dispatch(n Notification) {
	if d == nil {
		return
	}

	select {
	case d.queue <- n:
	default:
		d.log.Warn("notify queue full, dropping notification",
			zap.String("recipient", n.Recipient),
		)
	}
}
