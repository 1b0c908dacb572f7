package audit

import "github.com/sirupsen/logrus"

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	log    *logrus.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *logrus.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.WithError(err).Warn("audit write failed")
		}
	}
}

// Dispatch enqueues an event. A nil dispatcher disables auditing.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// full queue must never block a request
		d.log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}
