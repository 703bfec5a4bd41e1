package events

import (
	"pulse-feed/pkg/logger"
	"pulse-feed/pkg/queue"
)

// Publisher is satisfied by *queue.Client.
type Publisher interface {
	Publish(event queue.Event) error
}

// Dispatcher decouples event publication from the request path: Dispatch
// enqueues into a bounded buffer and a single worker drains it to the broker.
// Publish failures and buffer overflows are logged, never returned to callers.
type Dispatcher struct {
	publisher Publisher
	logger    *logger.Logger
	tasks     chan queue.Event
	done      chan struct{}
}

func NewDispatcher(publisher Publisher, log *logger.Logger, bufferSize int) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = 256
	}

	d := &Dispatcher{
		publisher: publisher,
		logger:    log,
		tasks:     make(chan queue.Event, bufferSize),
		done:      make(chan struct{}),
	}

	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for event := range d.tasks {
		if err := d.publisher.Publish(event); err != nil {
			d.logger.Error("[EVENTS] Failed to publish %s event %s: %v", event.EventType, event.EventID, err)
		}
	}
}

// Dispatch never blocks; when the buffer is full the event is dropped and the
// drop is reported through the logger.
func (d *Dispatcher) Dispatch(event queue.Event) {
	select {
	case d.tasks <- event:
	default:
		d.logger.Error("[EVENTS] Event buffer full, dropping %s event %s", event.EventType, event.EventID)
	}
}

// Close drains outstanding events and stops the worker.
func (d *Dispatcher) Close() {
	close(d.tasks)
	<-d.done
}
