package progress

import (
	"sync"
	"time"
)

// DefaultMinInterval is the minimum spacing between same-step events.
const DefaultMinInterval = 250 * time.Millisecond

// Event is one progress update. Current and Total describe position within
// the named step; Message is optional detail such as the source being
// scanned.
type Event struct {
	Step    string `json:"step"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

// Publisher receives the events that survive throttling.
type Publisher interface {
	Publish(Event)
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(Event)

func (f PublisherFunc) Publish(ev Event) { f(ev) }

// Reporter forwards events to a publisher, suppressing bursts. A nil
// Reporter is valid and drops everything, so callers never need to guard
// their emit sites.
type Reporter struct {
	mu          sync.Mutex
	publisher   Publisher
	minInterval time.Duration
	now         func() time.Time

	last     Event
	lastSent time.Time
	seen     bool
}

// NewReporter wraps a publisher with the default throttle interval. A nil
// publisher yields a nil Reporter.
func NewReporter(p Publisher) *Reporter {
	return NewReporterInterval(p, DefaultMinInterval)
}

// NewReporterInterval wraps a publisher with an explicit throttle interval.
func NewReporterInterval(p Publisher, minInterval time.Duration) *Reporter {
	if p == nil {
		return nil
	}
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	return &Reporter{
		publisher:   p,
		minInterval: minInterval,
		now:         time.Now,
	}
}

// Emit publishes an event unless throttled. A step change always goes
// through and resets the throttle window; within a step, an event identical
// to the previous one is dropped, and distinct events are dropped while the
// window is still open.
func (r *Reporter) Emit(ev Event) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if r.seen && ev.Step == r.last.Step {
		if ev == r.last {
			return
		}
		if now.Sub(r.lastSent) < r.minInterval {
			return
		}
	}

	r.publisher.Publish(ev)
	r.last = ev
	r.lastSent = now
	r.seen = true
}

// Reset clears throttle state so the next event is always published.
func (r *Reporter) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = false
	r.last = Event{}
	r.lastSent = time.Time{}
}
