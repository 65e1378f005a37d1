// Package booking runs the simulated booking confirmation: a submitted
// booking sits in processing for a fixed delay and is then confirmed.
package booking

import (
	"context"
	"sync"
	"time"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
)

const DefaultDelay = time.Second

// Result is delivered once when a confirmation completes.
type Result struct {
	State       models.BookingStatus
	ConfirmedAt time.Time
}

type Confirmer struct {
	delay time.Duration
	clock Clock
}

func NewConfirmer(delay time.Duration, clock Clock) *Confirmer {
	if clock == nil {
		clock = RealClock{}
	}
	if delay < 0 {
		delay = 0
	}
	return &Confirmer{delay: delay, clock: clock}
}

// Confirmation tracks one submitted booking:
// idle -> processing -> confirmed, or back to idle when closed.
type Confirmation struct {
	mu          sync.Mutex
	state       models.BookingStatus
	confirmedAt time.Time

	done     chan Result
	stop     chan struct{}
	stopOnce sync.Once
	finished chan struct{}
}

// Submit moves a new confirmation into processing. The timer is armed
// before Submit returns.
func (c *Confirmer) Submit(ctx context.Context) *Confirmation {
	cf := &Confirmation{
		state:    models.StatusProcessing,
		done:     make(chan Result, 1),
		stop:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	fire := c.clock.After(c.delay)
	go cf.run(ctx, fire, c.clock)
	return cf
}

func (cf *Confirmation) run(ctx context.Context, fire <-chan time.Time, clock Clock) {
	defer close(cf.finished)
	defer close(cf.done)

	select {
	case <-fire:
		cf.mu.Lock()
		if cf.state != models.StatusProcessing {
			cf.mu.Unlock()
			return
		}
		cf.state = models.StatusConfirmed
		cf.confirmedAt = clock.Now()
		res := Result{State: cf.state, ConfirmedAt: cf.confirmedAt}
		cf.mu.Unlock()
		cf.done <- res
	case <-cf.stop:
	case <-ctx.Done():
		cf.mu.Lock()
		if cf.state == models.StatusProcessing {
			cf.state = models.StatusIdle
		}
		cf.mu.Unlock()
	}
}

// Done yields the confirmation result at most once and is closed when the
// confirmation stops, with or without a result.
func (cf *Confirmation) Done() <-chan Result {
	return cf.done
}

func (cf *Confirmation) State() models.BookingStatus {
	cf.mu.Lock()
	defer cf.mu.Unlock()
	return cf.state
}

// ConfirmedAt is zero unless the confirmation fired.
func (cf *Confirmation) ConfirmedAt() time.Time {
	cf.mu.Lock()
	defer cf.mu.Unlock()
	return cf.confirmedAt
}

// Close dismisses the confirmation and returns it to idle. A pending timer
// is abandoned. Close waits for the timer goroutine and is idempotent; it
// reports the state the confirmation was in before closing.
func (cf *Confirmation) Close() models.BookingStatus {
	cf.mu.Lock()
	prev := cf.state
	cf.state = models.StatusIdle
	cf.mu.Unlock()

	cf.stopOnce.Do(func() { close(cf.stop) })
	<-cf.finished
	return prev
}
