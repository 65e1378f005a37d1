// Package stats keeps live counters of confirmed bookings for the dashboard.
package stats

import (
	"sync"
	"time"
)

// BookingConfirmed is the payload of a booking.confirmed message.
type BookingConfirmed struct {
	Reference   string    `json:"reference"`
	TierID      string    `json:"tier"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	Total       int       `json:"total"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

type Snapshot struct {
	Bookings      int            `json:"bookings"`
	TicketsSold   int            `json:"tickets_sold"`
	Revenue       int            `json:"revenue"`
	TicketsByTier map[string]int `json:"tickets_by_tier"`
}

// Tally counts each booking reference once, so redelivered messages are harmless.
type Tally struct {
	mu   sync.RWMutex
	seen map[string]struct{}
	snap Snapshot
}

func NewTally() *Tally {
	return &Tally{
		seen: make(map[string]struct{}),
		snap: Snapshot{TicketsByTier: make(map[string]int)},
	}
}

// Record adds ev and reports whether it was new.
func (t *Tally) Record(ev BookingConfirmed) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[ev.Reference]; ok {
		return false
	}
	t.seen[ev.Reference] = struct{}{}

	tickets := ev.Adults + ev.Children
	t.snap.Bookings++
	t.snap.TicketsSold += tickets
	t.snap.Revenue += ev.Total
	t.snap.TicketsByTier[ev.TierID] += tickets
	return true
}

func (t *Tally) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := t.snap
	out.TicketsByTier = make(map[string]int, len(t.snap.TicketsByTier))
	for k, v := range t.snap.TicketsByTier {
		out.TicketsByTier[k] = v
	}
	return out
}
