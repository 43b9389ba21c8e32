package alerts

import (
	"sync"
	"time"
)

// Kind classifies an alert.
type Kind string

const (
	KindOk    Kind = "ok"
	KindError Kind = "error"
)

// Alert is one transient operator-facing message.
type Alert struct {
	Kind      Kind
	Text      string
	ExpiresAt time.Time
}

// Bus is the single-slot notification channel shared by every view.
// Publishing replaces whatever is showing and restarts the expiry
// window; there is no queue. One timer handle does all the expiry
// bookkeeping, guarded by seq so a superseded alert's timer can never
// clear its successor.
type Bus struct {
	mu       sync.Mutex
	ttl      time.Duration
	current  *Alert
	timer    *time.Timer
	seq      uint64
	onChange func()
}

// NewBus creates a bus whose alerts expire after ttl.
func NewBus(ttl time.Duration) *Bus {
	return &Bus{ttl: ttl}
}

// SetOnChange registers a hook invoked after every slot change (publish,
// clear, expiry). The view layer uses it to trigger a redraw.
func (b *Bus) SetOnChange(fn func()) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// Publish replaces the current alert and resets the expiry window.
func (b *Bus) Publish(kind Kind, text string) {
	b.mu.Lock()
	b.seq++
	seq := b.seq
	if b.timer != nil {
		b.timer.Stop()
	}
	b.current = &Alert{
		Kind:      kind,
		Text:      text,
		ExpiresAt: time.Now().Add(b.ttl),
	}
	b.timer = time.AfterFunc(b.ttl, func() {
		b.expire(seq)
	})
	fn := b.onChange
	b.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Ok publishes a success alert.
func (b *Bus) Ok(text string) {
	b.Publish(KindOk, text)
}

// Error publishes an error alert.
func (b *Bus) Error(text string) {
	b.Publish(KindError, text)
}

// Clear dismisses the current alert and cancels its timer.
func (b *Bus) Clear() {
	b.mu.Lock()
	b.seq++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	changed := b.current != nil
	b.current = nil
	fn := b.onChange
	b.mu.Unlock()

	if changed && fn != nil {
		fn()
	}
}

// Current returns a copy of the active alert, or nil when the slot is
// empty.
func (b *Bus) Current() *Alert {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return nil
	}
	a := *b.current
	return &a
}

func (b *Bus) expire(seq uint64) {
	b.mu.Lock()
	if b.seq != seq {
		// Superseded while the timer was pending.
		b.mu.Unlock()
		return
	}
	b.current = nil
	b.timer = nil
	fn := b.onChange
	b.mu.Unlock()

	if fn != nil {
		fn()
	}
}
