package usecase

import (
	"sync"
	"testing"

	xlogger "CTPConsole/pkg/logger"
)

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

// fakeNotifier records every published alert in order.
type fakeNotifier struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeNotifier) Ok(text string) {
	f.mu.Lock()
	f.events = append(f.events, "ok: "+text)
	f.mu.Unlock()
}

func (f *fakeNotifier) Error(text string) {
	f.mu.Lock()
	f.events = append(f.events, "error: "+text)
	f.mu.Unlock()
}

func (f *fakeNotifier) all() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

func (f *fakeNotifier) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return ""
	}
	return f.events[len(f.events)-1]
}
