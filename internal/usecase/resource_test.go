package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestResourceRefreshSuccess(t *testing.T) {
	notify := &fakeNotifier{}
	r := NewResource("signal", "Signal updated.", func(ctx context.Context) (string, error) {
		return "BUY", nil
	}, notify, testLogger(t))

	if st := r.State(); st.Status != StatusIdle || st.HasData {
		t.Fatalf("unexpected initial state %+v", st)
	}

	if !r.Refresh(context.Background()) {
		t.Fatalf("expected refresh to run")
	}

	st := r.State()
	if st.Status != StatusReady {
		t.Fatalf("expected ready, got %q", st.Status)
	}
	if !st.HasData || st.Data != "BUY" {
		t.Fatalf("unexpected data %+v", st)
	}
	if st.Err != "" {
		t.Fatalf("unexpected error %q", st.Err)
	}
	if got := notify.last(); got != "ok: Signal updated." {
		t.Fatalf("unexpected alert %q", got)
	}
}

func TestResourceRefreshFailure(t *testing.T) {
	notify := &fakeNotifier{}
	r := NewResource("signal", "Signal updated.", func(ctx context.Context) (string, error) {
		return "", errors.New("Backend error: 500 → boom")
	}, notify, testLogger(t))

	if !r.Refresh(context.Background()) {
		t.Fatalf("expected refresh to run")
	}

	st := r.State()
	if st.Status != StatusFailed {
		t.Fatalf("expected failed, got %q", st.Status)
	}
	if st.HasData {
		t.Fatalf("expected no data")
	}
	if st.Err != "Backend error: 500 → boom" {
		t.Fatalf("unexpected error %q", st.Err)
	}
	if got := notify.last(); got != "error: Backend error: 500 → boom" {
		t.Fatalf("unexpected alert %q", got)
	}
}

func TestResourceKeepsStaleDataAcrossFailure(t *testing.T) {
	notify := &fakeNotifier{}
	var fail atomic.Bool
	r := NewResource("account", "Account loaded.", func(ctx context.Context) (string, error) {
		if fail.Load() {
			return "", errors.New("down")
		}
		return "snapshot-1", nil
	}, notify, testLogger(t))

	r.Refresh(context.Background())
	fail.Store(true)
	r.Refresh(context.Background())

	st := r.State()
	if st.Status != StatusFailed {
		t.Fatalf("expected failed, got %q", st.Status)
	}
	// The last good payload stays visible alongside the failure.
	if !st.HasData || st.Data != "snapshot-1" {
		t.Fatalf("expected stale data to survive, got %+v", st)
	}
	if st.Err != "down" {
		t.Fatalf("unexpected error %q", st.Err)
	}
}

func TestResourceSingleFlight(t *testing.T) {
	notify := &fakeNotifier{}
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	r := NewResource("orders", "Open orders loaded.", func(ctx context.Context) (string, error) {
		calls.Add(1)
		close(started)
		<-release
		return "ok", nil
	}, notify, testLogger(t))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if !r.Refresh(context.Background()) {
			t.Errorf("expected first refresh to run")
		}
	}()

	<-started
	if !r.Loading() {
		t.Fatalf("expected loading while fetch in flight")
	}
	if r.Refresh(context.Background()) {
		t.Fatalf("expected concurrent refresh to be ignored")
	}

	close(release)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Fatalf("expected exactly one fetch, got %d", n)
	}
	if st := r.State(); st.Status != StatusReady {
		t.Fatalf("expected ready after release, got %q", st.Status)
	}
}

func TestResourceRepeatedRefreshIdempotent(t *testing.T) {
	notify := &fakeNotifier{}
	r := NewResource("signal", "Signal updated.", func(ctx context.Context) (string, error) {
		return "BUY", nil
	}, notify, testLogger(t))

	r.Refresh(context.Background())
	first := r.State()
	r.Refresh(context.Background())
	second := r.State()

	if first != second {
		t.Fatalf("expected identical states, got %+v and %+v", first, second)
	}
}

func TestResourceRefreshClearsPreviousError(t *testing.T) {
	notify := &fakeNotifier{}
	var fail atomic.Bool
	fail.Store(true)
	r := NewResource("signal", "Signal updated.", func(ctx context.Context) (string, error) {
		if fail.Load() {
			return "", errors.New("boom")
		}
		return "SELL", nil
	}, notify, testLogger(t))

	r.Refresh(context.Background())
	fail.Store(false)
	r.Refresh(context.Background())

	st := r.State()
	if st.Status != StatusReady || st.Err != "" {
		t.Fatalf("expected clean ready state, got %+v", st)
	}
	if st.Data != "SELL" {
		t.Fatalf("unexpected data %q", st.Data)
	}
}

func TestResourceClosedDropsCompletion(t *testing.T) {
	notify := &fakeNotifier{}
	started := make(chan struct{})
	release := make(chan struct{})

	r := NewResource("signal", "Signal updated.", func(ctx context.Context) (string, error) {
		close(started)
		<-release
		return "BUY", nil
	}, notify, testLogger(t))

	done := make(chan bool, 1)
	go func() {
		done <- r.Refresh(context.Background())
	}()

	<-started
	r.Close()
	close(release)

	if <-done {
		t.Fatalf("expected completion after close to be dropped")
	}
	if st := r.State(); st.HasData || st.Status != StatusLoading {
		t.Fatalf("expected state untouched by late completion, got %+v", st)
	}
	if got := notify.all(); len(got) != 0 {
		t.Fatalf("expected no alerts, got %v", got)
	}

	if r.Refresh(context.Background()) {
		t.Fatalf("expected refresh on closed controller to be ignored")
	}
}
