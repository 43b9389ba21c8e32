package usecase

import (
	"context"
	"sync"

	drepo "CTPConsole/internal/domain/repository"
	xlogger "CTPConsole/pkg/logger"
)

// FetchFunc retrieves the current value of a remote resource.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// ResourceState is a point-in-time copy of a resource lifecycle.
// Data holds the last successful payload and survives later loading
// and failed transitions until the next success overwrites it.
type ResourceState[T any] struct {
	Status  Status `json:"status"`
	Data    T      `json:"data,omitempty"`
	HasData bool   `json:"has_data"`
	Err     string `json:"error,omitempty"`
}

// Resource mediates one read-only remote resource. At most one refresh
// per instance is in flight at a time; a trigger during loading is
// ignored, not queued.
type Resource[T any] struct {
	name   string
	okText string
	fetch  FetchFunc[T]
	notify drepo.Notifier
	logger *xlogger.Logger

	mu      sync.Mutex
	status  Status
	data    T
	hasData bool
	errMsg  string
	gen     uint64
	closed  bool
}

// NewResource creates an idle resource controller. okText is the alert
// published on a successful refresh.
func NewResource[T any](name, okText string, fetch FetchFunc[T], notify drepo.Notifier, logger *xlogger.Logger) *Resource[T] {
	return &Resource[T]{
		name:   name,
		okText: okText,
		fetch:  fetch,
		notify: notify,
		logger: logger,
		status: StatusIdle,
	}
}

// Refresh fetches the resource and transitions to ready or failed,
// publishing an alert either way. It blocks until the call completes,
// so callers run it off the UI goroutine. Returns false when the
// trigger was ignored: a refresh already in flight, a closed
// controller, or a completion that arrived after Close.
func (r *Resource[T]) Refresh(ctx context.Context) bool {
	r.mu.Lock()
	if r.closed || r.status == StatusLoading {
		r.mu.Unlock()
		return false
	}
	r.status = StatusLoading
	r.errMsg = ""
	gen := r.gen
	r.mu.Unlock()

	data, err := r.fetch(ctx)

	r.mu.Lock()
	if r.closed || gen != r.gen {
		// Completed after Close: drop silently, no state, no alert.
		r.mu.Unlock()
		return false
	}
	if err != nil {
		r.status = StatusFailed
		r.errMsg = err.Error()
	} else {
		r.status = StatusReady
		r.data = data
		r.hasData = true
	}
	r.mu.Unlock()

	if err != nil {
		r.logger.Warn("resource refresh failed",
			xlogger.String("resource", r.name),
			xlogger.Error(err),
		)
		r.notify.Error(err.Error())
		return true
	}

	r.logger.Debug("resource refreshed", xlogger.String("resource", r.name))
	r.notify.Ok(r.okText)
	return true
}

// State returns a copy of the current lifecycle state.
func (r *Resource[T]) State() ResourceState[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ResourceState[T]{
		Status:  r.status,
		Data:    r.data,
		HasData: r.hasData,
		Err:     r.errMsg,
	}
}

// Loading reports whether a refresh is in flight.
func (r *Resource[T]) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status == StatusLoading
}

// Close detaches the controller from its consumer. Any in-flight fetch
// that completes afterwards is dropped without touching state.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	r.closed = true
	r.gen++
	r.mu.Unlock()
}
