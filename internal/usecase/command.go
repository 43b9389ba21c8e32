package usecase

import (
	"context"
	"sync"

	drepo "CTPConsole/internal/domain/repository"
	xlogger "CTPConsole/pkg/logger"
	"CTPConsole/pkg/validate"
)

// SubmitFunc executes one remote command with a validated payload.
type SubmitFunc[P, R any] func(ctx context.Context, payload P) (R, error)

// CommandState is a point-in-time copy of a command lifecycle. Result
// and Err are mutually exclusive.
type CommandState[P, R any] struct {
	Status    Status `json:"status"`
	Payload   P      `json:"payload,omitempty"`
	Result    R      `json:"result,omitempty"`
	HasResult bool   `json:"has_result"`
	Err       string `json:"error,omitempty"`
}

// Command mediates one write/action remote operation. Payloads are
// validated before the submitting transition, so a rejected payload
// never reaches the request client and never trips the in-flight
// guard.
type Command[P, R any] struct {
	name   string
	okText string
	submit SubmitFunc[P, R]
	notify drepo.Notifier
	logger *xlogger.Logger

	mu        sync.Mutex
	status    Status
	payload   P
	result    R
	hasResult bool
	errMsg    string
	gen       uint64
	closed    bool
}

// NewCommand creates an idle command controller. okText is the alert
// published on success.
func NewCommand[P, R any](name, okText string, submit SubmitFunc[P, R], notify drepo.Notifier, logger *xlogger.Logger) *Command[P, R] {
	return &Command[P, R]{
		name:   name,
		okText: okText,
		submit: submit,
		notify: notify,
		logger: logger,
		status: StatusIdle,
	}
}

// Submit validates the payload, runs the command, and transitions to
// succeeded or failed, publishing an alert either way. It blocks until
// the call completes. Returns false when the trigger was ignored
// because a submission is already in flight or the controller is
// closed; a validation rejection returns true with state failed.
func (c *Command[P, R]) Submit(ctx context.Context, payload P) bool {
	c.mu.Lock()
	if c.closed || c.status == StatusSubmitting {
		c.mu.Unlock()
		return false
	}

	if err := validate.Struct(&payload); err != nil {
		c.status = StatusFailed
		c.errMsg = err.Error()
		c.hasResult = false
		c.mu.Unlock()

		c.logger.Warn("command payload rejected",
			xlogger.String("command", c.name),
			xlogger.Error(err),
		)
		c.notify.Error(err.Error())
		return true
	}

	// validate.Struct applied defaults in place; keep the payload it sent.
	c.status = StatusSubmitting
	c.payload = payload
	c.errMsg = ""
	var zero R
	c.result = zero
	c.hasResult = false
	gen := c.gen
	c.mu.Unlock()

	result, err := c.submit(ctx, payload)

	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return false
	}
	if err != nil {
		c.status = StatusFailed
		c.errMsg = err.Error()
	} else {
		c.status = StatusSucceeded
		c.result = result
		c.hasResult = true
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("command failed",
			xlogger.String("command", c.name),
			xlogger.Error(err),
		)
		c.notify.Error(err.Error())
		return true
	}

	c.logger.Info("command succeeded", xlogger.String("command", c.name))
	c.notify.Ok(c.okText)
	return true
}

// State returns a copy of the current lifecycle state.
func (c *Command[P, R]) State() CommandState[P, R] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CommandState[P, R]{
		Status:    c.status,
		Payload:   c.payload,
		Result:    c.result,
		HasResult: c.hasResult,
		Err:       c.errMsg,
	}
}

// Submitting reports whether a submission is in flight.
func (c *Command[P, R]) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status == StatusSubmitting
}

// Close detaches the controller; a submission completing afterwards is
// dropped without touching state.
func (c *Command[P, R]) Close() {
	c.mu.Lock()
	c.closed = true
	c.gen++
	c.mu.Unlock()
}
