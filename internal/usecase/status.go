package usecase

// Status is the lifecycle state of a tracked resource or command.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusLoading    Status = "loading"
	StatusReady      Status = "ready"
	StatusFailed     Status = "failed"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
)
