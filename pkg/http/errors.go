package http

import (
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the backend.
// Its message is the exact string surfaced to the operator.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Backend error: %d → %s", e.Status, e.Body)
}

// AsAPIError extracts an *APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
