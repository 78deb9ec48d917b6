package birdclient

import (
	"errors"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////

// APIError is a non-2xx response from the platform API. Payload carries the
// raw error body for the error view.
type APIError struct {
	StatusCode int
	Payload    []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api responded with status %d: %s", e.StatusCode, e.Payload)
}

// AsAPIError unwraps err into an *APIError if one is in the chain
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
