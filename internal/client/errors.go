package client

import (
	"errors"
	"fmt"
)

// APIError is an application-level failure: the backend answered, but with a
// non-2xx status or a success=false envelope. Anything else the client returns
// is a transport failure (request rejected before a usable response).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
}

func IsApplicationError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
