package storeclient

import (
	"fmt"
	"net/http"
)

// StoreError is a non-2xx answer from the data store. Message is the
// store's own error text, or a generic one when the body carried none.
type StoreError struct {
	StatusCode int
	Message    string
}

func (e *StoreError) Error() string { return e.Message }

// HTTPStatus returns the status the store answered with.
func (e *StoreError) HTTPStatus() int { return e.StatusCode }

// TransportError reports that the store could not be reached at all.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to %s: data store unreachable: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatus maps an unreachable store onto 502 Bad Gateway.
func (e *TransportError) HTTPStatus() int { return http.StatusBadGateway }
