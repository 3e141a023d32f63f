package gateway

import "fmt"

// BackendError is a business failure declared by the backend
// (status:"error" envelope)
type BackendError struct {
	Op      string
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %s", e.Op, e.Message)
}

// TransportError covers network failures, non-2xx responses and malformed
// JSON bodies
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a record that could not be normalized into a typed
// entity
type DecodeError struct {
	Entity string
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: field %q %s", e.Entity, e.Field, e.Reason)
}
