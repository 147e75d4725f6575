package client

import "errors"

var ErrUnavailable = errors.New("server unavailable")

// RPCError carries the message the server sent back together with the
// sentinel it maps to, so callers can both print it and match it with
// errors.Is.
type RPCError struct {
	Message string
	Err     error
}

func (e *RPCError) Error() string { return e.Message }

func (e *RPCError) Unwrap() error { return e.Err }
