package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMapping signals a mapping that cannot be sent over the wire.
	ErrInvalidMapping = errors.New("invalid mapping")
	// ErrUnknownDataType signals a data type name outside the catalog.
	ErrUnknownDataType = errors.New("unknown data type")
	// ErrSchemaMissing signals a describe response without a schema.
	ErrSchemaMissing = errors.New("schema missing")
	// ErrRPCStatus signals a non-success status returned by the service.
	ErrRPCStatus = errors.New("rpc status")
)

// StatusError wraps ErrRPCStatus with the code and reason reported by the service.
type StatusError struct {
	Code   int32
	Reason string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: code %d: %s", ErrRPCStatus.Error(), e.Code, e.Reason)
}

func (e *StatusError) Unwrap() error { return ErrRPCStatus }

// NewStatusError creates a status error.
func NewStatusError(code int32, reason string) error {
	return &StatusError{Code: code, Reason: reason}
}
