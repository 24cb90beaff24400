package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// ErrorKind classifies MinIO errors for callers.
type ErrorKind string

const (
	KindConnection   ErrorKind = "connection"
	KindNotFound     ErrorKind = "not_found"
	KindInvalidInput ErrorKind = "invalid_input"
	KindInternal     ErrorKind = "internal"
)

// Error wraps a MinIO failure with a kind and the operation that failed.
type Error struct {
	Kind      ErrorKind
	Operation string
	Err       error
	Message   string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("minio: %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("minio: %s", e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewConnectionError wraps a connection failure.
func NewConnectionError(err error) error {
	return &Error{Kind: KindConnection, Operation: "connect", Err: err}
}

// NewInvalidInputError reports invalid request parameters.
func NewInvalidInputError(message string) error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// IsNotFound reports whether err is an object-not-found error.
func IsNotFound(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == KindNotFound
	}
	return false
}

func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	kind := KindInternal
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket":
		kind = KindNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		kind = KindConnection
	}
	return &Error{Kind: kind, Operation: operation, Err: err}
}
