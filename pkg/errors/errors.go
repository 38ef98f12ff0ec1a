package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrConnection
	ErrQuery
	ErrInternal
)

// Error constructors
func NewConnection(err error) *AppError {
	return &AppError{
		Code:    ErrConnection,
		Message: "database connection failed",
		Err:     err,
	}
}

func NewQuery(err error) *AppError {
	return &AppError{
		Code:    ErrQuery,
		Message: "database query failed",
		Err:     err,
	}
}

// Common errors

// NotFound reports a lookup that matched nothing. message is what the client sees.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrNotFound, Message: message}
}

func Connection(err error) *AppError {
	return NewConnection(err)
}

func Query(err error) *AppError {
	return NewQuery(err)
}

// CodeOf returns the code of the first AppError in err's chain, or ErrInternal.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

func IsNotFound(err error) bool {
	return err != nil && CodeOf(err) == ErrNotFound
}

func IsConnection(err error) bool {
	return err != nil && CodeOf(err) == ErrConnection
}

func IsQuery(err error) bool {
	return err != nil && CodeOf(err) == ErrQuery
}
