package main

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeUnknownNode   ErrorCode = "UNKNOWN_NODE"
	CodeInvalidData   ErrorCode = "INVALID_DATA"
	CodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// Context keys used across the loader, config and search.
const (
	CtxPath = "path"
	CtxLine = "line"
	CtxNode = "node"
)

// DomainError is the error type returned by everything outside main.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) > 0 {
		msg += fmt.Sprintf(" %v", e.Context)
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func NewError(code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg}
}

func WrapError(err error, code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg, Err: err}
}

// AddContext attaches a key to err, wrapping it as an internal error when it
// is not already a DomainError.
func AddContext(err error, key string, value interface{}) error {
	var de *DomainError
	if errors.As(err, &de) {
		de.WithContext(key, value)
		return err
	}
	return &DomainError{
		Code:    CodeInternal,
		Message: "wrapped error",
		Err:     err,
		Context: map[string]interface{}{key: value},
	}
}

// IsCode checks if an error has a specific error code.
func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
