// Package errors turns resolver failures into GraphQL errors carrying an
// extensions.code and a message safe to show to callers.
package errors

import (
	"errors"
	"strings"

	"memberhub/internal/store"
	"memberhub/pkg/logging"
)

const defaultPublicMessage = "request failed"

// Codes reported in extensions.code.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeInternal         = "INTERNAL"
)

var codeMessages = map[string]string{
	CodeNotFound:         "resource not found",
	CodeConflict:         "resource already exists",
	CodeInvalidReference: "referenced resource does not exist",
	CodeInvalidArgument:  "invalid request",
	CodeInternal:         "internal error",
}

// Error is a GraphQL-facing error. The executor copies Extensions into the response.
type Error struct {
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// New returns an error with the given code. An empty message uses the code's default.
func New(code, message string) *Error {
	if strings.TrimSpace(message) == "" {
		message = messageForCode(code)
	}
	return &Error{Code: code, Message: message}
}

// InvalidArgument reports a request the resolver refuses before touching the store.
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// Present maps store sentinels onto error codes. Anything unrecognised is
// logged and replaced by a generic message.
func Present(logger logging.FieldLogger, err error) error {
	if err == nil {
		return nil
	}
	var presented *Error
	if errors.As(err, &presented) {
		return presented
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return wrap(CodeNotFound, err, "not found")
	case errors.Is(err, store.ErrConflict):
		return wrap(CodeConflict, err, "already exists")
	case errors.Is(err, store.ErrInvalidReference):
		return wrap(CodeInvalidReference, err, "does not exist")
	}

	if logger != nil {
		logger.WithError(err).Error("GraphQL resolver failed")
	}
	return &Error{Code: CodeInternal, Message: defaultPublicMessage, cause: err}
}

func wrap(code string, err error, allowed ...string) *Error {
	return &Error{
		Code:    code,
		Message: SanitizeMessage(err.Error(), messageForCode(code), allowed),
		cause:   err,
	}
}

// SanitizeMessage returns message when it contains one of the allowed
// substrings, fallback otherwise.
func SanitizeMessage(message, fallback string, allowed []string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return fallbackMessage(fallback)
	}
	lowered := strings.ToLower(trimmed)
	for _, allow := range allowed {
		if allow == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(allow)) {
			return trimmed
		}
	}
	return fallbackMessage(fallback)
}

func messageForCode(code string) string {
	if message, ok := codeMessages[code]; ok {
		return message
	}
	return codeMessages[CodeInternal]
}

func fallbackMessage(fallback string) string {
	if fallback == "" {
		return defaultPublicMessage
	}
	return fallback
}
