package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a missing or invalid credential or structured
// option, detected at construction or build time. No network call is
// attempted once one is raised.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{Field: field, Message: message}
}

// TransportError reports that the HTTP exchange with the gateway could not
// be completed (network, timeout, TLS). The core never retries; retry policy
// belongs to the caller.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a transport failure.
func NewTransportError(err error) *TransportError {
	return &TransportError{Err: err}
}

// ParseError reports a response body that does not conform to the expected
// dialect. The raw body is preserved for diagnostics.
type ParseError struct {
	Err     error
	RawBody string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gateway response parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps a parse failure together with the offending body.
func NewParseError(err error, rawBody string) *ParseError {
	return &ParseError{Err: err, RawBody: rawBody}
}

// IsConfiguration checks if an error is a ConfigurationError.
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsTransport checks if an error is a TransportError.
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsParse checks if an error is a ParseError.
func IsParse(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}
