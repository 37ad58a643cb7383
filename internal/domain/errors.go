// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/HTML by adapters.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrValidation indicates a ticker failed format validation.
	ErrValidation = errors.New("validation failed")

	// ErrNoData indicates the provider responded but returned no usable
	// name or price fields for the ticker.
	ErrNoData = errors.New("no market data")

	// ErrConnectivity indicates the market data provider could not be
	// reached (network down, DNS failure, timeout).
	ErrConnectivity = errors.New("provider unreachable")

	// ErrUpstream indicates the provider responded with an HTTP-level error.
	ErrUpstream = errors.New("provider error")

	// ErrUnknownFetch indicates an unclassified failure while fetching.
	ErrUnknownFetch = errors.New("fetch failed")
)

// ValidationError is returned when a raw ticker string fails the
// character/length rule. Always recoverable by the user re-entering input.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NoDataError is returned when the provider responded for a ticker but
// the record carried no usable display name or price fields.
type NoDataError struct {
	Ticker string
}

// Error implements the error interface. The message echoes the
// upper-cased ticker so the user sees what was looked up.
func (e *NoDataError) Error() string {
	return fmt.Sprintf("'%s' is not a valid ticker symbol or has no market data.", strings.ToUpper(e.Ticker))
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NoDataError) Unwrap() error {
	return ErrNoData
}

// NewNoDataError creates a no-data error for the given ticker.
func NewNoDataError(ticker string) error {
	return &NoDataError{Ticker: ticker}
}

// ConnectivityError is returned when the network path to the provider is
// broken. The message is fixed, user-facing text.
type ConnectivityError struct {
	Cause error
}

// Error implements the error interface.
func (e *ConnectivityError) Error() string {
	return "No internet connection. Please check your network and try again."
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConnectivityError) Unwrap() error {
	return ErrConnectivity
}

// NewConnectivityError creates a connectivity error wrapping the underlying cause.
func NewConnectivityError(cause error) error {
	return &ConnectivityError{Cause: cause}
}

// UpstreamError is returned when the provider answered with an HTTP-level
// error. The message includes the upstream detail.
type UpstreamError struct {
	Detail string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return "Server error: " + e.Detail
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// NewUpstreamError creates an upstream error with the given detail.
func NewUpstreamError(detail string) error {
	return &UpstreamError{Detail: detail}
}

// UnknownFetchError covers any other failure during a provider fetch.
// The message includes the original error text.
type UnknownFetchError struct {
	Cause error
}

// Error implements the error interface.
func (e *UnknownFetchError) Error() string {
	return "Error fetching data: " + e.Cause.Error()
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnknownFetchError) Unwrap() error {
	return ErrUnknownFetch
}

// NewUnknownFetchError wraps an unclassified fetch failure.
func NewUnknownFetchError(cause error) error {
	return &UnknownFetchError{Cause: cause}
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNoData checks if an error is a no-data error.
func IsNoData(err error) bool {
	return errors.Is(err, ErrNoData)
}

// IsConnectivity checks if an error is a connectivity error.
func IsConnectivity(err error) bool {
	return errors.Is(err, ErrConnectivity)
}

// IsUpstream checks if an error is an upstream error.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsUnknownFetch checks if an error is an unknown fetch error.
func IsUnknownFetch(err error) bool {
	return errors.Is(err, ErrUnknownFetch)
}
