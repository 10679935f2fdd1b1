package dicom

import (
	"errors"
	"fmt"
)

// ParseError reports a structural failure encountered while decoding a
// DICOM byte stream. It always carries the absolute byte offset at which
// the failure was detected, threaded down from the top-level entry point
// through every nested parser so the position is never reconstructed by
// inspecting a buffer after the fact.
type ParseError struct {
	reason   string
	position int
	wrapped  error
}

// NewParseError builds a ParseError with the given reason and absolute
// stream position.
func NewParseError(reason string, position int) *ParseError {
	return &ParseError{reason: reason, position: position}
}

// wrapParseError builds a ParseError backed by a sentinel error, so
// callers can errors.Is against it while still getting a positioned
// reason string.
func wrapParseError(err error, position int) *ParseError {
	return &ParseError{reason: err.Error(), position: position, wrapped: err}
}

// wrapParseErrorWithReason builds a ParseError backed by a sentinel error
// for errors.Is purposes, but with a reason string overridden to include
// extra detail (e.g. why a lower-level probe failed) beyond the
// sentinel's own static message.
func wrapParseErrorWithReason(err error, reason string, position int) *ParseError {
	return &ParseError{reason: reason, position: position, wrapped: err}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at position %d)", e.reason, e.position)
}

// Unwrap lets errors.Is/errors.As reach the sentinel error backing this
// ParseError, when there is one.
func (e *ParseError) Unwrap() error {
	return e.wrapped
}

// Reason returns the short static reason string for this error.
func (e *ParseError) Reason() string {
	return e.reason
}

// Position returns the absolute byte offset at which this error was
// detected.
func (e *ParseError) Position() int {
	return e.position
}

// ErrDeflatedUnsupported is returned when the transfer syntax selects
// deflated explicit VR little endian. Inflating the body is out of scope
// for this engine; callers that need it must decompress the body
// themselves before handing bytes to a DataSetParser.
var ErrDeflatedUnsupported = errors.New("deflated transfer syntax is not supported")

// ErrUnexpectedCancel is returned when DataSetParser.Parse is invoked
// again on a parser that previously reported Cancelled. Per the concurrency model, calling
// parse after cancellation is a logic error; this engine reports it
// rather than panicking.
var ErrUnexpectedCancel = errors.New("parse called after a prior Cancelled result")
