// Package handler defines the Handler event-sink contract that the
// parsing engine drives, plus reusable composition adapters
// (CancelHandler, TeeHandler, StopHandler) and small Condition
// predicates for building cancel conditions without a bespoke closure
// per caller.
package handler

import (
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/vr"
)

// Control is returned by the Handler events that may ask the parser to
// stop.
type Control int

const (
	// Continue lets parsing proceed normally.
	Continue Control = iota
	// Cancel unwinds the active parse call; see the engine's
	// cancellation fidelity guarantee.
	Cancel
)

// Attribute is the decoded (tag, VR?, length) prelude passed to Handler
// callbacks. It mirrors the engine's own attribute type but lives here,
// dependency-free of the engine package, so Handler implementations
// never need to import the parser itself.
type Attribute struct {
	Tag    tag.Tag
	VR     vr.VR
	HasVR  bool
	Length uint32
	// UnknownVRBytes holds the literal two VR bytes read off the wire
	// when VR == vr.Unknown as a fallback because the code on the wire
	// didn't match the closed VR set. Zero value otherwise.
	UnknownVRBytes [2]byte
}

// Handler is the sole output surface of the parsing engine. Every method
// has a no-op default via BaseHandler, so implementations only override
// the events they care about.
type Handler interface {
	// Attribute is called once per attribute, immediately after its
	// header is decoded, before any value parsing begins.
	Attribute(attr Attribute, position int, headerLen int) Control

	// Data delivers (possibly repeated) slices of a primitive value
	// field. complete is true on exactly the final call for this
	// attribute. The slice is only valid for the duration of the call.
	Data(attr Attribute, data []byte, complete bool)

	// StartSequence/EndSequence bracket a sequence attribute's items.
	StartSequence(attr Attribute)
	EndSequence(attr Attribute)

	// StartSequenceItem/EndSequenceItem bracket one item's nested data
	// set within an enclosing sequence.
	StartSequenceItem(attr Attribute)
	EndSequenceItem(attr Attribute)

	// BasicOffsetTable delivers the encapsulated pixel data attribute's
	// first item (the Basic Offset Table), which may be zero length.
	BasicOffsetTable(attr Attribute, data []byte, complete bool) Control

	// PixelDataFragment delivers one encapsulated pixel data fragment,
	// numbered from 1.
	PixelDataFragment(attr Attribute, fragmentNumber int, data []byte, complete bool) Control
}

// BaseHandler implements Handler with no-op defaults for every event.
// Embed it anonymously to implement only the events you need, the way
// the teacher's table-driven tests embed shared fixtures rather than
// repeating boilerplate.
type BaseHandler struct{}

func (BaseHandler) Attribute(Attribute, int, int) Control           { return Continue }
func (BaseHandler) Data(Attribute, []byte, bool)                    {}
func (BaseHandler) StartSequence(Attribute)                         {}
func (BaseHandler) EndSequence(Attribute)                           {}
func (BaseHandler) StartSequenceItem(Attribute)                     {}
func (BaseHandler) EndSequenceItem(Attribute)                       {}
func (BaseHandler) BasicOffsetTable(Attribute, []byte, bool) Control { return Continue }
func (BaseHandler) PixelDataFragment(Attribute, int, []byte, bool) Control {
	return Continue
}

var _ Handler = BaseHandler{}
