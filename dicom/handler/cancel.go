package handler

// Condition is a predicate over an attribute, used to decide whether a
// CancelHandler should fire. Grounded on the reusable predicate helpers
// the original parser's condition module exposes to its meta-information
// driver and stop-after-tag callers.
type Condition func(attr Attribute) bool

// TagEquals builds a Condition that fires when the attribute's tag
// matches t exactly.
func TagEquals(t Attribute) Condition {
	return func(attr Attribute) bool {
		return attr.Tag == t.Tag
	}
}

// GroupNotEquals builds a Condition that fires when the attribute's group
// differs from group. This is the predicate the MetaInformation driver
// uses to stop at the first non-group-2 attribute.
func GroupNotEquals(group uint16) Condition {
	return func(attr Attribute) bool {
		return attr.Tag.Group != group
	}
}

// CancelHandler wraps a Handler and a Condition. Before forwarding
// Attribute, it evaluates the condition; if true, it sets a sticky
// Canceled flag and returns Cancel without forwarding the event to the
// wrapped handler.
type CancelHandler struct {
	BaseHandler
	inner     Handler
	condition Condition
	Canceled  bool
}

// NewCancelHandler returns a CancelHandler delegating to inner, cancelling
// whenever condition reports true for an Attribute event.
func NewCancelHandler(inner Handler, condition Condition) *CancelHandler {
	return &CancelHandler{inner: inner, condition: condition}
}

func (c *CancelHandler) Attribute(attr Attribute, position, headerLen int) Control {
	if c.condition(attr) {
		c.Canceled = true
		return Cancel
	}
	return c.inner.Attribute(attr, position, headerLen)
}

func (c *CancelHandler) Data(attr Attribute, data []byte, complete bool) {
	c.inner.Data(attr, data, complete)
}

func (c *CancelHandler) StartSequence(attr Attribute) { c.inner.StartSequence(attr) }
func (c *CancelHandler) EndSequence(attr Attribute)   { c.inner.EndSequence(attr) }

func (c *CancelHandler) StartSequenceItem(attr Attribute) { c.inner.StartSequenceItem(attr) }
func (c *CancelHandler) EndSequenceItem(attr Attribute)   { c.inner.EndSequenceItem(attr) }

func (c *CancelHandler) BasicOffsetTable(attr Attribute, data []byte, complete bool) Control {
	return c.inner.BasicOffsetTable(attr, data, complete)
}

func (c *CancelHandler) PixelDataFragment(attr Attribute, fragmentNumber int, data []byte, complete bool) Control {
	return c.inner.PixelDataFragment(attr, fragmentNumber, data, complete)
}

var _ Handler = (*CancelHandler)(nil)

// StopHandler wraps a handler and cancels at the first attribute
// matching a stop tag, letting a caller parse "up to, but not including,
// tag X" without hand-writing a Condition closure: the matching
// attribute itself is not forwarded to the wrapped handler. It is a thin wrapper over
// CancelHandler: the stop tag fires the same sticky-cancel machinery.
type StopHandler struct {
	*CancelHandler
}

// NewStopHandler returns a StopHandler that cancels once an attribute
// with the given tag is seen.
func NewStopHandler(inner Handler, stopTag Attribute) *StopHandler {
	return &StopHandler{CancelHandler: NewCancelHandler(inner, TagEquals(stopTag))}
}

var _ Handler = (*StopHandler)(nil)
