package handler

// TeeHandler broadcasts every event to a list of inner handlers, in
// order. For cancel-capable events it returns Cancel iff any inner
// handler returned Cancel, after every inner handler has been given the
// event (an OR over the children, not a short-circuit, so a later
// handler in the list cannot be starved of an event by an earlier one
// cancelling).
type TeeHandler struct {
	inners []Handler
}

// NewTeeHandler returns a TeeHandler broadcasting to inners in order.
func NewTeeHandler(inners ...Handler) *TeeHandler {
	return &TeeHandler{inners: inners}
}

func (t *TeeHandler) Attribute(attr Attribute, position, headerLen int) Control {
	cancel := false
	for _, h := range t.inners {
		if h.Attribute(attr, position, headerLen) == Cancel {
			cancel = true
		}
	}
	if cancel {
		return Cancel
	}
	return Continue
}

func (t *TeeHandler) Data(attr Attribute, data []byte, complete bool) {
	for _, h := range t.inners {
		h.Data(attr, data, complete)
	}
}

func (t *TeeHandler) StartSequence(attr Attribute) {
	for _, h := range t.inners {
		h.StartSequence(attr)
	}
}

func (t *TeeHandler) EndSequence(attr Attribute) {
	for _, h := range t.inners {
		h.EndSequence(attr)
	}
}

func (t *TeeHandler) StartSequenceItem(attr Attribute) {
	for _, h := range t.inners {
		h.StartSequenceItem(attr)
	}
}

func (t *TeeHandler) EndSequenceItem(attr Attribute) {
	for _, h := range t.inners {
		h.EndSequenceItem(attr)
	}
}

func (t *TeeHandler) BasicOffsetTable(attr Attribute, data []byte, complete bool) Control {
	cancel := false
	for _, h := range t.inners {
		if h.BasicOffsetTable(attr, data, complete) == Cancel {
			cancel = true
		}
	}
	if cancel {
		return Cancel
	}
	return Continue
}

func (t *TeeHandler) PixelDataFragment(attr Attribute, fragmentNumber int, data []byte, complete bool) Control {
	cancel := false
	for _, h := range t.inners {
		if h.PixelDataFragment(attr, fragmentNumber, data, complete) == Cancel {
			cancel = true
		}
	}
	if cancel {
		return Cancel
	}
	return Continue
}

var _ Handler = (*TeeHandler)(nil)
