package dicom

import "github.com/codeninja55/go-radx/dicom/handler"

// dataParser streams a primitive value field of known length (spec §4.4).
type dataParser struct {
	attr          Attribute
	totalConsumed uint32
}

func newDataParser(attr Attribute) *dataParser {
	return &dataParser{attr: attr}
}

func (p *dataParser) parse(h handler.Handler, b []byte, pos int) (ParseResult, error) {
	if p.attr.Length == 0 {
		h.Data(toHandlerAttr(p.attr), []byte{}, true)
		return completed(0), nil
	}

	remaining := p.attr.Length - p.totalConsumed
	n := len(b)
	if uint32(n) > remaining {
		n = int(remaining)
	}
	if n == 0 {
		return incomplete(0), nil
	}
	chunk := b[:n]
	p.totalConsumed += uint32(n)
	complete := p.totalConsumed == p.attr.Length

	h.Data(toHandlerAttr(p.attr), chunk, complete)
	if complete {
		return completed(n), nil
	}
	return incomplete(n), nil
}

var _ valueParser = (*dataParser)(nil)
