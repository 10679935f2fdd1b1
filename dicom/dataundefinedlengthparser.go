package dicom

import (
	"github.com/codeninja55/go-radx/dicom/encoding"
	"github.com/codeninja55/go-radx/dicom/handler"
)

// dataUndefinedLengthParser streams a primitive value field whose length
// is undefined, ending at a SEQUENCE_DELIMITATION tag (spec §4.5). The
// scan holds back the trailing 8 bytes of any chunk that doesn't contain
// the delimiter, since those bytes might be a partial delimiter that
// completes once more input arrives.
type dataUndefinedLengthParser struct {
	enc  encoding.Encoding
	attr Attribute
}

func newDataUndefinedLengthParser(enc encoding.Encoding, attr Attribute) *dataUndefinedLengthParser {
	return &dataUndefinedLengthParser{enc: enc, attr: attr}
}

func (p *dataUndefinedLengthParser) parse(h handler.Handler, b []byte, pos int) (ParseResult, error) {
	n := len(b)
	if n < 8 {
		return incomplete(0), nil
	}

	for i := 0; i+8 <= n; i += 2 {
		if p.enc.Uint16(b[i:i+2]) == 0xFFFE && p.enc.Uint16(b[i+2:i+4]) == 0xE0DD {
			h.Data(toHandlerAttr(p.attr), b[:i], true)
			return completed(i + 8), nil
		}
	}

	keep := n - 8
	h.Data(toHandlerAttr(p.attr), b[:keep], false)
	return incomplete(keep), nil
}

var _ valueParser = (*dataUndefinedLengthParser)(nil)
