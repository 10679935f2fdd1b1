package dicom

import (
	"github.com/codeninja55/go-radx/dicom/encoding"
	"github.com/codeninja55/go-radx/dicom/handler"
)

// DataSetParser is the outer driver (spec §4.8): it repeatedly forwards
// bytes to a current AttributeParser, installing a fresh one after each
// completed attribute, until the supplied buffer is drained.
type DataSetParser struct {
	enc     encoding.Encoding
	current *AttributeParser
}

// NewDataSetParser returns a DataSetParser for the given encoding, ready
// to decode a fresh attribute at the front of its input.
func NewDataSetParser(enc encoding.Encoding) *DataSetParser {
	return &DataSetParser{enc: enc, current: NewAttributeParser(enc)}
}

// Parse decodes as many complete attributes as b allows, starting at the
// absolute stream offset pos.
func (d *DataSetParser) Parse(h handler.Handler, b []byte, pos int) (ParseResult, error) {
	// A nil current parser marks a prior Cancelled result.
	if d.current == nil {
		return ParseResult{}, wrapParseError(ErrUnexpectedCancel, pos)
	}
	cumulative := 0
	for {
		rest := b[cumulative:]
		if len(rest) == 0 {
			return completed(cumulative), nil
		}

		res, err := d.current.Parse(h, rest, pos+cumulative)
		if err != nil {
			return ParseResult{}, err
		}

		switch res.State {
		case Incomplete:
			cumulative += res.BytesConsumed
			return incomplete(cumulative), nil
		case Cancelled:
			cumulative += res.BytesConsumed
			d.current = nil
			return cancelled(cumulative), nil
		case Completed:
			cumulative += res.BytesConsumed
			d.current = NewAttributeParser(d.enc)
		}
	}
}
