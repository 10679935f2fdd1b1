package dicom

import (
	"github.com/codeninja55/go-radx/dicom/encoding"
	"github.com/codeninja55/go-radx/dicom/handler"
	"github.com/codeninja55/go-radx/dicom/tag"
)

// itemDelimitationAttr is the sentinel Handler-facing attribute used to
// build the Condition that watches for an item's closing delimiter.
var itemDelimitationAttr = handler.Attribute{Tag: tag.ItemDelimitation}

// sequenceItemDataParser owns one sequence item's nested data set (spec
// §4.6). A known-length item is bounded by restricting its input window;
// an undefined-length item is bounded by watching, via a CancelHandler
// wrapped around the caller's handler, for the ITEM_DELIMITATION tag.
type sequenceItemDataParser struct {
	enc        encoding.Encoding
	length     uint32
	undefined  bool
	consumed   uint32
	inner      *DataSetParser
}

func newSequenceItemDataParser(enc encoding.Encoding, itemLength uint32) *sequenceItemDataParser {
	return &sequenceItemDataParser{
		enc:       enc,
		length:    itemLength,
		undefined: itemLength == UndefinedLength,
		inner:     NewDataSetParser(enc),
	}
}

func (s *sequenceItemDataParser) parse(h handler.Handler, b []byte, pos int) (ParseResult, error) {
	if s.undefined {
		watched := handler.NewCancelHandler(h, handler.TagEquals(itemDelimitationAttr))
		res, err := s.inner.Parse(watched, b, pos)
		if err != nil {
			return ParseResult{}, err
		}
		switch res.State {
		case Cancelled:
			if !watched.Canceled {
				// The caller's handler cancelled, not the delimiter watch.
				return cancelled(res.BytesConsumed), nil
			}
			// The delimiter's own AttributeParser returned Cancelled(0)
			// for its 8-byte header (spec §4.3 step 2); account for it
			// here before reporting the item itself as complete.
			return completed(res.BytesConsumed + 8), nil
		default:
			// A nested DataSetParser reports Completed whenever its
			// input buffer drains, which for an undefined-length item
			// just means "no more bytes yet, and no delimiter seen" —
			// reinterpret both Incomplete and Completed as Incomplete
			// at this level until the delimiter actually fires.
			return incomplete(res.BytesConsumed), nil
		}
	}

	remaining := s.length - s.consumed
	n := len(b)
	if uint32(n) > remaining {
		n = int(remaining)
	}
	window := b[:n]

	res, err := s.inner.Parse(h, window, pos)
	if err != nil {
		return ParseResult{}, err
	}
	s.consumed += uint32(res.BytesConsumed)

	switch res.State {
	case Cancelled:
		return cancelled(res.BytesConsumed), nil
	case Completed:
		if s.consumed >= s.length {
			return completed(res.BytesConsumed), nil
		}
		return incomplete(res.BytesConsumed), nil
	default:
		return incomplete(res.BytesConsumed), nil
	}
}

var _ valueParser = (*sequenceItemDataParser)(nil)
