package dicom

import (
	"github.com/codeninja55/go-radx/dicom/encoding"
	"github.com/codeninja55/go-radx/dicom/handler"
	"github.com/codeninja55/go-radx/dicom/tag"
)

// sequenceParser drives the items of a sequence attribute, known or
// undefined length (spec §4.6).
type sequenceParser struct {
	enc           encoding.Encoding
	attr          Attribute
	totalConsumed uint32
	activeItem    *sequenceItemDataParser
}

func newSequenceParser(enc encoding.Encoding, attr Attribute) *sequenceParser {
	return &sequenceParser{enc: enc, attr: attr}
}

func (s *sequenceParser) parse(h handler.Handler, b []byte, pos int) (ParseResult, error) {
	window := b
	if !s.attr.IsUndefinedLength() {
		remaining := s.attr.Length - s.totalConsumed
		n := len(window)
		if uint32(n) > remaining {
			n = int(remaining)
		}
		window = window[:n]
	}

	consumed := 0
	for {
		if s.activeItem == nil {
			if !s.attr.IsUndefinedLength() && s.totalConsumed+uint32(consumed) >= s.attr.Length {
				s.totalConsumed += uint32(consumed)
				h.EndSequence(toHandlerAttr(s.attr))
				return completed(consumed), nil
			}
			rest := window[consumed:]
			if len(rest) < 8 {
				s.totalConsumed += uint32(consumed)
				return incomplete(consumed), nil
			}

			t := tag.New(s.enc.Uint16(rest[0:2]), s.enc.Uint16(rest[2:4]))
			itemLength := s.enc.Uint32(rest[4:8])

			if s.attr.IsUndefinedLength() && t == tag.SequenceDelimitation {
				consumed += 8
				h.EndSequence(toHandlerAttr(s.attr))
				return completed(consumed), nil
			}
			if t != tag.Item {
				return ParseResult{}, NewParseError("expected Item tag FFFE,E000", pos+consumed)
			}

			consumed += 8
			h.StartSequenceItem(toHandlerAttr(s.attr))
			s.activeItem = newSequenceItemDataParser(s.enc, itemLength)
			continue
		}

		rest := window[consumed:]
		res, err := s.activeItem.parse(h, rest, pos+consumed)
		if err != nil {
			return ParseResult{}, err
		}

		switch res.State {
		case Cancelled:
			consumed += res.BytesConsumed
			s.totalConsumed += uint32(consumed)
			return cancelled(consumed), nil
		case Incomplete:
			consumed += res.BytesConsumed
			s.totalConsumed += uint32(consumed)
			return incomplete(consumed), nil
		case Completed:
			consumed += res.BytesConsumed
			h.EndSequenceItem(toHandlerAttr(s.attr))
			s.activeItem = nil

			if !s.attr.IsUndefinedLength() && s.totalConsumed+uint32(consumed) >= s.attr.Length {
				s.totalConsumed += uint32(consumed)
				h.EndSequence(toHandlerAttr(s.attr))
				return completed(consumed), nil
			}
			continue
		}
	}
}

var _ valueParser = (*sequenceParser)(nil)
