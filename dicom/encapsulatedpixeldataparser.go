package dicom

import (
	"github.com/codeninja55/go-radx/dicom/encoding"
	"github.com/codeninja55/go-radx/dicom/handler"
	"github.com/codeninja55/go-radx/dicom/tag"
)

// encapsulatedPixelDataParser parses the Basic Offset Table followed by
// zero or more pixel data fragments, terminated by a
// SEQUENCE_DELIMITATION tag (spec §4.7).
type encapsulatedPixelDataParser struct {
	enc            encoding.Encoding
	attr           Attribute
	inItem         bool
	remainingInItem uint32
	itemNumber     int // 0 = Basic Offset Table, 1+ = fragments
}

func newEncapsulatedPixelDataParser(enc encoding.Encoding, attr Attribute) *encapsulatedPixelDataParser {
	return &encapsulatedPixelDataParser{enc: enc, attr: attr}
}

func (p *encapsulatedPixelDataParser) parse(h handler.Handler, b []byte, pos int) (ParseResult, error) {
	consumed := 0
	for {
		if !p.inItem {
			rest := b[consumed:]
			if len(rest) < 8 {
				return incomplete(consumed), nil
			}

			t := tag.New(p.enc.Uint16(rest[0:2]), p.enc.Uint16(rest[2:4]))
			length := p.enc.Uint32(rest[4:8])

			if t == tag.SequenceDelimitation {
				consumed += 8
				return completed(consumed), nil
			}
			if t != tag.Item {
				return ParseResult{}, NewParseError("expected Item tag FFFE,E000", pos+consumed)
			}
			if length == UndefinedLength {
				return ParseResult{}, NewParseError("expected defined length", pos+consumed)
			}

			consumed += 8
			p.remainingInItem = length
			p.inItem = true
			continue
		}

		rest := b[consumed:]
		n := len(rest)
		if uint32(n) > p.remainingInItem {
			n = int(p.remainingInItem)
		}
		complete := p.remainingInItem == uint32(n)
		if n == 0 && !complete {
			return incomplete(consumed), nil
		}

		chunk := rest[:n]
		p.remainingInItem -= uint32(n)
		consumed += n

		attr := toHandlerAttr(p.attr)
		var ctrl handler.Control
		if p.itemNumber == 0 {
			ctrl = h.BasicOffsetTable(attr, chunk, complete)
		} else {
			ctrl = h.PixelDataFragment(attr, p.itemNumber, chunk, complete)
		}
		if ctrl == handler.Cancel {
			return cancelled(consumed), nil
		}

		if !complete {
			return incomplete(consumed), nil
		}
		p.inItem = false
		p.itemNumber++
	}
}

var _ valueParser = (*encapsulatedPixelDataParser)(nil)
