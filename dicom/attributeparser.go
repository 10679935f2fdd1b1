package dicom

import (
	"github.com/codeninja55/go-radx/dicom/encoding"
	"github.com/codeninja55/go-radx/dicom/handler"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/vr"
)

// valueParser is the delegate an AttributeParser installs once it knows
// which kind of value field follows an attribute's header: a primitive
// of known length, a primitive of undefined length terminated by a
// delimiter, a sequence, or encapsulated pixel data.
type valueParser interface {
	parse(h handler.Handler, b []byte, pos int) (ParseResult, error)
}

// AttributeParser owns exactly one attribute's worth of state: the
// decoded header and, once chosen, the delegate value parser that
// streams its value field.
type AttributeParser struct {
	enc      encoding.Encoding
	attr     Attribute
	delegate valueParser
}

// NewAttributeParser returns an AttributeParser for the given encoding,
// ready to decode a fresh attribute header.
func NewAttributeParser(enc encoding.Encoding) *AttributeParser {
	return &AttributeParser{enc: enc}
}

// Parse implements spec §4.3.
func (p *AttributeParser) Parse(h handler.Handler, b []byte, pos int) (ParseResult, error) {
	if p.delegate == nil {
		hdr, ok, err := p.enc.DecodeHeader(b)
		if err != nil {
			return ParseResult{}, NewParseError(err.Error(), pos)
		}
		if !ok {
			return incomplete(0), nil
		}

		p.attr = attributeFromHeader(hdr)
		if h.Attribute(toHandlerAttr(p.attr), pos, hdr.HeaderLen) == handler.Cancel {
			return cancelled(0), nil
		}

		rest := b[hdr.HeaderLen:]
		delegate, err := p.chooseDelegate(h, rest)
		if err != nil {
			return ParseResult{}, err
		}
		p.delegate = delegate

		res, err := p.delegate.parse(h, rest, pos+hdr.HeaderLen)
		if err != nil {
			return ParseResult{}, err
		}
		res.BytesConsumed += hdr.HeaderLen
		return res, nil
	}
	return p.delegate.parse(h, b, pos)
}

// chooseDelegate implements the ordered rules of spec §4.3 step 3. rest
// is the input immediately following the attribute's header, already
// known to hold the 8-byte trailing window whenever attr.Length is
// undefined (encoding.DecodeHeader enforces that before returning ok for
// every tag except the three reserved delimitation tags).
func (p *AttributeParser) chooseDelegate(h handler.Handler, rest []byte) (valueParser, error) {
	attr := p.attr

	if attr.HasVR && attr.VR == vr.SequenceOfItems {
		h.StartSequence(toHandlerAttr(attr))
		return newSequenceParser(p.enc, attr), nil
	}

	if attr.Tag == PixelData && attr.IsUndefinedLength() {
		return newEncapsulatedPixelDataParser(p.enc, attr), nil
	}

	if attr.IsUndefinedLength() && len(rest) >= 4 && p.peekIsItemTag(rest) {
		h.StartSequence(toHandlerAttr(attr))
		return newSequenceParser(p.enc, attr), nil
	}

	if attr.IsUndefinedLength() {
		return newDataUndefinedLengthParser(p.enc, attr), nil
	}

	return newDataParser(attr), nil
}

func (p *AttributeParser) peekIsItemTag(rest []byte) bool {
	t := tag.New(p.enc.Uint16(rest[0:2]), p.enc.Uint16(rest[2:4]))
	return t == tag.Item
}
