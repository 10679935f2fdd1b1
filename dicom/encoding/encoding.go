// Package encoding defines the byte-order and attribute-header layout
// policies used to read a DICOM data set off the wire. Three variants
// exist — explicit little endian, implicit little endian, and explicit
// big endian — selected once per stream by the caller (the transfer
// syntax UID drives that choice at the P10 entry point, not this
// package).
package encoding

import (
	"encoding/binary"

	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/vr"
)

// Header is the decoded (tag, VR?, length) prelude of one attribute,
// along with how many bytes of input the prelude occupied.
type Header struct {
	Tag       tag.Tag
	VR        vr.VR
	HasVR     bool
	Length    uint32
	HeaderLen int
	// UnknownVRBytes holds the literal two VR bytes read off the wire
	// when they didn't match the closed VR set (VR == vr.Unknown as a
	// fallback rather than a genuine UN element). Zero value otherwise.
	UnknownVRBytes [2]byte
}

// UndefinedLength is the sentinel length value meaning "terminated by a
// delimiter rather than a known byte count."
const UndefinedLength uint32 = 0xFFFFFFFF

// MinHeaderBytes is the minimum number of bytes needed before a header
// decode can even begin to choose a VR.
const MinHeaderBytes = 6

// Encoding reads integers and attribute header preludes per one of the
// three DICOM wire variants.
type Encoding interface {
	// Uint16 reads a 2-byte integer in this encoding's byte order.
	Uint16(b []byte) uint16
	// Uint32 reads a 4-byte integer in this encoding's byte order.
	Uint32(b []byte) uint32
	// DecodeHeader attempts to decode one attribute header prelude from
	// b. ok is false if b does not yet hold enough bytes; the caller
	// should retry once more bytes are available. err is non-nil only
	// for a structurally invalid header (currently: none at this
	// layer — invalid VR strings fall back to vr.Unknown rather than
	// erroring, matching the VR enum's closed-set-plus-fallback
	// design).
	DecodeHeader(b []byte) (h Header, ok bool, err error)
}

func readReservedHeader(b []byte, t tag.Tag, u Encoding) (Header, bool) {
	if len(b) < 8 {
		return Header{}, false
	}
	length := u.Uint32(b[4:8])
	return Header{Tag: t, Length: length, HeaderLen: 8}, true
}

func decodeTag(b []byte, u Encoding) tag.Tag {
	return tag.New(u.Uint16(b[0:2]), u.Uint16(b[2:4]))
}

func isReserved(t tag.Tag) bool {
	return t == tag.Item || t == tag.ItemDelimitation || t == tag.SequenceDelimitation
}

func needsTrailingWindow(h Header) bool {
	return h.Length == UndefinedLength
}

// ExplicitLittleEndian is the most common DICOM transfer syntax:
// little-endian integers, with an explicit two-character VR on the wire
// for every non-reserved attribute.
type ExplicitLittleEndian struct{}

func (ExplicitLittleEndian) Uint16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func (ExplicitLittleEndian) Uint32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

func (e ExplicitLittleEndian) DecodeHeader(b []byte) (Header, bool, error) {
	return decodeExplicit(b, e)
}

// ExplicitBigEndian is the retired big-endian explicit-VR transfer
// syntax: identical layout to ExplicitLittleEndian but with big-endian
// integers.
type ExplicitBigEndian struct{}

func (ExplicitBigEndian) Uint16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func (ExplicitBigEndian) Uint32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

func (e ExplicitBigEndian) DecodeHeader(b []byte) (Header, bool, error) {
	return decodeExplicit(b, e)
}

func decodeExplicit(b []byte, u Encoding) (Header, bool, error) {
	if len(b) < MinHeaderBytes {
		return Header{}, false, nil
	}
	t := decodeTag(b, u)
	if isReserved(t) {
		h, ok := readReservedHeader(b, t, u)
		if !ok {
			return Header{}, false, nil
		}
		return h, true, nil
	}

	vrBytes := b[4:6]
	vrCode, parseErr := vr.Parse(string(vrBytes))
	var unknownVRBytes [2]byte
	if parseErr != nil {
		vrCode = vr.Unknown
		copy(unknownVRBytes[:], vrBytes)
	}

	var h Header
	if vrCode.UsesExplicitLength32() {
		if len(b) < 12 {
			return Header{}, false, nil
		}
		h = Header{Tag: t, VR: vrCode, HasVR: true, Length: u.Uint32(b[8:12]), HeaderLen: 12, UnknownVRBytes: unknownVRBytes}
	} else {
		if len(b) < 8 {
			return Header{}, false, nil
		}
		h = Header{Tag: t, VR: vrCode, HasVR: true, Length: uint32(u.Uint16(b[6:8])), HeaderLen: 8, UnknownVRBytes: unknownVRBytes}
	}
	return finish(h, b)
}

// ImplicitLittleEndian is the default DICOM transfer syntax: little-endian
// integers, no VR on the wire (a VR dictionary lookup would be required
// to recover it, which is out of this engine's scope).
type ImplicitLittleEndian struct{}

func (ImplicitLittleEndian) Uint16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func (ImplicitLittleEndian) Uint32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

func (e ImplicitLittleEndian) DecodeHeader(b []byte) (Header, bool, error) {
	if len(b) < MinHeaderBytes {
		return Header{}, false, nil
	}
	t := decodeTag(b, e)
	if isReserved(t) {
		h, ok := readReservedHeader(b, t, e)
		if !ok {
			return Header{}, false, nil
		}
		return h, true, nil
	}
	if len(b) < 8 {
		return Header{}, false, nil
	}
	h := Header{Tag: t, Length: e.Uint32(b[4:8]), HeaderLen: 8}
	return finish(h, b)
}

// finish applies the "hold back 8 bytes" rule for undefined-length
// attributes (spec §4.2 step 4): the caller must be able to disambiguate
// a following item header, so an additional 8 bytes must be available
// beyond the header itself before this header decode is considered
// complete.
func finish(h Header, b []byte) (Header, bool, error) {
	if needsTrailingWindow(h) && len(b) < h.HeaderLen+8 {
		return Header{}, false, nil
	}
	return h, true, nil
}
