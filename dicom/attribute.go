package dicom

import (
	"fmt"

	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/vr"
)

// Attribute is one (tag, VR?, length) prelude decoded from the wire. vr is
// absent exactly for implicit-encoded attributes and for the three
// reserved delimitation tags; see encoding.DecodeHeader.
type Attribute struct {
	Tag    tag.Tag
	VR     vr.VR
	HasVR  bool
	Length uint32
	// UnknownVRBytes holds the literal two VR bytes read off the wire
	// when VR == vr.Unknown as a fallback (the code on the wire didn't
	// match the closed VR set). Zero value whenever VR != vr.Unknown, or
	// when the attribute's VR genuinely is UN.
	UnknownVRBytes [2]byte
}

// UndefinedLength is the sentinel length value meaning "terminated by a
// delimiter tag rather than a known byte count."
const UndefinedLength uint32 = 0xFFFFFFFF

// IsUndefinedLength reports whether this attribute's length field is the
// undefined-length sentinel.
func (a Attribute) IsUndefinedLength() bool {
	return a.Length == UndefinedLength
}

// String renders the attribute for diagnostics and test failure output.
func (a Attribute) String() string {
	if a.HasVR {
		return fmt.Sprintf("%s %s len=%d", a.Tag, a.VR, a.Length)
	}
	return fmt.Sprintf("%s len=%d", a.Tag, a.Length)
}

// PixelData is the reserved tag for the pixel data element, the one
// attribute that may carry encapsulated (Basic Offset Table + fragment)
// content when its length is undefined.
var PixelData = tag.New(0x7FE0, 0x0010)
