package dicom

import (
	"strings"

	"github.com/codeninja55/go-radx/dicom/encoding"
	"github.com/codeninja55/go-radx/dicom/handler"
	"github.com/codeninja55/go-radx/dicom/tag"
)

const (
	preambleLength = 128
	prefixLength   = 4
	bodyOffset     = preambleLength + prefixLength
)

var (
	mediaStorageSOPClassUIDTag    = tag.New(0x0002, 0x0002)
	mediaStorageSOPInstanceUIDTag = tag.New(0x0002, 0x0003)
	transferSyntaxUIDTag          = tag.New(0x0002, 0x0010)
	implementationClassUIDTag     = tag.New(0x0002, 0x0012)
)

// MetaInformation holds the required group-2 fields extracted from a
// DICOM stream's file meta information, plus the absolute byte offset
// where the body data set begins. The four UID-valued fields are kept as
// plain strings with their trailing NUL pad stripped, exactly as they
// arrived on the wire: this section only requires their presence, not
// that they additionally satisfy the dotted-numeric UID grammar
// uid.Parse enforces for values this engine actually dispatches on (the
// transfer syntax UID table).
type MetaInformation struct {
	MediaStorageSOPClassUID    string
	MediaStorageSOPInstanceUID string
	TransferSyntaxUID          string
	ImplementationClassUID     string
	EndPosition                int
}

// metaAccumulator is a Handler that records the raw value bytes of the
// four required group-2 UID attributes as the meta information data set
// streams past. It performs no semantic interpretation beyond stripping
// DICOM's trailing NUL pad before UTF-8 decoding a UID string.
type metaAccumulator struct {
	handler.BaseHandler
	values map[tag.Tag][]byte
}

func newMetaAccumulator() *metaAccumulator {
	return &metaAccumulator{values: make(map[tag.Tag][]byte)}
}

func (a *metaAccumulator) Data(attr handler.Attribute, data []byte, complete bool) {
	switch attr.Tag {
	case mediaStorageSOPClassUIDTag, mediaStorageSOPInstanceUIDTag, transferSyntaxUIDTag, implementationClassUIDTag:
		a.values[attr.Tag] = append(a.values[attr.Tag], data...)
	}
}

func (a *metaAccumulator) uidString(t tag.Tag) string {
	return strings.TrimRight(string(a.values[t]), "\x00")
}

// ParseMetaInformation implements spec §4.9: validates the preamble
// prefix, parses the body starting at offset 132 as an explicit little
// endian data set bounded to group 2, tees it to userHandler, and
// extracts the four required UIDs. bytes must hold the complete meta
// information section (and may hold more). When more follows, bytes must
// also hold the whole header of the first body attribute, since that
// header is what ends group 2; otherwise the result is a "truncated meta
// information" error. Unlike the body parser this
// is not itself resumable across chunk boundaries, matching the public
// API surface's MetaInformation::parse(handler, bytes).
func ParseMetaInformation(userHandler handler.Handler, bytes []byte) (MetaInformation, error) {
	if len(bytes) < bodyOffset {
		return MetaInformation{}, NewParseError("insufficient bytes for prefix", len(bytes))
	}
	if string(bytes[preambleLength:bodyOffset]) != "DICM" {
		return MetaInformation{}, NewParseError("DICOM not found at position 128", preambleLength)
	}

	acc := newMetaAccumulator()
	tee := handler.NewTeeHandler(acc, userHandler)
	cancelOnBody := handler.NewCancelHandler(tee, handler.GroupNotEquals(tag.MetadataGroup))

	dsp := NewDataSetParser(encoding.ExplicitLittleEndian{})
	res, err := dsp.Parse(cancelOnBody, bytes[bodyOffset:], bodyOffset)
	if err != nil {
		return MetaInformation{}, err
	}
	if res.State == Incomplete {
		return MetaInformation{}, NewParseError("truncated meta information", bodyOffset+res.BytesConsumed)
	}

	endPosition := bodyOffset + res.BytesConsumed

	sopClass := acc.uidString(mediaStorageSOPClassUIDTag)
	if sopClass == "" {
		return MetaInformation{}, NewParseError("missing MediaStorageSOPClassUID", endPosition)
	}
	sopInstance := acc.uidString(mediaStorageSOPInstanceUIDTag)
	if sopInstance == "" {
		return MetaInformation{}, NewParseError("missing MediaStorageSOPInstanceUID", endPosition)
	}
	transferSyntax := acc.uidString(transferSyntaxUIDTag)
	if transferSyntax == "" {
		return MetaInformation{}, NewParseError("missing TransferSyntaxUID", endPosition)
	}
	implementationClass := acc.uidString(implementationClassUIDTag)
	if implementationClass == "" {
		return MetaInformation{}, NewParseError("missing ImplementationClassUID", endPosition)
	}

	return MetaInformation{
		MediaStorageSOPClassUID:    sopClass,
		MediaStorageSOPInstanceUID: sopInstance,
		TransferSyntaxUID:          transferSyntax,
		ImplementationClassUID:     implementationClass,
		EndPosition:                endPosition,
	}, nil
}
