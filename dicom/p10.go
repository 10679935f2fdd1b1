// Package dicom implements a streaming, incremental, zero-copy parser
// for the DICOM Part-10 attribute stream: a fixed preamble, a file meta
// information header, and a body data set whose wire encoding is chosen
// at runtime from the transfer syntax UID discovered in that header.
package dicom

import (
	"bytes"
	"fmt"
	"io"

	"github.com/codeninja55/go-radx/dicom/encoding"
	"github.com/codeninja55/go-radx/dicom/handler"
	"github.com/codeninja55/go-radx/dicom/uid"
	"github.com/klauspost/compress/flate"
)

// Parse runs the top-level entry point (spec §4.10): it parses the file
// meta information, selects the body's Encoding from the transfer syntax
// UID it finds there, and parses the body data set with it. It returns
// the populated MetaInformation even when body parsing fails partway,
// since the header is fully valid at that point.
func Parse(h handler.Handler, data []byte) (MetaInformation, error) {
	meta, err := ParseMetaInformation(h, data)
	if err != nil {
		return MetaInformation{}, err
	}

	enc, err := encodingForTransferSyntax(meta.TransferSyntaxUID, data[meta.EndPosition:], meta.EndPosition)
	if err != nil {
		return meta, err
	}

	dsp := NewDataSetParser(enc)
	if _, err := dsp.Parse(h, data[meta.EndPosition:], meta.EndPosition); err != nil {
		return meta, err
	}
	return meta, nil
}

// encodingForTransferSyntax implements the dispatch table of spec §4.10.
// Deflated transfer syntax is validated far enough to confirm it really
// is a deflate stream — using klauspost/compress/flate, already part of
// this module's dependency closure — before surfacing it as the
// unsupported condition the spec requires; this engine never inflates a
// deflated body, but a body that isn't even valid DEFLATE gets a more
// specific reason than a generic unsupported one.
func encodingForTransferSyntax(transferSyntaxUID string, body []byte, position int) (encoding.Encoding, error) {
	switch transferSyntaxUID {
	case uid.ImplicitVRLittleEndian.String():
		return encoding.ImplicitLittleEndian{}, nil
	case uid.ExplicitVRBigEndian.String():
		return encoding.ExplicitBigEndian{}, nil
	case uid.DeflatedExplicitVRLittleEndian.String():
		if probeErr := validateDeflateStream(body); probeErr != nil {
			reason := fmt.Sprintf("%s: body is not a valid deflate stream: %s", ErrDeflatedUnsupported, probeErr)
			return nil, wrapParseErrorWithReason(ErrDeflatedUnsupported, reason, position)
		}
		return nil, wrapParseError(ErrDeflatedUnsupported, position)
	default:
		return encoding.ExplicitLittleEndian{}, nil
	}
}

// validateDeflateStream confirms body looks like a raw DEFLATE stream by
// reading its first byte through a flate.Reader, returning the decode
// error when it plainly isn't one. Support for deflated transfer syntax
// itself remains out of scope regardless of the outcome here.
func validateDeflateStream(body []byte) error {
	r := flate.NewReader(bytes.NewReader(body))
	defer r.Close()
	var probe [1]byte
	_, err := io.ReadFull(r, probe[:])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil
	}
	return err
}
