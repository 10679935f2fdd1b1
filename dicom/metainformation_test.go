package dicom_test

import (
	"testing"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMetaBody() []byte {
	return concatAll(
		shortVRElemLE(0x0002, 0x0002, "UI", []byte("1.2.840.10008.5.1.4.1.1.7\x00")),
		shortVRElemLE(0x0002, 0x0003, "UI", []byte("1.2.3.4.5.6\x00")),
		shortVRElemLE(0x0002, 0x0010, "UI", []byte("1.2.840.10008.1.2.1\x00")),
		shortVRElemLE(0x0002, 0x0012, "UI", []byte("1.2.3.4\x00")),
	)
}

func validStream() []byte {
	preamble := make([]byte, 128)
	prefix := []byte("DICM")
	return concatAll(preamble, prefix, validMetaBody())
}

func TestParseMetaInformation_Valid(t *testing.T) {
	data := validStream()
	meta, err := dicom.ParseMetaInformation(handler.BaseHandler{}, data)
	require.NoError(t, err)
	assert.Equal(t, "1.2.840.10008.5.1.4.1.1.7", meta.MediaStorageSOPClassUID)
	assert.Equal(t, "1.2.3.4.5.6", meta.MediaStorageSOPInstanceUID)
	assert.Equal(t, "1.2.840.10008.1.2.1", meta.TransferSyntaxUID)
	assert.Equal(t, "1.2.3.4", meta.ImplementationClassUID)
	assert.Equal(t, len(data), meta.EndPosition)
}

func TestParseMetaInformation_TruncatedPrefix(t *testing.T) {
	data := make([]byte, 100)
	_, err := dicom.ParseMetaInformation(handler.BaseHandler{}, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient bytes for prefix")
}

func TestParseMetaInformation_BadPrefix(t *testing.T) {
	data := validStream()
	copy(data[128:132], []byte("XXXX"))
	_, err := dicom.ParseMetaInformation(handler.BaseHandler{}, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DICOM not found at position 128")
}

func TestParseMetaInformation_MissingRequiredUID(t *testing.T) {
	preamble := make([]byte, 128)
	prefix := []byte("DICM")
	body := concatAll(
		shortVRElemLE(0x0002, 0x0002, "UI", []byte("1.2.840.10008.5.1.4.1.1.7\x00")),
		shortVRElemLE(0x0002, 0x0010, "UI", []byte("1.2.840.10008.1.2.1\x00")),
		shortVRElemLE(0x0002, 0x0012, "UI", []byte("1.2.3.4\x00")),
	)
	data := concatAll(preamble, prefix, body)

	_, err := dicom.ParseMetaInformation(handler.BaseHandler{}, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing MediaStorageSOPInstanceUID")
}

func TestParseMetaInformation_TeesToUserHandler(t *testing.T) {
	data := validStream()
	rec := &groupRecorder{}
	_, err := dicom.ParseMetaInformation(rec, data)
	require.NoError(t, err)
	assert.Equal(t, 4, rec.count)
}

type groupRecorder struct {
	handler.BaseHandler
	count int
}

func (g *groupRecorder) Attribute(attr handler.Attribute, position, headerLen int) handler.Control {
	g.count++
	return handler.Continue
}
