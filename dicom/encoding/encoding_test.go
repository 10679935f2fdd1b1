package encoding_test

import (
	"testing"

	"github.com/codeninja55/go-radx/dicom/encoding"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplicitLittleEndian_DecodeHeader_ShortVR(t *testing.T) {
	// (0008,0020) DA 8 -> header_len=8
	b := []byte{0x08, 0x00, 0x20, 0x00, 'D', 'A', 0x08, 0x00}
	h, ok, err := encoding.ExplicitLittleEndian{}.DecodeHeader(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tag.New(0x0008, 0x0020), h.Tag)
	assert.Equal(t, vr.Date, h.VR)
	assert.True(t, h.HasVR)
	assert.Equal(t, uint32(8), h.Length)
	assert.Equal(t, 8, h.HeaderLen)
}

func TestExplicitLittleEndian_DecodeHeader_LongVR(t *testing.T) {
	// (0002,0001) OB reserved(0000) length=2 -> header_len=12
	b := []byte{0x02, 0x00, 0x01, 0x00, 'O', 'B', 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	h, ok, err := encoding.ExplicitLittleEndian{}.DecodeHeader(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, vr.OtherByte, h.VR)
	assert.Equal(t, uint32(2), h.Length)
	assert.Equal(t, 12, h.HeaderLen)
}

func TestExplicitLittleEndian_DecodeHeader_Incomplete(t *testing.T) {
	b := []byte{0x08, 0x00, 0x20, 0x00, 'D'}
	_, ok, err := encoding.ExplicitLittleEndian{}.DecodeHeader(b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExplicitLittleEndian_DecodeHeader_LongVR_NeedsMoreBytes(t *testing.T) {
	b := []byte{0x02, 0x00, 0x01, 0x00, 'O', 'B', 0x00, 0x00, 0x02}
	_, ok, err := encoding.ExplicitLittleEndian{}.DecodeHeader(b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestImplicitLittleEndian_DecodeHeader(t *testing.T) {
	// (0008,0020) length=8, implicit VR.
	b := []byte{0x08, 0x00, 0x20, 0x00, 0x08, 0x00, 0x00, 0x00}
	h, ok, err := encoding.ImplicitLittleEndian{}.DecodeHeader(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, h.HasVR)
	assert.Equal(t, uint32(8), h.Length)
	assert.Equal(t, 8, h.HeaderLen)
}

func TestExplicitBigEndian_DecodeHeader(t *testing.T) {
	b := []byte{0x00, 0x08, 0x00, 0x20, 'D', 'A', 0x00, 0x08}
	h, ok, err := encoding.ExplicitBigEndian{}.DecodeHeader(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tag.New(0x0008, 0x0020), h.Tag)
	assert.Equal(t, uint32(8), h.Length)
}

func TestDecodeHeader_ReservedTags(t *testing.T) {
	tests := []struct {
		name string
		tag  tag.Tag
	}{
		{"Item", tag.Item},
		{"ItemDelimitation", tag.ItemDelimitation},
		{"SequenceDelimitation", tag.SequenceDelimitation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := []byte{
				byte(tt.tag.Group), byte(tt.tag.Group >> 8),
				byte(tt.tag.Element), byte(tt.tag.Element >> 8),
				0x00, 0x00, 0x00, 0x00,
			}
			h, ok, err := encoding.ImplicitLittleEndian{}.DecodeHeader(b)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.tag, h.Tag)
			assert.False(t, h.HasVR)
			assert.Equal(t, 8, h.HeaderLen)
		})
	}
}

func TestDecodeHeader_UndefinedLengthHoldsBackTrailingWindow(t *testing.T) {
	// SQ attribute, undefined length: header itself decodes at 12 bytes,
	// but the engine must not report success until 8 more bytes are
	// available so the caller can disambiguate a following item header.
	header := []byte{0x08, 0x00, 0x06, 0x30, 'S', 'Q', 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}
	_, ok, err := encoding.ExplicitLittleEndian{}.DecodeHeader(header)
	require.NoError(t, err)
	assert.False(t, ok, "should hold back until trailing window is available")

	withTrailing := append(append([]byte{}, header...), make([]byte, 8)...)
	h, ok, err := encoding.ExplicitLittleEndian{}.DecodeHeader(withTrailing)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, encoding.UndefinedLength, h.Length)
}

func TestDecodeHeader_UnknownVRFallsBackToUnknown(t *testing.T) {
	// Unknown VR behaves like UN: 32-bit length field, 12-byte header.
	b := []byte{0x09, 0x00, 0x01, 0x00, 'Z', 'Z', 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	h, ok, err := encoding.ExplicitLittleEndian{}.DecodeHeader(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, vr.Unknown, h.VR)
	assert.Equal(t, 12, h.HeaderLen)
	assert.Equal(t, [2]byte{'Z', 'Z'}, h.UnknownVRBytes)
}
