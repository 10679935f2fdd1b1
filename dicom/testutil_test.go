package dicom_test

import "encoding/binary"

// Fixture builders for hand-rolled DICOM byte sequences. Tests build
// exact wire bytes rather than going through an encoder, since the
// engine under test is the decoder.

func u16le(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func u16be(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func u32be(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// shortVRElemLE builds an explicit-VR little-endian element using the
// 16-bit value length layout (tag, VR, 2-byte length, value).
func shortVRElemLE(group, elem uint16, vrStr string, value []byte) []byte {
	b := append([]byte{}, u16le(group)...)
	b = append(b, u16le(elem)...)
	b = append(b, vrStr...)
	b = append(b, u16le(uint16(len(value)))...)
	b = append(b, value...)
	return b
}

// longVRElemLE builds an explicit-VR little-endian element using the
// 32-bit value length layout (tag, VR, 2 reserved bytes, 4-byte length,
// value). length == 0xFFFFFFFF is passed through verbatim for
// undefined-length fixtures, in which case value is the bytes that
// follow the header within the same chunk (not a declared length).
func longVRElemLE(group, elem uint16, vrStr string, length uint32, value []byte) []byte {
	b := append([]byte{}, u16le(group)...)
	b = append(b, u16le(elem)...)
	b = append(b, vrStr...)
	b = append(b, 0x00, 0x00)
	b = append(b, u32le(length)...)
	b = append(b, value...)
	return b
}

// implicitElemLE builds an implicit-VR little-endian element (tag,
// 4-byte length, value).
func implicitElemLE(group, elem uint16, length uint32, value []byte) []byte {
	b := append([]byte{}, u16le(group)...)
	b = append(b, u16le(elem)...)
	b = append(b, u32le(length)...)
	b = append(b, value...)
	return b
}

// reservedHeaderLE builds an 8-byte reserved-tag header (Item,
// ItemDelimitation, SequenceDelimitation): tag followed by a 4-byte
// length, with no VR field, matching DICOM's wire layout for these tags
// regardless of transfer syntax.
func reservedHeaderLE(group, elem uint16, length uint32) []byte {
	b := append([]byte{}, u16le(group)...)
	b = append(b, u16le(elem)...)
	b = append(b, u32le(length)...)
	return b
}

func itemHeaderLE(length uint32) []byte               { return reservedHeaderLE(0xFFFE, 0xE000, length) }
func itemDelimitationLE() []byte                       { return reservedHeaderLE(0xFFFE, 0xE00D, 0) }
func sequenceDelimitationLE() []byte                   { return reservedHeaderLE(0xFFFE, 0xE0DD, 0) }

// sqElemHeaderLE builds a sequence attribute's own header: SQ always
// uses the 12-byte explicit-VR layout.
func sqElemHeaderLE(group, elem uint16, length uint32) []byte {
	return longVRElemLE(group, elem, "SQ", length, nil)
}

func concatAll(chunks ...[]byte) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
