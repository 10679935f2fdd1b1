package collector_test

import (
	"testing"

	"github.com/codeninja55/go-radx/dicom/collector"
	"github.com/codeninja55/go-radx/dicom/handler"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_FlatAttributes(t *testing.T) {
	c := collector.New()
	a1 := handler.Attribute{Tag: tag.New(0x0010, 0x0010), VR: vr.PersonName, HasVR: true}
	a2 := handler.Attribute{Tag: tag.New(0x0010, 0x0020), VR: vr.LongString, HasVR: true}

	c.Attribute(a1, 0, 8)
	c.Data(a1, []byte("Doe^Jane"), true)
	c.Attribute(a2, 20, 8)
	c.Data(a2, []byte("ID0001"), true)

	require.Len(t, c.Root(), 2)
	assert.Equal(t, "Doe^Jane", string(c.Root()[0].Value))
	assert.Equal(t, "ID0001", string(c.Root()[1].Value))

	n, ok := c.Find(a2.Tag)
	require.True(t, ok)
	assert.Equal(t, "ID0001", string(n.Value))
}

func TestCollector_NestedSequenceWithTwoItems(t *testing.T) {
	c := collector.New()
	sq := handler.Attribute{Tag: tag.New(0x0040, 0xA040), VR: vr.SequenceOfItems, HasVR: true}
	child := handler.Attribute{Tag: tag.New(0x0008, 0x0100), VR: vr.ShortString, HasVR: true}

	c.Attribute(sq, 0, 12)
	c.StartSequenceItem(sq)
	c.Attribute(child, 12, 8)
	c.Data(child, []byte("CODE1"), true)
	c.EndSequenceItem(sq)

	c.StartSequenceItem(sq)
	c.Attribute(child, 40, 8)
	c.Data(child, []byte("CODE2"), true)
	c.EndSequenceItem(sq)

	require.Len(t, c.Root(), 1)
	sqNode := c.Root()[0]
	require.Len(t, sqNode.Items, 2)
	require.Len(t, sqNode.Items[0], 1)
	require.Len(t, sqNode.Items[1], 1)
	assert.Equal(t, "CODE1", string(sqNode.Items[0][0].Value))
	assert.Equal(t, "CODE2", string(sqNode.Items[1][0].Value))

	// A subsequent top-level attribute appends to root, not into the
	// sequence's last item.
	top := handler.Attribute{Tag: tag.New(0x0008, 0x0060), VR: vr.CodeString, HasVR: true}
	c.Attribute(top, 60, 8)
	c.Data(top, []byte("CT"), true)
	require.Len(t, c.Root(), 2)
	assert.Equal(t, "CT", string(c.Root()[1].Value))
}

func TestCollector_PixelDataFragments(t *testing.T) {
	c := collector.New()
	px := handler.Attribute{Tag: tag.New(0x7FE0, 0x0010), VR: vr.OtherByte, HasVR: true}

	c.Attribute(px, 0, 12)
	c.BasicOffsetTable(px, []byte{}, true)
	c.PixelDataFragment(px, 1, []byte{0xAA, 0xBB}, true)
	c.PixelDataFragment(px, 2, []byte{0xCC}, true)

	require.Len(t, c.Root(), 1)
	pxNode := c.Root()[0]
	require.Len(t, pxNode.Fragments, 2)
	assert.Equal(t, []byte{0xAA, 0xBB}, pxNode.Fragments[0])
	assert.Equal(t, []byte{0xCC}, pxNode.Fragments[1])
}

var _ handler.Handler = (*collector.Collector)(nil)
