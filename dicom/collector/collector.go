// Package collector provides a concrete Handler implementation that
// assembles parsed attributes into an ordered, tag-indexed tree of raw
// byte values — the Handler a caller reaches for first when it just
// wants "the data set" rather than a custom streaming consumer. It
// performs no semantic value interpretation: values are kept as the raw
// bytes the parser delivered, and VR/tag metadata is carried verbatim
// from the engine's attribute events.
package collector

import (
	"github.com/codeninja55/go-radx/dicom/handler"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/vr"
)

// Node is one attribute as collected off the wire: a primitive value
// (Value), or — for a sequence — one ordered list of child Nodes per
// item (Items), or — for encapsulated pixel data — a Basic Offset Table
// (Value) plus fragments.
type Node struct {
	Tag       tag.Tag
	VR        vr.VR
	HasVR     bool
	Value     []byte
	Items     [][]*Node
	Fragments [][]byte
	// UnknownVRBytes preserves the literal two VR bytes read off the
	// wire when VR == vr.Unknown as a fallback for a code outside the
	// closed VR set. Zero value otherwise.
	UnknownVRBytes [2]byte
}

// frame tracks the node list new top-level attributes in the current
// nesting level append to, and the most recently attributed node within
// it (the target of any Data/StartSequence/... event that follows).
type frame struct {
	nodes *[]*Node
	last  *Node
}

// Collector is a handler.Handler that builds a Node tree rooted at
// Root(). Attribute events append a new Node to whichever data set is
// currently active; sequence item events push and pop a stack of nested
// data sets, mirroring the recursive structure the engine itself walks.
type Collector struct {
	handler.BaseHandler
	root  []*Node
	stack []*frame
}

// New returns an empty Collector ready to receive events for one data
// set (a full stream body, or a MetaInformation header section).
func New() *Collector {
	c := &Collector{}
	c.stack = []*frame{{nodes: &c.root}}
	return c
}

// Root returns the top-level attributes collected so far, in wire order.
func (c *Collector) Root() []*Node {
	return c.root
}

// Find returns the first top-level Node with the given tag.
func (c *Collector) Find(t tag.Tag) (*Node, bool) {
	for _, n := range c.root {
		if n.Tag == t {
			return n, true
		}
	}
	return nil, false
}

func (c *Collector) top() *frame {
	return c.stack[len(c.stack)-1]
}

func (c *Collector) Attribute(attr handler.Attribute, position, headerLen int) handler.Control {
	n := &Node{Tag: attr.Tag, VR: attr.VR, HasVR: attr.HasVR, UnknownVRBytes: attr.UnknownVRBytes}
	f := c.top()
	*f.nodes = append(*f.nodes, n)
	f.last = n
	return handler.Continue
}

func (c *Collector) Data(attr handler.Attribute, data []byte, complete bool) {
	n := c.top().last
	n.Value = append(n.Value, data...)
}

func (c *Collector) StartSequenceItem(attr handler.Attribute) {
	n := c.top().last
	n.Items = append(n.Items, nil)
	idx := len(n.Items) - 1
	c.stack = append(c.stack, &frame{nodes: &n.Items[idx]})
}

func (c *Collector) EndSequenceItem(attr handler.Attribute) {
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Collector) BasicOffsetTable(attr handler.Attribute, data []byte, complete bool) handler.Control {
	n := c.top().last
	n.Value = append(n.Value, data...)
	return handler.Continue
}

func (c *Collector) PixelDataFragment(attr handler.Attribute, fragmentNumber int, data []byte, complete bool) handler.Control {
	n := c.top().last
	for len(n.Fragments) < fragmentNumber {
		n.Fragments = append(n.Fragments, nil)
	}
	n.Fragments[fragmentNumber-1] = append(n.Fragments[fragmentNumber-1], data...)
	return handler.Continue
}

var _ handler.Handler = (*Collector)(nil)
