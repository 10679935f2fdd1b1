package dicom

import (
	"github.com/codeninja55/go-radx/dicom/encoding"
	"github.com/codeninja55/go-radx/dicom/handler"
)

func attributeFromHeader(h encoding.Header) Attribute {
	return Attribute{Tag: h.Tag, VR: h.VR, HasVR: h.HasVR, Length: h.Length, UnknownVRBytes: h.UnknownVRBytes}
}

func toHandlerAttr(a Attribute) handler.Attribute {
	return handler.Attribute{Tag: a.Tag, VR: a.VR, HasVR: a.HasVR, Length: a.Length, UnknownVRBytes: a.UnknownVRBytes}
}
