package dicom

import "github.com/codeninja55/go-radx/dicom/handler"

// SOPInstance identifies one stored instance by its SOP Class and SOP
// Instance UIDs, as carried in a stream's file meta information.
type SOPInstance struct {
	SOPClassUID    string
	SOPInstanceUID string
}

// IdentifySOPInstance reads only as much of data as the file meta
// information section requires to answer "which instance is this,"
// without dispatching or parsing the body data set at all. This is the
// cheap path for routing or cataloguing incoming streams before
// committing to a full parse.
func IdentifySOPInstance(data []byte) (SOPInstance, error) {
	meta, err := ParseMetaInformation(handler.BaseHandler{}, data)
	if err != nil {
		return SOPInstance{}, err
	}
	return SOPInstance{
		SOPClassUID:    meta.MediaStorageSOPClassUID,
		SOPInstanceUID: meta.MediaStorageSOPInstanceUID,
	}, nil
}
