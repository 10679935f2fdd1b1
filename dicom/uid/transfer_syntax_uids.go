package uid

// Transfer Syntax UIDs recognized when dispatching body-encoding selection
// for a parsed stream: the ones that choose between the three Encoding
// variants, the unsupported deflated syntax, and a few encapsulated pixel
// data syntaxes that are not dispatched on. The full DICOM transfer syntax
// registry is outside this package's scope.
var (
	// ImplicitVRLittleEndian is the default transfer syntax for DICOM.
	ImplicitVRLittleEndian = MustParse("1.2.840.10008.1.2")

	// ExplicitVRLittleEndian is the most common transfer syntax in practice.
	ExplicitVRLittleEndian = MustParse("1.2.840.10008.1.2.1")

	// DeflatedExplicitVRLittleEndian wraps the dataset in raw DEFLATE.
	DeflatedExplicitVRLittleEndian = MustParse("1.2.840.10008.1.2.1.99")

	// ExplicitVRBigEndian (RETIRED).
	//
	// Deprecated: This UID has been retired from the DICOM standard.
	ExplicitVRBigEndian = MustParse("1.2.840.10008.1.2.2")

	// JPEGBaselineProcess1 is a common lossy pixel data encapsulation.
	JPEGBaselineProcess1 = MustParse("1.2.840.10008.1.2.4.50")

	// JPEGLSLosslessImageCompression is a lossless pixel data encapsulation.
	JPEGLSLosslessImageCompression = MustParse("1.2.840.10008.1.2.4.80")

	// JPEG2000ImageCompressionLosslessOnly is a lossless pixel data encapsulation.
	JPEG2000ImageCompressionLosslessOnly = MustParse("1.2.840.10008.1.2.4.90")

	// RLELossless is a simple byte run-length encapsulation.
	RLELossless = MustParse("1.2.840.10008.1.2.5")
)
