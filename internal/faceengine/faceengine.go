package faceengine

import "context"

// Detection is the engine's answer to "is there a face in this image".
type Detection struct {
	FaceFound  bool
	Confidence float64
}

// Comparison is the engine's verdict on a reference/probe pair. Matched
// is the engine's own decision against its calibrated Threshold and is
// adopted as-is by callers.
type Comparison struct {
	Distance  float64
	Threshold float64
	Matched   bool
	Model     string
}

// Client exposes the subset of the external detection/embedding
// capability used by the verification flow. Implementations must not
// fail a CompareFaces call just because no face was confidently found
// in the probe; that case degrades to a large distance.
type Client interface {
	DetectFace(ctx context.Context, image []byte) (*Detection, error)
	CompareFaces(ctx context.Context, reference, probe []byte) (*Comparison, error)
}
