package verify

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/faceverify/internal/faceengine"
)

// Confidence remaps a distance/threshold pair into the 0-100 scale
// shown to callers: max(0, (1 - d/t) * 100). It is a display scalar,
// not a probability. Zero whenever d >= t or the threshold is unusable.
func Confidence(distance, threshold float64) float64 {
	if threshold <= 0 {
		return 0
	}
	c := (1 - distance/threshold) * 100
	if c < 0 {
		return 0
	}
	return c
}

// failedComparisonDistance is the sentinel "maximally dissimilar"
// distance reported when the engine call itself fails.
const failedComparisonDistance = 1.0

// compareFaces asks the engine for a reference/probe comparison and
// derives the confidence value. The engine's own Matched verdict is
// adopted as-is. An engine failure degrades to a no-match result with
// zero confidence; the failure is returned alongside so the caller can
// record it, but verification never aborts on it.
func (s *Service) compareFaces(ctx context.Context, reference, probe []byte) (*faceengine.Comparison, float64, error) {
	cmp, err := s.engine.CompareFaces(ctx, reference, probe)
	if err != nil {
		s.logger.Warn("face comparison degraded to no-match", zap.Error(err))
		return &faceengine.Comparison{
			Distance: failedComparisonDistance,
			Matched:  false,
		}, 0, err
	}
	return cmp, Confidence(cmp.Distance, cmp.Threshold), nil
}

// hasQualifyingFace reports whether the engine finds at least one face
// with detection confidence above the configured floor. Engine failure
// counts as no qualifying face (fail closed). Enrollment only;
// verification relies on the compare call's own relaxed detection.
func (s *Service) hasQualifyingFace(ctx context.Context, image []byte) bool {
	det, err := s.engine.DetectFace(ctx, image)
	if err != nil {
		s.logger.Warn("face detection failed, treating as no face", zap.Error(err))
		return false
	}
	return det.FaceFound && det.Confidence > s.cfg.DetectConfidence
}
