// Package verify implements the enrollment and verification flows on
// top of the reference store and the external face engine. It is the
// sole entry point used by the HTTP layer; every flow terminates in a
// structured outcome, never a fault.
package verify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/faceverify/internal/faceengine"
	"github.com/example/faceverify/internal/imagecodec"
	"github.com/example/faceverify/internal/logging"
	"github.com/example/faceverify/internal/refstore"
	"github.com/example/faceverify/internal/repository"
)

// Config carries the calibrated thresholds and limits for one Service.
// Thresholds live here rather than as inline literals so tests can vary
// them.
type Config struct {
	// DetectConfidence is the minimum detection confidence (0-1 scale)
	// an enrollment image must reach at the face presence gate.
	DetectConfidence float64
	// MaxImageDimension bounds decoded rasters on their longer side.
	MaxImageDimension int
}

// DefaultConfig returns the calibrated production thresholds.
func DefaultConfig() Config {
	return Config{
		DetectConfidence:  0.5,
		MaxImageDimension: imagecodec.DefaultMaxDimension,
	}
}

// Outcome messages. The HTTP layer branches on MsgInvalidImage to pick
// a status code, so these are part of the package contract.
const (
	MsgInvalidImage  = "Invalid image data"
	MsgNoFace        = "No face detected in image"
	MsgStoreFailure  = "Failed to save face image"
	MsgRegistered    = "Face registered successfully"
	MsgNotRegistered = "Face not registered for this employee"
	MsgLoadFailure   = "Failed to load registered face"
	MsgMatched       = "Face matched!"
	MsgNotMatched    = "Face does not match"
)

// EnrollmentOutcome is the structured result of an Enroll call.
type EnrollmentOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VerificationOutcome is the structured result of a Verify call.
type VerificationOutcome struct {
	Success    bool    `json:"success"`
	Match      bool    `json:"match"`
	Distance   float64 `json:"distance"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message"`
}

// AuditRepository defines the persistence operations needed by the service.
type AuditRepository interface {
	SaveLog(ctx context.Context, log *repository.VerificationLog) error
	FindByRequestID(ctx context.Context, requestID string) (*repository.VerificationLog, error)
	AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error)
}

// Service composes the decoder, the face presence gate, the reference
// store and the similarity engine into the enrollment and verification
// flows.
type Service struct {
	store          refstore.Store
	engine         faceengine.Client
	repo           AuditRepository
	cache          Cache
	logger         *zap.Logger
	cfg            Config
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewService constructs a Service. repo and cache may be nil; audit
// persistence and result caching are then skipped.
func NewService(store refstore.Store, engine faceengine.Client, repo AuditRepository, cache Cache, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		store:          store,
		engine:         engine,
		repo:           repo,
		cache:          cache,
		logger:         logger.Named("verify_service"),
		cfg:            cfg,
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// Enroll decodes the payload, gates on face presence and commits the
// reference record for empID. Re-enrollment replaces the prior record.
func (s *Service) Enroll(ctx context.Context, empID, encoded string) EnrollmentOutcome {
	opLogger := logging.WithOperation(s.logger, "verify.enroll", "").With(zap.String("emp_id", empID))

	raster, err := imagecodec.Decode(encoded, s.cfg.MaxImageDimension)
	if err != nil {
		opLogger.Warn("enrollment image rejected", zap.Error(err))
		return EnrollmentOutcome{Success: false, Message: MsgInvalidImage}
	}

	jpeg, err := raster.EncodeJPEG()
	if err != nil {
		opLogger.Error("failed to encode enrollment image", zap.Error(err))
		return EnrollmentOutcome{Success: false, Message: MsgInvalidImage}
	}

	if !s.hasQualifyingFace(ctx, jpeg) {
		opLogger.Info("no qualifying face in enrollment image")
		return EnrollmentOutcome{Success: false, Message: MsgNoFace}
	}

	if _, err := s.store.Put(ctx, empID, jpeg); err != nil {
		wrapped := logging.NewOperationError("verify.store_reference", "", err)
		opLogger.Error("failed to save face image", zap.Error(wrapped))
		return EnrollmentOutcome{Success: false, Message: MsgStoreFailure}
	}

	opLogger.Info("face registered")
	return EnrollmentOutcome{Success: true, Message: MsgRegistered}
}

// Verify decodes the probe, fetches the reference for empID and asks
// the similarity engine for a verdict. The returned request id keys the
// audit record and the cached result; it is empty when verification
// failed before reaching the engine.
func (s *Service) Verify(ctx context.Context, empID, encoded string) (string, VerificationOutcome) {
	opLogger := logging.WithOperation(s.logger, "verify.verify", "").With(zap.String("emp_id", empID))

	probe, err := imagecodec.Decode(encoded, s.cfg.MaxImageDimension)
	if err != nil {
		opLogger.Warn("probe image rejected", zap.Error(err))
		return "", VerificationOutcome{Success: false, Match: false, Message: MsgInvalidImage}
	}

	reference, err := s.store.Get(ctx, empID)
	if err != nil {
		if errors.Is(err, refstore.ErrNotFound) {
			opLogger.Info("identity not registered")
			return "", VerificationOutcome{Success: false, Match: false, Message: MsgNotRegistered}
		}
		wrapped := logging.NewOperationError("verify.load_reference", "", err)
		opLogger.Error("failed to load reference", zap.Error(wrapped))
		return "", VerificationOutcome{Success: false, Match: false, Message: MsgLoadFailure}
	}

	probeJPEG, err := probe.EncodeJPEG()
	if err != nil {
		opLogger.Error("failed to encode probe", zap.Error(err))
		return "", VerificationOutcome{Success: false, Match: false, Message: MsgInvalidImage}
	}

	requestID := uuid.NewString()
	s.markProcessing(ctx, requestID)

	cmp, confidence, cmpErr := s.compareFaces(ctx, reference, probeJPEG)

	outcome := VerificationOutcome{
		Success:    true,
		Match:      cmp.Matched,
		Distance:   cmp.Distance,
		Confidence: confidence,
		Message:    MsgNotMatched,
	}
	if cmp.Matched {
		outcome.Message = MsgMatched
	}

	s.recordOutcome(ctx, requestID, empID, cmp, outcome, cmpErr)

	opLogger.Info("verification completed",
		zap.String("request_id", requestID),
		zap.Bool("match", outcome.Match),
		zap.Float64("distance", outcome.Distance),
		zap.Float64("confidence", outcome.Confidence),
	)
	return requestID, outcome
}

// Status reports whether a reference record is committed for empID.
func (s *Service) Status(ctx context.Context, empID string) (bool, error) {
	registered, err := s.store.Exists(ctx, empID)
	if err != nil {
		return false, logging.NewOperationError("verify.status", "", err)
	}
	return registered, nil
}

// recordOutcome persists the audit record and caches the serialized
// outcome. Both are best effort: the verification outcome already
// belongs to the caller and is never failed retroactively.
func (s *Service) recordOutcome(ctx context.Context, requestID, empID string, cmp *faceengine.Comparison, outcome VerificationOutcome, cmpErr error) {
	details := fmt.Sprintf("matched:%t distance:%f threshold:%f model:%s", cmp.Matched, cmp.Distance, cmp.Threshold, cmp.Model)
	if cmpErr != nil {
		details = fmt.Sprintf("engine_error:%v", cmpErr)
	}

	if s.repo != nil {
		log := &repository.VerificationLog{
			RequestID:  requestID,
			EmpID:      empID,
			Matched:    outcome.Match,
			Distance:   outcome.Distance,
			Confidence: outcome.Confidence,
			Success:    outcome.Success,
			Details:    details,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.repo.SaveLog(ctx, log); err != nil {
			logging.WithOperation(s.logger, "verify.save_audit", requestID).Error("failed to persist verification log", zap.Error(err))
		}
	}

	if s.cache == nil {
		return
	}
	cached := cachedVerification{
		RequestID:  requestID,
		EmpID:      empID,
		Matched:    outcome.Match,
		Distance:   outcome.Distance,
		Confidence: outcome.Confidence,
		Success:    outcome.Success,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}
	serialized, err := json.Marshal(cached)
	if err != nil {
		logging.WithOperation(s.logger, "verify.cache_result", requestID).Error("failed to serialize result", zap.Error(err))
		return
	}
	if err := s.withCacheRetry(ctx, requestID, "cache.set.result", func() error {
		return s.cache.Set(ctx, cacheKey(requestID), string(serialized), 5*time.Minute)
	}); err != nil {
		logging.WithOperation(s.logger, "verify.cache_result", requestID).Warn("failed to cache result", zap.Error(err))
	}
}

func (s *Service) markProcessing(ctx context.Context, requestID string) {
	if s.cache == nil {
		return
	}
	if err := s.withCacheRetry(ctx, requestID, "cache.set.processing", func() error {
		return s.cache.Set(ctx, cacheKey(requestID), "processing", time.Minute)
	}); err != nil {
		logging.WithOperation(s.logger, "verify.mark_processing", requestID).Warn("failed to set processing flag", zap.Error(err))
	}
}

func cacheKey(requestID string) string {
	return fmt.Sprintf("verification:%s", requestID)
}
