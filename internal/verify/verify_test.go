package verify

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/example/faceverify/internal/faceengine"
	"github.com/example/faceverify/internal/refstore"
	"github.com/example/faceverify/internal/repository"
)

type stubStore struct {
	records   map[string][]byte
	putErr    error
	getErr    error
	existsErr error
	putCalls  int
}

func newStubStore() *stubStore {
	return &stubStore{records: make(map[string][]byte)}
}

func (s *stubStore) Exists(ctx context.Context, key string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	_, ok := s.records[key]
	return ok, nil
}

func (s *stubStore) Put(ctx context.Context, key string, jpeg []byte) (string, error) {
	s.putCalls++
	if s.putErr != nil {
		return "", s.putErr
	}
	s.records[key] = jpeg
	return key + ".jpg", nil
}

func (s *stubStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	data, ok := s.records[key]
	if !ok {
		return nil, refstore.ErrNotFound
	}
	return data, nil
}

type stubEngine struct {
	detection    *faceengine.Detection
	detectErr    error
	comparison   *faceengine.Comparison
	compareErr   error
	detectCalls  int
	compareCalls int
}

func (s *stubEngine) DetectFace(ctx context.Context, image []byte) (*faceengine.Detection, error) {
	s.detectCalls++
	if s.detectErr != nil {
		return nil, s.detectErr
	}
	return s.detection, nil
}

func (s *stubEngine) CompareFaces(ctx context.Context, reference, probe []byte) (*faceengine.Comparison, error) {
	s.compareCalls++
	if s.compareErr != nil {
		return nil, s.compareErr
	}
	return s.comparison, nil
}

type stubCache struct {
	setErrs   []error
	getErrs   []error
	getValues []string
	setKeys   []string
	getKeys   []string
}

func (s *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s.setKeys = append(s.setKeys, key)
	if len(s.setErrs) == 0 {
		return nil
	}
	err := s.setErrs[0]
	s.setErrs = s.setErrs[1:]
	return err
}

func (s *stubCache) Get(ctx context.Context, key string) (string, error) {
	s.getKeys = append(s.getKeys, key)
	var value string
	if len(s.getValues) > 0 {
		value = s.getValues[0]
		s.getValues = s.getValues[1:]
	}
	var err error
	if len(s.getErrs) > 0 {
		err = s.getErrs[0]
		s.getErrs = s.getErrs[1:]
	}
	return value, err
}

type stubRepo struct {
	savedLogs []*repository.VerificationLog
	saveErr   error
	findLog   *repository.VerificationLog
	findErr   error
	agg       *repository.MetricsAggregation
	aggErr    error
	findCalls int
}

func (s *stubRepo) SaveLog(ctx context.Context, log *repository.VerificationLog) error {
	s.savedLogs = append(s.savedLogs, log)
	return s.saveErr
}

func (s *stubRepo) FindByRequestID(ctx context.Context, requestID string) (*repository.VerificationLog, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.findLog != nil {
		return s.findLog, nil
	}
	return nil, errors.New("not found")
}

func (s *stubRepo) AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error) {
	if s.aggErr != nil {
		return nil, s.aggErr
	}
	return s.agg, nil
}

func testPayload(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 31), G: uint8(y * 29), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func newTestService(store refstore.Store, engine faceengine.Client, repo AuditRepository, cache Cache) *Service {
	svc := NewService(store, engine, repo, cache, DefaultConfig(), zap.NewNop())
	svc.initialBackoff = time.Millisecond
	svc.maxBackoff = 2 * time.Millisecond
	return svc
}

func TestConfidenceFormula(t *testing.T) {
	cases := []struct {
		name      string
		distance  float64
		threshold float64
		want      float64
	}{
		{"identical images", 0, 0.6, 100},
		{"half of threshold", 0.3, 0.6, 50},
		{"at threshold", 0.6, 0.6, 0},
		{"beyond threshold clamps", 1.2, 0.6, 0},
		{"unusable threshold", 0.1, 0, 0},
	}
	for _, tc := range cases {
		if got := Confidence(tc.distance, tc.threshold); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: Confidence(%v, %v) = %v, want %v", tc.name, tc.distance, tc.threshold, got, tc.want)
		}
	}
}

func TestConfidenceMonotonicallyDecreasing(t *testing.T) {
	const threshold = 0.6
	prev := math.Inf(1)
	for d := 0.0; d <= 1.5; d += 0.05 {
		c := Confidence(d, threshold)
		if c > prev {
			t.Fatalf("confidence increased at distance %v: %v > %v", d, c, prev)
		}
		prev = c
	}
}

func TestEnrollStoresReference(t *testing.T) {
	store := newStubStore()
	engine := &stubEngine{detection: &faceengine.Detection{FaceFound: true, Confidence: 0.92}}
	svc := newTestService(store, engine, nil, nil)

	outcome := svc.Enroll(context.Background(), "emp001", testPayload(t))
	if !outcome.Success {
		t.Fatalf("expected success, got %q", outcome.Message)
	}
	if outcome.Message != MsgRegistered {
		t.Fatalf("unexpected message: %q", outcome.Message)
	}
	if engine.detectCalls != 1 {
		t.Fatalf("expected 1 detect call, got %d", engine.detectCalls)
	}
	if len(store.records["emp001"]) == 0 {
		t.Fatal("expected reference record to be stored")
	}
}

func TestEnrollIsIdempotentOnReenrollment(t *testing.T) {
	store := newStubStore()
	engine := &stubEngine{detection: &faceengine.Detection{FaceFound: true, Confidence: 0.9}}
	svc := newTestService(store, engine, nil, nil)
	payload := testPayload(t)

	first := svc.Enroll(context.Background(), "emp001", payload)
	second := svc.Enroll(context.Background(), "emp001", payload)
	if !first.Success || !second.Success {
		t.Fatalf("expected both enrollments to succeed: %v / %v", first, second)
	}
	if store.putCalls != 2 {
		t.Fatalf("expected 2 store writes, got %d", store.putCalls)
	}
	if exists, _ := store.Exists(context.Background(), "emp001"); !exists {
		t.Fatal("expected emp001 to remain enrolled")
	}
}

func TestEnrollRejectsInvalidImage(t *testing.T) {
	engine := &stubEngine{detection: &faceengine.Detection{FaceFound: true, Confidence: 0.9}}
	svc := newTestService(newStubStore(), engine, nil, nil)

	outcome := svc.Enroll(context.Background(), "emp001", "not-a-real-image")
	if outcome.Success {
		t.Fatal("expected failure for garbage payload")
	}
	if outcome.Message != MsgInvalidImage {
		t.Fatalf("unexpected message: %q", outcome.Message)
	}
	if engine.detectCalls != 0 {
		t.Fatal("engine must not be invoked for undecodable input")
	}
}

func TestEnrollFailsClosedAtTheGate(t *testing.T) {
	cases := map[string]*stubEngine{
		"no face found":       {detection: &faceengine.Detection{FaceFound: false}},
		"confidence too low":  {detection: &faceengine.Detection{FaceFound: true, Confidence: 0.4}},
		"confidence at floor": {detection: &faceengine.Detection{FaceFound: true, Confidence: 0.5}},
		"engine call fails":   {detectErr: errors.New("engine down")},
	}
	for name, engine := range cases {
		store := newStubStore()
		svc := newTestService(store, engine, nil, nil)

		outcome := svc.Enroll(context.Background(), "emp001", testPayload(t))
		if outcome.Success {
			t.Errorf("%s: expected gate rejection", name)
		}
		if outcome.Message != MsgNoFace {
			t.Errorf("%s: unexpected message %q", name, outcome.Message)
		}
		if store.putCalls != 0 {
			t.Errorf("%s: store must not be written", name)
		}
	}
}

func TestEnrollReportsStoreFailure(t *testing.T) {
	store := newStubStore()
	store.putErr = errors.New("disk full")
	engine := &stubEngine{detection: &faceengine.Detection{FaceFound: true, Confidence: 0.9}}
	svc := newTestService(store, engine, nil, nil)

	outcome := svc.Enroll(context.Background(), "emp001", testPayload(t))
	if outcome.Success {
		t.Fatal("expected failure on store error")
	}
	if outcome.Message != MsgStoreFailure {
		t.Fatalf("unexpected message: %q", outcome.Message)
	}
}

func TestVerifyUnregisteredNeverInvokesEngine(t *testing.T) {
	engine := &stubEngine{comparison: &faceengine.Comparison{Matched: true}}
	svc := newTestService(newStubStore(), engine, nil, nil)

	requestID, outcome := svc.Verify(context.Background(), "ghost", testPayload(t))
	if requestID != "" {
		t.Fatalf("expected no request id, got %q", requestID)
	}
	if outcome.Success || outcome.Match {
		t.Fatalf("expected failed no-match outcome, got %+v", outcome)
	}
	if outcome.Message != MsgNotRegistered {
		t.Fatalf("unexpected message: %q", outcome.Message)
	}
	if engine.compareCalls != 0 {
		t.Fatal("similarity engine must not run for unregistered keys")
	}
}

func TestVerifyAdoptsEngineVerdict(t *testing.T) {
	store := newStubStore()
	store.records["emp001"] = []byte("reference-jpeg")
	engine := &stubEngine{comparison: &faceengine.Comparison{
		Distance:  0.3,
		Threshold: 0.6,
		Matched:   true,
		Model:     "VGG-Face",
	}}
	repo := &stubRepo{}
	cache := &stubCache{}
	svc := newTestService(store, engine, repo, cache)

	requestID, outcome := svc.Verify(context.Background(), "emp001", testPayload(t))
	if requestID == "" {
		t.Fatal("expected a request id")
	}
	if !outcome.Success || !outcome.Match {
		t.Fatalf("expected matched outcome, got %+v", outcome)
	}
	if outcome.Message != MsgMatched {
		t.Fatalf("unexpected message: %q", outcome.Message)
	}
	if math.Abs(outcome.Confidence-50) > 1e-9 {
		t.Fatalf("expected confidence 50, got %v", outcome.Confidence)
	}
	if len(repo.savedLogs) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(repo.savedLogs))
	}
	if repo.savedLogs[0].RequestID != requestID || repo.savedLogs[0].EmpID != "emp001" {
		t.Fatalf("audit record mismatched: %+v", repo.savedLogs[0])
	}
	if len(cache.setKeys) != 2 || cache.setKeys[0] != cache.setKeys[1] {
		t.Fatalf("expected processing flag then result under one key, got %v", cache.setKeys)
	}
}

func TestVerifyDegradesToNoMatchOnEngineFailure(t *testing.T) {
	store := newStubStore()
	store.records["emp001"] = []byte("reference-jpeg")
	engine := &stubEngine{compareErr: errors.New("model crashed")}
	repo := &stubRepo{}
	svc := newTestService(store, engine, repo, nil)

	requestID, outcome := svc.Verify(context.Background(), "emp001", testPayload(t))
	if requestID == "" {
		t.Fatal("expected a request id even on engine failure")
	}
	if !outcome.Success {
		t.Fatal("degraded comparison must still be a structured success")
	}
	if outcome.Match {
		t.Fatal("engine failure must fail closed to no-match")
	}
	if outcome.Distance != 1.0 {
		t.Fatalf("expected sentinel distance 1.0, got %v", outcome.Distance)
	}
	if outcome.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", outcome.Confidence)
	}
	if len(repo.savedLogs) != 1 {
		t.Fatalf("expected audit record for degraded verification, got %d", len(repo.savedLogs))
	}
}

func TestVerifyRejectsInvalidProbe(t *testing.T) {
	engine := &stubEngine{}
	svc := newTestService(newStubStore(), engine, nil, nil)

	_, outcome := svc.Verify(context.Background(), "emp001", "%%%")
	if outcome.Success || outcome.Match {
		t.Fatalf("expected failed outcome, got %+v", outcome)
	}
	if outcome.Message != MsgInvalidImage {
		t.Fatalf("unexpected message: %q", outcome.Message)
	}
}

func TestVerifyOutcomeSurvivesAuditAndCacheFailures(t *testing.T) {
	store := newStubStore()
	store.records["emp001"] = []byte("reference-jpeg")
	engine := &stubEngine{comparison: &faceengine.Comparison{Distance: 0.2, Threshold: 0.6, Matched: true}}
	repo := &stubRepo{saveErr: errors.New("db down")}
	cache := &stubCache{setErrs: []error{errors.New("redis down"), errors.New("redis down")}}
	svc := newTestService(store, engine, repo, cache)

	_, outcome := svc.Verify(context.Background(), "emp001", testPayload(t))
	if !outcome.Success || !outcome.Match {
		t.Fatalf("audit failures must not change the outcome, got %+v", outcome)
	}
}

func TestGetResultFallsBackToRepositoryWhenCacheMisses(t *testing.T) {
	cache := &stubCache{getErrs: []error{redis.Nil}}
	expected := &repository.VerificationLog{RequestID: "req-1", EmpID: "emp001", Details: "from-db"}
	repo := &stubRepo{findLog: expected}
	svc := newTestService(newStubStore(), &stubEngine{}, repo, cache)

	log, err := svc.GetResult(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if log != expected {
		t.Fatalf("expected %+v, got %+v", expected, log)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected repository to be queried once, got %d", repo.findCalls)
	}
}

func TestGetResultPrefersCache(t *testing.T) {
	cached := `{"request_id":"req-1","emp_id":"emp001","matched":true,"distance":0.25,"confidence":60,"success":true,"details":"cached"}`
	cache := &stubCache{getValues: []string{cached}}
	repo := &stubRepo{}
	svc := newTestService(newStubStore(), &stubEngine{}, repo, cache)

	log, err := svc.GetResult(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !log.Matched || log.EmpID != "emp001" || log.Details != "cached" {
		t.Fatalf("unexpected cached result: %+v", log)
	}
	if repo.findCalls != 0 {
		t.Fatal("repository must not be queried on cache hit")
	}
}

func TestGetMetricsSummaryComputesMatchRate(t *testing.T) {
	repo := &stubRepo{agg: &repository.MetricsAggregation{
		TotalCount:        8,
		MatchCount:        6,
		AverageConfidence: 72.5,
		AverageDistance:   0.31,
	}}
	svc := newTestService(newStubStore(), &stubEngine{}, repo, nil)

	summary, err := svc.GetMetricsSummary(context.Background())
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if summary.TotalVerifications != 8 || summary.MatchedCount != 6 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if math.Abs(summary.MatchRate-0.75) > 1e-9 {
		t.Fatalf("expected match rate 0.75, got %v", summary.MatchRate)
	}
}
