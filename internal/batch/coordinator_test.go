package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"labelproof/constants"
	"labelproof/internal/entity"
	"labelproof/internal/verify"
	"labelproof/internal/vision"
)

type statusUpdate struct {
	id     uuid.UUID
	status constants.ApplicationStatus
}

type fakeApps struct {
	mu      sync.Mutex
	apps    map[uuid.UUID]*entity.Application
	updates []statusUpdate
}

func (f *fakeApps) GetByID(_ context.Context, id uuid.UUID) (*entity.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return nil, fmt.Errorf("application %s not found", id)
	}
	cp := *app
	return &cp, nil
}

func (f *fakeApps) UpdateStatus(_ context.Context, id uuid.UUID, status constants.ApplicationStatus, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, statusUpdate{id: id, status: status})
	if app, ok := f.apps[id]; ok {
		app.Status = status
	}
	return nil
}

func (f *fakeApps) statusUpdates() []statusUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]statusUpdate, len(f.updates))
	copy(out, f.updates)
	return out
}

type fakeImages struct {
	mu   sync.Mutex
	imgs map[uuid.UUID][]*entity.LabelImage
}

func (f *fakeImages) ListByApplicationID(_ context.Context, applicationID uuid.UUID) ([]*entity.LabelImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.imgs[applicationID], nil
}

type recordedExtraction struct {
	applicationID uuid.UUID
	result        verify.Result
}

type fakeResults struct {
	mu      sync.Mutex
	records map[uuid.UUID]recordedExtraction
}

func (f *fakeResults) RecordExtraction(_ context.Context, imageID, applicationID uuid.UUID, _ vision.Extraction, result verify.Result, _ time.Duration) (*entity.ExtractionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.records == nil {
		f.records = make(map[uuid.UUID]recordedExtraction)
	}
	// keyed by image id: a re-run replaces the prior record
	f.records[imageID] = recordedExtraction{applicationID: applicationID, result: result}
	return &entity.ExtractionRecord{ImageID: imageID, ApplicationID: applicationID}, nil
}

type fakeExtractor struct {
	active  atomic.Int64
	maxSeen atomic.Int64
	calls   atomic.Int64
	respond func(req vision.Request) (vision.Extraction, error)
}

func (f *fakeExtractor) Extract(_ context.Context, req vision.Request) (vision.Extraction, error) {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if n <= seen || f.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}
	f.calls.Add(1)
	// hold the slot long enough for chunk members to overlap
	time.Sleep(10 * time.Millisecond)
	if f.respond != nil {
		return f.respond(req)
	}
	return vision.Extraction{Fields: map[string]vision.Field{}, ModelName: "fake"}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestWorld(n int) (*fakeApps, *fakeImages, *fakeResults, []uuid.UUID) {
	apps := &fakeApps{apps: make(map[uuid.UUID]*entity.Application)}
	imgs := &fakeImages{imgs: make(map[uuid.UUID][]*entity.LabelImage)}
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		id := uuid.New()
		ids = append(ids, id)
		apps.apps[id] = &entity.Application{
			ID:           id,
			SerialNumber: fmt.Sprintf("26-%04d", i),
			BrandName:    "Old Tom",
			ProducerName: "Tom Distilling Co.",
			BeverageType: constants.Spirits,
			Status:       constants.StatusPending,
		}
		imgs.imgs[id] = []*entity.LabelImage{{
			ID:            uuid.New(),
			ApplicationID: id,
			Role:          constants.RoleFront,
			ContentType:   "image/png",
			Data:          []byte(fmt.Sprintf("image-%d", i)),
		}}
	}
	return apps, imgs, &fakeResults{}, ids
}

func waitForCompletion(t *testing.T, c *Coordinator, batchID uuid.UUID) Snapshot {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		snap, ok := c.GetStatus(batchID)
		if !ok {
			t.Fatalf("batch %s disappeared", batchID)
		}
		if snap.Status == constants.BatchCompleted {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("batch %s did not complete in time", batchID)
	return Snapshot{}
}

func TestSubmitRejectsEmptyAndOversizedBatches(t *testing.T) {
	apps, imgs, results, _ := newTestWorld(0)
	proc := NewProcessor(testLogger(), &fakeExtractor{}, apps, imgs, results)
	c := NewCoordinator(proc, testLogger())

	if _, err := c.Submit(context.Background(), nil); err == nil {
		t.Fatalf("empty submission must be rejected")
	}

	oversized := make([]uuid.UUID, 501)
	for i := range oversized {
		oversized[i] = uuid.New()
	}
	if _, err := c.Submit(context.Background(), oversized); err == nil {
		t.Fatalf("oversized submission must be rejected")
	}
}

func TestBatchProcessesAllItemsWithBoundedConcurrency(t *testing.T) {
	apps, imgs, results, ids := newTestWorld(25)

	ext := &fakeExtractor{}
	proc := NewProcessor(testLogger(), ext, apps, imgs, results)
	c := NewCoordinator(proc, testLogger(), WithMaxConcurrent(10))

	batchID, err := c.Submit(context.Background(), ids)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	snap := waitForCompletion(t, c, batchID)
	if snap.Total != 25 || snap.Processed != 25 {
		t.Fatalf("expected 25/25 processed, got %d/%d", snap.Processed, snap.Total)
	}
	if snap.Successful+snap.Failed != snap.Processed {
		t.Fatalf("counter invariant broken: %d + %d != %d", snap.Successful, snap.Failed, snap.Processed)
	}
	if snap.Failed != 0 {
		t.Fatalf("expected no failures, got %d", snap.Failed)
	}
	if got := ext.maxSeen.Load(); got > 10 {
		t.Fatalf("concurrency cap exceeded: %d extractor calls in flight", got)
	}
	if got := ext.calls.Load(); got != 25 {
		t.Fatalf("expected 25 extractor calls, got %d", got)
	}
}

func TestBatchIsolatesPerItemFailures(t *testing.T) {
	apps, imgs, results, ids := newTestWorld(25)

	// fail extraction for 5 applications, chosen by their image payload
	failing := map[string]bool{
		"image-0": true, "image-5": true, "image-10": true, "image-15": true, "image-20": true,
	}
	ext := &fakeExtractor{respond: func(req vision.Request) (vision.Extraction, error) {
		if failing[string(req.ImageData)] {
			return vision.Extraction{}, fmt.Errorf("vision model timeout")
		}
		return vision.Extraction{Fields: map[string]vision.Field{}}, nil
	}}

	proc := NewProcessor(testLogger(), ext, apps, imgs, results)
	c := NewCoordinator(proc, testLogger(), WithMaxConcurrent(10))

	batchID, err := c.Submit(context.Background(), ids)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	snap := waitForCompletion(t, c, batchID)
	if snap.Status != constants.BatchCompleted {
		t.Fatalf("batch must complete even with failures, got %s", snap.Status)
	}
	if snap.Processed != 25 {
		t.Fatalf("every id must be attempted, got %d", snap.Processed)
	}
	if snap.Failed != 5 || snap.Successful != 20 {
		t.Fatalf("expected 20 ok / 5 failed, got %d / %d", snap.Successful, snap.Failed)
	}

	var failedItems, okItems int
	for _, item := range snap.Items {
		switch item.Outcome {
		case constants.ItemFailed:
			failedItems++
			if item.Error == "" {
				t.Fatalf("failed item must carry an error message: %+v", item)
			}
		case constants.ItemSuccess:
			okItems++
		}
	}
	if failedItems != 5 || okItems != 20 {
		t.Fatalf("per-item results inconsistent: %d failed, %d ok", failedItems, okItems)
	}
}

func TestBatchRecordsMissingImagesAsItemFailure(t *testing.T) {
	apps, imgs, results, ids := newTestWorld(2)
	// strip images from one application
	imgs.imgs[ids[0]] = nil

	proc := NewProcessor(testLogger(), &fakeExtractor{}, apps, imgs, results)
	c := NewCoordinator(proc, testLogger())

	batchID, err := c.Submit(context.Background(), ids)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	snap := waitForCompletion(t, c, batchID)
	if snap.Failed != 1 || snap.Successful != 1 {
		t.Fatalf("expected 1 ok / 1 failed, got %d / %d", snap.Successful, snap.Failed)
	}
}

func TestGetStatusUnknownBatch(t *testing.T) {
	apps, imgs, results, _ := newTestWorld(0)
	proc := NewProcessor(testLogger(), &fakeExtractor{}, apps, imgs, results)
	c := NewCoordinator(proc, testLogger())

	if _, ok := c.GetStatus(uuid.New()); ok {
		t.Fatalf("unknown batch id must report not found")
	}
}

func TestSoftMismatchPromotesPendingApplications(t *testing.T) {
	apps, imgs, results, ids := newTestWorld(1)
	id := ids[0]

	// case-only drift on the brand name: soft mismatch, needs_review
	ext := &fakeExtractor{respond: func(vision.Request) (vision.Extraction, error) {
		return vision.Extraction{Fields: map[string]vision.Field{
			constants.FieldBrandName:    {Value: "OLD TOM", Confidence: 0.9},
			constants.FieldProducerName: {Value: "Tom Distilling Co.", Confidence: 0.9},
		}}, nil
	}}

	proc := NewProcessor(testLogger(), ext, apps, imgs, results)
	c := NewCoordinator(proc, testLogger())

	batchID, err := c.Submit(context.Background(), []uuid.UUID{id})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	waitForCompletion(t, c, batchID)

	updates := apps.statusUpdates()
	if len(updates) != 1 {
		t.Fatalf("expected exactly one status update, got %v", updates)
	}
	if updates[0].status != constants.StatusNeedsReview {
		t.Fatalf("expected promotion to needs_review, got %s", updates[0].status)
	}
}

func TestPromotionNeverDemotesReviewedApplications(t *testing.T) {
	for _, status := range []constants.ApplicationStatus{
		constants.StatusNeedsReview,
		constants.StatusApproved,
		constants.StatusRejected,
	} {
		apps, imgs, results, ids := newTestWorld(1)
		id := ids[0]
		apps.apps[id].Status = status

		ext := &fakeExtractor{respond: func(vision.Request) (vision.Extraction, error) {
			return vision.Extraction{Fields: map[string]vision.Field{
				constants.FieldBrandName: {Value: "OLD TOM"},
			}}, nil
		}}

		proc := NewProcessor(testLogger(), ext, apps, imgs, results)
		c := NewCoordinator(proc, testLogger())

		batchID, err := c.Submit(context.Background(), []uuid.UUID{id})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		waitForCompletion(t, c, batchID)

		if updates := apps.statusUpdates(); len(updates) != 0 {
			t.Fatalf("status %s must not be touched, got updates %v", status, updates)
		}
	}
}

// gateExtractor parks every call until the test releases it, so the test
// controls exactly when the first chunk settles.
type gateExtractor struct {
	started chan struct{}
	release chan struct{}
}

func (g *gateExtractor) Extract(context.Context, vision.Request) (vision.Extraction, error) {
	g.started <- struct{}{}
	<-g.release
	return vision.Extraction{Fields: map[string]vision.Field{}}, nil
}

func TestCloseDrainsInFlightChunkAndFailsTheRest(t *testing.T) {
	apps, imgs, results, ids := newTestWorld(25)

	ext := &gateExtractor{started: make(chan struct{}, 25), release: make(chan struct{})}
	proc := NewProcessor(testLogger(), ext, apps, imgs, results)
	c := NewCoordinator(proc, testLogger(), WithMaxConcurrent(10))

	batchID, err := c.Submit(context.Background(), ids)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// first chunk is fully in flight
	for i := 0; i < 10; i++ {
		<-ext.started
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		c.Close(context.Background())
	}()

	// wait for the shutdown signal to land, then let the chunk finish
	<-c.done
	close(ext.release)
	<-closed

	snap, ok := c.GetStatus(batchID)
	if !ok {
		t.Fatalf("batch %s disappeared", batchID)
	}
	if snap.Status != constants.BatchCompleted {
		t.Fatalf("interrupted batch must still complete, got %s", snap.Status)
	}
	if snap.Successful != 10 || snap.Failed != 15 {
		t.Fatalf("expected 10 drained / 15 unprocessed, got %d / %d", snap.Successful, snap.Failed)
	}
	if snap.Successful+snap.Failed != snap.Processed || snap.Processed != snap.Total {
		t.Fatalf("counters must account for every id: %+v", snap)
	}

	if _, err := c.Submit(context.Background(), ids[:1]); err == nil {
		t.Fatalf("submission after shutdown must be rejected")
	}
}

func TestHardMismatchDoesNotPromote(t *testing.T) {
	apps, imgs, results, ids := newTestWorld(1)
	id := ids[0]

	ext := &fakeExtractor{respond: func(vision.Request) (vision.Extraction, error) {
		return vision.Extraction{Fields: map[string]vision.Field{
			constants.FieldBrandName: {Value: "New Tom"},
		}}, nil
	}}

	proc := NewProcessor(testLogger(), ext, apps, imgs, results)
	c := NewCoordinator(proc, testLogger())

	batchID, err := c.Submit(context.Background(), []uuid.UUID{id})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	snap := waitForCompletion(t, c, batchID)

	if snap.Successful != 1 {
		t.Fatalf("hard mismatch is still a successful verification run: %+v", snap)
	}
	if updates := apps.statusUpdates(); len(updates) != 0 {
		t.Fatalf("hard mismatch must stay pending for human judgment, got %v", updates)
	}
	if snap.Items[0].Disposition != constants.StatusPending {
		t.Fatalf("expected pending disposition, got %s", snap.Items[0].Disposition)
	}
}
