package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"labelproof/internal/common"
)

// Coordinator drives the Processor across many applications with bounded
// parallelism. Ids are partitioned into consecutive chunks of MaxConcurrent;
// a chunk's members run concurrently and the next chunk starts only after
// every member has settled, so peak concurrent extractor calls never exceed
// the cap. Failures are isolated per application, never per batch.
//
// The job table lives in this process only: a restart loses all batch
// status, so callers poll before shutdown or accept the loss.
type Coordinator struct {
	proc    *Processor
	logger  *slog.Logger
	workers int
	maxSize int
	timeout time.Duration

	wg   sync.WaitGroup
	done chan struct{}
	once sync.Once

	mu        sync.Mutex
	jobs      map[uuid.UUID]*Job
	closed    bool
	retention time.Duration
}

type Option func(*Coordinator)

// WithMaxConcurrent bounds how many applications of a chunk run at once.
func WithMaxConcurrent(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithMaxBatchSize bounds how many ids a single submission may carry.
func WithMaxBatchSize(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithItemTimeout bounds the wall-clock budget of one application.
func WithItemTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetention drops completed jobs from the table once they are older than
// d. Zero keeps every job for the life of the process.
func WithRetention(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.retention = d
		}
	}
}

func NewCoordinator(proc *Processor, logger *slog.Logger, opts ...Option) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Coordinator{
		proc:    proc,
		logger:  logger,
		workers: 10,
		maxSize: 500,
		timeout: 3 * time.Minute,
		done:    make(chan struct{}),
		jobs:    make(map[uuid.UUID]*Job),
	}
	for _, o := range opts {
		o(c)
	}
	if c.retention > 0 {
		go c.sweep()
	}
	return c
}

// Submit validates the id list, allocates a job, and returns its id
// immediately; the run itself happens on a detached goroutine. The only
// synchronous failure modes are precondition violations.
func (c *Coordinator) Submit(_ context.Context, applicationIDs []uuid.UUID) (uuid.UUID, error) {
	if len(applicationIDs) == 0 {
		return uuid.Nil, common.NewAppError("BATCH_EMPTY", "no application ids submitted", common.ErrInvalidInput)
	}
	if len(applicationIDs) > c.maxSize {
		return uuid.Nil, common.NewAppError("BATCH_TOO_LARGE",
			fmt.Sprintf("batch of %d exceeds the %d id limit", len(applicationIDs), c.maxSize),
			common.ErrInvalidInput)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return uuid.Nil, common.NewAppError("BATCH_SHUTDOWN", "coordinator is shutting down", common.ErrInvalidInput)
	}
	job := newJob(len(applicationIDs))
	c.jobs[job.ID()] = job
	c.mu.Unlock()

	ids := make([]uuid.UUID, len(applicationIDs))
	copy(ids, applicationIDs)

	c.wg.Add(1)
	go c.run(job, ids)

	c.logger.Info("batch submitted", "batch_id", job.ID(), "total", len(ids), "max_concurrent", c.workers)
	return job.ID(), nil
}

// GetStatus returns a point-in-time snapshot of the job, or false when the
// id is unknown (or already swept).
func (c *Coordinator) GetStatus(batchID uuid.UUID) (Snapshot, bool) {
	c.mu.Lock()
	job, ok := c.jobs[batchID]
	c.mu.Unlock()
	if !ok {
		return Snapshot{}, false
	}
	return job.snapshot(), true
}

func (c *Coordinator) run(job *Job, ids []uuid.UUID) {
	defer c.wg.Done()

	for start := 0; start < len(ids); start += c.workers {
		select {
		case <-c.done:
			// Shutdown between chunks: the in-flight chunk has settled;
			// everything not yet attempted is recorded as failed so the
			// counters still account for every id.
			for _, id := range ids[start:] {
				job.recordFailure(id, "coordinator shut down before this application was processed")
			}
			job.complete()
			c.logger.Warn("batch interrupted by shutdown", "batch_id", job.ID(), "unprocessed", len(ids)-start)
			return
		default:
		}

		end := start + c.workers
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]

		var wg sync.WaitGroup
		for _, id := range chunk {
			wg.Add(1)
			go func(applicationID uuid.UUID) {
				defer wg.Done()
				c.processOne(job, applicationID)
			}(id)
		}
		wg.Wait()
	}

	job.complete()
	snap := job.snapshot()
	c.logger.Info("batch completed",
		"batch_id", job.ID(),
		"total", snap.Total,
		"successful", snap.Successful,
		"failed", snap.Failed,
		"elapsed", time.Since(snap.StartedAt).String(),
	)
}

func (c *Coordinator) processOne(job *Job, applicationID uuid.UUID) {
	ctx, cancel := common.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	ctx = common.WithBatchID(ctx, job.ID().String())

	outcome, err := c.proc.ProcessApplication(ctx, applicationID)
	if err != nil {
		job.recordFailure(applicationID, err.Error())
		c.logger.Error("batch item failed", "batch_id", job.ID(), "application_id", applicationID, "error", err)
		return
	}
	job.recordSuccess(applicationID, outcome.Disposition)
}

// Close stops scheduling new chunks and waits for in-flight work to settle.
func (c *Coordinator) Close(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()
	c.once.Do(func() { close(c.done) })

	finished := make(chan struct{})
	go func() { defer close(finished); c.wg.Wait() }()

	select {
	case <-ctx.Done():
		c.logger.Warn("coordinator shutdown interrupted by context")
	case <-finished:
		c.logger.Info("coordinator drained, shutdown complete")
	}
}

// sweep evicts completed jobs past the retention window.
func (c *Coordinator) sweep() {
	ticker := time.NewTicker(c.retention / 2)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			cutoff := time.Now().UTC().Add(-c.retention)
			c.mu.Lock()
			for id, job := range c.jobs {
				if job.finishedBefore(cutoff) {
					delete(c.jobs, id)
				}
			}
			c.mu.Unlock()
		}
	}
}
