package batch

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"labelproof/constants"
)

// ItemResult is the terminal record for one application inside a batch.
type ItemResult struct {
	ApplicationID uuid.UUID                   `json:"application_id"`
	Outcome       constants.ItemOutcome       `json:"outcome"`
	Disposition   constants.ApplicationStatus `json:"disposition,omitempty"`
	Error         string                      `json:"error,omitempty"`
}

// Job tracks one batch run. Counters mutate as items settle; all access goes
// through the job's lock so concurrent chunk members never lose an update.
type Job struct {
	mu sync.Mutex

	id         uuid.UUID
	status     constants.BatchStatus
	total      int
	processed  int
	successful int
	failed     int
	startedAt  time.Time
	finishedAt time.Time
	items      []ItemResult
}

func newJob(total int) *Job {
	return &Job{
		id:        uuid.New(),
		status:    constants.BatchProcessing,
		total:     total,
		startedAt: time.Now().UTC(),
		items:     make([]ItemResult, 0, total),
	}
}

func (j *Job) ID() uuid.UUID { return j.id }

func (j *Job) recordSuccess(applicationID uuid.UUID, disposition constants.ApplicationStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.processed++
	j.successful++
	j.items = append(j.items, ItemResult{
		ApplicationID: applicationID,
		Outcome:       constants.ItemSuccess,
		Disposition:   disposition,
	})
}

func (j *Job) recordFailure(applicationID uuid.UUID, message string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.processed++
	j.failed++
	j.items = append(j.items, ItemResult{
		ApplicationID: applicationID,
		Outcome:       constants.ItemFailed,
		Error:         message,
	})
}

// complete marks the coordinator's run finished. It says nothing about
// aggregate success; a batch where every item failed still completes.
func (j *Job) complete() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = constants.BatchCompleted
	j.finishedAt = time.Now().UTC()
}

// Snapshot is a point-in-time copy of a job, safe to hand to callers while
// the run is still mutating the original.
type Snapshot struct {
	ID         uuid.UUID             `json:"id"`
	Status     constants.BatchStatus `json:"status"`
	Total      int                   `json:"total"`
	Processed  int                   `json:"processed"`
	Successful int                   `json:"successful"`
	Failed     int                   `json:"failed"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt time.Time             `json:"finished_at,omitzero"`
	Items      []ItemResult          `json:"items"`
}

func (j *Job) snapshot() Snapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	items := make([]ItemResult, len(j.items))
	copy(items, j.items)
	return Snapshot{
		ID:         j.id,
		Status:     j.status,
		Total:      j.total,
		Processed:  j.processed,
		Successful: j.successful,
		Failed:     j.failed,
		StartedAt:  j.startedAt,
		FinishedAt: j.finishedAt,
		Items:      items,
	}
}

func (j *Job) finishedBefore(cutoff time.Time) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status == constants.BatchCompleted && j.finishedAt.Before(cutoff)
}
