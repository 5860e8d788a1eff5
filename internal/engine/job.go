package engine

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pthm/prosecheck/internal/markup"
)

// Job is one background analysis run. Progress is observable while the
// pipeline goroutine works; the result is available once Done is closed.
type Job struct {
	ID      uuid.UUID
	tracker *Tracker
	cancel  context.CancelFunc
	done    chan struct{}

	report *Report
	err    error
}

// Progress returns the latest progress snapshot (poll interface)
func (j *Job) Progress() Snapshot {
	return j.tracker.Current()
}

// Watch returns a snapshot stream, closed when the job ends (push interface)
func (j *Job) Watch() <-chan Snapshot {
	return j.tracker.Watch()
}

// Done is closed when the job reaches a terminal stage
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Cancel requests cooperative cancellation. The in-flight rule finishes;
// the job then ends in the cancelled state.
func (j *Job) Cancel() {
	j.cancel()
}

// Result blocks until the job ends and returns its report or error
func (j *Job) Result() (*Report, error) {
	<-j.done
	return j.report, j.err
}

// Service runs analysis jobs on background workers and tracks them by ID
// so callers can poll progress for long documents.
type Service struct {
	pipeline *Pipeline

	mu   sync.Mutex
	jobs map[uuid.UUID]*Job
}

// NewService creates a job service over the pipeline
func NewService(pipeline *Pipeline) *Service {
	return &Service{
		pipeline: pipeline,
		jobs:     make(map[uuid.UUID]*Job),
	}
}

// Start launches a background run and returns its job handle immediately
func (s *Service) Start(ctx context.Context, doc *markup.Document) *Job {
	runCtx, cancel := context.WithCancel(ctx)

	job := &Job{
		ID:      uuid.New(),
		tracker: NewTracker(),
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	go func() {
		defer cancel()
		job.report, job.err = s.pipeline.RunTracked(runCtx, doc, job.tracker)
		close(job.done)
	}()

	return job
}

// Job returns the job with the given ID, or nil
func (s *Service) Job(id uuid.UUID) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}
