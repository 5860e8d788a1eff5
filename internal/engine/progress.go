package engine

import "sync"

// Stage is the coarse-grained phase of a run
type Stage int

const (
	StagePending Stage = iota
	StageExtract
	StageSegment
	StageRules
	StageScore
	StageDone
	StageCancelled
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StagePending:
		return "pending"
	case StageExtract:
		return "extracting"
	case StageSegment:
		return "segmenting"
	case StageRules:
		return "running rules"
	case StageScore:
		return "scoring"
	case StageDone:
		return "complete"
	case StageCancelled:
		return "cancelled"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the stage ends a run
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageCancelled || s == StageFailed
}

// Snapshot is one observation of a run's progress
type Snapshot struct {
	Stage     Stage
	Percent   float64 // 0..1 across the whole run
	TasksDone int     // completed rule invocations
	TaskCount int     // scheduled rule invocations
}

// Tracker is the single shared mutable record of a run: written exclusively
// by the pipeline goroutine that owns it, read by anyone. Readers either
// poll Current or subscribe via Watch; slow watchers observe last-value-wins
// delivery, never backpressure on the writer.
type Tracker struct {
	mu   sync.Mutex
	snap Snapshot
	subs []chan Snapshot
}

// NewTracker returns a Tracker at StagePending
func NewTracker() *Tracker {
	return &Tracker{snap: Snapshot{Stage: StagePending}}
}

// Current returns the latest snapshot (the pull interface)
func (t *Tracker) Current() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap
}

// Watch returns a channel receiving snapshots (the push interface). The
// channel is closed when the run reaches a terminal stage. Each subscriber
// gets capacity one; a pending value is dropped in favor of a newer one.
func (t *Tracker) Watch() <-chan Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan Snapshot, 1)
	if t.snap.Stage.Terminal() {
		ch <- t.snap
		close(ch)
		return ch
	}
	t.subs = append(t.subs, ch)
	return ch
}

// setStage advances the run to a new stage. Owner-only.
func (t *Tracker) setStage(stage Stage, percent float64) {
	t.mu.Lock()
	t.snap.Stage = stage
	t.snap.Percent = percent
	t.publishLocked()
	t.mu.Unlock()
}

// setTasks records rule invocation progress within StageRules. Owner-only.
func (t *Tracker) setTasks(done, count int) {
	t.mu.Lock()
	t.snap.TasksDone = done
	t.snap.TaskCount = count
	if count > 0 {
		// Rule execution spans the middle of the run's percent range.
		t.snap.Percent = 0.3 + 0.6*float64(done)/float64(count)
	}
	t.publishLocked()
	t.mu.Unlock()
}

// publishLocked pushes the current snapshot to every watcher, dropping a
// stale undelivered value first. Closes watchers on terminal stages.
func (t *Tracker) publishLocked() {
	for _, ch := range t.subs {
		select {
		case ch <- t.snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- t.snap:
			default:
			}
		}
	}
	if t.snap.Stage.Terminal() {
		for _, ch := range t.subs {
			close(ch)
		}
		t.subs = nil
	}
}
