package analytics

import (
	"time"

	"github.com/google/uuid"
)

// RunRecord summarizes one completed analysis run
type RunRecord struct {
	ID         uuid.UUID
	Path       string
	Format     string
	Sentences  int
	Issues     int
	Unassigned int
	Score      int
	Duration   time.Duration
	CreatedAt  time.Time
}

// Recorder persists usage analytics. Implementations must tolerate being
// called from the CLI after every run.
type Recorder interface {
	Record(rec RunRecord) error
	Close() error
}

// Nop discards all records
type Nop struct{}

func (Nop) Record(RunRecord) error { return nil }
func (Nop) Close() error           { return nil }
