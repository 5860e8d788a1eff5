package engine

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/pthm/prosecheck/internal/markup"
)

// ErrCancelled is returned for a run stopped by its context. A cancelled
// run reports a terminal cancelled state, never a partial report.
var ErrCancelled = errors.New("analysis cancelled")

// ErrNoDocument is returned when the upstream markup is missing entirely
var ErrNoDocument = errors.New("no markup document")

// Pipeline is one configured analysis engine. It is stateless across runs:
// each run owns its blocks, sentences and issues, so concurrent documents
// never share mutable structures.
type Pipeline struct {
	Segmenter *Segmenter
	Runner    *RuleRunner
	Logger    *zap.Logger
}

// NewPipeline returns a pipeline with default segmentation thresholds over
// the given rule runner.
func NewPipeline(runner *RuleRunner) *Pipeline {
	return &Pipeline{
		Segmenter: NewSegmenter(),
		Runner:    runner,
		Logger:    zap.NewNop(),
	}
}

// Run analyzes one document synchronously. See RunTracked.
func (p *Pipeline) Run(ctx context.Context, doc *markup.Document) (*Report, error) {
	return p.RunTracked(ctx, doc, NewTracker())
}

// RunTracked analyzes one document, publishing coarse progress into the
// tracker it exclusively owns for the duration of the run. The run either
// fully succeeds with a Report or fully fails with one error.
func (p *Pipeline) RunTracked(ctx context.Context, doc *markup.Document, tracker *Tracker) (*Report, error) {
	report, err := p.run(ctx, doc, tracker)
	switch {
	case errors.Is(err, ErrCancelled):
		tracker.setStage(StageCancelled, 1)
	case err != nil:
		tracker.setStage(StageFailed, 1)
	default:
		tracker.setStage(StageDone, 1)
	}
	return report, err
}

func (p *Pipeline) run(ctx context.Context, doc *markup.Document, tracker *Tracker) (*Report, error) {
	if doc == nil || doc.Root == nil {
		return nil, ErrNoDocument
	}
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	tracker.setStage(StageExtract, 0.05)
	blocks := ExtractBlocks(doc)

	tracker.setStage(StageSegment, 0.15)
	perBlock := make([][]Sentence, len(blocks))
	for i, b := range blocks {
		perBlock[i] = p.Segmenter.Segment(b)
	}

	flat := Flatten(blocks)
	sents := flat.Anchor(perBlock)
	p.Logger.Debug("segmented document",
		zap.Int("blocks", len(blocks)),
		zap.Int("sentences", len(sents)))

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	tracker.setStage(StageRules, 0.3)
	taskCount := p.Runner.TaskCount(len(sents))
	var tasksDone atomic.Int64
	tracker.setTasks(0, taskCount)

	issues, err := p.Runner.Run(ctx, flat.Text, sents, func() {
		tracker.setTasks(int(tasksDone.Add(1)), taskCount)
	})
	if err != nil {
		return nil, ErrCancelled
	}

	tracker.setStage(StageScore, 0.9)
	resolver := NewResolver(sents, len(flat.Text))
	assigned := resolver.Resolve(issues)

	return BuildReport(sents, assigned), nil
}
