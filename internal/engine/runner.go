package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pthm/prosecheck/internal/rules"
)

// RuleRunner invokes registered rules against the flattened document text
// and against each sentence's plain text, collecting raw issue candidates.
type RuleRunner struct {
	// Registry supplies the rules, in registration order
	Registry *rules.Registry

	// Workers bounds concurrent rule invocations
	Workers int

	// Timeout bounds a single rule invocation; zero means no limit.
	// A timed-out rule is treated like an erroring rule: zero issues.
	Timeout time.Duration

	// DocumentScope / SentenceScope select the granularities to run.
	// Callers may skip whichever is redundant for them.
	DocumentScope bool
	SentenceScope bool

	Logger *zap.Logger
}

// NewRuleRunner returns a runner over the registry with both scopes enabled
func NewRuleRunner(reg *rules.Registry) *RuleRunner {
	return &RuleRunner{
		Registry:      reg,
		Workers:       4,
		Timeout:       10 * time.Second,
		DocumentScope: true,
		SentenceScope: true,
		Logger:        zap.NewNop(),
	}
}

// Run invokes every rule at the enabled granularities. Invocations execute
// in parallel on a bounded pool, but results merge in registration order,
// then detection order within a rule, so downstream deduplication is
// deterministic regardless of completion order. A rule that panics, errors,
// or times out contributes zero issues and never aborts the rest of the
// run. Cancellation is cooperative: it is observed between invocations,
// never inside one, since rule bodies are opaque.
func (rr *RuleRunner) Run(ctx context.Context, docText string, sents []Sentence, onDone func()) ([]Issue, error) {
	ruleList := rr.Registry.Rules()

	// docResults[i] holds rule i's document-scope findings;
	// sentResults[i][j] holds rule i's findings for sentence j.
	docResults := make([][]rules.Finding, len(ruleList))
	sentResults := make([][][]rules.Finding, len(ruleList))
	for i := range sentResults {
		sentResults[i] = make([][]rules.Finding, len(sents))
	}

	g, gctx := errgroup.WithContext(ctx)
	workers := rr.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

schedule:
	for i, rule := range ruleList {
		i, rule := i, rule

		if rr.DocumentScope {
			if gctx.Err() != nil {
				break schedule
			}
			g.Go(func() error {
				docResults[i] = rr.invoke(rule, docText)
				if onDone != nil {
					onDone()
				}
				return nil
			})
		}

		if !rr.SentenceScope {
			continue
		}
		for j := range sents {
			if gctx.Err() != nil {
				break schedule
			}
			j := j
			g.Go(func() error {
				sentResults[i][j] = rr.invoke(rule, sents[j].PlainText)
				if onDone != nil {
					onDone()
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stable merge: registration order, document scope first, then
	// sentence order.
	var issues []Issue
	for i, rule := range ruleList {
		for _, f := range docResults[i] {
			if !rr.wellFormed(rule.ID(), f) {
				continue
			}
			issues = append(issues, fromFinding(rule.ID(), f, ScopeDocument, NoSentence))
		}
		for j, findings := range sentResults[i] {
			for _, f := range findings {
				if !rr.wellFormed(rule.ID(), f) {
					continue
				}
				issues = append(issues, fromFinding(rule.ID(), f, ScopeSentence, j))
			}
		}
	}

	return issues, nil
}

// TaskCount returns how many invocations a run over sentCount sentences
// performs, for progress reporting.
func (rr *RuleRunner) TaskCount(sentCount int) int {
	n := 0
	if rr.DocumentScope {
		n += len(rr.Registry.Rules())
	}
	if rr.SentenceScope {
		n += len(rr.Registry.Rules()) * sentCount
	}
	return n
}

// wellFormed rejects findings with impossible offsets. A negative or
// inverted range is a rule bug, not a positioning miss, so it is dropped
// rather than bucketed as unassigned. Start==End==0 stays: that is the
// legitimate no-position signal.
func (rr *RuleRunner) wellFormed(ruleID string, f rules.Finding) bool {
	if f.Start >= 0 && f.End >= f.Start {
		return true
	}
	rr.Logger.Warn("rule returned malformed finding",
		zap.String("rule", ruleID),
		zap.Int("start", f.Start),
		zap.Int("end", f.End))
	return false
}

// invoke runs one rule against one text, bounded by the per-rule timeout
// and isolated from panics. Rule bodies are not preemptible: on timeout the
// goroutine is abandoned and its late result discarded.
func (rr *RuleRunner) invoke(rule rules.Rule, text string) []rules.Finding {
	type result struct {
		findings []rules.Finding
	}

	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				rr.Logger.Warn("rule panicked",
					zap.String("rule", rule.ID()),
					zap.Any("panic", r))
				done <- result{}
			}
		}()
		done <- result{findings: rule.Run(text)}
	}()

	if rr.Timeout <= 0 {
		return (<-done).findings
	}

	timer := time.NewTimer(rr.Timeout)
	defer timer.Stop()

	select {
	case res := <-done:
		return res.findings
	case <-timer.C:
		rr.Logger.Warn("rule timed out",
			zap.String("rule", rule.ID()),
			zap.Duration("timeout", rr.Timeout))
		return nil
	}
}
