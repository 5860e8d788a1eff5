package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/prosecheck/internal/engine"
	"github.com/pthm/prosecheck/internal/ui"
)

// TerminalReporter renders the report for humans
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, styles: u.Styles}
}

// Report prints every flagged sentence with its issues, the unassigned
// issues, and the summary.
func (r *TerminalReporter) Report(rep *engine.Report) error {
	s := r.styles

	if rep.Summary.TotalIssues == 0 {
		fmt.Fprintln(r.w, s.Success.Render(fmt.Sprintf("%s No issues found", s.IconSuccess)))
		r.printSummary(rep)
		return nil
	}

	for _, sent := range rep.Sentences {
		if len(sent.Issues) == 0 {
			continue
		}

		fmt.Fprintln(r.w)
		fmt.Fprintf(r.w, "%s %s\n",
			s.Subheader.Render(fmt.Sprintf("[%d]", sent.Index+1)),
			s.Sentence.Render(snippet(sent.PlainText, 100)))

		for _, issue := range sent.Issues {
			r.printIssue(issue)
		}
	}

	if len(rep.Unassigned) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Header.Render("Document-level issues"))
		for _, issue := range rep.Unassigned {
			r.printIssue(issue)
		}
	}

	r.printSummary(rep)
	return nil
}

func (r *TerminalReporter) printIssue(issue engine.Issue) {
	s := r.styles
	fmt.Fprintf(r.w, "  %s %s %s\n",
		s.Issue.Render(s.IconIssue),
		issue.Message,
		s.Rule.Render(issue.RuleID))
}

func (r *TerminalReporter) printSummary(rep *engine.Report) {
	s := r.styles

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s %d sentences, %d flagged, %d issues (%d unassigned)\n",
		s.Subheader.Render("Summary:"),
		rep.Summary.TotalSentences,
		flaggedSentences(rep),
		rep.Summary.TotalIssues,
		len(rep.Unassigned))
	fmt.Fprintf(r.w, "%s %d/100\n", s.Score.Render("Quality score:"), rep.Summary.QualityScore)
}

// snippet trims a sentence for single-line display
func snippet(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
