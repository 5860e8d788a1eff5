package engine

import "math"

// SentenceReport is one sentence with the issues assigned to it
type SentenceReport struct {
	Index     int     `json:"index"`
	PlainText string  `json:"text"`
	Fragment  string  `json:"fragment"`
	Issues    []Issue `json:"issues"`
}

// Summary is the whole-document aggregate
type Summary struct {
	TotalSentences int `json:"totalSentences"`
	TotalIssues    int `json:"totalIssues"`
	QualityScore   int `json:"qualityScore"`
}

// Report is the full result of one analysis run. It is recomputed from
// scratch on every run and read-only afterward; a run either produces a
// complete Report or fails with an error, never a half-populated one.
type Report struct {
	Sentences  []SentenceReport `json:"sentences"`
	Unassigned []Issue          `json:"unassigned"`
	Summary    Summary          `json:"summary"`
}

// BuildReport folds the sentence-issue association into per-sentence and
// whole-document quality metrics.
func BuildReport(sents []Sentence, m *SentenceIssueMap) *Report {
	rep := &Report{
		Sentences:  make([]SentenceReport, len(sents)),
		Unassigned: m.Unassigned,
	}

	total := len(m.Unassigned)
	for i, s := range sents {
		issues := m.BySentence[i]
		total += len(issues)
		rep.Sentences[i] = SentenceReport{
			Index:     s.Index,
			PlainText: s.PlainText,
			Fragment:  s.Fragment,
			Issues:    issues,
		}
	}

	rep.Summary = Summary{
		TotalSentences: len(sents),
		TotalIssues:    total,
		QualityScore:   qualityScore(total, len(sents)),
	}

	return rep
}

// qualityScore is max(0, round(100 * (1 - issues/sentences))), defined as 0
// for an empty document. Intentionally simple: monotonically decreasing in
// issue density, no other normalization.
func qualityScore(issues, sentences int) int {
	if sentences == 0 {
		return 0
	}
	score := int(math.Round(100 * (1 - float64(issues)/float64(sentences))))
	if score < 0 {
		return 0
	}
	return score
}
