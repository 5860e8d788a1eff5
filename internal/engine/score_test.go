package engine

import "testing"

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name      string
		issues    int
		sentences int
		want      int
	}{
		{"clean document", 0, 10, 100},
		{"half flagged", 5, 10, 50},
		{"issue density one", 10, 10, 0},
		{"clamped at zero", 25, 10, 0},
		{"empty document", 0, 0, 0},
		{"rounding", 1, 3, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := qualityScore(tt.issues, tt.sentences); got != tt.want {
				t.Errorf("qualityScore(%d, %d) = %d, want %d",
					tt.issues, tt.sentences, got, tt.want)
			}
		})
	}
}

func TestBuildReportCountsUnassigned(t *testing.T) {
	sents := []Sentence{
		{Index: 0, PlainText: "First sentence here.", Fragment: "<p>First sentence here.</p>"},
		{Index: 1, PlainText: "Second sentence here.", Fragment: "<p>Second sentence here.</p>"},
	}
	m := &SentenceIssueMap{
		BySentence: map[int][]Issue{
			1: {{RuleID: "style/x", Message: "m"}},
		},
		Unassigned: []Issue{{RuleID: "legacy/y", Message: "n"}},
	}

	rep := BuildReport(sents, m)

	if rep.Summary.TotalSentences != 2 {
		t.Errorf("TotalSentences = %d, want 2", rep.Summary.TotalSentences)
	}
	if rep.Summary.TotalIssues != 2 {
		t.Errorf("TotalIssues = %d, want 2 (assigned + unassigned)", rep.Summary.TotalIssues)
	}
	if len(rep.Sentences[0].Issues) != 0 {
		t.Errorf("sentence 0 has %d issues, want 0", len(rep.Sentences[0].Issues))
	}
	if len(rep.Sentences[1].Issues) != 1 {
		t.Errorf("sentence 1 has %d issues, want 1", len(rep.Sentences[1].Issues))
	}
	if len(rep.Unassigned) != 1 {
		t.Errorf("Unassigned = %d, want 1", len(rep.Unassigned))
	}
	if rep.Summary.QualityScore != 0 {
		t.Errorf("QualityScore = %d, want 0 (2 issues / 2 sentences)", rep.Summary.QualityScore)
	}
}
