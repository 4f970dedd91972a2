package convo

import (
	"strings"
	"testing"

	"support-helpline-be/pkg/kb"
	"support-helpline-be/pkg/match"
)

func candidateFixture(scores ...float64) []match.Candidate {
	questions := []string{"first question", "second question", "third question"}
	answers := []string{"first answer", "second answer", "third answer"}

	out := make([]match.Candidate, 0, len(scores))
	for i, s := range scores {
		out = append(out, match.Candidate{
			Entry: kb.FAQ{Question: questions[i], Answer: answers[i]},
			Score: s,
		})
	}
	return out
}

func TestSynthesizeDirectAnswer(t *testing.T) {
	got := Synthesize("message", candidateFixture(0.82, 0.40, 0.10))
	if got != "first answer" {
		t.Errorf("reply = %q, want the best answer verbatim", got)
	}
}

func TestSynthesizeDirectAnswerBoundaryInclusive(t *testing.T) {
	got := Synthesize("message", candidateFixture(0.30, 0.20, 0.10))
	if got != "first answer" {
		t.Errorf("score exactly 0.30 must take the direct-answer branch, got %q", got)
	}
}

func TestSynthesizeModerateConfidence(t *testing.T) {
	got := Synthesize("message", candidateFixture(0.25, 0.20, 0.10))

	for _, want := range []string{"Here’s what I can share:", "1) first answer", "2) second answer", "3) third answer", "escalate to a human agent"} {
		if !strings.Contains(got, want) {
			t.Errorf("reply missing %q:\n%s", want, got)
		}
	}
}

func TestSynthesizeModerateNeedsSecondCandidate(t *testing.T) {
	got := Synthesize("message", candidateFixture(0.25))
	if !strings.Contains(got, "not fully confident") {
		t.Errorf("single candidate at moderate score must fall through to low confidence, got %q", got)
	}
}

func TestSynthesizeLowConfidence(t *testing.T) {
	got := Synthesize("message", candidateFixture(0.1799999, 0.06, 0.01))

	if !strings.Contains(got, "I’m not fully confident from our knowledge base.") {
		t.Errorf("reply missing low-confidence line:\n%s", got)
	}
	if !strings.Contains(got, "• first question") || !strings.Contains(got, "• second question") {
		t.Errorf("reply missing suggestions above the 0.05 floor:\n%s", got)
	}
	if strings.Contains(got, "third question") {
		t.Errorf("candidate at 0.01 must not be suggested:\n%s", got)
	}
	if !strings.Contains(got, "Would you like me to escalate this to a human agent?") {
		t.Errorf("reply missing escalation offer:\n%s", got)
	}
}

func TestSynthesizeNoCandidates(t *testing.T) {
	got := Synthesize("message", nil)

	if strings.Contains(got, "Related topics I found:") {
		t.Errorf("no candidates must omit the suggestion section:\n%s", got)
	}
	if !strings.Contains(got, "not fully confident") || !strings.Contains(got, "escalate this to a human agent") {
		t.Errorf("reply must still state low confidence and offer escalation:\n%s", got)
	}
}
