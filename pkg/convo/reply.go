package convo

import (
	"strings"

	"support-helpline-be/pkg/match"
)

// Confidence bands governing the reply shape.
const (
	directAnswerThreshold = 0.30
	multiOptionThreshold  = 0.18
	suggestionFloor       = 0.05
)

// FallbackReply is substituted if synthesis ever yields an empty string.
const FallbackReply = "Here’s what I found based on our knowledge base."

// Synthesize maps the ranked candidates to one of three reply shapes: a
// direct answer, a numbered summary of the top matches, or a low-confidence
// message with related questions and an escalation offer. The raw message is
// part of the contract even though only the candidates drive the shape; the
// escalation decision itself belongs to the turn handler.
func Synthesize(message string, candidates []match.Candidate) string {
	var best, second *match.Candidate
	if len(candidates) > 0 {
		best = &candidates[0]
	}
	if len(candidates) > 1 {
		second = &candidates[1]
	}

	bestScore := 0.0
	if best != nil {
		bestScore = best.Score
	}

	// High confidence: answer directly.
	if best != nil && bestScore >= directAnswerThreshold {
		return best.Entry.Answer
	}

	// Moderate confidence: summarize the top matches.
	if best != nil && second != nil && bestScore >= multiOptionThreshold {
		lines := []string{
			"Here’s what I can share:",
			"1) " + best.Entry.Answer,
			"2) " + second.Entry.Answer,
		}
		if len(candidates) > 2 {
			lines = append(lines, "3) "+candidates[2].Entry.Answer)
		}
		lines = append(lines, "", "If this doesn’t fully answer your question, I can escalate to a human agent.")
		return strings.Join(lines, "\n")
	}

	// Low confidence: suggest related questions and offer escalation.
	var suggestions []string
	for _, c := range candidates {
		if c.Score > suggestionFloor {
			suggestions = append(suggestions, "• "+c.Entry.Question)
		}
	}

	lines := []string{"I’m not fully confident from our knowledge base."}
	if len(suggestions) > 0 {
		lines = append(lines, "Related topics I found:\n"+strings.Join(suggestions, "\n"))
	}
	lines = append(lines, "Would you like me to escalate this to a human agent?")
	return strings.Join(lines, "\n")
}
