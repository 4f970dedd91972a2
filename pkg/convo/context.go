package convo

import (
	"regexp"

	"support-helpline-be/pkg/match"
)

// Turn is one stored conversation message. The history list is append-only
// and may have odd length if a crash lands between the paired writes, so
// consumers only ever scan it, never assume pairing.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// followUpTokenLimit marks messages short enough to lean on prior context.
const followUpTokenLimit = 5

var referentRe = regexp.MustCompile(`(?i)\b(it|that|where|how|this)\b`)

// BuildEffectiveQuery returns the text to score against the knowledge base.
// Short follow-ups ("fix it please") piggyback on the most recent user turn
// so the ranker sees the topic being referred to.
func BuildEffectiveQuery(history []Turn, current string) string {
	isFollowUp := len(match.Tokenize(current)) <= followUpTokenLimit || referentRe.MatchString(current)
	if !isFollowUp {
		return current
	}

	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleUser {
			return history[i].Content + " " + current
		}
	}
	return current
}
