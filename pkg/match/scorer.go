package match

import (
	"math"
	"strings"

	"support-helpline-be/pkg/kb"
)

// phraseBoost adds a fixed increment when any of its literal needles appears
// in the lowercased raw query. Boosts are independent and additive.
type phraseBoost struct {
	needles []string
	weight  float64
}

// phraseBoosts covers the critical support intents. The weights are part of
// the scoring contract; confidence thresholds downstream assume them.
var phraseBoosts = []phraseBoost{
	{[]string{"reset password"}, 0.25},
	{[]string{"cancel subscription"}, 0.20},
	{[]string{"sso", "saml"}, 0.15},
	{[]string{"invoice", "invoices"}, 0.12},
	{[]string{"api"}, 0.10},
	{[]string{"refund"}, 0.18},
	{[]string{"return"}, 0.16},
	{[]string{"shipping", "tracking"}, 0.12},
	{[]string{"change email"}, 0.12},
	{[]string{"update payment", "payment method"}, 0.12},
	{[]string{"webhook"}, 0.12},
	{[]string{"rate limit"}, 0.10},
	{[]string{"delete account"}, 0.18},
	{[]string{"export data"}, 0.14},
	{[]string{"gdpr", "ccpa"}, 0.14},
	{[]string{"status", "outage", "downtime"}, 0.12},
	{[]string{"mfa", "2fa", "two-factor"}, 0.15},
}

// Score computes the lexical relevance of one knowledge-base entry for a
// query: Jaccard overlap of canonical token sets, a capped bigram boost, a
// flat tag-presence boost and the literal phrase boosts. Scores are
// non-negative and may exceed 1.0.
func Score(query string, entry kb.FAQ) float64 {
	qTokens := Tokenize(query)

	entryText := entry.Question
	if len(entry.Tags) > 0 {
		entryText += " " + strings.Join(entry.Tags, " ")
	}
	fTokens := Tokenize(entryText)

	qSet := toSet(qTokens)
	fSet := toSet(fTokens)

	overlap := 0
	for t := range qSet {
		if _, ok := fSet[t]; ok {
			overlap++
		}
	}
	union := len(qSet) + len(fSet) - overlap

	score := 0.0
	if union > 0 {
		score = float64(overlap) / float64(union)
	}

	// Bigram boost for shared adjacent-pair phrases, capped at 0.2.
	qBigrams := toSet(Bigrams(qTokens))
	fBigrams := toSet(Bigrams(fTokens))
	biOverlap := 0
	for b := range qBigrams {
		if _, ok := fBigrams[b]; ok {
			biOverlap++
		}
	}
	if biOverlap > 0 {
		score += math.Min(0.2, 0.1*float64(biOverlap))
	}

	// Flat boost when the query mentions one of the entry's tags.
	for _, tag := range entry.Tags {
		if _, ok := qSet[Canonicalize(tag)]; ok {
			score += 0.05
			break
		}
	}

	lc := strings.ToLower(query)
	for _, boost := range phraseBoosts {
		for _, needle := range boost.needles {
			if strings.Contains(lc, needle) {
				score += boost.weight
				break
			}
		}
	}

	return score
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
