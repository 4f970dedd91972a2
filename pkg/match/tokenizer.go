package match

import (
	"regexp"
	"strings"
)

var nonTokenRe = regexp.MustCompile(`[^a-z0-9\s]`)

// Tokenize splits text into an ordered sequence of canonical tokens.
// Order and duplicates are preserved so the result can feed Bigrams;
// callers that need set semantics build their own set.
func Tokenize(text string) []string {
	cleaned := nonTokenRe.ReplaceAllString(strings.ToLower(text), " ")
	pieces := strings.Fields(cleaned)

	tokens := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		tokens = append(tokens, Canonicalize(piece))
	}
	return tokens
}

// Bigrams derives the adjacent-pair phrases of a token sequence, in order.
func Bigrams(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}
	out := make([]string, 0, len(tokens)-1)
	for i := 0; i < len(tokens)-1; i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
