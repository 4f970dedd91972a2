package match

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "punctuation becomes whitespace",
			text: "How do I reset my password?",
			want: []string{"how", "do", "i", "reset", "my", "password"},
		},
		{
			name: "aliases applied per token",
			text: "pwd and saml",
			want: []string{"password", "and", "sso"},
		},
		{
			name: "duplicates and order preserved",
			text: "billing billing invoices",
			want: []string{"billing", "billing", "invoic"},
		},
		{
			name: "empty input",
			text: "   ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestBigrams(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "adjacent pairs in order",
			tokens: []string{"reset", "my", "password"},
			want:   []string{"reset my", "my password"},
		},
		{
			name:   "single token has no pairs",
			tokens: []string{"password"},
			want:   nil,
		},
		{
			name:   "empty sequence",
			tokens: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bigrams(tt.tokens)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Bigrams(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}
