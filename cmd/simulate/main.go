package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"support-helpline-be/pkg/convo"
	"support-helpline-be/pkg/kb"
	"support-helpline-be/pkg/match"

	"github.com/fatih/color"
)

// Offline scoring harness: runs a set of queries against the knowledge base
// and prints the ranked candidates plus the synthesized reply. Useful for
// eyeballing ranking changes without a running server.

var cannedQueries = []string{
	"How do I reset my password?",
	"I want to cancel my subscription",
	"Where is my order? It says shipped",
	"Can I get an invoice for my last payment?",
	"Do you support SSO with SAML?",
	"How do I enable 2FA?",
	"I was charged twice, I want a refund",
	"asdf qqq zzz",
}

func main() {
	faqPath := flag.String("faq", "", "path to a JSON FAQ file (empty = built-in)")
	flag.Parse()

	entries, err := kb.Load(*faqPath)
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}
	color.Cyan("🔎 Knowledge base: %d entries\n", len(entries))

	queries := flag.Args()
	if len(queries) == 0 {
		queries = cannedQueries
	}

	for _, query := range queries {
		color.Yellow("\nQuery: %q", query)

		candidates := match.TopK(query, entries, match.DefaultTopK)
		for i, c := range candidates {
			line := fmt.Sprintf("  %d. [%.4f] %s", i+1, c.Score, c.Entry.Question)
			if i == 0 {
				color.Green(line)
			} else {
				fmt.Println(line)
			}
		}

		reply := convo.Synthesize(query, candidates)
		fmt.Fprintf(os.Stdout, "  reply: %s\n", reply)
	}
}
