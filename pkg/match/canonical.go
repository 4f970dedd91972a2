package match

import (
	"regexp"
	"strings"
)

var (
	suffixRe   = regexp.MustCompile(`(ing|ed|ly|es|s)$`)
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9]`)
)

// aliases maps stemmed surface variants to one canonical concept token.
// Lookup happens after stemming, so keys must be stemmed forms.
var aliases = map[string]string{
	"pwd":           "password",
	"pass":          "password",
	"signin":        "login",
	"login":         "login",
	"saml":          "sso",
	"single":        "sso",
	"sso":           "sso",
	"invoice":       "invoices",
	"receipt":       "invoices",
	"receipts":      "invoices",
	"bill":          "billing",
	"price":         "pricing",
	"plan":          "plans",
	"cancel":        "cancel",
	"terminate":     "cancel",
	"end":           "cancel",
	"pro":           "pro",
	"professional":  "pro",
	"vat":           "tax",
	"twofactor":     "mfa",
	"multifactor":   "mfa",
	"2fa":           "mfa",
	"authenticator": "mfa",
	"refund":        "refund",
	"refunds":       "refund",
	"return":        "returns",
	"returns":       "returns",
	"ship":          "shipping",
	"shipped":       "shipping",
	"tracking":      "tracking",
	"webhook":       "webhooks",
	"webhooks":      "webhooks",
	"ratelimit":     "ratelimits",
	"ratelimits":    "ratelimits",
	"delete":        "delete",
	"export":        "export",
	"outage":        "status",
	"downtime":      "status",
	"uptime":        "status",
	"sla":           "sla",
}

// Stem lowercases a word, strips one common English suffix from the end and
// removes any leftover non-alphanumeric characters. Very light on purpose;
// full stemming is not a goal.
func Stem(word string) string {
	s := strings.ToLower(word)
	s = suffixRe.ReplaceAllString(s, "")
	return nonAlnumRe.ReplaceAllString(s, "")
}

// Canonicalize maps a raw word to its canonical concept token. Not all
// canonical tokens are fixed points (stemming "invoices" yields "invoic"),
// which is fine because canonicalization runs exactly once per token.
func Canonicalize(word string) string {
	s := Stem(word)
	if canonical, ok := aliases[s]; ok {
		return canonical
	}
	return s
}
