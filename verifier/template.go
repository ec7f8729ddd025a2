package verifier

import (
	"fmt"
	"regexp"
	"strings"
)

// Token is a named placeholder in a verifier template. Tokens appear in
// template text as "{{NAME}}".
type Token string

// Named tokens recognized by the generator.
const (
	TokenPackedVKey     Token = "PACKED_VKEY"
	TokenNumICs         Token = "N_ICS"
	TokenICBytes        Token = "IC_BYTES"
	TokenPubInputLenPtr Token = "PUB_INPUT_LEN_PTR"
	TokenPubInputPtr    Token = "PUB_INPUT_PTR"
)

// PairingInputToken returns the token for pairing input slot i (pi_<i>).
func PairingInputToken(i int) Token {
	return Token(fmt.Sprintf("pi_%d", i))
}

// PublicInputToken returns the token for public input slot i (in_<i>).
func PublicInputToken(i int) Token {
	return Token(fmt.Sprintf("in_%d", i))
}

// Placeholder returns the literal placeholder text for the token.
func (t Token) Placeholder() string {
	return "{{" + string(t) + "}}"
}

// Instantiate replaces every occurrence of each substitution's placeholder
// with its value. This is literal substring replacement, not a template
// engine: no escaping, no logic. Placeholders without a substitution are left
// untouched; callers that require full coverage should inspect the result with
// UnresolvedTokens.
func Instantiate(template string, subs map[Token]string) string {
	out := template
	for t, v := range subs {
		out = strings.ReplaceAll(out, t.Placeholder(), v)
	}
	return out
}

var placeholderRx = regexp.MustCompile(`\{\{[A-Za-z0-9_]+\}\}`)

// UnresolvedTokens returns the distinct placeholders still present in s, in
// order of first appearance.
func UnresolvedTokens(s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range placeholderRx.FindAllString(s, -1) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
