package normalizer

import (
	"regexp"
	"strings"

	"github.com/jeonsilai/guardrails-server/internal/rules"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalizer rewrites user text into its canonical form: Korean unit names
// become standard symbols, common typos are corrected, and shorthand like
// "pf0.9" is expanded. It never fails; empty input normalizes to "".
type Normalizer struct {
	rules *rules.RuleSet
}

func New(rs *rules.RuleSet) *Normalizer {
	return &Normalizer{rules: rs}
}

// Normalize applies every rewrite rule in declaration order, replacing all
// occurrences, then collapses whitespace runs to single spaces. The rule
// order matters: later rules may match text produced by earlier ones.
func (n *Normalizer) Normalize(text string) string {
	normalized := strings.TrimSpace(text)

	for _, rule := range n.rules.RewriteRules {
		normalized = rule.Pattern.ReplaceAllString(normalized, rule.Replacement)
	}

	normalized = whitespaceRun.ReplaceAllString(normalized, " ")

	return strings.TrimSpace(normalized)
}
