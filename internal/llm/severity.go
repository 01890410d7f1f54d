package llm

import "strings"

// The model returns prose, not a structured severity, so severity is inferred
// by scanning the comment against ordered keyword tiers. Tiers are checked
// highest first and the first tier with any match wins, so a comment touching
// both security and performance lands at 5. The ordering is load-bearing and
// must not be rearranged.
var severityTiers = []struct {
	severity int
	keywords []string
}{
	{5, []string{
		"security", "vulnerab", "injection", "xss", "csrf", "rce",
		"remote code execution", "auth bypass", "authentication bypass",
	}},
	{4, []string{
		"crash", "data loss", "null pointer", "nil pointer",
		"undefined behavior", "undefined behaviour", "race condition", "deadlock",
	}},
	{3, []string{
		"performance", "memory leak", "n+1", "inefficien", "slow query",
	}},
	{2, []string{
		"readability", "maintainability", "complexity", "refactor", "naming",
	}},
}

const defaultSeverity = 1

// InferSeverity maps a generated comment to a 1-5 severity. It is a pure,
// deterministic, case-insensitive function of the comment text; comments
// matching no tier default to 1.
func InferSeverity(comment string) int {
	lower := strings.ToLower(comment)
	for _, tier := range severityTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) {
				return tier.severity
			}
		}
	}
	return defaultSeverity
}
