package discovery

import (
	"sort"
	"strings"
)

// InterestSet splits a comma separated interests field into a set of
// trimmed, lower-cased, non-empty tokens.
func InterestSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Split(text, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}

// MutualCount returns how many interests the two fields have in common.
func MutualCount(a, b string) int {
	return len(intersect(InterestSet(a), InterestSet(b)))
}

// SharedInterests returns the common interests in lexical order.
func SharedInterests(a, b string) []string {
	shared := intersect(InterestSet(a), InterestSet(b))
	sort.Strings(shared)
	return shared
}

func intersect(a, b map[string]struct{}) []string {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make([]string, 0, len(a))
	for token := range a {
		if _, ok := b[token]; ok {
			out = append(out, token)
		}
	}
	return out
}
