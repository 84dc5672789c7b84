package words

import (
	"strconv"
	"strings"
)

// Sources is the ordered list of word source names, easiest first.
// The 1-based position of a name is its difficulty tier.
type Sources []string

// Len returns the number of configured sources.
func (s Sources) Len() int { return len(s) }

// Tier returns the tier of a source name (case-insensitive).
func (s Sources) Tier(name string) (int, bool) {
	name = strings.TrimSpace(name)
	for i, n := range s {
		if strings.EqualFold(n, name) {
			return i + 1, true
		}
	}
	return 0, false
}

// Name returns the source name for a 1-based tier.
func (s Sources) Name(tier int) (string, bool) {
	if tier < 1 || tier > len(s) {
		return "", false
	}
	return s[tier-1], true
}

// Resolve accepts either a source name or its 1-based index.
func (s Sources) Resolve(v string) (int, bool) {
	if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
		if _, ok := s.Name(n); ok {
			return n, true
		}
		return 0, false
	}
	return s.Tier(v)
}
