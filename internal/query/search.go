package query

import (
	"fmt"
	"strings"

	"github.com/robalobadob/ewordle/internal/words"
)

// Match reports whether word satisfies c.
//
// Fixed positions must match exactly. A wildcard letter is rejected if it is
// excluded; otherwise it is first counted toward its required quota, and
// only rejected when no quota is outstanding and match-all is off. After
// the scan every required quota must be met.
func (c *Constraint) Match(word string) bool {
	if len(word) != len(c.Pattern) {
		return false
	}
	var consumed [26]int
	for i := 0; i < len(word); i++ {
		ch, p := word[i], c.Pattern[i]
		if ch == p {
			continue
		}
		if p != Wildcard || ch < 'A' || ch > 'Z' {
			return false
		}
		r := ch - 'A'
		switch {
		case c.Excluded.Test(uint(r)):
			return false
		case consumed[r] < c.Required[r]:
			consumed[r]++
		case !c.MatchAll:
			return false
		}
	}
	for r, need := range c.Required {
		if consumed[r] < need {
			return false
		}
	}
	return true
}

// Evaluate filters candidates down to the words matching c, keeping order.
func Evaluate(c *Constraint, candidates []string) []string {
	var out []string
	for _, w := range candidates {
		if c.Match(w) {
			out = append(out, w)
		}
	}
	return out
}

// Corpus is the part of the word corpus a search needs.
type Corpus interface {
	WordsAtLength(length int) words.Buckets
}

// Result is the outcome of a search.
type Result struct {
	Count int
	Words []string
}

// Search evaluates c over the corpus words of c's length, scanning tiers
// 1..maxTier so results come out tier by tier in corpus order.
func Search(corpus Corpus, c *Constraint, maxTier int) Result {
	buckets := corpus.WordsAtLength(c.Length())
	var res Result
	for t := 1; t <= maxTier; t++ {
		res.Words = append(res.Words, Evaluate(c, buckets.Tier(t))...)
	}
	res.Count = len(res.Words)
	return res
}

// String renders the result as shown to the player.
func (r Result) String() string {
	var b strings.Builder
	if r.Count > 0 {
		fmt.Fprintf(&b, "Found %d result(s):\n", r.Count)
	} else {
		b.WriteString("Found 0 result(s).\n")
	}
	for _, w := range r.Words {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	return b.String()
}
