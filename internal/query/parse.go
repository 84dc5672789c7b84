// internal/query/parse.go
//
// Parser for helper search expressions.
//
// Grammar (case-insensitive, scanned left to right):
//   A–Z      outside brackets: a fixed pattern position
//   *        outside brackets: a wildcard pattern position
//   ( ... )  letters that must appear among the wildcard positions; a repeated
//            letter raises its required count; a bare * turns on match-all
//   [ ... ]  letters that must not appear in any wildcard position
//
// Examples: *****(ESS*)   G*E**(SU)   *****(ESS*)[AB]
//
// The pattern (positions outside brackets) must be exactly the word length.
// Without any ( ) group, match-all is on.

package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Wildcard marks a free pattern position.
const Wildcard = '*'

var (
	ErrNestedBrackets      = errors.New("nested brackets not supported")
	ErrUnpairedBracket     = errors.New("unpaired bracket found")
	ErrWildcardInExclusion = errors.New("* inside [] not allowed")
	ErrIllegalCharacter    = errors.New("illegal input")
	ErrPatternLength       = errors.New("pattern length mismatch")
)

// PatternLengthError reports a pattern whose length differs from the word length.
type PatternLengthError struct {
	Got, Want int
}

func (e *PatternLengthError) Error() string {
	if e.TooShort() {
		return "word length too small"
	}
	return "word length too large"
}

// TooShort reports whether the pattern had fewer positions than required.
func (e *PatternLengthError) TooShort() bool { return e.Got < e.Want }

func (e *PatternLengthError) Unwrap() error { return ErrPatternLength }

// Constraint is a parsed search expression.
type Constraint struct {
	// Pattern holds one byte per position: a letter A–Z or Wildcard.
	Pattern []byte
	// Required counts, by letter rank, how often each letter must fill a
	// wildcard position.
	Required [26]int
	// Excluded holds letter ranks that may not fill a wildcard position.
	Excluded *bitset.BitSet
	// MatchAll lets wildcard letters without an outstanding quota through.
	MatchAll bool
}

// Length returns the word length the constraint applies to.
func (c *Constraint) Length() int { return len(c.Pattern) }

// scanState is the bracket state of the parser.
type scanState int

const (
	outside scanState = iota
	inRound
	inSquare
)

// Parse scans input into a Constraint for words of wordLength letters.
func Parse(input string, wordLength int) (*Constraint, error) {
	input = strings.ToUpper(input)
	c := &Constraint{
		Pattern:  make([]byte, 0, wordLength),
		Excluded: bitset.New(26),
	}
	state := outside
	hasRound := false

	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case ch == '(':
			hasRound = true
			if state != outside {
				return nil, ErrNestedBrackets
			}
			state = inRound
		case ch == ')':
			if state != inRound {
				return nil, ErrUnpairedBracket
			}
			state = outside
		case ch == '[':
			if state != outside {
				return nil, ErrNestedBrackets
			}
			state = inSquare
		case ch == ']':
			if state != inSquare {
				return nil, ErrUnpairedBracket
			}
			state = outside
		case ch >= 'A' && ch <= 'Z':
			switch state {
			case inRound:
				c.Required[ch-'A']++
			case inSquare:
				c.Excluded.Set(uint(ch - 'A'))
			default:
				c.Pattern = append(c.Pattern, ch)
			}
		case ch == Wildcard:
			switch state {
			case inRound:
				c.MatchAll = true
			case inSquare:
				return nil, ErrWildcardInExclusion
			default:
				c.Pattern = append(c.Pattern, ch)
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrIllegalCharacter, rune(ch))
		}
	}

	if len(c.Pattern) != wordLength {
		return nil, &PatternLengthError{Got: len(c.Pattern), Want: wordLength}
	}
	if state != outside {
		return nil, ErrUnpairedBracket
	}
	if !hasRound {
		c.MatchAll = true
	}
	return c, nil
}
