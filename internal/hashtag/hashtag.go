// internal/hashtag/hashtag.go
//
// Shareable game tokens.
//
// A token identifies (word, source, length) as one integer built in radix 29:
//
//   n = ((letters folded first-to-last) * 29 + source) * 29 + length
//
// where each letter contributes 0..25 ('A'..'Z'). The integer is written in
// base 36 (0-9 then A-Z), most significant digit first, after a "#".
//
// Tokens hold at most MaxDigits digits so the value stays in 64 bits; words
// of up to MaxWordLength letters always fit.

package hashtag

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/robalobadob/ewordle/internal/words"
)

const (
	// Prefix starts every token.
	Prefix = "#"
	// MaxDigits is the longest accepted token body.
	MaxDigits = 13
	// MaxWordLength is the longest word whose token always fits.
	MaxWordLength = 11
	// MaxSources bounds the source count: a source index is one radix-29 digit.
	MaxSources = radix - 1

	radix     = 29
	outRadix  = 36
	digitsSet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	ErrLengthTooLarge      = errors.New("hashtag too long")
	ErrIllegalLetter       = errors.New("illegal letter in hashtag")
	ErrIllegalSourceOption = errors.New("illegal word source option")
	ErrIllegalWordLetter   = errors.New("illegal word letter")
)

// InvalidWordError reports a token that decoded cleanly to a word the corpus
// rejects at the decoded source.
type InvalidWordError struct {
	Word   string
	Reason words.Existence
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("invalid word %q: %s", e.Word, e.Reason)
}

// Lookup checks a decoded word at the decoded source tier.
// (*words.Corpus).Exists satisfies it.
type Lookup func(word string, maxTier int) words.Existence

// Decoded is the game a token identifies.
type Decoded struct {
	Word   string
	Source int
}

// Encode builds the token for word (A–Z) played from the 1-based source
// out of sourceCount sources.
func Encode(word string, source, sourceCount int) (string, error) {
	word = strings.ToUpper(word)
	if sourceCount < 1 || sourceCount > MaxSources || source < 1 || source > sourceCount {
		return "", fmt.Errorf("%w: %d of %d", ErrIllegalSourceOption, source, sourceCount)
	}
	if len(word) == 0 {
		return "", fmt.Errorf("%w: empty word", ErrIllegalWordLetter)
	}
	if len(word) > MaxWordLength {
		return "", fmt.Errorf("%w: %d letters", ErrLengthTooLarge, len(word))
	}
	var n uint64
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'A' || ch > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrIllegalWordLetter, rune(ch))
		}
		n = n*radix + uint64(ch-'A')
	}
	n = n*radix + uint64(source)
	n = n*radix + uint64(len(word))
	return Prefix + toBase36(n), nil
}

// Decode reverses Encode and validates the word through lookup at the
// decoded source tier. The "#" prefix is optional and case is ignored.
func Decode(token string, sourceCount int, lookup Lookup) (Decoded, error) {
	body := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(token), Prefix))
	if len(body) > MaxDigits {
		return Decoded{}, fmt.Errorf("%w: %d digits", ErrLengthTooLarge, len(body))
	}
	if body == "" {
		return Decoded{}, fmt.Errorf("%w: empty hashtag", ErrIllegalLetter)
	}
	n, err := fromBase36(body)
	if err != nil {
		return Decoded{}, err
	}

	length := int(n % radix)
	n /= radix
	source := int(n % radix)
	n /= radix
	if source < 1 || source > sourceCount {
		return Decoded{}, fmt.Errorf("%w: %d", ErrIllegalSourceOption, source)
	}
	if length == 0 {
		return Decoded{}, fmt.Errorf("%w: empty word", ErrIllegalWordLetter)
	}

	buf := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		d := n % radix
		n /= radix
		if d >= 26 {
			return Decoded{}, fmt.Errorf("%w: digit %d", ErrIllegalWordLetter, d)
		}
		buf[i] = byte('A' + d)
	}
	if n != 0 {
		return Decoded{}, fmt.Errorf("%w: trailing digits", ErrIllegalWordLetter)
	}

	word := string(buf)
	if res := lookup(word, source); res != words.ExistsOK {
		return Decoded{}, &InvalidWordError{Word: word, Reason: res}
	}
	return Decoded{Word: word, Source: source}, nil
}

// toBase36 renders n with digits 0-9A-Z, most significant first.
func toBase36(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [MaxDigits + 1]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digitsSet[n%outRadix]
		n /= outRadix
	}
	return string(buf[i:])
}

// fromBase36 parses uppercase base-36 digits, rejecting values past 64 bits.
func fromBase36(s string) (uint64, error) {
	var n uint64
	for i := 0; i < len(s); i++ {
		d := strings.IndexByte(digitsSet, s[i])
		if d < 0 {
			return 0, fmt.Errorf("%w: %q", ErrIllegalLetter, rune(s[i]))
		}
		if n > (math.MaxUint64-uint64(d))/outRadix {
			return 0, fmt.Errorf("%w: value overflows", ErrLengthTooLarge)
		}
		n = n*outRadix + uint64(d)
	}
	return n, nil
}
