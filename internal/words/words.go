// internal/words/words.go
//
// Word corpus management for the game, the helper search and hashtag checks.
//
// Responsibilities:
//   - Load `WORD,TIER` records from a file, a reader, or the embedded default.
//   - Maintain two indices built once at load time:
//       membership: length → word → tier  (existence/difficulty lookups)
//       buckets:    length → tier → words (uniform draws, tier-bounded scans)
//   - Supply Exists, RandomWord, WordAt and WordsAtLength queries.
//
// Record rules:
//   • Fields are separated by a single comma; any other field count is skipped.
//   • Words are normalized to uppercase and must be A–Z only.
//   • Tiers must be positive integers.
//   • Words outside [minLength, maxLength] are dropped.
//   • The first record of a word wins; later duplicates are skipped.
//
// A Corpus is read-only after Load and safe for concurrent readers.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ewordle/assets"
)

// Existence is the outcome of checking a word against the corpus.
type Existence int

const (
	// ExistsEmpty is returned for an empty word: no constraint, a random
	// word will be drawn instead.
	ExistsEmpty Existence = iota
	ExistsNotFound
	ExistsTooDifficult
	ExistsOK
)

// String returns the player-facing message for e.
func (e Existence) String() string {
	switch e {
	case ExistsEmpty:
		return ""
	case ExistsNotFound:
		return "Not Found"
	case ExistsTooDifficult:
		return "The word is too difficult"
	case ExistsOK:
		return "OK"
	}
	return "Existence(" + strconv.Itoa(int(e)) + ")"
}

// Pass reports whether e allows the word to be used.
func (e Existence) Pass() bool { return e == ExistsEmpty || e == ExistsOK }

// Corpus is the in-memory word list indexed by length and tier.
type Corpus struct {
	minLength, maxLength int
	membership           map[int]map[string]int
	buckets              map[int]map[int][]string
	intn                 func(n int) int
	stats                Stats
}

// Stats reports what Load kept and skipped.
type Stats struct {
	Loaded   int
	Skipped  int
	ByLength map[int]int
}

// Option configures a Corpus at load time.
type Option func(*Corpus)

// WithRand replaces the random source used by RandomWord.
// intn must return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(c *Corpus) { c.intn = intn }
}

// Load reads records from r and builds both indices.
// Malformed records are skipped; only read errors are returned.
func Load(r io.Reader, minLength, maxLength int, opts ...Option) (*Corpus, error) {
	c := &Corpus{
		minLength:  minLength,
		maxLength:  maxLength,
		membership: make(map[int]map[string]int),
		buckets:    make(map[int]map[int][]string),
		intn:       cryptoIntn,
		stats:      Stats{ByLength: make(map[int]int)},
	}
	for _, o := range opts {
		o(c)
	}

	// Lines are read whole whatever their length; an oversized record is
	// malformed and skipped.
	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if line := strings.TrimSpace(raw); line != "" {
			c.addLine(line)
		}
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		if err != nil {
			return nil, fmt.Errorf("words: read corpus: %w", err)
		}
	}
}

// addLine indexes one non-blank record.
func (c *Corpus) addLine(line string) {
	word, tier, ok := parseRecord(line)
	if !ok {
		c.stats.Skipped++
		return
	}
	if len(word) < c.minLength || len(word) > c.maxLength {
		return
	}
	c.add(word, tier)
}

// LoadFile loads the corpus from a file on disk.
func LoadFile(path string, minLength, maxLength int, opts ...Option) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open corpus: %w", err)
	}
	defer f.Close()
	return Load(f, minLength, maxLength, opts...)
}

// LoadEmbedded loads the corpus shipped in the assets package.
func LoadEmbedded(minLength, maxLength int, opts ...Option) (*Corpus, error) {
	f, err := assets.OpenCorpus()
	if err != nil {
		return nil, fmt.Errorf("words: open embedded corpus: %w", err)
	}
	defer f.Close()
	return Load(f, minLength, maxLength, opts...)
}

// parseRecord splits a `WORD,TIER` line. ok is false for malformed records.
func parseRecord(line string) (word string, tier int, ok bool) {
	items := strings.Split(line, ",")
	if len(items) != 2 {
		return "", 0, false
	}
	tier, err := strconv.Atoi(strings.TrimSpace(items[1]))
	if err != nil || tier < 1 {
		return "", 0, false
	}
	word = strings.ToUpper(strings.TrimSpace(items[0]))
	if word == "" || !IsUpperAlpha(word) {
		return "", 0, false
	}
	return word, tier, true
}

// add inserts word into both indices unless it is already present.
func (c *Corpus) add(word string, tier int) {
	n := len(word)
	byWord, ok := c.membership[n]
	if !ok {
		byWord = make(map[string]int)
		c.membership[n] = byWord
	}
	if _, dup := byWord[word]; dup {
		c.stats.Skipped++
		return
	}
	byWord[word] = tier

	byTier, ok := c.buckets[n]
	if !ok {
		byTier = make(map[int][]string)
		c.buckets[n] = byTier
	}
	byTier[tier] = append(byTier[tier], word)

	c.stats.Loaded++
	c.stats.ByLength[n]++
}

// Exists checks word (uppercase) against the corpus for a player whose
// source admits tiers up to maxTier.
func (c *Corpus) Exists(word string, maxTier int) Existence {
	if len(word) == 0 {
		return ExistsEmpty
	}
	tier, ok := c.membership[len(word)][word]
	if !ok {
		return ExistsNotFound
	}
	if tier > maxTier {
		return ExistsTooDifficult
	}
	return ExistsOK
}

// Tier returns the tier of word, if it is in the corpus.
func (c *Corpus) Tier(word string) (int, bool) {
	tier, ok := c.membership[len(word)][word]
	return tier, ok
}

// EligibleCount returns how many words of length have tier ≤ maxTier.
func (c *Corpus) EligibleCount(length, maxTier int) int {
	byTier := c.buckets[length]
	total := 0
	for t := 1; t <= maxTier; t++ {
		total += len(byTier[t])
	}
	return total
}

// WordAt returns the index-th eligible word, counting through tiers
// 1..maxTier in order without materializing their union.
func (c *Corpus) WordAt(length, maxTier, index int) (string, bool) {
	if index < 0 {
		return "", false
	}
	byTier := c.buckets[length]
	for t := 1; t <= maxTier; t++ {
		bucket := byTier[t]
		if index < len(bucket) {
			return bucket[index], true
		}
		index -= len(bucket)
	}
	return "", false
}

// RandomWord draws uniformly among all eligible words of length, every
// word weighted equally regardless of its tier.
func (c *Corpus) RandomWord(length, maxTier int) (string, bool) {
	total := c.EligibleCount(length, maxTier)
	if total == 0 {
		return "", false
	}
	return c.WordAt(length, maxTier, c.intn(total))
}

// WordsAtLength returns the tier buckets for words of length.
func (c *Corpus) WordsAtLength(length int) Buckets {
	return Buckets{byTier: c.buckets[length]}
}

// LengthRange returns the configured [min, max] word length.
func (c *Corpus) LengthRange() (int, int) { return c.minLength, c.maxLength }

// Stats returns load counters.
func (c *Corpus) Stats() Stats { return c.stats }

// Buckets is a read-only view of one length's tier buckets.
type Buckets struct {
	byTier map[int][]string
}

// Tier returns the words of tier t in corpus order. Callers must not modify
// the returned slice.
func (b Buckets) Tier(t int) []string { return b.byTier[t] }

// Len returns the total word count across all tiers.
func (b Buckets) Len() int {
	n := 0
	for _, ws := range b.byTier {
		n += len(ws)
	}
	return n
}

// IsUpperAlpha reports whether s is all uppercase ASCII letters.
func IsUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// cryptoIntn returns a crypto/rand integer in [0, n). If the system source
// fails it logs the error and returns 0.
func cryptoIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		log.Error().Err(err).Int("n", n).Msg("crypto/rand failed; drawing index 0")
		return 0
	}
	return int(v.Int64())
}
