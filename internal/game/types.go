// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter result of a guess (absent/present/correct).
//   - State: coarse session state (playing/won/lost).
//   - Game: state for a single in-progress or finished game.

package game

import "github.com/robalobadob/ewordle/internal/words"

// Mark represents the evaluation result for a single letter in a guess.
// Numeric values match the score encoding used for sharing:
//   - 0 absent:  letter does not remain unmatched anywhere in the target.
//   - 1 present: letter is in the target at another position.
//   - 2 correct: letter is in the correct position.
type Mark int

const (
	MarkAbsent Mark = iota
	MarkPresent
	MarkCorrect
)

// String returns the lowercase name of the mark.
func (m Mark) String() string {
	switch m {
	case MarkAbsent:
		return "absent"
	case MarkPresent:
		return "present"
	case MarkCorrect:
		return "correct"
	}
	return "unknown"
}

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Checker validates guesses against the word corpus.
// *words.Corpus satisfies it.
type Checker interface {
	Exists(word string, maxTier int) words.Existence
}

// Game holds the state of a single game session.
type Game struct {
	ID         string   // Unique game identifier (UUID).
	Answer     string   // The solution word (always uppercase).
	Source     string   // Name of the selected word source.
	Tier       int      // Tier of the selected source; guesses must be ≤ it.
	Hashtag    string   // Shareable token for this answer/source, if any.
	Daily      string   // UTC date key when this is the daily game.
	Cols       int      // Number of letters per word.
	MaxTries   int      // Cols+1 guesses are allowed.
	Guesses    []string // Confirmed guesses, in order.
	Records    [][]Mark // One record per confirmed guess; never mutated.
	Finished   bool     // True once the game is over (won or lost).
	Won        bool     // True if the game was finished with a win.
	HelperUsed bool     // True once the player ran a helper search.
}
