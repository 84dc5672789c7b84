// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Create new games sized by the answer length (L columns, L+1 tries).
//   - Validate and apply guesses (length, alphabetic, corpus at the source tier).
//   - Score guesses using the two-pass algorithm with duplicate-letter correction.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Words are uppercase A–Z throughout.
//   - A guess equal to the answer wins without a corpus lookup.

package game

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/ewordle/internal/words"
)

var (
	ErrFinished      = errors.New("game finished")
	ErrTooShort      = errors.New("not enough length")
	ErrTooLong       = errors.New("too many letters")
	ErrNotAlpha      = errors.New("only alphabetic letters will be accepted")
	ErrNotInWordList = errors.New("not in word list")
)

// New constructs a game for answer, played from the given source.
func New(answer, source string, tier int, hashtag string) *Game {
	answer = strings.ToUpper(answer)
	return &Game{
		ID:       uuid.NewString(),
		Answer:   answer,
		Source:   source,
		Tier:     tier,
		Hashtag:  hashtag,
		Cols:     len(answer),
		MaxTries: len(answer) + 1,
		Guesses:  []string{},
		Records:  [][]Mark{},
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns: the per-letter marks, the new state, or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters A–Z (input is uppercased).
//   - Guess must exist in the corpus at or below g.Tier, unless it is the answer.
//
// State transitions:
//   - If all tiles are Correct → Finished = true, Won = true.
//   - Else if the number of guesses reaches MaxTries → Finished = true (loss).
func (g *Game) ApplyGuess(guess string, checker Checker) ([]Mark, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if !words.IsUpperAlpha(guess) {
		return nil, g.State(), ErrNotAlpha
	}
	switch {
	case len(guess) < g.Cols:
		return nil, g.State(), ErrTooShort
	case len(guess) > g.Cols:
		return nil, g.State(), ErrTooLong
	}
	if guess != g.Answer && checker.Exists(guess, g.Tier) != words.ExistsOK {
		return nil, g.State(), ErrNotInWordList
	}

	marks := Score(guess, g.Answer)
	g.Guesses = append(g.Guesses, guess)
	g.Records = append(g.Records, marks)

	if allCorrect(marks) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.MaxTries {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// Abandon ends an unfinished game as a loss.
func (g *Game) Abandon() {
	g.Finished = true
}

// State reports the current game state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// TriesLeft returns how many guesses remain.
func (g *Game) TriesLeft() int {
	if g.Finished {
		return 0
	}
	return g.MaxTries - len(g.Guesses)
}

// Score implements the two-pass scoring algorithm for guess against target.
// Words are expected to be uppercase A–Z of equal length; any other byte
// scores Absent.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count the target letters of all other positions by letter index.
//
// Pass 2:
//   - For each non-correct guess letter: if a count remains for that letter,
//     mark Present and decrement it; otherwise mark Absent.
//
// A letter is credited Present at most as many times as it remains unmatched
// in the target.
func Score(guess, target string) []Mark {
	n := len(guess)
	res := make([]Mark, n)

	// Letter frequency for the non-correct target positions (A–Z).
	var counts [26]int

	// Only the part of target that overlaps guess is counted.
	m := min(n, len(target))
	for i := 0; i < m; i++ {
		if guess[i] == target[i] {
			res[i] = MarkCorrect
		} else if j := idx(target[i]); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25; other bytes fall outside it.
func idx(b byte) int { return int(b) - 'A' }

// allCorrect returns true if all marks are MarkCorrect.
func allCorrect(m []Mark) bool {
	for _, x := range m {
		if x != MarkCorrect {
			return false
		}
	}
	return true
}
