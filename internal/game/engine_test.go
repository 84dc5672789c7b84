package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/robalobadob/ewordle/internal/words"
)

// fakeChecker maps known words to their tier.
type fakeChecker map[string]int

func (f fakeChecker) Exists(word string, maxTier int) words.Existence {
	if word == "" {
		return words.ExistsEmpty
	}
	tier, ok := f[word]
	if !ok {
		return words.ExistsNotFound
	}
	if tier > maxTier {
		return words.ExistsTooDifficult
	}
	return words.ExistsOK
}

func marksOf(s string) []Mark {
	out := make([]Mark, len(s))
	for i := range s {
		out[i] = Mark(s[i] - '0')
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		guess, target string
		want          string
	}{
		{"LLAMA", "ALLOT", "12100"},
		{"SPEED", "ERASE", "10110"},
		{"CRANE", "CRANE", "22222"},
		{"ABCDE", "FGHIJ", "00000"},
		{"EERIE", "THEME", "10002"},
		{"THEME", "EERIE", "00102"},
		{"ALLOT", "LLAMA", "12100"},
		{"ROBOT", "FLOOR", "11020"},
		{"BANANAS", "ANAGRAM", "0111020"},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.target, func(t *testing.T) {
			got := Score(tt.guess, tt.target)
			want := marksOf(tt.want)
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("Score(%q, %q) = %v, want %v", tt.guess, tt.target, got, want)
				}
			}
		})
	}
}

func TestScoreOutsideAlphabet(t *testing.T) {
	tests := []struct {
		guess, target string
		want          string
	}{
		{"apple", "APPLE", "00000"},
		{"APPLE", "apple", "00000"},
		{"AP-LE", "APPLE", "22022"},
		{"PAPLE", "AP", "11000"},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.target, func(t *testing.T) {
			got := Score(tt.guess, tt.target)
			want := marksOf(tt.want)
			if len(got) != len(want) {
				t.Fatalf("Score(%q, %q) = %v, want %v", tt.guess, tt.target, got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("Score(%q, %q) = %v, want %v", tt.guess, tt.target, got, want)
				}
			}
		})
	}
}

func TestScoreInvariants(t *testing.T) {
	pairs := [][2]string{
		{"SPEED", "ERASE"}, {"LLAMA", "ALLOT"}, {"EERIE", "THEME"},
		{"AAAAA", "ABABA"}, {"ABABA", "AAAAA"}, {"MISSISSI", "SISSIMIS"},
	}
	for _, p := range pairs {
		guess, target := p[0], p[1]
		marks := Score(guess, target)

		correct := 0
		for i := range guess {
			if guess[i] == target[i] {
				correct++
				if marks[i] != MarkCorrect {
					t.Fatalf("%s/%s: position %d should be correct", guess, target, i)
				}
			}
		}
		n := 0
		for _, m := range marks {
			if m == MarkCorrect {
				n++
			}
		}
		if n != correct {
			t.Fatalf("%s/%s: %d correct marks, want %d", guess, target, n, correct)
		}

		// Present marks per letter never exceed the target's unmatched count.
		var remaining, present [26]int
		for i := range target {
			if guess[i] != target[i] {
				remaining[target[i]-'A']++
			}
		}
		for i, m := range marks {
			if m == MarkPresent {
				present[guess[i]-'A']++
			}
		}
		for c := 0; c < 26; c++ {
			if present[c] > remaining[c] {
				t.Fatalf("%s/%s: letter %c present %d times, only %d unmatched",
					guess, target, 'A'+c, present[c], remaining[c])
			}
		}
	}
}

func TestNewGameDimensions(t *testing.T) {
	g := New("planet", "All", 6, "#ABC")
	if g.Answer != "PLANET" {
		t.Fatalf("answer not uppercased: %q", g.Answer)
	}
	if g.Cols != 6 || g.MaxTries != 7 {
		t.Fatalf("expected 6 cols and 7 tries, got %d/%d", g.Cols, g.MaxTries)
	}
	if g.ID == "" || g.ID == New("planet", "All", 6, "").ID {
		t.Fatal("expected unique non-empty IDs")
	}
	if g.State() != StatePlaying {
		t.Fatalf("expected playing, got %s", g.State())
	}
}

func TestApplyGuessValidation(t *testing.T) {
	checker := fakeChecker{"CRANE": 1, "ERASE": 3}
	g := New("ALLOT", "CET-4", 1, "")

	tests := []struct {
		guess string
		want  error
	}{
		{"", ErrTooShort},
		{"cran", ErrTooShort},
		{"cranes", ErrTooLong},
		{"cr4ne", ErrNotAlpha},
		{"zzzzz", ErrNotInWordList},
		{"erase", ErrNotInWordList},
	}
	for _, tt := range tests {
		t.Run(tt.guess, func(t *testing.T) {
			_, state, err := g.ApplyGuess(tt.guess, checker)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ApplyGuess(%q) error = %v, want %v", tt.guess, err, tt.want)
			}
			if state != StatePlaying {
				t.Fatalf("state changed to %s", state)
			}
		})
	}
	if len(g.Guesses) != 0 {
		t.Fatalf("rejected guesses were recorded: %v", g.Guesses)
	}
}

func TestApplyGuessWin(t *testing.T) {
	checker := fakeChecker{"CRANE": 1}
	// The answer is not in the checker: it must still be accepted.
	g := New("ALLOT", "CET-4", 1, "")

	if _, state, err := g.ApplyGuess("crane", checker); err != nil || state != StatePlaying {
		t.Fatalf("first guess: state=%s err=%v", state, err)
	}
	marks, state, err := g.ApplyGuess("allot", checker)
	if err != nil {
		t.Fatalf("winning guess: %v", err)
	}
	if state != StateWon || !g.Won || !g.Finished {
		t.Fatalf("expected won, got %s", state)
	}
	for _, m := range marks {
		if m != MarkCorrect {
			t.Fatalf("winning marks: %v", marks)
		}
	}
	if _, _, err := g.ApplyGuess("crane", checker); !errors.Is(err, ErrFinished) {
		t.Fatalf("expected ErrFinished, got %v", err)
	}
}

func TestApplyGuessLosesAfterLPlusOneTries(t *testing.T) {
	checker := fakeChecker{"CRANE": 1}
	g := New("ALLOT", "CET-4", 1, "")

	for i := 0; i < 5; i++ {
		_, state, err := g.ApplyGuess("CRANE", checker)
		if err != nil {
			t.Fatalf("guess %d: %v", i+1, err)
		}
		if state != StatePlaying {
			t.Fatalf("guess %d: game ended early (%s)", i+1, state)
		}
	}
	if g.TriesLeft() != 1 {
		t.Fatalf("expected 1 try left, got %d", g.TriesLeft())
	}
	_, state, err := g.ApplyGuess("CRANE", checker)
	if err != nil {
		t.Fatalf("guess 6: %v", err)
	}
	if state != StateLost {
		t.Fatalf("expected lost after 6 guesses, got %s", state)
	}
	if len(g.Records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(g.Records))
	}
}

func TestAbandon(t *testing.T) {
	g := New("ALLOT", "CET-4", 1, "")
	g.Abandon()
	if g.State() != StateLost || g.TriesLeft() != 0 {
		t.Fatalf("abandoned game: state=%s tries=%d", g.State(), g.TriesLeft())
	}
}

func TestResult(t *testing.T) {
	checker := fakeChecker{"CRANE": 1, "LLAMA": 1}
	g := New("ALLOT", "CET-4", 1, "#59NLB3")
	_, _, _ = g.ApplyGuess("LLAMA", checker)
	_, _, _ = g.ApplyGuess("ALLOT", checker)
	g.HelperUsed = true

	r := g.Result()
	if r.Headline() != "Success" {
		t.Fatalf("headline %q", r.Headline())
	}
	if r.TriesLabel() != "2/6*" {
		t.Fatalf("tries label %q", r.TriesLabel())
	}
	wantGrid := "🟨🟩🟨⬛⬛\n🟩🟩🟩🟩🟩"
	if r.Grid() != wantGrid {
		t.Fatalf("grid:\n%s\nwant:\n%s", r.Grid(), wantGrid)
	}
	if !strings.HasPrefix(r.ShareText(), "eWordle #59NLB3 2/6*\n") {
		t.Fatalf("share text %q", r.ShareText())
	}

	lost := New("ALLOT", "CET-4", 1, "")
	lost.Abandon()
	lr := lost.Result()
	if lr.Headline() != "Failed" || lr.TriesLabel() != "X/6" || lr.ShareText() != "eWordle X/6" {
		t.Fatalf("lost result: %q %q %q", lr.Headline(), lr.TriesLabel(), lr.ShareText())
	}
}
