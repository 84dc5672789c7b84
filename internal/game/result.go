package game

import (
	"fmt"
	"strings"
)

// Result summarizes a finished (or abandoned) game for display and sharing.
type Result struct {
	Answer     string
	Won        bool
	Tries      int
	MaxTries   int
	HelperUsed bool
	Hashtag    string
	Records    [][]Mark
}

// Result builds the summary of g.
func (g *Game) Result() Result {
	return Result{
		Answer:     g.Answer,
		Won:        g.Won,
		Tries:      len(g.Guesses),
		MaxTries:   g.MaxTries,
		HelperUsed: g.HelperUsed,
		Hashtag:    g.Hashtag,
		Records:    g.Records,
	}
}

// Headline is "Success" or "Failed".
func (r Result) Headline() string {
	if r.Won {
		return "Success"
	}
	return "Failed"
}

// TriesLabel renders "3/6", or "X/6" for a loss. A trailing "*" marks a game
// played with the helper.
func (r Result) TriesLabel() string {
	tries := "X"
	if r.Won {
		tries = fmt.Sprint(r.Tries)
	}
	label := fmt.Sprintf("%s/%d", tries, r.MaxTries)
	if r.HelperUsed {
		label += "*"
	}
	return label
}

// Grid renders one emoji row per guess.
func (r Result) Grid() string {
	var b strings.Builder
	for i, rec := range r.Records {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, m := range rec {
			switch m {
			case MarkCorrect:
				b.WriteString("🟩")
			case MarkPresent:
				b.WriteString("🟨")
			default:
				b.WriteString("⬛")
			}
		}
	}
	return b.String()
}

// ShareText is the text a player copies to share the game.
func (r Result) ShareText() string {
	head := "eWordle " + r.TriesLabel()
	if r.Hashtag != "" {
		head = "eWordle " + r.Hashtag + " " + r.TriesLabel()
	}
	if len(r.Records) == 0 {
		return head
	}
	return head + "\n" + r.Grid()
}
