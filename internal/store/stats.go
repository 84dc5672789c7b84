package store

import "github.com/robalobadob/ewordle/internal/game"

// Stats aggregates finished games.
type Stats struct {
	Played    int
	Wins      int
	Streak    int
	MaxStreak int
}

// Summarize walks games in order. Unfinished games are ignored; a win
// extends the streak, a loss resets it.
func Summarize(games []*game.Game) Stats {
	var s Stats
	for _, g := range games {
		if !g.Finished {
			continue
		}
		s.Played++
		if g.Won {
			s.Wins++
			s.Streak++
			if s.Streak > s.MaxStreak {
				s.MaxStreak = s.Streak
			}
		} else {
			s.Streak = 0
		}
	}
	return s
}

// WinRate returns wins as a percentage of games played.
func (s Stats) WinRate() int {
	if s.Played == 0 {
		return 0
	}
	return s.Wins * 100 / s.Played
}
