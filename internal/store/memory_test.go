package store

import (
	"context"
	"errors"
	"testing"

	"github.com/robalobadob/ewordle/internal/game"
)

func finished(won bool) *game.Game {
	g := game.New("ALLOT", "All", 6, "")
	g.Finished, g.Won = true, won
	return g
}

func TestMemoryStoreSaveGetList(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	a := game.New("ALLOT", "All", 6, "")
	b := game.New("CRANE", "All", 6, "")
	for _, g := range []*game.Game{a, b, a} {
		if err := st.Save(ctx, g); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	got, err := st.Get(ctx, b.ID)
	if err != nil || got != b {
		t.Fatalf("get: %v, %v", got, err)
	}
	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list, err := st.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0] != a || list[1] != b {
		t.Fatalf("list should keep first-save order without duplicates: %v", list)
	}
}

func TestSummarize(t *testing.T) {
	playing := game.New("ALLOT", "All", 6, "")
	games := []*game.Game{
		finished(true), finished(true), finished(false),
		finished(true), playing, finished(true), finished(true),
	}
	s := Summarize(games)
	if s.Played != 6 || s.Wins != 5 {
		t.Fatalf("played/wins = %d/%d", s.Played, s.Wins)
	}
	if s.Streak != 3 || s.MaxStreak != 3 {
		t.Fatalf("streak/max = %d/%d", s.Streak, s.MaxStreak)
	}
	if s.WinRate() != 83 {
		t.Fatalf("win rate %d", s.WinRate())
	}
	if (Stats{}).WinRate() != 0 {
		t.Fatal("empty win rate should be 0")
	}
}

func TestMemoryStoreDailyPlayed(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	if played, _ := st.DailyPlayed(ctx, "2026-10-15"); played {
		t.Fatal("empty store reports a daily game")
	}
	if err := st.Save(ctx, game.New("CRANE", "All", 6, "")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if played, _ := st.DailyPlayed(ctx, "2026-10-15"); played {
		t.Fatal("a regular game must not count as the daily game")
	}

	g := game.New("ALLOT", "All", 6, "")
	g.Daily = "2026-10-15"
	if err := st.Save(ctx, g); err != nil {
		t.Fatalf("save: %v", err)
	}
	if played, _ := st.DailyPlayed(ctx, "2026-10-15"); !played {
		t.Fatal("daily game not recorded")
	}
	if played, _ := st.DailyPlayed(ctx, "2026-10-16"); played {
		t.Fatal("daily game leaked to another date")
	}
}

func TestMemoryStoreListIsACopy(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	_ = st.Save(ctx, game.New("ALLOT", "All", 6, ""))

	list, _ := st.List(ctx)
	list[0] = nil
	again, _ := st.List(ctx)
	if again[0] == nil {
		t.Fatal("List exposed internal storage")
	}
}
