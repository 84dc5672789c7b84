// internal/console/console.go
//
// Line-oriented text front end for eWordle.
// Responsibilities:
//   - Settings: word length, word source, custom/random/daily answer, replay
//     from a shared hashtag, session stats.
//   - Play: read guesses, render scored rows, run helper searches ("?query").
//   - Results: success/failure, tries used, share text with the hashtag.
//
// Commands (settings):
//   length N | source NAME|N | new [WORD] | daily | #TOKEN | stats | help | quit
// Commands (in game):
//   WORD | ?QUERY | quit
//
// Notes:
//   - All collaborators are passed in; the console owns only the current game.
//   - Tiles are colored and bracketed: [A] correct, (A) present, ' A ' absent.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ewordle/internal/daily"
	"github.com/robalobadob/ewordle/internal/game"
	"github.com/robalobadob/ewordle/internal/hashtag"
	"github.com/robalobadob/ewordle/internal/query"
	"github.com/robalobadob/ewordle/internal/store"
	"github.com/robalobadob/ewordle/internal/words"
)

var (
	correctTile = color.New(color.FgHiWhite, color.BgGreen, color.Bold)
	presentTile = color.New(color.FgHiWhite, color.BgYellow, color.Bold)
	absentTile  = color.New(color.FgHiWhite, color.BgHiBlack, color.Bold)
	errorText   = color.New(color.FgHiRed)
	infoText    = color.New(color.FgHiCyan)
	winText     = color.New(color.FgHiGreen, color.Bold)
	loseText    = color.New(color.FgHiBlack, color.Bold)
)

// MaxLineLength bounds a single command, guess or helper query.
const MaxLineLength = 256

// Settings are the player's preferences carried between games.
type Settings struct {
	Length    int
	Source    int
	DailySalt string
}

// Console runs the game loop over a reader/writer pair.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	corpus   *words.Corpus
	sources  words.Sources
	store    store.Store
	settings Settings
	now      func() time.Time

	game *game.Game
}

// Option configures a Console.
type Option func(*Console)

// WithClock replaces the clock used for the daily word.
func WithClock(now func() time.Time) Option {
	return func(c *Console) { c.now = now }
}

// New builds a console. settings.Source is a 1-based tier of sources.
func New(in io.Reader, out io.Writer, corpus *words.Corpus, sources words.Sources,
	st store.Store, settings Settings, opts ...Option) *Console {
	c := &Console{
		in:       bufio.NewReader(in),
		out:      out,
		corpus:   corpus,
		sources:  sources,
		store:    st,
		settings: settings,
		now:      time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Run reads commands until quit, end of input, or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	c.printSettings()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.prompt()
		raw, err := c.in.ReadString('\n')
		if raw == "" && err != nil {
			if c.game != nil && !c.game.Finished {
				c.finish(ctx, true)
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if len(line) > MaxLineLength {
			c.errorf("Input too long (at most %d characters)", MaxLineLength)
			continue
		}
		var quit bool
		if c.game != nil {
			c.handleGameLine(ctx, line)
		} else {
			quit = c.handleSettingsLine(ctx, line)
		}
		if quit {
			fmt.Fprintln(c.out, "Bye.")
			return nil
		}
	}
}

func (c *Console) prompt() {
	if c.game != nil {
		fmt.Fprintf(c.out, "guess %d/%d> ", len(c.game.Guesses)+1, c.game.MaxTries)
		return
	}
	fmt.Fprint(c.out, "> ")
}

// ------------------------------ settings ------------------------------------

// handleSettingsLine runs one settings command; it reports whether to quit.
func (c *Console) handleSettingsLine(ctx context.Context, line string) bool {
	if strings.HasPrefix(line, hashtag.Prefix) {
		c.startFromHashtag(ctx, line)
		return false
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true
	case "help":
		c.printHelp()
	case "length":
		c.setLength(arg)
	case "source":
		c.setSource(arg)
	case "new":
		c.startNew(ctx, arg)
	case "daily":
		c.startDaily(ctx)
	case "stats":
		c.printStats(ctx)
	default:
		c.errorf("Unknown command %q (type help)", cmd)
	}
	return false
}

func (c *Console) setLength(arg string) {
	n, err := strconv.Atoi(arg)
	lo, hi := c.corpus.LengthRange()
	if err != nil || n < lo || n > hi {
		c.errorf("Word length must be between %d and %d", lo, hi)
		return
	}
	c.settings.Length = n
	c.printSettings()
}

func (c *Console) setSource(arg string) {
	tier, ok := c.sources.Resolve(arg)
	if !ok {
		c.errorf("Unknown word source %q (options: %s)", arg, strings.Join(c.sources, ", "))
		return
	}
	c.settings.Source = tier
	c.printSettings()
}

// startNew starts a game with the given word, or a random one when empty.
func (c *Console) startNew(ctx context.Context, word string) {
	word = strings.ToUpper(word)
	if len(word) != 0 && len(word) != c.settings.Length {
		size := "large"
		if len(word) < c.settings.Length {
			size = "small"
		}
		c.errorf("Error: The length of Wordle Word is too %s!", size)
		return
	}
	if res := c.corpus.Exists(word, c.settings.Source); !res.Pass() {
		c.errorf("%s", res)
		return
	}
	if word == "" {
		w, ok := c.corpus.RandomWord(c.settings.Length, c.settings.Source)
		if !ok {
			c.errorf("Not Found")
			return
		}
		word = w
	}
	c.start(ctx, word, c.settings.Source, "")
}

// startDaily starts today's game; each date can be played once per session.
func (c *Console) startDaily(ctx context.Context) {
	now := c.now()
	date := daily.DateKey(now)
	played, err := c.store.DailyPlayed(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("check daily")
	}
	if played {
		c.errorf("Already played the daily word for %s", date)
		return
	}
	n := c.corpus.EligibleCount(c.settings.Length, c.settings.Source)
	idx := daily.WordIndex(now, c.settings.DailySalt, n)
	word, ok := c.corpus.WordAt(c.settings.Length, c.settings.Source, idx)
	if !ok {
		c.errorf("Not Found")
		return
	}
	c.infof("Daily word for %s", date)
	c.start(ctx, word, c.settings.Source, date)
}

func (c *Console) startFromHashtag(ctx context.Context, token string) {
	d, err := hashtag.Decode(token, c.sources.Len(), c.corpus.Exists)
	if err != nil {
		log.Debug().Err(err).Str("hashtag", token).Msg("decode hashtag")
		var ie *hashtag.InvalidWordError
		if errors.As(err, &ie) {
			c.errorf("Invalid hashtag: %s", ie.Reason)
			return
		}
		c.errorf("Invalid hashtag: %v", err)
		return
	}
	c.settings.Length = len(d.Word)
	c.settings.Source = d.Source
	c.start(ctx, d.Word, d.Source, "")
}

// start creates and announces a game for word at the given source tier.
// dailyDate is set only for the daily game.
func (c *Console) start(ctx context.Context, word string, tier int, dailyDate string) {
	name, _ := c.sources.Name(tier)
	token, err := hashtag.Encode(word, tier, c.sources.Len())
	if err != nil {
		log.Warn().Err(err).Msg("encode hashtag")
	}
	g := game.New(word, name, tier, token)
	g.Daily = dailyDate
	if err := c.store.Save(ctx, g); err != nil {
		log.Error().Err(err).Str("game", g.ID).Msg("save game")
	}
	c.game = g
	log.Info().Str("game", g.ID).Int("length", g.Cols).Str("source", name).
		Str("hashtag", token).Msg("game started")

	fmt.Fprintf(c.out, "Hashtag: %s\n", token)
	fmt.Fprintf(c.out, "Current Word Source: %s\n", name)
	fmt.Fprintf(c.out, "Guess the %d-letter word in %d tries. Type ?QUERY for the helper.\n",
		g.Cols, g.MaxTries)
}

// -------------------------------- game --------------------------------------

func (c *Console) handleGameLine(ctx context.Context, line string) {
	switch {
	case strings.HasPrefix(line, "?"):
		c.runHelper(strings.TrimSpace(line[1:]))
	case strings.EqualFold(line, "quit"):
		c.finish(ctx, true)
	default:
		c.guess(ctx, line)
	}
}

func (c *Console) guess(ctx context.Context, line string) {
	marks, state, err := c.game.ApplyGuess(line, c.corpus)
	if err != nil {
		c.errorf("%s", guessMessage(err))
		return
	}
	fmt.Fprintln(c.out, RenderRow(c.game.Guesses[len(c.game.Guesses)-1], marks))
	if err := c.store.Save(ctx, c.game); err != nil {
		log.Error().Err(err).Str("game", c.game.ID).Msg("save game")
	}
	if state != game.StatePlaying {
		c.finish(ctx, false)
	}
}

// guessMessage maps guess errors to player-facing text.
func guessMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrTooShort):
		return "Not enough length"
	case errors.Is(err, game.ErrTooLong):
		return "Too many letters"
	case errors.Is(err, game.ErrNotAlpha):
		return "Only alphabetic letters will be accepted"
	case errors.Is(err, game.ErrNotInWordList):
		return "Not in word list"
	}
	return err.Error()
}

func (c *Console) runHelper(input string) {
	q, err := query.Parse(input, c.game.Cols)
	if err != nil {
		c.errorf("%s", helperMessage(err))
		return
	}
	c.game.HelperUsed = true
	res := query.Search(c.corpus, q, c.game.Tier)
	log.Debug().Str("query", input).Int("matches", res.Count).Msg("helper search")
	fmt.Fprint(c.out, res.String())
}

// helperMessage maps query errors to player-facing text.
func helperMessage(err error) string {
	var pe *query.PatternLengthError
	switch {
	case errors.As(err, &pe):
		if pe.TooShort() {
			return "Word Length too small"
		}
		return "Word Length too large"
	case errors.Is(err, query.ErrNestedBrackets):
		return "Nested Brackets Not Supported"
	case errors.Is(err, query.ErrUnpairedBracket):
		return "Unpair Bracket Found"
	case errors.Is(err, query.ErrWildcardInExclusion):
		return "* Inside [] Not Allowed"
	case errors.Is(err, query.ErrIllegalCharacter):
		return "Illegal Input"
	}
	return err.Error()
}

// finish ends the current game and prints its result.
func (c *Console) finish(ctx context.Context, abandon bool) {
	g := c.game
	if abandon {
		g.Abandon()
	}
	if err := c.store.Save(ctx, g); err != nil {
		log.Error().Err(err).Str("game", g.ID).Msg("save game")
	}
	log.Info().Str("game", g.ID).Str("state", string(g.State())).
		Int("tries", len(g.Guesses)).Bool("helper", g.HelperUsed).Msg("game finished")

	r := g.Result()
	if r.Won {
		fmt.Fprintln(c.out, winText.Sprint(r.Headline()))
	} else {
		fmt.Fprintln(c.out, loseText.Sprint(r.Headline()))
	}
	fmt.Fprintf(c.out, "Guessing: %s\n", r.Answer)
	fmt.Fprintf(c.out, "Tries Used: %d\n", r.Tries)
	fmt.Fprintln(c.out, r.ShareText())
	c.game = nil
	c.printSettings()
}

// ------------------------------- output -------------------------------------

// RenderRow renders a scored guess as tiles.
func RenderRow(guess string, marks []game.Mark) string {
	var b strings.Builder
	for i, m := range marks {
		ch := guess[i]
		switch m {
		case game.MarkCorrect:
			b.WriteString(correctTile.Sprintf("[%c]", ch))
		case game.MarkPresent:
			b.WriteString(presentTile.Sprintf("(%c)", ch))
		default:
			b.WriteString(absentTile.Sprintf(" %c ", ch))
		}
	}
	return b.String()
}

func (c *Console) printSettings() {
	name, _ := c.sources.Name(c.settings.Source)
	c.infof("Word Length: %d, Word Source: %s", c.settings.Length, name)
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `Commands:
  new [WORD]        start a game (random word when WORD is empty)
  daily             start today's game
  #TOKEN            replay a shared game
  length N          set the word length
  source NAME|N     set the word source
  stats             show session statistics
  quit              leave
In a game, type a guess, ?QUERY for the helper, or quit to give up.
Helper samples: *****(ESS*), G*E**(SU), *****(ESS*)[AB]
`)
}

func (c *Console) printStats(ctx context.Context) {
	games, err := c.store.List(ctx)
	if err != nil {
		c.errorf("stats unavailable: %v", err)
		return
	}
	s := store.Summarize(games)
	fmt.Fprintf(c.out, "Played: %d  Wins: %d  Win%%: %d  Streak: %d  Max Streak: %d\n",
		s.Played, s.Wins, s.WinRate(), s.Streak, s.MaxStreak)
}

func (c *Console) errorf(format string, args ...any) {
	fmt.Fprintln(c.out, errorText.Sprintf(format, args...))
}

func (c *Console) infof(format string, args ...any) {
	fmt.Fprintln(c.out, infoText.Sprintf(format, args...))
}
