package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ewordle/internal/config"
	"github.com/robalobadob/ewordle/internal/console"
	"github.com/robalobadob/ewordle/internal/store"
	"github.com/robalobadob/ewordle/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	corpus, err := loadCorpus(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word corpus")
	}

	sources := cfg.Sources()
	tier, _ := sources.Tier(cfg.DefaultSource)
	settings := console.Settings{
		Length:    cfg.DefaultLength,
		Source:    tier,
		DailySalt: cfg.DailySalt,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := console.New(os.Stdin, os.Stdout, corpus, sources, store.NewMemoryStore(), settings)
	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("console exited")
	}
}

// setupLogging applies LOG_LEVEL and LOG_FORMAT. Logs go to stderr so they
// never interleave with the game on stdout.
func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		log.Logger = log.Output(os.Stderr)
	}
}

func loadCorpus(cfg config.Config) (*words.Corpus, error) {
	start := time.Now()
	var (
		corpus *words.Corpus
		err    error
		from   = "embedded"
	)
	if cfg.CorpusFile != "" {
		from = cfg.CorpusFile
		corpus, err = words.LoadFile(cfg.CorpusFile, cfg.MinLength, cfg.MaxLength)
	} else {
		corpus, err = words.LoadEmbedded(cfg.MinLength, cfg.MaxLength)
	}
	if err != nil {
		return nil, err
	}
	st := corpus.Stats()
	log.Info().Str("from", from).Int("loaded", st.Loaded).Int("skipped", st.Skipped).
		Dur("took", time.Since(start)).Msg("word corpus loaded")
	return corpus, nil
}
