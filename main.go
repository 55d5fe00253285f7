package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gae-22/wordle/internal/database"
	"github.com/gae-22/wordle/internal/httpserver"
	"github.com/gae-22/wordle/internal/solver"
	"github.com/gae-22/wordle/internal/store"
	"github.com/gae-22/wordle/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	zerolog.DefaultContextLogger = &log.Logger

	src := words.Pick(cfg.WordsFile, cfg.WordsURL, cfg.FetchTimeout)

	var (
		st store.Store
		db *sql.DB
	)
	switch cfg.Backend {
	case "memory":
		st = store.NewMemory(src)
	default:
		var err error
		db, err = database.Open(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
		}
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
		st = store.NewSQLite(db, src)
	}
	if db != nil {
		defer db.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sv := solver.New(st, cfg.LargeThreshold)
	if cfg.Preload {
		go func() {
			if err := st.EnsureLoaded(ctx); err != nil {
				log.Warn().Err(err).Msg("corpus preload failed, will retry on first request")
			}
		}()
	}

	srv := httpserver.New(st, sv, httpserver.Options{
		RequestTimeout: cfg.RequestTimeout,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		ClientOrigin:   cfg.ClientOrigin,
	})
	log.Info().
		Str("port", cfg.Port).
		Str("backend", cfg.Backend).
		Str("source", src.Name()).
		Msg("starting wordle solver")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
