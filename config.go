// config.go
//
// Environment configuration for the solver server.
// Values come from the process environment after godotenv.Load() has merged
// an optional .env file. Invalid numbers or durations log a warning and fall
// back to the default.

package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gae-22/wordle/internal/solver"
	"github.com/gae-22/wordle/internal/words"
)

// Config holds every tunable read at startup.
type Config struct {
	Port      string
	LogLevel  string
	LogPretty bool

	Backend string // "sqlite" or "memory"
	DBPath  string

	WordsFile    string
	WordsURL     string
	FetchTimeout time.Duration

	RequestTimeout time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	ClientOrigin   string

	LargeThreshold int
	Preload        bool
}

func loadConfig() Config {
	c := Config{
		Port:      getEnv("PORT", "3000"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnv("LOG_PRETTY", "") != "",

		Backend: strings.ToLower(getEnv("CORPUS_BACKEND", "sqlite")),
		DBPath:  getEnv("DB_PATH", "data/words.db"),

		WordsFile:    getEnv("WORDS_FILE", ""),
		WordsURL:     getEnv("WORDS_URL", ""),
		FetchTimeout: getEnvDuration("WORDS_FETCH_TIMEOUT", words.DefaultFetchTimeout),

		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "*"),

		LargeThreshold: getEnvInt("SOLVER_LARGE_THRESHOLD", solver.LargeThreshold),
		Preload:        getEnvBool("PRELOAD", true),
	}
	if c.Backend != "sqlite" && c.Backend != "memory" {
		log.Warn().Str("backend", c.Backend).Msg("unknown CORPUS_BACKEND, using sqlite")
		c.Backend = "sqlite"
	}
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Err(err).Int("default", def).Msg("invalid int, using default")
		return def
	}
	return i
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", k).Err(err).Dur("default", def).Msg("invalid duration, using default")
		return def
	}
	return d
}

func getEnvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", k).Err(err).Bool("default", def).Msg("invalid bool, using default")
		return def
	}
	return b
}
