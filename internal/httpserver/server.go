// internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (request IDs, access log, panic recovery, timeouts,
//     compression, JSON content type, CORS).
//   - Public endpoints: "/", "/health".
//   - Solver endpoint: POST /solve (rate limited per client).
//   - Corpus endpoints: GET /words/count, GET /words/load.
//
// Notes:
//   - Requests are validated here; the solver assumes well-formed input.
//   - The corpus loads lazily; the corpus endpoints force it.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/gae-22/wordle/internal/solver"
	"github.com/gae-22/wordle/internal/store"
)

// Options tunes the HTTP layer. Zero values fall back to defaults.
type Options struct {
	RequestTimeout time.Duration // default 30s
	RateLimitRPS   int           // default 5
	RateLimitBurst int           // default 10
	ClientOrigin   string        // default "*"
}

func (o Options) withDefaults() Options {
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 30 * time.Second
	}
	if o.RateLimitRPS <= 0 {
		o.RateLimitRPS = 5
	}
	if o.RateLimitBurst <= 0 {
		o.RateLimitBurst = 10
	}
	if o.ClientOrigin == "" {
		o.ClientOrigin = "*"
	}
	return o
}

// Server bundles the router, the corpus store and the solver.
type Server struct {
	r      *chi.Mux
	store  store.Store
	solver *solver.Solver
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, sv *solver.Solver, opts Options) *Server {
	opts = opts.withDefaults()
	s := &Server{r: chi.NewRouter(), store: st, solver: sv}

	// --- middleware ---
	s.r.Use(chimw.RequestID)             // add X-Request-ID
	s.r.Use(chimw.RealIP)                // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger)) // per-request logger in context
	s.r.Use(requestIDField)              // tag that logger with the request ID
	s.r.Use(accessLog())                 // one line per request
	s.r.Use(chimw.Recoverer)             // recover from panics
	s.r.Use(chimw.Timeout(opts.RequestTimeout))
	s.r.Use(chimw.Compress(5, "application/json"))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /solve","/words/count","/words/load"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "corpus": s.store.Info()})
	})

	// --- solver ---
	lim := newClientLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
	s.r.With(lim.middleware, chimw.NoCache).Post("/solve", s.handleSolve)

	// --- corpus ---
	s.r.Route("/words", func(r chi.Router) {
		r.Get("/count", s.handleCount)
		r.Get("/load", s.handleLoad)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled, then drains in-flight
// requests for up to 10 seconds.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received, draining connections")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ----------------------------- corpus --------------------------------------

type countRes struct {
	Count int `json:"count"`
}

type loadRes struct {
	Loaded bool `json:"loaded"`
	Count  int  `json:"count"`
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	n, err := s.solver.Count(r.Context())
	if err != nil {
		corpusError(w, r, err)
		return
	}
	_ = json.NewEncoder(w).Encode(countRes{Count: n})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	n, err := s.solver.Count(r.Context())
	if err != nil {
		corpusError(w, r, err)
		return
	}
	_ = json.NewEncoder(w).Encode(loadRes{Loaded: true, Count: n})
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows a single configured origin ("*" for any).
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestIDField adds chi's request ID to the request-scoped logger.
func requestIDField(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog logs method, path, status, size and latency for each request.
func accessLog() func(http.Handler) http.Handler {
	return hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("took", d).
			Msg("request")
	})
}

// ------------------------------- helpers -----------------------------------

type errorRes struct {
	Error string `json:"error"`
}

// writeError writes {"error": msg} with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorRes{Error: msg})
}

// corpusError reports a store failure without leaking its details.
func corpusError(w http.ResponseWriter, r *http.Request, err error) {
	hlog.FromRequest(r).Error().Err(err).Msg("corpus unavailable")
	writeError(w, http.StatusInternalServerError, "corpus_unavailable")
}
