// Package server exposes rendering over HTTP.
//
// Routes:
//
//	GET /healthz
//	GET /traits/{seed}
//	GET /render/{seed}.png   ?scale=1..64
//	GET /render/{seed}.svg   ?scale=1..64
//	GET /card/{seed}.png
//	GET /token/{id}.svg
//	GET /token/{id}.png
//	GET /token/{id}.card.png
//	GET /token/{id}.html     viewer page with the SVG inlined
//	PUT /token/{id}          body {"seed":"0x..."}
//	PUT /token               body {"seeds":{"1":"0x...",...}}
//	GET /token/missing       token IDs up to the total with no seed
//	GET /total
//	PUT /total               body {"total":N}, trusted for store.total_ttl
//	DELETE /total
//	GET /gallery             ?n=
//
// Render formats (png, svg) are whatever the recording registry holds.
//
// Seeds are decimal or 0x-prefixed hex. Everything derived from a seed is
// immutable and served with a one-day public cache lifetime.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/internal/cache"
	"github.com/gogpu/lobster/internal/config"
	"github.com/gogpu/lobster/internal/seedstore"
)

const (
	immutableCache = "public, max-age=86400"
	galleryCache   = "public, max-age=60"
)

// Server serves renders for seeds and stored tokens.
type Server struct {
	cfg    *config.Config
	store  *seedstore.Store
	cache  *cache.Cache
	router chi.Router
}

// New builds the router. store may be nil, in which case token routes
// answer 503.
func New(cfg *config.Config, store *seedstore.Store) *Server {
	s := &Server{cfg: cfg, store: store, cache: cache.New(max(cfg.Render.CacheBytes, 0))}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Get("/traits/{seed}", s.handleTraits)
	r.Get("/render/{file}", s.handleRender)
	r.Get("/card/{file}", s.handleCard)
	r.Get("/gallery", s.handleGallery)
	r.Route("/token", func(r chi.Router) {
		r.Put("/", s.handleSeedsPut)
		r.Get("/missing", s.handleMissing)
		r.Get("/{id}", s.handleTokenRender)
		r.Put("/{id}", s.handleTokenPut)
	})
	r.Route("/total", func(r chi.Router) {
		r.Get("/", s.handleTotalGet)
		r.Put("/", s.handleTotalPut)
		r.Delete("/", s.handleTotalDelete)
	})

	s.router = r
	return s
}

// CacheStats reports the render cache counters.
func (s *Server) CacheStats() cache.Stats {
	return s.cache.Stats()
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until ctx is done,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	lobster.Logger().Info("server started", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	st := s.cache.Stats()
	lobster.Logger().Info("server stopping",
		"cached_renders", st.Entries, "cache_bytes", st.Bytes, "cache_hit_rate", st.HitRate())
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// requestLogger logs each request at debug level through the shared logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		lobster.Logger().LogAttrs(r.Context(), slog.LevelDebug, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
