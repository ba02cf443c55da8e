package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"html"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgen/pkg/cache"
	"github.com/matzehuels/cardgen/pkg/config"
	"github.com/matzehuels/cardgen/pkg/document"
	"github.com/matzehuels/cardgen/pkg/errors"
	"github.com/matzehuels/cardgen/pkg/io"
	"github.com/matzehuels/cardgen/pkg/observability"
	"github.com/matzehuels/cardgen/pkg/observability/metrics"
	"github.com/matzehuels/cardgen/pkg/pipeline"
	"github.com/matzehuels/cardgen/pkg/random"
)

const shutdownTimeout = 5 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		cacheSize  int
		redisURL   string
		withStats  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve freshly generated cards over HTTP",
		Long: `Serve cards for preview. Every request draws a new card; nothing is written
to disk.

Routes:
  /                              list of presets
  /cards/{preset}?seed=&count=   card as HTML
  /cards/{preset}/shapes.json    shape records of the same card

Requests with an explicit seed are cached (in memory, or in Redis with --redis).
With --metrics, Prometheus metrics are exposed on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			catalog, err := c.loadCatalog(configPath)
			if err != nil {
				return err
			}

			cardCache, err := newCardCache(ctx, cacheSize, redisURL)
			if err != nil {
				return err
			}
			defer cardCache.Close()

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "listen on %s", addr)
			}
			printInfo(c.Out, "Serving cards on %s", styleValue.Render("http://"+ln.Addr().String()))

			router := newRouter(c.newRunner(), catalog, cardCache, logger)
			if withStats {
				mountMetrics(router)
				defer observability.Reset()
			}

			srv := &http.Server{
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
				ErrorLog:          logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}),
			}
			return serve(ctx, srv, ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with extra presets")
	cmd.Flags().IntVar(&cacheSize, "cache-size", cache.DefaultMemoryEntries, "seeded cards kept in memory (0 disables caching)")
	cmd.Flags().StringVar(&redisURL, "redis", "", "cache seeded cards in Redis instead (e.g. redis://localhost:6379/0)")
	cmd.Flags().BoolVar(&withStats, "metrics", false, "expose Prometheus metrics on /metrics")
	return cmd
}

// newCardCache picks the card cache for the preview server.
func newCardCache(ctx context.Context, size int, redisURL string) (cache.Cache, error) {
	switch {
	case redisURL != "":
		return cache.NewRedisCache(ctx, redisURL)
	case size > 0:
		return cache.NewMemoryCache(size), nil
	}
	return cache.NewNullCache(), nil
}

// mountMetrics registers Prometheus hooks globally and serves their
// registry on /metrics.
func mountMetrics(r chi.Router) {
	reg := prometheus.NewRegistry()
	hooks := metrics.New(reg)
	observability.SetCardHooks(hooks)
	observability.SetServerHooks(hooks)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}

// serve runs srv on ln until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// =============================================================================
// Routes
// =============================================================================

// cacheTTL bounds how long a seeded rendering is kept.
const cacheTTL = time.Hour

type cardServer struct {
	runner  *pipeline.Runner
	catalog *config.Catalog
	cache   cache.Cache
	logger  *log.Logger
}

func newRouter(runner *pipeline.Runner, catalog *config.Catalog, c cache.Cache, logger *log.Logger) chi.Router {
	if c == nil {
		c = cache.NewNullCache()
	}
	s := &cardServer{runner: runner, catalog: catalog, cache: c, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/", s.handleIndex)
	r.Get("/cards/{preset}", s.handleCard)
	r.Get("/cards/{preset}/shapes.json", s.handleShapes)
	return r
}

// observe reports every request to the server hooks and the debug log.
// Hooks get the matched route pattern, not the raw path.
func (s *cardServer) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)
		observability.Server().OnRequest(r.Context(), r.Method, route, status, elapsed)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status, "duration", elapsed)
	})
}

func (s *cardServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	var body bytes.Buffer
	body.WriteString("<h1>cardgen</h1>\n<ul>\n")
	for _, name := range s.catalog.Names() {
		link := "/cards/" + name
		fmt.Fprintf(&body, "   <li><a href=\"%s\">%s</a> (<a href=\"%s/shapes.json\">shapes</a>)</li>\n",
			html.EscapeString(link), html.EscapeString(name), html.EscapeString(link))
	}
	body.WriteString("</ul>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(document.Wrap("cardgen", body.String())))
}

func (s *cardServer) handleCard(w http.ResponseWriter, r *http.Request) {
	s.serveCard(w, r, "html", "text/html; charset=utf-8", func(card *pipeline.Card) ([]byte, error) {
		return []byte(card.HTML), nil
	})
}

func (s *cardServer) handleShapes(w http.ResponseWriter, r *http.Request) {
	s.serveCard(w, r, "json", "application/json", func(card *pipeline.Card) ([]byte, error) {
		var buf bytes.Buffer
		if err := io.WriteRecordsJSON(card.Records, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}, pipeline.WithRecords())
}

// cardRequest is a resolved /cards/{preset} request.
type cardRequest struct {
	cfg    config.CanvasConfig
	src    *random.Source
	seeded bool
}

// serveCard resolves r, then writes the requested rendering of its card.
// Seeded renderings go through the cache; unseeded ones are always fresh.
func (s *cardServer) serveCard(w http.ResponseWriter, r *http.Request, format, contentType string,
	encode func(*pipeline.Card) ([]byte, error), opts ...pipeline.Option,
) {
	req, err := s.resolve(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	seed := req.src.Seed()
	key := cache.CardKey(req.cfg.Name, seed, req.cfg.ShapeCount, format)
	w.Header().Set("X-Card-ID", pipeline.CardID(req.cfg.Name, seed))
	w.Header().Set("X-Card-Seed", strconv.FormatUint(seed, 10))
	w.Header().Set("Content-Type", contentType)

	if req.seeded {
		data, hit, err := s.cache.Get(r.Context(), key)
		if err != nil {
			s.logger.Warn("cache get", "err", err)
		}
		if hit {
			w.Header().Set("X-Cache", "HIT")
			writeTagged(w, r, data)
			return
		}
		w.Header().Set("X-Cache", "MISS")
	}

	card, err := s.runner.Generate(r.Context(), req.cfg, req.src, opts...)
	if err != nil {
		s.fail(w, err)
		return
	}
	data, err := encode(card)
	if err != nil {
		s.fail(w, err)
		return
	}
	if req.seeded {
		if err := s.cache.Set(r.Context(), key, data, cacheTTL); err != nil {
			s.logger.Warn("cache set", "err", err)
		}
	}
	writeTagged(w, r, data)
}

// writeTagged writes data with a content-hash ETag, answering a matching
// If-None-Match with 304 Not Modified.
func writeTagged(w http.ResponseWriter, r *http.Request, data []byte) {
	etag := `"` + cache.Hash(data) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	_, _ = w.Write(data)
}

// resolve reads the preset from the path and the optional seed and count
// query parameters, which override the fresh seed and the preset count.
func (s *cardServer) resolve(r *http.Request) (cardRequest, error) {
	q := r.URL.Query()
	req := cardRequest{src: random.NewUnseeded()}

	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return req, errors.New(errors.ErrCodeInvalidInput, "invalid seed %q", v)
		}
		req.src, req.seeded = random.New(seed), true
	}

	cfg, err := s.catalog.Lookup(chi.URLParam(r, "preset"), req.src)
	if err != nil {
		return req, err
	}

	if v := q.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, errors.New(errors.ErrCodeInvalidInput, "invalid count %q", v)
		}
		cfg = cfg.WithShapeCount(n)
	}
	if err := cfg.Validate(); err != nil {
		return req, err
	}
	req.cfg = cfg
	return req, nil
}

func (s *cardServer) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("generate card", "err", err)
	}
	// Drop card headers set before the failure.
	for _, h := range []string{"X-Card-ID", "X-Card-Seed", "X-Cache"} {
		w.Header().Del(h)
	}
	http.Error(w, errors.UserMessage(err), status)
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidPreset:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidRange, errors.ErrCodeInvalidShapeParameters:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
