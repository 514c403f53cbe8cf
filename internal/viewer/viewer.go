// Package viewer shows figures in the system browser. Each figure is served from a
// short-lived localhost HTTP server that stops once the page is dismissed.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/aristath/quantumlab/internal/modules/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// Config holds viewer configuration
type Config struct {
	Addr        string // Listen address; port 0 lets the OS choose
	OpenBrowser bool
	// Opener launches a browser at url. Defaults to OpenBrowser.
	Opener func(url string) error
	Log    zerolog.Logger
}

// Display serves figures to a browser and blocks until the page is dismissed
type Display struct {
	addr        string
	openBrowser bool
	opener      func(url string) error
	log         zerolog.Logger
}

// New creates a new browser display
func New(cfg Config) *Display {
	addr := cfg.Addr
	if addr == "" {
		addr = "localhost:0"
	}
	opener := cfg.Opener
	if opener == nil {
		opener = OpenBrowser
	}

	return &Display{
		addr:        addr,
		openBrowser: cfg.OpenBrowser,
		opener:      opener,
		log:         cfg.Log.With().Str("display", "browser").Logger(),
	}
}

// Show serves fig until its page is closed, its Close button is pressed, or ctx is done.
func (d *Display) Show(ctx context.Context, fig render.Figure) error {
	ln, err := net.Listen("tcp", d.addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	dismissed := make(chan string, 1)
	var once sync.Once
	dismiss := func(reason string) {
		once.Do(func() { dismissed <- reason })
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	NewHandler(fig, dismiss, d.log).RegisterRoutes(router)

	// Requests, including open websockets, end with Show
	serveCtx, cancelServe := context.WithCancel(context.Background())
	defer cancelServe()

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return serveCtx },
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	url := fmt.Sprintf("http://%s/figures/%s", ln.Addr().String(), fig.ID)
	d.log.Info().Str("url", url).Str("title", fig.Title).Msg("Serving figure")
	if d.openBrowser {
		if err := d.opener(url); err != nil {
			d.log.Warn().Err(err).Str("url", url).Msg("Failed to open browser, open the URL manually")
		}
	}

	var result error
	select {
	case reason := <-dismissed:
		d.log.Info().Str("reason", reason).Msg("Figure dismissed")
	case err := <-serveErr:
		result = fmt.Errorf("viewer server stopped: %w", err)
	case <-ctx.Done():
		result = ctx.Err()
	}

	cancelServe()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		d.log.Warn().Err(err).Msg("Viewer shutdown incomplete")
	}

	return result
}
