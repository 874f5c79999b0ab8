package web

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/erazemk/motortrade/internal/config"
	webembed "github.com/erazemk/motortrade/web"
)

// NewRouter creates the web page router with all page routes registered.
// cfg.SessionSecret must already be resolved.
func NewRouter(db *sql.DB, cfg config.Config) (http.Handler, error) {
	if cfg.SessionSecret == "" {
		return nil, errors.New("session secret is empty")
	}

	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:            db,
		Templates:     templates,
		Secret:        cfg.SessionSecret,
		MaxImageBytes: cfg.MaxImageBytes,
		Now:           time.Now,
	}

	limit := RateLimitMiddleware(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst)

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.Index)
	mux.HandleFunc("GET /motor/{id}", s.MotorDetailPage)
	mux.HandleFunc("GET /motor/{id}/image", s.MotorImageGet)

	mux.HandleFunc("GET /add", s.AddPage)
	mux.Handle("POST /add", limit(http.HandlerFunc(s.AddSubmit)))

	mux.HandleFunc("GET /buy/{id}", s.BuyPage)
	mux.Handle("POST /buy/{id}", limit(http.HandlerFunc(s.BuySubmit)))

	mux.HandleFunc("GET /purchases", s.PurchasesPage)

	return mux, nil
}
