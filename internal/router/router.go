package router

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/itchan-dev/minichan/internal/middleware"
	"github.com/itchan-dev/minichan/internal/middleware/metrics"
	"github.com/itchan-dev/minichan/internal/setup"
)

// New creates and configures the mux router with all routes.
// Fixed paths are registered before the /{board}/ patterns so slugs can
// never shadow them.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	// Same-origin server-rendered pages: everything comes from us
	csp := "default-src 'self'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeaders(csp))

	r.Use(metrics.Middleware)

	r.Use(func(next http.Handler) http.Handler {
		return handlers.LoggingHandler(os.Stdout, next)
	})

	r.Use(func(next http.Handler) http.Handler {
		return handlers.RecoveryHandler()(next)
	})

	h := deps.Handler
	cfg := deps.Config.Public

	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/healthz", h.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/admin/create_board", h.CreateBoardForm).Methods("GET")
	r.HandleFunc("/admin/create_board", h.CreateBoard).Methods("POST")
	r.HandleFunc("/admin/delete_board", h.DeleteBoard).Methods("POST")

	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	r.HandleFunc("/{board:[a-z0-9]+}/", h.Board).Methods("GET")
	r.HandleFunc("/{board:[a-z0-9]+}/thread/{thread:[0-9]+}", h.Thread).Methods("GET")
	r.HandleFunc("/{board:[a-z0-9]+}/post", h.CreatePost).Methods("POST")

	return r
}
