// Command sessiondemo runs a small HTTP server demonstrating cookie-backed
// sessions over a filesystem store: a per-visitor hit counter plus a reset
// endpoint that drops the backing record.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/sessionkit/pkg/config"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

type serverConfig struct {
	Addr string `env:"SESSIONDEMO_ADDR" envDefault:":8080"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var srvCfg serverConfig
	config.MustLoad(&srvCfg)

	var sessCfg session.Config
	config.MustLoad(&sessCfg)

	store, err := session.NewFilesystemStore(sessCfg.Dir,
		session.WithFilenameTemplate(sessCfg.FilenameTemplate),
	)
	if err != nil {
		logger.Error("creating session store", slog.Any("error", err))
		os.Exit(1)
	}

	sessions := session.NewFromConfig(sessCfg, store, session.WithLogger(logger))

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(sessions.Handler)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		sess := session.MustFromContext(req.Context())
		visits, _ := sess.GetInt("visits")
		sess.Set("visits", visits+1)
		fmt.Fprintf(w, "sid=%s visits=%d\n", sess.ID, visits+1)
	})

	r.Get("/reset", func(w http.ResponseWriter, req *http.Request) {
		sess := session.MustFromContext(req.Context())
		if err := store.Delete(sess); err != nil {
			http.Error(w, "reset failed", http.StatusInternalServerError)
			return
		}
		// Clear flips the modified flag, so the middleware re-persists the
		// session under the same identifier with empty data.
		sess.Clear()
		fmt.Fprintln(w, "session cleared")
	})

	logger.Info("listening", slog.String("addr", srvCfg.Addr), slog.String("dir", sessCfg.Dir))
	if err := http.ListenAndServe(srvCfg.Addr, r); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
