package handler

import (
	"context"
	"net/http"

	"github.com/wadjakorntonsri/stacc/pkg/app"
	"github.com/wadjakorntonsri/stacc/pkg/config"
	"github.com/wadjakorntonsri/stacc/pkg/logging"
)

var mux http.Handler

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Note: On Vercel, a file: DATABASE_URL is ephemeral; use a Turso or Postgres URL.
	a, err := app.New(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	mux = a.Handler
}

// Handler is the entrypoint for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	mux.ServeHTTP(w, r)
}
