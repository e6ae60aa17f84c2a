// Package app wires the adapters and services behind one HTTP handler. The server,
// the serverless entrypoint and the end-to-end tests all build through it.
package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/wadjakorntonsri/stacc/pkg/adapters/cache"
	"github.com/wadjakorntonsri/stacc/pkg/adapters/geolocation"
	"github.com/wadjakorntonsri/stacc/pkg/adapters/handler"
	"github.com/wadjakorntonsri/stacc/pkg/adapters/opendata"
	"github.com/wadjakorntonsri/stacc/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/stacc/pkg/config"
	"github.com/wadjakorntonsri/stacc/pkg/core/services"
	"github.com/wadjakorntonsri/stacc/pkg/logging"
	"github.com/wadjakorntonsri/stacc/pkg/ports"
)

type App struct {
	Handler http.Handler
	Store   ports.Store
	Tracker *services.Tracker

	cache *cache.RedisCache
}

// New opens the store (and the Redis cache when configured) and builds the router.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL, sqlite.Tables{
		Posts:       cfg.PostsTable,
		Visitors:    cfg.VisitorsTable,
		Backgrounds: cfg.BackgroundsTable,
		Stories:     cfg.StoriesTable,
	})
	if err != nil {
		return nil, err
	}

	a := &App{Store: store, Tracker: services.NewTracker(cfg.VisitTimeout)}

	// A nil *RedisCache must not leak into the interface.
	var datasets ports.DatasetCache
	if cfg.RedisURL != "" {
		rc, err := cache.Open(ctx, cfg.RedisURL)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		a.cache = rc
		datasets = rc
	} else {
		logging.Info().Msg("REDIS_URL not set, open-data responses are not cached")
	}

	geo := geolocation.NewIPAPIClient(cfg.GeolocationURL, cfg.UpstreamTimeout)
	source := opendata.NewSocrataClient(opendata.Config{
		ShotSpotterURL: cfg.ShotSpotterURL,
		ViolenceURL:    cfg.ViolenceURL,
		AppToken:       cfg.SocrataAppToken,
		Timeout:        cfg.UpstreamTimeout,
	})

	a.Handler = handler.NewRouter(cfg, handler.Services{
		Posts:    services.NewPostService(store),
		Visitors: services.NewVisitorService(store, store, geo),
		Media:    services.NewMediaService(store),
		Chicago:  services.NewChicagoService(source, datasets, cfg.ChicagoCacheTTL),
		Tracker:  a.Tracker,
		Store:    store,
	})
	return a, nil
}

// Close waits for in-flight visit recording, then releases the store and cache.
func (a *App) Close(ctx context.Context) error {
	err := a.Tracker.Wait(ctx)
	if a.cache != nil {
		err = errors.Join(err, a.cache.Close())
	}
	return errors.Join(err, a.Store.Close())
}
