package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/core/incidents"
	"github.com/wadjakorntonsri/stacc/pkg/logging"
	"github.com/wadjakorntonsri/stacc/pkg/metrics"
	"github.com/wadjakorntonsri/stacc/pkg/ports"
)

const cacheKeyPrefix = "stacc:chicago:"

type ChicagoService struct {
	source ports.OpenDataSource
	cache  ports.DatasetCache
	ttl    time.Duration
}

// NewChicagoService builds the open-data service. cache may be nil; a zero ttl also
// disables caching.
func NewChicagoService(source ports.OpenDataSource, cache ports.DatasetCache, ttl time.Duration) *ChicagoService {
	if ttl <= 0 {
		cache = nil
	}
	return &ChicagoService{source: source, cache: cache, ttl: ttl}
}

type dataset struct {
	body    []byte
	records []json.RawMessage
}

// Raw returns both upstream arrays untouched. Either source failing fails the call.
func (s *ChicagoService) Raw(ctx context.Context) (*domain.ChicagoData, error) {
	shots, violence, err := s.fetchBoth(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ChicagoData{
		ShotSpotterData: shots.body,
		ViolenceData:    violence.body,
	}, nil
}

// Summaries aggregates both datasets. Results are computed per call and never cached.
func (s *ChicagoService) Summaries(ctx context.Context) (*incidents.Report, error) {
	shots, violence, err := s.fetchBoth(ctx)
	if err != nil {
		return nil, err
	}
	return &incidents.Report{
		ShotSpotter: incidents.AggregateGunfire(shots.records),
		Violence:    incidents.AggregateViolence(violence.records),
	}, nil
}

func (s *ChicagoService) fetchBoth(ctx context.Context) (shots, violence dataset, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shots, err = s.fetch(gctx, incidents.Gunfire)
		return err
	})
	g.Go(func() error {
		var err error
		violence, err = s.fetch(gctx, incidents.Violence)
		return err
	})
	err = g.Wait()
	return shots, violence, err
}

func (s *ChicagoService) fetch(ctx context.Context, ds incidents.Dataset) (dataset, error) {
	log := logging.Ctx(ctx)
	key := cacheKeyPrefix + string(ds)

	if s.cache != nil {
		body, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("dataset", string(ds)).Msg("dataset cache read failed")
			metrics.DatasetCacheResults.WithLabelValues(string(ds), "error").Inc()
		case ok:
			if records, err := incidents.SplitArray(body); err == nil {
				metrics.DatasetCacheResults.WithLabelValues(string(ds), "hit").Inc()
				return dataset{body: body, records: records}, nil
			}
			log.Warn().Str("dataset", string(ds)).Msg("discarding unparseable cached dataset")
		default:
			metrics.DatasetCacheResults.WithLabelValues(string(ds), "miss").Inc()
		}
	}

	body, err := s.source.Fetch(ctx, ds)
	if err != nil {
		return dataset{}, fmt.Errorf("fetch %s: %w", ds, err)
	}
	records, err := incidents.SplitArray(body)
	if err != nil {
		return dataset{}, fmt.Errorf("fetch %s: %w", ds, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, body, s.ttl); err != nil {
			log.Warn().Err(err).Str("dataset", string(ds)).Msg("dataset cache write failed")
		}
	}
	return dataset{body: body, records: records}, nil
}
