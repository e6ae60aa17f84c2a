package opendata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/wadjakorntonsri/stacc/pkg/adapters/breaker"
	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/core/incidents"
	"github.com/wadjakorntonsri/stacc/pkg/metrics"
)

const (
	DefaultShotSpotterURL = "https://data.cityofchicago.org/resource/3h7q-7mdb.json"
	DefaultViolenceURL    = "https://data.cityofchicago.org/resource/gumc-mgzr.json"

	// Socrata bodies for the default page size are well under this.
	maxBodyBytes = 32 << 20
)

type Config struct {
	ShotSpotterURL string
	ViolenceURL    string
	AppToken       string
	Timeout        time.Duration
}

// SocrataClient fetches raw datasets from the City of Chicago data portal.
type SocrataClient struct {
	endpoints map[incidents.Dataset]string
	appToken  string
	maxBody   int64
	client    *http.Client
	cb        *gobreaker.CircuitBreaker[[]byte]
}

func NewSocrataClient(cfg Config) *SocrataClient {
	if cfg.ShotSpotterURL == "" {
		cfg.ShotSpotterURL = DefaultShotSpotterURL
	}
	if cfg.ViolenceURL == "" {
		cfg.ViolenceURL = DefaultViolenceURL
	}
	return &SocrataClient{
		endpoints: map[incidents.Dataset]string{
			incidents.Gunfire:  cfg.ShotSpotterURL,
			incidents.Violence: cfg.ViolenceURL,
		},
		appToken: cfg.AppToken,
		maxBody:  maxBodyBytes,
		client:   &http.Client{Timeout: cfg.Timeout},
		cb:       breaker.New[[]byte]("socrata", breaker.Settings{ConsecutiveFailures: 3, OpenTimeout: time.Minute}),
	}
}

// Fetch returns the response body unparsed. Envelope validation happens in the caller.
func (c *SocrataClient) Fetch(ctx context.Context, dataset incidents.Dataset) ([]byte, error) {
	endpoint, ok := c.endpoints[dataset]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", dataset)
	}

	start := time.Now()
	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.get(ctx, endpoint)
	})
	metrics.ObserveUpstream("socrata_"+string(dataset), start, err)
	if breaker.IsOpen(err) {
		return nil, fmt.Errorf("%w: socrata %s: %v", domain.ErrUpstreamUnavailable, dataset, err)
	}
	return body, err
}

func (c *SocrataClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.appToken != "" {
		req.Header.Set("X-App-Token", c.appToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrUpstreamUnavailable, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%w: %s response too large (over %d bytes)", domain.ErrUpstreamUnavailable, endpoint, c.maxBody)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", domain.ErrUpstreamUnavailable, endpoint, resp.StatusCode)
	}
	return body, nil
}
