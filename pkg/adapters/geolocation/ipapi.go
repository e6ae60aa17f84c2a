package geolocation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/wadjakorntonsri/stacc/pkg/adapters/breaker"
	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/metrics"
)

const DefaultBaseURL = "http://ip-api.com/json/"

// fields requested from ip-api, in the order the API documents them.
var fields = strings.Join([]string{
	"as", "city", "continent", "country", "countryCode", "currency", "hosting", "isp",
	"lat", "lon", "message", "mobile", "org", "proxy", "query", "region", "regionName",
	"reverse", "status", "timezone", "zip",
}, ",")

// ErrLookupFailed is returned when ip-api answers with status "fail" (private or
// reserved ranges, invalid queries).
var ErrLookupFailed = errors.New("geolocation lookup failed")

// IPAPIClient queries ip-api.com.
type IPAPIClient struct {
	baseURL string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker[*domain.IPData]
}

func NewIPAPIClient(baseURL string, timeout time.Duration) *IPAPIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &IPAPIClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		cb:      breaker.New[*domain.IPData]("ip-api", breaker.Settings{}),
	}
}

func (c *IPAPIClient) Lookup(ctx context.Context, ipAddress string) (*domain.IPData, error) {
	start := time.Now()
	data, err := c.cb.Execute(func() (*domain.IPData, error) {
		return c.lookup(ctx, ipAddress)
	})
	metrics.ObserveUpstream("ip-api", start, err)

	switch {
	case breaker.IsOpen(err):
		metrics.GeolocationLookups.WithLabelValues("circuit_open").Inc()
		return nil, fmt.Errorf("%w: ip-api: %v", domain.ErrUpstreamUnavailable, err)
	case err != nil:
		metrics.GeolocationLookups.WithLabelValues("error").Inc()
		return nil, err
	case data.Status != "success":
		metrics.GeolocationLookups.WithLabelValues("fail").Inc()
		return nil, fmt.Errorf("%w for %s: %s", ErrLookupFailed, ipAddress, data.Message)
	}
	metrics.GeolocationLookups.WithLabelValues("success").Inc()
	return data, nil
}

func (c *IPAPIClient) lookup(ctx context.Context, ipAddress string) (*domain.IPData, error) {
	endpoint := c.baseURL + url.PathEscape(ipAddress) + "?fields=" + fields

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: ip-api: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: ip-api returned %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var data domain.IPData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: ip-api: %v", domain.ErrMalformedPayload, err)
	}
	return &data, nil
}
