package geolocation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
)

func TestIPAPIClient_Lookup(t *testing.T) {
	var gotPath, gotFields string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFields = r.URL.Query().Get("fields")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","city":"Chicago","countryCode":"US","lat":41.88,"lon":-87.63,"hosting":false,"proxy":true,"query":"1.2.3.4","as":"AS7922 Comcast"}`))
	}))
	defer srv.Close()

	data, err := NewIPAPIClient(srv.URL, time.Second).Lookup(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, "/1.2.3.4", gotPath)
	assert.Contains(t, gotFields, "regionName")
	assert.Contains(t, gotFields, "reverse")
	assert.Equal(t, "Chicago", data.City)
	assert.Equal(t, "US", data.CountryCode)
	assert.Equal(t, "AS7922 Comcast", data.AS)
	assert.True(t, data.Proxy)
	assert.InDelta(t, -87.63, data.Lon, 1e-9)
}

func TestIPAPIClient_StatusFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail","message":"private range","query":"10.0.0.1"}`))
	}))
	defer srv.Close()

	_, err := NewIPAPIClient(srv.URL, time.Second).Lookup(context.Background(), "10.0.0.1")
	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.Contains(t, err.Error(), "private range")
}

func TestIPAPIClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTooManyRequests) }, domain.ErrUpstreamUnavailable},
		{"garbage body", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`<html>`)) }, domain.ErrMalformedPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewIPAPIClient(srv.URL, time.Second).Lookup(context.Background(), "1.2.3.4")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIPAPIClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewIPAPIClient(srv.URL, 20*time.Millisecond).Lookup(context.Background(), "1.2.3.4")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestIPAPIClient_CircuitOpens(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewIPAPIClient(srv.URL, time.Second)
	for i := 0; i < 8; i++ {
		_, err := c.Lookup(context.Background(), "1.2.3.4")
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	}
	assert.Equal(t, int32(5), calls.Load())
}
