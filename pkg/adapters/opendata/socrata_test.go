package opendata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/core/incidents"
)

func newStub(t *testing.T) (*httptest.Server, *string) {
	t.Helper()
	var token string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /shots.json", func(w http.ResponseWriter, r *http.Request) {
		token = r.Header.Get("X-App-Token")
		_, _ = w.Write([]byte(`[{"block": "100 N STATE ST,"}]`))
	})
	mux.HandleFunc("GET /victims.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"sex": "M"}, {"sex": "F"}]`))
	})
	mux.HandleFunc("GET /down.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &token
}

func TestSocrataClient_Fetch(t *testing.T) {
	srv, token := newStub(t)
	c := NewSocrataClient(Config{
		ShotSpotterURL: srv.URL + "/shots.json",
		ViolenceURL:    srv.URL + "/victims.json",
		AppToken:       "app-token",
		Timeout:        time.Second,
	})

	body, err := c.Fetch(context.Background(), incidents.Gunfire)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"block": "100 N STATE ST,"}]`, string(body))
	assert.Equal(t, "app-token", *token)

	body, err = c.Fetch(context.Background(), incidents.Violence)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"sex": "M"}, {"sex": "F"}]`, string(body))
}

func TestSocrataClient_NoTokenHeaderWhenUnset(t *testing.T) {
	srv, token := newStub(t)
	c := NewSocrataClient(Config{ShotSpotterURL: srv.URL + "/shots.json", Timeout: time.Second})

	_, err := c.Fetch(context.Background(), incidents.Gunfire)
	require.NoError(t, err)
	assert.Empty(t, *token)
}

func TestSocrataClient_Unavailable(t *testing.T) {
	srv, _ := newStub(t)
	c := NewSocrataClient(Config{ShotSpotterURL: srv.URL + "/down.json", Timeout: time.Second})

	_, err := c.Fetch(context.Background(), incidents.Gunfire)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)

	_, err = c.Fetch(context.Background(), incidents.Dataset("weather"))
	assert.Error(t, err)
}

func TestSocrataClient_BodyTooLarge(t *testing.T) {
	srv, _ := newStub(t)
	c := NewSocrataClient(Config{ViolenceURL: srv.URL + "/victims.json", Timeout: time.Second})

	c.maxBody = 10
	_, err := c.Fetch(context.Background(), incidents.Violence)
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, domain.ErrMalformedPayload)
	assert.Contains(t, err.Error(), "response too large")

	body := `[{"sex": "M"}, {"sex": "F"}]`
	c.maxBody = int64(len(body))
	got, err := c.Fetch(context.Background(), incidents.Violence)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}
