package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadjakorntonsri/stacc/pkg/app"
	"github.com/wadjakorntonsri/stacc/pkg/config"
	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
)

const (
	shotSpotterBody = `[
		{"block":"001XX N STATE ST,","community_area":"LOOP","zip_code":"60602","incident_type_description":"SINGLE GUNSHOT","rounds":"1","date":"2024-01-15T12:00:00.000","location":{"type":"Point","coordinates":[-87.62,41.88]}},
		{"block":"001XX N STATE ST","community_area":"LOOP","incident_type_description":"MULTIPLE GUNSHOTS","rounds":"3","date":"2024-07-04T23:30:00.000"}
	]`
	violenceBody = `[
		{"community_area":"AUSTIN","incident_iucr_cd":"0110","gunshot_injury_i":"YES","date":"2024-03-01T08:00:00.000"},
		{"community_area":"AUSTIN","incident_iucr_cd":"9999","date":"2024-03-02T08:00:00.000"}
	]`
)

type upstreams struct {
	geoHits     atomic.Int32
	socrataHits atomic.Int32
	geo         *httptest.Server
	socrata     *httptest.Server
}

func newUpstreams(t *testing.T) *upstreams {
	u := &upstreams{}
	u.geo = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.geoHits.Add(1)
		ip := strings.TrimPrefix(r.URL.Path, "/json/")
		_, _ = io.WriteString(w, `{"status":"success","city":"Chicago","country":"United States","query":"`+ip+`","lat":41.88,"lon":-87.62}`)
	}))
	u.socrata = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.socrataHits.Add(1)
		switch r.URL.Path {
		case "/shotspotter.json":
			_, _ = io.WriteString(w, shotSpotterBody)
		case "/violence.json":
			_, _ = io.WriteString(w, violenceBody)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(u.geo.Close)
	t.Cleanup(u.socrata.Close)
	return u
}

func TestIntegration(t *testing.T) {
	up := newUpstreams(t)
	mr := miniredis.RunT(t)

	cfg := &config.Config{
		Port:             "0",
		DatabaseURL:      "file:memdb1?mode=memory&cache=shared",
		AppEnv:           "test",
		AllowedOrigins:   []string{"http://localhost:8080"},
		PostsTable:       "posts",
		VisitorsTable:    "visitors",
		BackgroundsTable: "backgrounds",
		StoriesTable:     "stories",
		ShotSpotterURL:   up.socrata.URL + "/shotspotter.json",
		ViolenceURL:      up.socrata.URL + "/violence.json",
		GeolocationURL:   up.geo.URL + "/json/",
		UpstreamTimeout:  5 * time.Second,
		VisitTimeout:     5 * time.Second,
		RateLimitWindow:  time.Minute,
		RedisURL:         "redis://" + mr.Addr(),
		ChicagoCacheTTL:  time.Minute,
		AdminJWTSecret:   "e2e-secret",
		LogLevel:         "error",
		LogFormat:        "json",
	}
	require.NoError(t, cfg.Validate())

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	require.NoError(t, a.Store.UpsertPost(ctx, &domain.Post{PostID: "hello", Title: "Hello", Created: "2024-01-01"}))

	server := httptest.NewServer(a.Handler)
	defer server.Close()
	client := server.Client()

	get := func(path string) (int, []byte) {
		t.Helper()
		resp, err := client.Get(server.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, body
	}
	settle := func() {
		t.Helper()
		waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		require.NoError(t, a.Tracker.Wait(waitCtx))
	}

	// Two simultaneous first visits from one address.
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := client.Get(server.URL + "/story")
			if assert.NoError(t, err) {
				resp.Body.Close()
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			}
		}()
	}
	wg.Wait()
	settle()

	visitor, err := a.Store.GetVisitor(ctx, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), visitor.RefreshCount)
	assert.Equal(t, int32(1), up.geoHits.Load())
	require.NotNil(t, visitor.IPData)
	assert.Equal(t, "Chicago", visitor.IPData.City)

	// Fetching a post counts the view once.
	status, body := get("/blog/post/hello")
	require.Equal(t, http.StatusOK, status)
	var post domain.Post
	require.NoError(t, json.Unmarshal(body, &post))
	assert.Equal(t, int64(1), post.ViewCount)

	// Unknown post.
	status, body = get("/blog/post/missing-id")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"post \"missing-id\" not found","status_code":404}`, string(body))

	// A view beacon for an unknown post must not reach the visitor mapping.
	resp, err := client.Post(server.URL+"/blog/post/no-such-post/view", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	settle()

	posts, err := a.Store.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(1), posts[0].ViewCount)

	visitor, err = a.Store.GetVisitor(ctx, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), visitor.RefreshCount)
	assert.Equal(t, map[string]int64{"hello": 1}, visitor.VisitedPosts)
	assert.Equal(t, int32(1), up.geoHits.Load())

	// Media falls back when nothing is seeded.
	status, body = get("/background")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"link":"`+domain.FallbackBackgroundLink+`"}`, string(body))

	// Open data, served from the cache on the second call.
	status, body = get("/chiraq")
	require.Equal(t, http.StatusOK, status)
	var raw domain.ChicagoData
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.JSONEq(t, shotSpotterBody, string(raw.ShotSpotterData))
	assert.Equal(t, int32(2), up.socrataHits.Load())

	status, body = get("/chiraq/summary")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int32(2), up.socrataHits.Load())

	var report struct {
		ShotSpotter struct {
			Records int `json:"records"`
			Tables  map[string][]struct {
				Label string `json:"label"`
				Count int    `json:"count"`
			} `json:"tables"`
		} `json:"shotspotter"`
		Violence struct {
			Tables map[string][]struct {
				Label string `json:"label"`
				Count int    `json:"count"`
			} `json:"tables"`
		} `json:"violence"`
	}
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, 2, report.ShotSpotter.Records)
	require.Len(t, report.ShotSpotter.Tables["block"], 1)
	assert.Equal(t, "001XX N STATE ST", report.ShotSpotter.Tables["block"][0].Label)
	assert.Equal(t, 2, report.ShotSpotter.Tables["block"][0].Count)

	incidentTypes := map[string]int{}
	for _, e := range report.Violence.Tables["incident_type"] {
		incidentTypes[e.Label] = e.Count
	}
	assert.Equal(t, map[string]int{"HOMICIDE FIRST DEGREE MURDER": 1, "UNKNOWN": 1}, incidentTypes)

	// Admin visitor log.
	status, _ = get("/admin/visitors")
	assert.Equal(t, http.StatusUnauthorized, status)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:   "e2e",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte(cfg.AdminJWTSecret))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/admin/visitors", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page domain.VisitorPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Visitors, 1)
	assert.Equal(t, "127.0.0.1", page.Visitors[0].IPAddress)

	status, _ = get("/no/such/route")
	assert.Equal(t, http.StatusNotFound, status)
}
