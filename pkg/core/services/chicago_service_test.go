package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/core/incidents"
	"github.com/wadjakorntonsri/stacc/pkg/ports/mocks"
)

var (
	shotsBody    = []byte(`[{"block": "100 N STATE ST,"}, {"block": "100 N STATE ST,"}]`)
	violenceBody = []byte(`[{"incident_iucr_cd": "ZZZZ"}]`)
)

func TestChicagoService_Raw(t *testing.T) {
	source := new(mocks.MockOpenDataSource)
	source.On("Fetch", mock.Anything, incidents.Gunfire).Return(shotsBody, nil)
	source.On("Fetch", mock.Anything, incidents.Violence).Return(violenceBody, nil)

	data, err := NewChicagoService(source, nil, 0).Raw(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, string(shotsBody), string(data.ShotSpotterData))
	assert.JSONEq(t, string(violenceBody), string(data.ViolenceData))
}

func TestChicagoService_Summaries(t *testing.T) {
	source := new(mocks.MockOpenDataSource)
	source.On("Fetch", mock.Anything, incidents.Gunfire).Return(shotsBody, nil)
	source.On("Fetch", mock.Anything, incidents.Violence).Return(violenceBody, nil)

	report, err := NewChicagoService(source, nil, 0).Summaries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []incidents.Entry{{Label: "100 N STATE ST", Count: 2}}, report.ShotSpotter.Ranked(incidents.Block))
	assert.Equal(t, 1, report.Violence.Table(incidents.IncidentType).Count(incidents.UnknownIncidentType))
}

func TestChicagoService_UpstreamFailure(t *testing.T) {
	source := new(mocks.MockOpenDataSource)
	source.On("Fetch", mock.Anything, incidents.Gunfire).Return(shotsBody, nil)
	source.On("Fetch", mock.Anything, incidents.Violence).Return(nil, domain.ErrUpstreamUnavailable)

	_, err := NewChicagoService(source, nil, 0).Raw(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestChicagoService_MalformedEnvelope(t *testing.T) {
	source := new(mocks.MockOpenDataSource)
	source.On("Fetch", mock.Anything, incidents.Gunfire).Return([]byte(`{"error": "throttled"}`), nil)
	source.On("Fetch", mock.Anything, incidents.Violence).Return(violenceBody, nil)

	_, err := NewChicagoService(source, nil, 0).Summaries(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestChicagoService_Cache(t *testing.T) {
	source := new(mocks.MockOpenDataSource)
	cache := new(mocks.MockDatasetCache)
	ttl := 5 * time.Minute

	cache.On("Get", mock.Anything, "stacc:chicago:shotspotter").Return(shotsBody, true, nil)
	cache.On("Get", mock.Anything, "stacc:chicago:violence").Return(nil, false, nil)
	source.On("Fetch", mock.Anything, incidents.Violence).Return(violenceBody, nil)
	cache.On("Set", mock.Anything, "stacc:chicago:violence", violenceBody, ttl).Return(nil)

	data, err := NewChicagoService(source, cache, ttl).Raw(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, string(shotsBody), string(data.ShotSpotterData))

	source.AssertNotCalled(t, "Fetch", mock.Anything, incidents.Gunfire)
	cache.AssertExpectations(t)
}

func TestChicagoService_CacheErrorsBypassed(t *testing.T) {
	source := new(mocks.MockOpenDataSource)
	cache := new(mocks.MockDatasetCache)
	ttl := time.Minute

	cache.On("Get", mock.Anything, mock.Anything).Return(nil, false, errors.New("redis down"))
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, ttl).Return(errors.New("redis down"))
	source.On("Fetch", mock.Anything, incidents.Gunfire).Return(shotsBody, nil)
	source.On("Fetch", mock.Anything, incidents.Violence).Return(violenceBody, nil)

	_, err := NewChicagoService(source, cache, ttl).Summaries(context.Background())
	require.NoError(t, err)
	source.AssertExpectations(t)
}
