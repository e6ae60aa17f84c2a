package logging

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Config{Level: "disabled"}) })

	Info().Str("component", "test").Msg("hello")
	Debug().Msg("filtered")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "test", line["component"])
	assert.Contains(t, line, "time")
}

func TestCtx_CarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { Init(Config{Level: "disabled"}) })

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))

	Ctx(ctx).Warn().Msg("scoped")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	assert.Equal(t, "", RequestID(context.Background()))
	assert.NotNil(t, Ctx(context.Background()))
}

func TestInit_RotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stacc.log")
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf, File: path, MaxSizeMB: 1})
	t.Cleanup(func() {
		_ = Close()
		Init(Config{Level: "disabled"})
	})

	Error().Msg("to both")
	require.NoError(t, Close())

	assert.Contains(t, buf.String(), "to both")
	assert.FileExists(t, path)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "warn", parseLevel("WARNING").String())
	assert.Equal(t, "info", parseLevel("nonsense").String())
	assert.Equal(t, "trace", parseLevel("trace").String())
}
