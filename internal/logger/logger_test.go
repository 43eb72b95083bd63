package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/gym-management/internal/config"
)

func TestSourceOnlyForWarnAndError(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(newSourceHandler(slog.NewTextHandler(&buf, nil), slog.LevelWarn, slog.LevelError))

	l.Info("plain")
	assert.NotContains(t, buf.String(), "source=")

	buf.Reset()
	l.Warn("traced")
	assert.Contains(t, buf.String(), "source=")
}

func TestSourceHandlerKeepsAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(newSourceHandler(slog.NewTextHandler(&buf, nil), slog.LevelError)).With("component", "report")

	l.Info("ran")
	assert.Contains(t, buf.String(), "component=report")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Init(config.LoggerConfig{Level: "debug", Format: "json", OutputPath: path}))

	WithComponent("test").Debug("hello", "n", 1)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
