package file

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
	"github.com/olusolaa/metadata-drift-detector/internal/log"
)

func testLogger(t *testing.T) ports.Logger {
	t.Helper()
	logger, err := log.NewLoggerWithWriter(log.DefaultConfig(), io.Discard)
	require.NoError(t, err)
	return logger
}

func load(t *testing.T, cfg Config) (*domain.Snapshot, error) {
	t.Helper()
	l, err := NewLoader(cfg, testLogger(t))
	require.NoError(t, err)
	return l.Load(context.Background())
}

func TestLoader_JSON(t *testing.T) {
	snap, err := load(t, Config{Path: filepath.Join("testdata", "dev.json")})
	require.NoError(t, err)

	assert.Equal(t, "Dev", snap.EnvironmentName)
	assert.Equal(t, "6.14.0.1000", snap.PlatformVersion)
	assert.Equal(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), snap.CollectedAt.UTC())
	require.Len(t, snap.Fields, 1)
	require.NotNil(t, snap.Fields[0].Formula)
	assert.Equal(t, "Impact * Likelihood", *snap.Fields[0].Formula)
	assert.Equal(t, 3, snap.Count(domain.CategoryValuesListValue))
}

func TestLoader_YAML(t *testing.T) {
	snap, err := load(t, Config{Path: filepath.Join("testdata", "prod.yaml")})
	require.NoError(t, err)

	assert.Equal(t, "Prod", snap.EnvironmentName)
	assert.Equal(t, "6.14.0.2000", snap.PlatformVersion)
	require.Len(t, snap.Fields, 1)
	assert.Equal(t, "(Impact * Likelihood) + 1", *snap.Fields[0].Formula)
	require.Len(t, snap.ValuesLists, 1)
	assert.Len(t, snap.ValuesLists[0].Values, 3)
	assert.True(t, snap.ValuesLists[0].Values[1].IsDefault)
}

func TestLoader_Gzip(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "dev.json"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dev.json.gz")
	out, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(out)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())

	snap, err := load(t, Config{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "Dev", snap.EnvironmentName)
	assert.Len(t, snap.Modules, 2)
}

func TestLoader_EnvironmentOverride(t *testing.T) {
	l, err := NewLoader(Config{Path: filepath.Join("testdata", "dev.json"), EnvironmentName: "Development"}, testLogger(t))
	require.NoError(t, err)

	snap, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Development", snap.EnvironmentName)

	cached, err := l.parser.parseAndCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dev", cached.EnvironmentName)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{name: "Missing File", path: filepath.Join("testdata", "does-not-exist.json"), code: errors.CodeSnapshotReadError},
		{name: "Invalid JSON", path: filepath.Join("testdata", "invalid.json"), code: errors.CodeSnapshotParseError},
		{name: "Empty File", path: filepath.Join("testdata", "empty.json"), code: errors.CodeSnapshotParseError},
		{name: "Not Gzip", path: filepath.Join("testdata", "dev.json"), code: errors.CodeSnapshotParseError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path
			if tt.name == "Not Gzip" {
				raw, err := os.ReadFile(tt.path)
				require.NoError(t, err)
				path = filepath.Join(t.TempDir(), "plain.json.gz")
				require.NoError(t, os.WriteFile(path, raw, 0o600))
			}

			l, err := NewLoader(Config{Path: path}, testLogger(t))
			require.NoError(t, err)

			snap, err := l.Load(context.Background())
			assert.Nil(t, snap)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)

			_, again := l.Load(context.Background())
			assert.Same(t, err, again)
		})
	}
}

func TestNewLoader_Validation(t *testing.T) {
	_, err := NewLoader(Config{}, testLogger(t))
	assert.True(t, errors.Is(err, errors.CodeConfigValidation))

	_, err = NewLoader(Config{Path: filepath.Join("testdata", "notes.txt")}, testLogger(t))
	assert.True(t, errors.Is(err, errors.CodeUnsupportedSnapshot))
}

func TestLoader_Cancelled(t *testing.T) {
	l, err := NewLoader(Config{Path: filepath.Join("testdata", "dev.json")}, testLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
