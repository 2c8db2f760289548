package app

import (
	"context"
	"io"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/metadata-drift-detector/internal/adapters/snapshot/demo"
	"github.com/olusolaa/metadata-drift-detector/internal/adapters/snapshot/file"
	"github.com/olusolaa/metadata-drift-detector/internal/config"
	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
	"github.com/olusolaa/metadata-drift-detector/internal/log"
)

func TestParseIgnoreOverride(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected map[domain.Category][]string
		wantErr  bool
	}{
		{
			name:  "Two Categories",
			input: "Field=HelpText,Alias;Module=Alias",
			expected: map[domain.Category][]string{
				domain.CategoryField:  {"HelpText", "Alias"},
				domain.CategoryModule: {"Alias"},
			},
		},
		{
			name:     "Whitespace And Case",
			input:    " valueslistvalue = SortOrder , ; ",
			expected: map[domain.Category][]string{domain.CategoryValuesListValue: {"SortOrder"}},
		},
		{name: "Empty", input: "", expected: map[domain.Category][]string{}},
		{name: "Missing Equals", input: "Field", wantErr: true},
		{name: "Unknown Category", input: "Widget=Name", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseIgnoreOverride(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.CodeConfigValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseSnapshotFlag(t *testing.T) {
	assert.Equal(t,
		config.SnapshotConfig{Type: demo.LoaderTypeDemo, Demo: &demo.Config{Environment: "Prod"}},
		parseSnapshotFlag("demo: Prod"))
	assert.Equal(t,
		config.SnapshotConfig{Type: file.LoaderTypeFile, File: &file.Config{Path: "exports/dev.json.gz"}},
		parseSnapshotFlag("exports/dev.json.gz"))
}

func TestApplyCLIOverrides(t *testing.T) {
	logger, err := log.NewLoggerWithWriter(log.DefaultConfig(), io.Discard)
	require.NoError(t, err)

	v := viper.New()
	v.Set(KeySourceOverride, "dev.yaml")
	v.Set(KeyIgnoreOverride, "Field=HelpText")

	cfg := config.DefaultConfig()
	cfg.Comparison.IgnoreAttributes = map[string][]string{
		"field":  {"Alias"},
		"module": {"Alias"},
	}
	require.NoError(t, applyCLIOverrides(context.Background(), v, cfg, logger))

	assert.Equal(t, file.LoaderTypeFile, cfg.Source.Type)
	assert.Equal(t, "dev.yaml", cfg.Source.File.Path)
	assert.Equal(t, demo.LoaderTypeDemo, cfg.Target.Type)
	assert.Equal(t, map[string][]string{
		"Field":  {"HelpText"},
		"module": {"Alias"},
	}, cfg.Comparison.IgnoreAttributes)
}
