package app

import (
	"bytes"
	"context"
	"io"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/metadata-drift-detector/internal/adapters/snapshot/demo"
	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/service"
	"github.com/olusolaa/metadata-drift-detector/internal/log"
	"github.com/olusolaa/metadata-drift-detector/internal/reporting/json"
	"github.com/olusolaa/metadata-drift-detector/internal/resources"
)

type pipelineResult struct {
	Summary struct {
		SourceOnly int `json:"source_only"`
		TargetOnly int `json:"target_only"`
		Mismatches int `json:"mismatches"`
	} `json:"summary"`
	Results []struct {
		Category     string `json:"category"`
		PropertyName string `json:"property_name"`
		SourceValue  string `json:"source_value"`
		TargetValue  string `json:"target_value"`
		Status       string `json:"status"`
	} `json:"results"`
}

func TestPipeline_DemoEnvironments(t *testing.T) {
	ctx := context.Background()
	logger, err := log.NewLoggerWithWriter(log.DefaultConfig(), io.Discard)
	require.NoError(t, err)

	registry := service.NewComponentRegistry()
	for role, env := range map[string]string{service.RoleSource: "Dev", service.RoleTarget: "Prod"} {
		loader, err := demo.NewLoader(demo.Config{Environment: env}, logger)
		require.NoError(t, err)
		require.NoError(t, registry.RegisterSnapshotLoader(role, loader))
	}
	for _, c := range resources.Comparers(nil) {
		require.NoError(t, registry.RegisterCategoryComparer(c))
	}

	var buf bytes.Buffer
	reporter, err := json.NewReporterWithWriter(json.Config{}, &buf, logger)
	require.NoError(t, err)

	engine, err := service.NewDriftAnalysisEngine(registry, reporter, logger, domain.DefaultCollectionOptions())
	require.NoError(t, err)
	require.NoError(t, engine.Run(ctx))

	var got pipelineResult
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, 1, got.Summary.SourceOnly)
	assert.Equal(t, 1, got.Summary.TargetOnly)
	assert.Equal(t, 1, got.Summary.Mismatches)
	require.Len(t, got.Results, 3)
	for _, r := range got.Results {
		assert.Equal(t, "Field", r.Category)
	}
	assert.Equal(t, "Formula", got.Results[0].PropertyName)
	assert.Equal(t, "(Impact * Likelihood) + 1", got.Results[0].SourceValue)
	assert.Equal(t, "Dev Only Field", got.Results[1].SourceValue)
	assert.Equal(t, "Legacy Field", got.Results[2].TargetValue)
}
