package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/olusolaa/metadata-drift-detector/internal/adapters/snapshot/demo"
	"github.com/olusolaa/metadata-drift-detector/internal/adapters/snapshot/file"
	"github.com/olusolaa/metadata-drift-detector/internal/config"
	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
)

// Keys under which the command line passes values that do not map onto a
// single configuration field.
const (
	KeySourceOverride = "cli.source"
	KeyTargetOverride = "cli.target"
	KeyIgnoreOverride = "cli.ignore"
)

const demoPrefix = "demo:"

func applyCLIOverrides(ctx context.Context, v *viper.Viper, cfg *config.Config, logger ports.Logger) error {
	if s := strings.TrimSpace(v.GetString(KeySourceOverride)); s != "" {
		cfg.Source = parseSnapshotFlag(s)
		logger.Debugf(ctx, "Source snapshot overridden from command line: %s", s)
	}
	if s := strings.TrimSpace(v.GetString(KeyTargetOverride)); s != "" {
		cfg.Target = parseSnapshotFlag(s)
		logger.Debugf(ctx, "Target snapshot overridden from command line: %s", s)
	}

	s := v.GetString(KeyIgnoreOverride)
	if s == "" {
		return nil
	}
	overrides, err := parseIgnoreOverride(s)
	if err != nil {
		return err
	}
	if cfg.Comparison.IgnoreAttributes == nil {
		cfg.Comparison.IgnoreAttributes = make(map[string][]string, len(overrides))
	}
	for category, attrs := range overrides {
		for name := range cfg.Comparison.IgnoreAttributes {
			if c, ok := domain.ParseCategory(name); ok && c == category {
				delete(cfg.Comparison.IgnoreAttributes, name)
			}
		}
		logger.Debugf(ctx, "Overriding ignored attributes for '%s' with: %v", category, attrs)
		cfg.Comparison.IgnoreAttributes[category.String()] = attrs
	}
	return nil
}

// parseSnapshotFlag reads "demo:<environment>" as a demo snapshot and
// anything else as a snapshot file path.
func parseSnapshotFlag(value string) config.SnapshotConfig {
	if env, ok := strings.CutPrefix(value, demoPrefix); ok {
		return config.SnapshotConfig{Type: demo.LoaderTypeDemo, Demo: &demo.Config{Environment: strings.TrimSpace(env)}}
	}
	return config.SnapshotConfig{Type: file.LoaderTypeFile, File: &file.Config{Path: value}}
}

// parseIgnoreOverride reads "Field=HelpText,Alias;Module=Alias".
func parseIgnoreOverride(override string) (map[domain.Category][]string, error) {
	parsed := make(map[domain.Category][]string)
	for _, pair := range strings.Split(override, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, rawAttrs, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.NewUserFacing(errors.CodeConfigValidation,
				fmt.Sprintf("invalid ignore override '%s'", pair),
				"Use the form 'Field=HelpText,Alias;Module=Alias'.")
		}
		category, ok := domain.ParseCategory(name)
		if !ok {
			return nil, errors.NewUserFacing(errors.CodeConfigValidation,
				fmt.Sprintf("unknown category '%s' in ignore override", strings.TrimSpace(name)), "")
		}

		for _, a := range strings.Split(rawAttrs, ",") {
			if trimmed := strings.TrimSpace(a); trimmed != "" {
				parsed[category] = append(parsed[category], trimmed)
			}
		}
	}
	return parsed, nil
}
