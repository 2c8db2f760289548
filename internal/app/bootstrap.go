package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/olusolaa/metadata-drift-detector/internal/adapters/snapshot/demo"
	"github.com/olusolaa/metadata-drift-detector/internal/adapters/snapshot/file"
	"github.com/olusolaa/metadata-drift-detector/internal/config"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
	"github.com/olusolaa/metadata-drift-detector/internal/core/service"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
	"github.com/olusolaa/metadata-drift-detector/internal/log"
	"github.com/olusolaa/metadata-drift-detector/internal/reporting/json"
	"github.com/olusolaa/metadata-drift-detector/internal/reporting/text"
	"github.com/olusolaa/metadata-drift-detector/internal/resources"
)

// BuildApplicationFromViper decodes and validates the configuration held by
// v and assembles the engine with its loaders, comparers and reporter.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper) (*Application, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, err
	}

	logger, err := log.NewLogger(log.Config{Level: cfg.Settings.LogLevel, Format: cfg.Settings.LogFormat})
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	} else {
		logger.Debugf(ctx, "No configuration file found, using defaults/env/flags.")
	}

	if err := applyCLIOverrides(ctx, v, cfg, logger); err != nil {
		return nil, err
	}
	if err := validateConfig(ctx, cfg); err != nil {
		logger.Errorf(ctx, err, "Configuration validation failed")
		return nil, err
	}
	logger.Debugf(ctx, "Configuration validated successfully")

	options, err := cfg.Comparison.CollectionOptions()
	if err != nil {
		return nil, err
	}
	ignore, err := cfg.Comparison.IgnoreByCategory()
	if err != nil {
		return nil, err
	}

	registry := service.NewComponentRegistry()
	for _, side := range []struct {
		role string
		cfg  config.SnapshotConfig
	}{{service.RoleSource, cfg.Source}, {service.RoleTarget, cfg.Target}} {
		loader, err := newSnapshotLoader(ctx, side.role, side.cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := registry.RegisterSnapshotLoader(side.role, loader); err != nil {
			return nil, err
		}
	}

	comparers := resources.Comparers(ignore)
	unknown := resources.UnknownIgnores(comparers, ignore)
	for _, c := range slices.Sorted(maps.Keys(unknown)) {
		logger.Warnf(ctx, "Ignored attributes %v match no %s attribute and have no effect", unknown[c], c)
	}
	for _, c := range comparers {
		if !options.Includes(c.Category()) {
			continue
		}
		if err := registry.RegisterCategoryComparer(c); err != nil {
			return nil, err
		}
		logger.Debugf(ctx, "Registered comparer for: %s", c.Category())
	}

	reporter, err := newReporter(ctx, cfg.Settings, logger)
	if err != nil {
		return nil, err
	}

	engine, err := service.NewDriftAnalysisEngine(registry, reporter,
		logger.WithFields(map[string]any{"component": "engine"}), options)
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Application bootstrap complete")
	return NewApplication(engine, logger, cfg), nil
}

func loadConfig(v *viper.Viper) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if err := v.Unmarshal(cfg, viper.DecodeHook(config.DecodeHook())); err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigParseError, "failed to decode configuration",
			"Check the types of the values in your configuration file.")
	}
	return cfg, nil
}

func validateConfig(ctx context.Context, cfg *config.Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(ctx, cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !stderrors.As(err, &validationErrors) {
			return errors.Wrap(err, errors.CodeConfigValidation, "configuration validation failed")
		}
		var details strings.Builder
		details.WriteString("Configuration validation failed:")
		for _, fe := range validationErrors {
			details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')",
				fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return errors.NewUserFacing(errors.CodeConfigValidation, details.String(),
			"Please check your configuration file or flags.")
	}
	return cfg.Check()
}

func newSnapshotLoader(ctx context.Context, role string, sc config.SnapshotConfig, logger ports.Logger) (ports.SnapshotLoader, error) {
	llog := logger.WithFields(map[string]any{"role": role})
	switch sc.Type {
	case file.LoaderTypeFile:
		loader, err := file.NewLoader(*sc.File, llog)
		if err != nil {
			return nil, err
		}
		llog.Infof(ctx, "Using file snapshot: %s", sc.File.Path)
		return loader, nil
	case demo.LoaderTypeDemo:
		loader, err := demo.NewLoader(*sc.Demo, llog)
		if err != nil {
			return nil, err
		}
		llog.Infof(ctx, "Using demo snapshot for environment %q", sc.Demo.Environment)
		return loader, nil
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported %s snapshot type: %s", role, sc.Type), "Supported: file, demo")
	}
}

func newReporter(ctx context.Context, settings config.SettingsConfig, logger ports.Logger) (ports.Reporter, error) {
	reportLog := logger.WithFields(map[string]any{"component": "reporter", "type": settings.ReporterType})
	switch settings.ReporterType {
	case text.ReporterTypeText:
		cfg := text.Config{}
		if settings.Reporter.Text != nil {
			cfg = *settings.Reporter.Text
		}
		cfg.ShowMatches = cfg.ShowMatches || settings.ShowMatches
		reportLog.Debugf(ctx, "Using Text reporter (Color: %t, Matches: %t)", !cfg.NoColor, cfg.ShowMatches)
		return text.NewReporter(cfg, reportLog)
	case json.ReporterTypeJSON:
		cfg := json.Config{}
		if settings.Reporter.JSON != nil {
			cfg = *settings.Reporter.JSON
		}
		cfg.ShowMatches = cfg.ShowMatches || settings.ShowMatches
		reportLog.Debugf(ctx, "Using JSON reporter (Compact: %t, Matches: %t)", cfg.Compact, cfg.ShowMatches)
		return json.NewReporter(cfg, reportLog)
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported reporter type: %s", settings.ReporterType), "Supported: text, json")
	}
}
