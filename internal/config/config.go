package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/olusolaa/metadata-drift-detector/internal/adapters/snapshot/demo"
	"github.com/olusolaa/metadata-drift-detector/internal/adapters/snapshot/file"
	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
	"github.com/olusolaa/metadata-drift-detector/internal/log"
	"github.com/olusolaa/metadata-drift-detector/internal/reporting/json"
	"github.com/olusolaa/metadata-drift-detector/internal/reporting/text"
)

type Config struct {
	Settings   SettingsConfig   `mapstructure:"settings"`
	Source     SnapshotConfig   `mapstructure:"source"`
	Target     SnapshotConfig   `mapstructure:"target"`
	Comparison ComparisonConfig `mapstructure:"comparison"`
}

type SettingsConfig struct {
	LogLevel     log.Level       `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat    log.Format      `mapstructure:"log_format" validate:"omitempty,oneof=text json"`
	ReporterType string          `mapstructure:"reporter" validate:"required,oneof=text json"`
	ShowMatches  bool            `mapstructure:"show_matches"`
	Reporter     ReporterConfigs `mapstructure:"reporter_config"`
}

type ReporterConfigs struct {
	Text *text.Config `mapstructure:"text"`
	JSON *json.Config `mapstructure:"json"`
}

// SnapshotConfig selects the loader for one side of the comparison. Only the
// sub-config matching Type is used.
type SnapshotConfig struct {
	Type string       `mapstructure:"type" validate:"required,oneof=file demo"`
	File *file.Config `mapstructure:"file"`
	Demo *demo.Config `mapstructure:"demo"`
}

type ComparisonConfig struct {
	// Categories lists the categories to compare; empty means all of them.
	Categories        []string            `mapstructure:"categories"`
	ExcludeCategories []string            `mapstructure:"exclude_categories"`
	MaxDepth          int                 `mapstructure:"max_depth" validate:"gte=0"`
	SelectedModuleIDs []int               `mapstructure:"selected_module_ids" validate:"dive,gt=0"`
	IgnoreAttributes  map[string][]string `mapstructure:"ignore_attributes"`
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:     log.LevelInfo,
			LogFormat:    log.FormatText,
			ReporterType: text.ReporterTypeText,
			Reporter: ReporterConfigs{
				Text: &text.Config{},
				JSON: &json.Config{},
			},
		},
		Source: SnapshotConfig{Type: demo.LoaderTypeDemo, Demo: &demo.Config{Environment: "Dev"}},
		Target: SnapshotConfig{Type: demo.LoaderTypeDemo, Demo: &demo.Config{Environment: "Prod"}},
		Comparison: ComparisonConfig{
			MaxDepth: domain.DefaultMaxDepth,
		},
	}
}

// Check verifies that each snapshot side carries the sub-config its type
// needs. Struct tags cover the rest.
func (c *Config) Check() error {
	sides := []struct {
		role string
		cfg  SnapshotConfig
	}{{"source", c.Source}, {"target", c.Target}}
	for _, side := range sides {
		role, s := side.role, side.cfg
		switch {
		case s.Type == file.LoaderTypeFile && (s.File == nil || s.File.Path == ""):
			return errors.NewUserFacing(errors.CodeConfigValidation,
				fmt.Sprintf("%s snapshot of type 'file' has no path", role),
				fmt.Sprintf("Set %s.file.path or pass --%s <path>.", role, role))
		case s.Type == demo.LoaderTypeDemo && (s.Demo == nil || s.Demo.Environment == ""):
			return errors.NewUserFacing(errors.CodeConfigValidation,
				fmt.Sprintf("%s snapshot of type 'demo' has no environment", role),
				fmt.Sprintf("Set %s.demo.environment or pass --%s demo:<environment>.", role, role))
		}
	}
	return nil
}

// CollectionOptions turns the comparison section into the options the
// comparator understands.
func (c ComparisonConfig) CollectionOptions() (domain.CollectionOptions, error) {
	include := make(map[domain.Category]bool)
	if len(nonEmpty(c.Categories)) == 0 {
		for _, cat := range domain.SelectableCategories() {
			include[cat] = true
		}
	} else {
		for _, name := range nonEmpty(c.Categories) {
			cat, err := selectableCategory(name)
			if err != nil {
				return domain.CollectionOptions{}, err
			}
			include[cat] = true
		}
	}
	for _, name := range nonEmpty(c.ExcludeCategories) {
		cat, err := selectableCategory(name)
		if err != nil {
			return domain.CollectionOptions{}, err
		}
		delete(include, cat)
	}

	return domain.CollectionOptions{
		SelectedModuleIDs: slices.Clone(c.SelectedModuleIDs),
		Include:           include,
		MaxDepth:          c.MaxDepth,
	}, nil
}

// IgnoreByCategory resolves the ignore_attributes keys to categories.
func (c ComparisonConfig) IgnoreByCategory() (map[domain.Category][]string, error) {
	out := make(map[domain.Category][]string, len(c.IgnoreAttributes))
	for name, attrs := range c.IgnoreAttributes {
		cat, ok := domain.ParseCategory(name)
		if !ok {
			return nil, unknownCategory(name)
		}
		out[cat] = append(out[cat], nonEmpty(attrs)...)
	}
	return out, nil
}

func selectableCategory(name string) (domain.Category, error) {
	cat, ok := domain.ParseCategory(name)
	if !ok {
		return "", unknownCategory(name)
	}
	if cat == domain.CategoryValuesListValue {
		return "", errors.NewUserFacing(errors.CodeConfigValidation,
			"category 'ValuesListValue' cannot be selected on its own",
			"Select 'ValuesList'; its values are compared with it.")
	}
	return cat, nil
}

func unknownCategory(name string) error {
	names := make([]string, 0, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		names = append(names, c.String())
	}
	return errors.NewUserFacing(errors.CodeConfigValidation,
		fmt.Sprintf("unknown category '%s'", name),
		"Known categories: "+strings.Join(names, ", "))
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
