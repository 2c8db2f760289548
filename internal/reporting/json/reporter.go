package json

import (
	"context"
	"io"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
)

const ReporterTypeJSON = "json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	Compact     bool `mapstructure:"compact"`
	ShowMatches bool `mapstructure:"show_matches"`
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	return NewReporterWithWriter(cfg, os.Stdout, logger)
}

func NewReporterWithWriter(cfg Config, w io.Writer, logger ports.Logger) (*Reporter, error) {
	if w == nil {
		return nil, errors.New(errors.CodeInternal, "json reporter requires a writer")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeInternal, "json reporter requires a logger")
	}
	return &Reporter{config: cfg, writer: w, logger: logger}, nil
}

type jsonReport struct {
	RunID         string         `json:"run_id"`
	ComparedAt    *time.Time     `json:"compared_at,omitempty"`
	Source        jsonSnapshot   `json:"source"`
	Target        jsonSnapshot   `json:"target"`
	Categories    []string       `json:"categories"`
	Summary       jsonSummary    `json:"summary"`
	DuplicateKeys map[string]int `json:"duplicate_keys,omitempty"`
	Results       []jsonResult   `json:"results"`
}

type jsonSnapshot struct {
	Environment     string `json:"environment"`
	PlatformVersion string `json:"platform_version,omitempty"`
}

type jsonSummary struct {
	Total       int            `json:"total"`
	Differences int            `json:"differences"`
	SourceOnly  int            `json:"source_only"`
	TargetOnly  int            `json:"target_only"`
	Mismatches  int            `json:"mismatches"`
	Matches     int            `json:"matches"`
	ByCategory  map[string]int `json:"by_category"`
	BySeverity  map[string]int `json:"by_severity"`
}

type jsonResult struct {
	Category       domain.Category         `json:"category"`
	ItemName       string                  `json:"item_name"`
	ItemIdentifier string                  `json:"item_identifier"`
	PropertyName   string                  `json:"property_name"`
	SourceValue    string                  `json:"source_value,omitempty"`
	TargetValue    string                  `json:"target_value,omitempty"`
	Status         domain.ComparisonStatus `json:"status"`
	Severity       domain.Severity         `json:"severity"`
}

func (r *Reporter) Report(ctx context.Context, report *domain.ComparisonReport) error {
	if report == nil {
		return errors.New(errors.CodeReportError, "no comparison report to render")
	}

	out := r.build(report)
	for _, res := range report.AllResults() {
		if ctx.Err() != nil {
			r.logger.Warnf(ctx, "JSON report generation cancelled.")
			return ctx.Err()
		}
		if !r.config.ShowMatches && !res.IsDifference() {
			continue
		}
		out.Results = append(out.Results, jsonResult{
			Category:       res.Category,
			ItemName:       res.ItemName,
			ItemIdentifier: res.ItemIdentifier,
			PropertyName:   res.PropertyName,
			SourceValue:    res.SourceValue,
			TargetValue:    res.TargetValue,
			Status:         res.Status,
			Severity:       res.Severity,
		})
	}

	encoder := json.NewEncoder(r.writer)
	if !r.config.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(out); err != nil {
		r.logger.Errorf(ctx, err, "Failed to encode JSON report")
		return errors.Wrap(err, errors.CodeReportError, "failed to encode JSON report")
	}

	r.logger.Debugf(ctx, "JSON report successfully generated (%d results).", len(out.Results))
	return nil
}

func (r *Reporter) build(report *domain.ComparisonReport) jsonReport {
	s := report.Summary()
	out := jsonReport{
		RunID:      report.RunID,
		Source:     jsonSnapshot{Environment: report.SourceEnvironmentName, PlatformVersion: report.SourcePlatformVersion},
		Target:     jsonSnapshot{Environment: report.TargetEnvironmentName, PlatformVersion: report.TargetPlatformVersion},
		Categories: make([]string, 0, len(report.Categories)),
		Summary: jsonSummary{
			Total:       s.Total,
			Differences: s.Differences(),
			SourceOnly:  s.SourceOnly,
			TargetOnly:  s.TargetOnly,
			Mismatches:  s.Mismatches,
			Matches:     s.Matches,
			ByCategory:  make(map[string]int, len(s.ByCategory)),
			BySeverity:  make(map[string]int, len(s.BySeverity)),
		},
		Results: make([]jsonResult, 0, s.Total),
	}
	if !report.ComparedAt.IsZero() {
		at := report.ComparedAt.UTC()
		out.ComparedAt = &at
	}
	for _, c := range report.Categories {
		out.Categories = append(out.Categories, c.String())
	}
	for c, n := range s.ByCategory {
		out.Summary.ByCategory[c.String()] = n
	}
	for sev, n := range s.BySeverity {
		out.Summary.BySeverity[sev.String()] = n
	}
	for c, n := range report.DuplicateKeys {
		if n == 0 {
			continue
		}
		if out.DuplicateKeys == nil {
			out.DuplicateKeys = make(map[string]int)
		}
		out.DuplicateKeys[c.String()] = n
	}
	return out
}
