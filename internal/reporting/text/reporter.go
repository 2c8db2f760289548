package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
)

const ReporterTypeText = "text"

const maxValueLen = 60

type Config struct {
	NoColor     bool `mapstructure:"no_color"`
	ShowMatches bool `mapstructure:"show_matches"`
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger

	red, yellow, green, cyan, magenta *color.Color
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	if !isTerminal(os.Stdout) {
		cfg.NoColor = true
	}
	return NewReporterWithWriter(cfg, os.Stdout, logger)
}

// NewReporterWithWriter writes the report to w instead of stdout.
func NewReporterWithWriter(cfg Config, w io.Writer, logger ports.Logger) (*Reporter, error) {
	if w == nil {
		return nil, errors.New(errors.CodeInternal, "text reporter requires a writer")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeInternal, "text reporter requires a logger")
	}
	r := &Reporter{
		config:  cfg,
		writer:  w,
		logger:  logger,
		red:     color.New(color.FgRed),
		yellow:  color.New(color.FgYellow),
		green:   color.New(color.FgGreen),
		cyan:    color.New(color.FgCyan),
		magenta: color.New(color.FgMagenta, color.Bold),
	}
	if cfg.NoColor {
		for _, c := range []*color.Color{r.red, r.yellow, r.green, r.cyan, r.magenta} {
			c.DisableColor()
		}
	}
	return r, nil
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Report(ctx context.Context, report *domain.ComparisonReport) error {
	if report == nil {
		return errors.New(errors.CodeReportError, "no comparison report to render")
	}

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "Metadata Drift Report")
	fmt.Fprintln(tw, "=====================")
	fmt.Fprintf(tw, "Source:\t%s\n", environmentLabel(report.SourceEnvironmentName, report.SourcePlatformVersion))
	fmt.Fprintf(tw, "Target:\t%s\n", environmentLabel(report.TargetEnvironmentName, report.TargetPlatformVersion))
	fmt.Fprintf(tw, "Run:\t%s\n", report.RunID)
	if !report.ComparedAt.IsZero() {
		fmt.Fprintf(tw, "Compared at:\t%s\n", report.ComparedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	}

	printed := 0
	for _, category := range report.ResultCategories() {
		if ctx.Err() != nil {
			r.logger.Warnf(ctx, "Text report generation cancelled.")
			return ctx.Err()
		}
		rows := r.visible(report.ResultsFor(category))
		if len(rows) == 0 {
			continue
		}
		printed += len(rows)

		fmt.Fprintf(tw, "\n%s (%d)\n", category, len(rows))
		fmt.Fprintln(tw, "Status\tSeverity\tItem\tIdentifier\tProperty\tSource\tTarget")
		fmt.Fprintln(tw, "------\t--------\t----\t----------\t--------\t------\t------")
		for _, res := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				r.status(res.Status),
				r.severity(res),
				orDash(res.ItemName),
				orDash(res.ItemIdentifier),
				res.PropertyName,
				formatValue(res.SourceValue),
				formatValue(res.TargetValue))
		}
	}
	if printed == 0 {
		if report.HasDifferences() {
			fmt.Fprintln(tw, "\nNo results to display.")
		} else {
			fmt.Fprintln(tw, "\n"+r.green.Sprint("No differences found."))
		}
	}

	r.writeSummary(tw, report)

	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, errors.CodeReportError, "failed to write text report")
	}
	r.logger.Debugf(ctx, "Text report written (%d rows).", printed)
	return nil
}

func (r *Reporter) writeSummary(w io.Writer, report *domain.ComparisonReport) {
	s := report.Summary()

	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintln(w, "-------")
	fmt.Fprintf(w, "Total Compared:\t%d\n", s.Total)
	fmt.Fprintf(w, "Source Only:\t%s\n", r.red.Sprint(s.SourceOnly))
	fmt.Fprintf(w, "Target Only:\t%s\n", r.cyan.Sprint(s.TargetOnly))
	fmt.Fprintf(w, "Mismatches:\t%s\n", r.yellow.Sprint(s.Mismatches))
	fmt.Fprintf(w, "Matches:\t%s\n", r.green.Sprint(s.Matches))

	if len(s.ByCategory) > 0 {
		fmt.Fprintln(w, "\nBy Category:")
		for _, c := range report.ResultCategories() {
			fmt.Fprintf(w, "  %s:\t%d\n", c, s.ByCategory[c])
		}
	}
	if s.Differences() > 0 {
		fmt.Fprintln(w, "\nDifferences By Severity:")
		for _, sev := range []domain.Severity{domain.SeverityCritical, domain.SeverityWarning, domain.SeverityInfo} {
			fmt.Fprintf(w, "  %s:\t%d\n", sev, s.BySeverity[sev])
		}
	}

	var dup int
	for _, n := range report.DuplicateKeys {
		dup += n
	}
	if dup > 0 {
		fmt.Fprintf(w, "\nDuplicate keys skipped:\t%s\n", r.yellow.Sprint(dup))
	}
}

func (r *Reporter) visible(results []domain.ComparisonResult) []domain.ComparisonResult {
	if r.config.ShowMatches {
		return results
	}
	out := make([]domain.ComparisonResult, 0, len(results))
	for _, res := range results {
		if res.IsDifference() {
			out = append(out, res)
		}
	}
	return out
}

func (r *Reporter) status(s domain.ComparisonStatus) string {
	switch s {
	case domain.StatusMissingInTarget:
		return r.red.Sprint("[SOURCE ONLY]")
	case domain.StatusMissingInSource:
		return r.cyan.Sprint("[TARGET ONLY]")
	case domain.StatusMismatch:
		return r.yellow.Sprint("[MISMATCH]")
	case domain.StatusMatch:
		return r.green.Sprint("[OK]")
	default:
		return "[UNKNOWN]"
	}
}

func (r *Reporter) severity(res domain.ComparisonResult) string {
	if !res.IsDifference() {
		return "-"
	}
	switch res.Severity {
	case domain.SeverityCritical:
		return r.magenta.Sprint(res.Severity)
	case domain.SeverityWarning:
		return r.yellow.Sprint(res.Severity)
	default:
		return res.Severity.String()
	}
}

func environmentLabel(name, version string) string {
	name = orDash(name)
	if version == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, version)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// formatValue keeps table rows on one line.
func formatValue(value string) string {
	if value == "" {
		return "-"
	}
	value = strings.Join(strings.Fields(value), " ")
	runes := []rune(value)
	if len(runes) > maxValueLen {
		return string(runes[:maxValueLen-3]) + "..."
	}
	return value
}
