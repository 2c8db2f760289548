package domain

import (
	"slices"
	"time"
)

// ComparisonReport groups the results of one run by category. It is owned by
// the comparator that built it until handed to a consumer.
type ComparisonReport struct {
	RunID                 string
	SourceEnvironmentName string
	TargetEnvironmentName string
	SourcePlatformVersion string
	TargetPlatformVersion string
	ComparedAt            time.Time
	Categories            []Category
	Results               map[Category][]ComparisonResult
	// DuplicateKeys counts entities dropped because an earlier entity in the
	// same snapshot had the same composite key (source and target combined).
	DuplicateKeys map[Category]int
}

// NewComparisonReport returns an empty report for two snapshots.
func NewComparisonReport(runID string, source, target *Snapshot, comparedAt time.Time) *ComparisonReport {
	r := &ComparisonReport{
		RunID:         runID,
		ComparedAt:    comparedAt,
		Results:       make(map[Category][]ComparisonResult),
		DuplicateKeys: make(map[Category]int),
	}
	if source != nil {
		r.SourceEnvironmentName = source.EnvironmentName
		r.SourcePlatformVersion = source.PlatformVersion
	}
	if target != nil {
		r.TargetEnvironmentName = target.EnvironmentName
		r.TargetPlatformVersion = target.PlatformVersion
	}
	return r
}

// ResultsFor returns the results of one category.
func (r *ComparisonReport) ResultsFor(c Category) []ComparisonResult {
	return r.Results[c]
}

// ResultCategories lists the categories holding results, in report order.
func (r *ComparisonReport) ResultCategories() []Category {
	out := make([]Category, 0, len(r.Results))
	for c := range r.Results {
		if len(r.Results[c]) > 0 {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b Category) int {
		return categoryRank(a) - categoryRank(b)
	})
	return out
}

// AllResults flattens the report in category order.
func (r *ComparisonReport) AllResults() []ComparisonResult {
	total := 0
	for _, results := range r.Results {
		total += len(results)
	}
	out := make([]ComparisonResult, 0, total)
	for _, c := range r.ResultCategories() {
		out = append(out, r.Results[c]...)
	}
	return out
}

// Summary holds counts over a report.
type Summary struct {
	SourceOnly int
	TargetOnly int
	Mismatches int
	Matches    int
	Total      int
	ByCategory map[Category]int
	BySeverity map[Severity]int
}

// Differences is the number of results that are not matches.
func (s Summary) Differences() int {
	return s.SourceOnly + s.TargetOnly + s.Mismatches
}

// Summary counts the report's results by status, category and severity.
// Severity counts only include differences.
func (r *ComparisonReport) Summary() Summary {
	s := Summary{
		ByCategory: make(map[Category]int),
		BySeverity: make(map[Severity]int),
	}
	for c, results := range r.Results {
		for _, res := range results {
			s.Total++
			s.ByCategory[c]++
			switch res.Status {
			case StatusMissingInTarget:
				s.SourceOnly++
			case StatusMissingInSource:
				s.TargetOnly++
			case StatusMismatch:
				s.Mismatches++
			case StatusMatch:
				s.Matches++
			}
			if res.IsDifference() {
				s.BySeverity[res.Severity]++
			}
		}
	}
	return s
}

// HasDifferences reports whether any result is not a match.
func (r *ComparisonReport) HasDifferences() bool {
	for _, results := range r.Results {
		for _, res := range results {
			if res.IsDifference() {
				return true
			}
		}
	}
	return false
}
