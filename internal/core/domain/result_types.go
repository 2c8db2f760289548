package domain

import (
	"cmp"
	"slices"
)

type ComparisonStatus string

const (
	StatusMatch           ComparisonStatus = "Match"
	StatusMismatch        ComparisonStatus = "Mismatch"
	StatusMissingInSource ComparisonStatus = "MissingInSource"
	StatusMissingInTarget ComparisonStatus = "MissingInTarget"
)

func (s ComparisonStatus) String() string {
	return string(s)
}

type Severity string

const (
	SeverityInfo     Severity = "Info"
	SeverityWarning  Severity = "Warning"
	SeverityCritical Severity = "Critical"
)

func (s Severity) String() string {
	return string(s)
}

// Rank orders severities from least to most impactful.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// ComparisonResult is one row of a comparison report. Results are created
// once per run and never mutated afterwards.
type ComparisonResult struct {
	Category       Category
	ItemName       string
	ItemIdentifier string
	PropertyName   string
	SourceValue    string
	TargetValue    string
	Status         ComparisonStatus
	Severity       Severity
}

// IsDifference reports whether the result is anything other than a match.
func (r ComparisonResult) IsDifference() bool {
	return r.Status != StatusMatch
}

// SortResults orders results by item name, identifier, then property name.
// Ties keep their emission order.
func SortResults(results []ComparisonResult) {
	slices.SortStableFunc(results, func(a, b ComparisonResult) int {
		if c := cmp.Compare(a.ItemName, b.ItemName); c != 0 {
			return c
		}
		if c := cmp.Compare(a.ItemIdentifier, b.ItemIdentifier); c != 0 {
			return c
		}
		return cmp.Compare(a.PropertyName, b.PropertyName)
	})
}

// CategoryOutcome is what one category comparer produces. Results may carry
// more than one category when a comparer also walks nested entities.
type CategoryOutcome struct {
	Category   Category
	Results    []ComparisonResult
	Duplicates map[Category]int
}
