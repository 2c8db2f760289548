package valueslist

import (
	"context"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/helper"
	"github.com/olusolaa/metadata-drift-detector/pkg/canonical"
	"github.com/olusolaa/metadata-drift-detector/pkg/compare"
)

var listAttributes = []compare.Attribute[domain.ValuesList]{
	compare.Attr(domain.AttrID, func(l domain.ValuesList) string { return canonical.Int(l.ID) }),
	compare.Attr(domain.AttrName, func(l domain.ValuesList) string { return l.Name }),
	compare.Attr(domain.AttrGUID, func(l domain.ValuesList) string { return canonical.OptionalString(l.GUID) }),
	compare.Attr(domain.AttrAlias, func(l domain.ValuesList) string { return canonical.OptionalString(l.Alias) }),
	compare.Attr(domain.AttrLevelID, func(l domain.ValuesList) string { return canonical.Int(l.LevelID) }),
	compare.Attr(domain.AttrRelatedValuesListID, func(l domain.ValuesList) string { return canonical.Format(l.RelatedValuesListID) }),
	compare.Attr("IsActive", func(l domain.ValuesList) string { return canonical.Bool(l.IsActive) }),
}

var valueAttributes = []compare.Attribute[domain.ValuesListValue]{
	compare.Attr(domain.AttrID, func(v domain.ValuesListValue) string { return canonical.Int(v.ID) }),
	compare.Attr(domain.AttrName, func(v domain.ValuesListValue) string { return v.Name }),
	compare.Attr(domain.AttrValuesListID, func(v domain.ValuesListValue) string { return canonical.Int(v.ValuesListID) }),
	compare.Attr(domain.AttrParentID, func(v domain.ValuesListValue) string { return canonical.Format(v.ParentID) }),
	compare.Attr("SortOrder", func(v domain.ValuesListValue) string { return canonical.Int(v.SortOrder) }),
	compare.Attr("IsActive", func(v domain.ValuesListValue) string { return canonical.Bool(v.IsActive) }),
	compare.Attr("IsDefault", func(v domain.ValuesListValue) string { return canonical.Bool(v.IsDefault) }),
}

var (
	listPolicy = helper.SeverityPolicy{
		SourceOnly: domain.SeverityWarning,
		TargetOnly: domain.SeverityInfo,
		Mismatch:   domain.SeverityWarning,
	}
	valuePolicy = helper.SeverityPolicy{
		SourceOnly: domain.SeverityWarning,
		TargetOnly: domain.SeverityInfo,
		Mismatch:   domain.SeverityInfo,
	}
)

// Comparer diffs values lists by name and then walks the value hierarchy of
// every list present on both sides. List rows are reported under
// CategoryValuesList, value rows under CategoryValuesListValue labelled with
// their breadcrumb path.
type Comparer struct {
	lists  compare.Spec[domain.ValuesList]
	values compare.TreeSpec[domain.ValuesListValue]
}

// NewComparer builds a values list comparer. listIgnore and valueIgnore
// extend the fixed exclusions of lists and values respectively.
func NewComparer(listIgnore, valueIgnore []string) *Comparer {
	return &Comparer{
		lists: compare.Spec[domain.ValuesList]{
			Key:        compare.CompositeKey(listAttributes[1:2]),
			Attributes: listAttributes,
			Excluded:   helper.BaseExclusions(append([]string{domain.AttrValues}, listIgnore...)...),
		},
		values: compare.TreeSpec[domain.ValuesListValue]{
			Name:       func(v domain.ValuesListValue) string { return v.Name },
			Children:   func(v domain.ValuesListValue) []domain.ValuesListValue { return v.Children },
			Attributes: valueAttributes,
			Excluded:   helper.BaseExclusions(append([]string{domain.AttrChildren}, valueIgnore...)...),
		},
	}
}

func (c *Comparer) Category() domain.Category { return domain.CategoryValuesList }

// Attributes lists the values list attribute names.
func (c *Comparer) Attributes() []string { return compare.Names(c.lists.Attributes) }

// ValueAttributes lists the values list value attribute names.
func (c *Comparer) ValueAttributes() []string { return compare.Names(c.values.Attributes) }

func (c *Comparer) Compare(
	ctx context.Context,
	source, target *domain.Snapshot,
	opts domain.CollectionOptions,
) (domain.CategoryOutcome, error) {
	if err := helper.CheckInputs(ctx, domain.CategoryValuesList, source, target); err != nil {
		return domain.CategoryOutcome{}, err
	}

	res := compare.Diff(source.ValuesLists, target.ValuesLists, c.lists)
	lists := helper.ResultBuilder[domain.ValuesList]{
		Category: domain.CategoryValuesList,
		Labels:   helper.KeyLabels[domain.ValuesList](true),
		Policy:   listPolicy,
	}

	var results []domain.ComparisonResult
	for _, k := range res.SourceOnly {
		results = append(results, lists.SourceOnly(k.Key, k.Item))
	}
	for _, k := range res.TargetOnly {
		results = append(results, lists.TargetOnly(k.Key, k.Item))
	}

	valueDuplicates := 0
	for _, p := range res.Common {
		results = append(results, lists.Common(p.Key, p.Source, p.Differences)...)

		for _, d := range compare.DiffTree(c.values, p.Source.Values, p.Target.Values, opts.MaxDepth, p.Key) {
			results = append(results, valueResults(d)...)
			valueDuplicates += d.Duplicates
		}
	}

	out := domain.CategoryOutcome{Category: domain.CategoryValuesList, Results: results}
	if dups := res.Duplicates(); dups > 0 || valueDuplicates > 0 {
		out.Duplicates = make(map[domain.Category]int, 2)
		if dups > 0 {
			out.Duplicates[domain.CategoryValuesList] = dups
		}
		if valueDuplicates > 0 {
			out.Duplicates[domain.CategoryValuesListValue] = valueDuplicates
		}
	}
	return out, nil
}

func valueResults(d compare.TreeDiff) []domain.ComparisonResult {
	r := domain.ComparisonResult{
		Category:       domain.CategoryValuesListValue,
		ItemName:       d.Path,
		ItemIdentifier: d.Name,
	}

	switch d.Outcome {
	case compare.OutcomeSourceOnly:
		r.PropertyName = domain.PropertySourceOnly
		r.SourceValue = d.Name
		r.Status = domain.StatusMissingInTarget
		r.Severity = valuePolicy.SourceOnly
	case compare.OutcomeTargetOnly:
		r.PropertyName = domain.PropertyTargetOnly
		r.TargetValue = d.Name
		r.Status = domain.StatusMissingInSource
		r.Severity = valuePolicy.TargetOnly
	case compare.OutcomeMatch:
		r.PropertyName = domain.PropertyAllProperties
		r.Status = domain.StatusMatch
		r.Severity = domain.SeverityInfo
	case compare.OutcomeMismatch:
		out := make([]domain.ComparisonResult, 0, len(d.Differences))
		for _, diff := range d.Differences {
			m := r
			m.PropertyName = diff.Name
			m.SourceValue = diff.Source
			m.TargetValue = diff.Target
			m.Status = domain.StatusMismatch
			m.Severity = valuePolicy.Mismatch
			out = append(out, m)
		}
		return out
	}
	return []domain.ComparisonResult{r}
}
