package helper

import (
	"context"
	"fmt"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
	"github.com/olusolaa/metadata-drift-detector/pkg/compare"
)

// SeverityPolicy fixes the severity of each kind of difference for a
// category. Matches are always Info.
type SeverityPolicy struct {
	SourceOnly domain.Severity
	TargetOnly domain.Severity
	Mismatch   domain.Severity
}

// Labels maps a keyed entity onto the descriptive columns of a result.
// Subject, when set, is the value shown for presence and match rows, such as
// the field name within a module and level.
type Labels[T any] struct {
	ItemName       func(key string, item T) string
	ItemIdentifier func(key string, item T) string
	Subject        func(item T) string
}

// KeyLabels uses the composite key as the item name and, when
// withIdentifier is set, as the identifier too.
func KeyLabels[T any](withIdentifier bool) Labels[T] {
	l := Labels[T]{
		ItemName: func(key string, _ T) string { return key },
	}
	if withIdentifier {
		l.ItemIdentifier = func(key string, _ T) string { return key }
	}
	return l
}

// SnapshotSelector picks one category's entities out of a snapshot.
type SnapshotSelector[T any] func(*domain.Snapshot) []T

// KeyedComparer implements the common comparison template: filter, key,
// index, set difference, property difference, results.
type KeyedComparer[T any] struct {
	category domain.Category
	selectFn SnapshotSelector[T]
	spec     compare.Spec[T]
	labels   Labels[T]
	policy   SeverityPolicy
}

func NewKeyedComparer[T any](
	category domain.Category,
	selectFn SnapshotSelector[T],
	spec compare.Spec[T],
	labels Labels[T],
	policy SeverityPolicy,
) *KeyedComparer[T] {
	return &KeyedComparer[T]{
		category: category,
		selectFn: selectFn,
		spec:     spec,
		labels:   labels,
		policy:   policy,
	}
}

func (c *KeyedComparer[T]) Category() domain.Category { return c.category }

// Exclude returns a copy of the comparer that also ignores names. The fixed
// exclusion set is never reduced.
func (c *KeyedComparer[T]) Exclude(names ...string) *KeyedComparer[T] {
	if len(names) == 0 {
		return c
	}
	clone := *c
	clone.spec.Excluded = c.spec.Excluded.With(names...)
	return &clone
}

// Attributes lists the attribute names the comparer knows about.
func (c *KeyedComparer[T]) Attributes() []string {
	return compare.Names(c.spec.Attributes)
}

func (c *KeyedComparer[T]) Compare(
	ctx context.Context,
	source, target *domain.Snapshot,
	_ domain.CollectionOptions,
) (domain.CategoryOutcome, error) {
	if err := CheckInputs(ctx, c.category, source, target); err != nil {
		return domain.CategoryOutcome{}, err
	}
	return c.CompareItems(c.selectFn(source), c.selectFn(target)), nil
}

// CompareItems diffs two entity lists without touching snapshots.
func (c *KeyedComparer[T]) CompareItems(source, target []T) domain.CategoryOutcome {
	res := compare.Diff(source, target, c.spec)
	b := ResultBuilder[T]{Category: c.category, Labels: c.labels, Policy: c.policy}

	results := make([]domain.ComparisonResult, 0, len(res.SourceOnly)+len(res.TargetOnly)+len(res.Common))
	for _, k := range res.SourceOnly {
		results = append(results, b.SourceOnly(k.Key, k.Item))
	}
	for _, k := range res.TargetOnly {
		results = append(results, b.TargetOnly(k.Key, k.Item))
	}
	for _, p := range res.Common {
		results = append(results, b.Common(p.Key, p.Source, p.Differences)...)
	}

	out := domain.CategoryOutcome{Category: c.category, Results: results}
	if dups := res.Duplicates(); dups > 0 {
		out.Duplicates = map[domain.Category]int{c.category: dups}
	}
	return out
}

// CheckInputs rejects cancelled contexts and missing snapshots.
func CheckInputs(ctx context.Context, category domain.Category, source, target *domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == nil || target == nil {
		return errors.New(errors.CodeComparisonError,
			fmt.Sprintf("%s compare called with nil source or target snapshot", category))
	}
	return nil
}

// ResultBuilder turns keyed entities into results for one category.
type ResultBuilder[T any] struct {
	Category domain.Category
	Labels   Labels[T]
	Policy   SeverityPolicy
}

func (b ResultBuilder[T]) base(key string, item T) domain.ComparisonResult {
	r := domain.ComparisonResult{Category: b.Category}
	if b.Labels.ItemName != nil {
		r.ItemName = b.Labels.ItemName(key, item)
	}
	if b.Labels.ItemIdentifier != nil {
		r.ItemIdentifier = b.Labels.ItemIdentifier(key, item)
	}
	return r
}

func (b ResultBuilder[T]) subject(item T) string {
	if b.Labels.Subject == nil {
		return ""
	}
	return b.Labels.Subject(item)
}

// SourceOnly is an item missing in the target.
func (b ResultBuilder[T]) SourceOnly(key string, item T) domain.ComparisonResult {
	r := b.base(key, item)
	r.PropertyName = domain.PropertySourceOnly
	r.SourceValue = b.subject(item)
	r.Status = domain.StatusMissingInTarget
	r.Severity = b.Policy.SourceOnly
	return r
}

// TargetOnly is an item missing in the source.
func (b ResultBuilder[T]) TargetOnly(key string, item T) domain.ComparisonResult {
	r := b.base(key, item)
	r.PropertyName = domain.PropertyTargetOnly
	r.TargetValue = b.subject(item)
	r.Status = domain.StatusMissingInSource
	r.Severity = b.Policy.TargetOnly
	return r
}

// Common emits one Mismatch per difference, or a single Match when there are
// none.
func (b ResultBuilder[T]) Common(key string, source T, diffs []compare.Difference) []domain.ComparisonResult {
	if len(diffs) == 0 {
		r := b.base(key, source)
		r.PropertyName = domain.PropertyAllProperties
		r.SourceValue = b.subject(source)
		r.Status = domain.StatusMatch
		r.Severity = domain.SeverityInfo
		return []domain.ComparisonResult{r}
	}

	out := make([]domain.ComparisonResult, 0, len(diffs))
	for _, d := range diffs {
		r := b.base(key, source)
		r.PropertyName = d.Name
		r.SourceValue = d.Source
		r.TargetValue = d.Target
		r.Status = domain.StatusMismatch
		r.Severity = b.Policy.Mismatch
		out = append(out, r)
	}
	return out
}

// BaseExclusions holds the attributes that never take part in a property
// comparison: identifiers, surrogate cross references and audit fields.
func BaseExclusions(extra ...string) compare.Exclusions {
	return compare.NewExclusions(append([]string{
		domain.AttrID,
		domain.AttrGUID,
		domain.AttrModuleID,
		domain.AttrLevelID,
		domain.AttrLayoutID,
		domain.AttrValuesListID,
		domain.AttrParentID,
		domain.AttrRelatedValuesListID,
		domain.AttrUpdatedBy,
		domain.AttrUpdatedDate,
		domain.AttrLastUpdatedBy,
		domain.AttrLastUpdatedDate,
	}, extra...)...)
}
