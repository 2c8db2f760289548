package valueslist

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
)

var _ ports.CategoryComparer = (*Comparer)(nil)

func priority(idBase int) domain.ValuesList {
	return domain.ValuesList{
		ID:   idBase,
		Name: "Priority",
		Values: []domain.ValuesListValue{
			{ID: idBase + 1, Name: "High", ValuesListID: idBase, SortOrder: 1},
			{ID: idBase + 2, Name: "Medium", ValuesListID: idBase, SortOrder: 2},
			{ID: idBase + 3, Name: "Low", ValuesListID: idBase, SortOrder: 3},
		},
	}
}

func run(t *testing.T, c *Comparer, source, target []domain.ValuesList, maxDepth int) domain.CategoryOutcome {
	t.Helper()
	opts := domain.DefaultCollectionOptions()
	opts.MaxDepth = maxDepth
	out, err := c.Compare(context.Background(),
		&domain.Snapshot{ValuesLists: source},
		&domain.Snapshot{ValuesLists: target},
		opts)
	require.NoError(t, err)
	return out
}

func TestComparer_PriorityFlatList(t *testing.T) {
	out := run(t, NewComparer(nil, nil), []domain.ValuesList{priority(100)}, []domain.ValuesList{priority(500)}, domain.DefaultMaxDepth)

	expected := []domain.ComparisonResult{
		{Category: domain.CategoryValuesList, ItemName: "Priority", ItemIdentifier: "Priority", PropertyName: domain.PropertyAllProperties, Status: domain.StatusMatch, Severity: domain.SeverityInfo},
		{Category: domain.CategoryValuesListValue, ItemName: "Priority", ItemIdentifier: "High", PropertyName: domain.PropertyAllProperties, Status: domain.StatusMatch, Severity: domain.SeverityInfo},
		{Category: domain.CategoryValuesListValue, ItemName: "Priority", ItemIdentifier: "Low", PropertyName: domain.PropertyAllProperties, Status: domain.StatusMatch, Severity: domain.SeverityInfo},
		{Category: domain.CategoryValuesListValue, ItemName: "Priority", ItemIdentifier: "Medium", PropertyName: domain.PropertyAllProperties, Status: domain.StatusMatch, Severity: domain.SeverityInfo},
	}
	if d := cmp.Diff(expected, out.Results); d != "" {
		t.Errorf("values list results mismatch (-want +got):\n%s", d)
	}
	assert.Empty(t, out.Duplicates)
}

func TestComparer_NestedValues(t *testing.T) {
	parent := 1
	source := domain.ValuesList{Name: "Region", Values: []domain.ValuesListValue{
		{ID: 1, Name: "Europe", Children: []domain.ValuesListValue{
			{ID: 2, Name: "France", ParentID: &parent, SortOrder: 1},
			{ID: 3, Name: "Spain", ParentID: &parent},
		}},
		{ID: 4, Name: "Antarctica"},
	}}
	otherParent := 90
	target := domain.ValuesList{Name: "Region", Values: []domain.ValuesListValue{
		{ID: 90, Name: "Europe", Children: []domain.ValuesListValue{
			{ID: 91, Name: "France", ParentID: &otherParent, SortOrder: 2},
			{ID: 92, Name: "Italy", ParentID: &otherParent},
		}},
	}}

	out := run(t, NewComparer(nil, nil), []domain.ValuesList{source}, []domain.ValuesList{target}, 10)

	expected := []domain.ComparisonResult{
		{Category: domain.CategoryValuesList, ItemName: "Region", ItemIdentifier: "Region", PropertyName: domain.PropertyAllProperties, Status: domain.StatusMatch, Severity: domain.SeverityInfo},
		{Category: domain.CategoryValuesListValue, ItemName: "Region", ItemIdentifier: "Antarctica", PropertyName: domain.PropertySourceOnly, SourceValue: "Antarctica", Status: domain.StatusMissingInTarget, Severity: domain.SeverityWarning},
		{Category: domain.CategoryValuesListValue, ItemName: "Region", ItemIdentifier: "Europe", PropertyName: domain.PropertyAllProperties, Status: domain.StatusMatch, Severity: domain.SeverityInfo},
		{Category: domain.CategoryValuesListValue, ItemName: "Region > Europe", ItemIdentifier: "Spain", PropertyName: domain.PropertySourceOnly, SourceValue: "Spain", Status: domain.StatusMissingInTarget, Severity: domain.SeverityWarning},
		{Category: domain.CategoryValuesListValue, ItemName: "Region > Europe", ItemIdentifier: "Italy", PropertyName: domain.PropertyTargetOnly, TargetValue: "Italy", Status: domain.StatusMissingInSource, Severity: domain.SeverityInfo},
		{Category: domain.CategoryValuesListValue, ItemName: "Region > Europe", ItemIdentifier: "France", PropertyName: "SortOrder", SourceValue: "1", TargetValue: "2", Status: domain.StatusMismatch, Severity: domain.SeverityInfo},
	}
	if d := cmp.Diff(expected, out.Results); d != "" {
		t.Errorf("values list results mismatch (-want +got):\n%s", d)
	}
}

func TestComparer_DepthBound(t *testing.T) {
	source := []domain.ValuesList{priority(1)}
	target := []domain.ValuesList{priority(1)}
	target[0].Values[0].SortOrder = 9

	t.Run("Zero Depth", func(t *testing.T) {
		out := run(t, NewComparer(nil, nil), source, target, 0)
		require.Len(t, out.Results, 1)
		assert.Equal(t, domain.CategoryValuesList, out.Results[0].Category)
	})

	t.Run("Depth One", func(t *testing.T) {
		out := run(t, NewComparer(nil, nil), source, target, 1)
		require.Len(t, out.Results, 4)
		assert.Equal(t, "SortOrder", out.Results[1].PropertyName)
	})
}

func TestComparer_ListPresenceAndIgnore(t *testing.T) {
	alias := "pri"
	source := []domain.ValuesList{{Name: "Priority", Alias: &alias}, {Name: "Impact"}}
	target := []domain.ValuesList{{Name: "Priority"}, {Name: "Likelihood"}}

	out := run(t, NewComparer(nil, nil), source, target, 10)
	statuses := make([]domain.ComparisonStatus, 0, len(out.Results))
	for _, r := range out.Results {
		statuses = append(statuses, r.Status)
	}
	assert.Equal(t, []domain.ComparisonStatus{
		domain.StatusMissingInTarget,
		domain.StatusMissingInSource,
		domain.StatusMismatch,
	}, statuses)

	relaxed := run(t, NewComparer([]string{domain.AttrAlias}, nil), source, target, 10)
	assert.Equal(t, domain.StatusMatch, relaxed.Results[2].Status)
}

func TestComparer_Duplicates(t *testing.T) {
	source := []domain.ValuesList{
		{Name: "Priority", Values: []domain.ValuesListValue{{Name: "High"}, {Name: "High", SortOrder: 4}}},
		{Name: "Priority", IsActive: true},
	}
	target := []domain.ValuesList{{Name: "Priority", Values: []domain.ValuesListValue{{Name: "High"}}}}

	out := run(t, NewComparer(nil, nil), source, target, 10)

	assert.Equal(t, map[domain.Category]int{
		domain.CategoryValuesList:      1,
		domain.CategoryValuesListValue: 1,
	}, out.Duplicates)
}

func TestComparer_NilSnapshot(t *testing.T) {
	_, err := NewComparer(nil, nil).Compare(context.Background(), nil, nil, domain.CollectionOptions{})
	assert.Error(t, err)
}
