package application

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
)

func ptr[T any](v T) *T { return &v }

var (
	_ ports.CategoryComparer = NewModuleComparer()
	_ ports.CategoryComparer = NewFieldComparer()
	_ ports.CategoryComparer = NewLayoutComparer()
	_ ports.CategoryComparer = NewLayoutObjectComparer()
	_ ports.CategoryComparer = NewDDERuleComparer()
	_ ports.CategoryComparer = NewDDEActionComparer()
)

func compareSnapshots(t *testing.T, c ports.CategoryComparer, source, target *domain.Snapshot) domain.CategoryOutcome {
	t.Helper()
	out, err := c.Compare(context.Background(), source, target, domain.DefaultCollectionOptions())
	require.NoError(t, err)
	return out
}

func TestModuleComparer_SourceOnly(t *testing.T) {
	source := &domain.Snapshot{Modules: []domain.Module{{ID: 1, Name: "Risk Register"}}}
	target := &domain.Snapshot{}

	out := compareSnapshots(t, NewModuleComparer(), source, target)

	require.Len(t, out.Results, 1)
	r := out.Results[0]
	assert.Equal(t, domain.CategoryModule, r.Category)
	assert.Equal(t, domain.StatusMissingInTarget, r.Status)
	assert.Equal(t, domain.SeverityWarning, r.Severity)
	assert.Equal(t, "Risk Register", r.ItemName)
	assert.Equal(t, domain.PropertySourceOnly, r.PropertyName)
}

func TestModuleComparer_IgnoresSurrogatesAndAudit(t *testing.T) {
	source := &domain.Snapshot{Modules: []domain.Module{{
		ID: 1, Name: "Policies", GUID: ptr("a"), UpdatedBy: ptr("alice"),
	}}}
	target := &domain.Snapshot{Modules: []domain.Module{{
		ID: 2, Name: "Policies", GUID: ptr("b"), UpdatedBy: ptr("bob"),
	}}}

	out := compareSnapshots(t, NewModuleComparer(), source, target)

	require.Len(t, out.Results, 1)
	assert.Equal(t, domain.StatusMatch, out.Results[0].Status)
}

func TestFieldComparer_FormulaMismatch(t *testing.T) {
	source := &domain.Snapshot{Fields: []domain.Field{{
		ID: 10, Module: ptr("Risk Register"), Level: ptr("Risk Assessment"), Name: "Risk Score",
		LevelID: 3, Formula: ptr("Impact * Likelihood"),
	}}}
	target := &domain.Snapshot{Fields: []domain.Field{{
		ID: 77, Module: ptr("Risk Register"), Level: ptr("Risk Assessment"), Name: "Risk Score",
		LevelID: 9, Formula: ptr("(Impact * Likelihood) + 1"),
	}}}

	out := compareSnapshots(t, NewFieldComparer(), source, target)

	expected := []domain.ComparisonResult{{
		Category:       domain.CategoryField,
		ItemName:       "Risk Register",
		ItemIdentifier: "Risk Assessment",
		PropertyName:   "Formula",
		SourceValue:    "Impact * Likelihood",
		TargetValue:    "(Impact * Likelihood) + 1",
		Status:         domain.StatusMismatch,
		Severity:       domain.SeverityWarning,
	}}
	if d := cmp.Diff(expected, out.Results); d != "" {
		t.Errorf("field results mismatch (-want +got):\n%s", d)
	}
}

func TestFieldComparer_PresenceRows(t *testing.T) {
	source := &domain.Snapshot{Fields: []domain.Field{
		{Module: ptr("Incidents"), Level: ptr("Incident"), Name: "Dev Only Field"},
		{Module: ptr("Incidents"), Level: ptr("Incident"), Name: "Status"},
		{Module: ptr("Incidents"), Level: ptr("Incident"), Name: "Filler", TypeLabel: ptr(domain.FieldTypePlaceholder)},
		{Module: ptr("Incidents"), Name: "No Level"},
	}}
	target := &domain.Snapshot{Fields: []domain.Field{
		{Module: ptr("Incidents"), Level: ptr("Incident"), Name: "Legacy Field"},
		{Module: ptr("Incidents"), Level: ptr("Incident"), Name: "Status"},
	}}

	out := compareSnapshots(t, NewFieldComparer(), source, target)

	expected := []domain.ComparisonResult{
		{Category: domain.CategoryField, ItemName: "Incidents", ItemIdentifier: "Incident", PropertyName: domain.PropertySourceOnly, SourceValue: "Dev Only Field", Status: domain.StatusMissingInTarget, Severity: domain.SeverityCritical},
		{Category: domain.CategoryField, ItemName: "Incidents", ItemIdentifier: "Incident", PropertyName: domain.PropertyTargetOnly, TargetValue: "Legacy Field", Status: domain.StatusMissingInSource, Severity: domain.SeverityInfo},
		{Category: domain.CategoryField, ItemName: "Incidents", ItemIdentifier: "Incident", PropertyName: domain.PropertyAllProperties, SourceValue: "Status", Status: domain.StatusMatch, Severity: domain.SeverityInfo},
	}
	if d := cmp.Diff(expected, out.Results); d != "" {
		t.Errorf("field results mismatch (-want +got):\n%s", d)
	}
}

func TestFieldComparer_IgnoreOverride(t *testing.T) {
	source := &domain.Snapshot{Fields: []domain.Field{{Module: ptr("M"), Level: ptr("L"), Name: "F", HelpText: ptr("old")}}}
	target := &domain.Snapshot{Fields: []domain.Field{{Module: ptr("M"), Level: ptr("L"), Name: "F", HelpText: ptr("new")}}}

	assert.Equal(t, domain.StatusMismatch, compareSnapshots(t, NewFieldComparer(), source, target).Results[0].Status)
	assert.Equal(t, domain.StatusMatch, compareSnapshots(t, NewFieldComparer("HelpText"), source, target).Results[0].Status)
}

func TestFieldComparer_Symmetry(t *testing.T) {
	a := &domain.Snapshot{Fields: []domain.Field{
		{Module: ptr("M"), Level: ptr("L"), Name: "A", IsRequired: true},
		{Module: ptr("M"), Level: ptr("L"), Name: "B"},
	}}
	b := &domain.Snapshot{Fields: []domain.Field{
		{Module: ptr("M"), Level: ptr("L"), Name: "A"},
		{Module: ptr("M"), Level: ptr("L"), Name: "C"},
	}}

	ab := compareSnapshots(t, NewFieldComparer(), a, b)
	ba := compareSnapshots(t, NewFieldComparer(), b, a)

	count := func(results []domain.ComparisonResult, s domain.ComparisonStatus) int {
		n := 0
		for _, r := range results {
			if r.Status == s {
				n++
			}
		}
		return n
	}
	assert.Equal(t, count(ab.Results, domain.StatusMissingInTarget), count(ba.Results, domain.StatusMissingInSource))
	assert.Equal(t, count(ab.Results, domain.StatusMissingInSource), count(ba.Results, domain.StatusMissingInTarget))
	assert.Equal(t, count(ab.Results, domain.StatusMismatch), count(ba.Results, domain.StatusMismatch))
}

func TestLayoutComparer(t *testing.T) {
	row := func(field string, active bool) domain.Layout {
		return domain.Layout{
			Module:        ptr("Risk Register"),
			Level:         ptr("Risk"),
			LayoutName:    ptr("Default"),
			LayoutTab:     ptr("General"),
			LayoutSection: ptr("Details"),
			LayoutField:   ptr(field),
			IsActive:      active,
		}
	}
	placeholder := row("Spacer", true)
	placeholder.LayoutType = ptr(domain.LayoutTypePlaceholder)
	available := row("Unplaced", true)
	available.LayoutTab = ptr(domain.LayoutTabAvailable)

	source := &domain.Snapshot{Layouts: []domain.Layout{row("Title", true), row("Owner", true), placeholder, available}}
	target := &domain.Snapshot{Layouts: []domain.Layout{row("Title", false), {Module: ptr("Risk Register")}}}

	out := compareSnapshots(t, NewLayoutComparer(), source, target)

	placement := "Risk > Default > General > Details"
	expected := []domain.ComparisonResult{
		{Category: domain.CategoryLayout, ItemName: "Risk Register", ItemIdentifier: placement, PropertyName: domain.PropertySourceOnly, SourceValue: "Owner", Status: domain.StatusMissingInTarget, Severity: domain.SeverityWarning},
		{Category: domain.CategoryLayout, ItemName: "Risk Register", ItemIdentifier: " >  >  > ", PropertyName: domain.PropertyTargetOnly, Status: domain.StatusMissingInSource, Severity: domain.SeverityInfo},
		{Category: domain.CategoryLayout, ItemName: "Risk Register", ItemIdentifier: placement, PropertyName: "IsActive", SourceValue: "true", TargetValue: "false", Status: domain.StatusMismatch, Severity: domain.SeverityWarning},
	}
	if d := cmp.Diff(expected, out.Results); d != "" {
		t.Errorf("layout results mismatch (-want +got):\n%s", d)
	}
}

func TestLayoutObjectComparer(t *testing.T) {
	source := &domain.Snapshot{LayoutObjects: []domain.LayoutObject{
		{ID: 1, Name: "Header", LayoutID: 5, ObjectType: ptr("Text"), Depth: 1},
		{ID: 2, Name: "Chart"},
	}}
	target := &domain.Snapshot{LayoutObjects: []domain.LayoutObject{
		{ID: 9, Name: "Header", LayoutID: 8, ObjectType: ptr("Text"), Depth: 2},
		{ID: 3, Name: "Chart"},
	}}

	out := compareSnapshots(t, NewLayoutObjectComparer(), source, target)

	require.Len(t, out.Results, 2)
	assert.Equal(t, "Chart|", out.Results[0].ItemName)
	assert.Equal(t, domain.StatusMatch, out.Results[0].Status)
	assert.Equal(t, "Header|Text", out.Results[1].ItemName)
	assert.Equal(t, "Depth", out.Results[1].PropertyName)
	assert.Equal(t, domain.SeverityInfo, out.Results[1].Severity)
}

func TestDDEComparers(t *testing.T) {
	source := &domain.Snapshot{
		DDERules:   []domain.DDERule{{ID: 1, Name: "Escalate", LayoutID: 1, ExecutionOrder: 1}},
		DDEActions: []domain.DDEAction{{ID: 1, Name: "Hide Section", TypeLabel: ptr("Apply Conditional Layout")}},
	}
	target := &domain.Snapshot{
		DDERules:   []domain.DDERule{{ID: 2, Name: "Escalate", LayoutID: 4, ExecutionOrder: 2}},
		DDEActions: []domain.DDEAction{{ID: 2, Name: "Hide Section", TypeLabel: ptr("Apply Conditional Layout")}},
	}

	rules := compareSnapshots(t, NewDDERuleComparer(), source, target)
	require.Len(t, rules.Results, 1)
	assert.Equal(t, "ExecutionOrder", rules.Results[0].PropertyName)
	assert.Equal(t, domain.SeverityWarning, rules.Results[0].Severity)

	actions := compareSnapshots(t, NewDDEActionComparer(), source, target)
	require.Len(t, actions.Results, 1)
	assert.Equal(t, domain.StatusMatch, actions.Results[0].Status)
}

func TestComparers_Reflexive(t *testing.T) {
	snap := &domain.Snapshot{
		Modules: []domain.Module{{Name: "A", Alias: ptr("a")}},
		Fields:  []domain.Field{{Module: ptr("A"), Level: ptr("L"), Name: "F", Formula: ptr("1+1")}},
		Layouts: []domain.Layout{{Module: ptr("A"), LayoutField: ptr("F")}},
	}

	for _, c := range []ports.CategoryComparer{NewModuleComparer(), NewFieldComparer(), NewLayoutComparer()} {
		out := compareSnapshots(t, c, snap, snap)
		for _, r := range out.Results {
			assert.Equal(t, domain.StatusMatch, r.Status, "%s %s", r.Category, r.ItemName)
		}
	}
}
