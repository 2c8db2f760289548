package helper

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
	"github.com/olusolaa/metadata-drift-detector/pkg/canonical"
	"github.com/olusolaa/metadata-drift-detector/pkg/compare"
)

var roleAttrs = []compare.Attribute[domain.Role]{
	compare.Attr(domain.AttrID, func(r domain.Role) string { return canonical.Int(r.ID) }),
	compare.Attr(domain.AttrName, func(r domain.Role) string { return r.Name }),
	compare.Attr("IsSysAdmin", func(r domain.Role) string { return canonical.Bool(r.IsSysAdmin) }),
}

func newRoleComparer() *KeyedComparer[domain.Role] {
	return NewKeyedComparer(
		domain.CategoryRole,
		func(s *domain.Snapshot) []domain.Role { return s.Roles },
		compare.Spec[domain.Role]{
			Key:        compare.CompositeKey(roleAttrs[1:2]),
			Attributes: roleAttrs,
			Excluded:   compare.NewExclusions(domain.AttrID),
		},
		KeyLabels[domain.Role](true),
		SeverityPolicy{SourceOnly: domain.SeverityCritical, TargetOnly: domain.SeverityInfo, Mismatch: domain.SeverityWarning},
	)
}

func TestKeyedComparer_Compare(t *testing.T) {
	source := &domain.Snapshot{Roles: []domain.Role{
		{ID: 1, Name: "Admin", IsSysAdmin: true},
		{ID: 2, Name: "Auditor"},
		{ID: 3, Name: "Viewer"},
	}}
	target := &domain.Snapshot{Roles: []domain.Role{
		{ID: 11, Name: "Admin", IsSysAdmin: false},
		{ID: 12, Name: "Viewer"},
		{ID: 13, Name: "Contributor"},
	}}

	out, err := newRoleComparer().Compare(context.Background(), source, target, domain.DefaultCollectionOptions())
	require.NoError(t, err)

	expected := []domain.ComparisonResult{
		{Category: domain.CategoryRole, ItemName: "Auditor", ItemIdentifier: "Auditor", PropertyName: domain.PropertySourceOnly, Status: domain.StatusMissingInTarget, Severity: domain.SeverityCritical},
		{Category: domain.CategoryRole, ItemName: "Contributor", ItemIdentifier: "Contributor", PropertyName: domain.PropertyTargetOnly, Status: domain.StatusMissingInSource, Severity: domain.SeverityInfo},
		{Category: domain.CategoryRole, ItemName: "Admin", ItemIdentifier: "Admin", PropertyName: "IsSysAdmin", SourceValue: "true", TargetValue: "false", Status: domain.StatusMismatch, Severity: domain.SeverityWarning},
		{Category: domain.CategoryRole, ItemName: "Viewer", ItemIdentifier: "Viewer", PropertyName: domain.PropertyAllProperties, Status: domain.StatusMatch, Severity: domain.SeverityInfo},
	}
	if d := cmp.Diff(expected, out.Results); d != "" {
		t.Errorf("results mismatch (-want +got):\n%s", d)
	}
	assert.Equal(t, domain.CategoryRole, out.Category)
	assert.Empty(t, out.Duplicates)
}

func TestKeyedComparer_Exclude(t *testing.T) {
	source := &domain.Snapshot{Roles: []domain.Role{{Name: "Admin", IsSysAdmin: true}}}
	target := &domain.Snapshot{Roles: []domain.Role{{Name: "Admin"}}}

	base := newRoleComparer()
	relaxed := base.Exclude("IsSysAdmin")

	assert.Same(t, base, base.Exclude())

	out, err := relaxed.Compare(context.Background(), source, target, domain.CollectionOptions{})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, domain.StatusMatch, out.Results[0].Status)

	out, err = base.Compare(context.Background(), source, target, domain.CollectionOptions{})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "IsSysAdmin", out.Results[0].PropertyName)
}

func TestKeyedComparer_Attributes(t *testing.T) {
	assert.Equal(t, []string{domain.AttrID, domain.AttrName, "IsSysAdmin"}, newRoleComparer().Attributes())
}

func TestKeyedComparer_Duplicates(t *testing.T) {
	source := &domain.Snapshot{Roles: []domain.Role{{Name: "Admin"}, {Name: "Admin", IsSysAdmin: true}}}
	target := &domain.Snapshot{Roles: []domain.Role{{Name: "Admin"}}}

	out, err := newRoleComparer().Compare(context.Background(), source, target, domain.CollectionOptions{})
	require.NoError(t, err)

	require.Len(t, out.Results, 1)
	assert.Equal(t, domain.StatusMatch, out.Results[0].Status)
	assert.Equal(t, map[domain.Category]int{domain.CategoryRole: 1}, out.Duplicates)
}

func TestKeyedComparer_Inputs(t *testing.T) {
	c := newRoleComparer()

	t.Run("Nil Snapshot", func(t *testing.T) {
		_, err := c.Compare(context.Background(), nil, &domain.Snapshot{}, domain.CollectionOptions{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeComparisonError))
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.Compare(ctx, &domain.Snapshot{}, &domain.Snapshot{}, domain.CollectionOptions{})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Empty Snapshots", func(t *testing.T) {
		out, err := c.Compare(context.Background(), &domain.Snapshot{}, &domain.Snapshot{}, domain.CollectionOptions{})
		require.NoError(t, err)
		assert.Empty(t, out.Results)
	})
}

func TestResultBuilder_Subject(t *testing.T) {
	b := ResultBuilder[domain.Role]{
		Category: domain.CategoryRole,
		Labels: Labels[domain.Role]{
			ItemName: func(_ string, r domain.Role) string { return "roles" },
			Subject:  func(r domain.Role) string { return r.Name },
		},
		Policy: SeverityPolicy{SourceOnly: domain.SeverityWarning, TargetOnly: domain.SeverityInfo},
	}

	src := b.SourceOnly("k", domain.Role{Name: "Admin"})
	assert.Equal(t, "Admin", src.SourceValue)
	assert.Empty(t, src.TargetValue)
	assert.Empty(t, src.ItemIdentifier)

	tgt := b.TargetOnly("k", domain.Role{Name: "Admin"})
	assert.Equal(t, "Admin", tgt.TargetValue)
	assert.Empty(t, tgt.SourceValue)
}
