package application

import (
	"strings"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/helper"
	"github.com/olusolaa/metadata-drift-detector/pkg/canonical"
	"github.com/olusolaa/metadata-drift-detector/pkg/compare"
)

var (
	layoutModule  = compare.Attr("Module", func(l domain.Layout) string { return canonical.OptionalString(l.Module) })
	layoutLevel   = compare.Attr("Level", func(l domain.Layout) string { return canonical.OptionalString(l.Level) })
	layoutName    = compare.Attr("LayoutName", func(l domain.Layout) string { return canonical.OptionalString(l.LayoutName) })
	layoutTab     = compare.Attr("LayoutTab", func(l domain.Layout) string { return canonical.OptionalString(l.LayoutTab) })
	layoutSection = compare.Attr("LayoutSection", func(l domain.Layout) string { return canonical.OptionalString(l.LayoutSection) })
	layoutField   = compare.Attr("LayoutField", func(l domain.Layout) string { return canonical.OptionalString(l.LayoutField) })
)

var layoutAttributes = []compare.Attribute[domain.Layout]{
	compare.Attr(domain.AttrID, func(l domain.Layout) string { return canonical.Int(l.ID) }),
	compare.Attr(domain.AttrName, func(l domain.Layout) string { return l.Name }),
	layoutModule,
	layoutLevel,
	layoutName,
	layoutTab,
	layoutSection,
	layoutField,
	compare.Attr("LayoutType", func(l domain.Layout) string { return canonical.OptionalString(l.LayoutType) }),
	compare.Attr(domain.AttrGUID, func(l domain.Layout) string { return canonical.OptionalString(l.GUID) }),
	compare.Attr(domain.AttrLevelID, func(l domain.Layout) string { return canonical.Int(l.LevelID) }),
	compare.Attr("IsActive", func(l domain.Layout) string { return canonical.Bool(l.IsActive) }),
	compare.Attr("IsDefault", func(l domain.Layout) string { return canonical.Bool(l.IsDefault) }),
}

// layoutPlacement is the breadcrumb of a layout row below its module.
func layoutPlacement(l domain.Layout) string {
	return strings.Join([]string{
		layoutLevel.Value(l),
		layoutName.Value(l),
		layoutTab.Value(l),
		layoutSection.Value(l),
	}, compare.PathSeparator)
}

func isFunctionalLayout(l domain.Layout) bool {
	return canonical.OptionalString(l.LayoutType) != domain.LayoutTypePlaceholder &&
		canonical.OptionalString(l.LayoutTab) != domain.LayoutTabAvailable
}

// NewLayoutComparer compares flattened layout rows. Only the module is
// required in the key; the remaining placement parts may be empty.
func NewLayoutComparer(ignore ...string) *helper.KeyedComparer[domain.Layout] {
	key := compare.CompositeKey(
		[]compare.Attribute[domain.Layout]{layoutModule, layoutLevel, layoutName, layoutTab, layoutSection, layoutField},
		layoutModule.Name,
	)
	return helper.NewKeyedComparer(
		domain.CategoryLayout,
		func(s *domain.Snapshot) []domain.Layout { return s.Layouts },
		compare.Spec[domain.Layout]{
			Key:        key,
			Attributes: layoutAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
			Keep:       isFunctionalLayout,
		},
		helper.Labels[domain.Layout]{
			ItemName:       func(_ string, l domain.Layout) string { return layoutModule.Value(l) },
			ItemIdentifier: func(_ string, l domain.Layout) string { return layoutPlacement(l) },
			Subject:        func(l domain.Layout) string { return layoutField.Value(l) },
		},
		helper.SeverityPolicy{
			SourceOnly: domain.SeverityWarning,
			TargetOnly: domain.SeverityInfo,
			Mismatch:   domain.SeverityWarning,
		},
	)
}
