package application

import (
	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/helper"
	"github.com/olusolaa/metadata-drift-detector/pkg/canonical"
	"github.com/olusolaa/metadata-drift-detector/pkg/compare"
)

var moduleAttributes = []compare.Attribute[domain.Module]{
	compare.Attr(domain.AttrID, func(m domain.Module) string { return canonical.Int(m.ID) }),
	compare.Attr(domain.AttrName, func(m domain.Module) string { return m.Name }),
	compare.Attr(domain.AttrGUID, func(m domain.Module) string { return canonical.OptionalString(m.GUID) }),
	compare.Attr(domain.AttrAlias, func(m domain.Module) string { return canonical.OptionalString(m.Alias) }),
	compare.Attr("Type", func(m domain.Module) string { return canonical.OptionalString(m.Type) }),
	compare.Attr("StatusLabel", func(m domain.Module) string { return canonical.OptionalString(m.StatusLabel) }),
	compare.Attr("TargetApplication", func(m domain.Module) string { return canonical.OptionalString(m.TargetApplication) }),
	compare.Attr("IsLeveled", func(m domain.Module) string { return canonical.Bool(m.IsLeveled) }),
	compare.Attr("IsSystem", func(m domain.Module) string { return canonical.Bool(m.IsSystem) }),
	compare.Attr(domain.AttrUpdatedBy, func(m domain.Module) string { return canonical.OptionalString(m.UpdatedBy) }),
	compare.Attr(domain.AttrUpdatedDate, func(m domain.Module) string { return canonical.Format(m.UpdatedDate) }),
}

// NewModuleComparer compares applications and questionnaires by name.
func NewModuleComparer(ignore ...string) *helper.KeyedComparer[domain.Module] {
	return helper.NewKeyedComparer(
		domain.CategoryModule,
		func(s *domain.Snapshot) []domain.Module { return s.Modules },
		compare.Spec[domain.Module]{
			Key:        compare.CompositeKey(moduleAttributes[1:2]),
			Attributes: moduleAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.Module](true),
		helper.SeverityPolicy{
			SourceOnly: domain.SeverityWarning,
			TargetOnly: domain.SeverityInfo,
			Mismatch:   domain.SeverityWarning,
		},
	)
}
