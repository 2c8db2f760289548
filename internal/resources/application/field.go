package application

import (
	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/helper"
	"github.com/olusolaa/metadata-drift-detector/pkg/canonical"
	"github.com/olusolaa/metadata-drift-detector/pkg/compare"
)

var (
	fieldModule = compare.Attr("Module", func(f domain.Field) string { return canonical.OptionalString(f.Module) })
	fieldLevel  = compare.Attr("Level", func(f domain.Field) string { return canonical.OptionalString(f.Level) })
	fieldName   = compare.Attr(domain.AttrName, func(f domain.Field) string { return f.Name })
)

var fieldAttributes = []compare.Attribute[domain.Field]{
	compare.Attr(domain.AttrID, func(f domain.Field) string { return canonical.Int(f.ID) }),
	fieldName,
	fieldModule,
	fieldLevel,
	compare.Attr(domain.AttrGUID, func(f domain.Field) string { return canonical.OptionalString(f.GUID) }),
	compare.Attr(domain.AttrAlias, func(f domain.Field) string { return canonical.OptionalString(f.Alias) }),
	compare.Attr(domain.AttrLevelID, func(f domain.Field) string { return canonical.Int(f.LevelID) }),
	compare.Attr("TypeLabel", func(f domain.Field) string { return canonical.OptionalString(f.TypeLabel) }),
	compare.Attr("Access", func(f domain.Field) string { return canonical.OptionalString(f.Access) }),
	compare.Attr("IsActive", func(f domain.Field) string { return canonical.Bool(f.IsActive) }),
	compare.Attr("IsRequired", func(f domain.Field) string { return canonical.Bool(f.IsRequired) }),
	compare.Attr("IsCalculated", func(f domain.Field) string { return canonical.Bool(f.IsCalculated) }),
	compare.Attr("Formula", func(f domain.Field) string { return canonical.OptionalString(f.Formula) }),
	compare.Attr(domain.AttrRelatedValuesListID, func(f domain.Field) string { return canonical.Format(f.RelatedValuesListID) }),
	compare.Attr("HelpText", func(f domain.Field) string { return canonical.OptionalString(f.HelpText) }),
}

// NewFieldComparer compares fields keyed by module, level and name. Rows are
// labelled by module and level and carry the field name as their value.
// Placeholder fields are dropped before keying.
func NewFieldComparer(ignore ...string) *helper.KeyedComparer[domain.Field] {
	return helper.NewKeyedComparer(
		domain.CategoryField,
		func(s *domain.Snapshot) []domain.Field { return s.Fields },
		compare.Spec[domain.Field]{
			Key:        compare.CompositeKey([]compare.Attribute[domain.Field]{fieldModule, fieldLevel, fieldName}),
			Attributes: fieldAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
			Keep: func(f domain.Field) bool {
				return canonical.OptionalString(f.TypeLabel) != domain.FieldTypePlaceholder
			},
		},
		helper.Labels[domain.Field]{
			ItemName:       func(_ string, f domain.Field) string { return fieldModule.Value(f) },
			ItemIdentifier: func(_ string, f domain.Field) string { return fieldLevel.Value(f) },
			Subject:        func(f domain.Field) string { return f.Name },
		},
		helper.SeverityPolicy{
			SourceOnly: domain.SeverityCritical,
			TargetOnly: domain.SeverityInfo,
			Mismatch:   domain.SeverityWarning,
		},
	)
}
