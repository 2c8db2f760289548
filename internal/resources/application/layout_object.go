package application

import (
	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/helper"
	"github.com/olusolaa/metadata-drift-detector/pkg/canonical"
	"github.com/olusolaa/metadata-drift-detector/pkg/compare"
)

var (
	layoutObjectName = compare.Attr(domain.AttrName, func(o domain.LayoutObject) string { return o.Name })
	layoutObjectType = compare.Attr("ObjectType", func(o domain.LayoutObject) string { return canonical.OptionalString(o.ObjectType) })
)

var layoutObjectAttributes = []compare.Attribute[domain.LayoutObject]{
	compare.Attr(domain.AttrID, func(o domain.LayoutObject) string { return canonical.Int(o.ID) }),
	layoutObjectName,
	compare.Attr(domain.AttrLayoutID, func(o domain.LayoutObject) string { return canonical.Int(o.LayoutID) }),
	layoutObjectType,
	compare.Attr("Depth", func(o domain.LayoutObject) string { return canonical.Int(o.Depth) }),
}

func NewLayoutObjectComparer(ignore ...string) *helper.KeyedComparer[domain.LayoutObject] {
	return helper.NewKeyedComparer(
		domain.CategoryLayoutObject,
		func(s *domain.Snapshot) []domain.LayoutObject { return s.LayoutObjects },
		compare.Spec[domain.LayoutObject]{
			Key:        compare.CompositeKey([]compare.Attribute[domain.LayoutObject]{layoutObjectName, layoutObjectType}, layoutObjectName.Name),
			Attributes: layoutObjectAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.LayoutObject](true),
		helper.SeverityPolicy{
			SourceOnly: domain.SeverityWarning,
			TargetOnly: domain.SeverityInfo,
			Mismatch:   domain.SeverityInfo,
		},
	)
}
