package application

import (
	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/helper"
	"github.com/olusolaa/metadata-drift-detector/pkg/canonical"
	"github.com/olusolaa/metadata-drift-detector/pkg/compare"
)

// Data driven events: rules decide when a layout reacts, actions decide how.

var ddeRuleAttributes = []compare.Attribute[domain.DDERule]{
	compare.Attr(domain.AttrID, func(r domain.DDERule) string { return canonical.Int(r.ID) }),
	compare.Attr(domain.AttrName, func(r domain.DDERule) string { return r.Name }),
	compare.Attr(domain.AttrGUID, func(r domain.DDERule) string { return canonical.OptionalString(r.GUID) }),
	compare.Attr(domain.AttrLayoutID, func(r domain.DDERule) string { return canonical.Int(r.LayoutID) }),
	compare.Attr("IsActive", func(r domain.DDERule) string { return canonical.Bool(r.IsActive) }),
	compare.Attr("ExecutionOrder", func(r domain.DDERule) string { return canonical.Int(r.ExecutionOrder) }),
}

var ddeActionAttributes = []compare.Attribute[domain.DDEAction]{
	compare.Attr(domain.AttrID, func(a domain.DDEAction) string { return canonical.Int(a.ID) }),
	compare.Attr(domain.AttrName, func(a domain.DDEAction) string { return a.Name }),
	compare.Attr(domain.AttrGUID, func(a domain.DDEAction) string { return canonical.OptionalString(a.GUID) }),
	compare.Attr(domain.AttrLayoutID, func(a domain.DDEAction) string { return canonical.Int(a.LayoutID) }),
	compare.Attr("IsActive", func(a domain.DDEAction) string { return canonical.Bool(a.IsActive) }),
	compare.Attr("TypeLabel", func(a domain.DDEAction) string { return canonical.OptionalString(a.TypeLabel) }),
}

var ddePolicy = helper.SeverityPolicy{
	SourceOnly: domain.SeverityWarning,
	TargetOnly: domain.SeverityInfo,
	Mismatch:   domain.SeverityWarning,
}

func NewDDERuleComparer(ignore ...string) *helper.KeyedComparer[domain.DDERule] {
	return helper.NewKeyedComparer(
		domain.CategoryDDERule,
		func(s *domain.Snapshot) []domain.DDERule { return s.DDERules },
		compare.Spec[domain.DDERule]{
			Key:        compare.CompositeKey(ddeRuleAttributes[1:2]),
			Attributes: ddeRuleAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.DDERule](true),
		ddePolicy,
	)
}

func NewDDEActionComparer(ignore ...string) *helper.KeyedComparer[domain.DDEAction] {
	return helper.NewKeyedComparer(
		domain.CategoryDDEAction,
		func(s *domain.Snapshot) []domain.DDEAction { return s.DDEActions },
		compare.Spec[domain.DDEAction]{
			Key:        compare.CompositeKey(ddeActionAttributes[1:2]),
			Attributes: ddeActionAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.DDEAction](true),
		ddePolicy,
	)
}
