// Package access compares security metadata.
package access

import (
	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/helper"
	"github.com/olusolaa/metadata-drift-detector/pkg/canonical"
	"github.com/olusolaa/metadata-drift-detector/pkg/compare"
)

var roleAttributes = []compare.Attribute[domain.Role]{
	compare.Attr(domain.AttrID, func(r domain.Role) string { return canonical.Int(r.ID) }),
	compare.Attr(domain.AttrName, func(r domain.Role) string { return r.Name }),
	compare.Attr(domain.AttrGUID, func(r domain.Role) string { return canonical.OptionalString(r.GUID) }),
	compare.Attr(domain.AttrAlias, func(r domain.Role) string { return canonical.OptionalString(r.Alias) }),
	compare.Attr("IsSysAdmin", func(r domain.Role) string { return canonical.Bool(r.IsSysAdmin) }),
}

// NewRoleComparer reports a role missing from the target as critical.
func NewRoleComparer(ignore ...string) *helper.KeyedComparer[domain.Role] {
	return helper.NewKeyedComparer(
		domain.CategoryRole,
		func(s *domain.Snapshot) []domain.Role { return s.Roles },
		compare.Spec[domain.Role]{
			Key:        compare.CompositeKey(roleAttributes[1:2]),
			Attributes: roleAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.Role](true),
		helper.SeverityPolicy{
			SourceOnly: domain.SeverityCritical,
			TargetOnly: domain.SeverityInfo,
			Mismatch:   domain.SeverityWarning,
		},
	)
}

var securityParameterAttributes = []compare.Attribute[domain.SecurityParameter]{
	compare.Attr(domain.AttrID, func(p domain.SecurityParameter) string { return canonical.Int(p.ID) }),
	compare.Attr(domain.AttrName, func(p domain.SecurityParameter) string { return p.Name }),
	compare.Attr("Value", func(p domain.SecurityParameter) string { return canonical.OptionalString(p.Value) }),
}

func NewSecurityParameterComparer(ignore ...string) *helper.KeyedComparer[domain.SecurityParameter] {
	return helper.NewKeyedComparer(
		domain.CategorySecurityParameter,
		func(s *domain.Snapshot) []domain.SecurityParameter { return s.SecurityParameters },
		compare.Spec[domain.SecurityParameter]{
			Key:        compare.CompositeKey(securityParameterAttributes[1:2]),
			Attributes: securityParameterAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.SecurityParameter](true),
		helper.SeverityPolicy{
			SourceOnly: domain.SeverityWarning,
			TargetOnly: domain.SeverityInfo,
			Mismatch:   domain.SeverityWarning,
		},
	)
}
