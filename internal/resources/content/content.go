// Package content compares the presentation metadata built on top of
// applications: reports, dashboards, workspaces and iViews.
package content

import (
	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/helper"
	"github.com/olusolaa/metadata-drift-detector/pkg/canonical"
	"github.com/olusolaa/metadata-drift-detector/pkg/compare"
)

var contentPolicy = helper.SeverityPolicy{
	SourceOnly: domain.SeverityWarning,
	TargetOnly: domain.SeverityInfo,
	Mismatch:   domain.SeverityInfo,
}

var reportAttributes = []compare.Attribute[domain.Report]{
	compare.Attr(domain.AttrID, func(r domain.Report) string { return canonical.Int(r.ID) }),
	compare.Attr(domain.AttrName, func(r domain.Report) string { return r.Name }),
	compare.Attr("ModuleName", func(r domain.Report) string { return canonical.OptionalString(r.ModuleName) }),
	compare.Attr("ReportTypeDisplayColumnString", func(r domain.Report) string {
		return canonical.OptionalString(r.ReportTypeDisplayColumnString)
	}),
	compare.Attr(domain.AttrLastUpdatedBy, func(r domain.Report) string { return canonical.OptionalString(r.LastUpdatedBy) }),
	compare.Attr(domain.AttrLastUpdatedDate, func(r domain.Report) string { return canonical.Format(r.LastUpdatedDate) }),
}

func NewReportComparer(ignore ...string) *helper.KeyedComparer[domain.Report] {
	return helper.NewKeyedComparer(
		domain.CategoryReport,
		func(s *domain.Snapshot) []domain.Report { return s.Reports },
		compare.Spec[domain.Report]{
			Key:        compare.CompositeKey(reportAttributes[1:2]),
			Attributes: reportAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.Report](true),
		contentPolicy,
	)
}

var dashboardAttributes = []compare.Attribute[domain.Dashboard]{
	compare.Attr(domain.AttrID, func(d domain.Dashboard) string { return canonical.Int(d.ID) }),
	compare.Attr(domain.AttrName, func(d domain.Dashboard) string { return d.Name }),
	compare.Attr(domain.AttrAlias, func(d domain.Dashboard) string { return canonical.OptionalString(d.Alias) }),
	compare.Attr("IsActive", func(d domain.Dashboard) string { return canonical.Bool(d.IsActive) }),
	compare.Attr("IsSystem", func(d domain.Dashboard) string { return canonical.Bool(d.IsSystem) }),
}

func NewDashboardComparer(ignore ...string) *helper.KeyedComparer[domain.Dashboard] {
	return helper.NewKeyedComparer(
		domain.CategoryDashboard,
		func(s *domain.Snapshot) []domain.Dashboard { return s.Dashboards },
		compare.Spec[domain.Dashboard]{
			Key:        compare.CompositeKey(dashboardAttributes[1:2]),
			Attributes: dashboardAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.Dashboard](true),
		contentPolicy,
	)
}

var workspaceAttributes = []compare.Attribute[domain.Workspace]{
	compare.Attr(domain.AttrID, func(w domain.Workspace) string { return canonical.Int(w.ID) }),
	compare.Attr(domain.AttrName, func(w domain.Workspace) string { return w.Name }),
	compare.Attr("IsActive", func(w domain.Workspace) string { return canonical.Bool(w.IsActive) }),
}

func NewWorkspaceComparer(ignore ...string) *helper.KeyedComparer[domain.Workspace] {
	return helper.NewKeyedComparer(
		domain.CategoryWorkspace,
		func(s *domain.Snapshot) []domain.Workspace { return s.Workspaces },
		compare.Spec[domain.Workspace]{
			Key:        compare.CompositeKey(workspaceAttributes[1:2]),
			Attributes: workspaceAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.Workspace](true),
		contentPolicy,
	)
}

var (
	iViewFolder = compare.Attr("IViewFolderName", func(v domain.IView) string { return canonical.OptionalString(v.IViewFolderName) })
	iViewName   = compare.Attr(domain.AttrName, func(v domain.IView) string { return v.Name })
)

var iViewAttributes = []compare.Attribute[domain.IView]{
	compare.Attr(domain.AttrID, func(v domain.IView) string { return canonical.Int(v.ID) }),
	iViewName,
	compare.Attr(domain.AttrGUID, func(v domain.IView) string { return canonical.OptionalString(v.GUID) }),
	iViewFolder,
	compare.Attr("TypeString", func(v domain.IView) string { return canonical.OptionalString(v.TypeString) }),
	compare.Attr("IsActive", func(v domain.IView) string { return canonical.Bool(v.IsActive) }),
}

// NewIViewComparer keys iViews by folder and name; iViews outside any folder
// share the empty folder.
func NewIViewComparer(ignore ...string) *helper.KeyedComparer[domain.IView] {
	return helper.NewKeyedComparer(
		domain.CategoryIView,
		func(s *domain.Snapshot) []domain.IView { return s.IViews },
		compare.Spec[domain.IView]{
			Key:        compare.CompositeKey([]compare.Attribute[domain.IView]{iViewFolder, iViewName}, iViewName.Name),
			Attributes: iViewAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.IView](true),
		contentPolicy,
	)
}
