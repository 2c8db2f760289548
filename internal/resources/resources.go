// Package resources assembles the category comparers.
package resources

import (
	"slices"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/access"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/application"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/content"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/integration"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/valueslist"
)

// Comparers returns one comparer per selectable category. ignore extends the
// exclusion set of the named category; values list value exclusions are
// applied to the values list comparer.
func Comparers(ignore map[domain.Category][]string) []ports.CategoryComparer {
	return []ports.CategoryComparer{
		application.NewModuleComparer(ignore[domain.CategoryModule]...),
		application.NewFieldComparer(ignore[domain.CategoryField]...),
		valueslist.NewComparer(ignore[domain.CategoryValuesList], ignore[domain.CategoryValuesListValue]),
		application.NewLayoutComparer(ignore[domain.CategoryLayout]...),
		application.NewLayoutObjectComparer(ignore[domain.CategoryLayoutObject]...),
		application.NewDDERuleComparer(ignore[domain.CategoryDDERule]...),
		application.NewDDEActionComparer(ignore[domain.CategoryDDEAction]...),
		content.NewReportComparer(ignore[domain.CategoryReport]...),
		content.NewDashboardComparer(ignore[domain.CategoryDashboard]...),
		content.NewWorkspaceComparer(ignore[domain.CategoryWorkspace]...),
		content.NewIViewComparer(ignore[domain.CategoryIView]...),
		access.NewRoleComparer(ignore[domain.CategoryRole]...),
		access.NewSecurityParameterComparer(ignore[domain.CategorySecurityParameter]...),
		integration.NewNotificationComparer(ignore[domain.CategoryNotification]...),
		integration.NewDataFeedComparer(ignore[domain.CategoryDataFeed]...),
		integration.NewScheduleComparer(ignore[domain.CategorySchedule]...),
	}
}

type attributeLister interface {
	Attributes() []string
}

// UnknownIgnores returns, per category, the ignored names that match no
// attribute of that category's comparer. Names are matched case-sensitively.
func UnknownIgnores(comparers []ports.CategoryComparer, ignore map[domain.Category][]string) map[domain.Category][]string {
	known := make(map[domain.Category][]string, len(comparers)+1)
	for _, c := range comparers {
		switch v := c.(type) {
		case *valueslist.Comparer:
			known[domain.CategoryValuesList] = v.Attributes()
			known[domain.CategoryValuesListValue] = v.ValueAttributes()
		case attributeLister:
			known[c.Category()] = v.Attributes()
		}
	}

	unknown := make(map[domain.Category][]string)
	for category, names := range ignore {
		attrs, ok := known[category]
		if !ok {
			continue
		}
		for _, n := range names {
			if !slices.Contains(attrs, n) {
				unknown[category] = append(unknown[category], n)
			}
		}
	}
	return unknown
}
