package domain

import "strings"

// Category identifies one entity type being compared.
type Category string

const (
	CategoryModule            Category = "Module"
	CategoryField             Category = "Field"
	CategoryValuesList        Category = "ValuesList"
	CategoryValuesListValue   Category = "ValuesListValue"
	CategoryLayout            Category = "Layout"
	CategoryLayoutObject      Category = "LayoutObject"
	CategoryDDERule           Category = "DDERule"
	CategoryDDEAction         Category = "DDEAction"
	CategoryReport            Category = "Report"
	CategoryDashboard         Category = "Dashboard"
	CategoryWorkspace         Category = "Workspace"
	CategoryIView             Category = "IView"
	CategoryRole              Category = "Role"
	CategorySecurityParameter Category = "SecurityParameter"
	CategoryNotification      Category = "Notification"
	CategoryDataFeed          Category = "DataFeed"
	CategorySchedule          Category = "Schedule"
)

var allCategories = []Category{
	CategoryModule,
	CategoryField,
	CategoryValuesList,
	CategoryValuesListValue,
	CategoryLayout,
	CategoryLayoutObject,
	CategoryDDERule,
	CategoryDDEAction,
	CategoryReport,
	CategoryDashboard,
	CategoryWorkspace,
	CategoryIView,
	CategoryRole,
	CategorySecurityParameter,
	CategoryNotification,
	CategoryDataFeed,
	CategorySchedule,
}

// AllCategories returns every category in report order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// SelectableCategories returns the categories that can be switched on or off.
// Values list values are always compared as part of their values list.
func SelectableCategories() []Category {
	out := make([]Category, 0, len(allCategories)-1)
	for _, c := range allCategories {
		if c == CategoryValuesListValue {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(name string) (Category, bool) {
	trimmed := strings.TrimSpace(name)
	for _, c := range allCategories {
		if strings.EqualFold(string(c), trimmed) {
			return c, true
		}
	}
	return "", false
}

func categoryRank(c Category) int {
	for i, known := range allCategories {
		if known == c {
			return i
		}
	}
	return len(allCategories)
}
