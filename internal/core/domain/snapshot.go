package domain

import "time"

// Snapshot is the full set of collected entities for one environment at one
// point in time.
type Snapshot struct {
	EnvironmentName string    `json:"environmentName" yaml:"environmentName"`
	PlatformVersion string    `json:"platformVersion,omitempty" yaml:"platformVersion,omitempty"`
	CollectedAt     time.Time `json:"collectedAt" yaml:"collectedAt"`

	Modules            []Module            `json:"modules,omitempty" yaml:"modules,omitempty"`
	Fields             []Field             `json:"fields,omitempty" yaml:"fields,omitempty"`
	ValuesLists        []ValuesList        `json:"valuesLists,omitempty" yaml:"valuesLists,omitempty"`
	Layouts            []Layout            `json:"layouts,omitempty" yaml:"layouts,omitempty"`
	LayoutObjects      []LayoutObject      `json:"layoutObjects,omitempty" yaml:"layoutObjects,omitempty"`
	DDERules           []DDERule           `json:"ddeRules,omitempty" yaml:"ddeRules,omitempty"`
	DDEActions         []DDEAction         `json:"ddeActions,omitempty" yaml:"ddeActions,omitempty"`
	Reports            []Report            `json:"reports,omitempty" yaml:"reports,omitempty"`
	Dashboards         []Dashboard         `json:"dashboards,omitempty" yaml:"dashboards,omitempty"`
	Workspaces         []Workspace         `json:"workspaces,omitempty" yaml:"workspaces,omitempty"`
	IViews             []IView             `json:"iViews,omitempty" yaml:"iViews,omitempty"`
	Roles              []Role              `json:"roles,omitempty" yaml:"roles,omitempty"`
	SecurityParameters []SecurityParameter `json:"securityParameters,omitempty" yaml:"securityParameters,omitempty"`
	Notifications      []Notification      `json:"notifications,omitempty" yaml:"notifications,omitempty"`
	DataFeeds          []DataFeed          `json:"dataFeeds,omitempty" yaml:"dataFeeds,omitempty"`
	Schedules          []Schedule          `json:"schedules,omitempty" yaml:"schedules,omitempty"`
}

// Count returns how many entities of the category the snapshot holds.
// Values list values are counted across every tree level.
func (s *Snapshot) Count(c Category) int {
	if s == nil {
		return 0
	}
	switch c {
	case CategoryModule:
		return len(s.Modules)
	case CategoryField:
		return len(s.Fields)
	case CategoryValuesList:
		return len(s.ValuesLists)
	case CategoryValuesListValue:
		n := 0
		for _, vl := range s.ValuesLists {
			n += countValues(vl.Values)
		}
		return n
	case CategoryLayout:
		return len(s.Layouts)
	case CategoryLayoutObject:
		return len(s.LayoutObjects)
	case CategoryDDERule:
		return len(s.DDERules)
	case CategoryDDEAction:
		return len(s.DDEActions)
	case CategoryReport:
		return len(s.Reports)
	case CategoryDashboard:
		return len(s.Dashboards)
	case CategoryWorkspace:
		return len(s.Workspaces)
	case CategoryIView:
		return len(s.IViews)
	case CategoryRole:
		return len(s.Roles)
	case CategorySecurityParameter:
		return len(s.SecurityParameters)
	case CategoryNotification:
		return len(s.Notifications)
	case CategoryDataFeed:
		return len(s.DataFeeds)
	case CategorySchedule:
		return len(s.Schedules)
	}
	return 0
}

func countValues(values []ValuesListValue) int {
	n := len(values)
	for _, v := range values {
		n += countValues(v.Children)
	}
	return n
}
