package domain

import "time"

// Entities are produced by the collection layer and treated as immutable
// value objects for the duration of a comparison run. Nullable attributes
// are pointers.

type Module struct {
	ID                int        `json:"id" yaml:"id"`
	Name              string     `json:"name" yaml:"name"`
	GUID              *string    `json:"guid,omitempty" yaml:"guid,omitempty"`
	Alias             *string    `json:"alias,omitempty" yaml:"alias,omitempty"`
	Type              *string    `json:"type,omitempty" yaml:"type,omitempty"`
	StatusLabel       *string    `json:"statusLabel,omitempty" yaml:"statusLabel,omitempty"`
	TargetApplication *string    `json:"targetApplication,omitempty" yaml:"targetApplication,omitempty"`
	IsLeveled         bool       `json:"isLeveled" yaml:"isLeveled"`
	IsSystem          bool       `json:"isSystem" yaml:"isSystem"`
	UpdatedBy         *string    `json:"updatedBy,omitempty" yaml:"updatedBy,omitempty"`
	UpdatedDate       *time.Time `json:"updatedDate,omitempty" yaml:"updatedDate,omitempty"`
}

type Field struct {
	ID                  int     `json:"id" yaml:"id"`
	Name                string  `json:"name" yaml:"name"`
	Module              *string `json:"module,omitempty" yaml:"module,omitempty"`
	Level               *string `json:"level,omitempty" yaml:"level,omitempty"`
	GUID                *string `json:"guid,omitempty" yaml:"guid,omitempty"`
	Alias               *string `json:"alias,omitempty" yaml:"alias,omitempty"`
	LevelID             int     `json:"levelId" yaml:"levelId"`
	TypeLabel           *string `json:"typeLabel,omitempty" yaml:"typeLabel,omitempty"`
	Access              *string `json:"access,omitempty" yaml:"access,omitempty"`
	IsActive            bool    `json:"isActive" yaml:"isActive"`
	IsRequired          bool    `json:"isRequired" yaml:"isRequired"`
	IsCalculated        bool    `json:"isCalculated" yaml:"isCalculated"`
	Formula             *string `json:"formula,omitempty" yaml:"formula,omitempty"`
	RelatedValuesListID *int    `json:"relatedValuesListId,omitempty" yaml:"relatedValuesListId,omitempty"`
	HelpText            *string `json:"helpText,omitempty" yaml:"helpText,omitempty"`
}

type ValuesList struct {
	ID                  int               `json:"id" yaml:"id"`
	Name                string            `json:"name" yaml:"name"`
	GUID                *string           `json:"guid,omitempty" yaml:"guid,omitempty"`
	Alias               *string           `json:"alias,omitempty" yaml:"alias,omitempty"`
	LevelID             int               `json:"levelId" yaml:"levelId"`
	RelatedValuesListID *int              `json:"relatedValuesListId,omitempty" yaml:"relatedValuesListId,omitempty"`
	IsActive            bool              `json:"isActive" yaml:"isActive"`
	Values              []ValuesListValue `json:"values,omitempty" yaml:"values,omitempty"`
}

// ValuesListValue is one node of a hierarchical values list.
type ValuesListValue struct {
	ID           int               `json:"id" yaml:"id"`
	Name         string            `json:"name" yaml:"name"`
	ValuesListID int               `json:"valuesListId" yaml:"valuesListId"`
	ParentID     *int              `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	SortOrder    int               `json:"sortOrder" yaml:"sortOrder"`
	IsActive     bool              `json:"isActive" yaml:"isActive"`
	IsDefault    bool              `json:"isDefault" yaml:"isDefault"`
	Children     []ValuesListValue `json:"children,omitempty" yaml:"children,omitempty"`
}

type Layout struct {
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Module        *string `json:"module,omitempty" yaml:"module,omitempty"`
	Level         *string `json:"level,omitempty" yaml:"level,omitempty"`
	LayoutName    *string `json:"layoutName,omitempty" yaml:"layoutName,omitempty"`
	LayoutTab     *string `json:"layoutTab,omitempty" yaml:"layoutTab,omitempty"`
	LayoutSection *string `json:"layoutSection,omitempty" yaml:"layoutSection,omitempty"`
	LayoutField   *string `json:"layoutField,omitempty" yaml:"layoutField,omitempty"`
	LayoutType    *string `json:"layoutType,omitempty" yaml:"layoutType,omitempty"`
	GUID          *string `json:"guid,omitempty" yaml:"guid,omitempty"`
	LevelID       int     `json:"levelId" yaml:"levelId"`
	IsActive      bool    `json:"isActive" yaml:"isActive"`
	IsDefault     bool    `json:"isDefault" yaml:"isDefault"`
}

type LayoutObject struct {
	ID         int     `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	LayoutID   int     `json:"layoutId" yaml:"layoutId"`
	ObjectType *string `json:"objectType,omitempty" yaml:"objectType,omitempty"`
	Depth      int     `json:"depth" yaml:"depth"`
}

type DDERule struct {
	ID             int     `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name"`
	GUID           *string `json:"guid,omitempty" yaml:"guid,omitempty"`
	LayoutID       int     `json:"layoutId" yaml:"layoutId"`
	IsActive       bool    `json:"isActive" yaml:"isActive"`
	ExecutionOrder int     `json:"executionOrder" yaml:"executionOrder"`
}

type DDEAction struct {
	ID        int     `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	GUID      *string `json:"guid,omitempty" yaml:"guid,omitempty"`
	LayoutID  int     `json:"layoutId" yaml:"layoutId"`
	IsActive  bool    `json:"isActive" yaml:"isActive"`
	TypeLabel *string `json:"typeLabel,omitempty" yaml:"typeLabel,omitempty"`
}

type Report struct {
	ID                            int        `json:"id" yaml:"id"`
	Name                          string     `json:"name" yaml:"name"`
	ModuleName                    *string    `json:"moduleName,omitempty" yaml:"moduleName,omitempty"`
	ReportTypeDisplayColumnString *string    `json:"reportTypeDisplayColumnString,omitempty" yaml:"reportTypeDisplayColumnString,omitempty"`
	LastUpdatedBy                 *string    `json:"lastUpdatedBy,omitempty" yaml:"lastUpdatedBy,omitempty"`
	LastUpdatedDate               *time.Time `json:"lastUpdatedDate,omitempty" yaml:"lastUpdatedDate,omitempty"`
}

type Dashboard struct {
	ID       int     `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Alias    *string `json:"alias,omitempty" yaml:"alias,omitempty"`
	IsActive bool    `json:"isActive" yaml:"isActive"`
	IsSystem bool    `json:"isSystem" yaml:"isSystem"`
}

type Workspace struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	IsActive bool   `json:"isActive" yaml:"isActive"`
}

type IView struct {
	ID              int     `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	GUID            *string `json:"guid,omitempty" yaml:"guid,omitempty"`
	IViewFolderName *string `json:"iViewFolderName,omitempty" yaml:"iViewFolderName,omitempty"`
	TypeString      *string `json:"typeString,omitempty" yaml:"typeString,omitempty"`
	IsActive        bool    `json:"isActive" yaml:"isActive"`
}

type Role struct {
	ID         int     `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	GUID       *string `json:"guid,omitempty" yaml:"guid,omitempty"`
	Alias      *string `json:"alias,omitempty" yaml:"alias,omitempty"`
	IsSysAdmin bool    `json:"isSysAdmin" yaml:"isSysAdmin"`
}

type SecurityParameter struct {
	ID    int     `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
}

type Notification struct {
	ID              int     `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	ApplicationName *string `json:"applicationName,omitempty" yaml:"applicationName,omitempty"`
	Active          bool    `json:"active" yaml:"active"`
	TypeDisplayText *string `json:"typeDisplayText,omitempty" yaml:"typeDisplayText,omitempty"`
}

type DataFeed struct {
	ID       int     `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	GUID     *string `json:"guid,omitempty" yaml:"guid,omitempty"`
	IsActive bool    `json:"isActive" yaml:"isActive"`
	Target   *string `json:"target,omitempty" yaml:"target,omitempty"`
}

type Schedule struct {
	ID         int     `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	GUID       *string `json:"guid,omitempty" yaml:"guid,omitempty"`
	ModuleName *string `json:"moduleName,omitempty" yaml:"moduleName,omitempty"`
	IsActive   bool    `json:"isActive" yaml:"isActive"`
	Frequency  *string `json:"frequency,omitempty" yaml:"frequency,omitempty"`
}
