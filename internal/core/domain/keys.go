package domain

// Attribute names shared by entity attribute lists and exclusion sets.
const (
	// Common
	AttrID    = "Id"
	AttrName  = "Name"
	AttrGUID  = "Guid"
	AttrAlias = "Alias"

	// Surrogate cross references, different in every environment
	AttrModuleID            = "ModuleId"
	AttrLevelID             = "LevelId"
	AttrLayoutID            = "LayoutId"
	AttrValuesListID        = "ValuesListId"
	AttrParentID            = "ParentId"
	AttrRelatedValuesListID = "RelatedValuesListId"

	// Audit
	AttrUpdatedBy       = "UpdatedBy"
	AttrUpdatedDate     = "UpdatedDate"
	AttrLastUpdatedBy   = "LastUpdatedBy"
	AttrLastUpdatedDate = "LastUpdatedDate"

	// Collections, never compared as scalars
	AttrValues   = "Values"
	AttrChildren = "Children"
)

// Sentinel property names on results that do not describe a single attribute.
const (
	PropertySourceOnly    = "Source Only"
	PropertyTargetOnly    = "Target Only"
	PropertyAllProperties = "All Properties"
)

// Placeholder markers the collection layer writes for non-functional rows.
const (
	LayoutTypePlaceholder = "Placeholder"
	LayoutTabAvailable    = "Available"
	FieldTypePlaceholder  = "Placeholder"
)
