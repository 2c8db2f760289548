package domain

// DefaultMaxDepth bounds values list recursion when nothing else is configured.
const DefaultMaxDepth = 10

// CollectionOptions selects which categories take part in a comparison.
// SelectedModuleIDs records the module filter applied upstream during
// collection; the comparison trusts the snapshots to reflect it already.
type CollectionOptions struct {
	SelectedModuleIDs []int
	Include           map[Category]bool
	MaxDepth          int
}

// DefaultCollectionOptions enables every selectable category.
func DefaultCollectionOptions() CollectionOptions {
	include := make(map[Category]bool, len(allCategories))
	for _, c := range SelectableCategories() {
		include[c] = true
	}
	return CollectionOptions{
		Include:  include,
		MaxDepth: DefaultMaxDepth,
	}
}

// Includes reports whether the category is switched on.
func (o CollectionOptions) Includes(c Category) bool {
	return o.Include[c]
}

// EnabledCategories lists the switched-on categories in report order.
func (o CollectionOptions) EnabledCategories() []Category {
	out := make([]Category, 0, len(o.Include))
	for _, c := range SelectableCategories() {
		if o.Include[c] {
			out = append(out, c)
		}
	}
	return out
}
