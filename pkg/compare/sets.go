package compare

// SetDiff is the membership difference of two indexes. All key slices are
// sorted.
type SetDiff struct {
	// SourceOnly keys exist only in the source: missing in target.
	SourceOnly []string
	// TargetOnly keys exist only in the target: missing in source.
	TargetOnly []string
	// Common keys exist on both sides.
	Common []string
}

// DiffSets partitions the keys of two indexes.
func DiffSets[T any](source, target *Index[T]) SetDiff {
	var d SetDiff
	for _, k := range source.SortedKeys() {
		if target.Has(k) {
			d.Common = append(d.Common, k)
		} else {
			d.SourceOnly = append(d.SourceOnly, k)
		}
	}
	for _, k := range target.SortedKeys() {
		if !source.Has(k) {
			d.TargetOnly = append(d.TargetOnly, k)
		}
	}
	return d
}
