package compare

// Spec describes how to compare one entity type.
type Spec[T any] struct {
	Key        KeyFunc[T]
	Attributes []Attribute[T]
	Excluded   Exclusions
	// Keep, when set, drops items for which it returns false before keying.
	Keep func(T) bool
}

// Keyed is an entity with its composite key.
type Keyed[T any] struct {
	Key  string
	Item T
}

// Pair is an entity present on both sides along with its attribute
// differences. An empty Differences means every compared attribute matched.
type Pair[T any] struct {
	Key         string
	Source      T
	Target      T
	Differences []Difference
}

// Result is the full difference of two entity lists. Every slice is ordered
// by key.
type Result[T any] struct {
	SourceOnly []Keyed[T]
	TargetOnly []Keyed[T]
	Common     []Pair[T]

	SourceDuplicates int
	TargetDuplicates int
	SourceSkipped    int
	TargetSkipped    int
}

// Duplicates is the number of items dropped on either side for reusing a key.
func (r Result[T]) Duplicates() int {
	return r.SourceDuplicates + r.TargetDuplicates
}

// Diff indexes both sides, partitions the keys and compares the properties
// of every common key.
func Diff[T any](source, target []T, spec Spec[T]) Result[T] {
	if spec.Keep != nil {
		source = filter(source, spec.Keep)
		target = filter(target, spec.Keep)
	}

	srcIdx := BuildIndex(source, spec.Key)
	tgtIdx := BuildIndex(target, spec.Key)
	sets := DiffSets(srcIdx, tgtIdx)

	res := Result[T]{
		SourceDuplicates: srcIdx.Duplicates(),
		TargetDuplicates: tgtIdx.Duplicates(),
		SourceSkipped:    srcIdx.Skipped(),
		TargetSkipped:    tgtIdx.Skipped(),
	}

	for _, k := range sets.SourceOnly {
		item, _ := srcIdx.Get(k)
		res.SourceOnly = append(res.SourceOnly, Keyed[T]{Key: k, Item: item})
	}
	for _, k := range sets.TargetOnly {
		item, _ := tgtIdx.Get(k)
		res.TargetOnly = append(res.TargetOnly, Keyed[T]{Key: k, Item: item})
	}
	for _, k := range sets.Common {
		s, _ := srcIdx.Get(k)
		t, _ := tgtIdx.Get(k)
		res.Common = append(res.Common, Pair[T]{
			Key:         k,
			Source:      s,
			Target:      t,
			Differences: DiffProperties(s, t, spec.Attributes, spec.Excluded),
		})
	}
	return res
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
