package compare

// PathSeparator joins node names into a breadcrumb label.
const PathSeparator = " > "

// TreeSpec describes a self-referential entity type.
type TreeSpec[T any] struct {
	Name       func(T) string
	Children   func(T) []T
	Attributes []Attribute[T]
	Excluded   Exclusions
}

type Outcome int

const (
	OutcomeSourceOnly Outcome = iota
	OutcomeTargetOnly
	OutcomeMatch
	OutcomeMismatch
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSourceOnly:
		return "SourceOnly"
	case OutcomeTargetOnly:
		return "TargetOnly"
	case OutcomeMatch:
		return "Match"
	case OutcomeMismatch:
		return "Mismatch"
	}
	return "Unknown"
}

// TreeDiff is the outcome for one node. Path is the label of the node's
// parent; Depth is 1 for the first level below the root.
type TreeDiff struct {
	Path        string
	Name        string
	Depth       int
	Outcome     Outcome
	Differences []Difference
	Duplicates  int
}

// DiffTree compares two lists of sibling nodes and descends into their
// children while remainingDepth allows. Nodes are matched by name; nodes
// without a name are ignored. For each level the emission order is source
// only, target only, then common nodes each followed by their subtree.
func DiffTree[T any](spec TreeSpec[T], source, target []T, remainingDepth int, parentPath string) []TreeDiff {
	return diffTree(spec, source, target, remainingDepth, parentPath, 1)
}

func diffTree[T any](spec TreeSpec[T], source, target []T, remaining int, path string, depth int) []TreeDiff {
	if remaining <= 0 {
		return nil
	}

	key := KeyFunc[T](spec.Name)
	srcIdx := BuildIndex(source, key)
	tgtIdx := BuildIndex(target, key)
	sets := DiffSets(srcIdx, tgtIdx)
	dups := srcIdx.Duplicates() + tgtIdx.Duplicates()

	var out []TreeDiff
	for _, k := range sets.SourceOnly {
		out = append(out, TreeDiff{Path: path, Name: k, Depth: depth, Outcome: OutcomeSourceOnly})
	}
	for _, k := range sets.TargetOnly {
		out = append(out, TreeDiff{Path: path, Name: k, Depth: depth, Outcome: OutcomeTargetOnly})
	}
	for _, k := range sets.Common {
		s, _ := srcIdx.Get(k)
		t, _ := tgtIdx.Get(k)

		node := TreeDiff{Path: path, Name: k, Depth: depth, Outcome: OutcomeMatch}
		if diffs := DiffProperties(s, t, spec.Attributes, spec.Excluded); len(diffs) > 0 {
			node.Outcome = OutcomeMismatch
			node.Differences = diffs
		}
		out = append(out, node)

		sc, tc := spec.Children(s), spec.Children(t)
		if len(sc) > 0 || len(tc) > 0 {
			out = append(out, diffTree(spec, sc, tc, remaining-1, path+PathSeparator+k, depth+1)...)
		}
	}

	// Duplicates dropped at this level are recorded on its first node.
	if dups > 0 && len(out) > 0 {
		out[0].Duplicates += dups
	}
	return out
}
