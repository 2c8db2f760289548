package compare

// Exclusions is a set of attribute names that never take part in property
// comparison.
type Exclusions map[string]struct{}

func NewExclusions(names ...string) Exclusions {
	e := make(Exclusions, len(names))
	for _, n := range names {
		e[n] = struct{}{}
	}
	return e
}

func (e Exclusions) Contains(name string) bool {
	_, ok := e[name]
	return ok
}

// With returns a new set holding e plus names.
func (e Exclusions) With(names ...string) Exclusions {
	out := make(Exclusions, len(e)+len(names))
	for n := range e {
		out[n] = struct{}{}
	}
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

// Difference is one attribute whose canonical values differ.
type Difference struct {
	Name   string
	Source string
	Target string
}

// DiffProperties compares every attribute not in excluded and returns one
// Difference per unequal attribute, in attribute order.
func DiffProperties[T any](source, target T, attrs []Attribute[T], excluded Exclusions) []Difference {
	var diffs []Difference
	for _, a := range attrs {
		if excluded.Contains(a.Name) {
			continue
		}
		s := a.Value(source)
		t := a.Value(target)
		if s != t {
			diffs = append(diffs, Difference{Name: a.Name, Source: s, Target: t})
		}
	}
	return diffs
}
