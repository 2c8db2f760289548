package compare

import "strings"

// KeySeparator joins the parts of a composite key. Attribute values are
// assumed never to contain it; this is not enforced.
const KeySeparator = "|"

// Attribute is one named scalar attribute of T together with an accessor
// returning its canonical string.
type Attribute[T any] struct {
	Name  string
	Value func(T) string
}

// Attr is shorthand for building an Attribute.
func Attr[T any](name string, value func(T) string) Attribute[T] {
	return Attribute[T]{Name: name, Value: value}
}

// Names lists the attribute names in order.
func Names[T any](attrs []Attribute[T]) []string {
	out := make([]string, len(attrs))
	for i, a := range attrs {
		out[i] = a.Name
	}
	return out
}

// KeyFunc derives the natural key of an entity. An empty key excludes the
// entity from indexing because it cannot identify an item across environments.
type KeyFunc[T any] func(T) string

// BuildKey joins parts with KeySeparator. It returns false, and an empty key,
// when any part is empty.
func BuildKey(parts ...string) (string, bool) {
	if len(parts) == 0 {
		return "", false
	}
	for _, p := range parts {
		if p == "" {
			return "", false
		}
	}
	return strings.Join(parts, KeySeparator), true
}

// CompositeKey builds a KeyFunc from ordered key attributes. When required is
// empty every attribute is required; otherwise only the named attributes must
// be non-empty and the rest take part as empty strings.
func CompositeKey[T any](attrs []Attribute[T], required ...string) KeyFunc[T] {
	mustHave := make(map[string]struct{}, len(required))
	for _, name := range required {
		mustHave[name] = struct{}{}
	}
	allRequired := len(mustHave) == 0

	return func(item T) string {
		if len(attrs) == 0 {
			return ""
		}
		parts := make([]string, len(attrs))
		for i, a := range attrs {
			v := a.Value(item)
			if v == "" {
				if _, ok := mustHave[a.Name]; allRequired || ok {
					return ""
				}
			}
			parts[i] = v
		}
		return strings.Join(parts, KeySeparator)
	}
}
