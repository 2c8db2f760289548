package compare

import "sort"

// Index maps composite keys to entities. The first entity seen for a key
// wins; later ones are dropped and counted.
type Index[T any] struct {
	entries    map[string]T
	order      []string
	duplicates int
	skipped    int
}

// BuildIndex indexes items in source order. Items whose key is empty are
// skipped.
func BuildIndex[T any](items []T, key KeyFunc[T]) *Index[T] {
	idx := &Index[T]{
		entries: make(map[string]T, len(items)),
		order:   make([]string, 0, len(items)),
	}
	for _, item := range items {
		k := key(item)
		if k == "" {
			idx.skipped++
			continue
		}
		if _, exists := idx.entries[k]; exists {
			idx.duplicates++
			continue
		}
		idx.entries[k] = item
		idx.order = append(idx.order, k)
	}
	return idx
}

func (i *Index[T]) Get(key string) (T, bool) {
	v, ok := i.entries[key]
	return v, ok
}

func (i *Index[T]) Has(key string) bool {
	_, ok := i.entries[key]
	return ok
}

func (i *Index[T]) Len() int {
	return len(i.entries)
}

// Keys returns the keys in first-seen order.
func (i *Index[T]) Keys() []string {
	out := make([]string, len(i.order))
	copy(out, i.order)
	return out
}

// SortedKeys returns the keys in lexical order.
func (i *Index[T]) SortedKeys() []string {
	out := i.Keys()
	sort.Strings(out)
	return out
}

// Duplicates is the number of items dropped because their key was already taken.
func (i *Index[T]) Duplicates() int {
	return i.duplicates
}

// Skipped is the number of items dropped because they had no usable key.
func (i *Index[T]) Skipped() int {
	return i.skipped
}
