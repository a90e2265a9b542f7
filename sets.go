package mathstuff

import "reflect"

// Set algebra over template collections.
//
// Each operation runs one of two code paths behind the same signature:
// when every element involved is hashable (usable as a map key), membership
// checks go through a map; otherwise the whole operation falls back to an
// order-preserving linear scan with deep equality. Both paths keep the
// first-seen order of the input, so results are deterministic either way.

// Unique returns the elements of a with duplicates removed.
func Unique(a any) ([]any, error) {
	items, err := toSlice("unique", a)
	if err != nil {
		return nil, err
	}
	return uniqueItems("unique", items), nil
}

// Intersect returns the elements present in both a and b.
func Intersect(a, b any) ([]any, error) {
	as, bs, err := twoSlices("intersect", a, b)
	if err != nil {
		return nil, err
	}
	inB := membership("intersect", bs)
	kept := make([]any, 0, len(as))
	for _, x := range as {
		if inB(x) {
			kept = append(kept, x)
		}
	}
	return uniqueItems("intersect", kept), nil
}

// Difference returns the elements of a that are not in b.
func Difference(a, b any) ([]any, error) {
	as, bs, err := twoSlices("difference", a, b)
	if err != nil {
		return nil, err
	}
	inB := membership("difference", bs)
	kept := make([]any, 0, len(as))
	for _, x := range as {
		if !inB(x) {
			kept = append(kept, x)
		}
	}
	return uniqueItems("difference", kept), nil
}

// SymmetricDifference returns the elements present in exactly one of a
// and b, computed as (a ∪ b) − (a ∩ b).
func SymmetricDifference(a, b any) ([]any, error) {
	as, bs, err := twoSlices("symmetric_difference", a, b)
	if err != nil {
		return nil, err
	}
	union := uniqueItems("symmetric_difference", concat(as, bs))
	inter, err := Intersect(as, bs)
	if err != nil {
		return nil, err
	}
	inBoth := membership("symmetric_difference", inter)
	out := make([]any, 0, len(union))
	for _, x := range union {
		if !inBoth(x) {
			out = append(out, x)
		}
	}
	return out, nil
}

// Union returns all elements of a and b with duplicates removed, a's
// elements ordered before b's.
func Union(a, b any) ([]any, error) {
	as, bs, err := twoSlices("union", a, b)
	if err != nil {
		return nil, err
	}
	return uniqueItems("union", concat(as, bs)), nil
}

func twoSlices(op string, a, b any) ([]any, []any, error) {
	as, err := toSlice(op, a)
	if err != nil {
		return nil, nil, err
	}
	bs, err := toSlice(op, b)
	if err != nil {
		return nil, nil, err
	}
	return as, bs, nil
}

func concat(a, b []any) []any {
	out := make([]any, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func allHashable(items []any) bool {
	for _, x := range items {
		if !hashable(x) {
			return false
		}
	}
	return true
}

// uniqueItems removes duplicates preserving first-seen order.
func uniqueItems(op string, items []any) []any {
	out := make([]any, 0, len(items))
	if allHashable(items) {
		seen := make(map[any]struct{}, len(items))
		for _, x := range items {
			if _, dup := seen[x]; dup {
				continue
			}
			seen[x] = struct{}{}
			out = append(out, x)
		}
		return out
	}
	Logger().Debug("mathstuff: unhashable element, using order-preserving scan", "filter", op)
	for _, x := range items {
		if !scanContains(out, x) {
			out = append(out, x)
		}
	}
	return out
}

// membership returns a containment predicate over items, map-backed when
// every element is hashable.
func membership(op string, items []any) func(any) bool {
	if allHashable(items) {
		set := make(map[any]struct{}, len(items))
		for _, x := range items {
			set[x] = struct{}{}
		}
		return func(v any) bool {
			if !hashable(v) {
				return false
			}
			_, ok := set[v]
			return ok
		}
	}
	Logger().Debug("mathstuff: unhashable element, using order-preserving scan", "filter", op)
	return func(v any) bool {
		return scanContains(items, v)
	}
}

func scanContains(items []any, v any) bool {
	for _, x := range items {
		if reflect.DeepEqual(x, v) {
			return true
		}
	}
	return false
}
