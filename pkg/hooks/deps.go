package hooks

import "reflect"

// Deps is an ordered sequence of comparison values controlling whether an
// effect (or memo) re-runs. Comparison is shallow, positional, and
// single-level: elements are compared with Go equality, never traversed.
//
// A nil Deps means "always re-run". An empty Deps means "run once; never
// again until unmount". The two are distinct: pass nil explicitly for the
// former, Deps{} for the latter.
type Deps []any

// equal reports whether two dependency arrays compare equal under the
// shallow contract. A nil array on either side never compares equal; absent
// dependencies mean unconditional re-run.
func (d Deps) equal(other Deps) bool {
	if d == nil || other == nil {
		return false
	}
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if !shallowEqual(d[i], other[i]) {
			return false
		}
	}
	return true
}

// shallowEqual compares two dependency elements. Common scalar types are
// compared directly; anything else is compared with Go interface equality
// when its dynamic type is comparable (pointers by identity, structs
// field-wise at one level). Values of non-comparable types never compare
// equal, so a slice or map dependency always re-runs its effect.
func shallowEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case uint64:
		bv, ok := b.(uint64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
