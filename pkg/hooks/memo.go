package hooks

// UseMemo returns a slot-cached derived value, recomputing it synchronously
// during render when deps differ from the previous render's array. Unlike an
// effect, the computation runs inside the render pass and must be pure.
//
// deps follows the same contract as UseEffect: nil recomputes every render,
// Deps{} computes once at mount.
func UseMemo[T any](ctx *Ctx, compute func() T, deps Deps) T {
	s, _ := ctx.next(KindMemo, "UseMemo")
	ms := s.(*memoSlot)

	if ms.valid {
		if _, ok := ms.value.(T); !ok {
			panic(&SlotTypeError{Index: ctx.cursor - 1, Want: ms.typ, Got: typeName(*new(T))})
		}
		if ms.lastDeps.equal(deps) {
			return ms.value.(T)
		}
	}

	v := compute()
	ms.value = v
	ms.lastDeps = deps
	ms.valid = true
	ms.typ = typeName(v)
	return v
}
