package hooks

// Ref is a stable mutable cell. Writing Current does not schedule a
// re-render; refs carry values across renders without participating in the
// render cycle.
type Ref[T any] struct {
	Current T
}

// UseRef returns a ref whose identity is fixed at mount. initial is used
// only on the mounting render.
func UseRef[T any](ctx *Ctx, initial T) *Ref[T] {
	s, created := ctx.next(KindRef, "UseRef")
	rs := s.(*refSlot)

	if created {
		r := &Ref[T]{Current: initial}
		rs.cell = r
		rs.typ = typeName(initial)
		return r
	}

	r, ok := rs.cell.(*Ref[T])
	if !ok {
		panic(&SlotTypeError{Index: ctx.cursor - 1, Want: rs.typ, Got: typeName(initial)})
	}
	return r
}
