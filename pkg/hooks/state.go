package hooks

// UseState returns the current value of a state slot and its setter.
//
// On the mounting render the slot is created with initial; on every later
// render initial is ignored and the stored value is returned. The setter
// replaces the value unconditionally, with no structural merge, and schedules a
// re-render of the owning instance. Its identity is fixed at mount, so it is
// safe to include in dependency arrays or pass to children without causing
// spurious re-runs.
//
// Setter calls made while a render pass is open are written immediately but
// scheduled once, at EndRender. Setter calls after unmount are dropped.
func UseState[T any](ctx *Ctx, initial T) (T, func(T)) {
	s, created := ctx.next(KindState, "UseState")
	st := s.(*stateSlot)

	if created {
		inst := ctx.inst
		st.value = initial
		st.typ = typeName(initial)
		st.setter = func(next T) {
			if inst.unmounted {
				return
			}
			// Last-write-wins: the slot always holds the most recent write.
			st.value = next
			if c := inst.rt.active; c != nil && c.inst == inst {
				c.rerender = true
				return
			}
			inst.markDirty()
		}
	}

	setter, ok := st.setter.(func(T))
	if !ok {
		panic(&SlotTypeError{Index: ctx.cursor - 1, Want: st.typ, Got: typeName(initial)})
	}
	// The setter assertion above pins the slot's type; comma-ok here keeps a
	// stored nil interface value readable as the zero value.
	v, _ := st.value.(T)
	return v, setter
}
