package hooks

import "fmt"

// Cleanup is a function returned by an effect to release its resources.
// It is called before the effect re-runs and at unmount.
type Cleanup func()

// EffectFunc is the body of an effect. It may return a Cleanup, or nil when
// there is nothing to release.
type EffectFunc func() Cleanup

// Runtime is the render cycle coordinator. It serializes render passes,
// queues effects at commit, flushes them afterwards, and tears instances
// down at unmount.
//
// A Runtime is single-threaded cooperative: the host must serialize all
// calls for a given runtime. The only cross-goroutine-tolerant entry point
// is a state setter (see UseState).
type Runtime struct {
	// schedule is the host's re-render callback, invoked (coalesced) when a
	// setter changes state outside a render pass, or once at EndRender when
	// setters fired during the pass.
	schedule func(*Instance)

	// active is the currently open render pass, nil between passes.
	active *Ctx
}

// New creates a Runtime. schedule is invoked whenever an instance needs a
// re-render; the host decides when to actually perform it. A nil schedule is
// allowed for fully host-driven rendering (tests, one-shot SSR).
func New(schedule func(*Instance)) *Runtime {
	return &Runtime{schedule: schedule}
}

// NewInstance creates a fresh component instance owned by this runtime. The
// slot store is populated by the instance's first render.
func (rt *Runtime) NewInstance() *Instance {
	return &Instance{
		id: instanceIDCounter.Add(1),
		rt: rt,
	}
}

// Ctx is an ephemeral render pass: the active instance plus a cursor into
// its slot store. It is valid from BeginRender until the matching EndRender
// and must be passed to every primitive call made during the pass.
type Ctx struct {
	rt   *Runtime
	inst *Instance

	// cursor is the next slot position to consume, reset to zero per pass.
	cursor int

	// rerender is set when a setter fires during this pass; the schedule is
	// deferred to EndRender so same-pass writes coalesce.
	rerender bool

	// done is set by EndRender (or an aborting error); primitives reject a
	// finished Ctx.
	done bool
}

// Instance returns the instance this render pass belongs to.
func (c *Ctx) Instance() *Instance { return c.inst }

// BeginRender opens a render pass for inst and returns its Ctx. It must be
// paired with EndRender. Fails if a pass is already open, the instance is
// unmounted, or the instance belongs to another runtime.
func (rt *Runtime) BeginRender(inst *Instance) (*Ctx, error) {
	if inst == nil || inst.rt != rt {
		return nil, ErrForeignInstance
	}
	if inst.unmounted {
		return nil, ErrUnmounted
	}
	if rt.active != nil {
		return nil, ErrRenderInProgress
	}

	// Writes scheduled before this render are consumed by it.
	inst.dirty.Store(false)

	c := &Ctx{rt: rt, inst: inst}
	rt.active = c
	return c, nil
}

// EndRender closes the pass: it validates that the render consumed the full
// slot store, locks the kind-sequence in on the mounting render, queues every
// effect slot holding a pending effect for the next flush, and fires the
// deferred re-render schedule if setters ran during the pass.
func (rt *Runtime) EndRender(c *Ctx) error {
	if c == nil || c.done || rt.active != c {
		return &StaleInstanceError{Op: "EndRender"}
	}
	rt.active = nil
	c.done = true

	inst := c.inst
	if inst.mounted && c.cursor < len(inst.slots) {
		return &SlotMismatchError{
			Index: c.cursor,
			Want:  inst.slots[c.cursor].kind(),
			Got:   KindNone,
		}
	}
	inst.mounted = true

	for _, s := range inst.slots {
		if es, ok := s.(*effectSlot); ok && es.pending != nil {
			es.queued = true
		}
	}

	if c.rerender {
		inst.markDirty()
	}
	return nil
}

// abort closes a pass that failed mid-render. The slot store is left as-is;
// the error is fatal for the pass, not the instance, and the host decides
// whether to retry or unmount.
func (rt *Runtime) abort(c *Ctx) {
	if rt.active == c {
		rt.active = nil
	}
	c.done = true
}

// Render runs one full render pass: BeginRender, the component function,
// EndRender. Hook-contract violations raised inside fn (SlotMismatchError,
// SlotTypeError, StaleInstanceError) are recovered and returned as errors;
// any other panic propagates to the host unchanged.
func (rt *Runtime) Render(inst *Instance, fn func(*Ctx)) (err error) {
	c, err := rt.BeginRender(inst)
	if err != nil {
		return err
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		rt.abort(c)
		switch e := r.(type) {
		case *SlotMismatchError:
			err = e
		case *SlotTypeError:
			err = e
		case *StaleInstanceError:
			err = e
		default:
			panic(r)
		}
	}()

	fn(c)
	return rt.EndRender(c)
}

// FlushEffects runs the effects queued by the most recent EndRender, in
// registration (slot) order. For each queued slot the dependency arrays are
// compared shallowly: if the previous deps are absent, the lengths differ,
// or any element differs, the slot's existing cleanup runs first and then
// the pending effect; its returned cleanup and deps are recorded. If the
// deps compare equal the slot is skipped entirely.
//
// The host must call this once per committed render, strictly after the
// output is applied. A panic in a cleanup or effect halts the flush and is
// returned as an *EffectError; effects already run stay run.
func (rt *Runtime) FlushEffects(inst *Instance) error {
	if inst == nil || inst.rt != rt {
		return ErrForeignInstance
	}
	if inst.unmounted {
		return ErrUnmounted
	}
	if rt.active != nil {
		return ErrRenderInProgress
	}

	for i, s := range inst.slots {
		es, ok := s.(*effectSlot)
		if !ok || !es.queued {
			continue
		}
		es.queued = false
		fn, deps := es.pending, es.pendingDeps
		es.pending, es.pendingDeps = nil, nil

		if es.ran && es.lastDeps.equal(deps) {
			continue
		}
		if err := runEffectSlot(i, es, fn, deps); err != nil {
			return err
		}
	}
	return nil
}

// runEffectSlot runs one slot's cleanup-then-effect step with panic capture.
func runEffectSlot(index int, es *effectSlot, fn EffectFunc, deps Deps) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &EffectError{Index: index, Recovered: r}
		}
	}()

	if es.cleanup != nil {
		cl := es.cleanup
		es.cleanup = nil
		cl()
	}
	es.cleanup = fn()
	es.lastDeps = deps
	es.ran = true
	return nil
}

// Unmount destroys the instance: every effect slot's outstanding cleanup runs
// in ascending registration order, then the slot store is discarded. Unlike a
// flush, a panicking cleanup does not stop the remaining cleanups, since
// skipping resource release at teardown would leak. The first failure is
// returned as an *EffectError. Unmount is idempotent.
func (rt *Runtime) Unmount(inst *Instance) error {
	if inst == nil || inst.rt != rt {
		return ErrForeignInstance
	}
	if rt.active != nil && rt.active.inst == inst {
		return ErrRenderInProgress
	}
	if inst.unmounted {
		return nil
	}
	inst.unmounted = true

	var firstErr error
	for i, s := range inst.slots {
		es, ok := s.(*effectSlot)
		if !ok || es.cleanup == nil {
			continue
		}
		cl := es.cleanup
		es.cleanup = nil
		if err := runCleanup(i, cl); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	inst.slots = nil
	return firstErr
}

func runCleanup(index int, cl Cleanup) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &EffectError{Index: index, Recovered: r}
		}
	}()
	cl()
	return nil
}

// next consumes the slot at the current cursor, creating it during the
// mounting render. It panics with a typed hook-contract error on misuse;
// Render converts those panics into returned errors at the pass boundary.
func (c *Ctx) next(k SlotKind, op string) (slot, bool) {
	if c == nil || c.done || c.rt.active != c {
		panic(&StaleInstanceError{Op: op})
	}

	inst := c.inst
	idx := c.cursor
	c.cursor++

	if idx < len(inst.slots) {
		s := inst.slots[idx]
		if s.kind() != k {
			panic(&SlotMismatchError{Index: idx, Want: s.kind(), Got: k})
		}
		return s, false
	}

	if inst.mounted {
		// Store is fixed after the first render; an append is a changed
		// call order, not growth.
		panic(&SlotMismatchError{Index: idx, Want: KindNone, Got: k})
	}

	s := newSlot(k)
	inst.slots = append(inst.slots, s)
	return s, true
}

// typeName formats a Go type for SlotTypeError reports.
func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
