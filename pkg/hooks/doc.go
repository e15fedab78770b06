// Package hooks provides the reactive core for Loom: call-order-addressed
// state and effect primitives driven by an external rendering host.
//
// Every component instance owns an ordered slot store. Primitives called
// during a render pass consume slots positionally, which means a component
// must call the same primitives in the same order on every render: no
// conditional, loop-nested, or early-return-skipped calls. Violations are
// detected and surfaced as SlotMismatchError rather than silently corrupting
// state.
//
// # Render cycle
//
// The rendering host drives the cycle through a Runtime:
//
//	rt := hooks.New(scheduleRerender)
//	inst := rt.NewInstance()
//
//	err := rt.Render(inst, func(ctx *hooks.Ctx) {
//	    count, setCount := hooks.UseState(ctx, 0)
//	    hooks.UseEffect(ctx, func() hooks.Cleanup {
//	        title.Set(fmt.Sprintf("count is %d", count))
//	        return nil
//	    }, hooks.Deps{count})
//	    _ = setCount
//	})
//	// ... host commits its output ...
//	err = rt.FlushEffects(inst)
//
// Effects never run during render. EndRender queues them and FlushEffects,
// called by the host strictly after the committed output is applied, runs
// them in registration order, invoking each slot's previous cleanup first
// when its dependencies changed.
//
// # Dependency arrays
//
// A nil Deps means "re-run after every render". An empty Deps means "run
// once on mount; clean up at unmount". Comparison is shallow and positional:
// element-by-element equality with no deep traversal.
//
// # Concurrency
//
// The runtime is single-threaded cooperative: all render passes, flushes and
// primitive calls for a runtime must be serialized by the host. Setters are
// the one exception; they only write the slot value and flip an atomic
// dirty flag, so the host may invoke them from its dispatch queue. Setter
// calls made while a render is in progress are coalesced into a single
// re-render scheduled at EndRender, preserving last-write-wins per slot.
package hooks
