package hooks

// UseEffect registers a side effect for the current render pass. The effect
// never runs synchronously: EndRender queues it and the host's FlushEffects
// call, strictly after the committed output is applied, executes it.
//
// deps controls re-execution across renders:
//
//   - nil: the effect re-runs after every committed render.
//   - Deps{}: the effect runs once on mount; its cleanup runs at unmount.
//   - Deps{a, b, ...}: the effect re-runs only when the array differs from
//     the previous render's array (shallow, positional comparison). When it
//     re-runs, the previous run's cleanup is invoked first.
//
// fn must capture the values bound during this render pass; the runtime
// stores the function as given and never re-reads live state on its behalf.
func UseEffect(ctx *Ctx, fn EffectFunc, deps Deps) {
	s, _ := ctx.next(KindEffect, "UseEffect")
	es := s.(*effectSlot)

	es.pending = fn
	es.pendingDeps = deps
}
