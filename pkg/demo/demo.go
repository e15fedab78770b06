// Package demo contains the components of the Loom demo page: a counter
// using local state, a counter whose effect writes the document title, and a
// counter built on a reusable custom hook, composed into a single page.
package demo

import (
	"fmt"
	"strconv"

	"github.com/loom-ui/loom/pkg/el"
	"github.com/loom-ui/loom/pkg/hooks"
)

// Document is the slice of the rendering host the title effect writes to;
// the stand-in for mutating document.title after paint.
type Document interface {
	SetTitle(title string)
}

// Counter renders a counter backed by a single state slot. The increment
// closure captures the count bound during this render pass, so each click
// advances from the value the user actually saw.
func Counter(ctx *hooks.Ctx) *el.VNode {
	count, setCount := hooks.UseState(ctx, 0)
	next := count + 1

	return el.Section(el.Class("counter"),
		el.P("You clicked ", strconv.Itoa(count), " times"),
		el.Button(el.OnClick(func() { setCount(next) }), "Click me"),
	)
}

// TitleCounter is the counter whose side effect keeps the document title in
// sync with the count. The effect is keyed on the count: a re-render that
// leaves the count unchanged skips it entirely.
func TitleCounter(doc Document) func(*hooks.Ctx) *el.VNode {
	return func(ctx *hooks.Ctx) *el.VNode {
		count, setCount := hooks.UseState(ctx, 0)
		next := count + 1

		hooks.UseEffect(ctx, func() hooks.Cleanup {
			doc.SetTitle(fmt.Sprintf("You clicked %d times", count))
			return nil
		}, hooks.Deps{count})

		return el.Section(el.Class("counter counter-title"),
			el.P("You clicked ", strconv.Itoa(count), " times"),
			el.Button(el.OnClick(func() { setCount(next) }), "Click me"),
		)
	}
}

// UseCounter is a custom hook: a counter with a fixed step, reusable by any
// component. Like every hook it must be called unconditionally.
func UseCounter(ctx *hooks.Ctx, step int) (int, func()) {
	count, setCount := hooks.UseState(ctx, 0)
	next := count + step
	increment := func() { setCount(next) }
	return count, increment
}

// StepCounter renders a counter built on the UseCounter custom hook.
func StepCounter(step int) func(*hooks.Ctx) *el.VNode {
	return func(ctx *hooks.Ctx) *el.VNode {
		count, increment := UseCounter(ctx, step)

		return el.Section(el.Class("counter counter-step"),
			el.P("Count: ", strconv.Itoa(count)),
			el.Button(el.OnClick(increment), "Add "+strconv.Itoa(step)),
		)
	}
}

// Page composes the three demo counters into the demo page.
func Page(doc Document) func(*hooks.Ctx) *el.VNode {
	titleCounter := TitleCounter(doc)
	stepCounter := StepCounter(5)

	return func(ctx *hooks.Ctx) *el.VNode {
		return el.Main(el.Class("demo"),
			el.H1("Loom hooks demo"),
			el.H2("Local state"),
			Counter(ctx),
			el.H2("Document title effect"),
			titleCounter(ctx),
			el.H2("Custom hook"),
			stepCounter(ctx),
		)
	}
}
