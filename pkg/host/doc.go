// Package host is the rendering host for Loom components: the external
// collaborator that drives the hooks runtime through its render cycle.
//
// A View owns one root component and one component instance. Each render
// tick runs the component function inside a render pass, resolves click
// handlers, serializes the element tree to an HTML frame, commits the frame
// to subscribers, and only then flushes effects. State setters schedule
// re-render ticks; the view's event loop serializes everything so the
// single-threaded contract of the hooks runtime holds.
//
// Views can run in two modes: a live event loop (Run) for interactive
// sessions, or synchronous driving (RenderNow, Click, Settle) for tests and
// one-shot server-side rendering.
package host
