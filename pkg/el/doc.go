// Package el provides the element tree for Loom components: immutable nodes
// built with variadic constructors and serialized to HTML.
//
// Typical usage:
//
//	el.Div(el.Class("counter"),
//	    el.P("You clicked ", strconv.Itoa(count), " times"),
//	    el.Button(el.OnClick(increment), "Click me"),
//	)
//
// There is no diffing and no patch protocol: the rendering host serializes
// the whole tree on every committed render.
package el
