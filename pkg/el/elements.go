package el

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, string.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind: KindElement,
		Tag:  tag,
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
		case Attr:
			if v.Key != "" {
				node.Attrs = append(node.Attrs, v)
			}
		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					node.Attrs = append(node.Attrs, a)
				}
			}
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		default:
			panic("el: unsupported argument type in element constructor")
		}
	}

	return node
}

// Text creates a text node. Content is escaped at render time.
func Text(s string) *VNode {
	return &VNode{Kind: KindText, Text: s}
}

// Raw creates a raw HTML node. The content is emitted verbatim; the caller
// is responsible for its safety.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...*VNode) *VNode {
	node := &VNode{Kind: KindFragment}
	for _, c := range children {
		if c != nil {
			node.Children = append(node.Children, c)
		}
	}
	return node
}

func Div(args ...any) *VNode     { return createElement("div", args) }
func Span(args ...any) *VNode    { return createElement("span", args) }
func P(args ...any) *VNode       { return createElement("p", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func H3(args ...any) *VNode      { return createElement("h3", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func Header(args ...any) *VNode  { return createElement("header", args) }
func Footer(args ...any) *VNode  { return createElement("footer", args) }
func Button(args ...any) *VNode  { return createElement("button", args) }
func Ul(args ...any) *VNode      { return createElement("ul", args) }
func Li(args ...any) *VNode      { return createElement("li", args) }
func Pre(args ...any) *VNode     { return createElement("pre", args) }
func Code(args ...any) *VNode    { return createElement("code", args) }
func Em(args ...any) *VNode      { return createElement("em", args) }
func Strong(args ...any) *VNode  { return createElement("strong", args) }
func Br(args ...any) *VNode      { return createElement("br", args) }
func Hr(args ...any) *VNode      { return createElement("hr", args) }
