package el

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindRaw                  // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is one node of the element tree produced by a component render.
// Trees are built fresh on every render and treated as immutable afterwards.
type VNode struct {
	Kind     Kind
	Tag      string   // Element tag name (e.g., "div")
	Attrs    []Attr   // Attributes, including handler attachments
	Children []*VNode // Child nodes
	Text     string   // For KindText and KindRaw
}

// Attr is a single attribute. A non-nil OnClick marks the attribute as a
// handler attachment; the rendering host assigns it an ID and emits it as a
// data attribute.
type Attr struct {
	Key     string
	Value   string
	OnClick func()
}

// IsHandler reports whether this attribute attaches an event handler.
func (a Attr) IsHandler() bool {
	return a.OnClick != nil
}

// Class returns a class attribute.
func Class(v string) Attr {
	return Attr{Key: "class", Value: v}
}

// ID returns an id attribute.
func ID(v string) Attr {
	return Attr{Key: "id", Value: v}
}

// AttrOf returns an arbitrary attribute.
func AttrOf(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// OnClick attaches a click handler. The host collects handlers during
// commit and routes incoming click events back to them.
func OnClick(fn func()) Attr {
	return Attr{Key: "click", OnClick: fn}
}

// Walk visits the node and all descendants in document order.
func (v *VNode) Walk(visit func(*VNode)) {
	if v == nil {
		return
	}
	visit(v)
	for _, c := range v.Children {
		c.Walk(visit)
	}
}
