package el

import "strings"

// RenderHTML serializes a node tree to HTML. Handler attributes must have
// been resolved to data attributes by the host beforehand (see
// ResolveHandlers); unresolved handler attrs are skipped.
func RenderHTML(v *VNode) string {
	var buf strings.Builder
	writeNode(&buf, v)
	return buf.String()
}

func writeNode(buf *strings.Builder, v *VNode) {
	if v == nil {
		return
	}

	switch v.Kind {
	case KindText:
		buf.WriteString(escapeHTML(v.Text))

	case KindRaw:
		buf.WriteString(v.Text)

	case KindFragment:
		for _, c := range v.Children {
			writeNode(buf, c)
		}

	case KindElement:
		buf.WriteByte('<')
		buf.WriteString(v.Tag)
		for _, a := range v.Attrs {
			if a.IsHandler() {
				continue
			}
			buf.WriteByte(' ')
			buf.WriteString(a.Key)
			buf.WriteString(`="`)
			buf.WriteString(escapeAttr(a.Value))
			buf.WriteByte('"')
		}
		if IsVoidElement(v.Tag) {
			buf.WriteString("/>")
			return
		}
		buf.WriteByte('>')
		for _, c := range v.Children {
			writeNode(buf, c)
		}
		buf.WriteString("</")
		buf.WriteString(v.Tag)
		buf.WriteByte('>')
	}
}

// ResolveHandlers walks the tree, assigns an ID to every handler attribute
// via nextID, reports each (id, handler) pair to register, and rewrites the
// attribute into a data-loom-click attribute carrying the ID. The tree is
// modified in place; it was built fresh this render and is owned by the
// caller.
func ResolveHandlers(v *VNode, nextID func() string, register func(id string, fn func())) {
	v.Walk(func(n *VNode) {
		for i, a := range n.Attrs {
			if !a.IsHandler() {
				continue
			}
			id := nextID()
			register(id, a.OnClick)
			n.Attrs[i] = Attr{Key: "data-loom-click", Value: id}
		}
	})
}
