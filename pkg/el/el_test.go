package el

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderHTMLBasic(t *testing.T) {
	node := Div(Class("box"),
		H1("Title"),
		P("Hello, ", Strong("world"), "!"),
	)

	want := `<div class="box"><h1>Title</h1><p>Hello, <strong>world</strong>!</p></div>`
	if got := RenderHTML(node); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	node := P(`<script>alert("x")</script>`)
	want := `<p>&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;</p>`
	if got := RenderHTML(node); got != want {
		t.Errorf("content not escaped: %q", got)
	}
}

func TestRenderHTMLEscapesAttributes(t *testing.T) {
	node := Div(AttrOf("title", `a"b<c>`))
	want := `<div title="a&quot;b&lt;c&gt;"></div>`
	if got := RenderHTML(node); got != want {
		t.Errorf("attribute not escaped: %q", got)
	}
}

func TestRenderHTMLVoidElements(t *testing.T) {
	node := Div(Br(), Hr())
	want := `<div><br/><hr/></div>`
	if got := RenderHTML(node); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderHTMLFragmentAndRaw(t *testing.T) {
	node := Fragment(
		Raw("<!-- preamble -->"),
		Span("a"),
		nil,
		Span("b"),
	)
	want := `<!-- preamble --><span>a</span><span>b</span>`
	if got := RenderHTML(node); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCreateElementNilAndSlices(t *testing.T) {
	items := []*VNode{Li("one"), Li("two")}
	node := Ul(nil, []Attr{Class("list"), {}}, items)

	want := `<ul class="list"><li>one</li><li>two</li></ul>`
	if got := RenderHTML(node); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveHandlers(t *testing.T) {
	clicks := 0
	node := Div(
		Button(OnClick(func() { clicks++ }), "a"),
		Section(Button(OnClick(func() { clicks += 10 }), "b")),
	)

	n := 0
	handlers := map[string]func(){}
	ResolveHandlers(node,
		func() string { n++; return "h" + strconv.Itoa(n) },
		func(id string, fn func()) { handlers[id] = fn },
	)

	wantIDs := []string{"h1", "h2"}
	var gotIDs []string
	for _, id := range wantIDs {
		if _, ok := handlers[id]; ok {
			gotIDs = append(gotIDs, id)
		}
	}
	if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
		t.Fatalf("handler registration (-want +got):\n%s", diff)
	}

	html := RenderHTML(node)
	want := `<div><button data-loom-click="h1">a</button><section><button data-loom-click="h2">b</button></section></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}

	handlers["h1"]()
	handlers["h2"]()
	if clicks != 11 {
		t.Errorf("handlers not routed: clicks=%d", clicks)
	}
}
