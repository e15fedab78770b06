package demo

import (
	"strings"
	"testing"

	"github.com/loom-ui/loom/pkg/el"
	"github.com/loom-ui/loom/pkg/hooks"
	"github.com/loom-ui/loom/pkg/host"
)

func TestCounterIncrements(t *testing.T) {
	v := host.NewView(host.ComponentFunc(Counter))
	frame, err := v.RenderNow()
	if err != nil {
		t.Fatalf("RenderNow: %v", err)
	}
	if !strings.Contains(frame.HTML, "You clicked 0 times") {
		t.Fatalf("initial frame: %q", frame.HTML)
	}

	for i := 1; i <= 3; i++ {
		if frame, err = v.Click("h1"); err != nil {
			t.Fatalf("click %d: %v", i, err)
		}
	}
	if !strings.Contains(frame.HTML, "You clicked 3 times") {
		t.Errorf("after 3 clicks: %q", frame.HTML)
	}
}

func TestTitleCounterSyncsTitle(t *testing.T) {
	var v *host.View
	v = host.NewView(host.ComponentFunc(func(ctx *hooks.Ctx) *el.VNode {
		return TitleCounter(v)(ctx)
	}))

	if _, err := v.RenderNow(); err != nil {
		t.Fatalf("RenderNow: %v", err)
	}
	if v.Title() != "You clicked 0 times" {
		t.Fatalf("title after mount: %q", v.Title())
	}

	if _, err := v.Click("h1"); err != nil {
		t.Fatalf("Click: %v", err)
	}
	if v.Title() != "You clicked 1 times" {
		t.Errorf("title after click: %q", v.Title())
	}
}

func TestStepCounter(t *testing.T) {
	v := host.NewView(host.ComponentFunc(StepCounter(5)))
	if _, err := v.RenderNow(); err != nil {
		t.Fatalf("RenderNow: %v", err)
	}

	frame, err := v.Click("h1")
	if err != nil {
		t.Fatalf("Click: %v", err)
	}
	if !strings.Contains(frame.HTML, "Count: 5") {
		t.Errorf("custom hook step not applied: %q", frame.HTML)
	}
}

func TestPageComposesThreeCounters(t *testing.T) {
	var v *host.View
	v = host.NewView(host.ComponentFunc(func(ctx *hooks.Ctx) *el.VNode {
		return Page(v)(ctx)
	}))

	frame, err := v.RenderNow()
	if err != nil {
		t.Fatalf("RenderNow: %v", err)
	}

	for _, want := range []string{"Local state", "Document title effect", "Custom hook"} {
		if !strings.Contains(frame.HTML, want) {
			t.Errorf("page missing section %q", want)
		}
	}

	// Three independent counters, three handlers.
	for _, id := range []string{"h1", "h2", "h3"} {
		if !strings.Contains(frame.HTML, `data-loom-click="`+id+`"`) {
			t.Errorf("page missing handler %s", id)
		}
	}

	// Clicking the second counter updates the title but not the first.
	if frame, err = v.Click("h2"); err != nil {
		t.Fatalf("Click: %v", err)
	}
	if v.Title() != "You clicked 1 times" {
		t.Errorf("title: %q", v.Title())
	}
	if !strings.Contains(frame.HTML, "You clicked 0 times") {
		t.Errorf("first counter should stay at 0: %q", frame.HTML)
	}
}
