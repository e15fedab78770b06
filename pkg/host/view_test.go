package host

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/loom-ui/loom/pkg/el"
	"github.com/loom-ui/loom/pkg/hooks"
)

// counter is a minimal stateful component for host tests.
func counter() ComponentFunc {
	return func(ctx *hooks.Ctx) *el.VNode {
		count, setCount := hooks.UseState(ctx, 0)
		next := count + 1
		return el.Div(
			el.Span(el.ID("value"), "count="+strconv.Itoa(count)),
			el.Button(el.OnClick(func() { setCount(next) }), "increment"),
		)
	}
}

func TestViewRenderNowCommitsFrame(t *testing.T) {
	v := NewView(counter())

	frame, err := v.RenderNow()
	if err != nil {
		t.Fatalf("RenderNow: %v", err)
	}
	if frame.Seq != 1 {
		t.Errorf("frame seq %d, want 1", frame.Seq)
	}
	if !strings.Contains(frame.HTML, "count=0") {
		t.Errorf("frame missing initial state: %q", frame.HTML)
	}
	if !strings.Contains(frame.HTML, `data-loom-click="h1"`) {
		t.Errorf("handler attribute not resolved: %q", frame.HTML)
	}
	if v.LastFrame() != frame {
		t.Error("LastFrame does not match committed frame")
	}
}

func TestViewClickRerenders(t *testing.T) {
	v := NewView(counter())
	if _, err := v.RenderNow(); err != nil {
		t.Fatalf("RenderNow: %v", err)
	}

	frame, err := v.Click("h1")
	if err != nil {
		t.Fatalf("Click: %v", err)
	}
	if !strings.Contains(frame.HTML, "count=1") {
		t.Errorf("click did not re-render: %q", frame.HTML)
	}

	frame, err = v.Click("h1")
	if err != nil {
		t.Fatalf("Click: %v", err)
	}
	if !strings.Contains(frame.HTML, "count=2") {
		t.Errorf("second click: %q", frame.HTML)
	}
}

func TestViewUnknownClickIgnored(t *testing.T) {
	v := NewView(counter())
	if _, err := v.RenderNow(); err != nil {
		t.Fatalf("RenderNow: %v", err)
	}

	frame, err := v.Click("missing")
	if err != nil {
		t.Fatalf("Click: %v", err)
	}
	if !strings.Contains(frame.HTML, "count=0") {
		t.Errorf("unknown handler changed state: %q", frame.HTML)
	}
}

func TestViewEffectsFlushAfterCommit(t *testing.T) {
	var order []string
	root := ComponentFunc(func(ctx *hooks.Ctx) *el.VNode {
		count, _ := hooks.UseState(ctx, 0)
		hooks.UseEffect(ctx, func() hooks.Cleanup {
			order = append(order, "effect")
			return nil
		}, hooks.Deps{count})
		return el.Div("ok")
	})

	v := NewView(root, OnFrame(func(Frame) {
		order = append(order, "frame")
	}))
	if _, err := v.RenderNow(); err != nil {
		t.Fatalf("RenderNow: %v", err)
	}

	if len(order) != 2 || order[0] != "frame" || order[1] != "effect" {
		t.Errorf("effects must flush strictly after commit, got %v", order)
	}
}

func TestViewTitleEffect(t *testing.T) {
	var titles []string
	var v *View
	root := ComponentFunc(func(ctx *hooks.Ctx) *el.VNode {
		count, setCount := hooks.UseState(ctx, 0)
		next := count + 1
		hooks.UseEffect(ctx, func() hooks.Cleanup {
			v.SetTitle("clicked " + strconv.Itoa(count) + " times")
			return nil
		}, hooks.Deps{count})
		return el.Button(el.OnClick(func() { setCount(next) }), "go")
	})

	v = NewView(root, OnTitle(func(title string) {
		titles = append(titles, title)
	}))

	if _, err := v.RenderNow(); err != nil {
		t.Fatalf("RenderNow: %v", err)
	}
	if _, err := v.Click("h1"); err != nil {
		t.Fatalf("Click: %v", err)
	}

	if v.Title() != "clicked 1 times" {
		t.Errorf("title %q", v.Title())
	}
	if len(titles) != 2 {
		t.Errorf("expected 2 title notifications, got %v", titles)
	}
}

func TestViewRunLoop(t *testing.T) {
	frames := make(chan Frame, 8)
	v := NewView(counter(), OnFrame(func(f Frame) { frames <- f }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- v.Run(ctx) }()

	first := recvFrame(t, frames)
	if !strings.Contains(first.HTML, "count=0") {
		t.Errorf("initial frame: %q", first.HTML)
	}

	v.HandleClick("h1")
	second := recvFrame(t, frames)
	if !strings.Contains(second.HTML, "count=1") {
		t.Errorf("frame after click: %q", second.HTML)
	}

	v.Close()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not exit after Close")
	}
}

func TestViewRunUnmountRunsCleanups(t *testing.T) {
	cleaned := make(chan struct{}, 1)
	root := ComponentFunc(func(ctx *hooks.Ctx) *el.VNode {
		hooks.UseEffect(ctx, func() hooks.Cleanup {
			return func() { cleaned <- struct{}{} }
		}, hooks.Deps{})
		return el.Div("ok")
	})

	v := NewView(root)
	errCh := make(chan error, 1)
	go func() { errCh <- v.Run(context.Background()) }()

	// Let the first tick complete, then stop.
	time.Sleep(50 * time.Millisecond)
	v.Close()
	<-errCh

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatal("effect cleanup did not run at unmount")
	}
}

func TestViewRenderErrorSurfaces(t *testing.T) {
	renders := 0
	root := ComponentFunc(func(ctx *hooks.Ctx) *el.VNode {
		renders++
		if renders == 1 {
			hooks.UseState(ctx, 0)
		}
		hooks.UseEffect(ctx, func() hooks.Cleanup { return nil }, nil)
		return el.Div("ok")
	})

	v := NewView(root)
	if _, err := v.RenderNow(); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if _, err := v.RenderNow(); err == nil {
		t.Fatal("expected hook contract violation to surface")
	}
}

func recvFrame(t *testing.T, frames chan Frame) Frame {
	t.Helper()
	select {
	case f := <-frames:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
		return Frame{}
	}
}
