package hooks

import (
	"errors"
	"testing"
)

func TestUseMemoCachesByDeps(t *testing.T) {
	rt := New(nil)
	inst := rt.NewInstance()

	computes := 0
	component := func(dep int) func(*Ctx) {
		return func(ctx *Ctx) {
			got := UseMemo(ctx, func() int {
				computes++
				return dep * 2
			}, Deps{dep})
			if got != dep*2 {
				t.Errorf("memo value %d, want %d", got, dep*2)
			}
		}
	}

	render(t, rt, inst, component(3))
	render(t, rt, inst, component(3))
	if computes != 1 {
		t.Errorf("equal deps recomputed: %d", computes)
	}

	render(t, rt, inst, component(4))
	if computes != 2 {
		t.Errorf("changed deps did not recompute: %d", computes)
	}
}

func TestUseMemoNilDepsRecomputesEveryRender(t *testing.T) {
	rt := New(nil)
	inst := rt.NewInstance()

	computes := 0
	component := func(ctx *Ctx) {
		UseMemo(ctx, func() int {
			computes++
			return computes
		}, nil)
	}

	render(t, rt, inst, component)
	render(t, rt, inst, component)
	render(t, rt, inst, component)
	if computes != 3 {
		t.Errorf("nil deps: expected 3 computes, got %d", computes)
	}
}

func TestUseMemoEmptyDepsComputesOnce(t *testing.T) {
	rt := New(nil)
	inst := rt.NewInstance()

	computes := 0
	component := func(ctx *Ctx) {
		UseMemo(ctx, func() string {
			computes++
			return "fixed"
		}, Deps{})
	}

	render(t, rt, inst, component)
	render(t, rt, inst, component)
	if computes != 1 {
		t.Errorf("empty deps: expected 1 compute, got %d", computes)
	}
}

func TestUseMemoTypeChange(t *testing.T) {
	rt := New(nil)
	inst := rt.NewInstance()

	render(t, rt, inst, func(ctx *Ctx) {
		UseMemo(ctx, func() int { return 1 }, Deps{})
	})

	err := rt.Render(inst, func(ctx *Ctx) {
		UseMemo(ctx, func() string { return "x" }, Deps{})
	})
	var typeErr *SlotTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected SlotTypeError, got %v", err)
	}
}

func TestUseRefStableIdentity(t *testing.T) {
	rt := New(nil)
	inst := rt.NewInstance()

	var first, second *Ref[int]
	render(t, rt, inst, func(ctx *Ctx) {
		first = UseRef(ctx, 10)
	})
	render(t, rt, inst, func(ctx *Ctx) {
		second = UseRef(ctx, 999)
	})

	if first != second {
		t.Fatal("ref identity changed across renders")
	}
	if second.Current != 10 {
		t.Errorf("initial not preserved: %d", second.Current)
	}

	// Writes survive renders without scheduling anything.
	second.Current = 77
	render(t, rt, inst, func(ctx *Ctx) {
		if r := UseRef(ctx, 0); r.Current != 77 {
			t.Errorf("ref write lost: %d", r.Current)
		}
	})
}

func TestMixedSlotKindsKeepPositions(t *testing.T) {
	rt := New(nil)
	inst := rt.NewInstance()

	var set func(int)
	runs := 0
	component := func(ctx *Ctx) {
		n, s := UseState(ctx, 1)
		set = s
		doubled := UseMemo(ctx, func() int { return n * 2 }, Deps{n})
		r := UseRef(ctx, "tag")
		UseEffect(ctx, func() Cleanup {
			runs++
			return nil
		}, Deps{doubled})
		_ = r
	}

	render(t, rt, inst, component)
	flush(t, rt, inst)
	set(2)
	render(t, rt, inst, component)
	flush(t, rt, inst)

	if runs != 2 {
		t.Errorf("effect keyed on memo output: %d runs, want 2", runs)
	}
}
