package hooks

import (
	"errors"
	"fmt"
)

// ErrRenderInProgress is returned when a coordinator operation that requires
// no active render pass (BeginRender, FlushEffects, Unmount) is invoked while
// a pass is still open. The host must pair BeginRender with EndRender before
// starting the next operation.
var ErrRenderInProgress = errors.New("hooks: render pass already in progress")

// ErrUnmounted is returned when a render or flush is attempted on an
// instance that has already been unmounted.
var ErrUnmounted = errors.New("hooks: instance already unmounted")

// ErrForeignInstance is returned when an instance is passed to a Runtime
// other than the one that created it. Slot stores are exclusively owned.
var ErrForeignInstance = errors.New("hooks: instance belongs to a different runtime")

// SlotMismatchError reports a violated call-order invariant: the slot at a
// given position was recorded with one kind on the first render and a
// different kind (or no call at all) on a later render. It is fatal for the
// render pass that detects it and is surfaced to the host, never recovered
// internally.
type SlotMismatchError struct {
	// Index is the call-order position of the mismatched slot.
	Index int

	// Want is the kind recorded at this position on the first render.
	// KindNone means no slot was recorded (an extra primitive call).
	Want SlotKind

	// Got is the kind of the primitive call that detected the mismatch.
	// KindNone means the render ended before consuming this slot.
	Got SlotKind
}

func (e *SlotMismatchError) Error() string {
	switch {
	case e.Want == KindNone:
		return fmt.Sprintf("hooks: call order changed: extra %s call at slot %d", e.Got, e.Index)
	case e.Got == KindNone:
		return fmt.Sprintf("hooks: call order changed: %s at slot %d was not called this render", e.Want, e.Index)
	default:
		return fmt.Sprintf("hooks: call order changed at slot %d: expected %s, got %s", e.Index, e.Want, e.Got)
	}
}

// SlotTypeError reports a slot whose kind matched but whose stored Go type
// changed between renders, e.g. UseState[int] at a position previously
// occupied by UseState[string]. Like SlotMismatchError it signals a violated
// call-order invariant and is fatal for the render pass.
type SlotTypeError struct {
	Index int
	Want  string // type stored at mount
	Got   string // type requested this render
}

func (e *SlotTypeError) Error() string {
	return fmt.Sprintf("hooks: slot %d type changed: expected %s, got %s", e.Index, e.Want, e.Got)
}

// StaleInstanceError reports a primitive invoked outside an active render
// pass: a nil or finished Ctx, or a Ctx from a pass that is no longer the
// runtime's current one. It signals a primitive used outside a supported
// calling context and is surfaced immediately.
type StaleInstanceError struct {
	// Op is the primitive that was invoked, e.g. "UseState".
	Op string
}

func (e *StaleInstanceError) Error() string {
	return fmt.Sprintf("hooks: %s called outside an active render pass", e.Op)
}

// EffectError wraps a panic raised by an effect or cleanup function during
// FlushEffects or Unmount. For a flush, the remaining queued effects are not
// run; cleanups that already ran stay run.
type EffectError struct {
	// Index is the slot position of the failing effect.
	Index int

	// Recovered is the value recovered from the panic.
	Recovered any
}

func (e *EffectError) Error() string {
	return fmt.Sprintf("hooks: effect at slot %d panicked: %v", e.Index, e.Recovered)
}

// Unwrap exposes the recovered value when it was itself an error.
func (e *EffectError) Unwrap() error {
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}
