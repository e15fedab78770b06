package hooks

import (
	"sync/atomic"
)

// instanceIDCounter is the source of unique instance IDs.
var instanceIDCounter atomic.Uint64

// Instance is one component instance: the exclusive owner of a slot store.
// Its identity persists across re-renders of the same logical component and
// ends at Unmount.
//
// Instances are created by Runtime.NewInstance and must only be used with
// that runtime.
type Instance struct {
	id uint64
	rt *Runtime

	// slots is the ordered slot store. Appended to during the mounting
	// render, positionally read/updated thereafter, never resized.
	slots []slot

	// mounted is set once the first render has completed, fixing the
	// slot kind-sequence.
	mounted bool

	// unmounted is set by Unmount; the instance is unusable afterwards.
	unmounted bool

	// dirty coalesces re-render scheduling: many setter calls between two
	// renders produce one schedule callback. Atomic so setters may be
	// invoked from the host's dispatch path.
	dirty atomic.Bool
}

// ID returns the unique identifier for this instance.
func (in *Instance) ID() uint64 { return in.id }

// Mounted reports whether the instance has completed its first render.
func (in *Instance) Mounted() bool { return in.mounted }

// Unmounted reports whether the instance has been unmounted.
func (in *Instance) Unmounted() bool { return in.unmounted }

// markDirty requests a re-render of this instance via the runtime's schedule
// callback, collapsing repeated requests until the next BeginRender clears
// the flag.
func (in *Instance) markDirty() {
	if in.unmounted {
		return
	}
	if in.dirty.CompareAndSwap(false, true) {
		if in.rt.schedule != nil {
			in.rt.schedule(in)
		}
	}
}
