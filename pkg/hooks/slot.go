package hooks

// SlotKind identifies the primitive that owns a slot. The kind-sequence of
// an instance's slots is fixed by the first render; every later render must
// reproduce it exactly.
type SlotKind uint8

const (
	// KindNone marks the absence of a slot in error reports.
	KindNone SlotKind = iota
	KindState
	KindEffect
	KindMemo
	KindRef
)

// String returns a human-readable name for the slot kind.
func (k SlotKind) String() string {
	switch k {
	case KindState:
		return "State"
	case KindEffect:
		return "Effect"
	case KindMemo:
		return "Memo"
	case KindRef:
		return "Ref"
	default:
		return "None"
	}
}

// slot is the tagged variant stored in an instance's slot store.
type slot interface {
	kind() SlotKind
}

// stateSlot holds one UseState cell. The setter is created once at mount and
// keeps its identity across renders, so it is safe to place in dependency
// arrays without forcing re-runs.
type stateSlot struct {
	value  any
	setter any // func(T), fixed at mount
	typ    string
}

func (*stateSlot) kind() SlotKind { return KindState }

// effectSlot holds one UseEffect cell.
//
// pending/pendingDeps are the candidate recorded by the most recent render;
// they are consumed by the next flush. lastDeps/ran/cleanup describe the most
// recent execution.
type effectSlot struct {
	pending     EffectFunc
	pendingDeps Deps
	queued      bool

	lastDeps Deps
	ran      bool
	cleanup  Cleanup
}

func (*effectSlot) kind() SlotKind { return KindEffect }

// memoSlot holds one UseMemo cell: the cached value and the deps it was
// computed against.
type memoSlot struct {
	value    any
	lastDeps Deps
	valid    bool
	typ      string
}

func (*memoSlot) kind() SlotKind { return KindMemo }

// refSlot holds one UseRef cell: a *Ref[T] allocated at mount.
type refSlot struct {
	cell any
	typ  string
}

func (*refSlot) kind() SlotKind { return KindRef }

// newSlot allocates an empty slot of the given kind. Called only during the
// mounting render; afterwards the store is fixed.
func newSlot(k SlotKind) slot {
	switch k {
	case KindState:
		return &stateSlot{}
	case KindEffect:
		return &effectSlot{}
	case KindMemo:
		return &memoSlot{}
	case KindRef:
		return &refSlot{}
	default:
		panic("hooks: unknown slot kind")
	}
}
