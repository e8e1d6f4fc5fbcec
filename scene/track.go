package scene

// Slot is one position of an override track. Which fields matter depends on
// the track kind: sprites look at Present, textures at Present and Suppress,
// colors at Use.
type Slot[T comparable] struct {
	Value    T
	Present  bool
	Suppress bool
	Use      bool
}

// Track is a sparse, position-indexed list of overrides. Resolving a
// position walks backward to the nearest slot the track considers defined.
type Track[T comparable] struct {
	slots   []Slot[T]
	defined func(Slot[T]) bool
}

func spriteDefined[T comparable](s Slot[T]) bool  { return s.Present }
func textureDefined[T comparable](s Slot[T]) bool { return s.Suppress || s.Present }
func colorDefined[T comparable](s Slot[T]) bool   { return s.Use }

// NewSpriteTrack builds a track where a slot is defined when it holds a value.
func NewSpriteTrack[T comparable](slots []Slot[T]) *Track[T] {
	return newTrack(slots, spriteDefined[T])
}

// NewTextureTrack builds a track where a slot is defined when it holds a
// value or is explicitly suppressed. A suppressed slot resolves to the zero
// value.
func NewTextureTrack[T comparable](slots []Slot[T]) *Track[T] {
	return newTrack(slots, textureDefined[T])
}

// NewColorTrack builds a track where only slots flagged Use are defined.
func NewColorTrack[T comparable](slots []Slot[T]) *Track[T] {
	return newTrack(slots, colorDefined[T])
}

func newTrack[T comparable](slots []Slot[T], defined func(Slot[T]) bool) *Track[T] {
	copied := append([]Slot[T](nil), slots...)
	return &Track[T]{slots: copied, defined: defined}
}

// Len returns the number of configured slots.
func (t *Track[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.slots)
}

// Slot returns a copy of the slot at i.
func (t *Track[T]) Slot(i int) (Slot[T], bool) {
	if t == nil || i < 0 || i >= len(t.slots) {
		return Slot[T]{}, false
	}
	return t.slots[i], true
}

// Seed fills slot 0 with current when slot 0 is not already defined, so every
// backward scan terminates on a value.
func (t *Track[T]) Seed(current T) {
	if t.Len() == 0 {
		return
	}
	first := &t.slots[0]
	if t.defined(*first) {
		return
	}
	first.Value = current
	first.Present = true
	first.Use = true
}

// Resolve returns the value of the nearest defined slot at or before pos.
// pos is clamped into the track. If nothing is defined the fallback is
// returned with ok false, which callers treat as "leave as is".
func (t *Track[T]) Resolve(pos int, fallback T) (T, bool) {
	if t.Len() == 0 {
		return fallback, false
	}
	if pos >= len(t.slots) {
		pos = len(t.slots) - 1
	}
	if pos < 0 {
		pos = 0
	}

	for i := pos; i >= 0; i-- {
		s := t.slots[i]
		if !t.defined(s) {
			continue
		}
		if s.Suppress {
			var blank T
			return blank, true
		}
		return s.Value, true
	}
	return fallback, false
}
